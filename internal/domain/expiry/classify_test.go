package expiry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Bodega-api/internal/domain/expiry"
)

func fecha(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// Escenario de referencia: hoy = 2024-01-10. Las dos vistas deben coincidir en
// los tramos D-0..D-7 y divergir solo en los lotes ya vencidos.
func TestClassify_EscenarioReferencia(t *testing.T) {
	today := *fecha("2024-01-10")

	cases := []struct {
		name          string
		expiry        *time.Time
		detailLabel   string
		detailTier    expiry.Tier
		summaryLabel  string
		summaryTier   expiry.Tier
	}{
		{"vencido hace dos días", fecha("2024-01-08"), "Expired", expiry.TierExpired, "D-0", expiry.TierCritical},
		{"vence hoy", fecha("2024-01-10"), "D-0", expiry.TierCritical, "D-0", expiry.TierCritical},
		{"vence en tres días", fecha("2024-01-13"), "D-3", expiry.TierCritical, "D-3", expiry.TierCritical},
		{"vence en cinco días", fecha("2024-01-15"), "D-5", expiry.TierWarning, "D-5", expiry.TierWarning},
		{"lejano: fecha literal", fecha("2024-02-01"), "2024-02-01", expiry.TierNone, "2024-02-01", expiry.TierNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			detail := expiry.ClassifyDetail(today, tc.expiry)
			assert.Equal(t, tc.detailLabel, detail.Label, "etiqueta de la vista detalle")
			assert.Equal(t, tc.detailTier, detail.Tier, "tier de la vista detalle")

			summary := expiry.ClassifySummary(today, tc.expiry)
			assert.Equal(t, tc.summaryLabel, summary.Label, "etiqueta de la vista resumen")
			assert.Equal(t, tc.summaryTier, summary.Tier, "tier de la vista resumen")
		})
	}
}

// Un lote sin fecha de vencimiento nunca alerta: sin tier y etiqueta vacía en ambas vistas.
func TestClassify_SinFechaNoAlerta(t *testing.T) {
	today := *fecha("2024-01-10")

	assert.Equal(t, expiry.Classification{}, expiry.ClassifySummary(today, nil))
	assert.Equal(t, expiry.Classification{}, expiry.ClassifyDetail(today, nil))
}

// El borde entre warning y fecha literal está en D-7 inclusive.
func TestClassify_BordeWarning(t *testing.T) {
	today := *fecha("2024-01-10")

	c7 := expiry.ClassifyDetail(today, fecha("2024-01-17"))
	assert.Equal(t, "D-7", c7.Label)
	assert.Equal(t, expiry.TierWarning, c7.Tier)

	c8 := expiry.ClassifyDetail(today, fecha("2024-01-18"))
	assert.Equal(t, "2024-01-18", c8.Label)
	assert.Equal(t, expiry.TierNone, c8.Tier)
}
