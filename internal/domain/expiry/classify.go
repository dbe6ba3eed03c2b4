package expiry

import (
	"fmt"
	"time"
)

// Tier es la urgencia derivada de los días hasta el vencimiento.
type Tier string

const (
	TierNone     Tier = ""
	TierCritical Tier = "critical" // vence en ≤ 3 días
	TierWarning  Tier = "warning"  // vence en 4..7 días
	TierExpired  Tier = "expired"  // solo en la vista de detalle
)

// StatusExpired es la etiqueta de la vista de detalle para lotes ya vencidos.
const StatusExpired = "Expired"

const (
	criticalDays = 3
	warningDays  = 7
)

// Classification es el resultado de clasificar una fecha de vencimiento.
type Classification struct {
	Label string
	Tier  Tier
}

// daysUntil cuenta días de calendario entre today y expiry (sin zona horaria).
func daysUntil(today time.Time, expiry time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// ClassifySummary clasifica para la fila de stock por producto.
// Los deltas negativos se recortan a D-0: en esta vista un lote vencido no se
// distingue de uno que vence hoy. Sin fecha: sin tier y etiqueta vacía.
func ClassifySummary(today time.Time, expiryDate *time.Time) Classification {
	if expiryDate == nil {
		return Classification{}
	}
	delta := daysUntil(today, *expiryDate)
	switch {
	case delta <= criticalDays:
		if delta < 0 {
			delta = 0
		}
		return Classification{Label: fmt.Sprintf("D-%d", delta), Tier: TierCritical}
	case delta <= warningDays:
		return Classification{Label: fmt.Sprintf("D-%d", delta), Tier: TierWarning}
	default:
		return Classification{Label: expiryDate.Format("2006-01-02")}
	}
}

// ClassifyDetail clasifica para el listado de lotes por vencimiento.
// A diferencia de la vista resumen, un delta negativo produce el estado
// Expired sin recorte. Sin fecha: sin tier y etiqueta vacía.
func ClassifyDetail(today time.Time, expiryDate *time.Time) Classification {
	if expiryDate == nil {
		return Classification{}
	}
	delta := daysUntil(today, *expiryDate)
	switch {
	case delta < 0:
		return Classification{Label: StatusExpired, Tier: TierExpired}
	case delta <= criticalDays:
		return Classification{Label: fmt.Sprintf("D-%d", delta), Tier: TierCritical}
	case delta <= warningDays:
		return Classification{Label: fmt.Sprintf("D-%d", delta), Tier: TierWarning}
	default:
		return Classification{Label: expiryDate.Format("2006-01-02")}
	}
}
