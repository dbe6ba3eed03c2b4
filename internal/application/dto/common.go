package dto

import (
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain"
)

// DateLayout formato de fecha de calendario de toda la API (sin zona horaria).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Scope es el ámbito de negocios del llamador, extraído de los claims del
// token por el middleware. Los casos de uso lo comparan contra el negocio
// del recurso; un admin ve todos los negocios.
type Scope struct {
	Businesses []string
	IsAdmin    bool
}

// Allows indica si el ámbito cubre el negocio dado.
func (s Scope) Allows(business string) bool {
	if s.IsAdmin {
		return true
	}
	for _, b := range s.Businesses {
		if b == business {
			return true
		}
	}
	return false
}

// ParseDate convierte una fecha obligatoria "YYYY-MM-DD". Vacía o malformada → ErrInvalidInput.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}

// ParseOptionalDate convierte una fecha opcional: vacía → nil, malformada → ErrInvalidInput.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

// FormatDate serializa una fecha de calendario; nil → "".
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
