package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaffMember representa un miembro del personal con marcación por PIN.
// El CRUD de staff vive en el dashboard administrativo; este servicio solo
// lee estos registros, nunca los modifica.
type StaffMember struct {
	ID         string
	Name       string
	HourlyRate decimal.Decimal // tarifa por hora, no negativa
	PINCode    string          // PIN numérico corto, único entre staff activo
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
