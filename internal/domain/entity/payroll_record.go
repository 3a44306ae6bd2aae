package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de un PayrollRecord. El servicio solo escribe registros pagados;
// las correcciones se hacen con un registro nuevo, nunca editando en sitio.
const PayrollStatusPaid = "paid"

// PayrollRecord es el snapshot inmutable que produce el agregador de nómina
// al confirmar un período. Uno por staff por período confirmado.
type PayrollRecord struct {
	ID          string
	StaffID     string
	PeriodStart time.Time // fecha calendario, inclusive
	PeriodEnd   time.Time // fecha calendario, inclusive
	TotalHours  decimal.Decimal
	GrossPay    decimal.Decimal // total_hours × hourly_rate al momento de generar
	NetPay      decimal.Decimal // hoy igual a GrossPay; hook de deducciones reservado
	Status      string
	CreatedAt   time.Time
}
