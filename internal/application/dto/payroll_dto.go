package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollPeriodRequest ventana de fechas (inclusive) para el preview.
type PayrollPeriodRequest struct {
	StartDate string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required"`
}

// PayrollPreviewRow fila del preview de nómina de un staff. No se persiste
// nada al generarla; la confirmación es un paso separado.
type PayrollPreviewRow struct {
	StaffID    string          `json:"staff_id"`
	StaffName  string          `json:"staff_name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	TotalHours decimal.Decimal `json:"total_hours"`
	GrossPay   decimal.Decimal `json:"gross_pay"`
	NetPay     decimal.Decimal `json:"net_pay"`
}

// CommitPayrollRequest confirma un preview: persiste un registro por fila.
type CommitPayrollRequest struct {
	StartDate string              `json:"start_date" validate:"required"`
	EndDate   string              `json:"end_date" validate:"required"`
	Rows      []PayrollPreviewRow `json:"rows" validate:"required,min=1"`
}

// PayrollRecordResponse registro de nómina ya confirmado.
type PayrollRecordResponse struct {
	ID          string          `json:"id"`
	StaffID     string          `json:"staff_id"`
	PeriodStart string          `json:"period_start"` // YYYY-MM-DD
	PeriodEnd   string          `json:"period_end"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	GrossPay    decimal.Decimal `json:"gross_pay"`
	NetPay      decimal.Decimal `json:"net_pay"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
