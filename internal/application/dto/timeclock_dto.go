package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PunchRequest entrada de las cuatro operaciones de marcación.
type PunchRequest struct {
	PIN string `json:"pin" validate:"required,numeric,min=4,max=8"`
}

// PunchResponse envoltura de respuesta del reloj: status success/fail y un
// mensaje apto para mostrar directamente en la pantalla del reloj.
type PunchResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// TimesheetBreak descanso dentro de una entrada de timesheet.
type TimesheetBreak struct {
	StartTime time.Time        `json:"start_time"`
	EndTime   *time.Time       `json:"end_time"`
	Duration  *decimal.Decimal `json:"duration"`
}

// TimesheetEntry fila del listado de timesheets, con nombre del staff y sus
// descansos ya resueltos.
type TimesheetEntry struct {
	ID         string           `json:"id"`
	StaffID    string           `json:"staff_id"`
	StaffName  string           `json:"staff_name"`
	ClockIn    time.Time        `json:"clock_in"`
	ClockOut   *time.Time       `json:"clock_out"`
	Date       string           `json:"date"` // YYYY-MM-DD
	Status     string           `json:"status"`
	TotalHours *decimal.Decimal `json:"total_hours"`
	Breaks     []TimesheetBreak `json:"breaks"`
}

// CreateManualEntryRequest alta manual de una entrada completada (sin descansos).
type CreateManualEntryRequest struct {
	StaffID  string `json:"staff_id" validate:"required,uuid"`
	Date     string `json:"date" validate:"required"`     // YYYY-MM-DD
	ClockIn  string `json:"clock_in" validate:"required"` // RFC 3339
	ClockOut string `json:"clock_out" validate:"required"`
}

// UpdateManualEntryRequest corrección de una entrada existente; el total de
// horas se recalcula siempre a partir del par entregado.
type UpdateManualEntryRequest struct {
	ClockIn  string `json:"clock_in" validate:"required"`
	ClockOut string `json:"clock_out" validate:"required"`
}
