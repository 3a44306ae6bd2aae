package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un ShiftEntry.
const (
	ShiftStatusActive    = "active"    // turno abierto, sin clock-out
	ShiftStatusCompleted = "completed" // turno cerrado, total_hours fijado
)

// ShiftEntry representa una sesión clock-in → clock-out de un staff.
// Invariante: a lo sumo UNA entrada active por staff_id (índice parcial único
// en BD + mutex por staff en el caso de uso).
type ShiftEntry struct {
	ID         string
	StaffID    string
	ClockIn    time.Time
	ClockOut   *time.Time       // nil mientras el turno está abierto
	Date       time.Time        // fecha calendario del turno, derivada del clock-in
	Status     string           // active, completed
	TotalHours *decimal.Decimal // nil hasta completar; horas netas de descansos
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive indica si el turno sigue abierto.
func (s *ShiftEntry) IsActive() bool {
	return s.Status == ShiftStatusActive
}
