package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BreakEntry representa un descanso dentro de un ShiftEntry.
// Invariante: a lo sumo UN descanso abierto (EndTime nil) por turno.
type BreakEntry struct {
	ID        string
	ShiftID   string
	StartTime time.Time
	EndTime   *time.Time       // nil mientras el descanso está abierto
	Duration  *decimal.Decimal // horas decimales, nil hasta cerrar
	CreatedAt time.Time
}

// IsOpen indica si el descanso sigue abierto.
func (b *BreakEntry) IsOpen() bool {
	return b.EndTime == nil
}
