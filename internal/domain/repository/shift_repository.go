package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// ShiftFilter filtros opcionales para el listado de timesheets.
type ShiftFilter struct {
	StaffID string // vacío = todos
	Start   *time.Time
	End     *time.Time
}

// ShiftRepository define el puerto de persistencia para ShiftEntry.
// Los lookups devuelven (nil, nil) cuando no hay fila.
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.ShiftEntry) error
	Update(ctx context.Context, shift *entity.ShiftEntry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.ShiftEntry, error)
	// FindActiveByStaff devuelve el turno active del staff, si existe.
	FindActiveByStaff(ctx context.Context, staffID string) (*entity.ShiftEntry, error)
	// ListCompletedInRange devuelve los turnos completed de un staff cuyo date
	// cae en [start, end] inclusive. staffID vacío = todos los staff.
	ListCompletedInRange(ctx context.Context, staffID string, start, end time.Time) ([]*entity.ShiftEntry, error)
	// ListEntries listado de timesheets, más reciente primero.
	ListEntries(ctx context.Context, filter ShiftFilter) ([]*entity.ShiftEntry, error)
}

// BreakRepository define el puerto de persistencia para BreakEntry.
type BreakRepository interface {
	Create(ctx context.Context, brk *entity.BreakEntry) error
	Update(ctx context.Context, brk *entity.BreakEntry) error
	// FindOpenByShift devuelve el descanso abierto del turno, o (nil, nil).
	FindOpenByShift(ctx context.Context, shiftID string) (*entity.BreakEntry, error)
	ListByShift(ctx context.Context, shiftID string) ([]*entity.BreakEntry, error)
}
