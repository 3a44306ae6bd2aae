package timeclock

import (
	"context"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// ClockState estado de marcación de un staff, derivado una sola vez por
// operación a partir del turno activo y su descanso abierto.
type ClockState int

const (
	StateOut     ClockState = iota // sin turno activo
	StateIn                        // turno activo, sin descanso abierto
	StateOnBreak                   // turno activo con un descanso abierto
)

// String para logs y mensajes de diagnóstico.
func (s ClockState) String() string {
	switch s {
	case StateIn:
		return "IN"
	case StateOnBreak:
		return "ON_BREAK"
	default:
		return "OUT"
	}
}

// clockSnapshot estado resuelto junto con las filas que lo determinan, para
// que cada operación valide y escriba sobre la misma lectura.
type clockSnapshot struct {
	State     ClockState
	Shift     *entity.ShiftEntry // nil en OUT
	OpenBreak *entity.BreakEntry // no nil solo en ON_BREAK
}

// currentState resuelve el estado de marcación del staff: turno activo y, si
// existe, descanso abierto de ese turno.
func (uc *PunchUseCase) currentState(ctx context.Context, staffID string) (clockSnapshot, error) {
	shift, err := uc.shiftRepo.FindActiveByStaff(ctx, staffID)
	if err != nil {
		return clockSnapshot{}, err
	}
	if shift == nil {
		return clockSnapshot{State: StateOut}, nil
	}
	openBreak, err := uc.breakRepo.FindOpenByShift(ctx, shift.ID)
	if err != nil {
		return clockSnapshot{}, err
	}
	if openBreak != nil {
		return clockSnapshot{State: StateOnBreak, Shift: shift, OpenBreak: openBreak}, nil
	}
	return clockSnapshot{State: StateIn, Shift: shift}, nil
}
