package timeclock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	clock "github.com/jhoicas/asistencia-api/internal/domain/timeclock"
)

// PunchResult resultado de una operación de marcación exitosa.
type PunchResult struct {
	StaffName  string
	Message    string
	TotalHours *decimal.Decimal // solo en clock-out
}

// PunchUseCase ejecuta las transiciones del reloj de marcación:
// OUT → IN (clock-in) → ON_BREAK (start break) → IN (end break) → OUT (clock-out).
//
// La secuencia leer-validar-escribir de cada operación se serializa por staff
// con un mutex por staff_id (despliegue de instancia única); el índice parcial
// único de la tabla time_entries respalda el invariante "un turno activo por
// staff" a nivel de almacenamiento.
type PunchUseCase struct {
	staffRepo repository.StaffRepository
	shiftRepo repository.ShiftRepository
	breakRepo repository.BreakRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

// NewPunchUseCase construye el caso de uso con los puertos de persistencia.
func NewPunchUseCase(staffRepo repository.StaffRepository, shiftRepo repository.ShiftRepository, breakRepo repository.BreakRepository) *PunchUseCase {
	return &PunchUseCase{
		staffRepo: staffRepo,
		shiftRepo: shiftRepo,
		breakRepo: breakRepo,
		locks:     make(map[string]*sync.Mutex),
		now:       time.Now,
	}
}

// staffLock devuelve el mutex del staff, creándolo la primera vez.
func (uc *PunchUseCase) staffLock(staffID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[staffID]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[staffID] = l
	}
	return l
}

// resolveStaff resuelve el PIN a un staff. Cero coincidencias es credencial
// inválida; la unicidad del PIN la garantiza el CRUD de staff, no este servicio.
func (uc *PunchUseCase) resolveStaff(ctx context.Context, pin string) (*entity.StaffMember, error) {
	if pin == "" {
		return nil, domain.ErrInvalidCredential
	}
	staff, err := uc.staffRepo.FindByPIN(ctx, pin)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrInvalidCredential
	}
	return staff, nil
}

// ClockIn abre un turno para el staff del PIN. Requiere estado OUT.
func (uc *PunchUseCase) ClockIn(ctx context.Context, pin string) (*PunchResult, error) {
	staff, err := uc.resolveStaff(ctx, pin)
	if err != nil {
		return nil, err
	}
	lock := uc.staffLock(staff.ID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := uc.currentState(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	if snap.State != StateOut {
		return nil, domain.ErrAlreadyClockedIn
	}

	now := uc.now()
	shift := &entity.ShiftEntry{
		ID:        uuid.New().String(),
		StaffID:   staff.ID,
		ClockIn:   now,
		Date:      dateOf(now),
		Status:    entity.ShiftStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}
	return &PunchResult{
		StaffName: staff.Name,
		Message:   fmt.Sprintf("Welcome %s! Clocked in successfully.", staff.Name),
	}, nil
}

// StartBreak abre un descanso en el turno activo. Requiere estado IN.
func (uc *PunchUseCase) StartBreak(ctx context.Context, pin string) (*PunchResult, error) {
	staff, err := uc.resolveStaff(ctx, pin)
	if err != nil {
		return nil, err
	}
	lock := uc.staffLock(staff.ID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := uc.currentState(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	switch snap.State {
	case StateOut:
		return nil, domain.ErrNotClockedIn
	case StateOnBreak:
		return nil, domain.ErrAlreadyOnBreak
	}

	now := uc.now()
	brk := &entity.BreakEntry{
		ID:        uuid.New().String(),
		ShiftID:   snap.Shift.ID,
		StartTime: now,
		CreatedAt: now,
	}
	if err := uc.breakRepo.Create(ctx, brk); err != nil {
		return nil, err
	}
	return &PunchResult{StaffName: staff.Name, Message: "Break started."}, nil
}

// EndBreak cierra el descanso abierto y fija su duración. Requiere ON_BREAK.
func (uc *PunchUseCase) EndBreak(ctx context.Context, pin string) (*PunchResult, error) {
	staff, err := uc.resolveStaff(ctx, pin)
	if err != nil {
		return nil, err
	}
	lock := uc.staffLock(staff.ID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := uc.currentState(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	switch snap.State {
	case StateOut:
		return nil, domain.ErrNotClockedIn
	case StateIn:
		return nil, domain.ErrNotOnBreak
	}

	end := uc.now()
	duration := clock.BreakHours(snap.OpenBreak.StartTime, end)
	snap.OpenBreak.EndTime = &end
	snap.OpenBreak.Duration = &duration
	if err := uc.breakRepo.Update(ctx, snap.OpenBreak); err != nil {
		return nil, err
	}
	return &PunchResult{StaffName: staff.Name, Message: "Break ended."}, nil
}

// ClockOut cierra el turno activo y fija total_hours con las horas netas de
// descansos. Requiere estado IN: con un descanso abierto falla con ErrOnBreak.
// Un segundo clock-out ve estado OUT y falla con ErrNotClockedIn; el turno
// completado no se toca.
func (uc *PunchUseCase) ClockOut(ctx context.Context, pin string) (*PunchResult, error) {
	staff, err := uc.resolveStaff(ctx, pin)
	if err != nil {
		return nil, err
	}
	lock := uc.staffLock(staff.ID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := uc.currentState(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	switch snap.State {
	case StateOut:
		return nil, domain.ErrNotClockedIn
	case StateOnBreak:
		return nil, domain.ErrOnBreak
	}

	breaks, err := uc.breakRepo.ListByShift(ctx, snap.Shift.ID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	total, err := clock.NetHours(snap.Shift.ClockIn, now, breaks)
	if err != nil {
		return nil, err
	}

	snap.Shift.ClockOut = &now
	snap.Shift.TotalHours = &total
	snap.Shift.Status = entity.ShiftStatusCompleted
	snap.Shift.UpdatedAt = now
	if err := uc.shiftRepo.Update(ctx, snap.Shift); err != nil {
		return nil, err
	}
	return &PunchResult{
		StaffName:  staff.Name,
		Message:    fmt.Sprintf("Goodbye %s! Clocked out. Total time: %s hrs.", staff.Name, total.StringFixed(2)),
		TotalHours: &total,
	}, nil
}

// dateOf trunca un instante a su fecha calendario (reloj canónico único).
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
