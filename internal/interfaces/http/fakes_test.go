package http_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asistencia-api/internal/application/payroll"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

const (
	testStaffID = "f3c6a2be-5d10-4f7e-9a11-0c4b8d2e6f01"
	testPIN     = "1234"
)

// memStore almacenamiento en memoria compartido por los repos fake del test
// HTTP. Emula las restricciones únicas parciales del esquema (un turno active
// por staff, un descanso abierto por turno).
type memStore struct {
	mu     sync.Mutex
	staff  []*entity.StaffMember
	shifts map[string]*entity.ShiftEntry
	breaks map[string]*entity.BreakEntry
}

func newMemStore() *memStore {
	return &memStore{
		staff: []*entity.StaffMember{{
			ID:         testStaffID,
			Name:       "Ana",
			HourlyRate: decimal.NewFromInt(20),
			PINCode:    testPIN,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}},
		shifts: make(map[string]*entity.ShiftEntry),
		breaks: make(map[string]*entity.BreakEntry),
	}
}

// ──────────────────────────────────────────────────────────────────────────────

type memStaffRepo struct{ s *memStore }

var _ repository.StaffRepository = memStaffRepo{}

func (r memStaffRepo) FindByPIN(_ context.Context, pin string) (*entity.StaffMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.staff {
		if st.PINCode == pin {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memStaffRepo) GetByID(_ context.Context, id string) (*entity.StaffMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.staff {
		if st.ID == id {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memStaffRepo) List(_ context.Context) ([]*entity.StaffMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.StaffMember, 0, len(r.s.staff))
	for _, st := range r.s.staff {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type memShiftRepo struct{ s *memStore }

var _ repository.ShiftRepository = memShiftRepo{}

func (r memShiftRepo) Create(_ context.Context, shift *entity.ShiftEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if shift.Status == entity.ShiftStatusActive {
		for _, sh := range r.s.shifts {
			if sh.StaffID == shift.StaffID && sh.Status == entity.ShiftStatusActive {
				return domain.ErrAlreadyClockedIn
			}
		}
	}
	cp := cloneShift(shift)
	r.s.shifts[cp.ID] = cp
	return nil
}

func (r memShiftRepo) Update(_ context.Context, shift *entity.ShiftEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shifts[shift.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.shifts[shift.ID] = cloneShift(shift)
	return nil
}

func (r memShiftRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shifts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.shifts, id)
	return nil
}

func (r memShiftRepo) GetByID(_ context.Context, id string) (*entity.ShiftEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sh, ok := r.s.shifts[id]
	if !ok {
		return nil, nil
	}
	return cloneShift(sh), nil
}

func (r memShiftRepo) FindActiveByStaff(_ context.Context, staffID string) (*entity.ShiftEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sh := range r.s.shifts {
		if sh.StaffID == staffID && sh.Status == entity.ShiftStatusActive {
			return cloneShift(sh), nil
		}
	}
	return nil, nil
}

func (r memShiftRepo) ListCompletedInRange(_ context.Context, staffID string, start, end time.Time) ([]*entity.ShiftEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ShiftEntry
	for _, sh := range r.s.shifts {
		if sh.Status != entity.ShiftStatusCompleted {
			continue
		}
		if staffID != "" && sh.StaffID != staffID {
			continue
		}
		if sh.Date.Before(start) || sh.Date.After(end) {
			continue
		}
		out = append(out, cloneShift(sh))
	}
	return out, nil
}

func (r memShiftRepo) ListEntries(_ context.Context, filter repository.ShiftFilter) ([]*entity.ShiftEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ShiftEntry
	for _, sh := range r.s.shifts {
		if filter.StaffID != "" && sh.StaffID != filter.StaffID {
			continue
		}
		if filter.Start != nil && sh.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && sh.Date.After(*filter.End) {
			continue
		}
		out = append(out, cloneShift(sh))
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type memBreakRepo struct{ s *memStore }

var _ repository.BreakRepository = memBreakRepo{}

func (r memBreakRepo) Create(_ context.Context, brk *entity.BreakEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if brk.EndTime == nil {
		for _, b := range r.s.breaks {
			if b.ShiftID == brk.ShiftID && b.EndTime == nil {
				return domain.ErrAlreadyOnBreak
			}
		}
	}
	cp := cloneBreak(brk)
	r.s.breaks[cp.ID] = cp
	return nil
}

func (r memBreakRepo) Update(_ context.Context, brk *entity.BreakEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.breaks[brk.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.breaks[brk.ID] = cloneBreak(brk)
	return nil
}

func (r memBreakRepo) FindOpenByShift(_ context.Context, shiftID string) (*entity.BreakEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.breaks {
		if b.ShiftID == shiftID && b.EndTime == nil {
			return cloneBreak(b), nil
		}
	}
	return nil, nil
}

func (r memBreakRepo) ListByShift(_ context.Context, shiftID string) ([]*entity.BreakEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.BreakEntry
	for _, b := range r.s.breaks {
		if b.ShiftID == shiftID {
			out = append(out, cloneBreak(b))
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type memPayrollRepo struct {
	mu      sync.Mutex
	records []*entity.PayrollRecord
}

var _ repository.PayrollRepository = (*memPayrollRepo)(nil)

func (r *memPayrollRepo) Create(_ context.Context, record *entity.PayrollRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.StaffID == record.StaffID && rec.PeriodStart.Equal(record.PeriodStart) && rec.PeriodEnd.Equal(record.PeriodEnd) {
			return domain.ErrDuplicate
		}
	}
	cp := *record
	r.records = append(r.records, &cp)
	return nil
}

func (r *memPayrollRepo) ListByPeriod(_ context.Context, start, end time.Time) ([]*entity.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PayrollRecord
	for _, rec := range r.records {
		if rec.PeriodStart.Equal(start) && rec.PeriodEnd.Equal(end) {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPayrollRepo) List(_ context.Context) ([]*entity.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.PayrollRecord, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

// nopTxRunner ejecuta el callback contra el repo en memoria, sin transacción.
type nopTxRunner struct{ repo *memPayrollRepo }

var _ payroll.TxRunner = nopTxRunner{}

func (t nopTxRunner) Run(ctx context.Context, fn func(payrollRepo repository.PayrollRepository) error) error {
	return fn(t.repo)
}

// ──────────────────────────────────────────────────────────────────────────────

func cloneShift(sh *entity.ShiftEntry) *entity.ShiftEntry {
	cp := *sh
	if sh.ClockOut != nil {
		v := *sh.ClockOut
		cp.ClockOut = &v
	}
	if sh.TotalHours != nil {
		v := *sh.TotalHours
		cp.TotalHours = &v
	}
	return &cp
}

func cloneBreak(b *entity.BreakEntry) *entity.BreakEntry {
	cp := *b
	if b.EndTime != nil {
		v := *b.EndTime
		cp.EndTime = &v
	}
	if b.Duration != nil {
		v := *b.Duration
		cp.Duration = &v
	}
	return &cp
}
