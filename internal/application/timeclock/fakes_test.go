package timeclock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Emulan también los índices
// únicos del esquema (un turno activo por staff, un descanso abierto por
// turno) para que los tests ejerciten el mismo contrato que PostgreSQL.

type fakeStaffRepo struct {
	staff []*entity.StaffMember
}

func (f *fakeStaffRepo) FindByPIN(_ context.Context, pin string) (*entity.StaffMember, error) {
	for _, s := range f.staff {
		if s.PINCode == pin {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*entity.StaffMember, error) {
	for _, s := range f.staff {
		if s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeStaffRepo) List(_ context.Context) ([]*entity.StaffMember, error) {
	out := make([]*entity.StaffMember, 0, len(f.staff))
	for _, s := range f.staff {
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

type fakeShiftRepo struct {
	mu     sync.Mutex
	shifts map[string]*entity.ShiftEntry
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*entity.ShiftEntry)}
}

func cloneShift(s *entity.ShiftEntry) *entity.ShiftEntry {
	c := *s
	return &c
}

func (f *fakeShiftRepo) Create(_ context.Context, shift *entity.ShiftEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if shift.Status == entity.ShiftStatusActive {
		for _, existing := range f.shifts {
			if existing.StaffID == shift.StaffID && existing.Status == entity.ShiftStatusActive {
				return domain.ErrAlreadyClockedIn // uq_time_entries_one_active
			}
		}
	}
	f.shifts[shift.ID] = cloneShift(shift)
	return nil
}

func (f *fakeShiftRepo) Update(_ context.Context, shift *entity.ShiftEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shifts[shift.ID] = cloneShift(shift)
	return nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.shifts, id)
	return nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (*entity.ShiftEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.shifts[id]; ok {
		return cloneShift(s), nil
	}
	return nil, nil
}

func (f *fakeShiftRepo) FindActiveByStaff(_ context.Context, staffID string) (*entity.ShiftEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.shifts {
		if s.StaffID == staffID && s.Status == entity.ShiftStatusActive {
			return cloneShift(s), nil
		}
	}
	return nil, nil
}

func (f *fakeShiftRepo) ListCompletedInRange(_ context.Context, staffID string, start, end time.Time) ([]*entity.ShiftEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ShiftEntry
	for _, s := range f.shifts {
		if s.Status != entity.ShiftStatusCompleted {
			continue
		}
		if staffID != "" && s.StaffID != staffID {
			continue
		}
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		out = append(out, cloneShift(s))
	}
	return out, nil
}

func (f *fakeShiftRepo) ListEntries(_ context.Context, filter repository.ShiftFilter) ([]*entity.ShiftEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ShiftEntry
	for _, s := range f.shifts {
		if filter.StaffID != "" && s.StaffID != filter.StaffID {
			continue
		}
		if filter.Start != nil && s.Date.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && s.Date.After(*filter.End) {
			continue
		}
		out = append(out, cloneShift(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ClockIn.After(out[j].ClockIn)
	})
	return out, nil
}

// activeCount turnos activos de un staff; para verificar el invariante.
func (f *fakeShiftRepo) activeCount(staffID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.shifts {
		if s.StaffID == staffID && s.Status == entity.ShiftStatusActive {
			n++
		}
	}
	return n
}

type fakeBreakRepo struct {
	mu     sync.Mutex
	breaks map[string]*entity.BreakEntry
}

func newFakeBreakRepo() *fakeBreakRepo {
	return &fakeBreakRepo{breaks: make(map[string]*entity.BreakEntry)}
}

func cloneBreak(b *entity.BreakEntry) *entity.BreakEntry {
	c := *b
	return &c
}

func (f *fakeBreakRepo) Create(_ context.Context, brk *entity.BreakEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if brk.EndTime == nil {
		for _, existing := range f.breaks {
			if existing.ShiftID == brk.ShiftID && existing.EndTime == nil {
				return domain.ErrAlreadyOnBreak // uq_breaks_one_open
			}
		}
	}
	f.breaks[brk.ID] = cloneBreak(brk)
	return nil
}

func (f *fakeBreakRepo) Update(_ context.Context, brk *entity.BreakEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.breaks[brk.ID] = cloneBreak(brk)
	return nil
}

func (f *fakeBreakRepo) FindOpenByShift(_ context.Context, shiftID string) (*entity.BreakEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.breaks {
		if b.ShiftID == shiftID && b.EndTime == nil {
			return cloneBreak(b), nil
		}
	}
	return nil, nil
}

func (f *fakeBreakRepo) ListByShift(_ context.Context, shiftID string) ([]*entity.BreakEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BreakEntry
	for _, b := range f.breaks {
		if b.ShiftID == shiftID {
			out = append(out, cloneBreak(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

var _ repository.StaffRepository = (*fakeStaffRepo)(nil)
var _ repository.ShiftRepository = (*fakeShiftRepo)(nil)
var _ repository.BreakRepository = (*fakeBreakRepo)(nil)
