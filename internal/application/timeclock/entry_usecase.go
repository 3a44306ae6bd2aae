package timeclock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
	clock "github.com/jhoicas/asistencia-api/internal/domain/timeclock"
)

const dateLayout = "2006-01-02"

// EntryUseCase listado de timesheets y altas/correcciones manuales.
// Las entradas manuales nacen completed, sin descansos, y su total de horas
// se recalcula siempre desde el par clock-in/clock-out entregado.
type EntryUseCase struct {
	staffRepo repository.StaffRepository
	shiftRepo repository.ShiftRepository
	breakRepo repository.BreakRepository
	now       func() time.Time
}

// NewEntryUseCase construye el caso de uso con los puertos de persistencia.
func NewEntryUseCase(staffRepo repository.StaffRepository, shiftRepo repository.ShiftRepository, breakRepo repository.BreakRepository) *EntryUseCase {
	return &EntryUseCase{staffRepo: staffRepo, shiftRepo: shiftRepo, breakRepo: breakRepo, now: time.Now}
}

// ListFilter filtros del listado de timesheets (todos opcionales).
type ListFilter struct {
	StaffID   string
	StartDate string // YYYY-MM-DD
	EndDate   string
}

// List devuelve las entradas (más recientes primero) con el nombre del staff
// y los descansos de cada turno.
func (uc *EntryUseCase) List(ctx context.Context, filter ListFilter) ([]dto.TimesheetEntry, error) {
	repoFilter := repository.ShiftFilter{StaffID: filter.StaffID}
	if filter.StartDate != "" {
		start, err := time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		repoFilter.Start = &start
	}
	if filter.EndDate != "" {
		end, err := time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		repoFilter.End = &end
	}

	shifts, err := uc.shiftRepo.ListEntries(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	staffList, err := uc.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(staffList))
	for _, s := range staffList {
		names[s.ID] = s.Name
	}

	entries := make([]dto.TimesheetEntry, 0, len(shifts))
	for _, shift := range shifts {
		breaks, err := uc.breakRepo.ListByShift(ctx, shift.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, toTimesheetEntry(shift, names[shift.StaffID], breaks))
	}
	return entries, nil
}

// CreateManual registra una entrada completada a partir de horarios entregados
// por un administrador. Sin descansos: horas = clock-out − clock-in.
func (uc *EntryUseCase) CreateManual(ctx context.Context, in dto.CreateManualEntryRequest) (*dto.TimesheetEntry, error) {
	staff, err := uc.staffRepo.GetByID(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}

	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	clockIn, clockOut, err := parseClockPair(in.ClockIn, in.ClockOut)
	if err != nil {
		return nil, err
	}
	total, err := clock.NetHours(clockIn, clockOut, nil)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	shift := &entity.ShiftEntry{
		ID:         uuid.New().String(),
		StaffID:    staff.ID,
		ClockIn:    clockIn,
		ClockOut:   &clockOut,
		Date:       date,
		Status:     entity.ShiftStatusCompleted,
		TotalHours: &total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}
	entry := toTimesheetEntry(shift, staff.Name, nil)
	return &entry, nil
}

// UpdateManual corrige los horarios de una entrada y recalcula su total;
// la entrada queda completed aunque estuviera activa.
func (uc *EntryUseCase) UpdateManual(ctx context.Context, id string, in dto.UpdateManualEntryRequest) (*dto.TimesheetEntry, error) {
	shift, err := uc.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}

	clockIn, clockOut, err := parseClockPair(in.ClockIn, in.ClockOut)
	if err != nil {
		return nil, err
	}
	breaks, err := uc.breakRepo.ListByShift(ctx, shift.ID)
	if err != nil {
		return nil, err
	}
	total, err := clock.NetHours(clockIn, clockOut, breaks)
	if err != nil {
		return nil, err
	}

	shift.ClockIn = clockIn
	shift.ClockOut = &clockOut
	shift.Date = dateOf(clockIn)
	shift.Status = entity.ShiftStatusCompleted
	shift.TotalHours = &total
	shift.UpdatedAt = uc.now()
	if err := uc.shiftRepo.Update(ctx, shift); err != nil {
		return nil, err
	}

	var name string
	if staff, err := uc.staffRepo.GetByID(ctx, shift.StaffID); err == nil && staff != nil {
		name = staff.Name
	}
	entry := toTimesheetEntry(shift, name, breaks)
	return &entry, nil
}

// Delete elimina una entrada (vía de corrección del operador).
func (uc *EntryUseCase) Delete(ctx context.Context, id string) error {
	shift, err := uc.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if shift == nil {
		return domain.ErrNotFound
	}
	return uc.shiftRepo.Delete(ctx, id)
}

func parseClockPair(inStr, outStr string) (time.Time, time.Time, error) {
	clockIn, err := time.Parse(time.RFC3339, inStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	clockOut, err := time.Parse(time.RFC3339, outStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return clockIn, clockOut, nil
}

func toTimesheetEntry(shift *entity.ShiftEntry, staffName string, breaks []*entity.BreakEntry) dto.TimesheetEntry {
	entry := dto.TimesheetEntry{
		ID:         shift.ID,
		StaffID:    shift.StaffID,
		StaffName:  staffName,
		ClockIn:    shift.ClockIn,
		ClockOut:   shift.ClockOut,
		Date:       shift.Date.Format(dateLayout),
		Status:     shift.Status,
		TotalHours: shift.TotalHours,
		Breaks:     make([]dto.TimesheetBreak, 0, len(breaks)),
	}
	for _, b := range breaks {
		entry.Breaks = append(entry.Breaks, dto.TimesheetBreak{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Duration:  b.Duration,
		})
	}
	return entry
}
