package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
// El índice parcial único uq_time_entries_one_active respalda el invariante
// "un turno active por staff" aunque corran varias instancias del servicio.
type ShiftRepo struct {
	pool *pgxpool.Pool
}

// NewShiftRepository construye el adaptador de persistencia de turnos.
func NewShiftRepository(pool *pgxpool.Pool) *ShiftRepo {
	return &ShiftRepo{pool: pool}
}

const shiftColumns = `id, staff_id, clock_in, clock_out, date, status, total_hours, created_at, updated_at`

// Create persiste un turno nuevo. Un choque con el índice de turno activo
// sale como ErrAlreadyClockedIn.
func (r *ShiftRepo) Create(ctx context.Context, shift *entity.ShiftEntry) error {
	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	query := `
		INSERT INTO time_entries (id, staff_id, clock_in, clock_out, date, status, total_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		shift.ID, shift.StaffID, shift.ClockIn, shift.ClockOut, shift.Date,
		shift.Status, shift.TotalHours, shift.CreatedAt, shift.UpdatedAt,
	)
	if err != nil {
		if uniqueConstraint(err) == "uq_time_entries_one_active" {
			return domain.ErrAlreadyClockedIn
		}
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

// Update actualiza un turno (cierre por clock-out o corrección manual).
func (r *ShiftRepo) Update(ctx context.Context, shift *entity.ShiftEntry) error {
	query := `
		UPDATE time_entries
		SET clock_in = $2, clock_out = $3, date = $4, status = $5, total_hours = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		shift.ID, shift.ClockIn, shift.ClockOut, shift.Date, shift.Status,
		shift.TotalHours, shift.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update time entry: %w", err)
	}
	return nil
}

// Delete elimina un turno (y sus descansos, por FK en cascada).
func (r *ShiftRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID, o (nil, nil) si no existe.
func (r *ShiftRepo) GetByID(ctx context.Context, id string) (*entity.ShiftEntry, error) {
	query := `SELECT ` + shiftColumns + ` FROM time_entries WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get time entry by id")
}

// FindActiveByStaff devuelve el turno active del staff, o (nil, nil).
func (r *ShiftRepo) FindActiveByStaff(ctx context.Context, staffID string) (*entity.ShiftEntry, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM time_entries WHERE staff_id = $1 AND status = $2 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, staffID, entity.ShiftStatusActive), "find active time entry")
}

// ListCompletedInRange devuelve los turnos completed con date en [start, end]
// inclusive, en una sola consulta por staff (snapshot consistente por lectura).
func (r *ShiftRepo) ListCompletedInRange(ctx context.Context, staffID string, start, end time.Time) ([]*entity.ShiftEntry, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM time_entries
		WHERE status = $1 AND date >= $2 AND date <= $3`
	args := []any{entity.ShiftStatusCompleted, start, end}
	if staffID != "" {
		query += ` AND staff_id = $4`
		args = append(args, staffID)
	}
	query += ` ORDER BY date ASC, clock_in ASC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list completed time entries: %w", err)
	}
	return r.scanMany(rows)
}

// ListEntries listado de timesheets con filtros opcionales, más reciente primero.
func (r *ShiftRepo) ListEntries(ctx context.Context, filter repository.ShiftFilter) ([]*entity.ShiftEntry, error) {
	query := `SELECT ` + shiftColumns + ` FROM time_entries WHERE 1=1`
	var args []any
	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		query += fmt.Sprintf(` AND staff_id = $%d`, len(args))
	}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
	}
	query += ` ORDER BY date DESC, clock_in DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return r.scanMany(rows)
}

func (r *ShiftRepo) scanOne(row pgx.Row, op string) (*entity.ShiftEntry, error) {
	var s entity.ShiftEntry
	err := row.Scan(&s.ID, &s.StaffID, &s.ClockIn, &s.ClockOut, &s.Date,
		&s.Status, &s.TotalHours, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *ShiftRepo) scanMany(rows pgx.Rows) ([]*entity.ShiftEntry, error) {
	defer rows.Close()
	var list []*entity.ShiftEntry
	for rows.Next() {
		var s entity.ShiftEntry
		if err := rows.Scan(&s.ID, &s.StaffID, &s.ClockIn, &s.ClockOut, &s.Date,
			&s.Status, &s.TotalHours, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
