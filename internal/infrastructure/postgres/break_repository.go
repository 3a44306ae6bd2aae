package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ repository.BreakRepository = (*BreakRepo)(nil)

// BreakRepo implementación del puerto BreakRepository sobre PostgreSQL.
// El índice parcial uq_breaks_one_open respalda el invariante "un descanso
// abierto por turno".
type BreakRepo struct {
	pool *pgxpool.Pool
}

// NewBreakRepository construye el adaptador de persistencia de descansos.
func NewBreakRepository(pool *pgxpool.Pool) *BreakRepo {
	return &BreakRepo{pool: pool}
}

// Create persiste un descanso abierto. Un choque con el índice de descanso
// abierto sale como ErrAlreadyOnBreak.
func (r *BreakRepo) Create(ctx context.Context, brk *entity.BreakEntry) error {
	if brk.ID == "" {
		brk.ID = uuid.New().String()
	}
	query := `
		INSERT INTO breaks (id, time_entry_id, start_time, end_time, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		brk.ID, brk.ShiftID, brk.StartTime, brk.EndTime, brk.Duration, brk.CreatedAt,
	)
	if err != nil {
		if uniqueConstraint(err) == "uq_breaks_one_open" {
			return domain.ErrAlreadyOnBreak
		}
		return fmt.Errorf("insert break: %w", err)
	}
	return nil
}

// Update cierra un descanso: fija end_time y duration.
func (r *BreakRepo) Update(ctx context.Context, brk *entity.BreakEntry) error {
	query := `
		UPDATE breaks SET start_time = $2, end_time = $3, duration = $4
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, brk.ID, brk.StartTime, brk.EndTime, brk.Duration)
	if err != nil {
		return fmt.Errorf("update break: %w", err)
	}
	return nil
}

// FindOpenByShift devuelve el descanso abierto del turno, o (nil, nil).
func (r *BreakRepo) FindOpenByShift(ctx context.Context, shiftID string) (*entity.BreakEntry, error) {
	query := `
		SELECT id, time_entry_id, start_time, end_time, duration, created_at
		FROM breaks WHERE time_entry_id = $1 AND end_time IS NULL LIMIT 1`
	var b entity.BreakEntry
	err := r.pool.QueryRow(ctx, query, shiftID).Scan(
		&b.ID, &b.ShiftID, &b.StartTime, &b.EndTime, &b.Duration, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open break: %w", err)
	}
	return &b, nil
}

// ListByShift devuelve todos los descansos de un turno, en orden de inicio.
func (r *BreakRepo) ListByShift(ctx context.Context, shiftID string) ([]*entity.BreakEntry, error) {
	query := `
		SELECT id, time_entry_id, start_time, end_time, duration, created_at
		FROM breaks WHERE time_entry_id = $1 ORDER BY start_time ASC`
	rows, err := r.pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("list breaks: %w", err)
	}
	defer rows.Close()
	var list []*entity.BreakEntry
	for rows.Next() {
		var b entity.BreakEntry
		if err := rows.Scan(&b.ID, &b.ShiftID, &b.StartTime, &b.EndTime, &b.Duration, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan break: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
