package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo implementación del puerto StaffRepository sobre PostgreSQL.
// Solo lectura: la tabla staff la administra el dashboard.
type StaffRepo struct {
	pool *pgxpool.Pool
}

// NewStaffRepository construye el adaptador de lectura de staff.
func NewStaffRepository(pool *pgxpool.Pool) *StaffRepo {
	return &StaffRepo{pool: pool}
}

// FindByPIN obtiene el staff cuyo PIN coincide, o (nil, nil) si no hay.
func (r *StaffRepo) FindByPIN(ctx context.Context, pin string) (*entity.StaffMember, error) {
	query := `
		SELECT id, name, hourly_rate, pin_code, created_at, updated_at
		FROM staff WHERE pin_code = $1 LIMIT 1`
	var s entity.StaffMember
	err := r.pool.QueryRow(ctx, query, pin).Scan(
		&s.ID, &s.Name, &s.HourlyRate, &s.PINCode, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff by pin: %w", err)
	}
	return &s, nil
}

// GetByID obtiene un staff por ID, o (nil, nil) si no existe.
func (r *StaffRepo) GetByID(ctx context.Context, id string) (*entity.StaffMember, error) {
	query := `
		SELECT id, name, hourly_rate, pin_code, created_at, updated_at
		FROM staff WHERE id = $1`
	var s entity.StaffMember
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.HourlyRate, &s.PINCode, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff by id: %w", err)
	}
	return &s, nil
}

// List devuelve todo el staff ordenado por nombre.
func (r *StaffRepo) List(ctx context.Context) ([]*entity.StaffMember, error) {
	query := `
		SELECT id, name, hourly_rate, pin_code, created_at, updated_at
		FROM staff ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.StaffMember
	for rows.Next() {
		var s entity.StaffMember
		if err := rows.Scan(&s.ID, &s.Name, &s.HourlyRate, &s.PINCode, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
