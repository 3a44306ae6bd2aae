package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implementación del puerto PayrollRepository sobre PostgreSQL.
// Acepta el pool o una tx (vía querier) para que Commit corra transaccional.
type PayrollRepo struct {
	db querier
}

// NewPayrollRepository construye el adaptador de persistencia de nómina.
func NewPayrollRepository(db querier) *PayrollRepo {
	return &PayrollRepo{db: db}
}

const payrollColumns = `id, staff_id, period_start, period_end, total_hours, gross_pay, net_pay, status, created_at`

// Create inserta un registro de nómina. Un período ya confirmado para el
// mismo staff choca con uq_payrolls_staff_period y sale como ErrDuplicate.
func (r *PayrollRepo) Create(ctx context.Context, record *entity.PayrollRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payrolls (id, staff_id, period_start, period_end, total_hours, gross_pay, net_pay, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		record.ID, record.StaffID, record.PeriodStart, record.PeriodEnd,
		record.TotalHours, record.GrossPay, record.NetPay, record.Status, record.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payroll record: %w", err)
	}
	return nil
}

// ListByPeriod devuelve los registros de un período exacto.
func (r *PayrollRepo) ListByPeriod(ctx context.Context, start, end time.Time) ([]*entity.PayrollRecord, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls WHERE period_start = $1 AND period_end = $2
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list payroll records by period: %w", err)
	}
	return r.scanMany(rows)
}

// List devuelve todos los registros, más recientes primero.
func (r *PayrollRepo) List(ctx context.Context) ([]*entity.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payroll records: %w", err)
	}
	return r.scanMany(rows)
}

func (r *PayrollRepo) scanMany(rows pgx.Rows) ([]*entity.PayrollRecord, error) {
	defer rows.Close()
	var list []*entity.PayrollRecord
	for rows.Next() {
		var p entity.PayrollRecord
		if err := rows.Scan(&p.ID, &p.StaffID, &p.PeriodStart, &p.PeriodEnd,
			&p.TotalHours, &p.GrossPay, &p.NetPay, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payroll record: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
