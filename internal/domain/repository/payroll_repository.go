package repository

import (
	"context"
	"time"

	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

// PayrollRepository define el puerto de persistencia para PayrollRecord.
// Los registros son inmutables: solo inserción y lectura.
type PayrollRepository interface {
	Create(ctx context.Context, record *entity.PayrollRecord) error
	ListByPeriod(ctx context.Context, start, end time.Time) ([]*entity.PayrollRecord, error)
	List(ctx context.Context) ([]*entity.PayrollRecord, error)
}
