package payroll

import (
	"context"

	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de nómina atado a esa tx. Garantiza que la confirmación de un
// período sea todo-o-nada: si falla una fila no se persiste ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(payrollRepo repository.PayrollRepository) error) error
}
