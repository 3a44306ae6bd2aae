package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
	"github.com/jhoicas/asistencia-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// AggregatorUseCase agrega turnos completados en nómina en dos fases:
// Preview calcula en memoria, Commit persiste. Nunca se funden: la única
// escritura irreversible es Commit y debe invocarse explícitamente.
// Este caso de uso solo LEE time_entries; jamás las modifica.
type AggregatorUseCase struct {
	staffRepo   repository.StaffRepository
	shiftRepo   repository.ShiftRepository
	payrollRepo repository.PayrollRepository
	tx          TxRunner
	now         func() time.Time
}

// NewAggregatorUseCase construye el agregador con los puertos de persistencia.
func NewAggregatorUseCase(staffRepo repository.StaffRepository, shiftRepo repository.ShiftRepository, payrollRepo repository.PayrollRepository, tx TxRunner) *AggregatorUseCase {
	return &AggregatorUseCase{
		staffRepo:   staffRepo,
		shiftRepo:   shiftRepo,
		payrollRepo: payrollRepo,
		tx:          tx,
		now:         time.Now,
	}
}

// Preview suma las horas de los turnos completed de cada staff cuyo date cae
// en [start, end] inclusive y calcula gross = round2(horas × tarifa). El staff
// con cero horas se excluye. Un fallo de lectura para un staff no aborta el
// preview completo: se omite ese staff y se deja registro en el log.
func (uc *AggregatorUseCase) Preview(ctx context.Context, start, end time.Time) ([]dto.PayrollPreviewRow, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidRange
	}
	staffList, err := uc.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.PayrollPreviewRow, 0, len(staffList))
	for _, staff := range staffList {
		entries, err := uc.shiftRepo.ListCompletedInRange(ctx, staff.ID, start, end)
		if err != nil {
			log.Warn().Err(err).Str("staff_id", staff.ID).
				Msg("omitiendo staff en preview de nómina")
			continue
		}

		total := decimal.Zero
		for _, entry := range entries {
			if entry.TotalHours != nil {
				total = total.Add(*entry.TotalHours)
			}
		}
		if !total.IsPositive() {
			continue
		}

		gross := total.Mul(staff.HourlyRate).Round(2)
		rows = append(rows, dto.PayrollPreviewRow{
			StaffID:    staff.ID,
			StaffName:  staff.Name,
			HourlyRate: staff.HourlyRate,
			TotalHours: total.Round(2),
			GrossPay:   gross,
			NetPay:     uc.applyDeductions(gross),
		})
	}
	return rows, nil
}

// applyDeductions hook de deducciones. Hoy no aplica ninguna: neto == bruto.
func (uc *AggregatorUseCase) applyDeductions(gross decimal.Decimal) decimal.Decimal {
	return gross
}

// Commit persiste un PayrollRecord pagado por fila del preview, dentro de una
// transacción: si una inserción falla no queda ninguna. Un período ya
// confirmado para un staff choca con la restricción única del almacenamiento
// y sale como ErrDuplicate; quien llama debe rehacer el preview si cambió la
// ventana.
func (uc *AggregatorUseCase) Commit(ctx context.Context, rows []dto.PayrollPreviewRow, start, end time.Time) error {
	if len(rows) == 0 {
		return domain.ErrInvalidInput
	}
	if end.Before(start) {
		return domain.ErrInvalidRange
	}

	now := uc.now()
	return uc.tx.Run(ctx, func(payrollRepo repository.PayrollRepository) error {
		for _, row := range rows {
			record := &entity.PayrollRecord{
				ID:          uuid.New().String(),
				StaffID:     row.StaffID,
				PeriodStart: start,
				PeriodEnd:   end,
				TotalHours:  row.TotalHours,
				GrossPay:    row.GrossPay,
				NetPay:      row.NetPay,
				Status:      entity.PayrollStatusPaid,
				CreatedAt:   now,
			}
			if err := payrollRepo.Create(ctx, record); err != nil {
				return err
			}
		}
		return nil
	})
}

// History devuelve los registros confirmados, más recientes primero.
func (uc *AggregatorUseCase) History(ctx context.Context) ([]dto.PayrollRecordResponse, error) {
	records, err := uc.payrollRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.PayrollRecordResponse{
			ID:          r.ID,
			StaffID:     r.StaffID,
			PeriodStart: r.PeriodStart.Format(dateLayout),
			PeriodEnd:   r.PeriodEnd.Format(dateLayout),
			TotalHours:  r.TotalHours,
			GrossPay:    r.GrossPay,
			NetPay:      r.NetPay,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}
