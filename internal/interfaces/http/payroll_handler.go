package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/application/payroll"
	"github.com/jhoicas/asistencia-api/internal/domain"
)

const dateLayout = "2006-01-02"

// PayrollHandler maneja el preview y la confirmación de nómina. Preview no
// persiste nada; Commit es el único paso irreversible y se invoca aparte.
type PayrollHandler struct {
	uc *payroll.AggregatorUseCase
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *payroll.AggregatorUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// Preview POST /api/payroll/preview
func (h *PayrollHandler) Preview(c *fiber.Ctx) error {
	var in dto.PayrollPeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	start, end, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date con formato YYYY-MM-DD"})
	}
	rows, err := h.uc.Preview(c.UserContext(), start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "end_date debe ser igual o posterior a start_date"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// Commit POST /api/payroll/commit
func (h *PayrollHandler) Commit(c *fiber.Ctx) error {
	var in dto.CommitPayrollRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	start, end, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date con formato YYYY-MM-DD"})
	}
	if err := h.uc.Commit(c.UserContext(), in.Rows, start, end); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rows no puede estar vacío"})
		case errors.Is(err, domain.ErrInvalidRange):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "end_date debe ser igual o posterior a start_date"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_PERIOD", Message: "ya existe nómina confirmada para ese staff y período"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Payroll processed successfully."})
}

// History GET /api/payroll
func (h *PayrollHandler) History(c *fiber.Ctx) error {
	records, err := h.uc.History(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(records)
}

func parsePeriod(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
