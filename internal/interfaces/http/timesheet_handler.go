package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/application/timeclock"
	"github.com/jhoicas/asistencia-api/internal/domain"
)

// TimesheetHandler maneja el listado y las correcciones manuales de timesheets.
type TimesheetHandler struct {
	uc *timeclock.EntryUseCase
}

// NewTimesheetHandler construye el handler.
func NewTimesheetHandler(uc *timeclock.EntryUseCase) *TimesheetHandler {
	return &TimesheetHandler{uc: uc}
}

// List GET /api/timesheets?staff_id=&start_date=&end_date=
func (h *TimesheetHandler) List(c *fiber.Ctx) error {
	staffID := c.Query("staff_id")
	if staffID == "all" {
		staffID = ""
	}
	entries, err := h.uc.List(c.UserContext(), timeclock.ListFilter{
		StaffID:   staffID,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas con formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}

// Create POST /api/timesheets
func (h *TimesheetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManualEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.CreateManual(c.UserContext(), in)
	if err != nil {
		return manualEntryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Update PUT /api/timesheets/:id
func (h *TimesheetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateManualEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.UpdateManual(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return manualEntryError(c, err)
	}
	return c.JSON(entry)
}

// Delete DELETE /api/timesheets/:id
func (h *TimesheetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return manualEntryError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Time entry deleted successfully"})
}

func manualEntryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "staff_id, date y horarios RFC 3339 son requeridos"})
	case errors.Is(err, domain.ErrInvalidRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
