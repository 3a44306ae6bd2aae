package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/application/timeclock"
	"github.com/jhoicas/asistencia-api/internal/domain"
)

// TimeclockHandler maneja las cuatro operaciones del reloj de marcación.
// Las respuestas siguen la envoltura {status, message} que espera la pantalla
// del reloj; el mensaje siempre es apto para mostrarse tal cual.
type TimeclockHandler struct {
	uc *timeclock.PunchUseCase
}

// NewTimeclockHandler construye el handler.
func NewTimeclockHandler(uc *timeclock.PunchUseCase) *TimeclockHandler {
	return &TimeclockHandler{uc: uc}
}

// ClockIn POST /api/timeclock/clock-in
func (h *TimeclockHandler) ClockIn(c *fiber.Ctx) error {
	return h.punch(c, h.uc.ClockIn)
}

// ClockOut POST /api/timeclock/clock-out
func (h *TimeclockHandler) ClockOut(c *fiber.Ctx) error {
	return h.punch(c, h.uc.ClockOut)
}

// StartBreak POST /api/timeclock/break/start
func (h *TimeclockHandler) StartBreak(c *fiber.Ctx) error {
	return h.punch(c, h.uc.StartBreak)
}

// EndBreak POST /api/timeclock/break/end
func (h *TimeclockHandler) EndBreak(c *fiber.Ctx) error {
	return h.punch(c, h.uc.EndBreak)
}

func (h *TimeclockHandler) punch(c *fiber.Ctx, op func(ctx context.Context, pin string) (*timeclock.PunchResult, error)) error {
	var in dto.PunchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := op(c.UserContext(), in.PIN)
	if err != nil {
		return punchError(c, err)
	}
	return c.JSON(dto.PunchResponse{Status: "success", Message: res.Message})
}

// punchError mapea la taxonomía de marcación a códigos HTTP. El mensaje del
// error de dominio viaja directo al usuario.
func punchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredential):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_PIN", Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadyClockedIn):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_CLOCKED_IN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotClockedIn):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_CLOCKED_IN", Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadyOnBreak):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ON_BREAK", Message: err.Error()})
	case errors.Is(err, domain.ErrNotOnBreak):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_ON_BREAK", Message: err.Error()})
	case errors.Is(err, domain.ErrOnBreak):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ON_BREAK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
