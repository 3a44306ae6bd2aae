package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes de marcación
// están pensados para mostrarse tal cual en el reloj de asistencia.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// Taxonomía del reloj de marcación.
	ErrInvalidCredential = errors.New("invalid PIN code")
	ErrAlreadyClockedIn  = errors.New("you are already clocked in")
	ErrNotClockedIn      = errors.New("you are not clocked in")
	ErrAlreadyOnBreak    = errors.New("you are already on a break")
	ErrNotOnBreak        = errors.New("you are not on a break")
	ErrOnBreak           = errors.New("please end your break before clocking out")

	// ErrInvalidRange: clock-out anterior o igual al clock-in.
	ErrInvalidRange = errors.New("clock-out must be after clock-in")
)
