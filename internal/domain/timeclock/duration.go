package timeclock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/jhoicas/asistencia-api/internal/domain/entity"
)

var secondsPerHour = decimal.NewFromInt(3600)

// NetHours calcula las horas trabajadas de una sesión: (clockOut − clockIn)
// menos la suma de los descansos cerrados, en horas decimales con 2 decimales
// (redondeo half-up) y nunca negativa. Los valores aquí son no negativos, así
// que decimal.Round (half away from zero) equivale a half-up.
// Falla con ErrInvalidRange si clockOut no es posterior a clockIn.
func NetHours(clockIn, clockOut time.Time, breaks []*entity.BreakEntry) (decimal.Decimal, error) {
	if !clockOut.After(clockIn) {
		return decimal.Zero, domain.ErrInvalidRange
	}
	session := decimal.NewFromInt(int64(clockOut.Sub(clockIn) / time.Second)).Div(secondsPerHour)
	for _, b := range breaks {
		if b.Duration != nil {
			session = session.Sub(*b.Duration)
		}
	}
	hours := session.Round(2)
	if hours.IsNegative() {
		return decimal.Zero.Round(2), nil
	}
	return hours, nil
}

// BreakHours calcula la duración de un descanso cerrado, en horas decimales
// con 2 decimales. Un descanso de cero o menos segundos vale 0.00 (puede
// pasar si se cierra dentro del mismo segundo en que se abrió).
func BreakHours(start, end time.Time) decimal.Decimal {
	if !end.After(start) {
		return decimal.Zero.Round(2)
	}
	return decimal.NewFromInt(int64(end.Sub(start) / time.Second)).Div(secondsPerHour).Round(2)
}
