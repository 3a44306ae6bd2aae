package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asistencia-api/internal/application/payroll"
	"github.com/jhoicas/asistencia-api/internal/application/timeclock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PunchUC   *timeclock.PunchUseCase
	EntryUC   *timeclock.EntryUseCase
	PayrollUC *payroll.AggregatorUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Reloj de marcación (el gate es el PIN, resuelto en el caso de uso)
	clock := api.Group("/timeclock")
	timeclockHandler := NewTimeclockHandler(deps.PunchUC)
	clock.Post("/clock-in", timeclockHandler.ClockIn)
	clock.Post("/clock-out", timeclockHandler.ClockOut)
	clock.Post("/break/start", timeclockHandler.StartBreak)
	clock.Post("/break/end", timeclockHandler.EndBreak)

	// Timesheets (listado y corrección manual)
	timesheets := api.Group("/timesheets")
	timesheetHandler := NewTimesheetHandler(deps.EntryUC)
	timesheets.Get("/", timesheetHandler.List)
	timesheets.Post("/", timesheetHandler.Create)
	timesheets.Put("/:id", timesheetHandler.Update)
	timesheets.Delete("/:id", timesheetHandler.Delete)

	// Nómina (preview en memoria, commit persistente)
	payrollGroup := api.Group("/payroll")
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	payrollGroup.Get("/", payrollHandler.History)
	payrollGroup.Post("/preview", payrollHandler.Preview)
	payrollGroup.Post("/commit", payrollHandler.Commit)
}
