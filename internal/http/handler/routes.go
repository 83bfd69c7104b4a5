package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"tripapi/docs"
	"tripapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, tripSvc service.TripService, sheetSvc service.LogSheetService) {
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	api := app.Group("/api")
	api.Post("/create_trip/", CreateTrip(tripSvc))
	api.Get("/logsheet/", GenerateLogSheet(sheetSvc))
	api.Post("/logsheet/", GenerateLogSheet(sheetSvc))
	api.Get("/trip_log/:trip_id/", GetTripLog(tripSvc))

	api.Get("/trips", ListTrips(tripSvc))
	api.Get("/trips/:id", GetTrip(tripSvc))
	api.Delete("/trips/:id", DeleteTrip(tripSvc))
	api.Get("/trips/:id/logsheets", ListLogSheets(sheetSvc))
}
