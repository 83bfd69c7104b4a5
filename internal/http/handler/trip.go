package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tripapi/internal/service"
)

// writeServiceError translates service sentinel errors into the error envelope.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return writeError(c, fiber.StatusBadRequest, "MISSING_FIELDS", "Missing required fields.")
	case errors.Is(err, service.ErrInvalidCoordinates):
		return writeError(c, fiber.StatusBadRequest, "INVALID_COORDINATES", "Invalid coordinate format. Use 'lat,lon'.")
	case errors.Is(err, service.ErrInvalidCycle):
		return writeError(c, fiber.StatusBadRequest, "INVALID_CYCLE", "current_cycle_used must be a non-negative number.")
	case errors.Is(err, service.ErrInvalidID):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Trip not found.")
	case errors.Is(err, service.ErrRouteUnavailable):
		return writeError(c, fiber.StatusInternalServerError, "ROUTE_UNAVAILABLE", "Failed to fetch route from routing service.")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// CreateTrip godoc
// @Summary      Plan a trip
// @Description  Routes current -> pickup -> dropoff and derives fuel stops and duty statuses.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        trip  body      createTripRequest  true  "Trip locations as lat,lon"
// @Success      200   {object}  model.Trip
// @Failure      400   {object}  errorPayload
// @Failure      500   {object}  errorPayload
// @Router       /api/create_trip/ [post]
func CreateTrip(svc service.TripService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseCreateTrip(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		trip, err := svc.Create(c.UserContext(), req.input())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(trip)
	}
}

// GetTripLog godoc
// @Summary      Duty-status log of a trip
// @Tags         trips
// @Produce      json
// @Param        trip_id  path      int  true  "Trip ID"
// @Success      200      {object}  service.TripLog
// @Failure      404      {object}  errorPayload
// @Router       /api/trip_log/{trip_id}/ [get]
func GetTripLog(svc service.TripService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A trip_id that is not a positive integer names no trip.
		id, ok := parseID(c.Params("trip_id"))
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Trip not found.")
		}
		log, err := svc.Log(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(log)
	}
}

// ListTrips godoc
// @Summary      List trips
// @Tags         trips
// @Produce      json
// @Param        limit   query     int  false  "Page size"  default(10)
// @Param        offset  query     int  false  "Offset"     default(0)
// @Success      200     {object}  service.TripListResult
// @Failure      400     {object}  errorPayload
// @Router       /api/trips [get]
func ListTrips(svc service.TripService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetTrip godoc
// @Summary      Get a trip
// @Tags         trips
// @Produce      json
// @Param        id   path      int  true  "Trip ID"
// @Success      200  {object}  model.Trip
// @Failure      404  {object}  errorPayload
// @Router       /api/trips/{id} [get]
func GetTrip(svc service.TripService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id")
		}
		trip, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(trip)
	}
}

// DeleteTrip godoc
// @Summary      Delete a trip and its archived log sheets
// @Tags         trips
// @Param        id   path  int  true  "Trip ID"
// @Success      204
// @Failure      404  {object}  errorPayload
// @Router       /api/trips/{id} [delete]
func DeleteTrip(svc service.TripService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
