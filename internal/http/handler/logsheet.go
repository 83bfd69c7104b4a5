package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"tripapi/internal/logsheet"
	"tripapi/internal/service"
)

// LogSheetIDHeader carries the archive id when the generated sheet was stored.
const LogSheetIDHeader = "X-LogSheet-ID"

// GenerateLogSheet godoc
// @Summary      Render the driver log sheet of a trip
// @Description  trip_id comes from the query string on GET and from the JSON or form body on POST.
// @Tags         logsheets
// @Accept       json
// @Produce      application/pdf
// @Param        trip_id  query     int  false  "Trip ID (GET)"
// @Param        trip_id  formData  int  false  "Trip ID (POST, JSON or form body)"
// @Success      200  {file}    binary
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /api/logsheet/ [get]
// @Router       /api/logsheet/ [post]
func GenerateLogSheet(svc service.LogSheetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("trip_id")
		if c.Method() == fiber.MethodPost {
			var err error
			if raw, err = tripIDFromBody(c); err != nil {
				return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
			}
		}
		if raw == "" {
			return writeError(c, fiber.StatusBadRequest, "TRIP_ID_REQUIRED", "trip_id is required.")
		}
		id, ok := parseID(raw)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "trip_id must be a positive integer.")
		}

		sheet, err := svc.Generate(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Set(fiber.HeaderContentType, logsheet.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", sheet.Filename))
		if sheet.Archive != nil {
			c.Set(LogSheetIDHeader, sheet.Archive.ID)
		}
		return c.Status(fiber.StatusOK).Send(sheet.Content)
	}
}

// ListLogSheets godoc
// @Summary      Archived log sheets of a trip
// @Tags         logsheets
// @Produce      json
// @Param        id   path      int  true  "Trip ID"
// @Success      200  {array}   model.LogSheet
// @Failure      404  {object}  errorPayload
// @Router       /api/trips/{id}/logsheets [get]
func ListLogSheets(svc service.LogSheetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c.Params("id"))
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id")
		}
		sheets, err := svc.List(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": sheets})
	}
}
