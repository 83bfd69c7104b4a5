package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"tripapi/internal/service"
)

// createTripRequest is the body of POST /api/create_trip/.
type createTripRequest struct {
	CurrentLocation        string     `json:"current_location"`
	CurrentLocationAddress *string    `json:"current_location_address"`
	PickupLocation         string     `json:"pickup_location"`
	PickupAddress          *string    `json:"pickup_address"`
	DropoffLocation        string     `json:"dropoff_location"`
	DropoffAddress         *string    `json:"dropoff_address"`
	CurrentCycleUsed       cycleHours `json:"current_cycle_used"`
}

func (r createTripRequest) input() service.CreateTripInput {
	return service.CreateTripInput{
		CurrentLocation:        r.CurrentLocation,
		CurrentLocationAddress: r.CurrentLocationAddress,
		PickupLocation:         r.PickupLocation,
		PickupAddress:          r.PickupAddress,
		DropoffLocation:        r.DropoffLocation,
		DropoffAddress:         r.DropoffAddress,
		CurrentCycleUsed:       r.CurrentCycleUsed.value(),
	}
}

// cycleHours accepts a JSON number, a numeric string or null.
// Anything else is kept as invalid so the service reports it after the
// required-field checks.
type cycleHours struct {
	hours   float64
	invalid bool
}

func (h *cycleHours) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*h = cycleHours{}
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*h = cycleHours{hours: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		h.parse(s)
		return nil
	}
	*h = cycleHours{invalid: true}
	return nil
}

func (h *cycleHours) parse(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		*h = cycleHours{}
		return
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*h = cycleHours{invalid: true}
		return
	}
	*h = cycleHours{hours: n}
}

func (h cycleHours) value() float64 {
	if h.invalid {
		return math.NaN()
	}
	return h.hours
}

func isForm(c *fiber.Ctx) bool {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	return strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

func optionalForm(c *fiber.Ctx, key string) *string {
	v := c.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}

// parseCreateTrip reads the request from a JSON or form body.
func parseCreateTrip(c *fiber.Ctx) (createTripRequest, error) {
	var req createTripRequest
	if isForm(c) {
		req.CurrentLocation = c.FormValue("current_location")
		req.CurrentLocationAddress = optionalForm(c, "current_location_address")
		req.PickupLocation = c.FormValue("pickup_location")
		req.PickupAddress = optionalForm(c, "pickup_address")
		req.DropoffLocation = c.FormValue("dropoff_location")
		req.DropoffAddress = optionalForm(c, "dropoff_address")
		req.CurrentCycleUsed.parse(c.FormValue("current_cycle_used"))
		return req, nil
	}

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return req, nil
	}
	err := json.Unmarshal(body, &req)
	return req, err
}

// tripIDFromBody reads trip_id from a JSON or form body. JSON numbers and strings are accepted.
func tripIDFromBody(c *fiber.Ctx) (string, error) {
	if isForm(c) {
		return c.FormValue("trip_id"), nil
	}

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return "", nil
	}
	var req struct {
		TripID json.RawMessage `json:"trip_id"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return "", err
	}
	raw := bytes.TrimSpace(req.TripID)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return string(raw), nil
}

// parseID parses a positive integer identifier.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
