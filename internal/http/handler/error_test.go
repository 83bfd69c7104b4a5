package handler

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"tripapi/internal/http/middleware"
)

func TestErrorHandler(t *testing.T) {
	var buf bytes.Buffer
	orig, origFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(orig)
		log.SetFlags(origFlags)
	})

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(time.UTC)})
	app.Use(middleware.RequestID())
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("pq: connection refused") })
	app.Get("/large", func(c *fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge })
	app.Get("/unavailable", func(c *fiber.Ctx) error { return fiber.ErrServiceUnavailable })

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/boom", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"/large", http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
		{"/unavailable", http.StatusServiceUnavailable, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(middleware.RequestIDHeader, "rid-1")
			resp, _ := app.Test(req)

			assert.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, "rid-1", body.RequestID)
			assert.NotContains(t, body.Error.Message, "pq:")
		})
	}

	assert.Contains(t, buf.String(), `"event":"unhandled_error"`)
	assert.Contains(t, buf.String(), "pq: connection refused")
}
