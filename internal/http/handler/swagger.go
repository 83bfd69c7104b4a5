package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"tripapi/docs"
)

// SwaggerUI serves the Swagger UI with the host and scheme of the incoming
// request. fallbackHost is used when the request carries no Host header.
func SwaggerUI(fallbackHost string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs.SwaggerInfo.Host = swaggerHost(c.Get(fiber.HeaderHost), fallbackHost)
		docs.SwaggerInfo.Schemes = []string{swaggerScheme(c.Protocol(), c.Get(fiber.HeaderXForwardedProto))}

		return swagger.HandlerDefault(c)
	}
}

func swaggerHost(host, fallback string) string {
	if host = strings.TrimSpace(host); host != "" {
		return host
	}
	return fallback
}

// swaggerScheme prefers the first hop of X-Forwarded-Proto.
func swaggerScheme(protocol, forwarded string) string {
	if forwarded == "" {
		return protocol
	}
	return strings.TrimSpace(strings.Split(forwarded, ",")[0])
}
