package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID on requests and responses.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is where the request ID is stored in Fiber's locals;
	// the logger and the error envelope both read it from there.
	RequestIDLocalKey = "request_id"
)

// RequestID tags every request with an ID. A client-supplied X-Request-ID is
// trusted and echoed back; otherwise a fresh UUID is generated. The ID ends up
// in the locals, the response header, and every log line and error body for
// the request.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
