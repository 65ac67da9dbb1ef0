package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/trialstats/internal/constant"
	"exusiai.dev/trialstats/internal/pkg/flog"
)

// RequestID copies the id injected by the logger chain into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
