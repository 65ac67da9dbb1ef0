package rekuest

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"exusiai.dev/trialstats/internal/pkg/pgerr"
)

// PositiveIntParam reads a route parameter that must be a positive integer.
func PositiveIntParam(ctx *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(ctx.Params(name))
	if raw == "" {
		return 0, pgerr.ErrInvalidReq.Msg("missing %s", name)
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, pgerr.ErrInvalidReq.Msg("invalid %s: must be a positive integer", name)
	}
	return v, nil
}
