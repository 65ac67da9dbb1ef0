package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptInFor lets clients and proxies reuse the response for ttl.
func OptInFor(ctx *fiber.Ctx, ttl time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(ttl.Seconds())))
}

// OptOut forbids caching. Reports and leaderboards are computed against the
// current time and change as trials complete.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
