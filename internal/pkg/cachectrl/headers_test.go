package cachectrl_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/trialstats/internal/pkg/cachectrl"
)

func TestHeaders(t *testing.T) {
	app := fiber.New()
	app.Get("/in", func(c *fiber.Ctx) error {
		cachectrl.OptInFor(c, time.Hour)
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/out", func(c *fiber.Ctx) error {
		cachectrl.OptOut(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/in", nil))
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=3600", resp.Header.Get(fiber.HeaderCacheControl))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/out", nil))
	require.NoError(t, err)
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, "0", resp.Header.Get(fiber.HeaderExpires))
}
