package httpserver

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"

	"exusiai.dev/trialstats/internal/app/appconfig"
	"exusiai.dev/trialstats/internal/constant"
	"exusiai.dev/trialstats/internal/pkg/bininfo"
	"exusiai.dev/trialstats/internal/pkg/fiberstore"
	"exusiai.dev/trialstats/internal/pkg/middlewares"
	"exusiai.dev/trialstats/internal/pkg/observability"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
)

var registerPromOnce sync.Once

// New returns a bare fiber app sharing the production error handling and JSON codec.
func New(conf fiber.Config) *fiber.App {
	conf.ErrorHandler = ErrorHandler
	conf.JSONEncoder = json.Marshal
	conf.JSONDecoder = json.Unmarshal
	return fiber.New(conf)
}

func Create(conf *appconfig.Config, rdb *redis.Client, tp *tracesdk.TracerProvider) *fiber.App {
	app := New(fiber.Config{
		AppName:      "Trial Statistics Backend",
		ServerHeader: fmt.Sprintf("trialstats/%s", bininfo.Version),
		ReadTimeout:  time.Second * 20,
		WriteTimeout: time.Second * 20,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		Immutable:               true,
	})

	app.Use(fibersentry.New(fibersentry.Config{
		Repanic: true,
		Timeout: time.Second * 5,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders:  "Content-Type, Authorization, X-Requested-With, Accept-Language, sentry-trace",
		ExposeHeaders: "Content-Type, " + constant.RequestIDHeader,
	}))

	middlewares.Logger(app)
	// the logger chain injects the request id into the user context; copy it into ctx.Locals
	app.Use(middlewares.RequestID())

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:         31356000,
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	app.Use(middlewares.InjectI18n())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().
				Str("evt.name", "http.panic").
				Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	registerPromOnce.Do(func() {
		fiberprom := fiberprometheus.New(observability.ServiceName)
		fiberprom.RegisterAt(app, "/metrics")
		app.Use(fiberprom.Middleware)
	})

	if tp != nil {
		app.Use(otelfiber.Middleware(
			otelfiber.WithTracerProvider(tp),
			otelfiber.WithServerName(observability.ServiceName),
		))
	}

	if conf.DevMode {
		log.Info().
			Str("evt.name", "http.devmode").
			Msg("running in DEV mode")
		app.Use(pprof.New())
	} else {
		app.Use(middlewares.EnrichSentry())
		app.Use(limiter.New(limiter.Config{
			Max:        conf.RateLimitMax,
			Expiration: conf.RateLimitExpiration,
			Storage:    fiberstore.NewRedis(rdb, "trialstats:limiter"),
			LimitReached: func(c *fiber.Ctx) error {
				return pgerr.New(fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS", "too many requests: please retry later")
			},
		}))
	}

	return app
}
