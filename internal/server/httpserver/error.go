package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/trialstats/internal/constant"
	"exusiai.dev/trialstats/internal/pkg/pgerr"
)

func handleCustomError(ctx *fiber.Ctx, e *pgerr.APIError, cause error) error {
	body := fiber.Map{
		"success": false,
		"code":    e.ErrorCode,
		"message": e.Message,
	}
	if cause != nil {
		body["error"] = cause.Error()
	}

	if e.Extras != nil {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var pe *pgerr.APIError
	if errors.As(err, &pe) && pe.StatusCode < fiber.StatusInternalServerError {
		log.Warn().
			Err(err).
			Str("evt.name", "http.error.client").
			Str("method", ctx.Method()).
			Str("path", ctx.Path()).
			Int("status", pe.StatusCode).
			Msg(pe.Message)
		return handleCustomError(ctx, pe, nil)
	}

	var re *pgerr.APIError
	var fe *fiber.Error
	switch {
	case pe != nil:
		re = pe
	case errors.As(err, &fe):
		re = pgerr.New(fe.Code, "UNKNOWN_ERROR", fe.Message)
	default:
		re = pgerr.ErrInternalError
	}

	if re.StatusCode < fiber.StatusInternalServerError {
		return handleCustomError(ctx, re, nil)
	}

	log.Error().
		Stack().
		Err(err).
		Str("evt.name", "http.error.server").
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("internal server error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if id, ok := ctx.Locals(constant.ContextKeyRequestID).(string); ok {
			hub.Scope().SetTag("request_id", id)
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, re, err)
}
