package errorhandler

import (
	"net/http"

	"github.com/Zero-1729/volt-sub001/common"
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

// NewHTTPErrorHandler returns the fiber error handler rendering errors in the [common.HttpResponse] envelope.
//
// Public errors are shown to the client as-is, fiber errors keep their status and
// anything else is logged and hidden behind a 500.
func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			return respond(ctx, PublicStatusCode(err), e.Message())
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return respond(ctx, e.Code, e.Message)
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error", err,
			slogx.String("event", "api_unhandled_error"),
			slogx.String("path", ctx.Path()),
		)
		return respond(ctx, http.StatusInternalServerError, "Internal Server Error")
	}
}

// PublicStatusCode returns the status of a public error from its error kind.
func PublicStatusCode(err error) int {
	switch {
	case errors.Is(err, errs.NotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.SomethingWentWrong):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func respond(ctx *fiber.Ctx, status int, message string) error {
	return errors.WithStack(ctx.Status(status).JSON(common.HttpResponse[any]{
		Error: &message,
	}))
}
