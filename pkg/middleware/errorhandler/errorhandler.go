package errorhandler

import (
	httperrorhandler "github.com/Zero-1729/volt-sub001/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
)

// New setup error handler middleware.
// Errors are rendered before the response leaves the handler chain, so request logger sees the final status.
func New() fiber.Handler {
	handle := httperrorhandler.NewHTTPErrorHandler()
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return handle(ctx, err)
	}
}
