package requestcontext

import (
	"context"
	"net/http"

	"github.com/Zero-1729/volt-sub001/common"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

// Option extracts a value of the request into the request context.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// New setup request context from the given options.
// A failing option stops the request with the status it carries, or 500 otherwise.
func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err == nil {
				continue
			}

			rErr := requestcontextError{}
			if errors.As(err, &rErr) {
				return reject(c, rErr.status, rErr.message)
			}
			logger.ErrorContext(ctx, "Failed to extract request context", err,
				slogx.String("event", "requestcontext/error"),
				slogx.Int("option_index", i),
			)
			return reject(c, http.StatusInternalServerError, "Internal Server Error")
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func reject(c *fiber.Ctx, status int, message string) error {
	return errors.WithStack(c.Status(status).JSON(common.HttpResponse[any]{Error: &message}))
}
