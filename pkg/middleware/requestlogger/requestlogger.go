package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/Zero-1729/volt-sub001/pkg/middleware/requestcontext"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type Config struct {
	// WithRequestHeader logs request headers, except HiddenRequestHeaders.
	WithRequestHeader bool `mapstructure:"request_header"`

	// WithRequestQuery logs the raw query string.
	WithRequestQuery bool `mapstructure:"request_query"`

	// Disable drops INFO request logs. Failed and slow requests are still logged.
	Disable bool `mapstructure:"disable"`

	HiddenRequestHeaders []string `mapstructure:"hidden_request_headers"`

	// SlowThreshold logs requests slower than it at WARN. Zero disables it.
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
}

// New logs every request once it completed.
func New(config Config) fiber.Handler {
	hidden := lo.SliceToMap(config.HiddenRequestHeaders, func(header string) (string, struct{}) {
		return strings.ToLower(strings.TrimSpace(header)), struct{}{}
	})

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		attrs := []slog.Attr{
			slogx.String("event", "api_request"),
			slog.Int64("latency", latency.Milliseconds()),
			slogx.String("latency_human", latency.String()),
		}
		switch {
		case err != nil || status >= http.StatusInternalServerError:
			level = slog.LevelError
			attrs = append(attrs, slogx.Error(lo.Ternary(err != nil, err, error(fiber.NewError(status)))))
		case config.SlowThreshold > 0 && latency > config.SlowThreshold:
			level = slog.LevelWarn
		}
		if config.Disable && level == slog.LevelInfo {
			return errors.WithStack(err)
		}

		request := []slog.Attr{
			slog.Time("time", start),
			slogx.String("method", c.Method()),
			slogx.String("path", c.Path()),
			slogx.String("route", c.Route().Path),
			slogx.String("ip", requestcontext.GetClientIP(c.UserContext())),
			slogx.String("user_agent", string(c.Context().UserAgent())),
			slogx.Any("params", c.AllParams()),
		}
		if config.WithRequestQuery {
			request = append(request, slogx.String("query", string(c.Request().URI().QueryString())))
		}
		if config.WithRequestHeader {
			headers := make([]any, 0)
			for k, v := range c.GetReqHeaders() {
				if _, ok := hidden[strings.ToLower(k)]; ok {
					continue
				}
				headers = append(headers, slogx.Any(k, v))
			}
			request = append(request, slogx.Group("header", headers...))
		}
		response := []slog.Attr{
			slogx.Int("status", status),
			slogx.Int("length", len(c.Response().Body())),
		}

		logger.LogAttrs(c.UserContext(), level, "Request Completed", append([]slog.Attr{
			{Key: "request", Value: slog.GroupValue(request...)},
			{Key: "response", Value: slog.GroupValue(response...)},
		}, attrs...)...)

		return errors.WithStack(err)
	}
}
