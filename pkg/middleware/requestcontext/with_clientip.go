package requestcontext

import (
	"context"
	"net"

	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedProxiesIP lists the CIDR ranges of every proxy between the server and the client.
	// When set, the client IP is the last `X-Forwarded-For` entry outside these ranges.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`

	// TrustedHeader is a header carrying the client IP (e.g. X-Real-IP, CF-Connecting-IP).
	// It takes priority over every other source.
	TrustedHeader string `mapstructure:"trusted_proxies_header"`

	// EnableRejectMalformedRequest returns 403 when a proxied request has no usable client IP.
	EnableRejectMalformedRequest bool `mapstructure:"enable_reject_malformed_request"`
}

// WithClientIP resolves the client IP with `X-Forwarded-For` spoofing prevention.
func WithClientIP(config WithClientIPConfig) (Option, error) {
	trusted, err := parseCIDRs(config.TrustedProxiesIP)
	if err != nil {
		return nil, errors.Wrap(err, "invalid trusted proxies")
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		if config.TrustedHeader != "" {
			if headerIP := c.Get(config.TrustedHeader); net.ParseIP(headerIP) != nil {
				return context.WithValue(ctx, clientIPKey{}, headerIP), nil
			}
		}

		forwarded := c.IPs()
		if len(forwarded) == 0 {
			return context.WithValue(ctx, clientIPKey{}, c.IP()), nil
		}

		if len(trusted) > 0 {
			for i := len(forwarded) - 1; i >= 0; i-- {
				if ip := net.ParseIP(forwarded[i]); ip != nil && !trusted.contains(ip) {
					return context.WithValue(ctx, clientIPKey{}, ip.String()), nil
				}
			}
			return context.WithValue(ctx, clientIPKey{}, forwarded[0]), nil
		}

		if config.EnableRejectMalformedRequest {
			logger.WarnContext(ctx, "IP spoofing detected, rejecting request",
				slogx.String("event", "requestcontext/ip_spoofing_detected"),
				slogx.String("ip", c.IP()),
				slogx.Any("forwarded", forwarded),
			)
			return nil, requestcontextError{
				status:  fiber.StatusForbidden,
				message: "not allowed to access",
			}
		}
		return context.WithValue(ctx, clientIPKey{}, forwarded[0]), nil
	}, nil
}

// GetClientIP returns the client IP from context, or empty string when the context has none.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

type ipRanges []*net.IPNet

func (r ipRanges) contains(ip net.IP) bool {
	for _, n := range r {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func parseCIDRs(cidrs []string) (ipRanges, error) {
	ranges := make(ipRanges, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, n, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, errors.Wrapf(err, "can't parse CIDR %q", cidr)
		}
		ranges = append(ranges, n)
	}
	return ranges, nil
}
