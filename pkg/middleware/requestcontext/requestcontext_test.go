package requestcontext

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, config WithClientIPConfig) *fiber.App {
	t.Helper()
	withClientIP, err := WithClientIP(config)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(New(WithRequestId(), withClientIP))
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set("X-Client-IP", GetClientIP(c.UserContext()))
		c.Set("X-Context-Request-ID", GetRequestId(c.UserContext()))
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestWithClientIP(t *testing.T) {
	testcases := []struct {
		name    string
		config  WithClientIPConfig
		headers map[string]string
		status  int
		wantIP  string
	}{
		{
			name:   "direct",
			status: http.StatusOK,
		},
		{
			name:    "trusted_header",
			config:  WithClientIPConfig{TrustedHeader: "CF-Connecting-IP"},
			headers: map[string]string{"CF-Connecting-IP": "203.0.113.7", fiber.HeaderXForwardedFor: "198.51.100.1"},
			status:  http.StatusOK,
			wantIP:  "203.0.113.7",
		},
		{
			name:    "trusted_proxies",
			config:  WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/8"}},
			headers: map[string]string{fiber.HeaderXForwardedFor: "198.51.100.1, 203.0.113.7, 10.0.0.2"},
			status:  http.StatusOK,
			wantIP:  "203.0.113.7",
		},
		{
			name:    "first_forwarded",
			headers: map[string]string{fiber.HeaderXForwardedFor: "198.51.100.1, 10.0.0.2"},
			status:  http.StatusOK,
			wantIP:  "198.51.100.1",
		},
		{
			name:    "reject_malformed",
			config:  WithClientIPConfig{EnableRejectMalformedRequest: true},
			headers: map[string]string{fiber.HeaderXForwardedFor: "198.51.100.1"},
			status:  http.StatusForbidden,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t, tc.config)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
			switch {
			case tc.status != http.StatusOK:
			case tc.wantIP == "":
				assert.NotEmpty(t, resp.Header.Get("X-Client-IP"))
			default:
				assert.Equal(t, tc.wantIP, resp.Header.Get("X-Client-IP"))
			}
		})
	}

	t.Run("invalid_trusted_proxies", func(t *testing.T) {
		_, err := WithClientIP(WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/33"}})
		assert.Error(t, err)
	})
}

func TestWithRequestId(t *testing.T) {
	app := newTestApp(t, WithClientIPConfig{})

	t.Run("generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		id := resp.Header.Get(requestid.ConfigDefault.Header)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, resp.Header.Get("X-Context-Request-ID"))
	})
	t.Run("from_client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.ConfigDefault.Header, "wallet-42")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "wallet-42", resp.Header.Get("X-Context-Request-ID"))
	})
}
