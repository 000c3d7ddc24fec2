package httpclient

import (
	"context"
	"net"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newServer(t *testing.T, handler fasthttp.RequestHandler) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &fasthttp.Server{Handler: handler}
	go func() { _ = server.Serve(ln) }()
	t.Cleanup(func() { _ = server.Shutdown() })

	return "http://" + ln.Addr().String()
}

func TestNew(t *testing.T) {
	testcases := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"absolute", "https://mempool.space/api", false},
		{"relative", "/api", true},
		{"no_scheme", "mempool.space", true},
		{"invalid", "http://[::1", true},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := New(tc.baseURL)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultTimeout, client.Timeout)
			assert.NotNil(t, client.Headers)
		})
	}
}

func TestBaseURLIsCopied(t *testing.T) {
	client, err := New("https://mempool.space/api")
	require.NoError(t, err)

	u := client.BaseURL()
	u.Path = "/changed"
	assert.Equal(t, "/api", client.BaseURL().Path)
}

func TestGetJSON(t *testing.T) {
	baseURL := newServer(t, func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/api/v1/echo":
			ctx.SetContentType("application/json")
			ctx.SetBodyString(`{"query":"` + string(ctx.QueryArgs().Peek("q")) + `","header":"` + string(ctx.Request.Header.Peek("X-Test")) + `"}`)
		case "/api/v1/text":
			ctx.SetContentType("text/plain")
			ctx.SetBodyString("ok")
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	})
	client, err := New(baseURL+"/api", Config{
		Timeout: 5 * time.Second,
		Headers: map[string]string{"X-Test": "default"},
	})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("decodes", func(t *testing.T) {
		var out struct {
			Query  string `json:"query"`
			Header string `json:"header"`
		}
		err := client.GetJSON(ctx, "/v1/echo", RequestOptions{Query: url.Values{"q": {"usd"}}}, &out)
		require.NoError(t, err)
		assert.Equal(t, "usd", out.Query)
		assert.Equal(t, "default", out.Header)
	})
	t.Run("request_header_overrides", func(t *testing.T) {
		var out struct {
			Header string `json:"header"`
		}
		err := client.GetJSON(ctx, "/v1/echo", RequestOptions{Header: map[string]string{"X-Test": "request"}}, &out)
		require.NoError(t, err)
		assert.Equal(t, "request", out.Header)
	})
	t.Run("status", func(t *testing.T) {
		var out map[string]any
		assert.Error(t, client.GetJSON(ctx, "/v1/missing", RequestOptions{}, &out))
	})
	t.Run("content_type", func(t *testing.T) {
		var out map[string]any
		assert.Error(t, client.GetJSON(ctx, "/v1/text", RequestOptions{}, &out))
	})
	t.Run("expired_context", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
		defer cancel()
		var out map[string]any
		assert.Error(t, client.GetJSON(ctx, "/v1/echo", RequestOptions{}, &out))
	})
}
