package errorhandler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zero-1729/volt-sub001/common"
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	testcases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"public", errs.NewPublicError("bad input"), http.StatusBadRequest, "bad input"},
		{"public_not_found", errs.WithPublicMessage(errors.Wrap(errs.NotFound, "EUR rate"), "no rate"), http.StatusNotFound, "no rate: EUR rate: Not Found"},
		{"public_upstream", errors.Mark(errs.NewPublicError("feed down"), errs.SomethingWentWrong), http.StatusBadGateway, "feed down"},
		{"fiber", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"internal", errors.New("database password is hunter2"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: NewHTTPErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return errors.WithStack(tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var out common.HttpResponse[any]
			require.NoError(t, json.Unmarshal(body, &out))
			require.NotNil(t, out.Error)
			assert.Equal(t, tc.wantError, *out.Error)
			assert.Nil(t, out.Result)
		})
	}
}
