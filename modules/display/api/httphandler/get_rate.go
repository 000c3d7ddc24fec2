package httphandler

import (
	"github.com/Zero-1729/volt-sub001/common"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

type getRateRequest struct {
	Currency string `params:"currency"`
}

type getRateResult struct {
	Currency string `json:"currency"`
	Rate     string `json:"rate"`
}

type getRateResponse = common.HttpResponse[getRateResult]

func (h *HttpHandler) GetRate(ctx *fiber.Ctx) (err error) {
	var req getRateRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	rate, err := h.usecase.Rate(ctx.UserContext(), req.Currency)
	if err != nil {
		return publicError(err, "can't get exchange rate")
	}

	resp := getRateResponse{
		Result: &getRateResult{
			Currency: rate.Currency,
			Rate:     rate.Rate.String(),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
