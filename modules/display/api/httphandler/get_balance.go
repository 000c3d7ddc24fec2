package httphandler

import (
	"github.com/Zero-1729/volt-sub001/common"
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getBalanceRequest struct {
	Sats     string `query:"sats"`
	Msat     string `query:"msat"`
	Currency string `query:"currency"`
}

func (r getBalanceRequest) Validate() error {
	return errs.WithPublicMessage(validateSats(r.Sats, r.Msat), "validation error")
}

type getBalanceResult struct {
	Sats displayResult  `json:"sats"`
	BTC  displayResult  `json:"btc"`
	Fiat *displayResult `json:"fiat"`
}

type getBalanceResponse = common.HttpResponse[getBalanceResult]

func (h *HttpHandler) GetBalance(ctx *fiber.Ctx) (err error) {
	var req getBalanceRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	balance, err := h.usecase.DisplayAll(ctx.UserContext(), satsValue(req.Sats, req.Msat), req.Currency)
	if err != nil {
		return publicError(err, "can't display balance")
	}

	result := getBalanceResult{
		Sats: toDisplayResult(balance.Sats),
		BTC:  toDisplayResult(balance.BTC),
	}
	if balance.Fiat != nil {
		result.Fiat = lo.ToPtr(toDisplayResult(*balance.Fiat))
	}

	resp := getBalanceResponse{
		Result: &result,
	}
	return errors.WithStack(ctx.JSON(resp))
}
