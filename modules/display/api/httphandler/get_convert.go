package httphandler

import (
	"github.com/Zero-1729/volt-sub001/common"
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getConvertRequest struct {
	Amount   string `query:"amount"`
	From     string `query:"from"`
	To       string `query:"to"`
	Currency string `query:"currency"`
}

func (r getConvertRequest) Validate() error {
	var errList []error
	if err := validateAmount("amount", r.Amount); err != nil {
		errList = append(errList, err)
	}
	if err := validateUnit("from", r.From); err != nil {
		errList = append(errList, err)
	}
	if err := validateUnit("to", r.To); err != nil {
		errList = append(errList, err)
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getConvertResult struct {
	Amount  string        `json:"amount"`
	Sats    string        `json:"sats"`
	Display displayResult `json:"display"`
}

type getConvertResponse = common.HttpResponse[getConvertResult]

func (h *HttpHandler) GetConvert(ctx *fiber.Ctx) (err error) {
	var req getConvertRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	from := lo.Must(amount.ParseUnit(req.From))
	to := lo.Must(amount.ParseUnit(req.To))
	conversion, err := h.usecase.Convert(ctx.UserContext(), lo.Must(amount.Parse(req.Amount)), from, to, req.Currency)
	if err != nil {
		return publicError(err, "can't convert amount")
	}

	resp := getConvertResponse{
		Result: &getConvertResult{
			Amount:  conversion.Amount.String(),
			Sats:    conversion.Sats.String(),
			Display: toDisplayResult(conversion.Display),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
