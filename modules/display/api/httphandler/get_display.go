package httphandler

import (
	"github.com/Zero-1729/volt-sub001/common"
	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getDisplayRequest struct {
	Unit     string `params:"unit"`
	Sats     string `query:"sats"`
	Msat     string `query:"msat"`
	Currency string `query:"currency"`
}

func (r getDisplayRequest) Validate() error {
	var errList []error
	if err := validateUnit("unit", r.Unit); err != nil {
		errList = append(errList, err)
	}
	if err := validateSats(r.Sats, r.Msat); err != nil {
		errList = append(errList, err)
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type getDisplayResponse = common.HttpResponse[displayResult]

func (h *HttpHandler) GetDisplay(ctx *fiber.Ctx) (err error) {
	var req getDisplayRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	unit := lo.Must(amount.ParseUnit(req.Unit))
	display, err := h.usecase.Display(ctx.UserContext(), satsValue(req.Sats, req.Msat), unit, req.Currency)
	if err != nil {
		return publicError(err, "can't display amount")
	}

	resp := getDisplayResponse{
		Result: lo.ToPtr(toDisplayResult(display)),
	}
	return errors.WithStack(ctx.JSON(resp))
}
