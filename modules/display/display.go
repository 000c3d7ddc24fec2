// Package display formats wallet amounts for every surface of the application.
package display

import (
	"context"

	"github.com/Zero-1729/volt-sub001/internal/config"
	displayapi "github.com/Zero-1729/volt-sub001/modules/display/api"
	displayusecase "github.com/Zero-1729/volt-sub001/modules/display/usecase"
	"github.com/Zero-1729/volt-sub001/pkg/amount"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	"github.com/Zero-1729/volt-sub001/pkg/pricefeed"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

// Package provides the display services to an injector holding a [config.Config].
var Package = do.Package(
	do.Lazy(NewPricefeed),
	do.Lazy(NewUsecase),
)

func NewPricefeed(injector do.Injector) (pricefeed.Provider, error) {
	conf := do.MustInvoke[config.Config](injector)

	provider, err := pricefeed.New(conf.Pricefeed.Config)
	if err != nil {
		return nil, errors.Wrap(err, "invalid price feed configuration")
	}
	return provider, nil
}

func NewUsecase(injector do.Injector) (*displayusecase.Usecase, error) {
	conf := do.MustInvoke[config.Config](injector)
	rates, err := do.Invoke[pricefeed.Provider](injector)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return displayusecase.New(amount.New(conf.Format), rates, conf.Pricefeed.Currency), nil
}

// Mount mounts the display HTTP API on the server of the injector.
func Mount(ctx context.Context, injector do.Injector) error {
	app, err := do.Invoke[*fiber.App](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	uc, err := do.Invoke[*displayusecase.Usecase](injector)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := displayapi.NewHTTPHandler(uc).Mount(app); err != nil {
		return errors.Wrap(err, "can't mount display API")
	}
	logger.InfoContext(ctx, "Mounted HTTP handler", slogx.String("module", "display"))
	return nil
}
