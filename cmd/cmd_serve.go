package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zero-1729/volt-sub001/common/errs"
	"github.com/Zero-1729/volt-sub001/internal/config"
	"github.com/Zero-1729/volt-sub001/modules/display"
	"github.com/Zero-1729/volt-sub001/pkg/automaxprocs"
	"github.com/Zero-1729/volt-sub001/pkg/errorhandler"
	"github.com/Zero-1729/volt-sub001/pkg/logger"
	"github.com/Zero-1729/volt-sub001/pkg/logger/slogx"
	errorhandlermiddleware "github.com/Zero-1729/volt-sub001/pkg/middleware/errorhandler"
	"github.com/Zero-1729/volt-sub001/pkg/middleware/requestcontext"
	"github.com/Zero-1729/volt-sub001/pkg/middleware/requestlogger"
	"github.com/Zero-1729/volt-sub001/pkg/stacktrace"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 15 * time.Second
)

func NewServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the amount display HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			defer automaxprocs.Undo()
			return serveHandler(cmd, args)
		},
	}

	// Add local flags
	flags := serveCmd.Flags()
	flags.Int("port", config.DefaultPort, "HTTP server port")

	// Bind flags to configuration
	config.BindPFlag("http_server.port", flags.Lookup("port"))

	return serveCmd
}

// newHTTPServer creates the HTTP server with the middlewares of every API.
func newHTTPServer(conf config.Config) (*fiber.App, error) {
	withClientIP, err := requestcontext.WithClientIP(conf.HTTPServer.RequestIP)
	if err != nil {
		return nil, errors.Wrap(err, "invalid request ip configuration")
	}

	app := fiber.New(fiber.Config{
		AppName:               "volt",
		ErrorHandler:          errorhandler.NewHTTPErrorHandler(),
		DisableStartupMessage: true,
	})
	app.
		Use(favicon.New()).
		Use(cors.New()).
		Use(requestid.New()).
		Use(requestcontext.New(
			requestcontext.WithRequestId(),
			withClientIP,
		)).
		Use(requestlogger.New(conf.HTTPServer.Logger)).
		Use(errorhandlermiddleware.New()).
		Use(fiberrecover.New(fiberrecover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
				logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", errors.Newf("panic: %v", e),
					slogx.Any("stacktrace", stacktrace.Capture(0).Strings()),
				)
			},
		})).
		Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return errors.WithStack(c.SendStatus(http.StatusOK))
	})

	return app, nil
}

func serveHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()
	if err := conf.Validate(); err != nil {
		return errs.WithPublicMessage(err, "invalid configuration")
	}

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New(display.Package)
	do.ProvideValue(injector, conf)
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		return newHTTPServer(do.MustInvoke[config.Config](i))
	})

	// Mount APIs
	if err := display.Mount(ctx, injector); err != nil {
		return errors.WithStack(err)
	}

	// Run API server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slogx.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.ErrorContext(ctx, "Something went wrong, error during running HTTP server", err)
		}
	}()

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	logger.InfoContext(ctx, "Shutting down HTTP server")
	if err := injector.Shutdown(); err != nil {
		return errors.Wrap(err, "failed while gracefully shutting down")
	}
	return nil
}
