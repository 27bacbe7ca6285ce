package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"

	"incomeviz.dev/internal/app"
	"incomeviz.dev/internal/appconf"
	"incomeviz.dev/internal/dataset"
	"incomeviz.dev/internal/logging"
	"incomeviz.dev/internal/restapi"
	"incomeviz.dev/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func (c *CLI) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Long: `Serve the household queries over HTTP until SIGINT or SIGTERM.

The data file is loaded at startup. A failed load is logged and retried on the
next request, so the server stays up while the file is being replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd.Context())
		},
	}
}

// newServerHandler wires the API routes, and the debug pages in development,
// behind the shared middleware chain.
func newServerHandler(a *app.Application) (http.Handler, *restapi.RestAPI) {
	router := httprouter.New()

	api := restapi.NewRestAPI(a)
	api.SetRoutes(router)

	if a.Config.Env == appconf.Development {
		webUI := &webui.WebUI{Application: a}
		webUI.SetWebUIRoutes(router)
	}

	return api.Handler(router), api
}

func (c *CLI) serve(ctx context.Context) error {
	a := c.app
	logger := a.Logger.With("component", "server")

	if table, err := a.Dataset.Table(ctx); err != nil {
		logging.LogError(logger, "initial dataset load failed", err,
			slog.String("detail", dataset.Describe(err)))
	} else {
		logger.Info("dataset loaded",
			"source", table.Source,
			"rows", table.Len(),
			"categories", len(table.Categories()))
	}

	handler, api := newServerHandler(a)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", a.Config.Env.String())
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
