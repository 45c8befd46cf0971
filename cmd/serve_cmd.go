package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hotel-site/pkg/config"
	"hotel-site/pkg/handlers"
	"hotel-site/pkg/services"
	"hotel-site/pkg/views"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the site via HTTP. In DEV_MODE views are reloaded when they change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, svc, err := setup()
			if err != nil {
				return err
			}
			return serveWebsite(cmd.Context(), cfg, logger, svc)
		},
	}
}

// serveWebsite runs the web server until ctx is done or a signal arrives
func serveWebsite(ctx context.Context, cfg *config.Config, logger *log.Logger, svc *services.Service) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := views.NewEngine(cfg.ViewsDir, logger)
	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           handlers.New(svc, engine, logger, cfg.StaticDir).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cfg.LogServerStart(logger)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.DevMode {
		g.Go(func() error {
			return engine.Watch(gctx, nil)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
