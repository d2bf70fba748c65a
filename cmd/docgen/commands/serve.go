package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/docgen/internal/handler"
	"github.com/deppfellow/docgen/internal/logger"
	"github.com/deppfellow/docgen/internal/router"
	"github.com/deppfellow/docgen/internal/server"
	"github.com/deppfellow/docgen/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

// serve: run the HTTP server until SIGINT or SIGTERM.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loggerService, err := logger.NewLoggerService(cfg.Observability)
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			log := logger.NewLoggerWithService(cfg.Observability, loggerService)

			srv, err := server.New(cfg, &log, loggerService)
			if err != nil {
				log.Error().Err(err).Msg("failed to initialize server")
				return err
			}

			services, err := service.NewServices(srv)
			if err != nil {
				log.Error().Err(err).Msg("could not create services")
				return err
			}

			r := router.NewRouter(srv, handler.NewHandlers(srv, services))
			srv.SetupHTTPServer(r)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Error().Err(err).Msg("server stopped")
				}
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server forced to shutdown")
				return err
			}

			log.Info().Msg("server exited properly")
			return nil
		},
	}
}
