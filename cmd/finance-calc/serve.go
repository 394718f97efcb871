package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/finance-calc/internal/cache"
	"github.com/iwvelando/finance-calc/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as an HTTP JSON API",
		Args:  cobra.NoArgs,
	}
	address := cmd.Flags().String("address", "", "listen address override")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if *address != "" {
			a.conf.Server.Address = *address
		}
		srvConfig, err := server.NewConfig(a.conf.Server)
		if err != nil {
			return err
		}

		resultCache, err := cache.New(a.conf.Cache, a.logger)
		if err != nil {
			return err
		}
		if closer, ok := resultCache.(interface{ Close() error }); ok {
			defer func() { _ = closer.Close() }()
		}

		handler := server.NewHandler(a.logger, srvConfig.BodySizeBytes(), Version, server.Settings{
			Cache:    resultCache,
			Locale:   a.conf.Format.Locale,
			Policy:   a.conf.FixedIncome,
			IRRGuess: a.conf.IRR.Guess,
		})
		httpServer := &http.Server{
			Addr:              srvConfig.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("starting HTTP server",
				zap.String("op", "main.serve"),
				zap.String("address", srvConfig.Address),
				zap.Int64("maxBodySize", srvConfig.BodySizeBytes()),
				zap.Bool("cache", a.conf.Cache.Enabled),
			)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		a.logger.Info("shutting down HTTP server", zap.String("op", "main.serve"))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
	return cmd
}
