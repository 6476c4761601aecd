package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restevesd/arnes/config"
	"github.com/restevesd/arnes/internal/handlers"
	"github.com/restevesd/arnes/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the advisory HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cfg())
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	est, cleanup, err := newBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	// Load the model up front so the first request does not pay for it.
	// A failure here is not fatal: requests report the model as unavailable
	// and the load is retried on the next prediction.
	if w, ok := est.(interface{ Warm(context.Context) error }); ok {
		if err := w.Warm(ctx); err != nil {
			log.Warnf("Model not loaded at startup: %v", err)
		}
	}

	catalog := services.CatalogFor(cfg.MessageLocale)
	advisorSvc := services.NewAdvisorService(est, catalog)

	adviceHandler := handlers.NewAdviceHandler(advisorSvc)
	modelHandler := handlers.NewModelHandler(est, catalog)

	router := handlers.NewRouter(adviceHandler, modelHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"port":    cfg.Port,
			"backend": cfg.ModelBackend(),
			"model":   cfg.ModelName,
			"locale":  cfg.MessageLocale,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-sigCtx.Done():
	}
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("Server exited")
	return nil
}
