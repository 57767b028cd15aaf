package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/analytics"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/config"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/contact"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/emailrelay"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/log"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/server"
)

const (
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 24 * time.Hour
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	log.Configure(log.Config{Level: cfg.LogLevel, Service: "portfolio"})
	logger := log.WithComponent("serve")
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender, err := newSender(cfg)
	if err != nil {
		return err
	}

	store, err := analytics.Open(ctx, cfg.AnalyticsDB)
	if err != nil {
		return errors.Wrap(err, "failed to open analytics store")
	}
	defer store.Close()
	go cleanupLoop(ctx, store)

	srv, err := server.New(cfg, contact.NewPipeline(sender, cfg.OwnerEmail), store)
	if err != nil {
		return err
	}
	defer srv.Close()

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpSrv.Addr).Str("transport", cfg.MailTransport).Msg("server starting")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server error")
		}
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}
	return nil
}

func newSender(cfg config.Config) (emailrelay.Sender, error) {
	switch cfg.MailTransport {
	case config.TransportEmailJS:
		return emailrelay.NewEmailJS(cfg.EmailJS), nil
	case config.TransportSMTP:
		return emailrelay.NewSMTP(cfg.SMTP), nil
	default:
		return nil, errors.Errorf("unknown mail transport %q", cfg.MailTransport)
	}
}

// cleanupLoop drops visitor rows past the retention window once a day.
func cleanupLoop(ctx context.Context, store *analytics.Store) {
	logger := log.WithComponent("analytics")
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		n, err := store.Cleanup(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("retention cleanup failed")
		} else if n > 0 {
			logger.Info().Int64("removed", n).Msg("retention cleanup")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
