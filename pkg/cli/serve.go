package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/psicorisk/pkg/cli/config"
	httpctrl "github.com/sesmt-lab/psicorisk/pkg/controller/http"
	"github.com/sesmt-lab/psicorisk/pkg/service/worker"
	"github.com/sesmt-lab/psicorisk/pkg/usecase"
	"github.com/sesmt-lab/psicorisk/pkg/utils/logging"
	"github.com/sesmt-lab/psicorisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var sentryDSN string
	var reconcileInterval time.Duration
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("PSICORISK_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting",
			Sources:     cli.EnvVars("PSICORISK_SENTRY_DSN"),
			Destination: &sentryDSN,
		},
		&cli.DurationFlag{
			Name:        "reconcile-interval",
			Usage:       "Interval of the evaluation counter reconciliation worker (0 disables it)",
			Value:       time.Hour,
			Sources:     cli.EnvVars("PSICORISK_RECONCILE_INTERVAL"),
			Destination: &reconcileInterval,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if sentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{Dsn: sentryDSN}); err != nil {
					return goerr.Wrap(err, "failed to initialize sentry")
				}
				defer sentry.Flush(2 * time.Second)
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)
			server := httpctrl.New(uc)

			if reconcileInterval > 0 {
				w := worker.NewCounterReconcileWorker(repo, reconcileInterval)
				if err := w.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start reconcile worker")
				}
				defer w.Stop()
			}

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("HTTP server listening", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "HTTP server failed")
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Shutting down", "signal", sig.String())
			case <-ctx.Done():
				logging.Default().Info("Shutting down", "reason", "context cancelled")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown HTTP server")
			}

			return nil
		},
	}
}
