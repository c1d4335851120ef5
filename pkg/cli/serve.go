package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lima-uam/github-artifact-sync/pkg/cli/config"
	controller "github.com/lima-uam/github-artifact-sync/pkg/controller/http"
	githubinfra "github.com/lima-uam/github-artifact-sync/pkg/infra/github"
	"github.com/lima-uam/github-artifact-sync/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
		syncCfg   config.Sync
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, syncCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := syncCfg.Validate(); err != nil {
				return goerr.Wrap(err, "invalid sync configuration")
			}

			githubClient, err := githubinfra.NewClient(githubCfg.Token)
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			syncUC := usecase.NewSync(githubClient, usecase.SyncTarget{
				Branch:          syncCfg.Branch,
				Artifact:        syncCfg.Artifact,
				OutputTemplate:  syncCfg.OutputTemplate,
				SymlinkTemplate: syncCfg.SymlinkTemplate,
			})

			server, err := controller.NewServer(
				ctx,
				syncUC,
				controller.WithAddr(serverCfg.ListenAddr()),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting",
					slog.String("addr", serverCfg.ListenAddr()),
					slog.String("branch", syncCfg.Branch),
					slog.String("artifact", syncCfg.Artifact),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
