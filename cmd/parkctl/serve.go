package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/visl/parking-test/pkg/cli"
	"github.com/visl/parking-test/pkg/config"
	"github.com/visl/parking-test/pkg/server"
	"github.com/visl/parking-test/pkg/telemetry/logging"
)

var serveFlags struct {
	listenAddress string
	logLevel      string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the parking HTTP service",
	Long: `Start the parking HTTP service with the specified configuration.

The service builds the configured grid once and then serves park, unpark,
capacity and diagram requests against it until shut down.

Examples:
  # Start with default config
  parkctl serve

  # Start with custom config
  parkctl serve --config /etc/parkctl/config.yaml

  # Override listen address
  parkctl serve --listen 0.0.0.0:8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveFlags.listenAddress, "listen", "l", "", "override listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	// Apply flag overrides
	if serveFlags.listenAddress != "" {
		cfg.Server.ListenAddress = serveFlags.listenAddress
	}
	if serveFlags.logLevel != "" {
		cfg.Logging.Level = serveFlags.logLevel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return cli.NewCommandError("serve", err)
	}
	slog.SetDefault(logger)

	srv, err := server.New(cfg, logger)
	if err != nil {
		return cli.NewCommandError("serve", err)
	}

	ctx := cli.SetupSignalHandler()

	if cfg.Server.WatchConfig {
		watcher, err := config.NewWatcher(cfgFile, logger)
		if err != nil {
			return cli.NewCommandError("serve", fmt.Errorf("failed to watch config: %w", err))
		}
		go func() {
			err := watcher.Watch(ctx, func(next *config.Config) {
				if err := srv.ApplyLayout(next.Parking); err != nil {
					logger.Warn("reloaded layout not applied", "error", err)
				}
			})
			if err != nil {
				logger.Error("configuration watcher exited", "error", err)
			}
		}()
	}

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("serve", err)
	}
	return nil
}
