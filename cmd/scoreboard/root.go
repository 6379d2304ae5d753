package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nhl-scoreboard/internal/config"
	"github.com/preston-bernstein/nhl-scoreboard/internal/favorite"
	"github.com/preston-bernstein/nhl-scoreboard/internal/logging"
	"github.com/preston-bernstein/nhl-scoreboard/internal/printer"
	"github.com/preston-bernstein/nhl-scoreboard/internal/server"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "scoreboard",
		Short:         "NHL scoreboard for a 64x32 LED panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScoreboard(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(newRunCmd(), newPrintCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Drive the panel and serve the status API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScoreboard(cmd.Context())
		},
	}
}

func newPrintCmd() *cobra.Command {
	var (
		team    string
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the favorite club's current game and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			if team == "" {
				favorites, closeFn := server.NewFavorites(cfg, logger)
				defer func() { _ = closeFn() }()
				team = favorites.Team(cmd.Context())
			} else {
				code, err := favorite.Validate(team)
				if err != nil {
					return err
				}
				team = code
			}

			p := printer.New(cmd.OutOrStdout(), cfg.Display.Colors && !noColor)
			return p.PrintFavorite(cmd.Context(), server.NewProvider(cfg, logger), team)
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "club code to look up (defaults to the stored favorite)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

func runScoreboard(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := config.Load()
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := server.New(cfg, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nhl-scoreboard",
		Version: appVersion,
		Mode:    cfg.Display.Mode,
	})
}
