package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// version is set with ldflags at build time.
var version = "dev"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var output string

	rootCmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Play tic-tac-toe in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)
			if cmd.Flags().Changed("output") {
				conf.Terminal.Output = output
				if err := conf.Terminal.Validate(); err != nil {
					return err
				}
			}

			logger := initLogger(conf)

			if err := app.RunApp(cmd.Context(), logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "./config.yml", "path to the config file")
	rootCmd.Flags().StringVar(&output, "output", config.OutputText, "board output: text or json")

	return rootCmd
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	// stdout belongs to the board
	if conf.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
