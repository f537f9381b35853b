package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/terminal"
)

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := tictactoe.NewGameController()
	gameManager := usecase.NewGameManager(logger, gameController)
	renderer := terminal.NewRenderer(conf.Terminal.Output, conf.Terminal.EmptyCell)

	// run terminal session
	termErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting terminal session", "round", gameManager.RoundID(), "output", conf.Terminal.Output)
		server := terminal.New(logger, gameManager, renderer, conf.Terminal.Prompt)
		termErrCh <- server.Start(ctx, in, out)
	}()

	select {
	case err := <-termErrCh:
		if err != nil {
			return fmt.Errorf("terminal session error: %w", err)
		}

		log.Info("Terminal session finished")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
