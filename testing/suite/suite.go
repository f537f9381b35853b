package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Controller *tictactoe.GameController
	Manager    *usecase.GameManager
}

// New - wires a fresh game behind a manager, the way the application does.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	controller := tictactoe.NewGameController()

	return ctx, &Suite{
		T:          t,
		Logger:     logger,
		Controller: controller,
		Manager:    usecase.NewGameManager(logger, controller),
	}
}
