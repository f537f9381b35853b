package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameController interface {
	State() entity.GameState
	ApplyMove(cell int) (entity.GameState, error)
	Reset() entity.GameState
}

// GameManager - drives one game on behalf of the presentation layer.
// Each round gets its own id so log lines of a single game can be correlated.
type GameManager struct {
	logger     *slog.Logger
	controller gameController

	roundID string
}

func NewGameManager(logger *slog.Logger, controller gameController) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		controller: controller,

		roundID: uuid.NewString(),
	}
}

func (that *GameManager) RoundID() string {
	return that.roundID
}

func (that *GameManager) Snapshot() entity.GameState {
	return that.controller.State()
}

func (that *GameManager) MakeTurn(ctx context.Context, cell int) (entity.GameState, error) {
	log := that.logger.With("method", "MakeTurn", "round", that.roundID, "cell", cell)

	game, err := that.controller.ApplyMove(cell)
	if err != nil {
		if result, ok := tictactoe.ResultOf(err); ok {
			log.InfoContext(ctx, "move rejected", "result", result.String(), "reason", err)
		} else {
			log.ErrorContext(ctx, "unexpected move error", "error", err)
		}

		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	log.DebugContext(ctx, "move accepted", "next_turn", game.Turn)

	if game.IsFinished() {
		log.InfoContext(ctx, "game finished", "status", game.Outcome.Status, "winner", game.Outcome.Winner)
	}

	return game, nil
}

func (that *GameManager) Restart(ctx context.Context) entity.GameState {
	previous := that.roundID
	that.roundID = uuid.NewString()

	game := that.controller.Reset()

	that.logger.InfoContext(ctx, "game restarted", "method", "Restart", "previous_round", previous, "round", that.roundID)

	return game
}
