package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// MoveResult classifies what happened to a move.
type MoveResult int

const (
	Accepted MoveResult = iota
	RejectedInvalidIndex
	RejectedCellOccupied
	RejectedGameOver
)

func (that MoveResult) String() string {
	switch that {
	case Accepted:
		return "accepted"
	case RejectedInvalidIndex:
		return "rejected_invalid_index"
	case RejectedCellOccupied:
		return "rejected_cell_occupied"
	case RejectedGameOver:
		return "rejected_game_over"
	default:
		return fmt.Sprintf("MoveResult(%d)", int(that))
	}
}

// ResultOf - maps an error returned by ApplyMove onto a MoveResult.
// The second value is false for errors that did not come from the controller.
func ResultOf(err error) (MoveResult, bool) {
	switch {
	case err == nil:
		return Accepted, true
	case errors.Is(err, apperror.ErrGameFinished):
		return RejectedGameOver, true
	case errors.Is(err, apperror.ErrInvalidCell):
		return RejectedInvalidIndex, true
	case errors.Is(err, apperror.ErrCellOccupied):
		return RejectedCellOccupied, true
	default:
		return 0, false
	}
}

// GameController owns a single game. It is not safe for concurrent use.
type GameController struct {
	state entity.GameState
}

func NewGameController() *GameController {
	return &GameController{
		state: entity.NewGameState(),
	}
}

// State - returns a copy of the current game state.
func (that *GameController) State() entity.GameState {
	return that.state
}

// ApplyMove - marks the cell for the player whose turn it is.
// A rejected move leaves the state untouched and returns it together with the reason.
func (that *GameController) ApplyMove(cell int) (entity.GameState, error) {
	if err := that.validateMove(cell); err != nil {
		return that.state, fmt.Errorf("invalid turn: %w", err)
	}

	that.state.Board[cell] = entity.Mark(that.state.Turn)
	that.updateGameStatus()

	return that.state, nil
}

// Reset - starts over with an empty board and O to move.
func (that *GameController) Reset() entity.GameState {
	that.state = entity.NewGameState()

	return that.state
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(cell int) error {
	if that.state.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !entity.InRange(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.state.Board[cell].IsEmpty() {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move, the turn passes only while the game goes on.
func (that *GameController) updateGameStatus() {
	that.state.Outcome = entity.EvaluateOutcome(that.state.Board)

	if that.state.IsInProgress() {
		that.state.Turn = that.state.Turn.Opponent()
	}
}
