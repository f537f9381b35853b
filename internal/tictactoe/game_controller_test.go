package tictactoe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	o = entity.Cell(entity.PlayerO)
	x = entity.Cell(entity.PlayerX)
	e = entity.EmptyCell
)

// drawMoves - O and X alternate and fill the board without three in a row.
var drawMoves = []int{0, 1, 2, 4, 3, 5, 7, 6, 8}

func playMoves(t *testing.T, controller *GameController, cells ...int) entity.GameState {
	t.Helper()

	var state entity.GameState
	for i, cell := range cells {
		var err error
		state, err = controller.ApplyMove(cell)
		require.NoError(t, err, "move %d on cell %d", i, cell)
	}

	return state
}

func TestNewGameController(t *testing.T) {
	// Given: a new controller
	controller := NewGameController()

	// Then: the game state should correspond to the initial state
	assert.Equal(t, entity.NewGameState(), controller.State())
}

func TestGameController_ApplyMove(t *testing.T) {
	t.Run("Accepted move marks the cell and passes the turn", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController()

		// When: O moves to the center
		state, err := controller.ApplyMove(4)
		require.NoError(t, err)

		// Then: the center holds O and it is X's turn
		expected := entity.GameState{
			Board: entity.Board{
				e, e, e,
				e, o, e,
				e, e, e,
			},
			Turn:    entity.PlayerX,
			Outcome: entity.InProgress(),
		}

		require.Equal(t, expected, state)
		require.Equal(t, expected, controller.State())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where O holds cell 0
		controller := NewGameController()
		before := playMoves(t, controller, 0)

		// When: X tries to move to the same cell
		state, err := controller.ApplyMove(0)

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, state)
		assert.Equal(t, before, controller.State())
		assert.Equal(t, entity.PlayerX, controller.State().Turn)
	})

	t.Run("Out of range cell on a fresh board", func(t *testing.T) {
		for _, cell := range []int{9, -1, 20} {
			// Given: a new game
			controller := NewGameController()

			// When: an invalid cell index is passed
			state, err := controller.ApplyMove(cell)

			// Then: ErrInvalidCell is returned and the board stays fresh
			require.ErrorIs(t, err, apperror.ErrInvalidCell, "cell %d", cell)
			assert.Equal(t, entity.NewGameState(), state)
			assert.Equal(t, entity.NewGameState(), controller.State())
		}
	})

	t.Run("O wins on the top row", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController()

		// When: O plays 0, 1, 2 while X plays 3, 4
		state := playMoves(t, controller, 0, 3, 1, 4, 2)

		// Then: O wins and the turn stays with O
		expected := entity.GameState{
			Board: entity.Board{
				o, o, o,
				x, x, e,
				e, e, e,
			},
			Turn:    entity.PlayerO,
			Outcome: entity.Won(entity.PlayerO),
		}

		require.Equal(t, expected, state)
		assert.True(t, state.IsFinished())
	})

	t.Run("X wins on the anti-diagonal", func(t *testing.T) {
		controller := NewGameController()

		state := playMoves(t, controller, 0, 2, 1, 4, 8, 6)

		assert.Equal(t, entity.Won(entity.PlayerX), state.Outcome)
		assert.Equal(t, entity.PlayerX, state.Turn)
	})

	t.Run("Alternating full board is a draw", func(t *testing.T) {
		// Given: a new game
		controller := NewGameController()

		// When: all nine cells are filled without a line
		state := playMoves(t, controller, drawMoves...)

		// Then: the game is a draw and O, who moved last, keeps the turn
		expected := entity.GameState{
			Board: entity.Board{
				o, x, o,
				o, x, x,
				x, o, o,
			},
			Turn:    entity.PlayerO,
			Outcome: entity.Draw(),
		}

		require.Equal(t, expected, state)
	})

	t.Run("Move after the game is won", func(t *testing.T) {
		// Given: a game O has already won
		controller := NewGameController()
		finished := playMoves(t, controller, 0, 3, 1, 4, 2)

		// When: someone tries to move on an empty cell
		state, err := controller.ApplyMove(8)

		// Then: ErrGameFinished is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, finished, state)
		assert.Equal(t, finished, controller.State())
	})

	t.Run("Game over is reported before an invalid index", func(t *testing.T) {
		controller := NewGameController()
		playMoves(t, controller, drawMoves...)

		_, err := controller.ApplyMove(42)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.NotErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Turn parity follows the number of accepted moves", func(t *testing.T) {
		controller := NewGameController()

		// the sequence never completes a line before its last move
		for n, cell := range drawMoves[:8] {
			state, err := controller.ApplyMove(cell)
			require.NoError(t, err)

			accepted := n + 1
			if accepted%2 == 0 {
				assert.Equal(t, entity.PlayerO, state.Turn, "after %d moves", accepted)
			} else {
				assert.Equal(t, entity.PlayerX, state.Turn, "after %d moves", accepted)
			}

			// a rejected move in between must not advance the turn
			rejected, err := controller.ApplyMove(cell)
			require.Error(t, err)
			assert.Equal(t, state, rejected)
		}
	})

	t.Run("Snapshot is a copy", func(t *testing.T) {
		// Given: a snapshot of a fresh game
		controller := NewGameController()
		snapshot := controller.State()

		// When: the caller scribbles on the snapshot
		snapshot.Board[0] = x
		snapshot.Turn = entity.PlayerX

		// Then: the controller is not affected
		assert.Equal(t, entity.NewGameState(), controller.State())
	})
}

func TestGameController_Reset(t *testing.T) {
	t.Run("Reset after a finished game", func(t *testing.T) {
		// Given: a game that ended in a draw
		controller := NewGameController()
		playMoves(t, controller, drawMoves...)

		// When: the game is reset
		state := controller.Reset()

		// Then: the initial state is restored and moves are accepted again
		require.Equal(t, entity.NewGameState(), state)
		require.Equal(t, entity.NewGameState(), controller.State())

		state, err := controller.ApplyMove(4)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, state.Turn)
	})

	t.Run("Reset in the middle of a game", func(t *testing.T) {
		controller := NewGameController()
		playMoves(t, controller, 0, 4, 8)

		assert.Equal(t, entity.NewGameState(), controller.Reset())
	})

	t.Run("Reset on a fresh game", func(t *testing.T) {
		controller := NewGameController()

		assert.Equal(t, entity.NewGameState(), controller.Reset())
	})
}

func TestResultOf(t *testing.T) {
	controller := NewGameController()
	playMoves(t, controller, 0)

	_, occupied := controller.ApplyMove(0)
	_, invalid := controller.ApplyMove(9)

	playMoves(t, controller, 3, 1, 4, 2)
	_, finished := controller.ApplyMove(8)

	tests := []struct {
		name     string
		err      error
		expected MoveResult
		ok       bool
	}{
		{name: "accepted", err: nil, expected: Accepted, ok: true},
		{name: "occupied", err: occupied, expected: RejectedCellOccupied, ok: true},
		{name: "invalid", err: invalid, expected: RejectedInvalidIndex, ok: true},
		{name: "finished", err: finished, expected: RejectedGameOver, ok: true},
		{name: "foreign", err: errors.New("boom"), expected: Accepted, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ResultOf(tt.err)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMoveResult_String(t *testing.T) {
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "rejected_invalid_index", RejectedInvalidIndex.String())
	assert.Equal(t, "rejected_cell_occupied", RejectedCellOccupied.String())
	assert.Equal(t, "rejected_game_over", RejectedGameOver.String())
	assert.Equal(t, "MoveResult(7)", MoveResult(7).String())
}
