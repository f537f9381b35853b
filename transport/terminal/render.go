package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	formatText = "text"
	formatJSON = "json"
)

const rowSeparator = "---+---+---\n"

// Renderer writes game snapshots either as a text board or as one JSON document per line.
type Renderer struct {
	format    string
	emptyCell string
}

func NewRenderer(format, emptyCell string) *Renderer {
	if format != formatJSON {
		format = formatText
	}

	if emptyCell == "" {
		emptyCell = "-"
	}

	return &Renderer{
		format:    format,
		emptyCell: emptyCell,
	}
}

func (that *Renderer) Render(writer io.Writer, game entity.GameState) error {
	if that.format == formatJSON {
		if err := json.NewEncoder(writer).Encode(game); err != nil {
			return fmt.Errorf("failed to encode game: %w", err)
		}

		return nil
	}

	if _, err := io.WriteString(writer, that.board(game.Board)+status(game)); err != nil {
		return fmt.Errorf("failed to write game: %w", err)
	}

	return nil
}

func (that *Renderer) RenderError(writer io.Writer, renderErr error) error {
	if that.format == formatJSON {
		return json.NewEncoder(writer).Encode(struct {
			Error string `json:"error"`
		}{Error: renderErr.Error()})
	}

	_, err := fmt.Fprintf(writer, "error: %v\n", renderErr)

	return err
}

func (that *Renderer) board(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		cells := make([]string, 3)
		for col := range cells {
			cells[col] = " " + that.cell(board[row*3+col]) + " "
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Renderer) cell(cell entity.Cell) string {
	if cell.IsEmpty() {
		return that.emptyCell
	}

	return string(cell)
}

func status(game entity.GameState) string {
	switch game.Outcome.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Winner: %s\ntype 'restart' to play again\n", game.Outcome.Winner)
	case entity.StatusDraw:
		return "Draw!\ntype 'restart' to play again\n"
	default:
		return fmt.Sprintf("Current turn: %s\n", game.Turn)
	}
}
