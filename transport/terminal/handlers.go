package terminal

import (
	"context"
	"fmt"
	"io"
)

const helpText = `commands:
  <cell> | move <cell>   mark a cell, cells are numbered 0-8 left to right, top to bottom
  restart | r            start a new game
  show | s               print the board
  help | h               print this help
  quit | q               leave
`

func (that *Server) handleMove(ctx context.Context, msg *Message, writer io.Writer) error {
	log := that.logger.With("method", "handleMove", "cell", msg.Cell)

	game, err := that.uGame.MakeTurn(ctx, msg.Cell)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return that.sendError(writer, err)
	}

	if err = that.renderer.Render(writer, game); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	return nil
}

func (that *Server) handleRestart(ctx context.Context, _ *Message, writer io.Writer) error {
	game := that.uGame.Restart(ctx)

	if err := that.renderer.Render(writer, game); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	return nil
}

func (that *Server) handleShow(_ context.Context, _ *Message, writer io.Writer) error {
	if err := that.renderer.Render(writer, that.uGame.Snapshot()); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ *Message, writer io.Writer) error {
	if _, err := io.WriteString(writer, helpText); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}

	return nil
}

func (that *Server) handleQuit(_ context.Context, _ *Message, _ io.Writer) error {
	return errQuit
}
