package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	actionMove    = "move"
	actionRestart = "restart"
	actionShow    = "show"
	actionHelp    = "help"
	actionQuit    = "quit"
)

var errQuit = errors.New("quit requested")

type uGame interface {
	Snapshot() entity.GameState
	MakeTurn(ctx context.Context, cell int) (entity.GameState, error)
	Restart(ctx context.Context) entity.GameState
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	renderer *Renderer
	prompt   string

	handlers map[string]func(ctx context.Context, message *Message, writer io.Writer) error
}

func New(logger *slog.Logger, uGame uGame, renderer *Renderer, prompt string) *Server {
	server := &Server{
		logger:   logger.With("component", "terminal"),
		uGame:    uGame,
		renderer: renderer,
		prompt:   prompt,

		handlers: make(map[string]func(context.Context, *Message, io.Writer) error),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionRestart] = server.handleRestart
	server.handlers[actionShow] = server.handleShow
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit

	return server
}

// Start - renders the current game and processes commands until quit, EOF or cancellation.
func (that *Server) Start(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Start")

	if err := that.renderer.Render(writer, that.uGame.Snapshot()); err != nil {
		return fmt.Errorf("failed to render game: %w", err)
	}

	scanner := bufio.NewScanner(reader)

	for {
		if err := ctx.Err(); err != nil {
			log.Info("terminal session canceled")
			return nil
		}

		that.writePrompt(writer)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}

			log.Info("input closed")
			return nil
		}

		err := that.handleLine(ctx, scanner.Text(), writer)
		if errors.Is(err, errQuit) {
			log.Info("player quit")
			return nil
		}

		if err != nil {
			log.Error("error processing command", "error", err)
		}
	}
}

// handleLine - dispatches one line of input to its handler.
func (that *Server) handleLine(ctx context.Context, line string, writer io.Writer) error {
	message, err := ParseMessage(line)
	if err != nil {
		return that.sendError(writer, err)
	}

	if message == nil {
		return nil
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		return that.sendError(writer, fmt.Errorf("no handler for %q", message.Action))
	}

	return handler(ctx, message, writer)
}

func (that *Server) writePrompt(writer io.Writer) {
	if that.prompt == "" || that.renderer.format == formatJSON {
		return
	}

	_, _ = io.WriteString(writer, that.prompt)
}

func (that *Server) sendError(writer io.Writer, err error) error {
	if writeErr := that.renderer.RenderError(writer, err); writeErr != nil {
		return fmt.Errorf("failed to write error: %w", writeErr)
	}

	return nil
}
