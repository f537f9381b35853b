package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Message is one parsed line of player input.
type Message struct {
	Action string
	Cell   int
}

var aliases = map[string]string{
	actionMove:    actionMove,
	"m":           actionMove,
	actionRestart: actionRestart,
	"r":           actionRestart,
	actionShow:    actionShow,
	"s":           actionShow,
	actionHelp:    actionHelp,
	"h":           actionHelp,
	"?":           actionHelp,
	actionQuit:    actionQuit,
	"q":           actionQuit,
	"exit":        actionQuit,
}

// ParseMessage - turns a line into a Message. Blank lines yield nil.
// A bare number is a move on that cell.
func ParseMessage(line string) (*Message, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, nil //nolint: nilnil // blank line is not a command
	}

	if cell, err := strconv.Atoi(fields[0]); err == nil {
		if len(fields) > 1 {
			return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, line)
		}

		return &Message{Action: actionMove, Cell: cell}, nil
	}

	action, ok := aliases[fields[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, fields[0])
	}

	if action != actionMove {
		if len(fields) > 1 {
			return nil, fmt.Errorf("%w: %s takes no arguments", apperror.ErrUnknownCommand, action)
		}

		return &Message{Action: action}, nil
	}

	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: usage: move <cell>", apperror.ErrUnknownCommand)
	}

	cell, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: cell %q is not a number", apperror.ErrInvalidCell, fields[1])
	}

	return &Message{Action: actionMove, Cell: cell}, nil
}
