package game

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/slide2048/internal/grid"
)

// CommandKind is the semantic intent behind a typed token.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandMove             // up/w/k, down/s/j, left/a/h, right/d/l
	CommandUndo             // u, undo
	CommandRestart          // r, restart
	CommandQuit             // q, quit
)

// String returns a human-readable name for the kind.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "None"
	case CommandMove:
		return "Move"
	case CommandUndo:
		return "Undo"
	case CommandRestart:
		return "Restart"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is one parsed player input.
type Command struct {
	Kind      CommandKind
	Direction grid.Direction // Set for CommandMove only
}

func (c Command) String() string {
	if c.Kind == CommandMove {
		return "Move " + c.Direction.String()
	}
	return c.Kind.String()
}

// ParseCommand maps an interactive token to a command.
func ParseCommand(token string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "up", "w", "k":
		return Command{Kind: CommandMove, Direction: grid.Up}, nil
	case "down", "s", "j":
		return Command{Kind: CommandMove, Direction: grid.Down}, nil
	case "left", "a", "h":
		return Command{Kind: CommandMove, Direction: grid.Left}, nil
	case "right", "d", "l":
		return Command{Kind: CommandMove, Direction: grid.Right}, nil
	case "u", "undo":
		return Command{Kind: CommandUndo}, nil
	case "r", "restart":
		return Command{Kind: CommandRestart}, nil
	case "q", "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	}
	return Command{}, fmt.Errorf("game: unknown command %q", token)
}

// ParseMoves reads a compact direction script such as "ULDR", "u l d r"
// or "U,L,D,R". Spaces and commas are ignored.
func ParseMoves(script string) ([]grid.Direction, error) {
	var moves []grid.Direction
	for i, r := range script {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		switch unicode.ToUpper(r) {
		case 'U':
			moves = append(moves, grid.Up)
		case 'D':
			moves = append(moves, grid.Down)
		case 'L':
			moves = append(moves, grid.Left)
		case 'R':
			moves = append(moves, grid.Right)
		default:
			return nil, fmt.Errorf("game: bad move %q at offset %d", r, i)
		}
	}
	if len(moves) == 0 {
		return nil, fmt.Errorf("game: empty move script")
	}
	return moves, nil
}
