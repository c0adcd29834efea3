package game

import (
	"slices"
	"testing"

	"github.com/vovakirdan/slide2048/internal/grid"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		token string
		want  Command
	}{
		{"up", Command{Kind: CommandMove, Direction: grid.Up}},
		{"W", Command{Kind: CommandMove, Direction: grid.Up}},
		{"k", Command{Kind: CommandMove, Direction: grid.Up}},
		{"down", Command{Kind: CommandMove, Direction: grid.Down}},
		{"j", Command{Kind: CommandMove, Direction: grid.Down}},
		{"a", Command{Kind: CommandMove, Direction: grid.Left}},
		{" Left ", Command{Kind: CommandMove, Direction: grid.Left}},
		{"l", Command{Kind: CommandMove, Direction: grid.Right}},
		{"d", Command{Kind: CommandMove, Direction: grid.Right}},
		{"u", Command{Kind: CommandUndo}},
		{"undo", Command{Kind: CommandUndo}},
		{"r", Command{Kind: CommandRestart}},
		{"q", Command{Kind: CommandQuit}},
		{"exit", Command{Kind: CommandQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseCommand(tt.token)
			if err != nil {
				t.Fatalf("ParseCommand(%q) failed: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseCommand(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}

	if _, err := ParseCommand("jump"); err == nil {
		t.Error("ParseCommand(jump) should fail")
	}
}

func TestParseMoves(t *testing.T) {
	want := []grid.Direction{grid.Up, grid.Left, grid.Down, grid.Right}
	for _, script := range []string{"ULDR", "u l d r", "U,L,D,R", "uLdR\n"} {
		got, err := ParseMoves(script)
		if err != nil {
			t.Errorf("ParseMoves(%q) failed: %v", script, err)
			continue
		}
		if !slices.Equal(got, want) {
			t.Errorf("ParseMoves(%q) = %v, want %v", script, got, want)
		}
	}

	for _, bad := range []string{"", " , ", "ULX"} {
		if _, err := ParseMoves(bad); err == nil {
			t.Errorf("ParseMoves(%q) should fail", bad)
		}
	}
}

func TestCommandString(t *testing.T) {
	if s := (Command{Kind: CommandMove, Direction: grid.Down}).String(); s != "Move Down" {
		t.Errorf("String() = %q", s)
	}
	if s := (Command{Kind: CommandUndo}).String(); s != "Undo" {
		t.Errorf("String() = %q", s)
	}
}
