package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/grid"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var flagDump bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play 2048 from standard input, one or more commands per line.
The board is printed after every command.

Controls:
  up/w/k, down/s/j, left/a/h, right/d/l  - Slide tiles
  u/undo                                 - Undo the last move
  r/restart                              - Start a new game
  q/quit                                 - Quit

Examples:
  slide2048 play
  slide2048 play --mode 3x3 --seed 7
  echo "left up right down" | slide2048 play --dump`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the final state as YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, logger := setup()
	seed := resolveSeed()

	g, err := game.New(cfg, grid.NewSource(seed), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("run ledger unavailable", "err", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	s := &session{
		game:   g,
		store:  store,
		logger: logger,
		seed:   seed,
		out:    os.Stdout,
		prompt: term.IsTerminal(int(os.Stdin.Fd())),
	}
	if err := s.run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDump {
		data, err := g.State().YAML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	}
}

// session feeds line input into a game and records every finished run.
type session struct {
	game   *game.Game
	store  *storage.Store // Optional
	logger *log.Logger
	seed   int64
	out    io.Writer
	prompt bool
}

func (s *session) run(in io.Reader) error {
	printBoard(s.out, s.game)

	scanner := bufio.NewScanner(in)
	for {
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			break
		}

		for _, token := range strings.Fields(scanner.Text()) {
			cmd, err := game.ParseCommand(token)
			if err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
				continue
			}
			if cmd.Kind == game.CommandQuit {
				s.record()
				return nil
			}
			if !s.apply(cmd) {
				fmt.Fprintln(s.out, "Nothing to undo.")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	s.record()
	return nil
}

// apply executes one command and prints the outcome.
// Returns false for an undo with no undo point.
func (s *session) apply(cmd game.Command) bool {
	switch cmd.Kind {
	case game.CommandUndo:
		if !s.game.CanUndo() {
			return false
		}
	case game.CommandRestart:
		s.record()
	}

	res := s.game.Do(cmd)
	if cmd.Kind == game.CommandMove && !res.Changed && !res.GameOver {
		fmt.Fprintf(s.out, "Can't move %s.\n", strings.ToLower(cmd.Direction.String()))
		return true
	}

	printBoard(s.out, s.game)
	if res.GameOver {
		fmt.Fprintln(s.out, "Game over! Press r to restart, u to undo or q to quit.")
	}
	return true
}

// record saves the current game to the run ledger if any move was made.
func (s *session) record() {
	if s.store == nil || s.game.Turns() == 0 {
		return
	}

	id, err := s.store.SaveRun(storage.Run{
		Seed:       s.seed,
		GridLength: s.game.Length(),
		Score:      s.game.Score(),
		MaxTile:    s.game.MaxTile(),
		Turns:      s.game.Turns(),
		GameOver:   s.game.GameOver(),
	})
	if err != nil {
		s.logger.Warn("could not record run", "err", err)
		return
	}
	s.logger.Info("run recorded", "id", id, "score", s.game.Score(), "turns", s.game.Turns())
}

// printBoard writes the value matrix, top row first, with "." for empty cells.
func printBoard(w io.Writer, g *game.Game) {
	width := len(strconv.Itoa(max(g.MaxTile(), 2)))

	fmt.Fprintf(w, "Score: %d  Best: %d  Turns: %d\n", g.Score(), g.Best(), g.Turns())
	for _, row := range g.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			cells[i] = fmt.Sprintf("%*s", width, cell)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}
