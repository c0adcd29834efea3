package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// State is a serializable view of a game.
type State struct {
	Length   int     `yaml:"length"`
	Score    int     `yaml:"score"`
	Best     int     `yaml:"best"`
	Turns    int     `yaml:"turns"`
	MaxTile  int     `yaml:"max_tile"`
	Free     int     `yaml:"free"`
	GameOver bool    `yaml:"game_over"`
	CanUndo  bool    `yaml:"can_undo"`
	Rows     [][]int `yaml:"rows,flow"` // Top row first, 0 for empty
}

// State captures the current game state.
func (g *Game) State() State {
	return State{
		Length:   g.grid.Length(),
		Score:    g.score.Value(),
		Best:     g.score.Best(),
		Turns:    g.turns,
		MaxTile:  g.grid.MaxTile(),
		Free:     g.grid.FreeCount(),
		GameOver: g.gameOver,
		CanUndo:  g.undo != nil,
		Rows:     g.grid.Rows(),
	}
}

// YAML encodes the state.
func (s State) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("game: cannot encode state: %w", err)
	}
	return data, nil
}
