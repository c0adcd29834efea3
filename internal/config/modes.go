package config

// Mode is a named grid size preset.
type Mode struct {
	ID     string
	Name   string
	Length int
}

// Modes lists the available presets from smallest to largest board.
var Modes = []Mode{
	{ID: "3x3", Name: "Tiny", Length: 3},
	{ID: "4x4", Name: "Classic", Length: 4},
	{ID: "5x5", Name: "Roomy", Length: 5},
	{ID: "6x6", Name: "Marathon", Length: 6},
}

// ModeCount returns the number of presets.
func ModeCount() int {
	return len(Modes)
}

// ModeByID returns the preset with the given ID.
func ModeByID(id string) (Mode, bool) {
	for _, m := range Modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

// ModeIDs returns the IDs of all presets.
func ModeIDs() []string {
	ids := make([]string, len(Modes))
	for i, m := range Modes {
		ids[i] = m.ID
	}
	return ids
}
