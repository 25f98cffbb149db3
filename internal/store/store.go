package store

import "github.com/adddTer/neonflow/internal/game"

type Store interface {
	Init(path string) error
	Deinit()

	// Save the chart generated for the song identified by sum
	Save(sum string, chart *game.Chart)

	// Load previous generations for the song identified by sum
	Load(sum string) []Saved
}

// Saved is one previously generated chart as read back from the store.
type Saved struct {
	Sum        string
	Difficulty float64
	Rating     float64
	Chart      *game.Chart
}
