package game

type Chart struct {
	Notes      []*Note `json:"notes"`
	NoteCount  int64   `json:"noteCount"`
	HoldCount  int64   `json:"holdCount"`
	CatchCount int64   `json:"catchCount"`
	Lanes      int     `json:"lanes"`
	Difficulty float64 `json:"difficulty"`
	Rating     float64 `json:"rating"`
}

// NewChart wraps a generated note sequence with its counts.
func NewChart(notes []*Note, lanes int, difficulty float64) *Chart {
	c := &Chart{
		Notes:      notes,
		NoteCount:  int64(len(notes)),
		Lanes:      lanes,
		Difficulty: difficulty,
	}
	for _, n := range notes {
		if n.IsHold() {
			c.HoldCount++
		}
		if n.Type == NoteCatch {
			c.CatchCount++
		}
	}
	return c
}

// Length is the time of the last event in seconds, including hold tails.
func (c *Chart) Length() float64 {
	end := 0.0
	for _, n := range c.Notes {
		if t := n.Time + n.Duration; t > end {
			end = t
		}
	}
	return end
}
