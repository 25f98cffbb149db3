package game

type NoteType string

const (
	NoteNormal NoteType = "normal"
	NoteCatch  NoteType = "catch"
)

type Note struct {
	ID       string   `json:"id"` // Regenerated every run, not stable
	Time     float64  `json:"time"`
	Lane     int      `json:"lane"`
	Type     NoteType `json:"type"`
	Duration float64  `json:"duration"` // 0 = tap, >0 = hold

	// This is state, owned by the preview loop
	Row       int  `json:"-"` // Current render row, -1 off screen
	Hit       bool `json:"-"`
	IsHolding bool `json:"-"`
}

func (n *Note) IsHold() bool {
	return n.Duration > 0
}
