package theme

import (
	"image/color"

	"github.com/adddTer/neonflow/internal/game"
)

// RenderNote and RenderHoldBody return a glyph and its color for the
// renderer to place with FillColor. RenderHitSplash returns a finished
// string because decorations carry their own content.
type Theme interface {
	RenderNote(lane int, noteType game.NoteType) (string, color.RGBA)
	RenderHoldBody(lane int) (string, color.RGBA)
	RenderHitField(lane int) string
	RenderHitSplash(lane int) string
}
