package theme

import (
	"fmt"
	"image/color"

	"github.com/adddTer/neonflow/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(lane int, noteType game.NoteType) (string, color.RGBA) {
	if noteType == game.NoteCatch {
		return catchSym, catchColor
	}
	return noteSym, laneColors[lane%len(laneColors)]
}

func (t *DefaultTheme) RenderHoldBody(lane int) (string, color.RGBA) {
	return holdSym, laneColors[lane%len(laneColors)]
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

func (t *DefaultTheme) RenderHitSplash(lane int) string {
	c := laneColors[lane%len(laneColors)]
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, splashSym)
}

const (
	noteSym   = "⬤"
	catchSym  = "◆"
	holdSym   = "┃"
	barSym    = "-"
	splashSym = "✦"
)

var (
	laneColors = [...]color.RGBA{
		{R: 236, G: 30, B: 0},
		{R: 0, G: 118, B: 236},
		{R: 236, G: 195, B: 0},
		{R: 106, G: 0, B: 236},
		{R: 0, G: 236, B: 128},
		{R: 236, G: 0, B: 106},
	}
	catchColor = color.RGBA{R: 173, G: 236, B: 236}
)
