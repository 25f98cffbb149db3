package theme

import (
	"testing"

	"github.com/adddTer/neonflow/internal/game"
)

func TestRenderNoteColors(t *testing.T) {
	th := &DefaultTheme{}

	sym, c := th.RenderNote(0, game.NoteNormal)
	if sym != noteSym || c != laneColors[0] {
		t.Log("lane 0", sym, c)
		t.Fail()
	}

	// Catch notes use their own glyph and color regardless of lane
	sym, c = th.RenderNote(2, game.NoteCatch)
	if sym != catchSym || c != catchColor {
		t.Log("catch", sym, c)
		t.Fail()
	}

	// Hold bodies share the lane color of their head
	_, noteColor := th.RenderNote(5, game.NoteNormal)
	bodySym, bodyColor := th.RenderHoldBody(5)
	if bodySym != holdSym || bodyColor != noteColor {
		t.Log("hold", bodySym, bodyColor)
		t.Fail()
	}
}
