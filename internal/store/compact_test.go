package store

import (
	"testing"

	"github.com/adddTer/neonflow/internal/game"
)

var compactChart = []*game.Note{
	{Time: 0.0, Lane: 0, Type: game.NoteNormal},
	{Time: 0.0, Lane: 2, Type: game.NoteNormal},
	{Time: 0.5, Lane: 1, Type: game.NoteNormal, Duration: 0.4},
	{Time: 1.0, Lane: 3, Type: game.NoteCatch},
	{Time: 1.5, Lane: 0, Type: game.NoteNormal},
}

func TestCompactRoundTrip(t *testing.T) {
	out := uncompactNotes(compactNotes(compactChart, 4))
	if len(out) != len(compactChart) {
		t.Fatal("length mismatch", len(out))
	}
	for i, n := range out {
		expected := compactChart[i]
		if n.Time != expected.Time || n.Lane != expected.Lane ||
			n.Type != expected.Type || n.Duration != expected.Duration {
			t.Log("note    ", i, n)
			t.Log("expected", expected)
			t.Fail()
		}
		if n.ID == "" {
			t.Log("missing regenerated id at", i)
			t.Fail()
		}
	}
}

func TestCompactEmpty(t *testing.T) {
	out := uncompactNotes(compactNotes(nil, 4))
	if len(out) != 0 {
		t.Log("expected no notes, got", out)
		t.Fail()
	}
}
