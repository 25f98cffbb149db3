package align

import (
	"testing"

	"github.com/adddTer/neonflow/internal/game"
)

func onsetsAt(times ...float64) []game.Onset {
	onsets := make([]game.Onset, len(times))
	for i, t := range times {
		onsets[i] = game.Onset{Time: t, Energy: 0.8}
	}
	return onsets
}

func times(onsets []game.Onset) []float64 {
	ts := make([]float64, len(onsets))
	for i, on := range onsets {
		ts[i] = on.Time
	}
	return ts
}

func equalTimes(p, q []float64) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		d := p[i] - q[i]
		if d < -1e-9 || d > 1e-9 {
			return false
		}
	}
	return true
}

var respaceTests = []struct {
	name     string
	in       []game.Onset
	expected []float64
}{
	{
		"empty", onsetsAt(), []float64{},
	},
	{
		"jittered run snaps to average interval",
		onsetsAt(0.0, 0.20, 0.41, 0.60, 0.80),
		[]float64{0.0, 0.20, 0.40, 0.60, 0.80},
	},
	{
		"pair passes through untouched",
		onsetsAt(0.0, 0.23),
		[]float64{0.0, 0.23},
	},
	{
		"sparse onsets pass through untouched",
		onsetsAt(0.0, 0.7, 1.9, 4.0),
		[]float64{0.0, 0.7, 1.9, 4.0},
	},
	{
		"near-duplicates are dropped",
		onsetsAt(0.0, 0.003, 0.5),
		[]float64{0.0, 0.5},
	},
	{
		"unsorted input is sorted first",
		onsetsAt(1.9, 0.0, 4.0, 0.7),
		[]float64{0.0, 0.7, 1.9, 4.0},
	},
	{
		"gap change breaks the run",
		onsetsAt(0.0, 0.2, 0.4, 0.8, 1.2, 1.6),
		[]float64{0.0, 0.2, 0.4, 0.8, 1.2, 1.6},
	},
}

func TestAlign(t *testing.T) {
	for _, test := range respaceTests {
		out := times(Onsets(test.in))
		if !equalTimes(out, test.expected) {
			t.Log("name    ", test.name)
			t.Log("out     ", out)
			t.Log("expected", test.expected)
			t.Fail()
		}
	}
}

func TestAlignIdempotent(t *testing.T) {
	inputs := [][]game.Onset{
		onsetsAt(),
		onsetsAt(0.0, 0.21, 0.39, 0.60, 0.81, 1.00),
		onsetsAt(0.0, 0.003, 0.25, 0.5, 2.0, 2.2, 2.4, 2.6),
		onsetsAt(5.0, 0.0, 3.3, 3.31, 3.29),
	}
	for _, in := range inputs {
		once := Onsets(in)
		twice := Onsets(once)
		if !equalTimes(times(once), times(twice)) {
			t.Log("in   ", times(in))
			t.Log("once ", times(once))
			t.Log("twice", times(twice))
			t.Fail()
		}
	}
}

func TestAlignKeepsEnergy(t *testing.T) {
	in := []game.Onset{
		{Time: 0.0, Energy: 0.9, IsLowFreq: true},
		{Time: 0.2, Energy: 0.4},
		{Time: 0.4, Energy: 0.7},
	}
	out := Onsets(in)
	if len(out) != 3 {
		t.Fatal("expected 3 onsets, got", len(out))
	}
	if out[0].Energy != 0.9 || !out[0].IsLowFreq || out[1].Energy != 0.4 {
		t.Log("out", out)
		t.Fail()
	}
}
