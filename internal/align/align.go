package align

import (
	"golang.org/x/exp/slices"

	"github.com/adddTer/neonflow/internal/game"
)

const (
	// Gap jitter tolerated inside a near-isochronous run
	isoTolerance = 0.020
	// A lone onset accepts a tentative second member within this gap
	tentativeGap = 0.500
	// No group survives a gap this large
	hardBreak = 1.0
	// Onsets closer than this to their predecessor are duplicates
	dedupGap = 0.005
)

// Onsets regularises a detected onset stream. Runs of three or more
// near-isochronous onsets are re-spaced to their average interval, which
// removes detector jitter so injected patterns land evenly. Shorter groups
// pass through untouched. The pass is idempotent.
func Onsets(onsets []game.Onset) []game.Onset {
	if len(onsets) == 0 {
		return nil
	}

	sorted := make([]game.Onset, len(onsets))
	copy(sorted, onsets)
	slices.SortStableFunc(sorted, func(a, b game.Onset) bool {
		return a.Time < b.Time
	})

	out := make([]game.Onset, 0, len(sorted))
	group := []game.Onset{sorted[0]}
	prevGap := 0.0

	flush := func() {
		out = append(out, respace(group)...)
	}

	for _, on := range sorted[1:] {
		gap := on.Time - group[len(group)-1].Time
		switch {
		case gap > hardBreak:
			flush()
			group = []game.Onset{on}
			prevGap = 0
		case len(group) == 1 && gap < tentativeGap:
			group = append(group, on)
			prevGap = gap
		case len(group) > 1 && abs(gap-prevGap) <= isoTolerance:
			group = append(group, on)
			prevGap = gap
		default:
			flush()
			group = []game.Onset{on}
			prevGap = 0
		}
	}
	flush()

	// Drop near-duplicates left over from the detector
	deduped := out[:0]
	for i, on := range out {
		if i > 0 && on.Time-deduped[len(deduped)-1].Time < dedupGap {
			continue
		}
		deduped = append(deduped, on)
	}
	return deduped
}

// respace snaps a rhythmic run onto its average inter-onset interval,
// anchored at the first member. Groups under three members are returned
// as-is.
func respace(group []game.Onset) []game.Onset {
	if len(group) < 3 {
		return group
	}
	interval := (group[len(group)-1].Time - group[0].Time) / float64(len(group)-1)
	start := group[0].Time
	for i := range group {
		group[i].Time = start + float64(i)*interval
	}
	return group
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
