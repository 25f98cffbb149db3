package difficulty

import (
	"math"
	"sort"

	"github.com/adddTer/neonflow/internal/game"
)

const (
	ratingSectionLen = 0.4  // Seconds per strain bucket
	minStrainGap     = 0.05 // Floor on the per-note gap
	jackMultiplier   = 1.5
	topSections      = 30
	sectionDecay     = 0.9
)

// Rate estimates how hard a finished chart plays. It is a second pass over
// the output and shares no state with generation: notes are bucketed into
// fixed 0.4s sections, per-note strain is the inverse gap to the previous
// note with a jack multiplier, and the hardest sections dominate the score
// through a geometric decay over the sorted section strains.
func Rate(notes []*game.Note, duration float64) float64 {
	if len(notes) == 0 || duration <= 0 {
		return 0
	}

	sections := make([]float64, int(duration/ratingSectionLen)+1)
	prevTime := math.Inf(-1)
	prevLane := -1
	for _, n := range notes {
		strain := 1 / math.Max(n.Time-prevTime, minStrainGap)
		if n.Lane == prevLane {
			strain *= jackMultiplier
		}
		idx := int(n.Time / ratingSectionLen)
		if idx < 0 {
			idx = 0
		} else if idx >= len(sections) {
			idx = len(sections) - 1
		}
		sections[idx] += strain
		prevTime = n.Time
		prevLane = n.Lane
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(sections)))

	sum := 0.0
	weight := 1.0
	for i := 0; i < topSections && i < len(sections); i++ {
		sum += sections[i] * weight
		weight *= sectionDecay
	}

	return math.Max(1, math.Sqrt(sum*0.03)*2.1)
}
