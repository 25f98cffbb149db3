package physics

import (
	"math"
	"math/rand"

	"github.com/adddTer/neonflow/internal/game"
)

const (
	strainDecayRate = 5.0  // Units shed per second of rest
	strainThreshold = 3.0  // Fatigue starts costing above this
	jackWindow      = 0.15 // Seconds under which a jack is hard-rejected
	rejectCost      = 9999
	moveCostPerLane = 1.5
	flowBonus       = 1.0
	edgePenalty     = 0.5
	sameHandPenalty = 5.0
	flowDeadband    = 0.1
	strainPerHit    = 1.0
	minDeltaT       = 0.01
)

// Placement scores candidate lane assignments against recent hand history:
// travel distance, flow direction, jacks, per-hand load and a time-decaying
// fatigue accumulator. One instance lives for exactly one generation run.
type Placement struct {
	laneCount int
	rng       *rand.Rand

	lastLanes   []int
	lastTime    float64
	lastFlow    int // -1, 0, 1
	leftStrain  float64
	rightStrain float64
	bias        game.HandBias
}

func New(laneCount int, rng *rand.Rand) *Placement {
	return &Placement{
		laneCount: laneCount,
		rng:       rng,
		lastLanes: []int{laneCount / 2},
		bias:      game.BiasBalanced,
	}
}

func (p *Placement) SetBias(b game.HandBias) {
	p.bias = b
}

// updateStrain lets both hands recover linearly since the last commit.
func (p *Placement) updateStrain(now float64) {
	rest := (now - p.lastTime) * strainDecayRate
	if rest <= 0 {
		return
	}
	p.leftStrain = math.Max(0, p.leftStrain-rest)
	p.rightStrain = math.Max(0, p.rightStrain-rest)
}

func (p *Placement) isLeft(lane int) bool {
	return lane < p.laneCount/2
}

// handLoads counts how many of the given lanes each hand covers.
func (p *Placement) handLoads(lanes []int) (left, right int) {
	for _, l := range lanes {
		if p.isLeft(l) {
			left++
		} else {
			right++
		}
	}
	return
}

// Cost scores a candidate chord at the given time. A hard jack violation
// returns rejectCost outright.
func (p *Placement) Cost(target []int, now float64, allowJacks bool) float64 {
	dt := math.Max(minDeltaT, now-p.lastTime)
	cost := 0.0

	// Travel from the previous chord's centre
	move := laneAvg(target) - laneAvg(p.lastLanes)
	cost += math.Abs(move) * moveCostPerLane

	// Continuing a directional sweep is rewarded
	if dir := sign(move); dir != 0 && dir == p.lastFlow {
		cost -= flowBonus
	}

	// Repeated lanes
	for _, l := range target {
		if !contains(p.lastLanes, l) {
			continue
		}
		if now-p.lastTime < jackWindow && !allowJacks {
			return rejectCost
		}
		cost += (0.3 / dt) * 5
	}

	left, right := p.handLoads(target)
	switch p.bias {
	case game.BiasLeftHeavy:
		cost += float64(right) * 2
	case game.BiasRightHeavy:
		cost += float64(left) * 2
	case game.BiasAlternating:
		prevLeft, prevRight := p.handLoads(p.lastLanes)
		sameHand := (prevRight == 0 && right == 0 && left > 0) ||
			(prevLeft == 0 && left == 0 && right > 0)
		if sameHand {
			cost += sameHandPenalty
		}
	}

	// Fatigue only bites once a hand is past the threshold
	if p.leftStrain > strainThreshold {
		cost += p.leftStrain * 2 * float64(left)
	}
	if p.rightStrain > strainThreshold {
		cost += p.rightStrain * 2 * float64(right)
	}

	for _, l := range target {
		if l == 0 || l == p.laneCount-1 {
			cost += edgePenalty
			break
		}
	}
	return cost
}

// commit records a chosen chord as the new hand position.
func (p *Placement) commit(lanes []int, now float64) {
	move := laneAvg(lanes) - laneAvg(p.lastLanes)
	switch {
	case move > flowDeadband:
		p.lastFlow = 1
	case move < -flowDeadband:
		p.lastFlow = -1
	default:
		p.lastFlow = 0
	}

	left, right := p.handLoads(lanes)
	if left > 0 {
		p.leftStrain += strainPerHit
	}
	if right > 0 {
		p.rightStrain += strainPerHit
	}

	p.lastLanes = append(p.lastLanes[:0:0], lanes...)
	p.lastTime = now
}

// CommitLane records a single pattern-injected lane without running the
// combinatorial search; the pattern is authoritative.
func (p *Placement) CommitLane(lane int, now float64) {
	p.updateStrain(now)
	p.commit([]int{lane}, now)
}

// BestLanes picks the cheapest chord of the given size. All lane
// combinations are enumerated, shuffled so equal-cost candidates do not
// always resolve leftward, and scored. Candidates over maxCost are only
// used when nothing cheaper exists, so an onset is never dropped on cost
// alone. The winner is committed before returning.
func (p *Placement) BestLanes(count int, now, maxCost float64, allowJacks bool) []int {
	if count < 1 || count > p.laneCount {
		panic("physics: chord size out of range")
	}
	p.updateStrain(now)

	candidates := combinations(p.laneCount, count)
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	best := candidates[0]
	bestCost := p.Cost(best, now, allowJacks)
	var budgeted []int
	budgetedCost := math.Inf(1)
	for _, cand := range candidates {
		c := p.Cost(cand, now, allowJacks)
		if c < bestCost {
			best, bestCost = cand, c
		}
		if c <= maxCost && c < budgetedCost {
			budgeted, budgetedCost = cand, c
		}
	}
	// Within budget wins; otherwise fall back to the global minimum
	if budgeted != nil {
		best = budgeted
	}

	p.commit(best, now)
	return best
}

// combinations enumerates all k-subsets of [0, n) with a rolling index
// array, no recursion.
func combinations(n, k int) [][]int {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	for {
		out = append(out, append([]int(nil), idx...))
		// Advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func laneAvg(lanes []int) float64 {
	sum := 0
	for _, l := range lanes {
		sum += l
	}
	return float64(sum) / float64(len(lanes))
}

func contains(lanes []int, lane int) bool {
	for _, l := range lanes {
		if l == lane {
			return true
		}
	}
	return false
}

func sign(x float64) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
