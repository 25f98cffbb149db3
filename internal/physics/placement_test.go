package physics

import (
	"math/rand"
	"testing"

	"github.com/adddTer/neonflow/internal/game"
)

func newPlacement(laneCount int) *Placement {
	return New(laneCount, rand.New(rand.NewSource(1)))
}

var combinationTests = []struct {
	n, k     int
	expected int
}{
	{4, 1, 4},
	{4, 2, 6},
	{4, 4, 1},
	{6, 2, 15},
	{6, 4, 15},
}

func TestCombinations(t *testing.T) {
	for _, test := range combinationTests {
		out := combinations(test.n, test.k)
		if len(out) != test.expected {
			t.Log("n, k    ", test.n, test.k)
			t.Log("got     ", len(out))
			t.Log("expected", test.expected)
			t.Fail()
		}
		seen := map[string]bool{}
		for _, c := range out {
			key := ""
			for _, l := range c {
				if l < 0 || l >= test.n {
					t.Log("lane out of range", c)
					t.Fail()
				}
				key += string(rune('0' + l))
			}
			if seen[key] {
				t.Log("duplicate combination", c)
				t.Fail()
			}
			seen[key] = true
		}
	}
}

// A chord straddling both hands must beat an all-left chord under an
// alternating bias when the previous chord was left-handed.
func TestAlternatingBiasStraddle(t *testing.T) {
	p := newPlacement(4)
	p.CommitLane(0, 0.0)
	p.SetBias(game.BiasAlternating)
	p.updateStrain(1.0)

	straddle := p.Cost([]int{1, 2}, 1.0, false)
	allLeft := p.Cost([]int{0, 1}, 1.0, false)
	if straddle >= allLeft {
		t.Log("straddle", straddle)
		t.Log("all left", allLeft)
		t.Fail()
	}
}

func TestJackHardReject(t *testing.T) {
	p := newPlacement(4)
	p.CommitLane(1, 1.0)
	if c := p.Cost([]int{1}, 1.05, false); c != rejectCost {
		t.Log("fast jack cost", c)
		t.Fail()
	}
	// The simple style allows jacks at a price
	if c := p.Cost([]int{1}, 1.05, true); c >= rejectCost {
		t.Log("allowed jack cost", c)
		t.Fail()
	}
	// Outside the window the jack is merely expensive
	if c := p.Cost([]int{1}, 2.0, false); c >= rejectCost {
		t.Log("slow jack cost", c)
		t.Fail()
	}
}

func TestStrainDecays(t *testing.T) {
	p := newPlacement(4)
	p.leftStrain = 10
	p.rightStrain = 2
	p.lastTime = 0
	p.updateStrain(1.0)
	if p.leftStrain != 5 || p.rightStrain != 0 {
		t.Log("left ", p.leftStrain)
		t.Log("right", p.rightStrain)
		t.Fail()
	}
}

func TestBestLanesBounds(t *testing.T) {
	for _, laneCount := range []int{4, 6} {
		p := newPlacement(laneCount)
		now := 0.0
		for i := 0; i < 50; i++ {
			now += 0.2
			count := 1 + i%3
			lanes := p.BestLanes(count, now, 30, false)
			if len(lanes) != count {
				t.Log("chord size", len(lanes), "wanted", count)
				t.Fail()
			}
			for _, l := range lanes {
				if l < 0 || l >= laneCount {
					t.Log("lane out of range", lanes)
					t.Fail()
				}
			}
		}
	}
}

func TestBestLanesAvoidsFastJacks(t *testing.T) {
	p := newPlacement(4)
	first := p.BestLanes(1, 1.0, 30, false)
	second := p.BestLanes(1, 1.05, 30, false)
	if first[0] == second[0] {
		t.Log("jack emitted inside window", first, second)
		t.Fail()
	}
}

func TestFlowBonusRewardsSweep(t *testing.T) {
	p := newPlacement(4)
	p.CommitLane(0, 0.0)
	p.CommitLane(1, 0.3) // Establishes rightward flow
	p.updateStrain(0.6)

	continuing := p.Cost([]int{2}, 0.6, false)
	reversing := p.Cost([]int{0}, 0.6, false)
	if continuing >= reversing {
		t.Log("continuing", continuing)
		t.Log("reversing ", reversing)
		t.Fail()
	}
}
