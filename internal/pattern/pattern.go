package pattern

// Hit is one placement in a canned sequence. Patterns carry no ergonomic
// state; the generator commits each hit into the placement model itself.
type Hit struct {
	Time float64
	Lane int
}

// Stair walks one lane per step in a fixed direction. Overflow past either
// edge nudges the cursor back inside and reverses, so the visual motion
// bounces instead of clamping flat against the wall.
func Stair(start float64, count int, interval float64, startLane, dir, laneCount int) []Hit {
	if dir == 0 {
		dir = 1
	}
	hits := make([]Hit, 0, count)
	lane := startLane
	for i := 0; i < count; i++ {
		if lane >= laneCount {
			lane = laneCount - 2
			dir = -dir
		} else if lane < 0 {
			lane = 1
			dir = -dir
		}
		hits = append(hits, Hit{Time: start + float64(i)*interval, Lane: lane})
		lane += dir
	}
	return hits
}

// Trill alternates two fixed lanes.
func Trill(start float64, count int, interval float64, laneA, laneB int) []Hit {
	hits := make([]Hit, 0, count)
	for i := 0; i < count; i++ {
		lane := laneA
		if i%2 == 1 {
			lane = laneB
		}
		hits = append(hits, Hit{Time: start + float64(i)*interval, Lane: lane})
	}
	return hits
}

var (
	rollLanes4 = []int{0, 1, 2, 3, 2, 1}
	rollLanes6 = []int{0, 1, 2, 3, 4, 5, 4, 3, 2, 1}
)

// Roll cycles a fixed sweep across the full lane span.
func Roll(start float64, count int, interval float64, laneCount int) []Hit {
	lanes := rollLanes4
	if laneCount == 6 {
		lanes = rollLanes6
	}
	hits := make([]Hit, 0, count)
	for i := 0; i < count; i++ {
		hits = append(hits, Hit{Time: start + float64(i)*interval, Lane: lanes[i%len(lanes)]})
	}
	return hits
}
