package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/adddTer/neonflow/internal/align"
	"github.com/adddTer/neonflow/internal/difficulty"
	"github.com/adddTer/neonflow/internal/game"
	"github.com/adddTer/neonflow/internal/pattern"
	"github.com/adddTer/neonflow/internal/physics"
)

// ErrNoNotes is returned when every onset was gated away. Retrying with the
// same inputs is pointless; the caller should lower the difficulty or
// surface the failure.
var ErrNoNotes = errors.New("generation produced no notes")

type Options struct {
	Difficulty float64 // 1-20, clamped
	LaneCount  int     // 4 or 6
	PlayStyle  game.PlayStyle
	Features   game.Features
	Seed       int64 // 0 picks a time-based seed
}

type Generator interface {
	Generate(onsets []game.Onset, structure *game.Structure, opts Options) ([]*game.Note, error)
}

// DefaultGenerator is a greedy single-pass charter: each aligned onset is
// gated on energy and spacing, then either consumed by a pattern injection
// or placed through the ergonomic cost search. No backtracking.
type DefaultGenerator struct{}

const (
	// Pattern injection only fires on inter-onset gaps below this
	patternMaxGap = 0.4
	// Raw chance a qualifying single note becomes a catch
	catchChance = 0.25
	// Margin shaved off a hold so it releases before the next onset
	holdRelease = 0.1
	// Holds shorter than this play as taps
	minHoldLen = 0.2
)

func (g *DefaultGenerator) Generate(onsets []game.Onset, structure *game.Structure, opts Options) ([]*game.Note, error) {
	if opts.LaneCount != 4 && opts.LaneCount != 6 {
		return nil, fmt.Errorf("unsupported lane count %d", opts.LaneCount)
	}
	if structure == nil || len(structure.Sections) == 0 {
		return nil, errors.New("song structure has no sections")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	level := difficulty.Clamp(opts.Difficulty)
	cfg := difficulty.Profile(level)
	ph := physics.New(opts.LaneCount, rng)

	aligned := align.Onsets(onsets)
	notes := []*game.Note{}
	lastGenerated := math.Inf(-1)

	for i := 0; i < len(aligned); {
		on := aligned[i]
		sec := structure.SectionAt(on.Time)
		ph.SetBias(sec.Descriptors.HandBias)

		// Quiet sections demand louder onsets
		gate := (0.05 + (1-sec.Intensity)*0.2) * cfg.ThresholdMultiplier
		if on.Energy < gate {
			i++
			continue
		}
		if on.Time-lastGenerated < cfg.MinGap {
			i++
			continue
		}

		if opts.Features.Normal && rng.Float64() < cfg.PatternChance {
			if hits := g.tryPattern(aligned, i, sec, cfg, opts, rng); len(hits) > 0 {
				for _, h := range hits {
					ph.CommitLane(h.Lane, h.Time)
					notes = append(notes, &game.Note{
						ID:   uuid.NewString(),
						Time: h.Time,
						Lane: h.Lane,
						Type: game.NoteNormal,
					})
				}
				// Consume every onset the injected run covers so the
				// pass never steps back in time
				lastGenerated = hits[len(hits)-1].Time
				for i < len(aligned) && aligned[i].Time <= lastGenerated {
					i++
				}
				continue
			}
		}

		sim := g.simNotes(on, sec, level, cfg, opts)
		lanes := ph.BestLanes(sim, on.Time, cfg.AllowedCost, sec.Style == game.StyleSimple)

		nextGap := math.Inf(1)
		if i+1 < len(aligned) {
			nextGap = aligned[i+1].Time - on.Time
		}

		for _, lane := range lanes {
			if n := g.emit(on, sec, lane, len(lanes), nextGap, structure.BPM, opts, rng); n != nil {
				notes = append(notes, n)
			}
		}

		lastGenerated = on.Time
		i++
	}

	if len(notes) == 0 {
		return nil, ErrNoNotes
	}
	return notes, nil
}

// tryPattern injects a canned sequence when the local onset grid is dense
// and even enough. The returned hits replace one onset each.
func (g *DefaultGenerator) tryPattern(aligned []game.Onset, i int, sec *game.Section, cfg difficulty.Config, opts Options, rng *rand.Rand) []pattern.Hit {
	if i+1 >= len(aligned) {
		return nil
	}
	interval := aligned[i+1].Time - aligned[i].Time
	if interval < cfg.MinGap*0.8 || interval >= patternMaxGap {
		return nil
	}

	count := 4 + rng.Intn(3)
	if remaining := len(aligned) - i; count > remaining {
		count = remaining
	}
	if count < 3 {
		return nil
	}

	start := aligned[i].Time
	switch sec.Descriptors.Flow {
	case game.FlowLinear, game.FlowSlide:
		dir := 1
		if rng.Intn(2) == 1 {
			dir = -1
		}
		return pattern.Stair(start, count, interval, rng.Intn(opts.LaneCount), dir, opts.LaneCount)
	case game.FlowZigzag, game.FlowRandom:
		laneA := rng.Intn(opts.LaneCount)
		laneB := rng.Intn(opts.LaneCount - 1)
		if laneB >= laneA {
			laneB++
		}
		return pattern.Trill(start, count, interval, laneA, laneB)
	case game.FlowCircular:
		return pattern.Roll(start, count, interval, opts.LaneCount)
	}
	return nil
}

// simNotes sizes the chord for one onset.
func (g *DefaultGenerator) simNotes(on game.Onset, sec *game.Section, level float64, cfg difficulty.Config, opts Options) int {
	sim := 1
	if (on.Energy > 0.9 && on.IsLowFreq) || (sec.Descriptors.Focus == game.FocusDrum && on.Energy > 0.8) {
		sim = 2
	}
	if level >= 18 && on.Energy > 0.95 {
		sim = 3
	}
	if sim > cfg.MaxPolyphony {
		sim = cfg.MaxPolyphony
	}
	// Two thumbs cannot comfortably cover triples below the top end
	if opts.PlayStyle == game.PlayThumb && level < 18 && sim > 2 {
		sim = 2
	}
	return sim
}

// emit decides the note class for one chosen lane. Every class is gated by
// its feature toggle, so with all toggles off nothing is ever emitted.
func (g *DefaultGenerator) emit(on game.Onset, sec *game.Section, lane, chordSize int, nextGap, bpm float64, opts Options, rng *rand.Rand) *game.Note {
	duration := 0.0
	if opts.Features.Holds &&
		sec.Descriptors.Focus == game.FocusVocal &&
		(sec.Style == game.StyleHold || sec.Style == game.StyleSimple) &&
		chordSize == 1 {
		d := math.Min(nextGap-holdRelease, math.Min(0.5, 60/bpm))
		if d > minHoldLen {
			duration = d
		}
	}

	noteType := game.NoteNormal
	if duration == 0 && opts.Features.Catch &&
		(sec.Descriptors.Flow == game.FlowCircular || (on.Energy > 0.8 && chordSize == 1)) &&
		rng.Float64() < catchChance {
		noteType = game.NoteCatch
	}

	// A plain tap is a normal-class note and needs the normal toggle
	if noteType == game.NoteNormal && duration == 0 && !opts.Features.Normal {
		return nil
	}

	return &game.Note{
		ID:       uuid.NewString(),
		Time:     on.Time,
		Lane:     lane,
		Type:     noteType,
		Duration: duration,
	}
}
