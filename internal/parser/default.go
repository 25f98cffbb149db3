package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adddTer/neonflow/internal/game"
)

// DefaultParser reads the JSON files the upstream analysis drops next to
// the audio: a *.onsets.json onset list and an optional *.structure.json
// section map.
type DefaultParser struct{}

func (p *DefaultParser) ParseOnsets(file string) ([]game.Onset, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read onset file: %w", err)
	}
	var onsets []game.Onset
	if err := json.Unmarshal(data, &onsets); nil != err {
		return nil, fmt.Errorf("unable to parse onset file: %w", err)
	}
	if len(onsets) == 0 {
		return nil, fmt.Errorf("onset file has no onsets")
	}
	return onsets, nil
}

func (p *DefaultParser) ParseStructure(file string) (*game.Structure, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read structure file: %w", err)
	}
	var structure game.Structure
	if err := json.Unmarshal(data, &structure); nil != err {
		return nil, fmt.Errorf("unable to parse structure file: %w", err)
	}
	if structure.BPM <= 0 {
		return nil, fmt.Errorf("structure has non-positive bpm %v", structure.BPM)
	}
	if len(structure.Sections) == 0 {
		return nil, fmt.Errorf("structure has no sections")
	}
	return &structure, nil
}

// DefaultStructure covers songs without a structure file: one full-length
// mid-intensity stream section.
func DefaultStructure(bpm, length float64) *game.Structure {
	return &game.Structure{
		BPM: bpm,
		Sections: []game.Section{{
			StartTime: 0,
			EndTime:   length,
			Type:      game.SectionVerse,
			Intensity: 0.5,
			Style:     game.StyleStream,
			Descriptors: game.Descriptors{
				Flow:     game.FlowLinear,
				HandBias: game.BiasBalanced,
				Focus:    game.FocusMelody,
			},
		}},
	}
}
