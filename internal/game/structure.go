package game

type SectionType string

const (
	SectionIntro  SectionType = "intro"
	SectionVerse  SectionType = "verse"
	SectionChorus SectionType = "chorus"
	SectionBuild  SectionType = "build"
	SectionDrop   SectionType = "drop"
	SectionOutro  SectionType = "outro"
)

type Style string

const (
	StyleStream Style = "stream"
	StyleJump   Style = "jump"
	StyleHold   Style = "hold"
	StyleSimple Style = "simple"
)

type Flow string

const (
	FlowLinear   Flow = "linear"
	FlowZigzag   Flow = "zigzag"
	FlowCircular Flow = "circular"
	FlowRandom   Flow = "random"
	FlowSlide    Flow = "slide"
)

type HandBias string

const (
	BiasAlternating HandBias = "alternating"
	BiasLeftHeavy   HandBias = "left_heavy"
	BiasRightHeavy  HandBias = "right_heavy"
	BiasBalanced    HandBias = "balanced"
)

type Focus string

const (
	FocusVocal  Focus = "vocal"
	FocusDrum   Focus = "drum"
	FocusMelody Focus = "melody"
	FocusBass   Focus = "bass"
)

// Descriptors are the per-section stylistic hints supplied by the
// structuring service.
type Descriptors struct {
	Flow           Flow     `json:"flow"`
	HandBias       HandBias `json:"hand_bias"`
	Focus          Focus    `json:"focus"`
	SpecialPattern string   `json:"special_pattern,omitempty"` // burst, fill or none
}

type Section struct {
	StartTime   float64     `json:"startTime"`
	EndTime     float64     `json:"endTime"`
	Type        SectionType `json:"type"`
	Intensity   float64     `json:"intensity"` // 0..1
	Style       Style       `json:"style"`
	Descriptors Descriptors `json:"descriptors"`
}

type Structure struct {
	BPM      float64   `json:"bpm"`
	Sections []Section `json:"sections"`
}

// SectionAt returns the first section whose [start, end) range contains t.
// Times outside every section fall back to the first section rather than
// failing, so a sparse or sloppy structure still charts.
func (s *Structure) SectionAt(t float64) *Section {
	for i := range s.Sections {
		sec := &s.Sections[i]
		if t >= sec.StartTime && t < sec.EndTime {
			return sec
		}
	}
	return &s.Sections[0]
}
