package config

import (
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/adddTer/neonflow/internal/game"
)

var (
	Directory           = kingpin.Arg("directory", "Song directory with audio and onset data").Required().ExistingDir()
	difficultyFlag      = kingpin.Flag("difficulty", "Difficulty 1-20, or easy|normal|hard|expert|master").Default("12").Short('d').String()
	Lanes               = kingpin.Flag("lanes", "Lane count, 4 or 6").Default("4").Short('k').Int()
	playStyle           = kingpin.Flag("play-style", "Play style, thumb or multi").Default("multi").String()
	Seed                = kingpin.Flag("seed", "Generation seed, 0 for time-based").Default("0").Int64()
	FallbackBPM         = kingpin.Flag("bpm", "Tempo used when no structure file is present").Default("120").Float64()
	normal              = kingpin.Flag("normal", "Emit tap notes").Default("true").Bool()
	holds               = kingpin.Flag("holds", "Emit hold notes").Default("true").Bool()
	catch               = kingpin.Flag("catch", "Emit catch notes").Default("true").Bool()
	DBPath              = kingpin.Flag("db", "Chart database path").Default("./charts.db").String()
	Preview             = kingpin.Flag("preview", "Scroll the chart in the terminal with audio").Short('p').Bool()
	Delay               = kingpin.Flag("delay", "Preview start delay").Default("1.5s").Duration()
	ColumnSpacing       = kingpin.Flag("spacing", "Columns between lanes").Default("6").Short('S').Uint()
	RefreshRate         = kingpin.Flag("refresh-rate", "Monitor refresh rate").Default("60.0").Short('R').Float()
	FramePeriod         = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Duration()
	scrollSpeedModifier = kingpin.Flag("scroll-speed", "Scroll speed, lower is faster").Default("3").Short('s').Uint()
	BarRow              = kingpin.Flag("bar-row", "Console row to render the hit bar").Default("8").Uint()
	ScrollSpeed         float64
)

// Difficulty resolves the flag, accepting either the numeric scale or a
// legacy tier name.
func Difficulty() float64 {
	if level, ok := game.TierLevelMap[*difficultyFlag]; ok {
		return level
	}
	level, err := strconv.ParseFloat(*difficultyFlag, 64)
	if nil != err {
		kingpin.Fatalf("unknown difficulty %q", *difficultyFlag)
	}
	return level
}

func PlayStyle() game.PlayStyle {
	if *playStyle == "thumb" {
		return game.PlayThumb
	}
	return game.PlayMulti
}

func Features() game.Features {
	return game.Features{Normal: *normal, Holds: *holds, Catch: *catch}
}

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	ScrollSpeed = float64(*scrollSpeedModifier) * 1000 / *RefreshRate
}
