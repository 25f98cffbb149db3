package game

type PlayStyle string

const (
	PlayThumb PlayStyle = "thumb"
	PlayMulti PlayStyle = "multi"
)

// Features gate whole note classes. With everything off no note can be
// emitted and generation fails.
type Features struct {
	Normal bool
	Holds  bool
	Catch  bool
}

// TierLevelMap maps the legacy 5-tier difficulty names onto the
// continuous 1-20 scale.
var TierLevelMap = map[string]float64{
	"easy":   3,
	"normal": 8,
	"hard":   12,
	"expert": 16,
	"master": 20,
}
