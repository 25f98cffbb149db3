package game

// Onset is one transient detected by the upstream audio analysis.
type Onset struct {
	Time      float64 `json:"time"`      // Seconds from song start
	Energy    float64 `json:"energy"`    // Normalised 0..1
	IsLowFreq bool    `json:"isLowFreq"` // Kick/bass band transient
}
