package testdata

import (
	"encoding/json"

	"github.com/adddTer/neonflow/internal/game"
)

func GetOnsets() ([]game.Onset, error) {
	var onsets []game.Onset
	if err := json.Unmarshal([]byte(onsetData), &onsets); nil != err {
		return nil, err
	}
	return onsets, nil
}

func GetStructure() (*game.Structure, error) {
	var structure game.Structure
	if err := json.Unmarshal([]byte(structureData), &structure); nil != err {
		return nil, err
	}
	return &structure, nil
}

// Eight seconds of a 120bpm track: a sparse verse into a dense chorus.
const onsetData = `[
	{"time":0.00,"energy":0.62,"isLowFreq":true},
	{"time":0.50,"energy":0.55,"isLowFreq":false},
	{"time":1.00,"energy":0.68,"isLowFreq":true},
	{"time":1.50,"energy":0.47,"isLowFreq":false},
	{"time":2.00,"energy":0.71,"isLowFreq":true},
	{"time":2.52,"energy":0.58,"isLowFreq":false},
	{"time":2.99,"energy":0.66,"isLowFreq":true},
	{"time":3.50,"energy":0.52,"isLowFreq":false},
	{"time":4.00,"energy":0.92,"isLowFreq":true},
	{"time":4.25,"energy":0.81,"isLowFreq":false},
	{"time":4.50,"energy":0.88,"isLowFreq":false},
	{"time":4.75,"energy":0.79,"isLowFreq":false},
	{"time":5.00,"energy":0.95,"isLowFreq":true},
	{"time":5.25,"energy":0.83,"isLowFreq":false},
	{"time":5.50,"energy":0.87,"isLowFreq":false},
	{"time":5.75,"energy":0.78,"isLowFreq":false},
	{"time":6.00,"energy":0.97,"isLowFreq":true},
	{"time":6.25,"energy":0.82,"isLowFreq":false},
	{"time":6.50,"energy":0.90,"isLowFreq":false},
	{"time":6.75,"energy":0.76,"isLowFreq":false},
	{"time":7.00,"energy":0.93,"isLowFreq":true},
	{"time":7.50,"energy":0.61,"isLowFreq":false},
	{"time":8.00,"energy":0.89,"isLowFreq":true}
]`

const structureData = `{
	"bpm": 120,
	"sections": [
		{
			"startTime": 0,
			"endTime": 4,
			"type": "verse",
			"intensity": 0.5,
			"style": "simple",
			"descriptors": {
				"flow": "linear",
				"hand_bias": "balanced",
				"focus": "vocal"
			}
		},
		{
			"startTime": 4,
			"endTime": 8.5,
			"type": "chorus",
			"intensity": 0.9,
			"style": "stream",
			"descriptors": {
				"flow": "zigzag",
				"hand_bias": "alternating",
				"focus": "drum"
			}
		}
	]
}`
