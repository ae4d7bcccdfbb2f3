package component

import "github.com/yohamta/donburi"

// FrameStatsData is a rolling window of frame times maintained by the
// diagnostics system and read by the debug overlay. Times are milliseconds.
type FrameStatsData struct {
	Samples []float64
	LastMS  float64
	AvgMS   float64
	MinMS   float64
	MaxMS   float64
	AvgFPS  float64
}

var FrameStats = donburi.NewComponentType[FrameStatsData]()
