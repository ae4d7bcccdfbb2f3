package system

import (
	"log"
	"time"

	"github.com/yohamta/donburi"
	decs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
)

const frameSampleWindow = 60

// Diagnostics maintains the rolling frame-time window and, when verbose,
// logs a summary line once per second.
type Diagnostics struct {
	stats   *donburi.Query
	timer   component.Timer
	verbose bool
	logf    func(format string, args ...any)
}

func NewDiagnostics(verbose bool) *Diagnostics {
	return &Diagnostics{
		stats:   donburi.NewQuery(filter.Contains(component.FrameStats)),
		timer:   component.NewTimer(tickInterval),
		verbose: verbose,
		logf:    log.Printf,
	}
}

func (d *Diagnostics) Update(e *decs.ECS) {
	d.advance(e.World, e.Time.DeltaTime())
}

func (d *Diagnostics) advance(w donburi.World, dt time.Duration) {
	d.stats.Each(w, func(entry *donburi.Entry) {
		stats := component.FrameStats.Get(entry)
		record(stats, dt.Seconds()*1000)

		d.timer.Tick(dt)
		if d.timer.JustFinished() && d.verbose {
			d.logf("frame: avg %.2fms min %.2fms max %.2fms (%.1f fps)",
				stats.AvgMS, stats.MinMS, stats.MaxMS, stats.AvgFPS)
		}
	})
}

func record(stats *component.FrameStatsData, ms float64) {
	if len(stats.Samples) >= frameSampleWindow {
		stats.Samples = stats.Samples[1:]
	}
	stats.Samples = append(stats.Samples, ms)
	stats.LastMS = ms

	sum := 0.0
	min := stats.Samples[0]
	max := stats.Samples[0]
	for _, s := range stats.Samples {
		sum += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	stats.AvgMS = sum / float64(len(stats.Samples))
	stats.MinMS = min
	stats.MaxMS = max
	if stats.AvgMS > 0 {
		stats.AvgFPS = 1000 / stats.AvgMS
	}
}
