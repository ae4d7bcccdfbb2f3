package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/zshift/aw-geez/internal/component"
)

func frameStatsEntry(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	entry, ok := donburi.NewQuery(filter.Contains(component.FrameStats)).First(w)
	require.True(t, ok)
	return entry
}

func TestDiagnosticsRollingWindow(t *testing.T) {
	w := donburi.NewWorld()
	w.Entry(w.Create(component.FrameStats))

	d := NewDiagnostics(false)
	d.advance(w, 10*time.Millisecond)
	d.advance(w, 20*time.Millisecond)
	d.advance(w, 30*time.Millisecond)

	stats := component.FrameStats.Get(frameStatsEntry(t, w))
	assert.Equal(t, 30.0, stats.LastMS)
	assert.Equal(t, 10.0, stats.MinMS)
	assert.Equal(t, 30.0, stats.MaxMS)
	assert.InDelta(t, 20.0, stats.AvgMS, 1e-9)
	assert.InDelta(t, 50.0, stats.AvgFPS, 1e-9)
}

func TestDiagnosticsWindowEvictsOldSamples(t *testing.T) {
	w := donburi.NewWorld()
	w.Entry(w.Create(component.FrameStats))

	d := NewDiagnostics(false)
	// One slow outlier, then enough fast frames to push it out.
	d.advance(w, 100*time.Millisecond)
	for i := 0; i < frameSampleWindow; i++ {
		d.advance(w, 10*time.Millisecond)
	}

	stats := component.FrameStats.Get(frameStatsEntry(t, w))
	assert.Len(t, stats.Samples, frameSampleWindow)
	assert.Equal(t, 10.0, stats.MaxMS)
}

func TestDiagnosticsVerboseLogCadence(t *testing.T) {
	w := donburi.NewWorld()
	w.Entry(w.Create(component.FrameStats))

	var lines int
	d := NewDiagnostics(true)
	d.logf = func(format string, args ...any) { lines++ }

	for i := 0; i < 60; i++ {
		d.advance(w, 50*time.Millisecond)
	}
	assert.Equal(t, 3, lines)
}

func TestDiagnosticsQuietWhenNotVerbose(t *testing.T) {
	w := donburi.NewWorld()
	w.Entry(w.Create(component.FrameStats))

	var lines int
	d := NewDiagnostics(false)
	d.logf = func(format string, args ...any) { lines++ }

	for i := 0; i < 60; i++ {
		d.advance(w, 50*time.Millisecond)
	}
	assert.Zero(t, lines)
}
