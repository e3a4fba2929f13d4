// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/motif-audio/motif/internal/core"
)

// Clock bridges musical time (ticks) and audio time (samples). The sample
// position is the single source of truth on the render path; ticks are
// always derived from samples, never accumulated independently.
type Clock struct {
	sampleRate float64
}

// NewClock creates a clock for the given sample rate.
func NewClock(sampleRate float64) Clock {
	return Clock{sampleRate: sampleRate}
}

// SampleRate returns the clock's sample rate.
func (c Clock) SampleRate() float64 {
	return c.sampleRate
}

// TickToSample converts a tick position to the corresponding sample. Uses
// ceil so that SampleToTick(TickToSample(t)) == t for on-grid ticks.
func (c Clock) TickToSample(tick core.Tick, bpm float64) uint64 {
	seconds := tick.Quarters() / (bpm / 60.0)
	return uint64(math.Ceil(seconds * c.sampleRate))
}

// SampleToTick derives the tick position from a sample position. Used to
// report the playhead back to the UI; the render path never stores ticks.
func (c Clock) SampleToTick(sample uint64, bpm float64) core.Tick {
	seconds := float64(sample) / c.sampleRate
	quarters := seconds * (bpm / 60.0)
	return core.Tick(quarters * float64(core.TicksPerQuarter))
}
