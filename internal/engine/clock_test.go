// SPDX-License-Identifier: MIT
package engine

import (
	"testing"

	"github.com/motif-audio/motif/internal/core"
)

func TestTickZeroIsSampleZero(t *testing.T) {
	c := NewClock(48000)

	if got := c.TickToSample(0, 120); got != 0 {
		t.Errorf("TickToSample(0) = %d, want 0", got)
	}
}

func TestOneBeatAt120BPM(t *testing.T) {
	c := NewClock(48000)

	// 120 BPM = 2 beats/sec, so 1 beat = 0.5s = 24000 samples at 48kHz.
	if got := c.TickToSample(core.FromQuarters(1), 120); got != 24000 {
		t.Errorf("one beat = %d samples, want 24000", got)
	}
	if got := c.TickToSample(core.FromQuarters(2), 120); got != 48000 {
		t.Errorf("two beats = %d samples, want 48000", got)
	}
}

func TestRoundTripOnGridTicks(t *testing.T) {
	c := NewClock(48000)

	for _, bpm := range []float64{40, 120, 300} {
		for _, ticks := range []core.Tick{0, 480, 960, 1920} {
			sample := c.TickToSample(ticks, bpm)
			back := c.SampleToTick(sample, bpm)
			if back != ticks {
				t.Errorf("round-trip failed at %v BPM for tick %d: got %d", bpm, ticks, back)
			}
		}
	}
}
