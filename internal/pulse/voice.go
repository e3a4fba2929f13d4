// SPDX-License-Identifier: MIT

package pulse

import "github.com/motif-audio/motif/internal/core"

// Voice is a single voice of polyphony. It owns a phase accumulator and an
// ADSR envelope. The synth allocates a fixed set; idle voices are skipped
// during render.
type Voice struct {
	phase     float64
	frequency float64
	velocity  core.Velocity
	envelope  Envelope

	note    core.Note
	hasNote bool

	// Monotonic counter for voice-steal ordering (higher = newer).
	age uint64
}

// RenderSample renders one sample. dutyCycle (0.0-1.0) controls the fraction
// of each wave cycle spent high: 0.5 is a square wave, lower values are
// thinner.
func (v *Voice) RenderSample(dutyCycle, sampleRate float64) float64 {
	v.phase += v.frequency / sampleRate
	for v.phase >= 1 {
		v.phase--
	}

	pulse := -1.0
	if v.phase > dutyCycle {
		pulse = 1.0
	}

	return pulse * v.envelope.Tick(sampleRate) * (float64(v.velocity) / 127.0)
}

// Trigger starts the voice on a note.
func (v *Voice) Trigger(note core.Note, velocity core.Velocity, frequency float64, age uint64) {
	v.phase = 0
	v.note = note
	v.hasNote = true
	v.velocity = velocity
	v.frequency = frequency
	v.age = age
	v.envelope.Trigger()
}

// Release begins the envelope release.
func (v *Voice) Release() {
	v.envelope.Release()
}

// IsActive reports whether the voice is producing sound.
func (v *Voice) IsActive() bool {
	return !v.envelope.IsIdle()
}

// Note returns the voice's current note, if any.
func (v *Voice) Note() (core.Note, bool) {
	return v.note, v.hasNote
}

// Reset silences the voice immediately.
func (v *Voice) Reset() {
	v.hasNote = false
	v.envelope.Reset()
}
