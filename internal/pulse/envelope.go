// SPDX-License-Identifier: MIT

// Package pulse is an 8-voice polyphonic pulse-wave synthesizer implementing
// engine.Node.
package pulse

// EnvelopeState is an ADSR stage. Progresses linearly:
// Idle → Attack → Decay → Sustain → Release → Idle.
type EnvelopeState uint8

const (
	StateIdle EnvelopeState = iota
	StateAttack
	StateDecay
	StateSustain
	StateRelease
)

// instantThreshold treats stage times below 10µs as instant to avoid
// division blowup.
const instantThreshold = 1e-5

// Envelope is a per-voice linear ADSR envelope. Each voice owns one; the
// state machine runs per-sample via Tick.
type Envelope struct {
	state        EnvelopeState
	level        float64
	attack       float32
	decay        float32
	sustain      float32
	release      float32
	releaseStart float64
}

// Trigger starts the envelope from zero. Called on note-on (including voice
// steal).
func (e *Envelope) Trigger() {
	e.state = StateAttack
	e.level = 0
}

// Release begins release from the current level. Captures the level so the
// release ramp works correctly even if triggered during attack/decay.
func (e *Envelope) Release() {
	e.releaseStart = e.level
	e.state = StateRelease
}

// SetADSR sets envelope parameters. Called after Trigger so the voice uses
// the synth's current values (times in seconds, sustain is a level 0-1).
func (e *Envelope) SetADSR(attack, decay, sustain, release float32) {
	e.attack = attack
	e.decay = decay
	e.sustain = sustain
	e.release = release
}

// Tick advances one sample and returns the current amplitude (0.0-1.0).
func (e *Envelope) Tick(sampleRate float64) float64 {
	switch e.state {
	case StateIdle:
	case StateAttack:
		if e.attack < instantThreshold {
			e.level = 1
			e.state = StateDecay
		} else {
			e.level += 1 / (float64(e.attack) * sampleRate)
			if e.level > 1 {
				e.level = 1
				e.state = StateDecay
			}
		}
	case StateDecay:
		sustain := float64(e.sustain)
		if e.decay < instantThreshold {
			e.level = sustain
			e.state = StateSustain
		} else {
			e.level -= (1 - sustain) / (float64(e.decay) * sampleRate)
			if e.level < sustain {
				e.level = sustain
				e.state = StateSustain
			}
		}
	case StateSustain:
	case StateRelease:
		if e.release < instantThreshold {
			e.level = 0
			e.state = StateIdle
		} else {
			e.level -= e.releaseStart / (float64(e.release) * sampleRate)
			if e.level < 0 {
				e.level = 0
				e.state = StateIdle
			}
		}
	}

	return e.level
}

// IsIdle reports whether the envelope has fully decayed.
func (e *Envelope) IsIdle() bool {
	return e.state == StateIdle
}

// IsReleasing reports whether the envelope is in its release stage.
func (e *Envelope) IsReleasing() bool {
	return e.state == StateRelease
}

// Reset silences the envelope immediately.
func (e *Envelope) Reset() {
	e.state = StateIdle
	e.level = 0
}
