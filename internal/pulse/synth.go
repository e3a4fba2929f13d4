// SPDX-License-Identifier: MIT

package pulse

import (
	"github.com/motif-audio/motif/internal/core"
	"github.com/motif-audio/motif/internal/engine"
	"github.com/motif-audio/motif/internal/metrics"
)

// VoiceCount is the polyphony limit; a note-on past capacity steals the
// oldest voice.
const VoiceCount = 8

// masterGain scales the summed output. Prevents clipping when multiple
// voices are active.
const masterGain = 0.15

// Synth is an 8-voice polyphonic pulse-wave synthesizer. It implements
// engine.Node: feed it note-on/note-off events via engine.EvaluateNode and
// it produces audio. ADSR parameters are shared; each voice gets a copy on
// trigger.
type Synth struct {
	voices [VoiceCount]Voice

	DutyCycle float64
	Attack    float32
	Decay     float32
	Sustain   float32
	Release   float32

	nextAge uint64
}

// NewSynth creates a synth with the default patch.
func NewSynth() *Synth {
	return &Synth{
		DutyCycle: 0.5,
		Attack:    0.01,
		Decay:     0.1,
		Sustain:   0.7,
		Release:   0.15,
	}
}

// ActiveVoices returns the number of currently sounding voices.
func (s *Synth) ActiveVoices() int {
	active := 0
	for i := range s.voices {
		if s.voices[i].IsActive() {
			active++
		}
	}
	return active
}

// Playing reports whether any active voice holds the given note.
func (s *Synth) Playing(note core.Note) bool {
	for i := range s.voices {
		if n, ok := s.voices[i].Note(); ok && n == note && s.voices[i].IsActive() {
			return true
		}
	}
	return false
}

// Render implements engine.Node. Output is mono duplicated to both channels.
func (s *Synth) Render(_ []*engine.Buffer, output *engine.Buffer, from, to int, sampleRate float64) {
	left := output.ChannelRange(0, from, to)
	right := output.ChannelRange(1, from, to)

	for frame := range left {
		sum := 0.0
		for i := range s.voices {
			if s.voices[i].IsActive() {
				sum += s.voices[i].RenderSample(s.DutyCycle, sampleRate)
			}
		}

		out := float32(sum * masterGain)
		left[frame] = out
		right[frame] = out
	}
}

// HandleEvent implements engine.Node.
func (s *Synth) HandleEvent(event engine.Event) {
	switch event.Kind {
	case engine.EventNoteOn:
		voice := s.allocateVoice()
		voice.Trigger(event.Note, event.Velocity, event.Note.Frequency(), s.nextAge)
		voice.envelope.SetADSR(s.Attack, s.Decay, s.Sustain, s.Release)
		s.nextAge++

	case engine.EventNoteOff:
		// Release every voice holding the note that isn't already releasing.
		for i := range s.voices {
			voice := &s.voices[i]
			if n, ok := voice.Note(); ok && n == event.Note && !voice.envelope.IsReleasing() {
				voice.Release()
			}
		}
	}
}

// allocateVoice finds an inactive voice, or steals the oldest one at
// capacity.
func (s *Synth) allocateVoice() *Voice {
	for i := range s.voices {
		if !s.voices[i].IsActive() {
			return &s.voices[i]
		}
	}

	oldest := 0
	for i := 1; i < len(s.voices); i++ {
		if s.voices[i].age < s.voices[oldest].age {
			oldest = i
		}
	}
	metrics.VoiceStolen()
	return &s.voices[oldest]
}

// Reset implements engine.Node, silencing all voices.
func (s *Synth) Reset() {
	for i := range s.voices {
		s.voices[i].Reset()
	}
	s.nextAge = 0
}
