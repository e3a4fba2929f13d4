// SPDX-License-Identifier: MIT

// Package score loads declarative YAML scores and schedules their notes
// into sample-accurate engine events.
package score

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/motif-audio/motif/internal/core"
	"github.com/motif-audio/motif/internal/validate"
)

// NoteSpec is one note in a track, positioned in quarter-note beats.
//
// Velocity is a pointer so an explicit 0 (a silent note) survives the
// default: absent means 100, 0 means silent.
type NoteSpec struct {
	Note     string  `yaml:"note"`
	Start    float64 `yaml:"start"`
	Length   float64 `yaml:"length,omitempty"` // beats, default 1
	Velocity *int    `yaml:"velocity,omitempty"`
}

// Track is a named sequence of notes rendered by one synth instance.
type Track struct {
	Name  string     `yaml:"name"`
	Notes []NoteSpec `yaml:"notes"`
}

// Score is the root of a score document.
type Score struct {
	Title  string  `yaml:"title,omitempty"`
	BPM    float64 `yaml:"bpm"`
	Tracks []Track `yaml:"tracks"`
}

const (
	defaultLengthBeats = 1.0
	defaultVelocity    = 100
)

// Parse decodes a score payload using strict field checking.
func Parse(data []byte) (Score, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Score{}, fmt.Errorf("score is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Score
	if err := dec.Decode(&s); err != nil {
		return Score{}, fmt.Errorf("decode score: %w", err)
	}
	return s, nil
}

// Load reads and parses a score file, then validates it.
func Load(path string) (Score, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied
	if err != nil {
		return Score{}, fmt.Errorf("read score %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Score{}, fmt.Errorf("parse score %s: %w", path, err)
	}
	if err := Validate(s); err != nil {
		return Score{}, fmt.Errorf("validate score %s: %w", path, err)
	}
	return s, nil
}

// Validate checks a score structurally, accumulating all errors.
func Validate(s Score) error {
	v := validate.New()

	v.PositiveFloat("bpm", s.BPM)
	if len(s.Tracks) == 0 {
		v.AddError("tracks", "score has no tracks", nil)
	}

	seen := make(map[string]struct{}, len(s.Tracks))
	for ti, track := range s.Tracks {
		field := fmt.Sprintf("tracks[%d]", ti)
		v.NotEmpty(field+".name", track.Name)

		name := strings.TrimSpace(track.Name)
		if _, ok := seen[name]; ok && name != "" {
			v.AddError(field+".name", "duplicate track name", track.Name)
		}
		seen[name] = struct{}{}

		for ni, note := range track.Notes {
			nfield := fmt.Sprintf("%s.notes[%d]", field, ni)
			if _, err := core.ParseNote(note.Note); err != nil {
				v.AddError(nfield+".note", err.Error(), note.Note)
			}
			v.Custom(nfield+".start", note.Start, func(val interface{}) error {
				if val.(float64) < 0 {
					return fmt.Errorf("start cannot be negative")
				}
				return nil
			})
			if note.Length < 0 {
				v.AddError(nfield+".length", "length cannot be negative", note.Length)
			}
			if note.Velocity != nil {
				v.Range(nfield+".velocity", *note.Velocity, 0, 127)
			}
		}
	}

	return v.Err()
}

// TrackEvents is a compiled track: note events in tick time.
type TrackEvents struct {
	Name   string
	Events []core.NoteEvent
}

// Compile converts a validated score into per-track tick-time events.
func Compile(s Score) []TrackEvents {
	compiled := make([]TrackEvents, 0, len(s.Tracks))

	for _, track := range s.Tracks {
		events := make([]core.NoteEvent, 0, len(track.Notes))
		for _, spec := range track.Notes {
			note, err := core.ParseNote(spec.Note)
			if err != nil {
				// Validate rejected unparseable notes already.
				continue
			}

			length := spec.Length
			if length == 0 {
				length = defaultLengthBeats
			}
			velocity := defaultVelocity
			if spec.Velocity != nil {
				velocity = *spec.Velocity
			}

			events = append(events, core.NoteEvent{
				Start:       beatsToTick(spec.Start),
				LengthTicks: uint64(beatsToTick(length)),
				Note:        note,
				Velocity:    core.Velocity(velocity),
			})
		}
		compiled = append(compiled, TrackEvents{Name: track.Name, Events: events})
	}

	return compiled
}

// beatsToTick converts quarter-note beats to the nearest tick.
func beatsToTick(beats float64) core.Tick {
	return core.Tick(math.Round(beats * float64(core.TicksPerQuarter)))
}

// End returns the tick at which the last note of any track ends.
func End(tracks []TrackEvents) core.Tick {
	var end core.Tick
	for _, track := range tracks {
		for _, ev := range track.Events {
			if last := ev.Start + core.Tick(ev.LengthTicks); last > end {
				end = last
			}
		}
	}
	return end
}
