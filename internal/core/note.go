// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Note is a MIDI note number (0-127). Middle C ("C4") is 60; A4 is 69.
type Note uint8

// Velocity is a MIDI velocity (0-127).
type Velocity uint8

// MaxVelocity is the loudest MIDI velocity.
const MaxVelocity Velocity = 127

// Common notes used in defaults and tests.
const (
	NoteC4 Note = 60
	NoteE4 Note = 64
	NoteG4 Note = 67
	NoteA4 Note = 69
)

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var noteOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Frequency returns the equal-temperament frequency in Hz, with A4 = 440.
func (n Note) Frequency() float64 {
	return 440.0 * math.Pow(2, (float64(n)-69)/12.0)
}

// String renders the note as a name with sharps, e.g. "C4", "F#3".
func (n Note) String() string {
	return fmt.Sprintf("%s%d", noteNames[int(n)%12], int(n)/12-1)
}

// ParseNote parses note names like "C4", "F#3" or "Bb2".
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid note %q", s)
	}

	offset, ok := noteOffsets[s[0]&^0x20] // uppercase the letter
	if !ok {
		return 0, fmt.Errorf("invalid note letter in %q", s)
	}

	rest := s[1:]
	switch rest[0] {
	case '#':
		offset++
		rest = rest[1:]
	case 'b':
		offset--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note %q", s)
	}

	value := (octave+1)*12 + offset
	if value < 0 || value > 127 {
		return 0, fmt.Errorf("note %q outside MIDI range", s)
	}
	return Note(value), nil
}

// NoteEvent is a note placed on the timeline.
type NoteEvent struct {
	Start       Tick
	LengthTicks uint64
	Note        Note
	Velocity    Velocity
}
