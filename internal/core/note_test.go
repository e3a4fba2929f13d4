// SPDX-License-Identifier: MIT
package core

import (
	"math"
	"testing"
)

func TestNoteFrequency(t *testing.T) {
	if got := NoteA4.Frequency(); math.Abs(got-440.0) > 1e-9 {
		t.Errorf("A4 frequency = %v, want 440", got)
	}
	if got := NoteC4.Frequency(); math.Abs(got-261.6255653) > 1e-6 {
		t.Errorf("C4 frequency = %v, want ~261.63", got)
	}
	// One octave doubles the frequency.
	if got := Note(81).Frequency(); math.Abs(got-880.0) > 1e-9 {
		t.Errorf("A5 frequency = %v, want 880", got)
	}
}

func TestParseNote(t *testing.T) {
	cases := []struct {
		in   string
		want Note
	}{
		{"C4", NoteC4},
		{"c4", NoteC4},
		{"E4", NoteE4},
		{"G4", NoteG4},
		{"A4", NoteA4},
		{"F#3", 54},
		{"Bb2", 46},
		{"C-1", 0},
		{"G9", 127},
	}
	for _, tc := range cases {
		got, err := ParseNote(tc.in)
		if err != nil {
			t.Errorf("ParseNote(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseNote(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseNoteRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "C", "H4", "C##4", "C12", "4C"} {
		if _, err := ParseNote(in); err == nil {
			t.Errorf("ParseNote(%q) should fail", in)
		}
	}
}

func TestNoteString(t *testing.T) {
	cases := map[Note]string{
		NoteC4: "C4",
		54:     "F#3",
		NoteA4: "A4",
		0:      "C-1",
	}
	for note, want := range cases {
		if got := note.String(); got != want {
			t.Errorf("Note(%d).String() = %q, want %q", uint8(note), got, want)
		}
	}
}
