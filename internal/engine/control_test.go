// SPDX-License-Identifier: MIT
package engine

import (
	"errors"
	"testing"

	"github.com/motif-audio/motif/internal/core"
)

func TestPlaybackControlSendAndDrain(t *testing.T) {
	control := NewPlaybackControl(4)

	if err := control.Send(1, NoteOn(core.NoteC4, core.MaxVelocity)); err != nil {
		t.Fatalf("Send() failed: %v", err)
	}
	if err := control.Send(1, NoteOff(core.NoteC4)); err != nil {
		t.Fatalf("Send() failed: %v", err)
	}

	events := control.Drain(nil)
	if len(events) != 2 {
		t.Fatalf("Drain() returned %d events, want 2", len(events))
	}
	if events[0].Event.Kind != EventNoteOn || events[1].Event.Kind != EventNoteOff {
		t.Errorf("events drained out of order: %v", events)
	}
	if events[0].Track != 1 {
		t.Errorf("track = %d, want 1", events[0].Track)
	}
}

func TestPlaybackControlFullQueue(t *testing.T) {
	control := NewPlaybackControl(1)

	if err := control.Send(0, NoteOn(core.NoteC4, core.MaxVelocity)); err != nil {
		t.Fatalf("Send() failed: %v", err)
	}
	err := control.Send(0, NoteOn(core.NoteE4, core.MaxVelocity))
	if !errors.Is(err, ErrEventBufferFull) {
		t.Errorf("expected ErrEventBufferFull, got %v", err)
	}

	// Draining frees capacity again.
	if got := len(control.Drain(nil)); got != 1 {
		t.Fatalf("Drain() returned %d events, want 1", got)
	}
	if err := control.Send(0, NoteOn(core.NoteE4, core.MaxVelocity)); err != nil {
		t.Errorf("Send() after drain failed: %v", err)
	}
}
