// SPDX-License-Identifier: MIT

package engine

import "github.com/motif-audio/motif/internal/core"

// EventKind discriminates event payloads.
type EventKind uint8

const (
	// EventNoteOn starts a note at the given velocity.
	EventNoteOn EventKind = iota
	// EventNoteOff releases a note.
	EventNoteOff
)

// Event is unscheduled: what happened, not when. Nodes see these via
// HandleEvent; timing is stripped by EvaluateNode.
type Event struct {
	Kind     EventKind
	Note     core.Note
	Velocity core.Velocity
}

// NoteOn builds a note-on event.
func NoteOn(note core.Note, velocity core.Velocity) Event {
	return Event{Kind: EventNoteOn, Note: note, Velocity: velocity}
}

// NoteOff builds a note-off event.
func NoteOff(note core.Note) Event {
	return Event{Kind: EventNoteOff, Note: note}
}

// RoutedEvent addresses an event to a track.
type RoutedEvent struct {
	Track core.TrackID
	Event Event
}

// ScheduledEvent is an event with a sample-accurate position within the
// current buffer. SampleOffset is a buffer index (0..frames), not a musical
// time value.
type ScheduledEvent struct {
	SampleOffset uint32
	Event        Event
}
