// SPDX-License-Identifier: MIT

package core

// NoteID identifies a note within a project.
type NoteID uint64

// TrackID identifies a track; events are routed to nodes by track.
type TrackID uint64

// IDAllocator issues sequential ids. The zero value is ready to use.
type IDAllocator struct {
	nextNote uint64
}

// NextNoteID returns the next unused note id.
func (a *IDAllocator) NextNoteID() NoteID {
	id := NoteID(a.nextNote)
	a.nextNote++
	return id
}
