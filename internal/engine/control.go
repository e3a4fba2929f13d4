// SPDX-License-Identifier: MIT

package engine

import "github.com/motif-audio/motif/internal/core"

// PlaybackControl is the UI-facing handle for sending live events to the
// render loop. It keeps queue details out of the UI so transport semantics
// live in one place.
type PlaybackControl struct {
	queue chan RoutedEvent
}

// NewPlaybackControl creates a control with a bounded event queue.
func NewPlaybackControl(capacity int) *PlaybackControl {
	return &PlaybackControl{queue: make(chan RoutedEvent, capacity)}
}

// Send enqueues a live event for the next render block. The send never
// blocks: a full queue returns ErrEventBufferFull.
func (c *PlaybackControl) Send(track core.TrackID, event Event) error {
	routed := RoutedEvent{Track: track, Event: event}
	select {
	case c.queue <- routed:
		return nil
	default:
		return ErrEventBufferFull
	}
}

// Drain moves all queued events into dst without blocking and returns the
// extended slice. Called once per render block.
func (c *PlaybackControl) Drain(dst []RoutedEvent) []RoutedEvent {
	for {
		select {
		case routed := <-c.queue:
			dst = append(dst, routed)
		default:
			return dst
		}
	}
}
