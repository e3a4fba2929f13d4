// SPDX-License-Identifier: MIT

package score

import (
	"sort"

	"github.com/motif-audio/motif/internal/core"
	"github.com/motif-audio/motif/internal/engine"
)

type timedEvent struct {
	sample uint64
	event  engine.Event
}

// Scheduler walks one track's events in sample time, emitting the
// sample-accurate batches each render block needs. Note-offs at the same
// sample sort before note-ons so retriggered notes release first.
type Scheduler struct {
	events []timedEvent
	cursor int
}

// NewScheduler compiles tick-time note events into a sorted sample-time
// schedule at the given tempo.
func NewScheduler(clock engine.Clock, bpm float64, events []core.NoteEvent) *Scheduler {
	timed := make([]timedEvent, 0, len(events)*2)

	for _, ev := range events {
		onSample := clock.TickToSample(ev.Start, bpm)
		offSample := clock.TickToSample(ev.Start+core.Tick(ev.LengthTicks), bpm)

		timed = append(timed,
			timedEvent{sample: onSample, event: engine.NoteOn(ev.Note, ev.Velocity)},
			timedEvent{sample: offSample, event: engine.NoteOff(ev.Note)},
		)
	}

	sort.SliceStable(timed, func(i, j int) bool {
		if timed[i].sample != timed[j].sample {
			return timed[i].sample < timed[j].sample
		}
		return timed[i].event.Kind == engine.EventNoteOff && timed[j].event.Kind == engine.EventNoteOn
	})

	return &Scheduler{events: timed}
}

// CollectBlock returns the events falling within the block starting at
// blockStart, with sample offsets relative to the block. Events are
// consumed; successive calls with advancing block starts walk the schedule.
func (s *Scheduler) CollectBlock(blockStart uint64, frames int) []engine.ScheduledEvent {
	var batch []engine.ScheduledEvent

	for s.cursor < len(s.events) {
		ev := s.events[s.cursor]
		if ev.sample >= blockStart+uint64(frames) {
			break
		}

		offset := uint64(0)
		if ev.sample > blockStart {
			offset = ev.sample - blockStart
		}
		batch = append(batch, engine.ScheduledEvent{
			SampleOffset: uint32(offset),
			Event:        ev.event,
		})
		s.cursor++
	}

	return batch
}

// Done reports whether every scheduled event has been emitted.
func (s *Scheduler) Done() bool {
	return s.cursor >= len(s.events)
}

// EndSample returns the sample position of the last event.
func (s *Scheduler) EndSample() uint64 {
	if len(s.events) == 0 {
		return 0
	}
	return s.events[len(s.events)-1].sample
}
