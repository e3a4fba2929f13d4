// SPDX-License-Identifier: MIT

package engine

// Node is the universal interface for anything that produces or transforms
// audio. Nodes never handle event timing: EvaluateNode slices the buffer
// and calls Render/HandleEvent in the correct interleaved order.
//
// All three methods run on the render path and must not allocate, lock,
// block or panic.
type Node interface {
	// Render writes frames [from, to) of the output buffer.
	Render(inputs []*Buffer, output *Buffer, from, to int, sampleRate float64)

	// HandleEvent applies a state change at the current slice position.
	HandleEvent(event Event)

	// Reset returns the node to its initial silent state.
	Reset()
}

// EvaluateNode is the sample-accurate event slicing loop. It walks events in
// order, rendering sub-ranges between them so state changes (e.g. note-on)
// take effect at the exact sample. Events must be pre-sorted by offset.
func EvaluateNode(node Node, inputs []*Buffer, output *Buffer, events []ScheduledEvent, sampleRate float64) {
	totalFrames := output.Frames()
	cursor := 0

	for _, event := range events {
		offset := int(event.SampleOffset)

		// Render frames up to this event.
		if offset > cursor {
			node.Render(inputs, output, cursor, offset, sampleRate)
		}

		// Apply the event at the exact sample.
		node.HandleEvent(event.Event)

		cursor = offset
	}

	// Render remaining frames after the last event.
	if cursor < totalFrames {
		node.Render(inputs, output, cursor, totalFrames, sampleRate)
	}
}
