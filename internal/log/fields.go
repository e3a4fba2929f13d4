// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldJobID = "job_id"
	FieldTrack = "track"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Audio fields
	FieldSampleRate = "sample_rate"
	FieldFrames     = "frames"
	FieldBPM        = "bpm"

	// Path fields
	FieldPath = "path"
)
