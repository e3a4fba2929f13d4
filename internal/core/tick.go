// SPDX-License-Identifier: MIT

// Package core holds the musical time and identity primitives shared by the
// engine and instruments.
package core

import (
	"errors"
	"fmt"
)

// TicksPerQuarter is the sequencer resolution: 480 PPQ. Divides cleanly by
// 2, 3, 4, 5, 8, 16, 32, etc., covering all standard subdivisions
// including triplets.
const TicksPerQuarter uint64 = 480

// Tick is an absolute position in musical time. Integer-only to avoid float
// drift. Durations use raw uint64 tick counts; Tick is specifically a
// position.
type Tick uint64

var (
	// ErrZeroDenominator rejects beat fractions with denominator zero.
	ErrZeroDenominator = errors.New("beat fraction denominator is zero")

	// ErrUnevenDivision rejects beat fractions that do not divide evenly
	// into the 480 PPQ grid.
	ErrUnevenDivision = errors.New("beat fraction does not divide evenly into PPQ 480")
)

// FromQuarters returns the tick position of a quarter-note count.
func FromQuarters(quarters uint64) Tick {
	return Tick(quarters * TicksPerQuarter)
}

// FromBeats constructs a position from a beat fraction (e.g. 1/16 is a
// sixteenth note).
func FromBeats(numerator, denominator uint64) (Tick, error) {
	if denominator == 0 {
		return 0, ErrZeroDenominator
	}

	total := numerator * TicksPerQuarter * 4
	if total%denominator != 0 {
		return 0, fmt.Errorf("%w: %d/%d", ErrUnevenDivision, numerator, denominator)
	}
	return Tick(total / denominator), nil
}

// Quarters converts the position to quarter notes.
func (t Tick) Quarters() float64 {
	return float64(t) / float64(TicksPerQuarter)
}

// SnapToGrid rounds to the nearest grid line. Ties round up.
func (t Tick) SnapToGrid(grid uint64) Tick {
	return Tick(((uint64(t) + grid/2) / grid) * grid)
}

// SaturatingSub subtracts, clamping at zero instead of wrapping.
func (t Tick) SaturatingSub(other Tick) Tick {
	if other > t {
		return 0
	}
	return t - other
}
