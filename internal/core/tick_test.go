// SPDX-License-Identifier: MIT
package core

import (
	"errors"
	"testing"
)

func TestFromQuarters(t *testing.T) {
	if got := FromQuarters(1); got != Tick(480) {
		t.Errorf("FromQuarters(1) = %d, want 480", got)
	}
	if got := FromQuarters(0); got != Tick(0) {
		t.Errorf("FromQuarters(0) = %d, want 0", got)
	}
}

func TestFromBeats(t *testing.T) {
	cases := []struct {
		num, den uint64
		want     Tick
	}{
		{1, 1, 1920},
		{1, 3, 640},
		{1, 4, 480},
		{1, 8, 240},
		{1, 16, 120},
		{1, 32, 60},
	}
	for _, tc := range cases {
		got, err := FromBeats(tc.num, tc.den)
		if err != nil {
			t.Errorf("FromBeats(%d, %d) error: %v", tc.num, tc.den, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FromBeats(%d, %d) = %d, want %d", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestFromBeatsRejectsUnevenDivision(t *testing.T) {
	if _, err := FromBeats(1, 7); !errors.Is(err, ErrUnevenDivision) {
		t.Errorf("FromBeats(1, 7) = %v, want ErrUnevenDivision", err)
	}
}

func TestFromBeatsRejectsZeroDenominator(t *testing.T) {
	if _, err := FromBeats(1, 0); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("FromBeats(1, 0) = %v, want ErrZeroDenominator", err)
	}
}

func TestQuarters(t *testing.T) {
	if got := Tick(0).Quarters(); got != 0.0 {
		t.Errorf("Tick(0).Quarters() = %v, want 0", got)
	}
	if got := Tick(240).Quarters(); got != 0.5 {
		t.Errorf("Tick(240).Quarters() = %v, want 0.5", got)
	}
	if got := FromQuarters(1).Quarters(); got != 1.0 {
		t.Errorf("FromQuarters(1).Quarters() = %v, want 1", got)
	}
}

func TestSnapToGrid(t *testing.T) {
	cases := []struct {
		tick Tick
		grid uint64
		want Tick
	}{
		{0, 120, 0},
		{50, 120, 0},
		{60, 120, 120}, // tie rounds up
		{80, 120, 120},
		{130, 120, 120},
		{500, 160, 480},
	}
	for _, tc := range cases {
		if got := tc.tick.SnapToGrid(tc.grid); got != tc.want {
			t.Errorf("Tick(%d).SnapToGrid(%d) = %d, want %d", tc.tick, tc.grid, got, tc.want)
		}
	}
}

func TestSaturatingSub(t *testing.T) {
	if got := Tick(200).SaturatingSub(100); got != Tick(100) {
		t.Errorf("200 satsub 100 = %d, want 100", got)
	}
	if got := Tick(100).SaturatingSub(200); got != Tick(0) {
		t.Errorf("100 satsub 200 = %d, want 0", got)
	}
}

func TestOrdering(t *testing.T) {
	if !(Tick(0) < Tick(1)) {
		t.Error("Tick(0) should be less than Tick(1)")
	}
	if Tick(480) != Tick(480) {
		t.Error("equal ticks should compare equal")
	}
}
