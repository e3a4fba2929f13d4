// SPDX-License-Identifier: MIT
package pulse

import "testing"

const sampleRate = 48000.0

func TestEnvelopeStartsIdle(t *testing.T) {
	var env Envelope

	if !env.IsIdle() {
		t.Error("zero-value envelope should be idle")
	}
	if got := env.Tick(sampleRate); got != 0 {
		t.Errorf("idle Tick() = %v, want 0", got)
	}
}

func TestEnvelopeAttackReachesFullLevel(t *testing.T) {
	var env Envelope
	env.Trigger()
	env.SetADSR(0.001, 0.1, 0.7, 0.1)

	// 0.001s at 48kHz = 48 samples of attack.
	var level float64
	for i := 0; i < 100; i++ {
		level = env.Tick(sampleRate)
	}
	if level < 0.7 {
		t.Errorf("level after attack = %v, want >= sustain", level)
	}
}

func TestEnvelopeInstantStages(t *testing.T) {
	var env Envelope
	env.Trigger()
	env.SetADSR(0, 0, 0.5, 0)

	// Instant attack snaps to 1.0; instant decay then snaps to sustain.
	if got := env.Tick(sampleRate); got != 1.0 {
		t.Errorf("first tick = %v, want 1.0 (instant attack)", got)
	}
	if got := env.Tick(sampleRate); got != 0.5 {
		t.Errorf("second tick = %v, want 0.5 (instant decay)", got)
	}

	env.Release()
	if got := env.Tick(sampleRate); got != 0 {
		t.Errorf("tick after instant release = %v, want 0", got)
	}
	if !env.IsIdle() {
		t.Error("envelope should be idle after instant release")
	}
}

func TestEnvelopeSustainHolds(t *testing.T) {
	var env Envelope
	env.Trigger()
	env.SetADSR(0, 0, 0.6, 0.1)

	env.Tick(sampleRate)
	env.Tick(sampleRate)

	for i := 0; i < 1000; i++ {
		if got := env.Tick(sampleRate); got != 0.6 {
			t.Fatalf("sustain level drifted to %v", got)
		}
	}
}

func TestEnvelopeReleaseRampsToZero(t *testing.T) {
	var env Envelope
	env.Trigger()
	env.SetADSR(0, 0, 1.0, 0.01)

	env.Tick(sampleRate)
	env.Tick(sampleRate)
	env.Release()

	if !env.IsReleasing() {
		t.Fatal("envelope should be releasing")
	}

	// 0.01s release = 480 samples.
	for i := 0; i < 1000; i++ {
		env.Tick(sampleRate)
	}
	if !env.IsIdle() {
		t.Error("envelope should be idle after release completes")
	}
	if got := env.Tick(sampleRate); got != 0 {
		t.Errorf("post-release level = %v, want 0", got)
	}
}

func TestEnvelopeReleaseDuringAttack(t *testing.T) {
	var env Envelope
	env.Trigger()
	env.SetADSR(1.0, 0.1, 0.7, 0.001)

	// Part-way through a 1s attack the level is small; release must ramp
	// down from the captured level, not from sustain.
	var level float64
	for i := 0; i < 4800; i++ {
		level = env.Tick(sampleRate)
	}
	if level <= 0 || level >= 1 {
		t.Fatalf("mid-attack level = %v", level)
	}

	env.Release()
	for i := 0; i < 200; i++ {
		env.Tick(sampleRate)
	}
	if !env.IsIdle() {
		t.Error("short release from mid-attack should reach idle")
	}
}

func TestEnvelopeReset(t *testing.T) {
	var env Envelope
	env.Trigger()
	env.SetADSR(0.01, 0.1, 0.7, 0.1)
	env.Tick(sampleRate)

	env.Reset()

	if !env.IsIdle() {
		t.Error("reset envelope should be idle")
	}
	if got := env.Tick(sampleRate); got != 0 {
		t.Errorf("reset level = %v, want 0", got)
	}
}
