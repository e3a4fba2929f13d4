// SPDX-License-Identifier: MIT

// Package render turns a compiled score into a WAV file. Tracks render in
// parallel, each through its own synth, then mix into a master bus.
package render

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/motif-audio/motif/internal/engine"
	xlog "github.com/motif-audio/motif/internal/log"
	"github.com/motif-audio/motif/internal/metrics"
	"github.com/motif-audio/motif/internal/pulse"
	"github.com/motif-audio/motif/internal/score"
)

// Options controls the offline render. Zero values pick the defaults.
type Options struct {
	SampleRate  float64 // default 48000
	BlockSize   int     // frames per render block, default 512
	TailSeconds float64 // silence appended after the last note-off, default 1
}

const (
	defaultSampleRate  = 48000.0
	defaultBlockSize   = 512
	defaultTailSeconds = 1.0
)

func (o Options) withDefaults() Options {
	if o.SampleRate <= 0 {
		o.SampleRate = defaultSampleRate
	}
	if o.BlockSize <= 0 {
		o.BlockSize = defaultBlockSize
	}
	if o.TailSeconds <= 0 {
		o.TailSeconds = defaultTailSeconds
	}
	return o
}

// Result summarizes a completed render job.
type Result struct {
	JobID   string
	Path    string
	Frames  int
	Elapsed time.Duration
}

// Render renders a validated score to a 16-bit stereo WAV at outPath.
// The write is atomic; on any error the previous file at outPath survives.
func Render(ctx context.Context, s score.Score, outPath string, opts Options) (Result, error) {
	opts = opts.withDefaults()
	jobID := uuid.NewString()
	started := time.Now()

	logger := xlog.WithComponent("render").With().
		Str(xlog.FieldJobID, jobID).
		Str(xlog.FieldPath, outPath).
		Logger()

	tracks := score.Compile(s)
	clock := engine.NewClock(opts.SampleRate)

	endSample := clock.TickToSample(score.End(tracks), s.BPM)
	tailFrames := int(opts.TailSeconds * opts.SampleRate)
	totalFrames := int(endSample) + tailFrames

	logger.Info().
		Float64(xlog.FieldBPM, s.BPM).
		Float64(xlog.FieldSampleRate, opts.SampleRate).
		Int(xlog.FieldFrames, totalFrames).
		Int("tracks", len(tracks)).
		Msg("render started")

	if totalFrames == tailFrames {
		metrics.RenderFailed()
		return Result{}, fmt.Errorf("score has no notes to render")
	}

	// Each track renders independently into its own full-length buffer,
	// so the fan-out needs no locking until the mix.
	outputs := make([][2][]float32, len(tracks))
	for i := range outputs {
		outputs[i] = [2][]float32{
			make([]float32, totalFrames),
			make([]float32, totalFrames),
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, track := range tracks {
		g.Go(func() error {
			return renderTrack(ctx, logger, clock, s.BPM, track, outputs[i], opts)
		})
	}
	if err := g.Wait(); err != nil {
		metrics.RenderFailed()
		return Result{}, fmt.Errorf("render tracks: %w", err)
	}

	left := make([]float32, totalFrames)
	right := make([]float32, totalFrames)
	for _, out := range outputs {
		for f := 0; f < totalFrames; f++ {
			left[f] += out[0][f]
			right[f] += out[1][f]
		}
	}

	if err := writeWAV(outPath, left, right, int(opts.SampleRate)); err != nil {
		metrics.RenderFailed()
		return Result{}, err
	}

	elapsed := time.Since(started)
	metrics.RenderCompleted(totalFrames, elapsed)
	logger.Info().
		Int(xlog.FieldFrames, totalFrames).
		Dur("elapsed", elapsed).
		Msg("render complete")

	return Result{JobID: jobID, Path: outPath, Frames: totalFrames, Elapsed: elapsed}, nil
}

// renderTrack drives one synth through the track's schedule, block by
// block, filling the full-length planar output.
func renderTrack(ctx context.Context, logger zerolog.Logger, clock engine.Clock, bpm float64, track score.TrackEvents, out [2][]float32, opts Options) error {
	synth := pulse.NewSynth()
	sched := score.NewScheduler(clock, bpm, track.Events)
	block := engine.NewBuffer(2, opts.BlockSize)

	totalFrames := len(out[0])
	progress := rate.Sometimes{Interval: time.Second}

	for start := 0; start < totalFrames; start += opts.BlockSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		frames := min(opts.BlockSize, totalFrames-start)
		block.Prepare(frames)

		events := sched.CollectBlock(uint64(start), frames)
		engine.EvaluateNode(synth, nil, block, events, opts.SampleRate)

		copy(out[0][start:start+frames], block.Channel(0))
		copy(out[1][start:start+frames], block.Channel(1))

		progress.Do(func() {
			logger.Debug().
				Str(xlog.FieldTrack, track.Name).
				Int(xlog.FieldFrames, start+frames).
				Msg("render progress")
		})
	}
	return nil
}
