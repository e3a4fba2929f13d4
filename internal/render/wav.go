// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/renameio/v2"

	xlog "github.com/motif-audio/motif/internal/log"
)

// writeWAV writes 16-bit stereo PCM atomically. renameio handles the temp
// file, fsync and rename, so a crash mid-write never leaves a truncated
// file at path.
func writeWAV(path string, left, right []float32, sampleRate int) error {
	logger := xlog.WithComponent("render")

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending WAV file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending WAV file")
		}
	}()

	enc := wav.NewEncoder(pending, sampleRate, 16, 2, 1)

	data := make([]int, 0, len(left)*2)
	for i := range left {
		data = append(data, pcm16(left[i]), pcm16(right[i]))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write WAV data: %w", err)
	}
	// Encoder.Close seeks back and fills in the chunk sizes; it must run
	// before the atomic rename.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize WAV header: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace WAV file: %w", err)
	}
	return nil
}

// pcm16 converts a float sample to a 16-bit PCM value, clamping overs.
func pcm16(sample float32) int {
	clamped := math.Max(-1, math.Min(1, float64(sample)))
	return int(math.Round(clamped * 32767))
}
