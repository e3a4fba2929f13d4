// SPDX-License-Identifier: MIT

// Package engine is the audio processing core: buffers, nodes,
// sample-accurate event slicing and the musical clock.
package engine

// Buffer is a fixed-capacity audio buffer. Allocated once, reused every
// render block.
//
// PLANAR layout: each channel is a contiguous slice.
//
//	data[0] = [L0, L1, L2, ...]
//	data[1] = [R0, R1, R2, ...]
type Buffer struct {
	data   [][]float32
	frames int
}

// NewBuffer allocates a buffer with the given channel count and frame capacity.
func NewBuffer(channels, maxFrames int) *Buffer {
	data := make([][]float32, channels)
	for ch := range data {
		data[ch] = make([]float32, maxFrames)
	}
	return &Buffer{data: data}
}

// Prepare readies the buffer for a new render block, zeroing the first
// frames samples of every channel.
func (b *Buffer) Prepare(frames int) {
	b.frames = frames
	for _, channel := range b.data {
		clear(channel[:frames])
	}
}

// Frames returns the active frame count of the current block.
func (b *Buffer) Frames() int {
	return b.frames
}

// Channels returns the channel count.
func (b *Buffer) Channels() int {
	return len(b.data)
}

// Channel returns a channel as a contiguous read-only slice.
func (b *Buffer) Channel(ch int) []float32 {
	return b.data[ch][:b.frames]
}

// ChannelRange returns a mutable sub-range of frames for one channel.
func (b *Buffer) ChannelRange(ch, from, to int) []float32 {
	return b.data[ch][from:to]
}

// MixFrom sums other's samples into b. Used for combining track outputs
// into the master bus. Both buffers must have matching shape.
func (b *Buffer) MixFrom(other *Buffer) {
	for ch := 0; ch < b.Channels(); ch++ {
		dst := b.data[ch][:b.frames]
		src := other.data[ch][:b.frames]
		for i := range dst {
			dst[i] += src[i]
		}
	}
}

// ApplyStereoGain scales channels 0 and 1 independently.
func (b *Buffer) ApplyStereoGain(gainL, gainR float32) {
	left := b.data[0][:b.frames]
	for i := range left {
		left[i] *= gainL
	}

	right := b.data[1][:b.frames]
	for i := range right {
		right[i] *= gainR
	}
}

// WriteInterleaved converts planar samples to interleaved output.
func (b *Buffer) WriteInterleaved(out []float32) {
	channels := b.Channels()
	for frame := 0; frame < b.frames; frame++ {
		for ch := 0; ch < channels; ch++ {
			out[frame*channels+ch] = b.data[ch][frame]
		}
	}
}
