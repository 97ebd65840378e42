// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/utils"
)

// Kernel selects the interpolation used between input frames.
type Kernel int

const (
	// KernelCubic is Catmull-Rom interpolation over a four-frame
	// window. Default.
	KernelCubic Kernel = iota
	// KernelLinear interpolates between the two surrounding frames.
	// Cheaper, more aliasing.
	KernelLinear
)

// TailPolicy decides what happens when the source ends mid-kernel.
type TailPolicy int

const (
	// PadTail synthesizes silence past the end of the source, so an
	// output instant is emitted for every input frame. Default.
	PadTail TailPolicy = iota
	// TruncateTail stops at the last output position whose both
	// interpolation neighbours are real input frames.
	TruncateTail
)

// ResamplerOption configures a Resampler at construction.
type ResamplerOption func(*Resampler)

// WithKernel selects the interpolation kernel.
func WithKernel(k Kernel) ResamplerOption {
	return func(r *Resampler) { r.kernel = k }
}

// WithTailPolicy selects the end-of-source behavior.
func WithTailPolicy(p TailPolicy) ResamplerOption {
	return func(r *Resampler) { r.tail = p }
}

// Resampler converts a stream from its source rate to a target rate
// by fractional-phase interpolation, preserving continuity across
// successive calls. It implements Stream.
//
// The carried state is a phase accumulator in [0, 1) marking where
// between ring[1] and ring[2] the next output falls, plus a ring of
// the four most recently consumed input frames:
//
//	ring[0] = t-1, ring[1] = t0, ring[2] = t+1, ring[3] = t+2
//
// The state belongs to exactly one Resampler; the only reset is
// building a new one. Input is pulled lazily, never more than the
// kernel support ahead of the current output position.
type Resampler struct {
	src     Stream
	srcRate int
	dstRate int
	// Input frames consumed per output frame produced.
	step   float64
	layout ChannelLayout
	kernel Kernel
	tail   TailPolicy

	ring [4]Frame
	// real marks ring slots holding actual input; once the source
	// ends the right side fills with synthetic silence.
	real [4]bool

	phase  float64
	primed bool
	eof    bool

	// Same-rate conversion bypasses interpolation entirely.
	passthrough bool
}

// NewResampler builds a resampler producing src's frames at dstRate.
// When dstRate equals the source rate the resampler is a strict
// pass-through.
func NewResampler(src Stream, dstRate int, opts ...ResamplerOption) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	r := &Resampler{
		src:         src,
		srcRate:     src.SampleRate(),
		dstRate:     dstRate,
		step:        float64(src.SampleRate()) / float64(dstRate),
		layout:      src.Layout(),
		passthrough: src.SampleRate() == dstRate,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int       { return r.dstRate }
func (r *Resampler) Layout() ChannelLayout { return r.layout }

// prime fills ring[1..3] with the first input frames. ring[0] stays
// synthetic so the cubic kernel duplicates the leading edge, and the
// first output lands exactly on the first input frame.
func (r *Resampler) prime() error {
	for i := 1; i < len(r.ring); i++ {
		f, err := r.src.Next()
		if err == io.EOF {
			r.eof = true
			break
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		r.ring[i] = f
		r.real[i] = true
	}
	r.primed = true

	return nil
}

// advance shifts the ring one input frame to the left and pulls the
// next source frame into ring[3].
func (r *Resampler) advance() error {
	r.ring[0], r.ring[1], r.ring[2] = r.ring[1], r.ring[2], r.ring[3]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]
	r.real[3] = false

	if r.eof {
		return nil
	}

	f, err := r.src.Next()
	if err == io.EOF {
		r.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	r.ring[3] = f
	r.real[3] = true

	return nil
}

func (r *Resampler) Next() (Frame, error) {
	if r.passthrough {
		return r.src.Next()
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return Frame{}, err
		}
	}

	// Consume input until the phase lands between ring[1] and
	// ring[2]. Each pass consumes one frame, so even extreme
	// downsampling ratios make forward progress.
	for r.phase >= 1.0 {
		r.phase -= 1.0
		if err := r.advance(); err != nil {
			return Frame{}, err
		}
	}

	switch r.tail {
	case TruncateTail:
		if !r.real[1] || !r.real[2] {
			return Frame{}, io.EOF
		}
	default:
		if !r.real[1] {
			return Frame{}, io.EOF
		}
	}

	out := Frame{layout: r.layout}
	for ch, n := 0, r.layout.Channels(); ch < n; ch++ {
		y1 := r.ring[1].data[ch]
		var y2 float64
		if r.real[2] {
			y2 = r.ring[2].data[ch]
		}

		if r.kernel == KernelLinear {
			out.data[ch] = utils.Lerp(y1, y2, r.phase)
			continue
		}

		// Duplicate edge frames when the window reaches past the
		// ends of the source.
		y0 := y1
		if r.real[0] {
			y0 = r.ring[0].data[ch]
		}
		y3 := y2
		if r.real[3] {
			y3 = r.ring[3].data[ch]
		}
		out.data[ch] = utils.CubicInterpolate(y0, y1, y2, y3, r.phase)
	}

	r.phase += r.step

	return out, nil
}
