// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Input is one mixer source with its gain. Build inputs with NewInput
// or NewInputGain so the gain defaults sensibly.
type Input struct {
	Source Stream
	Gain   float64
}

// NewInput wraps a stream as a mixer input at unity gain.
func NewInput(src Stream) Input {
	return Input{Source: src, Gain: 1.0}
}

// NewInputGain wraps a stream as a mixer input with the given gain.
func NewInputGain(src Stream, gain float64) Input {
	return Input{Source: src, Gain: gain}
}

// MixerOption configures a Mixer at construction.
type MixerOption func(*Mixer)

// WithMixKernel selects the interpolation kernel for the resamplers
// the mixer wraps around inputs whose rate differs from the target.
func WithMixKernel(k Kernel) MixerOption {
	return func(m *Mixer) { m.kernel = k }
}

// WithMixTailPolicy selects the tail policy for the mixer's implicit
// resamplers.
func WithMixTailPolicy(p TailPolicy) MixerOption {
	return func(m *Mixer) { m.tail = p }
}

// Mixer sums N input streams into one stream at a shared rate and
// layout. Each input is independently resampled to the target rate
// and converted to the output layout before its gain is applied.
//
// Sums stay in the unclamped canonical domain; saturation happens
// only at final format encode, so quiet sources briefly summing above
// unity do not distort intermediate results.
//
// The input set is fixed at construction. An input that ends leaves
// the active set silently; the mixer ends only when every input has
// ended, so any infinite input makes the output infinite.
type Mixer struct {
	sampleRate int
	layout     ChannelLayout
	kernel     Kernel
	tail       TailPolicy

	inputs []mixerInput
	live   int
}

type mixerInput struct {
	src  Stream
	gain float64
	done bool
}

// NewMixer builds a mixer over the given inputs. Layout conversion
// support for every input is validated here, so a Next call never
// discovers an unsupported pair mid-stream.
func NewMixer(sampleRate int, layout ChannelLayout, inputs []Input, opts ...MixerOption) (*Mixer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	m := &Mixer{
		sampleRate: sampleRate,
		layout:     layout,
		live:       len(inputs),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.inputs = make([]mixerInput, 0, len(inputs))
	for _, in := range inputs {
		if !CanConvert(in.Source.Layout(), layout) {
			return nil, ErrUnsupportedConversion
		}

		src := in.Source
		if src.SampleRate() != sampleRate {
			rs, err := NewResampler(src, sampleRate,
				WithKernel(m.kernel), WithTailPolicy(m.tail))
			if err != nil {
				return nil, err
			}
			src = rs
		}

		m.inputs = append(m.inputs, mixerInput{src: src, gain: in.Gain})
	}

	return m, nil
}

func (m *Mixer) SampleRate() int       { return m.sampleRate }
func (m *Mixer) Layout() ChannelLayout { return m.layout }

func (m *Mixer) Next() (Frame, error) {
	if m.live == 0 {
		return Frame{}, io.EOF
	}

	sum := Silence(m.layout)
	for i := range m.inputs {
		in := &m.inputs[i]
		if in.done {
			continue
		}

		f, err := in.src.Next()
		if err == io.EOF {
			// Normal termination of one source, not a failure.
			in.done = true
			m.live--
			continue
		}
		if err != nil {
			return Frame{}, fmt.Errorf("%w", err)
		}

		f, err = f.Convert(m.layout)
		if err != nil {
			return Frame{}, err
		}

		sum, err = sum.Add(f.Scale(in.gain))
		if err != nil {
			return Frame{}, err
		}
	}

	if m.live == 0 {
		return Frame{}, io.EOF
	}

	return sum, nil
}
