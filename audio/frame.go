// SPDX-License-Identifier: EPL-2.0

package audio

// Frame holds one time-instant's samples across all channels of a
// layout, in the canonical float64 domain. Frames are small value
// types; copy them freely.
type Frame struct {
	layout ChannelLayout
	data   [MaxChannels]float64
}

// NewFrame builds a frame for layout from one canonical sample per
// channel. The sample count must match the layout arity.
func NewFrame(layout ChannelLayout, samples ...float64) (Frame, error) {
	if len(samples) != layout.Channels() {
		return Frame{}, ErrArityMismatch
	}

	f := Frame{layout: layout}
	copy(f.data[:], samples)

	return f, nil
}

// Silence returns the zero frame for layout.
func Silence(layout ChannelLayout) Frame {
	return Frame{layout: layout}
}

// Layout returns the frame's channel layout.
func (f Frame) Layout() ChannelLayout { return f.layout }

// Channels returns the frame's channel count.
func (f Frame) Channels() int { return f.layout.Channels() }

// Sample returns the canonical value of channel ch.
func (f Frame) Sample(ch int) float64 { return f.data[ch] }

// SetSample replaces the value of channel ch.
func (f *Frame) SetSample(ch int, v float64) { f.data[ch] = v }

// Samples returns the frame's channels as a slice. The slice aliases
// the receiver copy, not the original frame.
func (f Frame) Samples() []float64 {
	return f.data[:f.layout.Channels()]
}

// Scale multiplies every channel by gain. No clamping happens here;
// saturation is deferred to format encoding.
func (f Frame) Scale(gain float64) Frame {
	for ch, n := 0, f.layout.Channels(); ch < n; ch++ {
		f.data[ch] *= gain
	}

	return f
}

// Add returns the elementwise sum of two frames of the same layout.
func (f Frame) Add(other Frame) (Frame, error) {
	if f.layout != other.layout {
		return Frame{}, ErrLayoutMismatch
	}

	for ch, n := 0, f.layout.Channels(); ch < n; ch++ {
		f.data[ch] += other.data[ch]
	}

	return f, nil
}

// Convert remaps the frame onto a different layout using the defined
// coefficient matrix for the pair (downmix or upmix). Identity
// conversion returns the frame unchanged.
func (f Frame) Convert(dst ChannelLayout) (Frame, error) {
	if f.layout == dst {
		return f, nil
	}

	matrix, ok := conversionMatrix[layoutPair{f.layout, dst}]
	if !ok {
		return Frame{}, ErrUnsupportedConversion
	}

	out := Frame{layout: dst}
	for ch, row := range matrix {
		var sum float64
		for src, coef := range row {
			sum += coef * f.data[src]
		}
		out.data[ch] = sum
	}

	return out, nil
}
