// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audmix/audio"
)

// MockStream is a test helper producing computed frames. It
// implements audio.Stream.
type MockStream struct {
	sampleRate  int
	layout      audio.ChannelLayout
	totalFrames int
	produced    int
	waveform    func(frame, channel int) float64
}

// NewMockStream creates a stream yielding totalFrames frames from
// waveform.
func NewMockStream(sampleRate int, layout audio.ChannelLayout, totalFrames int, waveform func(frame, channel int) float64) *MockStream {
	return &MockStream{
		sampleRate:  sampleRate,
		layout:      layout,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentStream creates a stream of totalFrames zero frames.
func NewSilentStream(sampleRate int, layout audio.ChannelLayout, totalFrames int) *MockStream {
	return NewMockStream(sampleRate, layout, totalFrames, func(frame, channel int) float64 {
		return 0.0
	})
}

// NewSineStream creates a stream carrying a sine wave at frequency Hz
// on every channel.
func NewSineStream(sampleRate int, layout audio.ChannelLayout, totalFrames int, frequency float64) *MockStream {
	return NewMockStream(sampleRate, layout, totalFrames, func(frame, channel int) float64 {
		t := float64(frame) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantStream creates a stream where every sample has the same
// value.
func NewConstantStream(sampleRate int, layout audio.ChannelLayout, totalFrames int, value float64) *MockStream {
	return NewMockStream(sampleRate, layout, totalFrames, func(frame, channel int) float64 {
		return value
	})
}

func (m *MockStream) SampleRate() int             { return m.sampleRate }
func (m *MockStream) Layout() audio.ChannelLayout { return m.layout }

// Reset rewinds the stream to allow re-reading.
func (m *MockStream) Reset() {
	m.produced = 0
}

func (m *MockStream) Next() (audio.Frame, error) {
	if m.produced >= m.totalFrames {
		return audio.Frame{}, io.EOF
	}

	f := audio.Silence(m.layout)
	for ch, n := 0, m.layout.Channels(); ch < n; ch++ {
		f.SetSample(ch, m.waveform(m.produced, ch))
	}
	m.produced++

	return f, nil
}
