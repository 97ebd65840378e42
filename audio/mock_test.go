package audio

import (
	"io"
	"math"
)

// mockStream is a test helper that generates frames for testing. It
// implements the Stream interface and can generate various waveforms.
type mockStream struct {
	sampleRate  int
	layout      ChannelLayout
	totalFrames int
	produced    int
	waveform    func(frame int, channel int) float64
}

// newMockStream creates a new mock stream.
// totalFrames is the total number of frames to generate.
// waveform generates sample values given frame index and channel.
func newMockStream(sampleRate int, layout ChannelLayout, totalFrames int, waveform func(frame int, channel int) float64) *mockStream {
	return &mockStream{
		sampleRate:  sampleRate,
		layout:      layout,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// newSilentStream creates a mock stream that generates silence.
func newSilentStream(sampleRate int, layout ChannelLayout, totalFrames int) *mockStream {
	return newMockStream(sampleRate, layout, totalFrames, func(frame int, channel int) float64 {
		return 0.0
	})
}

// newSineStream creates a mock stream that generates a sine wave.
func newSineStream(sampleRate int, layout ChannelLayout, totalFrames int, frequency float64) *mockStream {
	return newMockStream(sampleRate, layout, totalFrames, func(frame int, channel int) float64 {
		t := float64(frame) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// newConstantStream creates a mock stream with constant value.
func newConstantStream(sampleRate int, layout ChannelLayout, totalFrames int, value float64) *mockStream {
	return newMockStream(sampleRate, layout, totalFrames, func(frame int, channel int) float64 {
		return value
	})
}

// newRampStream creates a mock stream whose samples climb linearly,
// one step per frame. Useful for checking interpolation exactly.
func newRampStream(sampleRate int, layout ChannelLayout, totalFrames int, step float64) *mockStream {
	return newMockStream(sampleRate, layout, totalFrames, func(frame int, channel int) float64 {
		return float64(frame) * step
	})
}

func (m *mockStream) SampleRate() int       { return m.sampleRate }
func (m *mockStream) Layout() ChannelLayout { return m.layout }

func (m *mockStream) Next() (Frame, error) {
	if m.produced >= m.totalFrames {
		return Frame{}, io.EOF
	}

	f := Frame{layout: m.layout}
	for ch, n := 0, m.layout.Channels(); ch < n; ch++ {
		f.data[ch] = m.waveform(m.produced, ch)
	}
	m.produced++

	return f, nil
}

// drain pulls every frame of a stream, returning the frames read.
// Panics on errors other than io.EOF, so only feed it mock streams.
func drain(s Stream) []Frame {
	var frames []Frame
	for {
		f, err := s.Next()
		if err == io.EOF {
			return frames
		}
		if err != nil {
			panic(err)
		}
		frames = append(frames, f)
	}
}
