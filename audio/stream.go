// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Stream is a pull-based source of frames at a fixed declared rate.
//
// Next returns io.EOF once a finite stream is exhausted; exhaustion
// is a normal end-of-data signal, not a failure. Infinite streams
// never return io.EOF. Streams are single-pass unless the concrete
// type says otherwise (see BufferStream).
type Stream interface {
	// SampleRate of the stream in Hz; never changes for the
	// stream's lifetime.
	SampleRate() int
	// Layout of every frame the stream yields.
	Layout() ChannelLayout
	// Next pulls the next frame, or io.EOF at exhaustion.
	Next() (Frame, error)
}

// BufferStream replays a buffer's frames in order. Unlike composed
// streams it is restartable via Reset.
type BufferStream struct {
	buf *Buffer
	pos int
}

// NewBufferStream creates a stream over buf.
func NewBufferStream(buf *Buffer) *BufferStream {
	return &BufferStream{buf: buf}
}

func (s *BufferStream) SampleRate() int       { return s.buf.sampleRate }
func (s *BufferStream) Layout() ChannelLayout { return s.buf.layout }

func (s *BufferStream) Next() (Frame, error) {
	if s.pos >= len(s.buf.frames) {
		return Frame{}, io.EOF
	}

	f := s.buf.frames[s.pos]
	s.pos++

	return f, nil
}

// Reset rewinds the stream to the first frame.
func (s *BufferStream) Reset() { s.pos = 0 }

// GenFunc computes the canonical sample for frame index and channel.
type GenFunc func(frame, channel int) float64

// Generator is a computed stream source. A negative frame count makes
// the stream infinite.
type Generator struct {
	sampleRate int
	layout     ChannelLayout
	total      int
	produced   int
	fn         GenFunc
}

// NewGenerator creates a computed stream yielding total frames from
// fn, or an endless stream when total is negative.
func NewGenerator(sampleRate int, layout ChannelLayout, total int, fn GenFunc) (*Generator, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &Generator{
		sampleRate: sampleRate,
		layout:     layout,
		total:      total,
		fn:         fn,
	}, nil
}

func (g *Generator) SampleRate() int       { return g.sampleRate }
func (g *Generator) Layout() ChannelLayout { return g.layout }

func (g *Generator) Next() (Frame, error) {
	if g.total >= 0 && g.produced >= g.total {
		return Frame{}, io.EOF
	}

	f := Frame{layout: g.layout}
	for ch, n := 0, g.layout.Channels(); ch < n; ch++ {
		f.data[ch] = g.fn(g.produced, ch)
	}
	g.produced++

	return f, nil
}

// ReadFrames pulls up to len(dst) frames from s. It returns the
// number of frames written and io.EOF once the stream ends; a short
// read with a nil error never happens.
func ReadFrames(s Stream, dst []Frame) (int, error) {
	for i := range dst {
		f, err := s.Next()
		if err != nil {
			return i, err
		}
		dst[i] = f
	}

	return len(dst), nil
}

// Collect drains a finite stream into a new buffer at the stream's
// rate and layout. Draining an infinite stream never returns.
func Collect(s Stream) (*Buffer, error) {
	buf, err := NewBuffer(s.SampleRate(), s.Layout())
	if err != nil {
		return nil, err
	}

	for {
		f, err := s.Next()
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if err := buf.Append(f); err != nil {
			return nil, err
		}
	}
}
