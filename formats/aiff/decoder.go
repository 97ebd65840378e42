// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/audio"
)

// aiffReader is an interface over aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source adapts a go-audio aiff decoder to the audio.Stream contract.
type source struct {
	dec        aiffReader
	sampleRate int
	layout     audio.ChannelLayout
	scale      float64

	intBuf *goaudio.IntBuffer
	frames int
	pos    int
	eof    bool
}

func (s *source) SampleRate() int             { return s.sampleRate }
func (s *source) Layout() audio.ChannelLayout { return s.layout }

func (s *source) Next() (audio.Frame, error) {
	channels := s.layout.Channels()

	if s.pos >= s.frames {
		if s.eof {
			return audio.Frame{}, io.EOF
		}

		n, err := s.dec.PCMBuffer(s.intBuf)
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			return audio.Frame{}, fmt.Errorf("%w", err)
		}
		if n == 0 {
			s.eof = true
			return audio.Frame{}, io.EOF
		}

		s.frames = n / channels
		s.pos = 0
		if s.frames == 0 {
			s.eof = true
			return audio.Frame{}, io.EOF
		}
	}

	f := audio.Silence(s.layout)
	base := s.pos * channels
	for ch := 0; ch < channels; ch++ {
		f.SetSample(ch, float64(s.intBuf.Data[base+ch])*s.scale)
	}
	s.pos++

	return f, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	layout, ok := audio.LayoutFromChannels(format.NumChannels)
	if !ok {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		layout:     layout,
		scale:      1.0 / 32768.0,
		intBuf: &goaudio.IntBuffer{
			// Frame-aligned so chunk refills never split a frame.
			Data:   make([]int, 1024*layout.Channels()),
			Format: format,
		},
	}, nil
}
