// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmix/audio"
)

// oggReader is an interface over oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	layout     audio.ChannelLayout

	buf    []float32
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

		// oggvorbis reads interleaved values, always a whole
		// number of frames.
		n, err := s.dec.Read(s.buf)
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			return audio.Frame{}, fmt.Errorf("%w", err)
		}
		if n < channels {
			s.eof = true
			return audio.Frame{}, io.EOF
		}

		s.frames = n / channels
		s.pos = 0
	}

	f := audio.Silence(s.layout)
	base := s.pos * channels
	for ch := 0; ch < channels; ch++ {
		f.SetSample(ch, float64(s.buf[base+ch]))
	}
	s.pos++

	return f, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	layout, ok := audio.LayoutFromChannels(dec.Channels())
	if !ok {
		return nil, ErrUnsupportedVorbisLayout
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		layout:     layout,
		buf:        make([]float32, 4096*dec.Channels()),
	}, nil
}
