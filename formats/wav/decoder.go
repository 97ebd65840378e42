// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmix/audio"
)

// wavReader is an interface over gowav.Decoder to allow testing
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source adapts a go-audio wav decoder to the audio.Stream contract.
// Samples are pulled in chunks and served one frame at a time.
type source struct {
	dec        wavReader
	sampleRate int
	layout     audio.ChannelLayout
	scale      float64

	intBuf *goaudio.IntBuffer
	frames int // whole frames decoded into intBuf
	pos    int // next frame to serve
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
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if dec.WavAudioFormat != 1 {
		return nil, ErrOnlyPCMSupported
	}

	layout, ok := audio.LayoutFromChannels(int(dec.NumChans))
	if !ok {
		return nil, ErrUnsupportedWavLayout
	}

	switch dec.BitDepth {
	case 16, 24, 32:
	default:
		return nil, ErrUnsupportedBitDepth
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		layout:     layout,
		scale:      1.0 / float64(int64(1)<<(dec.BitDepth-1)),
		intBuf: &goaudio.IntBuffer{
			// Frame-aligned so chunk refills never split a frame.
			Data:   make([]int, 1024*layout.Channels()),
			Format: dec.Format(),
		},
	}, nil
}
