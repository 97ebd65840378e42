// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audmix/audio"
)

// mp3Reader is an interface over gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// frameBytes is one stereo 16-bit frame: go-mp3 always outputs
// 16-bit little-endian stereo PCM.
const frameBytes = 4

type source struct {
	dec        mp3Reader
	sampleRate int

	buf []byte
	n   int // valid bytes in buf
	pos int // next unread byte
	eof bool
}

func (s *source) SampleRate() int             { return s.sampleRate }
func (s *source) Layout() audio.ChannelLayout { return audio.Stereo }

func (s *source) Next() (audio.Frame, error) {
	for s.n-s.pos < frameBytes {
		if s.eof {
			return audio.Frame{}, io.EOF
		}

		// Keep any partial frame; go-mp3 reads are not
		// guaranteed to align to frame boundaries.
		rem := s.n - s.pos
		copy(s.buf, s.buf[s.pos:s.n])
		s.pos = 0
		s.n = rem

		n, err := s.dec.Read(s.buf[s.n:])
		s.n += n
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			return audio.Frame{}, fmt.Errorf("%w", err)
		}
		if n == 0 && s.n-s.pos < frameBytes {
			s.eof = true
			return audio.Frame{}, io.EOF
		}
	}

	f := audio.Silence(audio.Stereo)
	f.SetSample(0, audio.Int16.ToCanonical(s.buf[s.pos:]))
	f.SetSample(1, audio.Int16.ToCanonical(s.buf[s.pos+2:]))
	s.pos += frameBytes

	return f, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
