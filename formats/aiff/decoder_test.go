// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	format       *goaudio.Format
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return m.format
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := len(buf.Data)
	if n > len(m.samples)-m.offset {
		n = len(m.samples) - m.offset
	}

	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func newMockSource(reader *mockAiffReader) (*source, error) {
	layout, ok := audio.LayoutFromChannels(reader.format.NumChannels)
	if !ok {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        reader,
		sampleRate: reader.format.SampleRate,
		layout:     layout,
		scale:      1.0 / 32768.0,
		intBuf: &goaudio.IntBuffer{
			Data:   make([]int, 4096),
			Format: reader.format,
		},
	}, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	// Invalid AIFF data
	invalidData := []byte("This is not AIFF data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src, err := newMockSource(&mockAiffReader{
		format: &goaudio.Format{
			NumChannels: 2,
			SampleRate:  22050,
		},
		samples: make([]int, 100),
	})
	if err != nil {
		t.Fatalf("newMockSource() error = %v", err)
	}

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Layout() != audio.Stereo {
		t.Errorf("Layout() = %v, want Stereo", src.Layout())
	}
}

func TestSource_ReadFrames(t *testing.T) {
	t.Parallel()

	src, err := newMockSource(&mockAiffReader{
		format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  8000,
		},
		samples: []int{0, 16384, -16384, -32768},
	})
	if err != nil {
		t.Fatalf("newMockSource() error = %v", err)
	}

	want := []float64{0, 0.5, -0.5, -1.0}
	for i, w := range want {
		f, err := src.Next()
		if err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
		if math.Abs(f.Sample(0)-w) > 1e-9 {
			t.Errorf("frame %d = %v, want %v", i, f.Sample(0), w)
		}
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("Next() past end error = %v, want io.EOF", err)
	}
}

func TestSource_EmptyStream(t *testing.T) {
	t.Parallel()

	src, err := newMockSource(&mockAiffReader{
		format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  8000,
		},
	})
	if err != nil {
		t.Fatalf("newMockSource() error = %v", err)
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("Next() on empty stream error = %v, want io.EOF", err)
	}
}

func TestSource_ReadErrorPropagates(t *testing.T) {
	t.Parallel()

	src, err := newMockSource(&mockAiffReader{
		format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  8000,
		},
		samples:      make([]int, 100),
		returnErrors: true,
	})
	if err != nil {
		t.Fatalf("newMockSource() error = %v", err)
	}

	if _, err := src.Next(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Next() error = %v, want wrapped ErrUnexpectedEOF", err)
	}
}
