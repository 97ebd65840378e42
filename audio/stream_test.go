package audio

import (
	"errors"
	"io"
	"testing"
)

func TestBufferStream(t *testing.T) {
	t.Parallel()

	b, _ := NewBuffer(8000, Mono)
	for i := 0; i < 3; i++ {
		f, _ := NewFrame(Mono, float64(i)*0.1)
		if err := b.Append(f); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	s := b.Stream()
	if s.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", s.SampleRate())
	}
	if s.Layout() != Mono {
		t.Errorf("Layout() = %v, want Mono", s.Layout())
	}

	for i := 0; i < 3; i++ {
		f, err := s.Next()
		if err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
		if want := float64(i) * 0.1; f.Sample(0) != want {
			t.Errorf("frame %d = %v, want %v", i, f.Sample(0), want)
		}
	}

	if _, err := s.Next(); err != io.EOF {
		t.Errorf("Next() past end error = %v, want io.EOF", err)
	}
	// EOF is sticky.
	if _, err := s.Next(); err != io.EOF {
		t.Errorf("repeated Next() error = %v, want io.EOF", err)
	}
}

func TestBufferStream_Reset(t *testing.T) {
	t.Parallel()

	b, _ := NewBuffer(8000, Mono)
	f, _ := NewFrame(Mono, 0.5)
	if err := b.Append(f); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	s := b.Stream()
	if _, err := s.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("Next() error = %v, want io.EOF", err)
	}

	s.Reset()

	g, err := s.Next()
	if err != nil {
		t.Fatalf("Next() after Reset error = %v", err)
	}
	if g.Sample(0) != 0.5 {
		t.Errorf("frame after Reset = %v, want 0.5", g.Sample(0))
	}
}

func TestGenerator_Finite(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(8000, Stereo, 5, func(frame, channel int) float64 {
		return float64(frame) + float64(channel)*0.5
	})
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	frames := drain(g)
	if len(frames) != 5 {
		t.Fatalf("generated %d frames, want 5", len(frames))
	}
	if frames[3].Sample(0) != 3.0 || frames[3].Sample(1) != 3.5 {
		t.Errorf("frame 3 = [%v %v], want [3 3.5]", frames[3].Sample(0), frames[3].Sample(1))
	}
}

func TestGenerator_Infinite(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(8000, Mono, -1, func(frame, channel int) float64 {
		return 0.1
	})
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	// An infinite generator keeps producing well past any plausible
	// buffer boundary.
	for i := 0; i < 100000; i++ {
		if _, err := g.Next(); err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
	}
}

func TestGenerator_InvalidRate(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(0, Mono, 10, func(frame, channel int) float64 { return 0 })
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("NewGenerator(rate=0) error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestReadFrames(t *testing.T) {
	t.Parallel()

	src := newConstantStream(8000, Mono, 10, 0.25)

	dst := make([]Frame, 4)
	n, err := ReadFrames(src, dst)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadFrames() n = %d, want 4", n)
	}
	for i := 0; i < n; i++ {
		if dst[i].Sample(0) != 0.25 {
			t.Errorf("dst[%d] = %v, want 0.25", i, dst[i].Sample(0))
		}
	}
}

func TestReadFrames_ShortAtEOF(t *testing.T) {
	t.Parallel()

	src := newConstantStream(8000, Mono, 3, 0.25)

	dst := make([]Frame, 10)
	n, err := ReadFrames(src, dst)
	if err != io.EOF {
		t.Fatalf("ReadFrames() error = %v, want io.EOF", err)
	}
	if n != 3 {
		t.Errorf("ReadFrames() n = %d, want 3", n)
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	src := newSineStream(44100, Stereo, 1000, 440.0)

	buf, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if buf.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", buf.SampleRate())
	}
	if buf.Layout() != Stereo {
		t.Errorf("Layout() = %v, want Stereo", buf.Layout())
	}
	if buf.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", buf.Len())
	}
}

func TestCollect_Empty(t *testing.T) {
	t.Parallel()

	src := newSilentStream(8000, Mono, 0)

	buf, err := Collect(src)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Len() = %d, want 0", buf.Len())
	}
}
