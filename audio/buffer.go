// SPDX-License-Identifier: EPL-2.0

package audio

import (
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/utils"
)

// Buffer is an owned, contiguous sequence of frames at a single
// sample rate. The rate and layout are fixed at creation; resampling
// always produces a new buffer or stream, never a rate change in
// place.
type Buffer struct {
	sampleRate int
	layout     ChannelLayout
	frames     []Frame
}

// NewBuffer creates an empty buffer for the given rate and layout.
func NewBuffer(sampleRate int, layout ChannelLayout) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	return &Buffer{
		sampleRate: sampleRate,
		layout:     layout,
	}, nil
}

// FromRaw decodes interleaved raw samples into a buffer. The data
// length must be an exact multiple of one frame
// (format.Size() × layout.Channels()); otherwise no buffer is
// produced.
func FromRaw(data []byte, format SampleFormat, layout ChannelLayout, sampleRate int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	channels := layout.Channels()
	frameSize := format.Size() * channels
	if len(data)%frameSize != 0 {
		return nil, ErrTruncatedData
	}

	frames := make([]Frame, len(data)/frameSize)
	for i := range frames {
		f := Frame{layout: layout}
		base := i * frameSize
		for ch := 0; ch < channels; ch++ {
			f.data[ch] = format.ToCanonical(data[base+ch*format.Size():])
		}
		frames[i] = f
	}

	return &Buffer{
		sampleRate: sampleRate,
		layout:     layout,
		frames:     frames,
	}, nil
}

// ToRaw encodes the buffer as interleaved raw samples in the given
// format. Out-of-range values saturate at integer encode, so this
// always succeeds.
func (b *Buffer) ToRaw(format SampleFormat) []byte {
	channels := b.layout.Channels()
	sampleSize := format.Size()
	out := make([]byte, len(b.frames)*channels*sampleSize)

	i := 0
	for _, f := range b.frames {
		for ch := 0; ch < channels; ch++ {
			format.FromCanonical(f.data[ch], out[i:])
			i += sampleSize
		}
	}

	return out
}

// SampleRate returns the buffer's sample rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Layout returns the buffer's channel layout.
func (b *Buffer) Layout() ChannelLayout { return b.layout }

// Len returns the number of frames in the buffer.
func (b *Buffer) Len() int { return len(b.frames) }

// At returns frame i.
func (b *Buffer) At(i int) Frame { return b.frames[i] }

// Set replaces frame i. The frame must match the buffer's layout.
func (b *Buffer) Set(i int, f Frame) error {
	if f.layout != b.layout {
		return ErrLayoutMismatch
	}
	b.frames[i] = f

	return nil
}

// Append adds a frame to the end of the buffer. The frame must match
// the buffer's layout.
func (b *Buffer) Append(f Frame) error {
	if f.layout != b.layout {
		return ErrLayoutMismatch
	}
	b.frames = append(b.frames, f)

	return nil
}

// Stream returns a seekable stream replaying the buffer in order.
func (b *Buffer) Stream() *BufferStream {
	return &BufferStream{buf: b}
}

// FromIntBuffer converts a go-audio integer PCM buffer into a Buffer,
// scaling by the buffer's source bit depth (16 when unset, the
// go-audio convention).
func FromIntBuffer(src *goaudio.IntBuffer) (*Buffer, error) {
	layout, ok := LayoutFromChannels(src.Format.NumChannels)
	if !ok {
		return nil, ErrUnsupportedConversion
	}

	bitDepth := src.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	channels := layout.Channels()
	if len(src.Data)%channels != 0 {
		return nil, ErrTruncatedData
	}

	b, err := NewBuffer(src.Format.SampleRate, layout)
	if err != nil {
		return nil, err
	}

	b.frames = make([]Frame, len(src.Data)/channels)
	for i := range b.frames {
		f := Frame{layout: layout}
		for ch := 0; ch < channels; ch++ {
			f.data[ch] = float64(src.Data[i*channels+ch]) * scale
		}
		b.frames[i] = f
	}

	return b, nil
}

// ToIntBuffer converts the buffer into a go-audio integer PCM buffer
// at the given format's bit depth. Integer formats saturate.
func (b *Buffer) ToIntBuffer(format SampleFormat) *goaudio.IntBuffer {
	channels := b.layout.Channels()
	data := make([]int, len(b.frames)*channels)

	for i, f := range b.frames {
		for ch := 0; ch < channels; ch++ {
			switch format {
			case Uint8:
				data[i*channels+ch] = int(utils.Float64ToUint8(f.data[ch]))
			case Int24:
				data[i*channels+ch] = int(utils.Float64ToInt24(f.data[ch]))
			default:
				data[i*channels+ch] = int(utils.Float64ToInt16(f.data[ch]))
			}
		}
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  b.sampleRate,
		},
		SourceBitDepth: format.BitDepth(),
		Data:           data,
	}
}
