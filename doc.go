// SPDX-License-Identifier: EPL-2.0

// Package audmix provides typed audio frames, sample-rate conversion
// and multi-stream mixing for Go applications.
//
// The package moves audio between differing sample formats, channel
// layouts and sample rates without intermediate heap churn: raw bytes
// decode into canonical float64 frames at the buffer boundary, all
// processing happens in the canonical domain, and saturation back to
// integer formats only happens at the final encode.
//
// # Quick Start
//
// Decode a file, resample it, and collect 16-bit PCM:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	pcm16, rate, _ := audmix.ResampleToPCM16(src, 8000)
//
//	// pcm16 is mono 16-bit PCM at 8kHz
//
// # Mixing
//
// Combine any number of streams, each at its own rate and layout,
// into a single buffer:
//
//	out, err := audmix.Mix(48000, audio.Stereo,
//	    audio.NewInput(music),
//	    audio.NewInputGain(voice, 0.8),
//	)
//
// Each input is resampled to the target rate and converted to the
// output layout independently, so one stream ending early never
// corrupts another's timing; it simply stops contributing.
//
// # Core Types
//
// The audio subpackage holds the processing primitives: SampleFormat,
// ChannelLayout, Frame, Buffer, Stream, Resampler and Mixer. The
// formats subpackages adapt WAV, MP3, Ogg Vorbis and AIFF decoders to
// the Stream contract:
//
//	// WAV
//	src, _ := wav.Decoder{}.Decode(reader)
//
//	// MP3
//	src, _ := mp3.Decoder{}.Decode(reader)
//
//	// Vorbis
//	src, _ := vorbis.Decoder{}.Decode(reader)
//
//	// AIFF
//	src, _ := aiff.Decoder{}.Decode(reader)
//
// # Raw Sample I/O
//
// Buffers convert to and from interleaved raw bytes for any supported
// SampleFormat, and to go-audio IntBuffers for interoperability with
// the go-audio ecosystem:
//
//	buf, err := audio.FromRaw(data, audio.Int16, audio.Stereo, 44100)
//	raw := buf.ToRaw(audio.Float32)
//
// See the audio subpackage for the full processing model.
package audmix
