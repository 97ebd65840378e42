// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core audio processing primitives.
//
// This package contains the building blocks everything else composes:
//   - SampleFormat for raw sample encodings and canonical conversion
//   - ChannelLayout and Frame for typed multi-channel samples
//   - Buffer for owned frame sequences at a fixed sample rate
//   - Stream, the pull-based frame source interface
//   - Resampler for sample rate conversion
//   - Mixer for combining multiple streams
//
// # Canonical domain
//
// All processing happens on float64 samples nominally in [-1, 1].
// Raw bytes enter and leave through SampleFormat at the buffer
// boundary; integer encodes round and saturate, float formats keep
// out-of-range values so intermediate sums never distort early.
//
// # Streams
//
// A Stream yields one frame per call at a fixed declared rate:
//
//	type Stream interface {
//	    SampleRate() int
//	    Layout() ChannelLayout
//	    Next() (Frame, error)
//	}
//
// io.EOF signals normal exhaustion of a finite stream. Resampler and
// Mixer are themselves Streams, so pipelines chain naturally:
//
//	rs, _ := audio.NewResampler(src, 48000)
//	mx, _ := audio.NewMixer(48000, audio.Stereo, []audio.Input{
//	    audio.NewInput(rs),
//	    audio.NewInputGain(other, 0.5),
//	})
//	out, _ := audio.Collect(mx)
//
// # Resampling
//
// The Resampler tracks a fractional phase between the last two
// consumed input frames and interpolates with a configurable kernel
// (Catmull-Rom cubic by default, linear optionally). Same-rate
// conversion is an exact pass-through. What happens when a source
// ends mid-kernel is a named choice: PadTail (silence) or
// TruncateTail.
//
// # Concurrency
//
// The package is synchronous and single-threaded: streams are pulled,
// nothing suspends except the caller, and each Resampler or Mixer
// exclusively owns its state. Run independent pipelines on separate
// goroutines if parallelism is needed; no locking exists or is
// required within the core.
package audio
