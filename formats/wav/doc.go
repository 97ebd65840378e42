// SPDX-License-Identifier: EPL-2.0

// Package wav adapts WAV files to the audio.Stream contract.
//
// Decoding is done by github.com/go-audio/wav; this package only maps
// the decoded integer PCM onto canonical frames. PCM at 16, 24 and
// 32 bits is supported, with any layout audio.LayoutFromChannels
// knows.
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, err := decoder.Decode(file)
//
// Encode writes an audio.Buffer back out as WAV at any
// audio.SampleFormat, using a canonical 44-byte header:
//
//	out, _ := os.Create("out.wav")
//	wav.Encode(out, buf, audio.Int16)
//
// Byte order follows the WAV convention: little-endian throughout.
package wav
