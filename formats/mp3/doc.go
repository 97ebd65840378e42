// SPDX-License-Identifier: EPL-2.0

// Package mp3 adapts MP3 files to the audio.Stream contract using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits 16-bit little-endian stereo PCM, so the stream
// layout is always audio.Stereo at the file's sample rate:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	src, err := decoder.Decode(file)
package mp3
