// SPDX-License-Identifier: EPL-2.0

// Package vorbis adapts Ogg Vorbis files to the audio.Stream contract
// using github.com/jfreymuth/oggvorbis.
//
// The decoder already produces float32 samples, which map directly
// onto the canonical domain:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	src, err := decoder.Decode(file)
package vorbis
