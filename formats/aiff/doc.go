// SPDX-License-Identifier: EPL-2.0

// Package aiff adapts AIFF files to the audio.Stream contract using
// github.com/go-audio/aiff.
//
// AIFF is big-endian where WAV is little-endian; go-audio handles the
// byte order, this package only scales the decoded integers onto
// canonical frames. Only 16-bit PCM files are accepted:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	src, err := decoder.Decode(file)
//	if errors.Is(err, aiff.ErrOnlyPCM16bitSupported) {
//	    // other bit depths are not handled
//	}
package aiff
