package vorbis

import "errors"

// ErrUnsupportedVorbisLayout indicates a channel count with no
// matching audio.ChannelLayout.
var ErrUnsupportedVorbisLayout = errors.New("unsupported vorbis channel layout")
