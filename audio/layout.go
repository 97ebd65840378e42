// SPDX-License-Identifier: EPL-2.0

package audio

// ChannelLayout names a speaker configuration. The channel count of a
// layout is fixed; frames and buffers carry their layout for their
// whole lifetime.
//
// Channel order follows the FLAC/SMPTE convention:
//
//	Mono:       M
//	Stereo:     L R
//	Surround40: FL FR SL SR
//	Surround51: FL FR C LFE SL SR
//	Surround71: FL FR C LFE BL BR SL SR
type ChannelLayout int

const (
	Mono ChannelLayout = iota
	Stereo
	Surround40
	Surround51
	Surround71
)

// MaxChannels is the widest supported layout arity.
const MaxChannels = 8

// Channels returns the number of channels in the layout.
func (l ChannelLayout) Channels() int {
	switch l {
	case Mono:
		return 1
	case Stereo:
		return 2
	case Surround40:
		return 4
	case Surround51:
		return 6
	case Surround71:
		return 8
	}

	return 0
}

func (l ChannelLayout) String() string {
	switch l {
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	case Surround40:
		return "surround 4.0"
	case Surround51:
		return "surround 5.1"
	case Surround71:
		return "surround 7.1"
	}

	return "unknown layout"
}

// LayoutFromChannels maps a channel count onto a layout, for decoders
// that only report arity.
func LayoutFromChannels(channels int) (ChannelLayout, bool) {
	switch channels {
	case 1:
		return Mono, true
	case 2:
		return Stereo, true
	case 4:
		return Surround40, true
	case 6:
		return Surround51, true
	case 8:
		return Surround71, true
	}

	return Mono, false
}

// 1/sqrt(2), the standard center/surround fold-down coefficient.
const coefHalfPower = 0.7071067811865476

type layoutPair struct {
	src, dst ChannelLayout
}

// conversionMatrix holds one row per destination channel; each row has
// one coefficient per source channel. Missing pairs are unsupported.
var conversionMatrix = map[layoutPair][][]float64{
	// Mono is duplicated into the first two channels, never spread
	// across surrounds.
	{Mono, Stereo}: {
		{1},
		{1},
	},
	{Mono, Surround40}: {
		{1},
		{1},
		{0},
		{0},
	},
	{Mono, Surround51}: {
		{1},
		{1},
		{0},
		{0},
		{0},
		{0},
	},
	{Mono, Surround71}: {
		{1},
		{1},
		{0},
		{0},
		{0},
		{0},
		{0},
		{0},
	},

	{Stereo, Mono}: {
		{0.5, 0.5},
	},
	{Stereo, Surround40}: {
		{1, 0},
		{0, 1},
		{0, 0},
		{0, 0},
	},
	{Stereo, Surround51}: {
		{1, 0},
		{0, 1},
		{0, 0},
		{0, 0},
		{0, 0},
		{0, 0},
	},
	{Stereo, Surround71}: {
		{1, 0},
		{0, 1},
		{0, 0},
		{0, 0},
		{0, 0},
		{0, 0},
		{0, 0},
		{0, 0},
	},

	{Surround40, Mono}: {
		{0.25, 0.25, 0.25, 0.25},
	},
	{Surround40, Stereo}: {
		{0.5, 0, 0.5, 0},
		{0, 0.5, 0, 0.5},
	},
	{Surround40, Surround51}: {
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	},

	// ITU-R BS.775 style fold-down; the LFE channel is dropped.
	{Surround51, Stereo}: {
		{1, 0, coefHalfPower, 0, coefHalfPower, 0},
		{0, 1, coefHalfPower, 0, 0, coefHalfPower},
	},
	{Surround51, Mono}: {
		{0.5, 0.5, coefHalfPower, 0, coefHalfPower * 0.5, coefHalfPower * 0.5},
	},
	{Surround51, Surround40}: {
		{1, 0, coefHalfPower, 0, 0, 0},
		{0, 1, coefHalfPower, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
	},
	{Surround51, Surround71}: {
		{1, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
	},

	{Surround71, Stereo}: {
		{1, 0, coefHalfPower, 0, coefHalfPower * 0.5, 0, coefHalfPower * 0.5, 0},
		{0, 1, coefHalfPower, 0, 0, coefHalfPower * 0.5, 0, coefHalfPower * 0.5},
	},
	{Surround71, Surround51}: {
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0.5, 0, 0.5, 0},
		{0, 0, 0, 0, 0, 0.5, 0, 0.5},
	},
}

// CanConvert reports whether a coefficient matrix is defined for the
// layout pair. Identity conversion is always supported.
func CanConvert(src, dst ChannelLayout) bool {
	if src == dst {
		return true
	}
	_, ok := conversionMatrix[layoutPair{src, dst}]

	return ok
}
