// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audmix/utils"
)

// SampleFormat names a raw per-channel sample encoding. All multi-byte
// formats are little-endian; integer formats are two's-complement
// except Uint8, which is offset binary with 0x80 as silence.
//
// Conversion between formats always passes through the canonical
// float64 domain (nominally [-1, 1]); two integer formats are never
// bit-reinterpreted into each other.
type SampleFormat int

const (
	// Uint8 is unsigned 8-bit PCM.
	Uint8 SampleFormat = iota
	// Int16 is signed 16-bit PCM, little-endian.
	Int16
	// Int24 is signed 24-bit PCM, little-endian, 3 bytes per sample.
	Int24
	// Float32 is IEEE 754 single-precision PCM, little-endian.
	Float32
	// Float64 is IEEE 754 double-precision PCM, little-endian.
	Float64
)

// Size returns the number of bytes one sample occupies.
func (f SampleFormat) Size() int {
	switch f {
	case Uint8:
		return 1
	case Int16:
		return 2
	case Int24:
		return 3
	case Float32:
		return 4
	case Float64:
		return 8
	}

	return 0
}

// BitDepth returns the number of significant bits per sample.
func (f SampleFormat) BitDepth() int {
	switch f {
	case Uint8:
		return 8
	case Int16:
		return 16
	case Int24:
		return 24
	case Float32:
		return 32
	case Float64:
		return 64
	}

	return 0
}

func (f SampleFormat) String() string {
	switch f {
	case Uint8:
		return "u8"
	case Int16:
		return "s16le"
	case Int24:
		return "s24le"
	case Float32:
		return "f32le"
	case Float64:
		return "f64le"
	}

	return "unknown format"
}

// ToCanonical decodes one raw sample from raw (which must hold at
// least Size() bytes) into the canonical float64 domain. Integer
// formats scale by their negative full-scale magnitude; float formats
// pass through unchanged, so out-of-range values are preserved.
func (f SampleFormat) ToCanonical(raw []byte) float64 {
	switch f {
	case Uint8:
		return (float64(raw[0]) - 128.0) / 128.0
	case Int16:
		v := int16(binary.LittleEndian.Uint16(raw))
		return float64(v) / 32768.0
	case Int24:
		u := uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16
		// Sign-extend bit 23.
		v := int32(u<<8) >> 8
		return float64(v) / 8388608.0
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(raw)))
	case Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(raw))
	}

	return 0
}

// FromCanonical encodes a canonical sample into dst (which must hold
// at least Size() bytes). Integer formats round to nearest and
// saturate; they never wrap. Float formats keep out-of-range values.
func (f SampleFormat) FromCanonical(x float64, dst []byte) {
	switch f {
	case Uint8:
		dst[0] = utils.Float64ToUint8(x)
	case Int16:
		binary.LittleEndian.PutUint16(dst, uint16(utils.Float64ToInt16(x)))
	case Int24:
		v := uint32(utils.Float64ToInt24(x))
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	case Float32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(x)))
	case Float64:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(x))
	}
}
