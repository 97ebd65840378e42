package utils

import "math"

// Float64ToInt16 converts a canonical sample to 16-bit PCM, rounding
// to nearest and saturating instead of wrapping.
func Float64ToInt16(x float64) int16 {
	v := math.Round(x * 32768.0)
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}

	return int16(v)
}

// Float64ToInt24 converts a canonical sample to 24-bit PCM stored in
// an int32, rounding to nearest and saturating.
func Float64ToInt24(x float64) int32 {
	v := math.Round(x * 8388608.0)
	if v > 8388607 {
		return 8388607
	}
	if v < -8388608 {
		return -8388608
	}

	return int32(v)
}

// Float64ToUint8 converts a canonical sample to unsigned 8-bit PCM
// (offset binary, 0x80 is silence), rounding to nearest and saturating.
func Float64ToUint8(x float64) uint8 {
	v := math.Round(x*128.0) + 128
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}

	return uint8(v)
}

// Float32ToInt16 converts a float32 sample in [-1, 1] to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	return Float64ToInt16(float64(x))
}
