// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrArityMismatch reports a frame constructed with a sample count
	// different from its layout's channel count.
	ErrArityMismatch = errors.New("sample count does not match layout arity")

	// ErrLayoutMismatch reports an operation between frames of
	// differing layouts without an explicit conversion step.
	ErrLayoutMismatch = errors.New("frame layouts differ")

	// ErrUnsupportedConversion reports a layout pair with no defined
	// coefficient matrix.
	ErrUnsupportedConversion = errors.New("no conversion defined for layout pair")

	// ErrTruncatedData reports raw sample data that does not align to
	// whole frames.
	ErrTruncatedData = errors.New("raw data is not a whole number of frames")

	// ErrInvalidSampleRate reports a zero or negative sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
