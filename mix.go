// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// ResampleToPCM16 is a high-level convenience function that resamples
// a stream to a target sample rate, downmixes it to mono, and
// collects the result as 16-bit PCM.
//
// The pipeline it builds:
//  1. Resamples the source to targetRate (cubic interpolation)
//  2. Converts every frame to mono through the defined downmix matrix
//  3. Encodes the canonical samples as saturated int16 values
//
// Returns the collected samples, the output sample rate (always
// targetRate), and any error other than normal stream exhaustion.
//
// For more control over the pipeline, use audio.NewResampler and
// Frame.Convert directly.
func ResampleToPCM16(src audio.Stream, targetRate int) ([]int16, int, error) {
	res, err := audio.NewResampler(src, targetRate)
	if err != nil {
		return nil, targetRate, err
	}

	// Estimate one second of output to keep early appends cheap.
	pcm16 := make([]int16, 0, targetRate)

	for {
		f, err := res.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}

		mono, err := f.Convert(audio.Mono)
		if err != nil {
			return nil, targetRate, err
		}

		pcm16 = append(pcm16, utils.Float64ToInt16(mono.Sample(0)))
	}

	return pcm16, targetRate, nil
}

// Mix combines finite input streams into one buffer at the given rate
// and layout. Inputs are resampled and layout-converted as needed;
// the buffer ends when every input has ended. Passing an infinite
// input makes Mix run forever.
func Mix(sampleRate int, layout audio.ChannelLayout, inputs ...audio.Input) (*audio.Buffer, error) {
	mx, err := audio.NewMixer(sampleRate, layout, inputs)
	if err != nil {
		return nil, err
	}

	return audio.Collect(mx)
}
