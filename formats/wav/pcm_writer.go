// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
)

// Encode writes buf as a canonical 44-byte-header WAV file with the
// given sample format. Integer formats saturate out-of-range samples;
// Float32/Float64 produce IEEE-float WAV (format tag 3).
func Encode(w io.Writer, buf *audio.Buffer, format audio.SampleFormat) error {
	numChannels := uint16(buf.Layout().Channels())
	bitsPerSample := uint16(format.BitDepth())
	sampleRate := uint32(buf.SampleRate())
	byteRate := sampleRate * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)

	audioFormat := uint16(1) // PCM
	if format == audio.Float32 || format == audio.Float64 {
		audioFormat = 3 // IEEE float
	}

	data := buf.ToRaw(format)
	dataSize := uint32(len(data))
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], audioFormat)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(data) == 0 {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
