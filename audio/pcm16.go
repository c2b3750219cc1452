// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/pocketamp/pocketamp/utils"
)

// OutputRate is the fixed sample rate of the player output path in Hz.
const OutputRate = 44100

// ReadAllStereo16 resamples src to the player output rate, folds it to
// interleaved stereo, and collects every sample as 16-bit PCM.
//
// The pipeline is:
//  1. Resample the source to OutputRate using cubic interpolation
//  2. Adapt the channel layout to stereo (duplicate or fold)
//  3. Read the whole stream and convert float32 samples to int16
//
// bufferSize is the read granularity in samples (4096 is a good
// default). The returned slice holds interleaved left/right pairs.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm16, err := audio.ReadAllStereo16(src, 4096)
//	if err != nil {
//	    return err
//	}
//	// pcm16 is ready for the 44.1kHz stereo output path
func ReadAllStereo16(src Source, bufferSize int) ([]int16, error) {
	// Build the pipeline: resample -> stereo
	resampler := NewResampler(src, OutputRate)
	stereo := NewStereoMixer(resampler)

	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := stereo.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm16, nil
}
