// SPDX-License-Identifier: EPL-2.0

package pocketamp

import (
	"fmt"
	"io"

	"github.com/pocketamp/pocketamp/audio"
	"github.com/pocketamp/pocketamp/utils"
)

// DecodeToStereo16 is a high-level convenience function that brings a decoded
// audio source to the player output format: interleaved stereo 16-bit PCM at
// 44.1kHz, collected in full.
//
// This function creates a processing pipeline:
//  1. Resamples the source audio to audio.OutputRate using cubic interpolation
//  2. Adapts the channel layout to stereo (duplicate mono, fold wider layouts)
//  3. Reads all samples from the pipeline
//  4. Converts float32 samples to int16 PCM format
//
// Parameters:
//   - src: The audio source to process (implements Source interface)
//   - bufferSize: Size of the buffer for reading samples (e.g., 4096)
//     Larger buffers may be more efficient but use more memory
//
// Returns:
//   - []int16: Collected PCM samples as interleaved left/right pairs
//   - error: Any error encountered during processing
//
// Note: This is a convenience function for whole-track decoding. For streaming
// use or more control over the pipeline, use NewResampler() and
// NewStereoMixer() directly.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm16, err := pocketamp.DecodeToStereo16(src, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	// pcm16 now contains 44.1kHz stereo 16-bit PCM
func DecodeToStereo16(src audio.Source, bufferSize int) ([]int16, error) {
	// Create the processing pipeline: resample -> stereo
	resampler := audio.NewResampler(src, audio.OutputRate)
	stereo := audio.NewStereoMixer(resampler)

	// Pre-allocate based on estimated output size to reduce allocations
	// We'll start with a reasonable default and grow if needed
	estimatedSamples := audio.OutputRate * 2 * 2 // Assume ~2 seconds of stereo
	pcm16 := make([]int16, 0, estimatedSamples)
	buf := make([]float32, bufferSize)

	for {
		n, err := stereo.ReadSamples(buf)
		if n > 0 {
			// Ensure capacity before batch conversion
			if cap(pcm16)-len(pcm16) < n {
				// Grow by at least n samples, or double capacity
				newCap := len(pcm16) + max(n, cap(pcm16))
				newSlice := make([]int16, len(pcm16), newCap)
				copy(newSlice, pcm16)
				pcm16 = newSlice
			}

			// Batch convert float32 to int16
			startIdx := len(pcm16)
			pcm16 = pcm16[:startIdx+n]
			for i := 0; i < n; i++ {
				pcm16[startIdx+i] = utils.Float32ToInt16(buf[i])
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
