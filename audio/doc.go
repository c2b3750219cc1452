// SPDX-License-Identifier: EPL-2.0

// Package audio provides the player's low-level audio processing
// primitives.
//
// This package contains the building blocks that sit between the format
// decoders and the fixed 44.1kHz stereo output path:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - StereoMixer for channel layout adaptation
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders and processors implement this interface, allowing
// them to be chained together in processing pipelines.
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic
// interpolation:
//
//	resampler := audio.NewResampler(source, audio.OutputRate)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling with high
// quality.
//
// # Channel Adaptation
//
// The StereoMixer brings any channel layout to the two-channel output
// format — mono is duplicated, wider layouts are folded down:
//
//	stereo := audio.NewStereoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := stereo.ReadSamples(buf)
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The player front end uses this to resolve a decoder per track
// extension.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths and ensures no clipping during intermediate
// processing. ReadAllStereo16 converts the final result to the output
// path's 16-bit fixed-point format.
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is
// available. Other errors indicate problems with the source or
// processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
