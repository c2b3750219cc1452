// SPDX-License-Identifier: EPL-2.0

// Package pocketamp is the audio core of a portable media player.
//
// The core covers the path from encoded audio to the player's fixed output
// format, 16-bit little-endian stereo PCM at 44.1kHz:
//   - decoding local files via the formats subpackages
//   - resampling and channel adaptation via the audio subpackage
//   - tone control via the eq subpackage (5-band parametric equalizer)
//   - network playback via the stream subpackage (named-pipe fed ring buffer)
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to bring a track to the output format is
// DecodeToStereo16:
//
//	// Decode an audio file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	// Bring it to 44.1kHz stereo, 16-bit PCM
//	samples, _ := pocketamp.DecodeToStereo16(src, 4096)
//
//	// samples is now interleaved []int16 at 44.1kHz
//
// # Audio Processing Pipeline
//
// For more control, you can build custom audio processing pipelines using the
// audio subpackage:
//
//	// Create a resampler
//	resampler := audio.NewResampler(source, audio.OutputRate)
//
//	// Adapt to stereo
//	stereo := audio.NewStereoMixer(resampler)
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := stereo.ReadSamples(buf)
//
// # Equalization
//
// The eq subpackage processes the output path in place. Blocks of 16-bit
// stereo PCM pass through five biquad filters with user-set gains:
//
//	equalizer := eq.New()
//	equalizer.SetGain(0, 6) // +6dB on the 60Hz shelf
//	equalizer.Attach(host)  // host calls ProcessBlock per output block
//
// # Network Streams
//
// The stream subpackage buffers audio bytes arriving on a named pipe and
// hands them out as decodable WAV chunks:
//
//	r := stream.NewReader(stream.Config{PipePath: "/tmp/audio.pipe"})
//	r.Start()
//	for !r.Ready() { ... }
//	chunk, _ := r.ReadChunk()
//
// # Format Decoders
//
// Each format has its own decoder:
//
//	// WAV
//	wavDecoder := wav.Decoder{}
//	src, _ := wavDecoder.Decode(reader)
//
//	// MP3
//	mp3Decoder := mp3.Decoder{}
//	src, _ := mp3Decoder.Decode(reader)
//
//	// Vorbis
//	vorbisDecoder := vorbis.Decoder{}
//	src, _ := vorbisDecoder.Decode(reader)
//
//	// AIFF
//	aiffDecoder := aiff.Decoder{}
//	src, _ := aiffDecoder.Decode(reader)
//
// All decoders return an audio.Source interface which can be used with
// the audio processing functions.
//
// # Writing WAV Files
//
// The package can write PCM WAV files:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	wav.WritePCM16(file, 8000, 1, samples)
//
// # Performance
//
// The package is optimized for performance with minimal allocations:
//   - Resampling uses cubic interpolation for quality
//   - Buffer reuse minimizes GC pressure
//   - Batch conversions reduce per-sample overhead
//   - The equalizer's audio path takes no locks and allocates nothing
//
// See the individual subpackages for more detailed documentation.
package pocketamp
