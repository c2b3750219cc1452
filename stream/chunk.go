// SPDX-License-Identifier: EPL-2.0

package stream

import "encoding/binary"

// Stream format constants. The producer is assumed to deliver raw
// 16-bit little-endian stereo PCM at 44.1kHz; everything here is sized
// from that.
const (
	SampleRate     = 44100
	Channels       = 2
	BytesPerSample = 2

	// FrameSize is one left+right sample pair. Chunk payloads are
	// always a whole number of frames.
	FrameSize = Channels * BytesPerSample

	// ByteRate is the PCM byte rate: 176400 bytes per second.
	ByteRate = SampleRate * FrameSize

	// MaxChunkSize bounds the payload of a single extracted chunk.
	MaxChunkSize = 64 * 1024

	// HeaderSize is the length of the canonical WAV header prefixed
	// to every chunk returned by ReadChunk. chunk[HeaderSize:] is the
	// raw PCM payload.
	HeaderSize = 44
)

// putWAVHeader fills dst[:44] with a canonical WAV header describing a
// payload of n bytes in the fixed stream format. Layout matches the
// standard RIFF/WAVE PCM header: RIFF size, "WAVE", fmt chunk (PCM,
// channels, rates, block align, bit depth), then the data chunk header.
func putWAVHeader(dst []byte, n int) {
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], uint32(36+n))
	copy(dst[8:12], "WAVE")

	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(dst[20:22], 1)  // PCM format tag
	binary.LittleEndian.PutUint16(dst[22:24], Channels)
	binary.LittleEndian.PutUint32(dst[24:28], SampleRate)
	binary.LittleEndian.PutUint32(dst[28:32], ByteRate)
	binary.LittleEndian.PutUint16(dst[32:34], FrameSize)
	binary.LittleEndian.PutUint16(dst[34:36], BytesPerSample*8)

	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], uint32(n))
}
