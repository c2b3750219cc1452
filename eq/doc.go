// SPDX-License-Identifier: EPL-2.0

// Package eq implements a 5-band parametric equalizer for the player's
// output path.
//
// The equalizer filters interleaved 16-bit little-endian stereo PCM in
// place, one output buffer at a time. Five second-order IIR (biquad)
// filters are cascaded per sample: a low shelf at 60Hz, peaking filters
// at 250Hz, 1kHz and 4kHz, and a high shelf at 16kHz. Coefficients follow
// the standard RBJ audio-EQ cookbook formulas at a fixed 44.1kHz
// processing rate.
//
// # Usage
//
//	e := eq.New()
//	e.SetGain(0, 6)  // +6dB low shelf
//	e.Adjust(4, -1)  // -2dB on the high shelf
//
//	// inside the output mixing callback:
//	e.ProcessBlock(block)
//
// With a host mixing engine the equalizer registers its own callback:
//
//	e.Attach(host)
//	defer e.Detach()
//
// # Real-time contract
//
// ProcessBlock runs on the audio deadline: it takes no locks, performs no
// allocations and makes no syscalls. When every band sits at 0dB it
// returns immediately and the block is untouched. Gain changes from a
// control context are published atomically per band; the audio context
// picks them up at the next block boundary and restarts that band's
// filter history from silence so the coefficient jump cannot click.
//
// # Limiting
//
// After the filter chain a soft-clip limiter compresses samples beyond
// ±31000 toward ±32767 along a tanh curve, so the limiter rather than
// integer wraparound defines the ceiling.
package eq
