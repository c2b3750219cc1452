// SPDX-License-Identifier: EPL-2.0

package eq

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

const (
	// NumBands is the number of equalizer bands.
	NumBands = 5

	// SampleRate is the fixed processing rate of the output path in Hz.
	SampleRate = 44100

	// GainMin and GainMax bound band gains in dB; GainStep is the
	// increment used by Adjust.
	GainMin  = -12
	GainMax  = 12
	GainStep = 2

	// clipThreshold is where the soft-clip limiter starts compressing.
	clipThreshold = 31000
	sampleMax     = 32767
)

type shape int

const (
	shapeLowShelf shape = iota
	shapePeaking
	shapeHighShelf
)

type bandDef struct {
	freq  float64
	label string
	shape shape
}

// The band table is fixed for the process lifetime.
var bandDefs = [NumBands]bandDef{
	{60, "60Hz", shapeLowShelf},
	{250, "250Hz", shapePeaking},
	{1000, "1kHz", shapePeaking},
	{4000, "4kHz", shapePeaking},
	{16000, "16kHz", shapeHighShelf},
}

// Host is the boundary to the output mixing engine. RegisterFilter
// installs fn to be invoked once per mixed output buffer, after mixing
// and before the buffer reaches the device, with interleaved 16-bit
// little-endian stereo PCM. fn mutates the buffer in place and must not
// block, allocate or take locks.
type Host interface {
	RegisterFilter(fn func(block []byte))
	UnregisterFilter()
}

// Equalizer is a bank of five cascaded biquad filters with integer dB
// gains. The zero value is not usable; construct with New.
//
// SetGain, Adjust, Gain, Reset and String are safe to call from a
// control context while ProcessBlock runs on the audio context. The
// audio-side state (filter histories) is owned exclusively by
// ProcessBlock.
type Equalizer struct {
	gains  [NumBands]atomic.Int32
	coeffs [NumBands]atomic.Pointer[coefficients]
	active atomic.Int32 // number of bands with non-zero gain

	// Touched only from the audio context.
	seen [NumBands]*coefficients
	hist [NumBands][2]history

	host Host
}

// New returns an equalizer with all bands at 0dB (true passthrough).
func New() *Equalizer {
	e := &Equalizer{}
	for i := range e.coeffs {
		e.coeffs[i].Store(&flat)
	}
	return e
}

// Attach registers the equalizer's block filter with the host mixing
// engine. Detach must be called before the equalizer is discarded.
func (e *Equalizer) Attach(h Host) {
	e.host = h
	h.RegisterFilter(e.ProcessBlock)
}

// Detach unregisters from the host. Filter state is left as-is; no
// further processing occurs.
func (e *Equalizer) Detach() {
	if e.host != nil {
		e.host.UnregisterFilter()
		e.host = nil
	}
}

// BandCount returns the number of bands.
func (e *Equalizer) BandCount() int { return NumBands }

// Label returns the display label of band ("60Hz" .. "16kHz"), or ""
// for an out-of-range index.
func (e *Equalizer) Label(band int) string {
	if band < 0 || band >= NumBands {
		return ""
	}
	return bandDefs[band].label
}

// Gain returns the current gain of band in dB, or 0 for an out-of-range
// index.
func (e *Equalizer) Gain(band int) int {
	if band < 0 || band >= NumBands {
		return 0
	}
	return int(e.gains[band].Load())
}

// SetGain sets band's gain to db, clamped to [GainMin, GainMax].
// Out-of-range band indices are ignored. An unchanged gain is a no-op;
// a changed gain recomputes the band's coefficients and restarts its
// filter history from silence.
func (e *Equalizer) SetGain(band, db int) {
	if band < 0 || band >= NumBands {
		return
	}
	if db > GainMax {
		db = GainMax
	} else if db < GainMin {
		db = GainMin
	}

	old := int(e.gains[band].Load())
	if db == old {
		return
	}
	e.gains[band].Store(int32(db))

	if db == 0 {
		e.coeffs[band].Store(&flat)
	} else {
		def := bandDefs[band]
		var c coefficients
		switch def.shape {
		case shapeLowShelf:
			c = lowShelf(def.freq, float64(db), SampleRate)
		case shapeHighShelf:
			c = highShelf(def.freq, float64(db), SampleRate)
		default:
			c = peaking(def.freq, float64(db), SampleRate)
		}
		e.coeffs[band].Store(&c)
	}

	switch {
	case old == 0 && db != 0:
		e.active.Add(1)
	case old != 0 && db == 0:
		e.active.Add(-1)
	}
}

// Adjust moves band's gain by steps increments of GainStep dB (negative
// steps cut). Clamping and history-reset semantics match SetGain.
func (e *Equalizer) Adjust(band, steps int) {
	if band < 0 || band >= NumBands {
		return
	}
	e.SetGain(band, e.Gain(band)+steps*GainStep)
}

// Reset returns every band to 0dB.
func (e *Equalizer) Reset() {
	for i := 0; i < NumBands; i++ {
		e.SetGain(i, 0)
	}
}

// Enabled reports whether any band is non-flat.
func (e *Equalizer) Enabled() bool { return e.active.Load() != 0 }

// String renders the gain vector for the player display, e.g.
// "60Hz:+6 250Hz:0 1kHz:0 4kHz:-2 16kHz:0".
func (e *Equalizer) String() string {
	var sb strings.Builder
	for i, def := range bandDefs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(def.label)
		sb.WriteByte(':')
		db := e.Gain(i)
		if db > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(db))
	}
	return sb.String()
}

// ProcessBlock filters one interleaved 16-bit little-endian stereo
// buffer in place. With every band at 0dB the buffer is untouched and no
// filter state advances. A trailing partial frame is left unmodified.
func (e *Equalizer) ProcessBlock(block []byte) {
	if e.active.Load() == 0 {
		return
	}

	// Snapshot coefficient pointers. A pointer swapped by SetGain means
	// the band changed, so its history restarts from silence here, on
	// the audio context, before the new coefficients run.
	var cs [NumBands]*coefficients
	for i := range cs {
		c := e.coeffs[i].Load()
		if c != e.seen[i] {
			e.hist[i][0] = history{}
			e.hist[i][1] = history{}
			e.seen[i] = c
		}
		cs[i] = c
	}

	for off := 0; off+frameBytes <= len(block); off += frameBytes {
		l := float64(int16(binary.LittleEndian.Uint16(block[off:])))
		r := float64(int16(binary.LittleEndian.Uint16(block[off+2:])))

		for b := 0; b < NumBands; b++ {
			c := cs[b]
			if c == &flat {
				continue
			}
			l = filterSample(c, &e.hist[b][0], l)
			r = filterSample(c, &e.hist[b][1], r)
		}

		binary.LittleEndian.PutUint16(block[off:], uint16(softClip(l)))
		binary.LittleEndian.PutUint16(block[off+2:], uint16(softClip(r)))
	}
}

const frameBytes = 4 // one stereo frame of 16-bit samples

// softClip passes samples within ±clipThreshold unchanged and
// compresses anything beyond it toward ±sampleMax along a tanh curve,
// then truncates to the 16-bit sample width.
func softClip(y float64) int16 {
	const knee = float64(sampleMax - clipThreshold)
	switch {
	case y > clipThreshold:
		y = clipThreshold + knee*math.Tanh((y-clipThreshold)/knee)
	case y < -clipThreshold:
		y = -clipThreshold - knee*math.Tanh((-y-clipThreshold)/knee)
	}
	return int16(y)
}
