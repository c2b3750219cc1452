// SPDX-License-Identifier: EPL-2.0

package eq

import "math"

// coefficients holds the transfer-function coefficients of a single
// second-order section. a0 is normalized to 1 and not stored.
type coefficients struct {
	b0, b1, b2 float64 // feedforward (numerator)
	a1, a2     float64 // feedback (denominator)
}

// history keeps two samples of input and output memory for one channel.
// Channel histories must never mix, so the equalizer holds one history
// per band per channel.
type history struct {
	x1, x2 float64
	y1, y2 float64
}

// flat is the identity filter: y = x.
var flat = coefficients{b0: 1}

const (
	// shelfQ fixes the shelf slope of the 60Hz and 16kHz bands.
	shelfQ = 0.9
	// peakingQ fixes the bandwidth of the 250Hz/1kHz/4kHz bands.
	peakingQ = 1.0
)

// filterSample runs the Direct Form I recurrence for one sample and
// shifts the history.
func filterSample(c *coefficients, h *history, x float64) float64 {
	y := c.b0*x + c.b1*h.x1 + c.b2*h.x2 - c.a1*h.y1 - c.a2*h.y2

	h.x2, h.x1 = h.x1, x
	h.y2, h.y1 = h.y1, y

	return y
}

// lowShelf computes RBJ low-shelf coefficients for a boost/cut of gainDB
// below freq Hz.
func lowShelf(freq, gainDB float64, sampleRate int) coefficients {
	amp := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosW0 := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * shelfQ)
	beta := 2 * math.Sqrt(amp) * alpha

	b0 := amp * ((amp + 1) - (amp-1)*cosW0 + beta)
	b1 := 2 * amp * ((amp - 1) - (amp+1)*cosW0)
	b2 := amp * ((amp + 1) - (amp-1)*cosW0 - beta)
	a0 := (amp + 1) + (amp-1)*cosW0 + beta
	a1 := -2 * ((amp - 1) + (amp+1)*cosW0)
	a2 := (amp + 1) + (amp-1)*cosW0 - beta

	return normalize(b0, b1, b2, a0, a1, a2)
}

// highShelf computes RBJ high-shelf coefficients for a boost/cut of
// gainDB above freq Hz.
func highShelf(freq, gainDB float64, sampleRate int) coefficients {
	amp := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosW0 := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * shelfQ)
	beta := 2 * math.Sqrt(amp) * alpha

	b0 := amp * ((amp + 1) + (amp-1)*cosW0 + beta)
	b1 := -2 * amp * ((amp - 1) + (amp+1)*cosW0)
	b2 := amp * ((amp + 1) + (amp-1)*cosW0 - beta)
	a0 := (amp + 1) - (amp-1)*cosW0 + beta
	a1 := 2 * ((amp - 1) - (amp+1)*cosW0)
	a2 := (amp + 1) - (amp-1)*cosW0 - beta

	return normalize(b0, b1, b2, a0, a1, a2)
}

// peaking computes RBJ peaking-EQ coefficients for a boost/cut of gainDB
// centered at freq Hz.
func peaking(freq, gainDB float64, sampleRate int) coefficients {
	amp := math.Pow(10, gainDB/40)
	w0 := 2 * math.Pi * freq / float64(sampleRate)
	cosW0 := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * peakingQ)

	b0 := 1 + alpha*amp
	b1 := -2 * cosW0
	b2 := 1 - alpha*amp
	a0 := 1 + alpha/amp
	a1 := -2 * cosW0
	a2 := 1 - alpha/amp

	return normalize(b0, b1, b2, a0, a1, a2)
}

func normalize(b0, b1, b2, a0, a1, a2 float64) coefficients {
	return coefficients{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}
