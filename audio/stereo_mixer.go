// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer adapts any source to the player's fixed two-channel
// output: mono input is duplicated onto both channels, stereo passes
// through, and wider layouts are folded down by averaging all channels
// into both outputs.
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }

func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with interleaved stereo samples. len(dst) must
// be a multiple of 2; the return value counts float32 values written.
func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if m.src.Channels() == 2 {
		// Pass-through: source is already interleaved stereo.
		return m.src.ReadSamples(dst)
	}

	channels := m.src.Channels()
	frames := len(dst) / 2
	samplesNeeded := frames * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing).
	if cap(m.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		m.tmp = make([]float32, newCap)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	gotFrames := n / channels

	switch channels {
	case 1:
		// Duplicate mono onto left and right.
		for f := 0; f < gotFrames; f++ {
			dst[f*2] = m.tmp[f]
			dst[f*2+1] = m.tmp[f]
		}
	default:
		// Fold all channels into a mono sum, then duplicate.
		invChannels := float32(1.0) / float32(channels)
		for f := 0; f < gotFrames; f++ {
			sum := float32(0)
			baseIdx := f * channels
			for c := 0; c < channels; c++ {
				sum += m.tmp[baseIdx+c]
			}
			v := sum * invChannels
			dst[f*2] = v
			dst[f*2+1] = v
		}
	}

	return gotFrames * 2, err
}
