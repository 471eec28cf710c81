// SPDX-License-Identifier: EPL-2.0

package gen

import (
	"io"
	"math"
	"math/rand"

	"github.com/nv8/chanmix/audio"
	"github.com/nv8/chanmix/utils"
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Saw
	Noise
)

// Tone is a procedural mono audio.Source: one oscillator with a linear
// attack/release envelope. Ports use these as stand-in content until real
// assets exist, the classic sine-wave placeholder.
type Tone struct {
	wave       Waveform
	freq       float64
	sampleRate int
	total      int // frames to generate
	attack     int // frames
	release    int // frames
	amp        float64

	pos   int
	phase float64
	rng   *rand.Rand
}

// NewTone creates a generator of durationSec seconds at sampleRate.
// amp scales the output in [0,1].
func NewTone(wave Waveform, freq float64, sampleRate int, durationSec, amp float64) *Tone {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	total := int(durationSec * float64(sampleRate))
	if total < 1 {
		total = 1
	}
	return &Tone{
		wave:       wave,
		freq:       freq,
		sampleRate: sampleRate,
		total:      total,
		amp:        clamp01(amp),
		// Deterministic noise so generated assets are reproducible.
		rng: rand.New(rand.NewSource(int64(total)*31 + int64(freq))),
	}
}

// WithEnvelope sets linear attack and release ramps in seconds.
func (t *Tone) WithEnvelope(attackSec, releaseSec float64) *Tone {
	t.attack = int(attackSec * float64(t.sampleRate))
	t.release = int(releaseSec * float64(t.sampleRate))
	if t.attack+t.release > t.total {
		t.attack = t.total / 2
		t.release = t.total - t.attack
	}
	return t
}

func (t *Tone) SampleRate() int { return t.sampleRate }
func (t *Tone) Channels() int   { return 1 }
func (t *Tone) Close() error    { return nil }

func (t *Tone) ReadPCM(dst []int16) (int, error) {
	if t.pos >= t.total {
		return 0, io.EOF
	}

	n := min(len(dst), t.total-t.pos)
	phaseInc := t.freq / float64(t.sampleRate)

	for i := 0; i < n; i++ {
		var v float64
		switch t.wave {
		case Sine:
			v = math.Sin(2 * math.Pi * t.phase)
		case Square:
			if t.phase < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		case Saw:
			v = 2.0 * (t.phase - 0.5)
		case Noise:
			v = t.rng.Float64()*2 - 1
		}

		dst[i] = utils.Float32ToInt16(float32(v * t.amp * t.envelope(t.pos + i)))

		t.phase += phaseInc
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
	}
	t.pos += n

	if t.pos >= t.total {
		return n, io.EOF
	}
	return n, nil
}

// envelope returns the linear attack/release gain at frame pos.
func (t *Tone) envelope(pos int) float64 {
	if t.attack > 0 && pos < t.attack {
		return float64(pos) / float64(t.attack)
	}
	if t.release > 0 && pos >= t.total-t.release {
		return float64(t.total-pos) / float64(t.release)
	}
	return 1.0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var _ audio.Source = (*Tone)(nil)
