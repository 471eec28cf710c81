// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/nv8/chanmix/utils"
)

// Mixer sums the pool's playing channels into an interleaved stereo int16
// buffer for targets without hardware mixing. Resampling for pitch and for
// asset/output rate mismatch uses linear interpolation. Channels mix in
// ascending index order, so identical pool state always produces
// bit-identical output.
type Mixer struct {
	pool       *Pool
	sampleRate int
	maxFrames  int
	acc        []int32
}

// NewMixer creates a mixer producing output at sampleRate with a staging
// capacity of maxFrames frames per call. The frame size is fixed per
// platform at initialization.
func NewMixer(pool *Pool, sampleRate, maxFrames int) *Mixer {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	if maxFrames < 1 {
		maxFrames = 1
	}
	return &Mixer{
		pool:       pool,
		sampleRate: sampleRate,
		maxFrames:  maxFrames,
		acc:        make([]int32, maxFrames*2),
	}
}

// SampleRate of the mixed output in Hz.
func (m *Mixer) SampleRate() int { return m.sampleRate }

// MaxFrames is the staging capacity per MixFrame call.
func (m *Mixer) MaxFrames() int { return m.maxFrames }

// MixFrame renders frames stereo frames into dst (interleaved L,R). The
// per-channel signal is scaled by the effective amplitude and the pan law
// left = eff*(1-max(0,pan)), right = eff*(1+min(0,pan)), accumulated in
// 32-bit and saturated to int16 on store. Looping channels wrap to frame 0
// inside the call; non-looping channels that exhaust their asset are
// stopped here and contribute silence for the remainder. This is the only
// place that performs the exhaustion transition.
//
// Asking for more than MaxFrames frames, or passing a dst shorter than
// frames*2, is a caller contract violation and panics.
func (m *Mixer) MixFrame(dst []int16, frames int) {
	if frames < 0 || frames > m.maxFrames {
		panic(fmt.Sprintf("audio: MixFrame frames %d exceeds staging capacity %d", frames, m.maxFrames))
	}
	if len(dst) < frames*2 {
		panic(fmt.Sprintf("audio: MixFrame dst holds %d samples, need %d", len(dst), frames*2))
	}

	acc := m.acc[:frames*2]
	for i := range acc {
		acc[i] = 0
	}

	for i := range m.pool.channels {
		ch := &m.pool.channels[i]
		if ch.state != Playing {
			continue
		}
		asset, err := m.pool.registry.Get(ch.asset)
		if err != nil {
			// Asset unloaded under a live channel; guard rather than read
			// freed data. Documented caller error.
			ch.reset()
			ch.state = Stopped
			continue
		}
		m.mixChannel(ch, asset, acc, frames)
	}

	for i := range acc {
		dst[i] = utils.SaturateInt16(acc[i])
	}
}

func (m *Mixer) mixChannel(ch *channel, asset *SoundAsset, acc []int32, frames int) {
	eff := m.pool.effective(ch)
	left := eff * (1 - max(0.0, ch.pan))
	right := eff * (1 + min(0.0, ch.pan))

	step := ch.pitch * float64(asset.SampleRate()) / float64(m.sampleRate)
	total := float64(asset.Frames())
	cursor := ch.cursor

	for f := 0; f < frames; f++ {
		for cursor >= total {
			if !ch.loop {
				ch.reset()
				ch.state = Stopped
				return
			}
			cursor -= total
		}

		l, r := lerpFrame(asset, cursor, ch.loop)
		acc[2*f] += int32(float64(l) * left)
		acc[2*f+1] += int32(float64(r) * right)
		cursor += step
	}

	ch.cursor = cursor
	ch.dirty = true
}

// lerpFrame linearly interpolates the asset around the fractional cursor.
// For looping assets the successor of the last frame is frame 0; otherwise
// the last frame is held.
func lerpFrame(asset *SoundAsset, cursor float64, loop bool) (int16, int16) {
	i := int(cursor)
	frac := cursor - float64(i)

	j := i + 1
	if j >= asset.Frames() {
		if loop {
			j = 0
		} else {
			j = asset.Frames() - 1
		}
	}

	l := utils.Lerp(asset.Sample(i, 0), asset.Sample(j, 0), frac)
	r := utils.Lerp(asset.Sample(i, 1), asset.Sample(j, 1), frac)
	return l, r
}
