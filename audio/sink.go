// SPDX-License-Identifier: EPL-2.0

package audio

// Sink is the software-mixed output boundary. A platform backend consumes
// one ready-mixed interleaved stereo int16 buffer per tick. SubmitFrame
// must not block on playback; backends that feed an asynchronous device
// buffer internally.
type Sink interface {
	SubmitFrame(pcm []int16) error
	Close() error
}

// VoiceUpdate is one channel's state delta for hardware-mixed targets.
// The backend translates it into its own voice-configuration calls.
type VoiceUpdate struct {
	Channel ChannelID
	Asset   AssetID
	Cursor  float64
	State   State
	Loop    bool
	// Effective is the resolved amplitude (channel * category * master),
	// already clamped to [0,1].
	Effective float64
	Pan       float64
	Pitch     float64
}

// VoiceSink is the hardware-voice output boundary: it receives the set of
// channels that changed since the previous tick.
type VoiceSink interface {
	SubmitVoices(updates []VoiceUpdate) error
	Close() error
}

// DrainVoiceUpdates appends a VoiceUpdate for every channel whose state
// changed since the last drain and clears the dirty marks. dst may be nil;
// passing a reused slice avoids per-tick allocation.
func (p *Pool) DrainVoiceUpdates(dst []VoiceUpdate) []VoiceUpdate {
	for i := range p.channels {
		ch := &p.channels[i]
		if !ch.dirty {
			continue
		}
		ch.dirty = false
		dst = append(dst, VoiceUpdate{
			Channel:   ChannelID(i),
			Asset:     ch.asset,
			Cursor:    ch.cursor,
			State:     ch.state,
			Loop:      ch.loop,
			Effective: p.effective(ch),
			Pan:       ch.pan,
			Pitch:     ch.pitch,
		})
	}
	return dst
}
