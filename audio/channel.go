// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelID identifies one playback slot in a Pool.
type ChannelID int

// State is the playback lifecycle of a channel.
type State uint8

const (
	// Stopped channels are free for allocation.
	Stopped State = iota
	// Playing channels advance through their asset every mix.
	Playing
	// Paused channels hold their cursor until resumed or stopped.
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Category groups channels for volume control. The effective amplitude of
// a channel is volume * category volume * master volume, clamped to [0,1].
type Category int

const (
	CategorySFX Category = iota
	CategoryEngine
	CategoryMusic
	CategoryUI
	categoryCount
)

// Pitch ratios are clamped to this range. The engine-sound sweep of
// 0.5..2.0 sits well inside it.
const (
	MinPitch = 0.25
	MaxPitch = 4.0
)

type channel struct {
	asset    AssetID
	cursor   float64 // fractional frame position into the asset
	state    State
	loop     bool
	volume   float64
	pan      float64
	pitch    float64
	category Category
	dirty    bool
}

func (c *channel) reset() {
	*c = channel{asset: NoAsset, pitch: 1.0, dirty: true}
}

// Pool is a fixed-size table of playback channels plus the master and
// per-category volumes they share. It is not safe for concurrent use.
type Pool struct {
	registry *Registry
	channels []channel

	masterVolume   float64
	categoryVolume [categoryCount]float64
}

// NewPool creates a pool of capacity channels drawing assets from
// registry. Typical console capacities run 4 (PSG-era) to 32.
func NewPool(registry *Registry, capacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	p := &Pool{
		registry:     registry,
		channels:     make([]channel, capacity),
		masterVolume: 1.0,
	}
	for i := range p.channels {
		p.channels[i].reset()
		p.channels[i].dirty = false
	}
	for i := range p.categoryVolume {
		p.categoryVolume[i] = 1.0
	}
	return p
}

// Capacity returns the fixed channel count.
func (p *Pool) Capacity() int { return len(p.channels) }

func (p *Pool) at(id ChannelID) (*channel, error) {
	if int(id) < 0 || int(id) >= len(p.channels) {
		return nil, fmt.Errorf("%w: id %d, capacity %d", ErrInvalidChannel, id, len(p.channels))
	}
	return &p.channels[id], nil
}

// Play binds the first free channel to asset and starts it at frame 0.
// volume and pan are clamped to [0,1] and [-1,1]. There is no eviction:
// when every channel is busy the caller gets ErrNoFreeChannel and decides
// what to drop.
func (p *Pool) Play(asset AssetID, volume, pan float64, loop bool) (ChannelID, error) {
	if _, err := p.registry.Get(asset); err != nil {
		return -1, err
	}
	for i := range p.channels {
		ch := &p.channels[i]
		if ch.state != Stopped {
			continue
		}
		ch.reset()
		ch.asset = asset
		ch.state = Playing
		ch.loop = loop
		ch.volume = clamp(volume, 0, 1)
		ch.pan = clamp(pan, -1, 1)
		return ChannelID(i), nil
	}
	return -1, ErrNoFreeChannel
}

// Stop frees the channel and clears every parameter so nothing leaks into
// the next allocation. Idempotent.
func (p *Pool) Stop(id ChannelID) error {
	ch, err := p.at(id)
	if err != nil {
		return err
	}
	ch.reset()
	ch.state = Stopped
	return nil
}

// Pause holds a playing channel. No-op unless the channel is Playing.
func (p *Pool) Pause(id ChannelID) error {
	ch, err := p.at(id)
	if err != nil {
		return err
	}
	if ch.state == Playing {
		ch.state = Paused
		ch.dirty = true
	}
	return nil
}

// Resume restarts a paused channel. No-op unless the channel is Paused.
func (p *Pool) Resume(id ChannelID) error {
	ch, err := p.at(id)
	if err != nil {
		return err
	}
	if ch.state == Paused {
		ch.state = Playing
		ch.dirty = true
	}
	return nil
}

// SetVolume sets the channel volume, clamped to [0,1]. Accepted silently
// on a stopped channel; several console backends send parameter updates a
// frame after the sound ends and treating that as an error is noise.
func (p *Pool) SetVolume(id ChannelID, volume float64) error {
	ch, err := p.at(id)
	if err != nil {
		return err
	}
	ch.volume = clamp(volume, 0, 1)
	ch.dirty = true
	return nil
}

// SetPan sets the stereo position, clamped to [-1,1].
func (p *Pool) SetPan(id ChannelID, pan float64) error {
	ch, err := p.at(id)
	if err != nil {
		return err
	}
	ch.pan = clamp(pan, -1, 1)
	ch.dirty = true
	return nil
}

// SetPitch sets the playback-rate ratio, clamped to [MinPitch, MaxPitch].
func (p *Pool) SetPitch(id ChannelID, ratio float64) error {
	ch, err := p.at(id)
	if err != nil {
		return err
	}
	ch.pitch = clamp(ratio, MinPitch, MaxPitch)
	ch.dirty = true
	return nil
}

// SetCategory assigns the channel to a volume category.
func (p *Pool) SetCategory(id ChannelID, cat Category) error {
	ch, err := p.at(id)
	if err != nil {
		return err
	}
	if cat < 0 || cat >= categoryCount {
		cat = CategorySFX
	}
	ch.category = cat
	ch.dirty = true
	return nil
}

// IsPlaying reports whether the channel is currently advancing.
func (p *Pool) IsPlaying(id ChannelID) (bool, error) {
	ch, err := p.at(id)
	if err != nil {
		return false, err
	}
	return ch.state == Playing, nil
}

// StateOf returns the channel lifecycle state.
func (p *Pool) StateOf(id ChannelID) (State, error) {
	ch, err := p.at(id)
	if err != nil {
		return Stopped, err
	}
	return ch.state, nil
}

// Cursor returns the playback position in source frames.
func (p *Pool) Cursor(id ChannelID) (float64, error) {
	ch, err := p.at(id)
	if err != nil {
		return 0, err
	}
	return ch.cursor, nil
}

// SetMasterVolume sets the global volume, clamped to [0,1].
func (p *Pool) SetMasterVolume(v float64) {
	p.masterVolume = clamp(v, 0, 1)
	p.markAllDirty()
}

// MasterVolume returns the global volume.
func (p *Pool) MasterVolume() float64 { return p.masterVolume }

// SetCategoryVolume sets one category's volume, clamped to [0,1].
func (p *Pool) SetCategoryVolume(cat Category, v float64) {
	if cat < 0 || cat >= categoryCount {
		return
	}
	p.categoryVolume[cat] = clamp(v, 0, 1)
	p.markAllDirty()
}

// CategoryVolume returns one category's volume.
func (p *Pool) CategoryVolume(cat Category) float64 {
	if cat < 0 || cat >= categoryCount {
		return 0
	}
	return p.categoryVolume[cat]
}

// StopAll stops every channel.
func (p *Pool) StopAll() {
	for i := range p.channels {
		p.channels[i].reset()
		p.channels[i].state = Stopped
	}
}

// effective resolves the playable amplitude for a channel.
func (p *Pool) effective(ch *channel) float64 {
	return clamp(ch.volume*p.categoryVolume[ch.category]*p.masterVolume, 0, 1)
}

func (p *Pool) markAllDirty() {
	for i := range p.channels {
		p.channels[i].dirty = true
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
