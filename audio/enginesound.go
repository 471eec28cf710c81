// SPDX-License-Identifier: EPL-2.0

package audio

// PitchSink accepts a continuous playback-rate ratio. Pool implements it;
// hardware backends with free-running sample-rate voices implement it too.
type PitchSink interface {
	SetPitch(id ChannelID, ratio float64) error
}

// FrequencySink accepts a tone frequency in Hz for chips whose pitch is a
// quantized register value (PSG-style hardware). The sink applies its own
// register formula and rounding.
type FrequencySink interface {
	SetToneFrequency(id ChannelID, hz float64) error
}

// Default pitch sweep for the engine drone, a linear map from normalized
// RPM. The same constants hold across the hardware ports this core grew
// out of.
const (
	DefaultPitchMin = 0.5
	DefaultPitchMax = 2.0

	// DefaultBaseToneHz is the idle tone for frequency-quantized sinks.
	DefaultBaseToneHz = 110.0
)

// EngineSound derives a playback pitch from a simulated vehicle RPM, the
// recurring racing-engine drone. It owns no channel: the caller binds a
// playing, looped channel and pushes RPM once per tick; Update applies the
// derived pitch through whichever sink trait the target provides.
type EngineSound struct {
	pool *Pool

	pitchSink PitchSink
	freqSink  FrequencySink

	pitchMin   float64
	pitchMax   float64
	baseToneHz float64

	rpm     float64 // normalized 0..1
	load    float64 // normalized 0..1
	channel ChannelID
	bound   bool
}

// NewEngineSound creates a synthesizer applying continuous pitch ratios
// through sink. Use pool itself for software-mixed targets.
func NewEngineSound(pool *Pool, sink PitchSink) *EngineSound {
	return &EngineSound{
		pool:      pool,
		pitchSink: sink,
		pitchMin:  DefaultPitchMin,
		pitchMax:  DefaultPitchMax,
		channel:   -1,
	}
}

// NewEngineSoundFrequency creates a synthesizer for frequency-quantized
// chips. The idle drone plays at baseToneHz and sweeps with the same
// pitch ratios a continuous target uses; the sink quantizes.
func NewEngineSoundFrequency(pool *Pool, sink FrequencySink, baseToneHz float64) *EngineSound {
	if baseToneHz <= 0 {
		baseToneHz = DefaultBaseToneHz
	}
	return &EngineSound{
		pool:       pool,
		freqSink:   sink,
		pitchMin:   DefaultPitchMin,
		pitchMax:   DefaultPitchMax,
		baseToneHz: baseToneHz,
		channel:    -1,
	}
}

// SetPitchRange overrides the pitch sweep endpoints. min must stay below
// max; invalid ranges are ignored.
func (e *EngineSound) SetPitchRange(min, max float64) {
	if min <= 0 || max <= min {
		return
	}
	e.pitchMin = min
	e.pitchMax = max
}

// Bind attaches the synthesizer to a channel. The engine drone is looped
// by convention: binding a channel that is not playing a looped asset is
// ErrInvalidBinding.
func (e *EngineSound) Bind(id ChannelID) error {
	ch, err := e.pool.at(id)
	if err != nil {
		return err
	}
	if ch.state != Playing || !ch.loop {
		return ErrInvalidBinding
	}
	e.channel = id
	e.bound = true
	return nil
}

// Unbind detaches the synthesizer. Update becomes a no-op.
func (e *EngineSound) Unbind() {
	e.channel = -1
	e.bound = false
}

// Bound reports the attached channel, or -1.
func (e *EngineSound) Bound() ChannelID {
	if !e.bound {
		return -1
	}
	return e.channel
}

// SetParams stores the normalized RPM and load for the next Update. Pure
// state update; values are clamped to [0,1].
func (e *EngineSound) SetParams(rpm, load float64) {
	e.rpm = clamp(rpm, 0, 1)
	e.load = clamp(load, 0, 1)
}

// RPM returns the last normalized RPM pushed by the caller.
func (e *EngineSound) RPM() float64 { return e.rpm }

// Load returns the last normalized load pushed by the caller.
func (e *EngineSound) Load() float64 { return e.load }

// Pitch returns the ratio Update would apply for the current RPM.
func (e *EngineSound) Pitch() float64 {
	return e.pitchMin + e.rpm*(e.pitchMax-e.pitchMin)
}

// Update recomputes the pitch from the stored RPM and applies it through
// the sink trait. Called once per simulation tick; no-op while unbound.
func (e *EngineSound) Update() error {
	if !e.bound {
		return nil
	}
	ratio := e.Pitch()
	if e.pitchSink != nil {
		return e.pitchSink.SetPitch(e.channel, ratio)
	}
	if e.freqSink != nil {
		return e.freqSink.SetToneFrequency(e.channel, e.baseToneHz*ratio)
	}
	return nil
}
