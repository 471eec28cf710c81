// SPDX-License-Identifier: EPL-2.0

package chanmix

import (
	"github.com/nv8/chanmix/audio"
)

// Engine is one explicitly constructed audio instance: registry, channel
// pool, mixer (software-mixed targets only) and engine-sound synthesizer.
// There are no package-level singletons; ports that embed several logical
// consoles construct several Engines.
//
// Engine is driven by a single-threaded game loop and is not safe for
// concurrent use.
type Engine struct {
	cfg      Config
	registry *audio.Registry
	pool     *audio.Pool
	mixer    *audio.Mixer
	drone    *audio.EngineSound

	sink      audio.Sink
	voiceSink audio.VoiceSink
	frame     []int16
	voiceBuf  []audio.VoiceUpdate

	muted      bool
	prevMaster float64
}

// New creates a software-mixed engine submitting one mixed buffer per
// Tick to sink.
func New(cfg Config, sink audio.Sink) *Engine {
	e := newEngine(cfg)
	e.sink = sink
	e.mixer = audio.NewMixer(e.pool, cfg.SampleRate, cfg.FrameSize)
	e.frame = make([]int16, cfg.FrameSize*2)
	return e
}

// NewVoice creates a hardware-voice engine: no software mixer, channel
// state deltas flow to sink each Tick.
func NewVoice(cfg Config, sink audio.VoiceSink) *Engine {
	e := newEngine(cfg)
	e.voiceSink = sink
	return e
}

func newEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	if cfg.Channels <= 0 {
		cfg.Channels = def.Channels
	}
	if cfg.Assets <= 0 {
		cfg.Assets = def.Assets
	}
	if cfg.FrameSize <= 0 {
		cfg.FrameSize = def.FrameSize
	}

	registry := audio.NewRegistry(cfg.Assets)
	pool := audio.NewPool(registry, cfg.Channels)
	pool.SetMasterVolume(cfg.MasterVolume)
	for cat, vol := range cfg.CategoryVolumes {
		pool.SetCategoryVolume(cat, vol)
	}
	// Construction state is the baseline; only later changes are deltas.
	pool.DrainVoiceUpdates(nil)

	return &Engine{
		cfg:      cfg,
		registry: registry,
		pool:     pool,
		drone:    audio.NewEngineSound(pool, pool),
	}
}

// Registry returns the sound-asset registry.
func (e *Engine) Registry() *audio.Registry { return e.registry }

// Pool returns the channel pool.
func (e *Engine) Pool() *audio.Pool { return e.pool }

// Mixer returns the software mixer, nil on a hardware-voice engine.
func (e *Engine) Mixer() *audio.Mixer { return e.mixer }

// EngineSound returns the RPM pitch synthesizer.
func (e *Engine) EngineSound() *audio.EngineSound { return e.drone }

// SetEngineSound replaces the synthesizer, for targets whose drone pitch
// goes through a FrequencySink (see sinks/psg) instead of the pool.
func (e *Engine) SetEngineSound(es *audio.EngineSound) {
	if es != nil {
		e.drone = es
	}
}

// Tick runs one simulation step: engine-pitch update, then either a
// software mix submitted to the Sink or a voice-update drain submitted to
// the VoiceSink. Call exactly once per game-loop frame.
func (e *Engine) Tick() error {
	if err := e.drone.Update(); err != nil {
		return err
	}

	if e.mixer != nil {
		e.mixer.MixFrame(e.frame, e.cfg.FrameSize)
		return e.sink.SubmitFrame(e.frame)
	}

	e.voiceBuf = e.pool.DrainVoiceUpdates(e.voiceBuf[:0])
	if len(e.voiceBuf) == 0 {
		return nil
	}
	return e.voiceSink.SubmitVoices(e.voiceBuf)
}

// ToggleMute silences or restores the master volume. Returns true when
// audio is now audible.
func (e *Engine) ToggleMute() bool {
	if e.muted {
		e.pool.SetMasterVolume(e.prevMaster)
		e.muted = false
		return true
	}
	e.prevMaster = e.pool.MasterVolume()
	e.pool.SetMasterVolume(0)
	e.muted = true
	return false
}

// IsMuted reports the mute state.
func (e *Engine) IsMuted() bool { return e.muted }

// Close stops all channels and closes whichever sink the engine owns.
func (e *Engine) Close() error {
	e.pool.StopAll()
	if e.sink != nil {
		return e.sink.Close()
	}
	if e.voiceSink != nil {
		return e.voiceSink.Close()
	}
	return nil
}
