// SPDX-License-Identifier: EPL-2.0

package chanmix

import (
	"testing"

	"github.com/nv8/chanmix/audio"
	"github.com/nv8/chanmix/formats/gen"
	"github.com/nv8/chanmix/sinks/capture"
	"github.com/nv8/chanmix/sinks/psg"
)

func testConfig() Config {
	return Config{
		SampleRate:   44100,
		Channels:     4,
		Assets:       8,
		FrameSize:    64,
		MasterVolume: 1.0,
	}
}

func TestEngine_TickMixesToSink(t *testing.T) {
	t.Parallel()

	sink := capture.NewSink()
	eng := New(testConfig(), sink)

	id, err := eng.Registry().Load(gen.NewTone(gen.Square, 440, 44100, 0.5, 0.5))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := eng.Pool().Play(id, 1, 0, true); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := eng.Tick(); err != nil {
			t.Fatalf("Tick() #%d error = %v", i, err)
		}
	}

	if got := sink.Frames(); got != 3 {
		t.Errorf("sink received %d frames, want 3", got)
	}
	if got := len(sink.PCM()); got != 3*64*2 {
		t.Errorf("sink received %d samples, want %d", got, 3*64*2)
	}
	var nonZero bool
	for _, v := range sink.PCM() {
		if v != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("mix output is all silence, want audible tone")
	}
}

func TestEngine_TickDrivesEngineSound(t *testing.T) {
	t.Parallel()

	sink := capture.NewSink()
	eng := New(testConfig(), sink)

	id, err := eng.Registry().Load(gen.NewTone(gen.Saw, 110, 44100, 0.25, 0.8))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	ch, err := eng.Pool().Play(id, 1, 0, true)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if err := eng.EngineSound().Bind(ch); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	eng.EngineSound().SetParams(1.0, 0.5)
	if err := eng.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	// Full RPM doubles the playback rate: 64 output frames consume 128
	// source frames.
	cursor, err := eng.Pool().Cursor(ch)
	if err != nil {
		t.Fatalf("Cursor() error = %v", err)
	}
	if cursor != 128 {
		t.Errorf("Cursor() after one full-rpm tick = %v, want 128", cursor)
	}
}

func TestEngine_VoiceTickDrainsDeltas(t *testing.T) {
	t.Parallel()

	log := capture.NewVoiceLog()
	eng := NewVoice(testConfig(), log)

	if eng.Mixer() != nil {
		t.Fatal("Mixer() on a hardware-voice engine is non-nil")
	}

	id, err := eng.Registry().Load(gen.NewTone(gen.Sine, 440, 44100, 0.1, 1.0))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	ch, err := eng.Pool().Play(id, 0.5, 0, true)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if err := eng.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if got := log.Batches(); got != 1 {
		t.Fatalf("Batches() = %d, want 1", got)
	}
	updates := log.Updates()
	if len(updates) != 1 {
		t.Fatalf("Updates() len = %d, want 1", len(updates))
	}
	if updates[0].Channel != ch || updates[0].State != audio.Playing {
		t.Errorf("update = %+v, want channel %d playing", updates[0], ch)
	}

	// Nothing changed, so the next tick submits nothing.
	if err := eng.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if got := log.Batches(); got != 1 {
		t.Errorf("Batches() after idle tick = %d, want 1", got)
	}
}

func TestEngine_PsgEngineSound(t *testing.T) {
	t.Parallel()

	log := capture.NewVoiceLog()
	eng := NewVoice(testConfig(), log)

	var writes int
	var lastReg uint16
	chip := psg.NewSink(psg.RegisterWriterFunc(func(voice int, reg uint16) {
		writes++
		lastReg = reg
	}), 4, psg.DefaultClock)
	eng.SetEngineSound(audio.NewEngineSoundFrequency(eng.Pool(), chip, 110))

	id, err := eng.Registry().Load(gen.NewTone(gen.Square, 110, 44100, 0.1, 1.0))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	ch, err := eng.Pool().Play(id, 1, 0, true)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if err := eng.EngineSound().Bind(ch); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	eng.EngineSound().SetParams(1.0, 0)
	if err := eng.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if writes != 1 {
		t.Fatalf("register writes = %d, want 1", writes)
	}
	// base 110 Hz at pitch 2.0 is 220 Hz.
	if want := psg.ToneRegister(psg.DefaultClock, 220); lastReg != want {
		t.Errorf("register = %d, want %d", lastReg, want)
	}
}

func TestEngine_ToggleMute(t *testing.T) {
	t.Parallel()

	eng := New(testConfig(), capture.NewSink())
	eng.Pool().SetMasterVolume(0.8)

	if audible := eng.ToggleMute(); audible {
		t.Error("ToggleMute() = true, want false after muting")
	}
	if !eng.IsMuted() {
		t.Error("IsMuted() = false, want true")
	}
	if got := eng.Pool().MasterVolume(); got != 0 {
		t.Errorf("MasterVolume() while muted = %v, want 0", got)
	}

	if audible := eng.ToggleMute(); !audible {
		t.Error("ToggleMute() = false, want true after unmuting")
	}
	if got := eng.Pool().MasterVolume(); got != 0.8 {
		t.Errorf("MasterVolume() after unmute = %v, want 0.8", got)
	}
}

func TestEngine_ZeroConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	eng := New(Config{MasterVolume: 1.0}, capture.NewSink())
	def := DefaultConfig()
	if got := eng.Pool().Capacity(); got != def.Channels {
		t.Errorf("Pool().Capacity() = %d, want %d", got, def.Channels)
	}
	if got := eng.Registry().Capacity(); got != def.Assets {
		t.Errorf("Registry().Capacity() = %d, want %d", got, def.Assets)
	}
	if got := eng.Mixer().SampleRate(); got != def.SampleRate {
		t.Errorf("Mixer().SampleRate() = %d, want %d", got, def.SampleRate)
	}
}

func TestEngine_Close(t *testing.T) {
	t.Parallel()

	sink := capture.NewSink()
	eng := New(testConfig(), sink)

	id, err := eng.Registry().Load(gen.NewTone(gen.Sine, 440, 44100, 0.1, 1.0))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	ch, err := eng.Pool().Play(id, 1, 0, true)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if err := eng.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if state, _ := eng.Pool().StateOf(ch); state != audio.Stopped {
		t.Errorf("StateOf() after Close = %v, want stopped", state)
	}
	if err := sink.SubmitFrame([]int16{0}); err == nil {
		t.Error("sink accepted a frame after Close")
	}
}
