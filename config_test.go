// SPDX-License-Identifier: EPL-2.0

package chanmix

import (
	"testing"

	"github.com/nv8/chanmix/audio"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.Channels != 16 {
		t.Errorf("Channels = %d, want 16", cfg.Channels)
	}
	if cfg.Assets != 64 {
		t.Errorf("Assets = %d, want 64", cfg.Assets)
	}
	if cfg.FrameSize != 735 {
		t.Errorf("FrameSize = %d, want 735", cfg.FrameSize)
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("MasterVolume = %v, want 1.0", cfg.MasterVolume)
	}
	if len(cfg.CategoryVolumes) != 4 {
		t.Errorf("CategoryVolumes has %d entries, want 4", len(cfg.CategoryVolumes))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.SampleRate != def.SampleRate || cfg.Channels != def.Channels {
		t.Errorf("LoadConfig() without env = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CHANMIX_SAMPLE_RATE", "22050")
	t.Setenv("CHANMIX_CHANNELS", "8")
	t.Setenv("CHANMIX_FRAME_SIZE", "512")
	t.Setenv("CHANMIX_MASTER_VOLUME", "50")
	t.Setenv("CHANMIX_CATEGORY_VOLUMES", `{"engine":0.25,"music":0.75}`)

	cfg := LoadConfig()
	if cfg.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", cfg.SampleRate)
	}
	if cfg.Channels != 8 {
		t.Errorf("Channels = %d, want 8", cfg.Channels)
	}
	if cfg.FrameSize != 512 {
		t.Errorf("FrameSize = %d, want 512", cfg.FrameSize)
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("MasterVolume = %v, want 0.5", cfg.MasterVolume)
	}
	if got := cfg.CategoryVolumes[audio.CategoryEngine]; got != 0.25 {
		t.Errorf("CategoryVolumes[engine] = %v, want 0.25", got)
	}
	if got := cfg.CategoryVolumes[audio.CategoryMusic]; got != 0.75 {
		t.Errorf("CategoryVolumes[music] = %v, want 0.75", got)
	}
	if got := cfg.CategoryVolumes[audio.CategorySFX]; got != 1.0 {
		t.Errorf("CategoryVolumes[sfx] = %v, want untouched 1.0", got)
	}
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("CHANMIX_SAMPLE_RATE", "not a number")
	t.Setenv("CHANMIX_CHANNELS", "-4")
	t.Setenv("CHANMIX_MASTER_VOLUME", "250")
	t.Setenv("CHANMIX_CATEGORY_VOLUMES", "{broken json")

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("SampleRate = %d, want default %d", cfg.SampleRate, def.SampleRate)
	}
	if cfg.Channels != def.Channels {
		t.Errorf("Channels = %d, want default %d", cfg.Channels, def.Channels)
	}
	// Volume above 100 clamps to full scale.
	if cfg.MasterVolume != 1.0 {
		t.Errorf("MasterVolume = %v, want 1.0", cfg.MasterVolume)
	}
	if got := cfg.CategoryVolumes[audio.CategoryUI]; got != 1.0 {
		t.Errorf("CategoryVolumes[ui] = %v, want 1.0", got)
	}
}
