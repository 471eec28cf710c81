// SPDX-License-Identifier: EPL-2.0

package chanmix

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/nv8/chanmix/audio"
)

// Config sizes the audio core. Everything is fixed at construction; the
// backend capacities these map to (channel counts, frame sizes) are
// hardware facts, not tunables.
type Config struct {
	// SampleRate of the mixed output in Hz.
	SampleRate int
	// Channels is the playback channel capacity, typically 4 (PSG era)
	// to 32.
	Channels int
	// Assets is the registry table size.
	Assets int
	// FrameSize is the mix length per tick in stereo frames.
	FrameSize int
	// MasterVolume in [0,1].
	MasterVolume float64
	// CategoryVolumes in [0,1], keyed by category.
	CategoryVolumes map[audio.Category]float64
}

// DefaultConfig returns the native-port defaults: 44.1kHz, 16 channels,
// 735-frame ticks (one 60Hz frame).
func DefaultConfig() Config {
	return Config{
		SampleRate:   44100,
		Channels:     16,
		Assets:       64,
		FrameSize:    735,
		MasterVolume: 1.0,
		CategoryVolumes: map[audio.Category]float64{
			audio.CategorySFX:    1.0,
			audio.CategoryEngine: 1.0,
			audio.CategoryMusic:  1.0,
			audio.CategoryUI:     1.0,
		},
	}
}

// LoadConfig reads Config overrides from environment variables:
//
//	CHANMIX_SAMPLE_RATE    output rate in Hz
//	CHANMIX_CHANNELS       channel pool capacity
//	CHANMIX_FRAME_SIZE     mix frames per tick
//	CHANMIX_MASTER_VOLUME  0-100
//	CHANMIX_CATEGORY_VOLUMES  JSON, e.g. {"sfx":0.8,"engine":1.0}
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CHANMIX_SAMPLE_RATE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if v := os.Getenv("CHANMIX_CHANNELS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.Channels = val
		}
	}

	if v := os.Getenv("CHANMIX_FRAME_SIZE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FrameSize = val
		}
	}

	// Master volume is 0-100 in the environment, 0.0-1.0 internally.
	if v := os.Getenv("CHANMIX_MASTER_VOLUME"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			vol := float64(val) / 100.0
			if vol < 0 {
				vol = 0
			}
			if vol > 1 {
				vol = 1
			}
			cfg.MasterVolume = vol
		}
	}

	if v := os.Getenv("CHANMIX_CATEGORY_VOLUMES"); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			for name, vol := range volumes {
				if cat, ok := categoryNames[name]; ok {
					cfg.CategoryVolumes[cat] = vol
				}
			}
		}
	}

	return cfg
}

var categoryNames = map[string]audio.Category{
	"sfx":    audio.CategorySFX,
	"engine": audio.CategoryEngine,
	"music":  audio.CategoryMusic,
	"ui":     audio.CategoryUI,
}
