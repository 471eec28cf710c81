// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// AssetID identifies a loaded SoundAsset within a Registry.
type AssetID int

// NoAsset is the id carried by an unbound channel.
const NoAsset AssetID = -1

// SoundAsset is an immutable decoded sample: interleaved 16-bit PCM with
// its format. Assets are owned by the Registry that loaded them; channels
// reference them by id and must be stopped before the asset is unloaded.
type SoundAsset struct {
	pcm        []int16
	sampleRate int
	channels   int
}

// SampleRate of the PCM data in Hz.
func (a *SoundAsset) SampleRate() int { return a.sampleRate }

// Channels count (1=mono, 2=stereo).
func (a *SoundAsset) Channels() int { return a.channels }

// Frames is the sample count per channel.
func (a *SoundAsset) Frames() int { return len(a.pcm) / a.channels }

// Sample returns the value for one channel of one frame. ch is clamped to
// the asset's channel count, so mono assets answer for either ear.
func (a *SoundAsset) Sample(frame, ch int) int16 {
	if ch >= a.channels {
		ch = a.channels - 1
	}
	return a.pcm[frame*a.channels+ch]
}

// PCM exposes the raw interleaved samples. Callers must not mutate it.
func (a *SoundAsset) PCM() []int16 { return a.pcm }

// Registry is a fixed-size table of SoundAssets. Ids are stable for the
// lifetime of the asset and may be reused after Unload.
type Registry struct {
	slots []*SoundAsset
}

// NewRegistry creates a registry with room for capacity assets.
func NewRegistry(capacity int) *Registry {
	if capacity < 1 {
		capacity = 1
	}
	return &Registry{slots: make([]*SoundAsset, capacity)}
}

// Capacity returns the table size.
func (r *Registry) Capacity() int { return len(r.slots) }

// Load drains src into a new SoundAsset and returns its id. The source is
// closed regardless of outcome. Fails with ErrAssetLoadFailed on invalid
// format or empty data, ErrRegistryFull when no slot is free.
func (r *Registry) Load(src Source) (AssetID, error) {
	defer src.Close()

	slot := -1
	for i, a := range r.slots {
		if a == nil {
			slot = i
			break
		}
	}
	if slot < 0 {
		return NoAsset, ErrRegistryFull
	}

	channels := src.Channels()
	rate := src.SampleRate()
	if (channels != 1 && channels != 2) || rate <= 0 {
		return NoAsset, fmt.Errorf("%w: %d channels at %d Hz", ErrAssetLoadFailed, channels, rate)
	}

	var pcm []int16
	buf := make([]int16, 4096)
	for {
		n, err := src.ReadPCM(buf)
		pcm = append(pcm, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return NoAsset, fmt.Errorf("%w: %v", ErrAssetLoadFailed, err)
		}
	}

	// Drop a trailing partial frame rather than desyncing channels.
	pcm = pcm[:len(pcm)-len(pcm)%channels]
	if len(pcm) == 0 {
		return NoAsset, fmt.Errorf("%w: source produced no samples", ErrAssetLoadFailed)
	}

	r.slots[slot] = &SoundAsset{pcm: pcm, sampleRate: rate, channels: channels}
	return AssetID(slot), nil
}

// Get returns the asset for id, or ErrInvalidAsset.
func (r *Registry) Get(id AssetID) (*SoundAsset, error) {
	if int(id) < 0 || int(id) >= len(r.slots) || r.slots[id] == nil {
		return nil, fmt.Errorf("%w: id %d", ErrInvalidAsset, id)
	}
	return r.slots[id], nil
}

// Unload frees the slot for id. No-op when the id is already invalid.
// Any channel still referencing the asset must be stopped first; the
// registry does not track references.
func (r *Registry) Unload(id AssetID) {
	if int(id) < 0 || int(id) >= len(r.slots) {
		return
	}
	r.slots[id] = nil
}
