// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidChannel reports a channel id outside [0, capacity).
	ErrInvalidChannel = errors.New("channel id out of range")
	// ErrInvalidAsset reports an asset id that is not loaded.
	ErrInvalidAsset = errors.New("asset not found")
	// ErrNoFreeChannel reports an exhausted channel pool. The pool never
	// steals a playing channel; the caller decides what to drop.
	ErrNoFreeChannel = errors.New("no free channel")
	// ErrAssetLoadFailed reports a source that produced no usable PCM data.
	ErrAssetLoadFailed = errors.New("asset load failed")
	// ErrRegistryFull reports an exhausted asset table.
	ErrRegistryFull = errors.New("asset registry full")
	// ErrInvalidBinding reports an engine-sound bind to a channel that is
	// not a playing, looped channel.
	ErrInvalidBinding = errors.New("engine sound requires a playing looped channel")
)
