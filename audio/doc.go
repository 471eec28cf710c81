// SPDX-License-Identifier: EPL-2.0

// Package audio implements the platform-independent audio core: a fixed
// table of decoded PCM assets, a pool of playback channels, a software
// mixer for targets without hardware summing, and an engine-RPM pitch
// synthesizer.
//
// The package is driven by a single-threaded game loop. One simulation
// tick calls EngineSound.Update followed by Mixer.MixFrame, and the mixed
// buffer crosses the Sink boundary into a platform backend. None of the
// types here are safe for concurrent use; hosts with a separate audio
// thread must either serialize all calls onto that thread or add their
// own locking.
//
// # Assets and channels
//
// A Registry owns immutable SoundAssets (interleaved 16-bit PCM). A Pool
// holds a fixed number of channels; Play binds the first free channel to
// an asset, and Stop returns it to the free list with all parameters
// reset. Channels reference assets by id and never own them; an asset
// must not be unloaded while a channel still references it.
//
// # Output variants
//
// Targets with hardware voice mixing skip the Mixer entirely and instead
// drain per-channel state deltas through Pool.DrainVoiceUpdates, handing
// them to a VoiceSink. Software-mixed targets call Mixer.MixFrame and
// submit the result to a Sink.
package audio
