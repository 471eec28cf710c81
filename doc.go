// SPDX-License-Identifier: EPL-2.0

// Package chanmix is the shared audio core for console game ports: a
// fixed pool of playback channels, a sound-asset registry, a software PCM
// mixer for targets without hardware summing, and an engine-RPM pitch
// synthesizer. Each platform port supplies only an output sink; the
// channel model lives here once instead of being reimplemented per SDK.
//
// # Quick Start
//
// Construct an Engine, load assets, and drive it once per game tick:
//
//	sink := capture.NewSink() // or sinks/oto, sinks/speaker
//	eng := chanmix.New(chanmix.DefaultConfig(), sink)
//
//	id, _ := chanmix.LoadFile(eng.Registry(), "skid.wav")
//	ch, _ := eng.Pool().Play(id, 0.8, -0.3, false)
//	_ = ch
//
//	for running {
//		eng.Tick()
//	}
//
// # Engine drone
//
// The racing-engine drone binds a looped channel and follows the
// simulated RPM:
//
//	tone := gen.NewTone(gen.Sine, 110, 44100, 1.0, 0.6)
//	id, _ := eng.Registry().Load(tone)
//	ch, _ := eng.Pool().Play(id, 0.7, 0, true)
//	eng.EngineSound().Bind(ch)
//
//	// per tick, before eng.Tick():
//	eng.EngineSound().SetParams(rpm/maxRPM, load)
//
// # Supported Formats
//
// Asset sources decode the following audio formats:
//   - WAV (PCM 8/16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//   - Procedural tones via formats/gen
//
// # Output Variants
//
// Software-mixed targets receive one interleaved stereo int16 buffer per
// tick through audio.Sink (sinks/oto, sinks/speaker, sinks/capture).
// Hardware-voice targets instead receive per-channel state deltas through
// audio.VoiceSink, and frequency-quantized PSG chips plug the engine
// drone through sinks/psg.
//
// # Threading
//
// The core is single-threaded: one game-loop tick calls the
// engine-pitch update and the mix. Sinks that feed asynchronous devices
// buffer internally. Nothing in this module is safe for concurrent use
// without external synchronization.
package chanmix
