// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files into audio.Source streams and writes
// 16-bit PCM WAV files. It uses the github.com/go-audio library for
// robust WAV file handling.
//
// The writer side exists so a captured software mix can be dumped to disk
// for inspection:
//
//	var mix []int16 // from sinks/capture
//	f, _ := os.Create("mix.wav")
//	wav.WritePCM16(f, 44100, 2, mix)
package wav
