// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into audio.Source streams.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// Output is always stereo interleaved int16; go-mp3 upmixes mono input.
package mp3
