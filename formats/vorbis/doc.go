// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into audio.Source streams.
//
// This package uses github.com/jfreymuth/oggvorbis for decoding. Float
// output from the decoder is converted to the int16 scale shared by all
// asset sources.
package vorbis
