// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio.Source streams.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
package aiff
