// SPDX-License-Identifier: EPL-2.0

// Package gen produces procedural audio.Source streams: sine, square, saw
// and noise tones with a linear attack/release envelope. Ports lean on
// these as placeholder content while real assets are still in the art
// pipeline, and the engine drone commonly ships as a looped generated
// tone.
package gen
