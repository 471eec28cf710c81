// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a stream of interleaved signed 16-bit PCM samples. Format
// decoders and procedural generators implement it; the Registry drains
// one to build a SoundAsset.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadPCM fills dst with interleaved int16 samples. Returns the number
	// of samples written (not frames). When n == 0 with err == io.EOF, the
	// stream is finished.
	ReadPCM(dst []int16) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
