// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/nv8/chanmix/audio"
	"github.com/nv8/chanmix/utils"
)

// oggReader is the slice of oggvorbis.Reader we use, kept as an interface
// so tests can substitute a fake.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	floatBuf   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadPCM(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.floatBuf) < len(dst) {
		s.floatBuf = make([]float32, len(dst))
	}
	s.floatBuf = s.floatBuf[:len(dst)]

	// oggvorbis returns interleaved float32 in [-1,1].
	n, err := s.dec.Read(s.floatBuf)
	if n == 0 {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("reading vorbis pcm: %w", err)
		}
		return 0, nil
	}

	for i := 0; i < n; i++ {
		dst[i] = utils.Float32ToInt16(s.floatBuf[i])
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("reading vorbis pcm: %w", err)
	}
	return n, err
}

// Decoder decodes Ogg Vorbis files via github.com/jfreymuth/oggvorbis.
type Decoder struct{}

// Decode returns a Source of interleaved int16 samples.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotOggFile, err)
	}

	channels := dec.Channels()
	if channels < 1 || channels > 2 {
		return nil, ErrUnsupportedChannels
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   channels,
	}, nil
}
