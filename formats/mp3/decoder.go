// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/nv8/chanmix/audio"
)

// mp3Reader is the slice of gomp3.Decoder we use, kept as an interface so
// tests can substitute a fake.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }

// Channels is always 2: go-mp3 upmixes mono streams to stereo.
func (s *source) Channels() int { return 2 }

func (s *source) Close() error { return nil }

func (s *source) ReadPCM(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// go-mp3 returns 16-bit little-endian PCM bytes, two per sample.
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("reading mp3 pcm: %w", err)
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		lo := uint16(s.buf[2*i])
		hi := uint16(s.buf[2*i+1])
		dst[i] = int16(lo | hi<<8)
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("reading mp3 pcm: %w", err)
	}
	return samples, err
}

// Decoder decodes MP3 files via github.com/hajimehoshi/go-mp3.
type Decoder struct{}

// Decode returns a stereo Source of interleaved int16 samples.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMp3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
	}, nil
}
