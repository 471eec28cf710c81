// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/nv8/chanmix/audio"
)

// wavReader is the slice of gowav.Decoder we use, kept as an interface so
// tests can substitute a fake.
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	bitDepth   int
	format     *goaudio.Format
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadPCM(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil {
			return 0, fmt.Errorf("reading wav pcm: %w", err)
		}
		return 0, io.EOF
	}

	// go-audio hands back machine ints at the file's bit depth; shift
	// 8-bit data up so every asset lands on the same int16 scale.
	shift := 0
	if s.bitDepth == 8 {
		shift = 8
	}
	for i := 0; i < n; i++ {
		dst[i] = int16(s.intBuf.Data[i] << shift)
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("reading wav pcm: %w", err)
	}
	return n, nil
}

// Decoder decodes PCM WAV files via github.com/go-audio/wav.
type Decoder struct{}

// Decode validates the RIFF layout and returns a Source of interleaved
// int16 samples. Only 8- and 16-bit PCM are supported.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs seeking; buffer non-seekable inputs in memory.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = &memSeeker{data: data}
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()

	if dec.WavAudioFormat != 1 {
		return nil, ErrUnsupportedWavLayout
	}
	if dec.BitDepth != 8 && dec.BitDepth != 16 {
		return nil, ErrUnsupportedBitDepth
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
		format:     format,
	}, nil
}

// memSeeker implements io.ReadSeeker over in-memory data.
type memSeeker struct {
	data   []byte
	offset int64
}

func (m *memSeeker) Read(p []byte) (int, error) {
	if m.offset >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.offset:])
	m.offset += int64(n)
	return n, nil
}

func (m *memSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = m.offset + offset
	case io.SeekEnd:
		next = int64(len(m.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position")
	}
	m.offset = next
	return next, nil
}
