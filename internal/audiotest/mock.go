// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates int16 PCM for testing. It
// implements the audio.Source interface (without importing it to avoid
// cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame, channel int) int16
}

// NewMockSource creates a mock audio source. totalFrames is the number of
// frames (samples per channel) to generate; waveform produces each value.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewConstantSource creates a mock source holding one constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		return value
	})
}

// NewSineSource creates a mock source generating a sine wave at amp peak.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64, amp int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(float64(amp) * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewRampSource creates a mock source whose value equals the frame index,
// handy for cursor assertions.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		return int16(frame)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be drained again.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadPCM(dst []int16) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesRequested := len(dst) / m.channels
	framesToWrite := min(framesRequested, m.totalFrames-m.generated)

	for frame := 0; frame < framesToWrite; frame++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += framesToWrite
	written := framesToWrite * m.channels

	if m.generated >= m.totalFrames {
		return written, io.EOF
	}
	return written, nil
}
