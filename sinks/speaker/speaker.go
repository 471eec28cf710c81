// SPDX-License-Identifier: EPL-2.0

// Package speaker plays the software mix through github.com/gopxl/beep.
// It exists for hosts that already run a beep mixer for music streaming:
// the game's channel mix joins the speaker as one more beep.Streamer
// instead of opening a second audio device.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	bspeaker "github.com/gopxl/beep/speaker"

	"github.com/nv8/chanmix/audio"
)

// Sink is an audio.Sink that exposes the submitted mix as a beep.Streamer.
type Sink struct {
	sampleRate int
	standalone bool

	mu     sync.Mutex
	ring   [][2]float64
	start  int
	length int
	closed bool
}

// NewSink creates a sink buffering up to bufferFrames stereo frames.
// Attach it to an existing beep mixer with Streamer.
func NewSink(sampleRate, bufferFrames int) *Sink {
	if bufferFrames < 1 {
		bufferFrames = 4096
	}
	return &Sink{
		sampleRate: sampleRate,
		ring:       make([][2]float64, bufferFrames),
	}
}

// Open creates a sink and starts it on the beep speaker directly, for
// hosts with no beep pipeline of their own.
func Open(sampleRate, bufferFrames int) (*Sink, error) {
	s := NewSink(sampleRate, bufferFrames)
	sr := beep.SampleRate(sampleRate)
	if err := bspeaker.Init(sr, sr.N(time.Millisecond*50)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	bspeaker.Play(s)
	s.standalone = true
	return s, nil
}

// SubmitFrame queues an interleaved stereo int16 buffer. Oldest frames
// are dropped on overflow; the core never blocks.
func (s *Sink) SubmitFrame(pcm []int16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("speaker sink closed")
	}

	frames := len(pcm) / 2
	if frames > len(s.ring) {
		return fmt.Errorf("mix frame of %d frames exceeds ring capacity %d", frames, len(s.ring))
	}

	for len(s.ring)-s.length < frames {
		s.start = (s.start + 1) % len(s.ring)
		s.length--
	}

	const scale = 1.0 / 32768.0
	for f := 0; f < frames; f++ {
		pos := (s.start + s.length) % len(s.ring)
		s.ring[pos][0] = float64(pcm[2*f]) * scale
		s.ring[pos][1] = float64(pcm[2*f+1]) * scale
		s.length++
	}
	return nil
}

// Stream supplies buffered frames to beep, padding with silence on
// underflow. Implements beep.Streamer.
func (s *Sink) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, false
	}

	n := min(len(samples), s.length)
	for i := 0; i < n; i++ {
		samples[i] = s.ring[(s.start+i)%len(s.ring)]
	}
	s.start = (s.start + n) % len(s.ring)
	s.length -= n

	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (s *Sink) Err() error { return nil }

// Close stops the stream. A standalone sink leaves the beep speaker
// itself running; beep has no teardown for it.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var (
	_ audio.Sink    = (*Sink)(nil)
	_ beep.Streamer = (*Sink)(nil)
)
