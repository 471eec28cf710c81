// SPDX-License-Identifier: EPL-2.0

// Package oto plays the software mix on the host's sound device through
// github.com/ebitengine/oto/v3. It is the "native" port's output backend
// and doubles as the development listen path for every other port.
//
// oto pulls samples from its own playback goroutine while the game loop
// pushes one mixed buffer per tick, so the sink decouples the two with a
// mutex-guarded ring buffer. Underflow plays silence; overflow drops the
// oldest frames. The core never blocks on either.
package oto

import (
	"fmt"
	"sync"

	oto "github.com/ebitengine/oto/v3"

	"github.com/nv8/chanmix/audio"
)

// Sink is an audio.Sink backed by an oto playback context.
type Sink struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	ring    []byte
	start   int
	length  int
	dropped uint64
	closed  bool
}

// NewSink opens the host audio device at sampleRate and starts playback.
// bufferFrames sets the ring capacity; 4–8 mix frames of headroom is
// plenty before added latency is audible.
func NewSink(sampleRate, bufferFrames int) (*Sink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening oto context: %w", err)
	}
	<-ready

	if bufferFrames < 1 {
		bufferFrames = 4096
	}
	s := &Sink{
		ctx:  ctx,
		ring: make([]byte, bufferFrames*4), // 2 channels * 2 bytes
	}
	s.player = ctx.NewPlayer(s)
	s.player.Play()
	return s, nil
}

// SubmitFrame queues an interleaved stereo buffer for playback.
func (s *Sink) SubmitFrame(pcm []int16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("oto sink closed")
	}

	need := len(pcm) * 2
	if need > len(s.ring) {
		return fmt.Errorf("mix frame of %d bytes exceeds ring capacity %d", need, len(s.ring))
	}

	// Drop oldest data when the device has fallen behind.
	for len(s.ring)-s.length < need {
		s.start = (s.start + 4) % len(s.ring)
		s.length -= 4
		s.dropped++
	}

	for _, v := range pcm {
		pos := (s.start + s.length) % len(s.ring)
		s.ring[pos] = byte(v)
		s.ring[(pos+1)%len(s.ring)] = byte(uint16(v) >> 8)
		s.length += 2
	}
	return nil
}

// Read supplies PCM to the oto playback goroutine, padding with silence
// on underflow. Implements io.Reader.
func (s *Sink) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stay frame-aligned so a partial read cannot shear the L/R pairs.
	n := min(len(p), s.length)
	n -= n % 4
	for i := 0; i < n; i++ {
		p[i] = s.ring[(s.start+i)%len(s.ring)]
	}
	s.start = (s.start + n) % len(s.ring)
	s.length -= n

	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

// Dropped returns the count of samples discarded to overflow.
func (s *Sink) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Close stops playback and releases the device.
func (s *Sink) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.player.Close()
}

var _ audio.Sink = (*Sink)(nil)
