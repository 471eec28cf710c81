// SPDX-License-Identifier: EPL-2.0

// Package capture provides in-memory output sinks for headless operation:
// tests, CI, and dumping a software mix to disk via formats/wav.
package capture

import (
	"errors"

	"github.com/nv8/chanmix/audio"
)

// ErrClosed reports a submit after Close.
var ErrClosed = errors.New("capture sink closed")

// Sink records every submitted software-mixed frame.
type Sink struct {
	pcm    []int16
	frames int
	closed bool
}

// NewSink creates an empty capture sink.
func NewSink() *Sink {
	return &Sink{}
}

// SubmitFrame appends the interleaved stereo buffer to the capture.
func (s *Sink) SubmitFrame(pcm []int16) error {
	if s.closed {
		return ErrClosed
	}
	s.pcm = append(s.pcm, pcm...)
	s.frames++
	return nil
}

// Close marks the sink closed. Captured data stays readable.
func (s *Sink) Close() error {
	s.closed = true
	return nil
}

// PCM returns all captured interleaved stereo samples.
func (s *Sink) PCM() []int16 { return s.pcm }

// Frames returns the number of SubmitFrame calls recorded.
func (s *Sink) Frames() int { return s.frames }

// Reset discards the capture without closing the sink.
func (s *Sink) Reset() {
	s.pcm = s.pcm[:0]
	s.frames = 0
}

// VoiceLog records every voice-update batch for hardware-voice targets.
type VoiceLog struct {
	updates []audio.VoiceUpdate
	batches int
	closed  bool
}

// NewVoiceLog creates an empty voice-update log.
func NewVoiceLog() *VoiceLog {
	return &VoiceLog{}
}

// SubmitVoices appends the batch to the log.
func (v *VoiceLog) SubmitVoices(updates []audio.VoiceUpdate) error {
	if v.closed {
		return ErrClosed
	}
	v.updates = append(v.updates, updates...)
	v.batches++
	return nil
}

// Close marks the log closed. Logged data stays readable.
func (v *VoiceLog) Close() error {
	v.closed = true
	return nil
}

// Updates returns every logged voice update in submission order.
func (v *VoiceLog) Updates() []audio.VoiceUpdate { return v.updates }

// Batches returns the number of SubmitVoices calls recorded.
func (v *VoiceLog) Batches() int { return v.batches }

var (
	_ audio.Sink      = (*Sink)(nil)
	_ audio.VoiceSink = (*VoiceLog)(nil)
)
