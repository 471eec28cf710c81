// SPDX-License-Identifier: EPL-2.0

// Package psg adapts the engine-sound synthesizer to SN76489-style
// programmable sound generators (Game Boy, Game Gear, Master System era).
// These chips have no continuous pitch: a tone channel divides the input
// clock by a 10-bit register, so frequency arrives quantized. The package
// implements audio.FrequencySink over a register-write callback supplied
// by the platform backend.
package psg

import (
	"fmt"

	"github.com/nv8/chanmix/audio"
)

// Standard NTSC PSG input clock in Hz.
const DefaultClock = 3579545.0

// Tone register limits. A divider of 0 is chip-dependent undefined
// behavior, so the sink never emits it.
const (
	minToneReg = 1
	maxToneReg = 1023
)

// RegisterWriter receives quantized tone-register values. The platform
// backend translates them into PSG port writes.
type RegisterWriter interface {
	WriteTone(voice int, reg uint16)
}

// RegisterWriterFunc adapts a function to RegisterWriter.
type RegisterWriterFunc func(voice int, reg uint16)

func (f RegisterWriterFunc) WriteTone(voice int, reg uint16) { f(voice, reg) }

// Sink quantizes requested frequencies to PSG tone registers:
// reg = clock / (32 * hz), clamped to the 10-bit range.
type Sink struct {
	clock  float64
	voices int
	w      RegisterWriter
	last   []uint16
}

// NewSink creates a sink for a chip with voices tone channels running at
// clock Hz. clock <= 0 selects DefaultClock.
func NewSink(w RegisterWriter, voices int, clock float64) *Sink {
	if clock <= 0 {
		clock = DefaultClock
	}
	if voices < 1 {
		voices = 1
	}
	return &Sink{
		clock:  clock,
		voices: voices,
		w:      w,
		last:   make([]uint16, voices),
	}
}

// SetToneFrequency quantizes hz to the channel's tone register and writes
// it. Repeated requests that land on the same register are suppressed;
// register writes are not free on these buses.
func (s *Sink) SetToneFrequency(id audio.ChannelID, hz float64) error {
	voice := int(id)
	if voice < 0 || voice >= s.voices {
		return fmt.Errorf("%w: voice %d of %d", audio.ErrInvalidChannel, voice, s.voices)
	}
	if hz <= 0 {
		return fmt.Errorf("tone frequency must be positive, got %v", hz)
	}

	reg := ToneRegister(s.clock, hz)
	if s.last[voice] == reg {
		return nil
	}
	s.last[voice] = reg
	s.w.WriteTone(voice, reg)
	return nil
}

// LastRegister returns the most recent register written for voice.
func (s *Sink) LastRegister(voice int) uint16 {
	if voice < 0 || voice >= s.voices {
		return 0
	}
	return s.last[voice]
}

// ToneRegister converts a frequency to the 10-bit divider for a chip at
// clock Hz.
func ToneRegister(clock, hz float64) uint16 {
	n := int(clock/(32.0*hz) + 0.5)
	if n < minToneReg {
		n = minToneReg
	}
	if n > maxToneReg {
		n = maxToneReg
	}
	return uint16(n)
}

// EffectiveHz returns the frequency the chip actually produces for a
// register value, the quantized neighbor of the requested frequency.
func EffectiveHz(clock float64, reg uint16) float64 {
	if reg == 0 {
		reg = minToneReg
	}
	return clock / (32.0 * float64(reg))
}

var _ audio.FrequencySink = (*Sink)(nil)
