// SPDX-License-Identifier: EPL-2.0

package oto

import "testing"

// newRingSink builds a sink around the ring buffer alone; opening a real
// device is not possible on CI hosts.
func newRingSink(bufferFrames int) *Sink {
	return &Sink{ring: make([]byte, bufferFrames*4)}
}

func TestSink_SubmitThenRead(t *testing.T) {
	t.Parallel()

	s := newRingSink(16)
	if err := s.SubmitFrame([]int16{0x0102, -2, 100, -100}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}

	p := make([]byte, 8)
	n, err := s.Read(p)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 8 {
		t.Fatalf("Read() n = %d, want 8", n)
	}
	// Little-endian: 0x0102 is bytes 02 01.
	if p[0] != 0x02 || p[1] != 0x01 {
		t.Errorf("first sample bytes = %#x %#x, want 0x02 0x01", p[0], p[1])
	}
	if p[2] != 0xfe || p[3] != 0xff {
		t.Errorf("second sample bytes = %#x %#x, want 0xfe 0xff", p[2], p[3])
	}
}

func TestSink_UnderflowPadsSilence(t *testing.T) {
	t.Parallel()

	s := newRingSink(16)
	if err := s.SubmitFrame([]int16{1000, 1000}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}

	p := make([]byte, 16)
	for i := range p {
		p[i] = 0xaa
	}
	n, err := s.Read(p)
	if err != nil || n != 16 {
		t.Fatalf("Read() = %d, %v, want 16, nil", n, err)
	}
	for i := 4; i < 16; i++ {
		if p[i] != 0 {
			t.Errorf("p[%d] = %#x past buffered data, want 0", i, p[i])
		}
	}
}

func TestSink_ReadStaysFrameAligned(t *testing.T) {
	t.Parallel()

	s := newRingSink(16)
	if err := s.SubmitFrame([]int16{1, 2, 3, 4}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}

	// A 6-byte read covers one frame and a half; only the whole frame
	// may be consumed.
	p := make([]byte, 6)
	if _, err := s.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	// The second frame (samples 3,4) must still be intact.
	rest := make([]byte, 4)
	if _, err := s.Read(rest); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if rest[0] != 3 || rest[2] != 4 {
		t.Errorf("second frame bytes = %v, want samples 3 and 4", rest)
	}
}

func TestSink_OverflowDropsOldest(t *testing.T) {
	t.Parallel()

	s := newRingSink(2)
	if err := s.SubmitFrame([]int16{1, 1, 2, 2}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}
	if err := s.SubmitFrame([]int16{3, 3}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}
	if s.Dropped() == 0 {
		t.Error("Dropped() = 0 after overflow, want > 0")
	}

	p := make([]byte, 8)
	if _, err := s.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if p[0] != 2 || p[4] != 3 {
		t.Errorf("frames after overflow = %v, want samples 2 then 3", p)
	}
}

func TestSink_RejectsOversizedFrame(t *testing.T) {
	t.Parallel()

	s := newRingSink(2)
	if err := s.SubmitFrame(make([]int16, 6)); err == nil {
		t.Error("SubmitFrame() over ring capacity error = nil, want error")
	}
}
