// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"errors"
	"testing"

	"github.com/nv8/chanmix/audio"
)

func TestSink_RecordsFrames(t *testing.T) {
	t.Parallel()

	s := NewSink()
	if err := s.SubmitFrame([]int16{1, 2, 3, 4}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}
	if err := s.SubmitFrame([]int16{5, 6}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}

	if got := s.Frames(); got != 2 {
		t.Errorf("Frames() = %d, want 2", got)
	}
	want := []int16{1, 2, 3, 4, 5, 6}
	got := s.PCM()
	if len(got) != len(want) {
		t.Fatalf("PCM() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PCM()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSink_Reset(t *testing.T) {
	t.Parallel()

	s := NewSink()
	if err := s.SubmitFrame([]int16{1, 2}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}
	s.Reset()

	if s.Frames() != 0 || len(s.PCM()) != 0 {
		t.Errorf("after Reset: Frames() = %d, PCM() len = %d, want both 0", s.Frames(), len(s.PCM()))
	}
	if err := s.SubmitFrame([]int16{3}); err != nil {
		t.Errorf("SubmitFrame() after Reset error = %v", err)
	}
}

func TestSink_Close(t *testing.T) {
	t.Parallel()

	s := NewSink()
	if err := s.SubmitFrame([]int16{9, 9}); err != nil {
		t.Fatalf("SubmitFrame() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := s.SubmitFrame([]int16{1}); !errors.Is(err, ErrClosed) {
		t.Errorf("SubmitFrame() after Close error = %v, want ErrClosed", err)
	}
	// Captured data survives Close.
	if len(s.PCM()) != 2 {
		t.Errorf("PCM() len after Close = %d, want 2", len(s.PCM()))
	}
}

func TestVoiceLog_RecordsBatches(t *testing.T) {
	t.Parallel()

	v := NewVoiceLog()
	batch := []audio.VoiceUpdate{
		{Channel: 0, State: audio.Playing, Pitch: 1.5},
		{Channel: 2, State: audio.Stopped},
	}
	if err := v.SubmitVoices(batch); err != nil {
		t.Fatalf("SubmitVoices() error = %v", err)
	}
	if err := v.SubmitVoices([]audio.VoiceUpdate{{Channel: 1}}); err != nil {
		t.Fatalf("SubmitVoices() error = %v", err)
	}

	if got := v.Batches(); got != 2 {
		t.Errorf("Batches() = %d, want 2", got)
	}
	updates := v.Updates()
	if len(updates) != 3 {
		t.Fatalf("Updates() len = %d, want 3", len(updates))
	}
	if updates[0].Pitch != 1.5 {
		t.Errorf("Updates()[0].Pitch = %v, want 1.5", updates[0].Pitch)
	}
	if updates[2].Channel != 1 {
		t.Errorf("Updates()[2].Channel = %d, want 1", updates[2].Channel)
	}

	if err := v.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := v.SubmitVoices(batch); !errors.Is(err, ErrClosed) {
		t.Errorf("SubmitVoices() after Close error = %v, want ErrClosed", err)
	}
}
