package speech

import (
	"sync"
	"testing"
	"time"
)

// scriptedSynth records every lifecycle call and lets the test finish
// utterances manually.
type scriptedSynth struct {
	mu      sync.Mutex
	handles []*scriptedHandle
}

type scriptedHandle struct {
	mu        sync.Mutex
	text      string
	paused    bool
	resumed   int
	cancelled bool
	done      chan struct{}
}

func (s *scriptedSynth) Start(text string) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &scriptedHandle{text: text, done: make(chan struct{})}
	s.handles = append(s.handles, h)
	return h, nil
}

func (s *scriptedSynth) last() *scriptedHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handles[len(s.handles)-1]
}

func (h *scriptedHandle) Pause() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paused = true
	return nil
}

func (h *scriptedHandle) Resume() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paused = false
	h.resumed++
	return nil
}

func (h *scriptedHandle) Cancel() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.cancelled {
		h.cancelled = true
		close(h.done)
	}
	return nil
}

func (h *scriptedHandle) finish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.cancelled {
		h.cancelled = true
		close(h.done)
	}
}

func (h *scriptedHandle) isCancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}

func (h *scriptedHandle) Done() <-chan struct{} { return h.done }

func waitState(t *testing.T, c *Controller, id string, want State) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		if c.StateOf(id) == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("state of %q never became %v (got %v)", id, want, c.StateOf(id))
		case <-time.After(time.Millisecond):
		}
	}
}

func TestSpeakThenFinishReturnsToIdle(t *testing.T) {
	synth := &scriptedSynth{}
	c := NewController(synth)

	done, err := c.Speak("fb1", "Great course")
	if err != nil {
		t.Fatalf("speak: %v", err)
	}
	if got := c.StateOf("fb1"); got != Speaking {
		t.Fatalf("expected speaking, got %v", got)
	}

	synth.last().finish()
	<-done
	waitState(t, c, "fb1", Idle)
	if c.Active() != "" {
		t.Fatalf("expected empty active slot, got %q", c.Active())
	}
}

func TestSpeakCancelsInFlightUtterance(t *testing.T) {
	synth := &scriptedSynth{}
	c := NewController(synth)

	if _, err := c.Speak("fb1", "first"); err != nil {
		t.Fatalf("speak fb1: %v", err)
	}
	first := synth.last()

	if _, err := c.Speak("fb2", "second"); err != nil {
		t.Fatalf("speak fb2: %v", err)
	}

	if !first.isCancelled() {
		t.Fatal("starting fb2 must cancel fb1's utterance")
	}
	if got := c.StateOf("fb1"); got != Idle {
		t.Fatalf("fb1 should be idle, got %v", got)
	}
	if got := c.StateOf("fb2"); got != Speaking {
		t.Fatalf("fb2 should be speaking, got %v", got)
	}
	if len(synth.handles) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(synth.handles))
	}
}

func TestPauseResumeToggle(t *testing.T) {
	synth := &scriptedSynth{}
	c := NewController(synth)

	if _, err := c.Speak("fb1", "text"); err != nil {
		t.Fatalf("speak: %v", err)
	}

	if got := c.PauseOrResume("fb1"); got != Paused {
		t.Fatalf("expected paused, got %v", got)
	}
	if !synth.last().paused {
		t.Fatal("engine never received pause")
	}

	if got := c.PauseOrResume("fb1"); got != Speaking {
		t.Fatalf("expected speaking after resume, got %v", got)
	}
	if synth.last().resumed != 1 {
		t.Fatalf("expected one resume, got %d", synth.last().resumed)
	}
}

func TestPauseIgnoredForInactiveRecord(t *testing.T) {
	synth := &scriptedSynth{}
	c := NewController(synth)

	if _, err := c.Speak("fb1", "text"); err != nil {
		t.Fatalf("speak: %v", err)
	}

	if got := c.PauseOrResume("fb2"); got != Idle {
		t.Fatalf("inactive record must stay idle, got %v", got)
	}
	if got := c.StateOf("fb1"); got != Speaking {
		t.Fatalf("active utterance must be unaffected, got %v", got)
	}
	if synth.last().paused {
		t.Fatal("engine must not receive pause for an inactive record")
	}
}

func TestSpeakWhilePausedStartsFresh(t *testing.T) {
	synth := &scriptedSynth{}
	c := NewController(synth)

	if _, err := c.Speak("fb1", "text"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	c.PauseOrResume("fb1")
	paused := synth.last()

	if _, err := c.Speak("fb1", "text"); err != nil {
		t.Fatalf("re-speak: %v", err)
	}
	if !paused.isCancelled() {
		t.Fatal("paused utterance must be cancelled by a new speak")
	}
	if got := c.StateOf("fb1"); got != Speaking {
		t.Fatalf("expected speaking, got %v", got)
	}
}

func TestStop(t *testing.T) {
	synth := &scriptedSynth{}
	c := NewController(synth)

	if _, err := c.Speak("fb1", "text"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	c.Stop()

	if !synth.last().isCancelled() {
		t.Fatal("stop must cancel the active utterance")
	}
	if got := c.StateOf("fb1"); got != Idle {
		t.Fatalf("expected idle after stop, got %v", got)
	}
}
