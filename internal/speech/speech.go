// Package speech models the client-side read-aloud channel: a single shared
// speech slot where at most one utterance is audible at a time. Starting a
// new utterance always cancels the previous one; pause/resume only applies
// to the utterance that is currently active.
package speech

import "sync"

type State int

const (
	Idle State = iota
	Speaking
	Paused
)

func (s State) String() string {
	switch s {
	case Speaking:
		return "speaking"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Handle controls one in-flight utterance.
type Handle interface {
	Pause() error
	Resume() error
	Cancel() error
	// Done is closed when the utterance finishes or is cancelled.
	Done() <-chan struct{}
}

// Synthesizer starts speaking the given text and returns a control handle.
type Synthesizer interface {
	Start(text string) (Handle, error)
}

// Controller owns the single active-utterance slot.
type Controller struct {
	mu       sync.Mutex
	synth    Synthesizer
	active   Handle
	activeID string
	paused   bool
}

func NewController(synth Synthesizer) *Controller {
	return &Controller{synth: synth}
}

// Speak cancels any in-flight utterance, then starts reading text for the
// record identified by id. The returned channel closes when the utterance
// finishes or is superseded.
func (c *Controller) Speak(id, text string) (<-chan struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		_ = c.active.Cancel()
		c.clearLocked()
	}

	h, err := c.synth.Start(text)
	if err != nil {
		return nil, err
	}
	c.active = h
	c.activeID = id
	c.paused = false

	go func() {
		<-h.Done()
		c.mu.Lock()
		if c.active == h {
			c.clearLocked()
		}
		c.mu.Unlock()
	}()

	return h.Done(), nil
}

// PauseOrResume toggles speaking and paused for the record's utterance.
// It is a no-op when id does not own the active utterance. The returned
// state is the record's state after the call.
func (c *Controller) PauseOrResume(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil || c.activeID != id {
		return c.stateOfLocked(id)
	}

	if c.paused {
		if err := c.active.Resume(); err == nil {
			c.paused = false
		}
	} else {
		if err := c.active.Pause(); err == nil {
			c.paused = true
		}
	}
	return c.stateOfLocked(id)
}

// Stop cancels whatever is playing.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		_ = c.active.Cancel()
		c.clearLocked()
	}
}

// StateOf reports the record's playback state.
func (c *Controller) StateOf(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateOfLocked(id)
}

// Active returns the id owning the speech slot, or "" when idle.
func (c *Controller) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeID
}

func (c *Controller) stateOfLocked(id string) State {
	if c.active == nil || c.activeID != id {
		return Idle
	}
	if c.paused {
		return Paused
	}
	return Speaking
}

func (c *Controller) clearLocked() {
	c.active = nil
	c.activeID = ""
	c.paused = false
}
