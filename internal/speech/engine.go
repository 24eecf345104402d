package speech

import (
	"errors"
	"os/exec"
	"sync"
	"syscall"
)

// ErrNoEngine means no speech synthesis binary was found on PATH.
var ErrNoEngine = errors.New("no speech synthesis engine available")

// speechCommands, in preference order. espeak-ng and espeak on Linux,
// say on macOS.
var speechCommands = []string{"espeak-ng", "espeak", "say"}

// ExecEngine synthesizes speech by shelling out to a local TTS binary.
// Pause and resume map to SIGSTOP/SIGCONT on the child process.
type ExecEngine struct {
	binary string
}

func NewExecEngine() (*ExecEngine, error) {
	for _, name := range speechCommands {
		if path, err := exec.LookPath(name); err == nil {
			return &ExecEngine{binary: path}, nil
		}
	}
	return nil, ErrNoEngine
}

func (e *ExecEngine) Start(text string) (Handle, error) {
	cmd := exec.Command(e.binary, text)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	h := &execHandle{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go func() {
		_ = cmd.Wait()
		close(h.done)
	}()
	return h, nil
}

type execHandle struct {
	cmd  *exec.Cmd
	done chan struct{}

	mu       sync.Mutex
	finished bool
}

func (h *execHandle) signal(sig syscall.Signal) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.done:
		return nil
	default:
	}
	return h.cmd.Process.Signal(sig)
}

func (h *execHandle) Pause() error  { return h.signal(syscall.SIGSTOP) }
func (h *execHandle) Resume() error { return h.signal(syscall.SIGCONT) }

func (h *execHandle) Cancel() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.done:
		return nil
	default:
	}
	// SIGCONT first so a paused process can actually die
	_ = h.cmd.Process.Signal(syscall.SIGCONT)
	return h.cmd.Process.Kill()
}

func (h *execHandle) Done() <-chan struct{} { return h.done }
