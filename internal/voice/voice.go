// Package voice speaks Spanish text through the platform's TTS command
// (espeak-ng, espeak or macOS say). Speaking never blocks the caller; a new
// utterance cuts off the previous one.
package voice

import (
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Engine is one TTS command and how to call it.
type Engine struct {
	Name string
	Args func(text string) []string
}

// Engines lists the supported commands in preference order.
var Engines = []Engine{
	{Name: "espeak-ng", Args: espeakArgs},
	{Name: "espeak", Args: espeakArgs},
	{Name: "say", Args: func(text string) []string { return []string{"-r", "160", text} }},
}

// espeakArgs selects Spanish at 150 wpm, 0.85 of the default rate.
func espeakArgs(text string) []string {
	return []string{"-v", "es", "-s", "150", text}
}

// Process is a started utterance.
type Process interface {
	Wait() error
	Kill() error
}

// Starter launches a command.
type Starter func(name string, args ...string) (Process, error)

type cmdProcess struct{ cmd *exec.Cmd }

func (p cmdProcess) Wait() error { return p.cmd.Wait() }
func (p cmdProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

func startCommand(name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmdProcess{cmd: cmd}, nil
}

// Voice implements the speech half of core.Feedback.
type Voice struct {
	mu      sync.Mutex
	engine  *Engine
	start   Starter
	current Process
	logger  *log.Logger
	wg      sync.WaitGroup
}

// New picks the first installed engine. With none installed the voice is
// mute and Available reports false.
func New(logger *log.Logger) *Voice {
	if logger == nil {
		logger = log.Default()
	}
	v := &Voice{start: startCommand, logger: logger}
	for i := range Engines {
		if _, err := exec.LookPath(Engines[i].Name); err == nil {
			v.engine = &Engines[i]
			break
		}
	}
	if v.engine == nil {
		logger.Warn("no speech engine found, voice disabled")
	}
	return v
}

// NewWith uses a fixed engine and starter. Used by tests and embedders.
func NewWith(e Engine, start Starter, logger *log.Logger) *Voice {
	if logger == nil {
		logger = log.Default()
	}
	return &Voice{engine: &e, start: start, logger: logger}
}

// Available reports whether an engine was found.
func (v *Voice) Available() bool { return v.engine != nil }

// Engine returns the engine name, or "" when mute.
func (v *Voice) Engine() string {
	if v.engine == nil {
		return ""
	}
	return v.engine.Name
}

// Speak says text in lower case, cancelling any utterance still playing.
func (v *Voice) Speak(text string) {
	text = strings.TrimSpace(text)
	if v.engine == nil || text == "" {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopLocked()

	p, err := v.start(v.engine.Name, v.engine.Args(strings.ToLower(text))...)
	if err != nil {
		v.logger.Warn("speech failed", "engine", v.engine.Name, "err", err)
		return
	}
	v.current = p
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		p.Wait()
		v.mu.Lock()
		if v.current == p {
			v.current = nil
		}
		v.mu.Unlock()
	}()
}

func (v *Voice) stopLocked() {
	if v.current != nil {
		v.current.Kill()
		v.current = nil
	}
}

// Stop cuts off the current utterance.
func (v *Voice) Stop() {
	v.mu.Lock()
	v.stopLocked()
	v.mu.Unlock()
}

// Close stops speech and waits for the background waiters.
func (v *Voice) Close() {
	v.Stop()
	v.wg.Wait()
}
