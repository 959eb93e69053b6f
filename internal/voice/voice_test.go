package voice

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

type fakeProcess struct {
	once   sync.Once
	done   chan struct{}
	killed bool
}

func newFake() *fakeProcess { return &fakeProcess{done: make(chan struct{})} }

func (p *fakeProcess) Wait() error {
	<-p.done
	return nil
}

func (p *fakeProcess) Kill() error {
	p.killed = true
	p.finish()
	return nil
}

func (p *fakeProcess) finish() { p.once.Do(func() { close(p.done) }) }

type recorder struct {
	mu    sync.Mutex
	calls [][]string
	procs []*fakeProcess
	fail  bool
}

func (r *recorder) start(name string, args ...string) (Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errors.New("not installed")
	}
	r.calls = append(r.calls, append([]string{name}, args...))
	p := newFake()
	r.procs = append(r.procs, p)
	return p, nil
}

func TestSpeakLowercasesAndUsesSpanish(t *testing.T) {
	r := &recorder{}
	v := NewWith(Engines[0], r.start, nil)
	v.Speak("  VACA ")
	r.procs[0].finish()
	v.Close()

	want := []string{"espeak-ng", "-v", "es", "-s", "150", "vaca"}
	if len(r.calls) != 1 || !slices.Equal(r.calls[0], want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
}

func TestSpeakCancelsPrevious(t *testing.T) {
	r := &recorder{}
	v := NewWith(Engines[0], r.start, nil)
	v.Speak("uno")
	v.Speak("dos")
	if len(r.procs) != 2 {
		t.Fatalf("started = %d", len(r.procs))
	}
	if !r.procs[0].killed {
		t.Fatal("first utterance should be cut off")
	}
	if r.procs[1].killed {
		t.Fatal("second utterance killed too early")
	}
	v.Close()
	if !r.procs[1].killed {
		t.Fatal("Close should stop the current utterance")
	}
}

func TestSpeakIgnoresEmptyAndFailures(t *testing.T) {
	r := &recorder{}
	v := NewWith(Engines[2], r.start, nil)
	v.Speak("   ")
	if len(r.calls) != 0 {
		t.Fatalf("empty text started %v", r.calls)
	}

	r.fail = true
	v.Speak("hola")
	v.Close()
}

func TestMuteVoice(t *testing.T) {
	v := &Voice{}
	if v.Available() || v.Engine() != "" {
		t.Fatal("zero voice should be mute")
	}
	v.Speak("hola")
	v.Close()
}

func TestSayArgs(t *testing.T) {
	got := Engines[2].Args("gato")
	if !slices.Equal(got, []string{"-r", "160", "gato"}) {
		t.Fatalf("say args = %v", got)
	}
}
