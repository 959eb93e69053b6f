package audio

import (
	"sync"
	"testing"

	"github.com/vovakirdan/calma/internal/core"
)

type speechLog []string

func (s *speechLog) Speak(text string) { *s = append(*s, text) }

func TestEffectsAreFinite(t *testing.T) {
	sounds := []core.Sound{core.SoundPop, core.SoundError, core.SoundLevelWin, core.SoundFanfare, core.SoundWarning}
	for _, s := range sounds {
		t.Run(s.String(), func(t *testing.T) {
			n := Length(s, SampleRate)
			if n == 0 {
				t.Fatal("empty sound")
			}
			if n > SampleRate.N(2e9) {
				t.Fatalf("sound too long: %d samples", n)
			}
		})
	}
	if Effect(core.Sound(99), 1, SampleRate) != nil {
		t.Fatal("unknown sound should be nil")
	}
}

func TestEffectSamplesInRange(t *testing.T) {
	st := Effect(core.SoundFanfare, 1, SampleRate)
	buf := make([][2]float64, 1024)
	for {
		n, ok := st.Stream(buf)
		for i := range n {
			if buf[i][0] < -1.6 || buf[i][0] > 1.6 {
				t.Fatalf("sample %v out of range", buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
}

func TestSilentVolume(t *testing.T) {
	st := Effect(core.SoundPop, 0, SampleRate)
	buf := make([][2]float64, 256)
	n, _ := st.Stream(buf)
	for i := range n {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, buf[i][0])
		}
	}
}

func TestPlayerMixesAndDrains(t *testing.T) {
	speech := &speechLog{}
	p := NewPlayer(speech, Volumes{Effects: 0.8, Fanfare: 0.5}, nil)

	p.Play(core.SoundPop)
	p.Play(core.SoundWarning)
	if got := p.Active(); got != 2 {
		t.Fatalf("Active = %d, want 2", got)
	}
	if p.Played(core.SoundPop) != 1 {
		t.Fatalf("Played(pop) = %d", p.Played(core.SoundPop))
	}

	p.Drain(SampleRate.N(1e9))
	if got := p.Active(); got != 0 {
		t.Fatalf("Active after drain = %d, want 0", got)
	}

	p.Speak("VACA")
	if len(*speech) != 1 || (*speech)[0] != "VACA" {
		t.Fatalf("speech = %v", *speech)
	}
	p.Close()
}

func TestPlayerWithoutSpeech(t *testing.T) {
	p := NewPlayer(nil, Volumes{Effects: 1, Fanfare: 1}, nil)
	p.Speak("hola")
	p.Play(core.Sound(42))
	if p.Active() != 0 {
		t.Fatal("unknown sound should not mix")
	}
}

func TestPlayerConcurrentPlayAndDrain(t *testing.T) {
	p := NewPlayer(nil, Volumes{Effects: 1, Fanfare: 1}, nil)
	defer p.Close()

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for range 200 {
			p.Play(core.SoundPop)
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			p.Drain(256)
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			_ = p.Active()
		}
	}()
	wg.Wait()

	if got := p.Played(core.SoundPop); got != 200 {
		t.Fatalf("Played(pop) = %d, want 200", got)
	}
	p.Drain(SampleRate.N(1e9))
	if got := p.Active(); got != 0 {
		t.Fatalf("Active after drain = %d, want 0", got)
	}
}
