// Package audio synthesizes the game's sound effects with beep and plays
// them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/calma/internal/core"
)

// SampleRate is the mixer rate.
const SampleRate = beep.SampleRate(44100)

// Note frequencies.
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteA4 = 440.0
)

// envelope applies a linear attack and release to a stream of fixed length.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, sr beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: beep.Take(sr.N(d), s),
		attack:   sr.N(attack),
		release:  sr.N(release),
		total:    sr.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.pos >= start {
			vol = math.Max(0, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// sweep is a sine whose frequency glides linearly from one value to another.
type sweep struct {
	from, to float64
	phase    float64
	pos, n   int
	sr       beep.SampleRate
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.n {
			return i, i > 0
		}
		f := s.from + (s.to-s.from)*float64(s.pos)/float64(s.n)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v
		s.phase += f / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// volume scales a stream by a linear factor; 0 is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func tone(freq float64, d time.Duration, sr beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(sr, freq)
	if err != nil {
		return generators.Silence(sr.N(d))
	}
	return newEnvelope(s, d, 5*time.Millisecond, d/3, sr)
}

func square(freq float64, d time.Duration, sr beep.SampleRate) beep.Streamer {
	s, err := generators.SquareTone(sr, freq)
	if err != nil {
		return generators.Silence(sr.N(d))
	}
	return newEnvelope(s, d, 5*time.Millisecond, d/2, sr)
}

func pause(d time.Duration, sr beep.SampleRate) beep.Streamer {
	return generators.Silence(sr.N(d))
}

// Effect builds the streamer for one sound at the given linear volume.
// Unknown sounds yield nil.
func Effect(s core.Sound, vol float64, sr beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case core.SoundPop:
		d := 90 * time.Millisecond
		st = newEnvelope(&sweep{from: 600, to: 950, n: sr.N(d), sr: sr}, d, 2*time.Millisecond, 60*time.Millisecond, sr)
	case core.SoundError:
		st = volume(square(160, 220*time.Millisecond, sr), 0.35)
	case core.SoundLevelWin:
		step := 110 * time.Millisecond
		st = beep.Seq(
			tone(noteC5, step, sr),
			tone(noteE5, step, sr),
			tone(noteG5, step, sr),
			tone(noteC6, 2*step, sr),
		)
	case core.SoundFanfare:
		st = beep.Seq(
			tone(noteG5, 120*time.Millisecond, sr),
			tone(noteG5, 120*time.Millisecond, sr),
			tone(noteG5, 120*time.Millisecond, sr),
			beep.Mix(
				tone(noteC6, 600*time.Millisecond, sr),
				volume(tone(noteE5, 600*time.Millisecond, sr), 0.5),
			),
		)
	case core.SoundWarning:
		st = beep.Seq(
			volume(square(noteA4, 120*time.Millisecond, sr), 0.4),
			pause(80*time.Millisecond, sr),
			volume(square(noteA4, 120*time.Millisecond, sr), 0.4),
		)
	default:
		return nil
	}
	return volume(st, vol)
}

// Length returns the number of samples a sound plays for.
func Length(s core.Sound, sr beep.SampleRate) int {
	st := Effect(s, 1, sr)
	if st == nil {
		return 0
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := st.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}
