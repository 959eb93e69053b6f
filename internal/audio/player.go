package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/calma/internal/core"
)

// Speaker says text aloud. Implemented by voice.Voice.
type Speaker interface {
	Speak(text string)
}

// Volumes are linear effect and fanfare volumes in [0, 1].
type Volumes struct {
	Effects float64
	Fanfare float64
}

// Player implements core.Feedback: effects go to a beep mixer, text to the
// speech backend. A player without a device stays silent but still speaks.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	sr      beep.SampleRate
	vol     Volumes
	device  bool
	speech  Speaker
	logger  *log.Logger
	played  map[core.Sound]int
	lockDev func()
	unlock  func()
}

// NewPlayer creates a player that mixes into memory only. Open attaches
// the system speaker.
func NewPlayer(speech Speaker, vol Volumes, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:   &beep.Mixer{},
		sr:      SampleRate,
		vol:     vol,
		speech:  speech,
		logger:  logger,
		played:  make(map[core.Sound]int),
		lockDev: func() {},
		unlock:  func() {},
	}
}

// Open initializes the speaker and starts streaming the mixer. On failure
// the player keeps working silently and the error is returned for logging.
func Open(speech Speaker, vol Volumes, logger *log.Logger) (*Player, error) {
	p := NewPlayer(speech, vol, logger)
	if err := speaker.Init(p.sr, p.sr.N(50*time.Millisecond)); err != nil {
		return p, err
	}
	speaker.Play(p.mixer)
	p.device = true
	p.lockDev = speaker.Lock
	p.unlock = speaker.Unlock
	return p, nil
}

// SetVolumes updates the volumes for sounds started afterwards.
func (p *Player) SetVolumes(v Volumes) {
	p.mu.Lock()
	p.vol = v
	p.mu.Unlock()
}

// Play starts a sound effect without blocking.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	vol := p.vol.Effects
	if s == core.SoundFanfare {
		vol = p.vol.Fanfare
	}
	st := Effect(s, vol, p.sr)
	if st == nil {
		p.logger.Warn("unknown sound", "sound", s)
		return
	}
	p.played[s]++
	p.lockDev()
	p.mixer.Add(st)
	p.unlock()
}

// Speak forwards text to the speech backend.
func (p *Player) Speak(text string) {
	if p.speech != nil {
		p.speech.Speak(text)
	}
}

// Active returns how many sounds are still mixing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lockDev()
	defer p.unlock()
	return p.mixer.Len()
}

// Played returns how many times s was started.
func (p *Player) Played(s core.Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// Drain streams n samples from the mixer. Used when no device is attached.
func (p *Player) Drain(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.device {
		return
	}
	buf := make([][2]float64, 512)
	for n > 0 {
		k := min(n, len(buf))
		p.mixer.Stream(buf[:k])
		n -= k
	}
}

// Close stops every sound and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lockDev()
	p.mixer.Clear()
	p.unlock()
	if p.device {
		speaker.Close()
		p.device = false
		p.lockDev, p.unlock = func() {}, func() {}
	}
}

var _ core.Feedback = (*Player)(nil)
