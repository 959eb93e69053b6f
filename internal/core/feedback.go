package core

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundPop      Sound = iota // successful capture or placement
	SoundError                 // wrong drop
	SoundLevelWin              // puzzle assembled
	SoundFanfare               // round completed
	SoundWarning               // penalty entered
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundPop:
		return "pop"
	case SoundError:
		return "error"
	case SoundLevelWin:
		return "level-win"
	case SoundFanfare:
		return "fanfare"
	case SoundWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Feedback is the audio side of a game: effects and spoken words.
// Implementations must not block the caller.
type Feedback interface {
	Play(s Sound)
	Speak(text string)
}

// NopFeedback discards everything.
type NopFeedback struct{}

func (NopFeedback) Play(Sound)   {}
func (NopFeedback) Speak(string) {}

// RecordingFeedback remembers every call, for tests and headless runs.
type RecordingFeedback struct {
	Sounds []Sound
	Spoken []string
}

func (r *RecordingFeedback) Play(s Sound)      { r.Sounds = append(r.Sounds, s) }
func (r *RecordingFeedback) Speak(text string) { r.Spoken = append(r.Spoken, text) }

// Count returns how many times s was played.
func (r *RecordingFeedback) Count(s Sound) int {
	n := 0
	for _, v := range r.Sounds {
		if v == s {
			n++
		}
	}
	return n
}
