package shell

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/calma/internal/audio"
	"github.com/vovakirdan/calma/internal/settings"
	"github.com/vovakirdan/calma/internal/storage"
	"github.com/vovakirdan/calma/internal/voice"
)

// Services are the long-lived pieces a local front-end needs. Every field
// is usable even when its backend failed to open: Store is nil, Settings
// is memory-only, Player is silent.
type Services struct {
	Store    *storage.Store
	Settings *settings.Manager
	Voice    *voice.Voice
	Player   *audio.Player
	Logger   *log.Logger
}

// Volumes maps player settings to mixer volumes. Effects follow the
// volume slider even with the music switched off.
func Volumes(s settings.Settings) audio.Volumes {
	return audio.Volumes{Effects: s.EffectVolume(), Fanfare: s.FanfareVolume()}
}

// OpenServices opens the history database at dbPath, the saved settings,
// the speech engine and the speaker. Failures are logged and degrade.
func OpenServices(dbPath string, logger *log.Logger) *Services {
	if logger == nil {
		logger = log.Default()
	}
	sv := &Services{Logger: logger}

	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("history disabled", "db", dbPath, "err", err)
	} else {
		sv.Store = store
	}

	sv.Settings = settings.Open(logger.WithPrefix("settings"))
	sv.Voice = voice.New(logger.WithPrefix("voice"))

	player, err := audio.Open(sv.Voice, Volumes(sv.Settings.Get()), logger.WithPrefix("audio"))
	if err != nil {
		logger.Warn("audio device unavailable, sounds muted", "err", err)
	}
	sv.Player = player
	sv.Settings.OnChange(func(_, next settings.Settings) {
		player.SetVolumes(Volumes(next))
	})
	return sv
}

// Close stops sounds and speech and closes the database.
func (sv *Services) Close() {
	if sv.Player != nil {
		sv.Player.Close()
	}
	if sv.Voice != nil {
		sv.Voice.Close()
	}
	if sv.Store != nil {
		if err := sv.Store.Close(); err != nil {
			sv.Logger.Warn("closing history", "err", err)
		}
	}
}
