package shell

import (
	"testing"

	"github.com/vovakirdan/calma/internal/settings"
)

func TestVolumes(t *testing.T) {
	tests := []struct {
		name    string
		volume  float64
		effects float64
		fanfare float64
	}{
		{"silent", 0, 0, 0.4},
		{"default", 0.5, 0.25, 0.75},
		{"full", 1, 0.5, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settings.Default()
			s.MusicVolume = tt.volume
			s.MusicEnabled = false
			v := Volumes(s)
			if v.Effects != tt.effects || v.Fanfare != tt.fanfare {
				t.Errorf("Volumes = %+v, want effects %v fanfare %v", v, tt.effects, tt.fanfare)
			}
		})
	}
}

func TestServicesCloseEmpty(t *testing.T) {
	(&Services{}).Close()
}
