package settings

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application namespace.
const AppName = "camino_calma"

const (
	settingsObject   = "camino_calma_settings"
	settingsProperty = "player"
)

// Manager loads, holds and saves Settings.
// A nil gdata manager puts it in memory-only mode.
type Manager struct {
	mu       sync.RWMutex
	store    *gdata.Manager
	current  Settings
	logger   *log.Logger
	onChange []func(prev, next Settings)
}

// Open creates the gdata store for AppName and loads saved settings.
// If the store cannot be opened the manager runs in memory-only mode.
func Open(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable, using memory only", "err", err)
		store = nil
	}
	return NewManager(store, logger)
}

// NewManager wraps an existing gdata manager (which may be nil).
func NewManager(store *gdata.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{store: store, current: Default(), logger: logger}
	if err := m.Load(); err != nil {
		logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return m
}

// Load reads saved settings. Missing fields keep their default values;
// unreadable data resets everything to defaults and returns the error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return err
	}
	m.current = s
	return nil
}

// Decode parses YAML settings on top of the defaults.
func Decode(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("settings: decode: %w", err)
	}
	return s.Normalize(), nil
}

// Save persists the current settings. In memory-only mode it is a no-op.
func (m *Manager) Save() error {
	m.mu.RLock()
	s := m.current
	m.mu.RUnlock()

	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update normalizes and stores next, notifies subscribers, and saves.
// A save failure is logged; the in-memory value is kept.
func (m *Manager) Update(next Settings) Settings {
	next = next.Normalize()

	m.mu.Lock()
	prev := m.current
	m.current = next
	subs := append([]func(prev, next Settings){}, m.onChange...)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(prev, next)
	}
	if err := m.Save(); err != nil {
		m.logger.Warn("failed to save settings", "err", err)
	}
	return next
}

// Reset restores the defaults.
func (m *Manager) Reset() Settings {
	return m.Update(Default())
}

// OnChange registers fn to be called after every Update.
func (m *Manager) OnChange(fn func(prev, next Settings)) {
	m.mu.Lock()
	m.onChange = append(m.onChange, fn)
	m.mu.Unlock()
}
