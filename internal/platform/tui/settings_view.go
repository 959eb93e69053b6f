package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/settings"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldBool
	fieldUniverse
	fieldCount
	fieldLevel
	fieldVolume
	fieldReset
)

// settingField is one editable row, keyed by its settings.Set name.
type settingField struct {
	key   string
	label string
	kind  fieldKind
}

var settingFields = []settingField{
	{"userName", "Nombre", fieldText},
	{"universe", "Universo", fieldUniverse},
	{"itemCount", "Objetos", fieldCount},
	{"wordLevel", "Nivel de lectura", fieldLevel},
	{"showWords", "Mostrar palabras", fieldBool},
	{"wordsAsObjects", "Palabras como objetos", fieldBool},
	{"showMolds", "Mostrar moldes", fieldBool},
	{"voiceEnabled", "Voz", fieldBool},
	{"partialVoiceEnabled", "Voz parcial", fieldBool},
	{"musicEnabled", "Música", fieldBool},
	{"musicVolume", "Volumen", fieldVolume},
	{"", "Restablecer valores", fieldReset},
}

func (f settingField) value(s settings.Settings) string {
	switch f.key {
	case "userName":
		return s.UserName
	case "universe":
		return string(s.Universe)
	case "itemCount":
		return strconv.Itoa(s.ItemCount)
	case "wordLevel":
		return s.Level.String()
	case "showWords":
		return onOff(s.ShowWords)
	case "wordsAsObjects":
		return onOff(s.WordsAsObjects)
	case "showMolds":
		return onOff(s.ShowMolds)
	case "voiceEnabled":
		return onOff(s.VoiceEnabled)
	case "partialVoiceEnabled":
		return onOff(s.PartialVoiceEnabled)
	case "musicEnabled":
		return onOff(s.MusicEnabled)
	case "musicVolume":
		return fmt.Sprintf("%d%%", int(s.MusicVolume*100+0.5))
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}

// step moves the field one notch in dir (-1 or +1) and returns the value
// to hand to settings.Set.
func (f settingField) step(s settings.Settings, dir int) string {
	switch f.kind {
	case fieldBool:
		return strconv.FormatBool(f.value(s) != "sí")
	case fieldUniverse:
		ids := catalog.IDs()
		i := slices.Index(ids, s.Universe)
		i = (i + dir + len(ids)) % len(ids)
		return string(ids[i])
	case fieldCount:
		return strconv.Itoa(core.Clamp(s.ItemCount+dir, settings.MinItems, settings.MaxItems))
	case fieldLevel:
		l := int(s.Level) + dir
		if l < int(core.LevelWhole) {
			l = int(core.LevelLetters)
		} else if l > int(core.LevelLetters) {
			l = int(core.LevelWhole)
		}
		return strconv.Itoa(l)
	case fieldVolume:
		return strconv.FormatFloat(core.ClampF(s.MusicVolume+0.1*float64(dir), 0, 1), 'f', 2, 64)
	}
	return f.value(s)
}

// maxNameLen bounds the edited player name.
const maxNameLen = 16

var errNameLetters = errors.New("el nombre solo lleva letras")

// validateName accepts letters and spaces.
func validateName(s string) error {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return errNameLetters
		}
	}
	return nil
}

func newNameInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxNameLen
	ti.Width = maxNameLen + 1
	ti.Validate = validateName
	return ti
}

// SettingsModel edits the player's settings. Every change is stored at
// once through the manager, so other screens see it immediately.
type SettingsModel struct {
	manager  *settings.Manager
	current  settings.Settings
	cursor   int
	editing  bool
	name     textinput.Model
	width    int
	height   int
	err      string
	done     bool
	quitting bool
	keys     *KeyMapper
}

// NewSettingsModel creates the settings screen. A nil manager edits an
// in-memory copy of the defaults.
func NewSettingsModel(manager *settings.Manager, width, height int) SettingsModel {
	cur := settings.Default()
	if manager != nil {
		cur = manager.Get()
	}
	return SettingsModel{
		manager: manager,
		current: cur,
		width:   width,
		height:  height,
		keys:    NewKeyMapper(),
		name:    newNameInput(),
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd { return nil }

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.editing {
			return m.editName(msg)
		}
		return m.handleKey(msg)
	default:
		if m.editing {
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	var cmd tea.Cmd
	field := settingFields[m.cursor]
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionBack:
		m.done = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(settingFields)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m = m.change(field, -1)
	case MenuActionRight:
		m = m.change(field, 1)
	case MenuActionSelect:
		switch field.kind {
		case fieldText:
			m.editing = true
			m.name.SetValue(m.current.UserName)
			m.name.CursorEnd()
			cmd = m.name.Focus()
		case fieldReset:
			m = m.store(settings.Default())
		default:
			m = m.change(field, 1)
		}
	}
	return m, cmd
}

func (m SettingsModel) change(f settingField, dir int) SettingsModel {
	if f.kind == fieldText || f.kind == fieldReset {
		return m
	}
	next := m.current
	if err := next.Set(f.key, f.step(m.current, dir)); err != nil {
		m.err = err.Error()
		return m
	}
	return m.store(next)
}

func (m SettingsModel) store(next settings.Settings) SettingsModel {
	m.err = ""
	if m.manager != nil {
		m.current = m.manager.Update(next)
	} else {
		m.current = next.Normalize()
	}
	return m
}

// editName feeds keys to the name input. Typed letters are uppercased and
// anything else typed is dropped; enter stores the name, esc keeps the old one.
func (m SettingsModel) editName(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.name.Blur()
		if err := validateName(m.name.Value()); err != nil {
			m.err = err.Error()
			return m, nil
		}
		next := m.current
		if err := next.Set("userName", m.name.Value()); err != nil {
			m.err = err.Error()
			return m, nil
		}
		return m.store(next), nil
	case tea.KeyEsc:
		m.editing = false
		m.name.Blur()
		return m, nil
	case tea.KeyRunes:
		letters := make([]rune, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsLetter(r) || r == ' ' {
				letters = append(letters, unicode.ToUpper(r))
			}
		}
		if len(letters) == 0 {
			return m, nil
		}
		msg.Runes = letters
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

var (
	settingsLabelStyle = lipgloss.NewStyle().Width(24)
	settingsValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	settingsErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("AJUSTES"), m.width))
	b.WriteString("\n\n")

	var rows []string
	for i, f := range settingFields {
		cursor := "  "
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
		}
		val := f.value(m.current)
		if f.kind == fieldText && m.editing {
			val = m.name.View()
		}
		row := cursor + settingsLabelStyle.Render(f.label)
		if f.kind != fieldReset {
			row += settingsValueStyle.Render(val)
		}
		rows = append(rows, row)
	}
	b.WriteString(lipgloss.NewStyle().MarginLeft(max(0, (m.width-44)/2)).Render(strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(centerText(settingsErrStyle.Render(m.err), m.width))
		b.WriteString("\n")
	}
	help := "↑/↓: elegir  |  ←/→: cambiar  |  Enter: editar  |  Esc: volver"
	if m.editing {
		help = "Escribe el nombre  |  Enter: guardar  |  Esc: cancelar"
	}
	b.WriteString(centerText(menuDimStyle.Render(help), m.width))
	b.WriteString("\n")
	return b.String()
}

// Settings returns the settings as last stored.
func (m SettingsModel) Settings() settings.Settings { return m.current }

// Done reports whether the player left the screen.
func (m SettingsModel) Done() bool { return m.done }

// IsQuitting returns true if user requested to quit.
func (m SettingsModel) IsQuitting() bool { return m.quitting }
