// Package catalog holds the themed item sets ("universes") the games draw
// their content from, plus the word splitting used by reading levels.
package catalog

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed universes.yaml
var universesYAML []byte

// UniverseID identifies a themed item set.
type UniverseID string

const (
	Granja       UniverseID = "granja"
	Figuras      UniverseID = "figuras"
	Numeros      UniverseID = "numeros"
	Frutas       UniverseID = "frutas"
	Bosque       UniverseID = "bosque"
	Herramientas UniverseID = "herramientas"
	Vestuario    UniverseID = "vestuario"
	// Aleatorio mixes every item of every other universe.
	Aleatorio UniverseID = "aleatorio"
)

// ItemsPerUniverse is the size of each base universe.
const ItemsPerUniverse = 12

// Item is one collectible or draggable thing.
type Item struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`  // upper-case display and spoken name
	Image string `yaml:"image"` // emoji
	Color string `yaml:"color"` // tile background, #RRGGBB
}

// Initial returns the first rune of the name, for single-cell renderers.
func (it Item) Initial() rune {
	r, _ := utf8.DecodeRuneInString(it.Name)
	return r
}

// Universe is a titled list of items.
type Universe struct {
	ID         UniverseID `yaml:"id"`
	Title      string     `yaml:"title"`
	Background string     `yaml:"background"`
	Items      []Item     `yaml:"items"`
}

// Slice returns the first n items, with n clamped to [0, len(Items)].
// The result is a copy; callers may reorder it.
func (u Universe) Slice(n int) []Item {
	if n < 0 {
		n = 0
	}
	if n > len(u.Items) {
		n = len(u.Items)
	}
	out := make([]Item, n)
	copy(out, u.Items[:n])
	return out
}

type file struct {
	Universes []Universe `yaml:"universes"`
}

var (
	loadOnce sync.Once
	base     []Universe
	loadErr  error
)

func load() ([]Universe, error) {
	loadOnce.Do(func() {
		var f file
		if err := yaml.Unmarshal(universesYAML, &f); err != nil {
			loadErr = fmt.Errorf("catalog: parse universes: %w", err)
			return
		}
		for _, u := range f.Universes {
			if len(u.Items) != ItemsPerUniverse {
				loadErr = fmt.Errorf("catalog: universe %s has %d items, want %d", u.ID, len(u.Items), ItemsPerUniverse)
				return
			}
		}
		base = f.Universes
	})
	return base, loadErr
}

// IDs returns every selectable universe id, random mix last.
func IDs() []UniverseID {
	us, err := load()
	if err != nil {
		return []UniverseID{Aleatorio}
	}
	ids := make([]UniverseID, 0, len(us)+1)
	for _, u := range us {
		ids = append(ids, u.ID)
	}
	return append(ids, Aleatorio)
}

// Get returns the universe with the given id. Aleatorio is built on demand
// from every base item, shuffled with rng (nil means unshuffled).
func Get(id UniverseID, rng *rand.Rand) (Universe, error) {
	us, err := load()
	if err != nil {
		return Universe{}, err
	}
	id = UniverseID(strings.ToLower(string(id)))

	if id == Aleatorio {
		mixed := Universe{ID: Aleatorio, Title: "Mundo Mágico", Background: "#f5f3ff"}
		for _, u := range us {
			mixed.Items = append(mixed.Items, u.Items...)
		}
		if rng != nil {
			rng.Shuffle(len(mixed.Items), func(i, j int) {
				mixed.Items[i], mixed.Items[j] = mixed.Items[j], mixed.Items[i]
			})
		}
		return mixed, nil
	}

	for _, u := range us {
		if u.ID == id {
			u.Items = append([]Item(nil), u.Items...)
			return u, nil
		}
	}
	return Universe{}, fmt.Errorf("catalog: unknown universe %q", id)
}

// Valid reports whether id names a universe.
func Valid(id UniverseID) bool {
	for _, v := range IDs() {
		if v == UniverseID(strings.ToLower(string(id))) {
			return true
		}
	}
	return false
}
