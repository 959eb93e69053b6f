package catalog

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/calma/internal/core"
)

func TestUniversesLoad(t *testing.T) {
	ids := IDs()
	if len(ids) != 8 {
		t.Fatalf("IDs() returned %d universes, expected 8", len(ids))
	}
	if ids[len(ids)-1] != Aleatorio {
		t.Errorf("random mix should be last, got %s", ids[len(ids)-1])
	}

	for _, id := range ids[:len(ids)-1] {
		u, err := Get(id, nil)
		if err != nil {
			t.Fatalf("Get(%s) error: %v", id, err)
		}
		if len(u.Items) != ItemsPerUniverse {
			t.Errorf("%s has %d items", id, len(u.Items))
		}
		seen := map[string]bool{}
		for _, it := range u.Items {
			if it.ID == "" || it.Name == "" || it.Image == "" {
				t.Errorf("%s has incomplete item %+v", id, it)
			}
			if seen[it.ID] {
				t.Errorf("%s has duplicate item %s", id, it.ID)
			}
			seen[it.ID] = true
		}
	}
}

func TestGetRandomMix(t *testing.T) {
	u, err := Get(Aleatorio, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if len(u.Items) != 7*ItemsPerUniverse {
		t.Errorf("random mix has %d items, expected %d", len(u.Items), 7*ItemsPerUniverse)
	}
	if u.Title != "Mundo Mágico" {
		t.Errorf("Title = %q", u.Title)
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("marte", nil); err == nil {
		t.Error("expected error for unknown universe")
	}
	if Valid("marte") {
		t.Error("Valid(marte) should be false")
	}
	if !Valid("GRANJA") {
		t.Error("Valid should be case-insensitive")
	}
}

func TestSliceClamps(t *testing.T) {
	u, _ := Get(Granja, nil)

	tests := []struct {
		n, expected int
	}{
		{-3, 0},
		{0, 0},
		{4, 4},
		{12, 12},
		{40, 12},
	}
	for _, tc := range tests {
		if got := len(u.Slice(tc.n)); got != tc.expected {
			t.Errorf("Slice(%d) len = %d, expected %d", tc.n, got, tc.expected)
		}
	}

	s := u.Slice(2)
	s[0].Name = "CHANGED"
	if u.Items[0].Name == "CHANGED" {
		t.Error("Slice must return a copy")
	}
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected []string
	}{
		{"SOL", []string{"SOL"}},
		{"VACA", []string{"VA", "CA"}},
		{"MARIPOSA", []string{"MA", "RI", "PO", "SA"}},
		{"GALLINA", []string{"GALLI", "NA"}},
		{"FLOR", []string{"FLO", "R"}},
		{"PFFFT", []string{"PFF", "FT"}},
		{"CORAZÓN", []string{"CO", "RA", "ZÓ", "N"}},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			if got := Syllables(tc.word); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Syllables(%q) = %v, expected %v", tc.word, got, tc.expected)
			}
		})
	}
}

func TestPartsAndFormat(t *testing.T) {
	if got := Parts("PIÑA", core.LevelLetters); !reflect.DeepEqual(got, []string{"P", "I", "Ñ", "A"}) {
		t.Errorf("letters = %v", got)
	}
	if got := Parts("PIÑA", core.LevelWhole); !reflect.DeepEqual(got, []string{"PIÑA"}) {
		t.Errorf("whole = %v", got)
	}
	if got := Format("VACA", core.LevelSyllables); got != "VA - CA" {
		t.Errorf("Format = %q", got)
	}
}

func TestWordParts(t *testing.T) {
	items := []Item{{ID: "vaca", Name: "VACA"}, {ID: "sol", Name: "SOL"}}
	parts := WordParts(items, core.LevelSyllables)

	if len(parts) != 3 {
		t.Fatalf("got %d parts, expected 3", len(parts))
	}
	if parts[1].ID != "word-vaca-1" || parts[1].Text != "CA" || parts[1].ParentID != "vaca" {
		t.Errorf("unexpected part %+v", parts[1])
	}
	if parts[2].ID != "word-sol-0" {
		t.Errorf("unexpected part %+v", parts[2])
	}
}
