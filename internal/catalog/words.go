package catalog

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/calma/internal/core"
)

const vowels = "AEIOUÁÉÍÓÚ"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// Syllables splits an upper-case Spanish word into reading chunks.
// It breaks after a vowel followed by a single consonant (V-CV) and keeps
// consonant clusters with the preceding chunk. Words of three runes or
// fewer stay whole; a word that yields one chunk is cut in half.
func Syllables(word string) []string {
	rs := []rune(word)
	if len(rs) <= 3 {
		return []string{word}
	}

	var out []string
	start := 0
	for i := range rs {
		if !isVowel(rs[i]) || i+1 >= len(rs) || isVowel(rs[i+1]) {
			continue
		}
		if i+2 < len(rs) && !isVowel(rs[i+2]) {
			continue
		}
		out = append(out, string(rs[start:i+1]))
		start = i + 1
	}
	if start < len(rs) {
		out = append(out, string(rs[start:]))
	}

	if len(out) > 1 {
		return out
	}
	half := (len(rs) + 1) / 2
	return []string{string(rs[:half]), string(rs[half:])}
}

// Letters splits a word into single runes.
func Letters(word string) []string {
	rs := []rune(word)
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// Parts splits a word according to the reading level.
func Parts(word string, level core.Level) []string {
	switch level {
	case core.LevelSyllables:
		return Syllables(word)
	case core.LevelLetters:
		return Letters(word)
	default:
		return []string{word}
	}
}

// Format renders a word the way the level reads it, e.g. "VA - CA".
func Format(word string, level core.Level) string {
	return strings.Join(Parts(word, level), " - ")
}

// WordPart is one draggable piece of an item's name.
type WordPart struct {
	ID       string // word-<itemID>-<index>
	ParentID string
	Text     string
	Index    int
}

// WordParts builds the draggable parts of every item's name.
func WordParts(items []Item, level core.Level) []WordPart {
	var out []WordPart
	for _, it := range items {
		for i, text := range Parts(it.Name, level) {
			out = append(out, WordPart{
				ID:       partID(it.ID, i),
				ParentID: it.ID,
				Text:     text,
				Index:    i,
			})
		}
	}
	return out
}

func partID(itemID string, index int) string {
	return fmt.Sprintf("word-%s-%d", itemID, index)
}
