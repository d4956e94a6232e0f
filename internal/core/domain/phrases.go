package domain

import (
	"fmt"
	"strings"
)

// ModePhrases pairs a mode with its trigger phrases in match order.
type ModePhrases struct {
	Mode    Mode
	Phrases []string
}

// PhraseTable maps modes to trigger phrases.
// Entry order and phrase order define match priority.
// A PhraseTable is immutable once built; accessors return copies.
type PhraseTable struct {
	entries []ModePhrases
}

// NewPhraseTable builds a phrase table from ordered entries.
// Every mode must belong to the fixed mode set and may appear at most once.
// Phrases are lowercased and their whitespace collapsed the way transcripts are;
// blank phrases are dropped.
// A mode with zero phrases is allowed and is unreachable by matching.
func NewPhraseTable(entries ...ModePhrases) (PhraseTable, error) {
	seen := make(map[Mode]bool, len(entries))
	table := PhraseTable{entries: make([]ModePhrases, 0, len(entries))}

	for _, entry := range entries {
		if !entry.Mode.IsValid() {
			return PhraseTable{}, fmt.Errorf("%w: %q", ErrUnsupportedMode, entry.Mode)
		}
		if seen[entry.Mode] {
			return PhraseTable{}, fmt.Errorf("%w: duplicate phrase entry for mode %q", ErrInvalidInput, entry.Mode)
		}
		seen[entry.Mode] = true

		phrases := make([]string, 0, len(entry.Phrases))
		for _, p := range entry.Phrases {
			p = strings.Join(strings.Fields(strings.ToLower(p)), " ")
			if p == "" {
				continue
			}
			phrases = append(phrases, p)
		}
		table.entries = append(table.entries, ModePhrases{Mode: entry.Mode, Phrases: phrases})
	}

	return table, nil
}

// DefaultPhraseTable returns the built-in command phrases.
func DefaultPhraseTable() PhraseTable {
	table, err := NewPhraseTable(defaultPhraseEntries()...)
	if err != nil {
		// The built-in entries only use modes from the fixed set.
		panic(err)
	}
	return table
}

// DefaultPhrases returns the built-in trigger phrases for a mode.
func DefaultPhrases(mode Mode) []string {
	for _, entry := range defaultPhraseEntries() {
		if entry.Mode == mode {
			return entry.Phrases
		}
	}
	return nil
}

func defaultPhraseEntries() []ModePhrases {
	return []ModePhrases{
		{
			Mode: ModeNavigation,
			Phrases: []string{
				"navigation mode",
				"switch to navigation",
				"navigation",
			},
		},
		{
			Mode: ModeObjectDetection,
			Phrases: []string{
				"object detection mode",
				"switch to object detection",
				"object detection",
				"object mode",
			},
		},
		{
			Mode: ModeReading,
			Phrases: []string{
				"reading mode",
				"switch to reading",
				"reading",
				"read mode",
			},
		},
	}
}

// Entries returns a copy of the table's entries in match order.
func (t PhraseTable) Entries() []ModePhrases {
	out := make([]ModePhrases, len(t.entries))
	for i, entry := range t.entries {
		out[i] = ModePhrases{Mode: entry.Mode, Phrases: append([]string(nil), entry.Phrases...)}
	}
	return out
}

// Phrases returns a copy of the phrases configured for a mode.
func (t PhraseTable) Phrases(mode Mode) []string {
	for _, entry := range t.entries {
		if entry.Mode == mode {
			return append([]string(nil), entry.Phrases...)
		}
	}
	return nil
}

