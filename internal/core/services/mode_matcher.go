package services

import (
	"strings"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

// ModeMatcher maps transcripts to modes by substring matching against a phrase table.
type ModeMatcher struct {
	table domain.PhraseTable
}

// NewModeMatcher creates a matcher over a validated phrase table.
func NewModeMatcher(table domain.PhraseTable) *ModeMatcher {
	return &ModeMatcher{table: table}
}

// NewDefaultModeMatcher creates a matcher over the built-in phrases.
func NewDefaultModeMatcher() *ModeMatcher {
	return NewModeMatcher(domain.DefaultPhraseTable())
}

// NormalizeTranscript lowercases a transcript and collapses whitespace runs to single spaces.
func NormalizeTranscript(transcript string) string {
	return strings.Join(strings.Fields(strings.ToLower(transcript)), " ")
}

// Match returns the first mode whose phrase occurs in the normalised transcript.
// Modes are tried in table order and phrases in their configured order.
// The boolean is false when nothing matches, which means "keep the current mode".
func (m *ModeMatcher) Match(transcript string) (domain.Mode, bool) {
	normalised := NormalizeTranscript(transcript)
	if normalised == "" {
		return "", false
	}
	for _, entry := range m.table.Entries() {
		for _, phrase := range entry.Phrases {
			if strings.Contains(normalised, phrase) {
				return entry.Mode, true
			}
		}
	}
	return "", false
}
