package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyInitialMode     = "initial_mode"
	keyFrameWidth      = "navigation.frame_width"
	keyReadingFallback = "reading.fallback_message"
	keyPhrasesPrefix   = "phrases."
	keyDemoTranscripts = "demo.transcripts"
	keyDemoReadingText = "demo.reading_text"
	keyDemoPace        = "demo.pace_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unset keys take their defaults. A phrase list keyed by a mode outside the
// fixed set is a configuration error.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	phrases, err := s.getPhraseTable()
	if err != nil {
		return nil, err
	}

	settings := &domain.AppSettings{
		InitialMode: s.getMode(defaults.InitialMode),
		Navigation: domain.NavigationSettings{
			FrameWidth: s.getInt(keyFrameWidth, defaults.Navigation.FrameWidth),
		},
		Reading: domain.ReadingSettings{
			FallbackMessage: s.getString(keyReadingFallback, defaults.Reading.FallbackMessage),
		},
		Phrases: phrases,
		Demo: domain.DemoSettings{
			Transcripts: s.getStringSlice(keyDemoTranscripts, defaults.Demo.Transcripts),
			ReadingText: s.getString(keyDemoReadingText, defaults.Demo.ReadingText),
			PaceMillis:  s.getInt(keyDemoPace, defaults.Demo.PaceMillis),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyInitialMode, settings.InitialMode.String()); err != nil {
		return fmt.Errorf("save initial mode: %w", err)
	}
	if err := s.configStore.Set(keyFrameWidth, settings.Navigation.FrameWidth); err != nil {
		return fmt.Errorf("save frame width: %w", err)
	}
	if err := s.configStore.Set(keyReadingFallback, settings.Reading.FallbackMessage); err != nil {
		return fmt.Errorf("save reading fallback: %w", err)
	}
	for _, entry := range settings.Phrases.Entries() {
		if err := s.configStore.Set(keyPhrasesPrefix+entry.Mode.String(), entry.Phrases); err != nil {
			return fmt.Errorf("save %s phrases: %w", entry.Mode, err)
		}
	}
	if err := s.configStore.Set(keyDemoTranscripts, settings.Demo.Transcripts); err != nil {
		return fmt.Errorf("save demo transcripts: %w", err)
	}
	if err := s.configStore.Set(keyDemoReadingText, settings.Demo.ReadingText); err != nil {
		return fmt.Errorf("save demo reading text: %w", err)
	}
	if err := s.configStore.Set(keyDemoPace, settings.Demo.PaceMillis); err != nil {
		return fmt.Errorf("save demo pace: %w", err)
	}
	return nil
}

// SetInitialMode updates the mode a new voice session starts in.
func (s *SettingsService) SetInitialMode(mode domain.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedMode, mode)
	}
	return s.configStore.Set(keyInitialMode, mode.String())
}

// SetFrameWidth updates the navigation frame width.
func (s *SettingsService) SetFrameWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: frame width must be positive, got %d", domain.ErrInvalidArgument, width)
	}
	return s.configStore.Set(keyFrameWidth, width)
}

// SetReadingFallback updates the message spoken when no text is recognised.
// An empty message silences the fallback.
func (s *SettingsService) SetReadingFallback(message string) error {
	return s.configStore.Set(keyReadingFallback, strings.TrimSpace(message))
}

// Validate checks the stored settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// getPhraseTable builds the phrase table from "phrases.<mode>" keys.
// Modes without a configured list keep their built-in phrases, and a value
// that is not a list is a configuration error. Known modes
// come first in canonical order; unknown ones follow so that the table
// constructor rejects them.
func (s *SettingsService) getPhraseTable() (domain.PhraseTable, error) {
	keys := s.configStore.Keys(keyPhrasesPrefix)
	if len(keys) == 0 {
		return domain.DefaultPhraseTable(), nil
	}

	configured := make(map[domain.Mode][]string, len(keys))
	var unknown []domain.Mode
	for _, key := range keys {
		mode := domain.Mode(strings.TrimPrefix(key, keyPhrasesPrefix))
		phrases := s.configStore.GetStringSlice(key)
		if phrases == nil {
			return domain.PhraseTable{}, fmt.Errorf("%w: %s must be a list of phrases", domain.ErrInvalidInput, key)
		}
		configured[mode] = phrases
		if !mode.IsValid() {
			unknown = append(unknown, mode)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	entries := make([]domain.ModePhrases, 0, len(domain.Modes())+len(unknown))
	for _, mode := range domain.Modes() {
		phrases, ok := configured[mode]
		if !ok {
			phrases = domain.DefaultPhrases(mode)
		}
		entries = append(entries, domain.ModePhrases{Mode: mode, Phrases: phrases})
	}
	for _, mode := range unknown {
		entries = append(entries, domain.ModePhrases{Mode: mode, Phrases: configured[mode]})
	}

	table, err := domain.NewPhraseTable(entries...)
	if err != nil {
		return domain.PhraseTable{}, fmt.Errorf("phrase table: %w", err)
	}
	return table, nil
}

// getMode returns the configured initial mode without validating it;
// the voice assistant rejects unsupported modes when it is constructed.
func (s *SettingsService) getMode(defaultVal domain.Mode) domain.Mode {
	raw := s.configStore.GetString(keyInitialMode)
	if raw == "" {
		return defaultVal
	}
	if mode, err := domain.ParseMode(raw); err == nil {
		return mode
	}
	return domain.Mode(raw)
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}
