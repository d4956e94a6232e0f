package domain

import (
	"fmt"
	"strings"
)

// DefaultFrameWidth is the frame width, in pixels, of the demo camera.
const DefaultFrameWidth = 320

// DefaultReadingFallback is spoken when no text is recognised.
const DefaultReadingFallback = "no text detected"

// DefaultReadingText is the text the demo OCR engine returns.
const DefaultReadingText = "Welcome to the campus library"

// NavigationSettings holds navigation guidance configuration.
type NavigationSettings struct {
	// FrameWidth is the camera frame width used to find the midpoint.
	FrameWidth int
}

// ReadingSettings holds reading assistant configuration.
type ReadingSettings struct {
	// FallbackMessage is spoken when the recognised text is blank.
	// An empty fallback suppresses the announcement entirely.
	FallbackMessage string
}

// DemoSettings holds the scripted demo harness configuration.
type DemoSettings struct {
	// Transcripts are the scripted utterances fed to the voice assistant.
	Transcripts []string

	// ReadingText is the text the scripted OCR engine returns.
	ReadingText string

	// PaceMillis spaces scripted utterances apart. Zero disables pacing.
	PaceMillis int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// InitialMode is the voice assistant's mode before any command matches.
	InitialMode Mode

	// Navigation holds navigation settings.
	Navigation NavigationSettings

	// Reading holds reading settings.
	Reading ReadingSettings

	// Phrases is the command phrase table.
	Phrases PhraseTable

	// Demo holds demo harness settings.
	Demo DemoSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		InitialMode: ModeNavigation,
		Navigation: NavigationSettings{
			FrameWidth: DefaultFrameWidth,
		},
		Reading: ReadingSettings{
			FallbackMessage: DefaultReadingFallback,
		},
		Phrases: DefaultPhraseTable(),
		Demo: DemoSettings{
			Transcripts: DefaultDemoTranscripts(),
			ReadingText: DefaultReadingText,
		},
	}
}

// DefaultDemoTranscripts returns the utterances used by the demo when none are configured.
func DefaultDemoTranscripts() []string {
	return []string{
		"switch to navigation",
		"switch to object detection",
		"switch to reading",
	}
}

// Validate checks the settings for values the assistants would reject.
func (s *AppSettings) Validate() error {
	var problems []string
	if !s.InitialMode.IsValid() {
		problems = append(problems, fmt.Sprintf("initial mode %q is not supported", s.InitialMode))
	}
	if s.Navigation.FrameWidth <= 0 {
		problems = append(problems, fmt.Sprintf("frame width must be positive, got %d", s.Navigation.FrameWidth))
	}
	if s.Demo.PaceMillis < 0 {
		problems = append(problems, fmt.Sprintf("demo pace must not be negative, got %d", s.Demo.PaceMillis))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}
