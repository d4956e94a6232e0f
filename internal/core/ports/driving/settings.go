package driving

import "github.com/custodia-labs/sightline-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetInitialMode updates the mode a new voice session starts in.
	SetInitialMode(mode domain.Mode) error

	// SetFrameWidth updates the navigation frame width.
	SetFrameWidth(width int) error

	// SetReadingFallback updates the message spoken when no text is recognised.
	SetReadingFallback(message string) error

	// Validate checks the stored settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
