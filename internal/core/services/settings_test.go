package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sightline-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.InitialMode, settings.InitialMode)
	assert.Equal(t, domain.ModeNavigation, settings.InitialMode)
	assert.Equal(t, domain.DefaultFrameWidth, settings.Navigation.FrameWidth)
	assert.Equal(t, domain.DefaultReadingFallback, settings.Reading.FallbackMessage)
	assert.Equal(t, domain.DefaultPhraseTable().Entries(), settings.Phrases.Entries())
	assert.Equal(t, domain.DefaultDemoTranscripts(), settings.Demo.Transcripts)
	assert.Equal(t, domain.DefaultReadingText, settings.Demo.ReadingText)
	assert.Equal(t, 0, settings.Demo.PaceMillis)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"initial_mode":             "Object Detection",
		"navigation.frame_width":   int64(640),
		"reading.fallback_message": "nothing here",
		"demo.transcripts":         []any{"reading", "navigation"},
		"demo.reading_text":        "Exit",
		"demo.pace_ms":             int64(250),
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.ModeObjectDetection, settings.InitialMode)
	assert.Equal(t, 640, settings.Navigation.FrameWidth)
	assert.Equal(t, "nothing here", settings.Reading.FallbackMessage)
	assert.Equal(t, []string{"reading", "navigation"}, settings.Demo.Transcripts)
	assert.Equal(t, "Exit", settings.Demo.ReadingText)
	assert.Equal(t, 250, settings.Demo.PaceMillis)
}

func TestSettingsService_Get_EmptyFallbackIsKept(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{"reading.fallback_message": ""})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, "", settings.Reading.FallbackMessage)
}

func TestSettingsService_Get_InvalidModeIsPassedThrough(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{"initial_mode": "sonar"})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.Mode("sonar"), settings.InitialMode)
	assert.ErrorIs(t, service.Validate(), domain.ErrInvalidInput)
}

func TestSettingsService_Get_PartialPhraseOverride(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"phrases.reading": []any{"Read It", "  "},
	})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	entries := settings.Phrases.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, domain.ModeNavigation, entries[0].Mode)
	assert.Equal(t, domain.DefaultPhrases(domain.ModeNavigation), entries[0].Phrases)
	assert.Equal(t, domain.ModeObjectDetection, entries[1].Mode)
	assert.Equal(t, domain.ModeReading, entries[2].Mode)
	assert.Equal(t, []string{"read it"}, entries[2].Phrases)
}

func TestSettingsService_Get_UnknownPhraseMode(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"phrases.sonar": []any{"ping"},
	})

	_, err := NewSettingsService(store).Get()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMode)
	assert.Contains(t, err.Error(), "phrase table")
}

func TestSettingsService_Get_PhrasesNotAList(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"phrases.navigation": "go",
	})

	_, err := NewSettingsService(store).Get()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "phrases.navigation")
}

func TestSettingsService_Get_EmptyPhraseListSilencesMode(t *testing.T) {
	store := memory.NewConfigStoreWith(map[string]any{
		"phrases.reading": []any{},
	})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Empty(t, settings.Phrases.Phrases(domain.ModeReading))
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	table, err := domain.NewPhraseTable(
		domain.ModePhrases{Mode: domain.ModeReading, Phrases: []string{"read"}},
		domain.ModePhrases{Mode: domain.ModeNavigation, Phrases: []string{"walk"}},
	)
	require.NoError(t, err)

	settings := &domain.AppSettings{
		InitialMode: domain.ModeReading,
		Navigation:  domain.NavigationSettings{FrameWidth: 480},
		Reading:     domain.ReadingSettings{FallbackMessage: "blank"},
		Phrases:     table,
		Demo: domain.DemoSettings{
			Transcripts: []string{"walk"},
			ReadingText: "Stop",
			PaceMillis:  10,
		},
	}

	require.NoError(t, service.Save(settings))

	assert.Equal(t, "reading", store.GetString("initial_mode"))
	assert.Equal(t, 480, store.GetInt("navigation.frame_width"))
	assert.Equal(t, "blank", store.GetString("reading.fallback_message"))
	assert.Equal(t, []string{"read"}, store.GetStringSlice("phrases.reading"))
	assert.Equal(t, []string{"walk"}, store.GetStringSlice("phrases.navigation"))
	assert.Equal(t, []string{"walk"}, store.GetStringSlice("demo.transcripts"))
	assert.Equal(t, "Stop", store.GetString("demo.reading_text"))
	assert.Equal(t, 10, store.GetInt("demo.pace_ms"))

	reloaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ModeReading, reloaded.InitialMode)
	assert.Equal(t, 480, reloaded.Navigation.FrameWidth)
	assert.Equal(t, []string{"walk"}, reloaded.Phrases.Phrases(domain.ModeNavigation))
	assert.Equal(t, domain.DefaultPhrases(domain.ModeObjectDetection), reloaded.Phrases.Phrases(domain.ModeObjectDetection))
}

func TestSettingsService_SetInitialMode(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetInitialMode(domain.ModeReading))
	assert.Equal(t, "reading", store.GetString("initial_mode"))

	err := service.SetInitialMode(domain.Mode("sonar"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedMode)
	assert.Equal(t, "reading", store.GetString("initial_mode"))
}

func TestSettingsService_SetFrameWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		wantErr bool
	}{
		{"positive", 640, false},
		{"one pixel", 1, false},
		{"zero", 0, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			err := NewSettingsService(store).SetFrameWidth(tt.width)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
				_, ok := store.Get("navigation.frame_width")
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, store.GetInt("navigation.frame_width"))
		})
	}
}

func TestSettingsService_SetReadingFallback(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetReadingFallback("  nothing to read  "))
	assert.Equal(t, "nothing to read", store.GetString("reading.fallback_message"))

	require.NoError(t, service.SetReadingFallback("   "))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "", settings.Reading.FallbackMessage)
}

func TestSettingsService_Validate(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr error
	}{
		{"defaults", nil, nil},
		{"zero frame width", map[string]any{"navigation.frame_width": 0}, domain.ErrInvalidInput},
		{"negative pace", map[string]any{"demo.pace_ms": -5}, domain.ErrInvalidInput},
		{"bad initial mode", map[string]any{"initial_mode": "flying"}, domain.ErrInvalidInput},
		{"bad phrase mode", map[string]any{"phrases.flying": []any{"up"}}, domain.ErrUnsupportedMode},
		{"phrases not a list", map[string]any{"phrases.reading": 7}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSettingsService(memory.NewConfigStoreWith(tt.values)).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsService_GetDefaults(t *testing.T) {
	defaults := NewSettingsService(memory.NewConfigStore()).GetDefaults()

	assert.Equal(t, domain.DefaultAppSettings().InitialMode, defaults.InitialMode)
	assert.Equal(t, domain.DefaultFrameWidth, defaults.Navigation.FrameWidth)
}
