package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

func TestExtractMode(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid mode URI",
			uri:      "sightline://modes/reading",
			expected: "reading",
		},
		{
			name:     "invalid prefix",
			uri:      "file://modes/reading",
			expected: "",
		},
		{
			name:     "list URI has no mode",
			uri:      "sightline://modes",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractMode(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func settingsWithReadingPhrases(t *testing.T, phrases ...string) *domain.AppSettings {
	t.Helper()
	table, err := domain.NewPhraseTable(
		domain.ModePhrases{Mode: domain.ModeNavigation, Phrases: domain.DefaultPhrases(domain.ModeNavigation)},
		domain.ModePhrases{Mode: domain.ModeObjectDetection, Phrases: domain.DefaultPhrases(domain.ModeObjectDetection)},
		domain.ModePhrases{Mode: domain.ModeReading, Phrases: phrases},
	)
	require.NoError(t, err)
	settings := domain.DefaultAppSettings()
	settings.Phrases = table
	return &settings
}

func TestServer_handleModesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("uses built-in phrases without settings", func(t *testing.T) {
		server, err := NewServer(&Ports{Sessions: &mockSessionFactory{}})
		require.NoError(t, err)

		result, err := server.handleModesResource(ctx, makeReadResourceRequest("sightline://modes"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var infos []modeInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 3)
		assert.Equal(t, "navigation", infos[0].Mode)
		assert.Equal(t, "object_detection", infos[1].Mode)
		assert.Equal(t, "reading", infos[2].Mode)
		assert.Contains(t, infos[2].Phrases, "switch to reading")
	})

	t.Run("uses configured phrases", func(t *testing.T) {
		settings := &mockSettingsService{settings: settingsWithReadingPhrases(t, "read it")}
		server, err := NewServer(&Ports{Sessions: &mockSessionFactory{}, Settings: settings})
		require.NoError(t, err)

		result, err := server.handleModesResource(ctx, makeReadResourceRequest("sightline://modes"))
		require.NoError(t, err)

		var infos []modeInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		assert.Equal(t, []string{"read it"}, infos[2].Phrases)
	})

	t.Run("returns error on settings failure", func(t *testing.T) {
		settings := &mockSettingsService{err: errors.New("bad config")}
		server, err := NewServer(&Ports{Sessions: &mockSessionFactory{}, Settings: settings})
		require.NoError(t, err)

		_, err = server.handleModesResource(ctx, makeReadResourceRequest("sightline://modes"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad config")
	})
}

func TestServer_handleModeResource(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(&Ports{Sessions: &mockSessionFactory{}})
	require.NoError(t, err)

	t.Run("returns one mode", func(t *testing.T) {
		result, err := server.handleModeResource(ctx, makeReadResourceRequest("sightline://modes/object-detection"))
		require.NoError(t, err)

		var info modeInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
		assert.Equal(t, "object_detection", info.Mode)
		assert.Equal(t, domain.DefaultPhrases(domain.ModeObjectDetection), info.Phrases)
	})

	t.Run("unknown mode is not found", func(t *testing.T) {
		_, err := server.handleModeResource(ctx, makeReadResourceRequest("sightline://modes/sonar"))
		assert.Error(t, err)
	})

	t.Run("invalid uri is not found", func(t *testing.T) {
		_, err := server.handleModeResource(ctx, makeReadResourceRequest("sightline://invalid/uri"))
		assert.Error(t, err)
	})
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("not found without settings service", func(t *testing.T) {
		server, err := NewServer(&Ports{Sessions: &mockSessionFactory{}})
		require.NoError(t, err)

		_, err = server.handleSettingsResource(ctx, makeReadResourceRequest("sightline://settings"))
		assert.Error(t, err)
	})

	t.Run("returns settings", func(t *testing.T) {
		settings := settingsWithReadingPhrases(t, "read")
		settings.InitialMode = domain.ModeReading
		settings.Navigation.FrameWidth = 640
		server, err := NewServer(&Ports{
			Sessions: &mockSessionFactory{},
			Settings: &mockSettingsService{settings: settings},
		})
		require.NoError(t, err)

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("sightline://settings"))
		require.NoError(t, err)

		var info settingsInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
		assert.Equal(t, "reading", info.InitialMode)
		assert.Equal(t, 640, info.FrameWidth)
		assert.Equal(t, domain.DefaultReadingFallback, info.ReadingFallback)
		assert.Len(t, info.Modes, 3)
	})
}
