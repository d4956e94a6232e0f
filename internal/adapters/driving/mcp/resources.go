package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for Sightline resources.
	uriScheme = "sightline://"
)

// modeInfo is the JSON shape of a mode resource.
type modeInfo struct {
	Mode        string   `json:"mode"`
	Description string   `json:"description"`
	Phrases     []string `json:"phrases"`
}

// settingsInfo is the JSON shape of the settings resource.
type settingsInfo struct {
	InitialMode     string     `json:"initial_mode"`
	FrameWidth      int        `json:"frame_width"`
	ReadingFallback string     `json:"reading_fallback"`
	Modes           []modeInfo `json:"modes"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "modes",
		Name:        "modes",
		Description: "Assistant modes and the phrases that switch to them",
		MIMEType:    "application/json",
	}, s.handleModesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "modes/{mode}",
		Name:        "mode",
		Description: "Trigger phrases for a single mode",
		MIMEType:    "application/json",
	}, s.handleModeResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current assistant settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleModesResource returns every mode with its trigger phrases.
func (s *Server) handleModesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	table, err := s.phraseTable()
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, modeInfos(table))
}

// handleModeResource returns the phrases for one mode.
func (s *Server) handleModeResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract mode from URI: sightline://modes/{mode}
	raw := extractMode(req.Params.URI)
	if raw == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	mode, err := domain.ParseMode(raw)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	table, err := s.phraseTable()
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, modeInfo{
		Mode:        mode.String(),
		Description: mode.Description(),
		Phrases:     nonNil(table.Phrases(mode)),
	})
}

// handleSettingsResource returns the current settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return jsonResource(req.Params.URI, settingsInfo{
		InitialMode:     settings.InitialMode.String(),
		FrameWidth:      settings.Navigation.FrameWidth,
		ReadingFallback: settings.Reading.FallbackMessage,
		Modes:           modeInfos(settings.Phrases),
	})
}

// phraseTable returns the configured phrase table, or the built-in one
// when no settings service is wired.
func (s *Server) phraseTable() (domain.PhraseTable, error) {
	if s.ports.Settings == nil {
		return domain.DefaultPhraseTable(), nil
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return domain.PhraseTable{}, fmt.Errorf("getting settings: %w", err)
	}
	return settings.Phrases, nil
}

func modeInfos(table domain.PhraseTable) []modeInfo {
	infos := make([]modeInfo, 0, len(domain.Modes()))
	for _, mode := range domain.Modes() {
		infos = append(infos, modeInfo{
			Mode:        mode.String(),
			Description: mode.Description(),
			Phrases:     nonNil(table.Phrases(mode)),
		})
	}
	return infos
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMode extracts the mode name from a URI like sightline://modes/{mode}.
func extractMode(uri string) string {
	const prefix = uriScheme + "modes/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
