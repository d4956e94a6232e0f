package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

// DispatchInput is the input schema for the dispatch tool.
type DispatchInput struct {
	Transcript string `json:"transcript" jsonschema:"what the user said, e.g. switch to reading"`
}

// DispatchOutput is the output schema for the dispatch tool.
type DispatchOutput struct {
	Transcript    string   `json:"transcript"`
	MatchedMode   string   `json:"matched_mode,omitempty"`
	ActiveMode    string   `json:"active_mode"`
	Announcements []string `json:"announcements"`

	Direction string                  `json:"direction,omitempty"`
	Objects   []domain.DetectedObject `json:"objects,omitempty"`
	Text      string                  `json:"text,omitempty"`
}

// SessionInput is the input schema for tools that take no arguments.
type SessionInput struct{}

// SessionOutput describes the current session state.
type SessionOutput struct {
	ActiveMode  string `json:"active_mode"`
	Description string `json:"description"`
}

// ObstacleInput is one bounding box passed to choose_direction.
type ObstacleInput struct {
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Right  int    `json:"right"`
	Bottom int    `json:"bottom"`
	Label  string `json:"label,omitempty"`
}

// DirectionInput is the input schema for the choose_direction tool.
type DirectionInput struct {
	FrameWidth int             `json:"frame_width" jsonschema:"width of the camera frame in pixels; must be positive"`
	Obstacles  []ObstacleInput `json:"obstacles" jsonschema:"obstacle bounding boxes in frame pixel coordinates"`
}

// DirectionOutput is the output schema for the choose_direction tool.
type DirectionOutput struct {
	Direction string `json:"direction"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "dispatch",
		Description: "Handle a spoken transcript: switch mode on a command, then process one frame in the active mode",
	}, s.handleDispatch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "active_mode",
		Description: "Report the session's current assistant mode",
	}, s.handleActiveMode)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reset_session",
		Description: "Start a new session in the configured initial mode",
	}, s.handleResetSession)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "choose_direction",
		Description: "Suggest left, right or forward given obstacle bounding boxes",
	}, s.handleChooseDirection)
}

// handleDispatch handles the dispatch tool invocation.
func (s *Server) handleDispatch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DispatchInput,
) (*mcp.CallToolResult, DispatchOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.session()
	if err != nil {
		return nil, DispatchOutput{}, err
	}

	step, err := d.Dispatch(ctx, input.Transcript)
	if err != nil {
		return nil, DispatchOutput{}, err
	}

	return nil, toDispatchOutput(step), nil
}

// handleActiveMode handles the active_mode tool invocation.
func (s *Server) handleActiveMode(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ SessionInput,
) (*mcp.CallToolResult, SessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.session()
	if err != nil {
		return nil, SessionOutput{}, err
	}
	return nil, toSessionOutput(d.ActiveMode()), nil
}

// handleResetSession handles the reset_session tool invocation.
func (s *Server) handleResetSession(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ SessionInput,
) (*mcp.CallToolResult, SessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatcher = nil
	d, err := s.session()
	if err != nil {
		return nil, SessionOutput{}, err
	}
	return nil, toSessionOutput(d.ActiveMode()), nil
}

// handleChooseDirection handles the choose_direction tool invocation.
func (s *Server) handleChooseDirection(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DirectionInput,
) (*mcp.CallToolResult, DirectionOutput, error) {
	obstacles := make([]domain.Obstacle, len(input.Obstacles))
	for i, o := range input.Obstacles {
		obstacles[i] = domain.Obstacle{
			BBox:  domain.BoundingBox{Left: o.Left, Top: o.Top, Right: o.Right, Bottom: o.Bottom},
			Label: o.Label,
		}
	}

	direction, err := domain.ChooseDirection(obstacles, input.FrameWidth)
	if err != nil {
		return nil, DirectionOutput{}, err
	}
	return nil, DirectionOutput{Direction: direction.String()}, nil
}

func toDispatchOutput(step domain.DispatchStep) DispatchOutput {
	out := DispatchOutput{
		Transcript:    step.Switch.Transcript,
		ActiveMode:    step.Switch.ActiveMode.String(),
		Announcements: step.Announcements(),
	}
	if step.Switch.MatchedMode != nil {
		out.MatchedMode = step.Switch.MatchedMode.String()
	}
	if out.Announcements == nil {
		out.Announcements = []string{}
	}

	switch {
	case step.Guidance != nil:
		out.Direction = step.Guidance.Direction.String()
	case step.Detection != nil:
		out.Objects = step.Detection.Objects
	case step.Reading != nil:
		out.Text = step.Reading.Text
	}
	return out
}

func toSessionOutput(mode domain.Mode) SessionOutput {
	return SessionOutput{
		ActiveMode:  mode.String(),
		Description: mode.Description(),
	}
}
