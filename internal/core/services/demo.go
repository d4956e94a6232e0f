package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
	"github.com/custodia-labs/sightline-cli/internal/logger"
)

// Ensure DemoService implements the interfaces.
var (
	_ driving.DemoRunner     = (*DemoService)(nil)
	_ driving.SessionFactory = (*DemoService)(nil)
)

// DemoBackends bundles the capabilities the demo wires into each assistant.
type DemoBackends struct {
	Camera    driven.Camera
	Obstacles driven.ObstacleDetector
	Objects   driven.ObjectDetector
	Text      driven.TextRecognizer
	Audio     driven.AudioOutput

	// NewTranscriber builds a transcript source for one run. pace is the
	// minimum gap between utterances; zero means no pacing.
	NewTranscriber func(transcripts []string, pace time.Duration) driven.Transcriber
}

// DemoService runs the scripted voice-command demo.
type DemoService struct {
	settings driving.SettingsService
	backends DemoBackends
}

// NewDemoService creates a demo service.
func NewDemoService(settings driving.SettingsService, backends DemoBackends) *DemoService {
	return &DemoService{
		settings: settings,
		backends: backends,
	}
}

// Run builds a fresh voice session and assistants, then dispatches the transcripts.
func (s *DemoService) Run(ctx context.Context, opts driving.DemoOptions) (*domain.DemoReport, error) {
	if s.settings == nil || s.backends.NewTranscriber == nil {
		return nil, domain.ErrNotImplemented
	}

	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	transcripts := opts.Transcripts
	if len(transcripts) == 0 {
		transcripts = settings.Demo.Transcripts
	}

	dispatcher, voice, err := s.build(settings, transcripts)
	if err != nil {
		return nil, err
	}

	logger.Info("Demo session %s: %d transcripts, initial mode %s", voice.SessionID(), len(transcripts), voice.ActiveMode())

	steps := len(transcripts)
	if opts.UntilEndOfInput {
		steps = 0
	} else if steps == 0 {
		return &domain.DemoReport{SessionID: voice.SessionID(), Messages: []string{}}, nil
	}

	results, runErr := dispatcher.Run(ctx, steps)

	report := &domain.DemoReport{
		SessionID: voice.SessionID(),
		Steps:     results,
		Messages:  []string{},
	}
	for i := range results {
		report.Messages = append(report.Messages, results[i].Announcements()...)
	}
	return report, runErr
}

// NewVoiceSession creates a voice assistant over the configured phrases.
func (s *DemoService) NewVoiceSession(initial domain.Mode) (driving.VoiceAssistant, error) {
	if s.settings == nil {
		return nil, domain.ErrNotImplemented
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if initial == "" {
		initial = settings.InitialMode
	}
	voice, err := NewVoiceAssistant(nil, NewModeMatcher(settings.Phrases), initial)
	if err != nil {
		return nil, err
	}
	return voice, nil
}

// NewDispatchSession creates a dispatcher whose transcriber is already exhausted;
// callers feed it through Dispatch.
func (s *DemoService) NewDispatchSession() (driving.Dispatcher, error) {
	if s.settings == nil || s.backends.NewTranscriber == nil {
		return nil, domain.ErrNotImplemented
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	dispatcher, voice, err := s.build(settings, nil)
	if err != nil {
		return nil, err
	}
	logger.Info("Dispatch session %s started in %s", voice.SessionID(), voice.ActiveMode())
	return dispatcher, nil
}

func (s *DemoService) build(settings *domain.AppSettings, transcripts []string) (*Dispatcher, *VoiceAssistant, error) {
	b := s.backends

	pace := time.Duration(settings.Demo.PaceMillis) * time.Millisecond
	voice, err := NewVoiceAssistant(b.NewTranscriber(transcripts, pace), NewModeMatcher(settings.Phrases), settings.InitialMode)
	if err != nil {
		return nil, nil, err
	}
	navigation, err := NewNavigationAssistant(b.Camera, b.Obstacles, b.Audio, settings.Navigation.FrameWidth)
	if err != nil {
		return nil, nil, fmt.Errorf("navigation assistant: %w", err)
	}
	detection, err := NewObjectDetectionAssistant(b.Camera, b.Objects, b.Audio)
	if err != nil {
		return nil, nil, fmt.Errorf("object detection assistant: %w", err)
	}
	reading, err := NewReadingAssistant(b.Camera, b.Text, b.Audio, settings.Reading.FallbackMessage)
	if err != nil {
		return nil, nil, fmt.Errorf("reading assistant: %w", err)
	}

	dispatcher, err := NewDispatcher(voice, navigation, detection, reading)
	if err != nil {
		return nil, nil, err
	}
	return dispatcher, voice, nil
}
