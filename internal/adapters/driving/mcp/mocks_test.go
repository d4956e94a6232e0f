package mcp

import (
	"context"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
	"github.com/custodia-labs/sightline-cli/internal/core/ports/driving"
)

// mockDispatcher is a mock implementation of driving.Dispatcher.
type mockDispatcher struct {
	mode        domain.Mode
	step        domain.DispatchStep
	err         error
	transcripts []string
}

func (m *mockDispatcher) ActiveMode() domain.Mode {
	return m.mode
}

func (m *mockDispatcher) Step(_ context.Context) (domain.DispatchStep, error) {
	return m.step, m.err
}

func (m *mockDispatcher) Dispatch(_ context.Context, transcript string) (domain.DispatchStep, error) {
	m.transcripts = append(m.transcripts, transcript)
	if m.err != nil {
		return domain.DispatchStep{}, m.err
	}
	m.mode = m.step.Switch.ActiveMode
	return m.step, nil
}

func (m *mockDispatcher) Run(_ context.Context, _ int) ([]domain.DispatchStep, error) {
	return []domain.DispatchStep{m.step}, m.err
}

// mockSessionFactory is a mock implementation of driving.SessionFactory.
type mockSessionFactory struct {
	dispatchers []*mockDispatcher
	created     int
	err         error
}

func (m *mockSessionFactory) NewVoiceSession(_ domain.Mode) (driving.VoiceAssistant, error) {
	return nil, domain.ErrNotImplemented
}

func (m *mockSessionFactory) NewDispatchSession() (driving.Dispatcher, error) {
	if m.err != nil {
		return nil, m.err
	}
	d := &mockDispatcher{mode: domain.ModeNavigation}
	if m.created < len(m.dispatchers) {
		d = m.dispatchers[m.created]
	}
	m.created++
	return d, nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) SetInitialMode(_ domain.Mode) error {
	return m.err
}

func (m *mockSettingsService) SetFrameWidth(_ int) error {
	return m.err
}

func (m *mockSettingsService) SetReadingFallback(_ string) error {
	return m.err
}

func (m *mockSettingsService) Validate() error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
