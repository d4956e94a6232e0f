package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/sightline-cli/internal/core/domain"
)

var errBackend = errors.New("backend failure")

// mockCamera returns empty frames with sequential IDs.
type mockCamera struct {
	err   error
	calls int
}

func (m *mockCamera) Frame(_ context.Context) (domain.Frame, error) {
	m.calls++
	if m.err != nil {
		return domain.Frame{}, m.err
	}
	return domain.Frame{ID: "frame"}, nil
}

type mockObstacleDetector struct {
	obstacles []domain.Obstacle
	err       error
}

func (m *mockObstacleDetector) DetectObstacles(_ context.Context, _ domain.Frame) ([]domain.Obstacle, error) {
	return m.obstacles, m.err
}

type mockObjectDetector struct {
	objects []domain.DetectedObject
	err     error
}

func (m *mockObjectDetector) DetectObjects(_ context.Context, _ domain.Frame) ([]domain.DetectedObject, error) {
	return m.objects, m.err
}

type mockTextRecognizer struct {
	text string
	err  error
}

func (m *mockTextRecognizer) ExtractText(_ context.Context, _ domain.Frame) (string, error) {
	return m.text, m.err
}

// mockAudio records every spoken message.
type mockAudio struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (m *mockAudio) Speak(_ context.Context, message string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
	return nil
}

func (m *mockAudio) log() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.messages...)
}

// mockTranscriber replays a script and returns "" when exhausted.
type mockTranscriber struct {
	script []string
	index  int
	err    error
}

func (m *mockTranscriber) Listen(_ context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.index >= len(m.script) {
		return "", nil
	}
	out := m.script[m.index]
	m.index++
	return out, nil
}

func demoObstacles() []domain.Obstacle {
	return []domain.Obstacle{
		{BBox: domain.BoundingBox{Left: 20, Top: 0, Right: 80, Bottom: 60}, Label: "chair", Confidence: 0.91},
		{BBox: domain.BoundingBox{Left: 200, Top: 0, Right: 260, Bottom: 80}, Label: "desk", Confidence: 0.87},
	}
}

func demoObjects() []domain.DetectedObject {
	return []domain.DetectedObject{
		{Label: "person", BBox: domain.BoundingBox{Left: 10, Top: 10, Right: 100, Bottom: 200}, Confidence: 0.95},
		{Label: "book", BBox: domain.BoundingBox{Left: 140, Top: 40, Right: 220, Bottom: 120}, Confidence: 0.89},
	}
}

// testRig holds a dispatcher wired to mocks that mirror the demo fixtures.
type testRig struct {
	audio       *mockAudio
	voice       *VoiceAssistant
	dispatcher  *Dispatcher
	transcriber *mockTranscriber
}

func newTestRig(initial domain.Mode, script ...string) (*testRig, error) {
	audio := &mockAudio{}
	camera := &mockCamera{}
	transcriber := &mockTranscriber{script: script}

	voice, err := NewVoiceAssistant(transcriber, nil, initial)
	if err != nil {
		return nil, err
	}
	navigation, err := NewNavigationAssistant(camera, &mockObstacleDetector{obstacles: demoObstacles()}, audio, 320)
	if err != nil {
		return nil, err
	}
	detection, err := NewObjectDetectionAssistant(camera, &mockObjectDetector{objects: demoObjects()}, audio)
	if err != nil {
		return nil, err
	}
	reading, err := NewReadingAssistant(camera, &mockTextRecognizer{text: "Welcome to the campus library"}, audio, domain.DefaultReadingFallback)
	if err != nil {
		return nil, err
	}
	dispatcher, err := NewDispatcher(voice, navigation, detection, reading)
	if err != nil {
		return nil, err
	}
	return &testRig{audio: audio, voice: voice, dispatcher: dispatcher, transcriber: transcriber}, nil
}
