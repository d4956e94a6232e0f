package audio

import (
	"context"
	"sync"

	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
)

// Ensure Recorder implements the interface.
var _ driven.AudioOutput = (*Recorder)(nil)

// Recorder is an AudioOutput that records every message in order.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Speak appends the message to the log.
func (r *Recorder) Speak(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.messages...)
}
