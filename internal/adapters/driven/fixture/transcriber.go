package fixture

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
)

// Ensure Transcriber implements the interface.
var _ driven.Transcriber = (*Transcriber)(nil)

// Transcriber replays scripted utterances in order, then reports end of input.
type Transcriber struct {
	mu          sync.Mutex
	transcripts []string
	index       int
	limiter     *rate.Limiter
}

// NewTranscriber creates a scripted transcriber with no pacing.
func NewTranscriber(transcripts []string) *Transcriber {
	return NewPacedTranscriber(transcripts, 0)
}

// NewPacedTranscriber creates a scripted transcriber that releases at most one
// utterance per interval. A non-positive interval disables pacing.
func NewPacedTranscriber(transcripts []string, interval time.Duration) *Transcriber {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Transcriber{
		transcripts: append([]string(nil), transcripts...),
		limiter:     rate.NewLimiter(limit, 1),
	}
}

// Listen returns the next scripted utterance, or "" once the script is exhausted.
func (t *Transcriber) Listen(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.index >= len(t.transcripts) {
		return "", nil
	}
	if err := t.limiter.Wait(ctx); err != nil {
		return "", err
	}

	transcript := t.transcripts[t.index]
	t.index++
	return transcript, nil
}

// remaining returns how many utterances have not been returned yet.
func (t *Transcriber) remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.transcripts) - t.index
}
