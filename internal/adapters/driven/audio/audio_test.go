package audio

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_KeepsOrder(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()

	for _, msg := range []string{"forward", "person", "book"} {
		require.NoError(t, r.Speak(ctx, msg))
	}

	assert.Equal(t, []string{"forward", "person", "book"}, r.Messages())
}

func TestRecorder_MessagesIsCopy(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.Speak(context.Background(), "left"))

	got := r.Messages()
	got[0] = "mutated"

	assert.Equal(t, []string{"left"}, r.Messages())
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Speak(context.Background(), "x")
		}()
	}
	wg.Wait()

	assert.Len(t, r.Messages(), 50)
}

func TestConsole_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	assert.False(t, c.styled, "a buffer is not a terminal")
	require.NoError(t, c.Speak(context.Background(), "forward"))
	require.NoError(t, c.Speak(context.Background(), "Welcome to the campus library"))

	assert.Equal(t, "speak: forward\nspeak: Welcome to the campus library\n", buf.String())
}

func TestConsole_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPlainConsole(&buf).Speak(ctx, "left")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestConsole_WriteError(t *testing.T) {
	err := NewPlainConsole(failingWriter{}).Speak(context.Background(), "left")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write announcement")
	assert.Contains(t, err.Error(), "disk full")
}
