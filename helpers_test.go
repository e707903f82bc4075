package legalease

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedGenerator replays canned replies in call order and records the
// prompts it saw.
type scriptedGenerator struct {
	mu      sync.Mutex
	replies []scriptedReply
	prompts []string
}

type scriptedReply struct {
	text string
	err  error
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if len(g.replies) == 0 {
		return "", fmt.Errorf("scripted generator exhausted after %d calls", len(g.prompts))
	}
	r := g.replies[0]
	g.replies = g.replies[1:]
	return r.text, r.err
}

// promptFilterGenerator answers prompts containing marker with markedReply
// and everything else with otherReply. Either reply may be an error.
type promptFilterGenerator struct {
	marker      string
	markedReply scriptedReply
	otherReply  scriptedReply
}

func (g *promptFilterGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, g.marker) {
		return g.markedReply.text, g.markedReply.err
	}
	return g.otherReply.text, g.otherReply.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, gen Generator) *Client {
	t.Helper()
	prompts, err := DefaultPrompts()
	require.NoError(t, err)
	return NewInferenceClient(gen, prompts, quietLogger())
}
