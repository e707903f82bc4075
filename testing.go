package legalease

import "context"

// StaticGenerator is a Generator returning a fixed reply (or error) for
// every prompt. Useful for tests that don't need a real model client.
type StaticGenerator struct {
	Reply string
	Err   error
}

func (g *StaticGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.Err != nil {
		return "", g.Err
	}
	return g.Reply, nil
}
