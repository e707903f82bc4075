package legalease

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// GeminiGenerator implements Generator using the Google GenAI SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  Model
	log    *slog.Logger
}

// NewGeminiGenerator wraps an already-constructed genai client. The client's
// lifecycle (API key binding included) is owned by the composition root, not
// by this package. An empty model selects DefaultModel.
func NewGeminiGenerator(client *genai.Client, model Model, log *slog.Logger) *GeminiGenerator {
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = slog.Default()
	}
	return &GeminiGenerator{client: client, model: model, log: log}
}

// Generate sends a single text prompt and returns the text of the first
// candidate part.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("genai client not initialized")
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	g.log.Debug("generating content", "model", g.model, "prompt_length", len(prompt))
	resp, err := g.client.Models.GenerateContent(ctx, string(g.model), contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no parts in candidate content")
	}
	text := candidate.Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("no text in first part of response")
	}

	g.log.Debug("generated content", "model", g.model, "response_length", len(text))
	return text, nil
}
