package legalease

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tyler-sommer/stick"
)

// Generator is the single capability expected from a model provider: full
// prompt in, raw textual reply out. The call is single-shot and
// non-streaming; any retry or timeout policy belongs to the caller's
// transport, not here.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Soft-failure reasons converted into fallback values by Inferencer.Infer.
var (
	errNoJSONObject = errors.New("reply contains no JSON object")
	errBadShape     = errors.New("reply JSON does not match expected shape")
)

// Client bundles the model capability with prompt rendering and logging.
// One Client is shared by every Inferencer; it holds no per-request state.
type Client struct {
	gen     Generator
	prompts PromptProvider
	log     *slog.Logger
}

// NewInferenceClient wires a Generator and a PromptProvider together.
// A nil logger falls back to slog.Default().
func NewInferenceClient(gen Generator, prompts PromptProvider, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{gen: gen, prompts: prompts, log: log}
}

// FallbackFunc builds a deterministic stand-in value when the model call or
// its reply is unusable. The triggering error is passed in so fallbacks can
// embed a description of what went wrong.
type FallbackFunc[T any] func(reason error) T

// Inferencer runs one prompt template against the model and shapes the reply
// into T. Its contract is "always returns a value of the declared shape":
// provider errors, missing or malformed JSON, and schema violations all
// produce the fallback value, never an error.
type Inferencer[T any] struct {
	client *Client
	tag    string
	schema *jsonschema.Schema // nil skips structural validation
}

// NewInferencer binds a prompt tag and an expected reply schema to a Client.
func NewInferencer[T any](c *Client, tag string, schema *jsonschema.Schema) *Inferencer[T] {
	return &Inferencer[T]{client: c, tag: tag, schema: schema}
}

// Infer renders the tag's template with vars, invokes the model once, and
// extracts, validates, and decodes the first balanced JSON object in the
// reply. Every failure mode degrades to fallback(reason).
func (x *Inferencer[T]) Infer(ctx context.Context, vars map[string]stick.Value, fallback FallbackFunc[T]) T {
	log := x.client.log

	prompt, err := x.client.prompts.GetPrompt(x.tag, vars)
	if err != nil {
		log.Warn("prompt rendering failed, using fallback", "tag", x.tag, "error", err)
		return fallback(err)
	}
	log.Debug("invoking model", "tag", x.tag, "prompt_length", len(prompt))

	reply, err := x.client.gen.Generate(ctx, prompt)
	if err != nil {
		log.Warn("model call failed, using fallback", "tag", x.tag, "error", err)
		return fallback(err)
	}
	log.Debug("model replied", "tag", x.tag, "reply_length", len(reply))

	payload, ok := extractJSONObject(reply)
	if !ok {
		log.Warn("reply contains no JSON object, using fallback", "tag", x.tag)
		return fallback(errNoJSONObject)
	}

	var probe any
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		log.Warn("reply JSON is malformed, using fallback", "tag", x.tag, "error", err)
		return fallback(fmt.Errorf("%w: %v", errNoJSONObject, err))
	}

	if x.schema != nil {
		if err := x.schema.Validate(probe); err != nil {
			log.Warn("reply failed shape validation, using fallback", "tag", x.tag, "error", err)
			return fallback(fmt.Errorf("%w: %v", errBadShape, err))
		}
	}

	var out T
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		log.Warn("reply does not decode into result type, using fallback", "tag", x.tag, "error", err)
		return fallback(fmt.Errorf("%w: %v", errBadShape, err))
	}
	return out
}

// mustSchema compiles a schema literal; the literals live next to each stage.
func mustSchema(name, schema string) *jsonschema.Schema {
	return jsonschema.MustCompileString(name, schema)
}
