package legalease

import (
	"context"
	"fmt"

	"github.com/tyler-sommer/stick"
)

var translationReplySchema = mustSchema("translate.json", `{
	"type": "object",
	"required": ["translatedText"],
	"properties": {
		"translatedText": {"type": "string"},
		"confidence": {"type": "number"},
		"notes": {"type": "string"}
	}
}`)

type translationPayload struct {
	TranslatedText string   `json:"translatedText"`
	Confidence     *float64 `json:"confidence"`
	Notes          string   `json:"notes"`
}

// Translator translates legal text between catalog languages, preserving
// legal meaning over literal wording.
type Translator struct {
	generic *Inferencer[translationPayload]
	summary *Inferencer[translationPayload]
}

// NewTranslator binds the translation prompts to c.
func NewTranslator(c *Client) *Translator {
	return &Translator{
		generic: NewInferencer[translationPayload](c, "translate", translationReplySchema),
		summary: NewInferencer[translationPayload](c, "translate_summary", translationReplySchema),
	}
}

// Translate converts text into targetLanguage. An empty sourceLanguage
// defaults to "en". It never fails: on any model problem the result carries
// a failure notice as the translated text and confidence 0.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) *TranslationResult {
	if sourceLanguage == "" {
		sourceLanguage = "en"
	}

	vars := map[string]stick.Value{
		"text":           text,
		"sourceLanguage": languageName(sourceLanguage),
		"targetLanguage": languageName(targetLanguage),
	}

	out := t.generic.Infer(ctx, vars, func(reason error) translationPayload {
		zero := 0.0
		return translationPayload{
			TranslatedText: fmt.Sprintf("Translation failed: %v", reason),
			Confidence:     &zero,
		}
	})

	return t.assemble(text, sourceLanguage, targetLanguage, out)
}

// TranslateSummary translates a document summary with document-type-aware
// prompting. When that call fails it delegates to the generic Translate with
// the summary as plain text, so the degraded path is a real translation
// attempt rather than a static notice.
func (t *Translator) TranslateSummary(ctx context.Context, summary, documentType, targetLanguage string) *TranslationResult {
	vars := map[string]stick.Value{
		"summary":        summary,
		"documentType":   documentType,
		"targetLanguage": languageName(targetLanguage),
	}

	delegated := false
	var delegate *TranslationResult
	out := t.summary.Infer(ctx, vars, func(error) translationPayload {
		delegated = true
		delegate = t.Translate(ctx, summary, targetLanguage, "en")
		return translationPayload{}
	})
	if delegated {
		return delegate
	}

	return t.assemble(summary, "en", targetLanguage, out)
}

func (t *Translator) assemble(original, source, target string, out translationPayload) *TranslationResult {
	confidence := 70
	if out.Confidence != nil {
		confidence = int(*out.Confidence)
	}
	translated := out.TranslatedText
	if translated == "" {
		translated = original
	}
	return &TranslationResult{
		OriginalText:   original,
		TranslatedText: translated,
		SourceLanguage: source,
		TargetLanguage: target,
		Confidence:     confidence,
	}
}
