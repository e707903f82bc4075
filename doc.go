// Package legalease analyzes legal documents with the help of a generative
// language model and assembles the model's free-form replies into strict,
// machine-consumable results.
//
// The pipeline extracts plain text from an uploaded document (PDF, Word,
// plain text, or scanned images via OCR), asks the model to segment the text
// into annotated clauses, aggregates document-level insights and a 0-100 risk
// score, and detects the document's script-based language. Two further
// consumers of the same inference machinery answer questions about a document
// and translate text or summaries between languages.
//
// # Degradation over failure
//
// The model is treated as an unreliable external oracle. Every AI-backed
// operation converts provider errors, malformed replies, and schema
// violations into a deterministic, schema-valid fallback value instead of
// returning an error:
//
//	svc, _ := legalease.New(gen)
//	res := svc.Ask(ctx, "Can my landlord raise the rent?", contextText, "en")
//	// res is always renderable, even with the model fully unavailable.
//
// Only text extraction is fatal: ErrUnsupportedFormat, ErrNoContent, and
// *ExtractionError abort an analysis, because without text there is nothing
// to degrade to.
//
// # Structured inference
//
// Each AI stage is an Inferencer[T]: a prompt template rendered through stick,
// one Generator call, extraction of the first balanced JSON object from the
// reply, JSON Schema validation, and a per-stage fallback builder. See
// Inferencer for details.
package legalease
