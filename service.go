package legalease

import (
	"context"
	"log/slog"
)

// Service is the outward-facing facade: one constructed instance per process,
// explicitly wired at the composition root, shared safely across requests.
type Service struct {
	analyzer   *Analyzer
	answerer   *Answerer
	translator *Translator
}

type serviceConfig struct {
	log     *slog.Logger
	prompts PromptProvider
	ocr     OCR
	ocrLang string
}

// ServiceOption configures New.
type ServiceOption func(*serviceConfig)

// WithLogger sets the logger shared by all components.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(c *serviceConfig) { c.log = log }
}

// WithPrompts overrides the embedded prompt set.
func WithPrompts(p PromptProvider) ServiceOption {
	return func(c *serviceConfig) { c.prompts = p }
}

// WithServiceOCR supplies the OCR capability for image media types. Without
// it the service defaults to the tesseract binary.
func WithServiceOCR(ocr OCR) ServiceOption {
	return func(c *serviceConfig) { c.ocr = ocr }
}

// WithServiceOCRLanguage sets the OCR language hint.
func WithServiceOCRLanguage(lang string) ServiceOption {
	return func(c *serviceConfig) { c.ocrLang = lang }
}

// New assembles the full service around a model capability.
func New(gen Generator, opts ...ServiceOption) (*Service, error) {
	cfg := serviceConfig{log: slog.Default(), ocrLang: "eng"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.prompts == nil {
		prompts, err := DefaultPrompts()
		if err != nil {
			return nil, err
		}
		cfg.prompts = prompts
	}
	if cfg.ocr == nil {
		cfg.ocr = NewTesseractOCR(WithTesseractLogger(cfg.log))
	}

	client := NewInferenceClient(gen, cfg.prompts, cfg.log)
	extractor := NewExtractor(
		WithOCR(cfg.ocr),
		WithOCRLanguage(cfg.ocrLang),
		WithExtractorLogger(cfg.log),
	)

	return &Service{
		analyzer:   NewAnalyzer(extractor, NewClauseAnalyzer(client), NewInsightAggregator(client), cfg.log),
		answerer:   NewAnswerer(client),
		translator: NewTranslator(client),
	}, nil
}

// Analyze runs the document pipeline. See Analyzer.Analyze for error tiers.
func (s *Service) Analyze(ctx context.Context, source string, mediaType MediaType) (*DocumentAnalysis, error) {
	return s.analyzer.Analyze(ctx, source, mediaType)
}

// Ask answers a question about a document context; never fails.
func (s *Service) Ask(ctx context.Context, question, documentContext, languageHint string) *QAResult {
	return s.answerer.Ask(ctx, question, documentContext, languageHint)
}

// SuggestQuestions proposes questions worth asking about a document.
func (s *Service) SuggestQuestions(ctx context.Context, documentContext string) []string {
	return s.answerer.SuggestQuestions(ctx, documentContext)
}

// Translate converts text into targetLanguage; never fails.
func (s *Service) Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) *TranslationResult {
	return s.translator.Translate(ctx, text, targetLanguage, sourceLanguage)
}

// TranslateSummary translates a document summary with type-aware prompting,
// degrading to a generic translation; never fails.
func (s *Service) TranslateSummary(ctx context.Context, summary, documentType, targetLanguage string) *TranslationResult {
	return s.translator.TranslateSummary(ctx, summary, documentType, targetLanguage)
}

// AvailableLanguages lists the translation catalog in stable order.
func (s *Service) AvailableLanguages() []Language {
	return AvailableLanguages()
}
