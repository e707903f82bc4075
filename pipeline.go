package legalease

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Analyzer composes extraction, clause analysis, insight aggregation, and
// language detection into one DocumentAnalysis. Each call is independent; the
// analyzer holds no per-request state.
type Analyzer struct {
	extractor *Extractor
	clauses   *ClauseAnalyzer
	insights  *InsightAggregator
	log       *slog.Logger
}

// NewAnalyzer wires the pipeline stages together.
func NewAnalyzer(extractor *Extractor, clauses *ClauseAnalyzer, insights *InsightAggregator, log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{extractor: extractor, clauses: clauses, insights: insights, log: log}
}

// Analyze runs the full pipeline. Extraction failures and empty content are
// the only errors it can surface; both AI stages degrade to deterministic
// fallbacks instead of propagating. Insight aggregation follows clause
// analysis sequentially because its prompt is built from clause statistics;
// language detection only reads the extracted text and runs alongside them.
func (a *Analyzer) Analyze(ctx context.Context, source string, mediaType MediaType) (*DocumentAnalysis, error) {
	text, err := a.extractor.Extract(ctx, source, mediaType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoContent
	}
	a.log.Debug("extracted text", "length", len(text), "media_type", mediaType)

	var language string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		language = DetectLanguage(text)
		return nil
	})

	clauses := a.clauses.Analyze(gctx, text)
	a.log.Debug("identified clauses", "count", len(clauses))

	insights := a.insights.Aggregate(gctx, text, clauses)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := insights.Summary
	if summary == "" {
		summary = "Document analysis completed"
	}
	documentType := insights.DocumentType
	if documentType == "" {
		documentType = "Legal Document"
	}

	a.log.Debug("document analysis completed",
		"clauses", len(clauses),
		"risk_score", insights.OverallRiskScore,
		"language", language)

	return &DocumentAnalysis{
		Summary:            summary,
		Clauses:            clauses,
		OverallRiskScore:   insights.OverallRiskScore,
		KeyInsights:        insights.KeyInsights,
		RecommendedActions: insights.RecommendedActions,
		Language:           language,
		DocumentType:       documentType,
	}, nil
}
