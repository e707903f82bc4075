package legalease

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func highRiskClauses(n int) []ClauseRecord {
	out := make([]ClauseRecord, n)
	for i := range out {
		out[i] = ClauseRecord{Text: "clause", RiskLevel: RiskHigh, Category: "Liability"}
	}
	return out
}

func TestInsightAggregator_FallbackScore(t *testing.T) {
	gen := &StaticGenerator{Err: errors.New("provider down")}
	agg := NewInsightAggregator(newTestClient(t, gen))

	cases := []struct {
		highRisk int
		want     int
	}{
		{0, 30},
		{3, 90},
		{10, 90}, // capped, not 230
	}
	for _, tc := range cases {
		got := agg.Aggregate(context.Background(), "text", highRiskClauses(tc.highRisk))
		assert.Equal(t, tc.want, got.OverallRiskScore, "high-risk count %d", tc.highRisk)
	}
}

func TestInsightAggregator_FallbackStaysInformative(t *testing.T) {
	gen := &StaticGenerator{Reply: "not json"}
	agg := NewInsightAggregator(newTestClient(t, gen))

	got := agg.Aggregate(context.Background(), "text", highRiskClauses(2))

	assert.Equal(t, "Legal Document", got.DocumentType)
	assert.NotEmpty(t, got.Summary)
	require.Len(t, got.KeyInsights, 3)
	assert.Contains(t, got.KeyInsights[0], "2 identifiable clauses")
	assert.Contains(t, got.KeyInsights[1], "2 clauses marked as high risk")
	assert.Len(t, got.RecommendedActions, 3)
}

func TestInsightAggregator_ClampsModelScore(t *testing.T) {
	for _, tc := range []struct {
		score string
		want  int
	}{
		{"250", 100},
		{"-5", 0},
		{"75", 75},
	} {
		gen := &StaticGenerator{Reply: `{"summary": "ok", "overallRiskScore": ` + tc.score + `}`}
		agg := NewInsightAggregator(newTestClient(t, gen))

		got := agg.Aggregate(context.Background(), "text", nil)
		assert.Equal(t, tc.want, got.OverallRiskScore, "model score %s", tc.score)
	}
}

func TestInsightAggregator_MissingScoreDefaultsTo50(t *testing.T) {
	gen := &StaticGenerator{Reply: `{"summary": "a short agreement"}`}
	agg := NewInsightAggregator(newTestClient(t, gen))

	got := agg.Aggregate(context.Background(), "text", nil)

	assert.Equal(t, 50, got.OverallRiskScore)
	assert.Equal(t, "a short agreement", got.Summary)
	assert.NotNil(t, got.KeyInsights)
	assert.NotNil(t, got.RecommendedActions)
}

func TestInsightAggregator_PromptCarriesClauseStatistics(t *testing.T) {
	gen := &scriptedGenerator{replies: []scriptedReply{{text: `{"summary": "ok"}`}}}
	agg := NewInsightAggregator(newTestClient(t, gen))

	clauses := append(highRiskClauses(1), ClauseRecord{Text: "x", RiskLevel: RiskLow, Category: "Payment"})
	agg.Aggregate(context.Background(), "the document body", clauses)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "2 clauses")
	assert.Contains(t, prompt, "High risk: 1")
	assert.Contains(t, prompt, "Low risk: 1")
	assert.Contains(t, prompt, "Liability, Payment")
	assert.Contains(t, prompt, "the document body")
}
