package legalease

import (
	"context"
	"fmt"
	"strings"

	"github.com/tyler-sommer/stick"
)

var insightReplySchema = mustSchema("insights.json", `{
	"type": "object",
	"required": ["summary"],
	"properties": {
		"summary": {"type": "string"},
		"documentType": {"type": "string"},
		"keyInsights": {"type": "array", "items": {"type": "string"}},
		"recommendedActions": {"type": "array", "items": {"type": "string"}},
		"overallRiskScore": {"type": "number"}
	}
}`)

// insightPayload mirrors the model's reply. OverallRiskScore is a pointer so
// an absent score is distinguishable from a genuine zero and can be
// back-filled with the named default.
type insightPayload struct {
	Summary            string   `json:"summary"`
	DocumentType       string   `json:"documentType"`
	KeyInsights        []string `json:"keyInsights"`
	RecommendedActions []string `json:"recommendedActions"`
	OverallRiskScore   *float64 `json:"overallRiskScore"`
}

// DocumentInsights is the aggregated document-level view produced by the
// insight stage, before pipeline assembly.
type DocumentInsights struct {
	Summary            string
	DocumentType       string
	KeyInsights        []string
	RecommendedActions []string
	OverallRiskScore   int
}

// InsightAggregator turns a clause sequence plus the raw text into
// document-level summary, type, insights, actions, and a 0-100 risk score.
type InsightAggregator struct {
	inf *Inferencer[insightPayload]
}

// NewInsightAggregator binds the summarization prompt to c.
func NewInsightAggregator(c *Client) *InsightAggregator {
	return &InsightAggregator{inf: NewInferencer[insightPayload](c, "insights", insightReplySchema)}
}

// Aggregate never fails: on any model problem it synthesizes insights from
// the clause statistics alone, so the result stays informative with zero AI
// availability. Model-provided risk scores are clamped into [0,100]; absent
// scores default to 50.
func (s *InsightAggregator) Aggregate(ctx context.Context, text string, clauses []ClauseRecord) DocumentInsights {
	high, medium, low := countByRisk(clauses)

	vars := map[string]stick.Value{
		"document":    text,
		"clauseCount": len(clauses),
		"highRisk":    high,
		"mediumRisk":  medium,
		"lowRisk":     low,
		"categories":  strings.Join(categories(clauses), ", "),
	}

	out := s.inf.Infer(ctx, vars, func(error) insightPayload {
		return fallbackInsights(len(clauses), high)
	})

	score := 50
	if out.OverallRiskScore != nil {
		score = clampScore(int(*out.OverallRiskScore))
	}
	if out.KeyInsights == nil {
		out.KeyInsights = []string{}
	}
	if out.RecommendedActions == nil {
		out.RecommendedActions = []string{}
	}

	return DocumentInsights{
		Summary:            out.Summary,
		DocumentType:       out.DocumentType,
		KeyInsights:        out.KeyInsights,
		RecommendedActions: out.RecommendedActions,
		OverallRiskScore:   score,
	}
}

// fallbackInsights derives a deterministic document view from clause counts.
// The score grows 20 points per high-risk clause from a base of 30, capped
// at 90.
func fallbackInsights(clauseCount, highRiskCount int) insightPayload {
	score := float64(min(90, 30+20*highRiskCount))
	return insightPayload{
		Summary:      "This document contains legal terms and conditions that require careful review.",
		DocumentType: "Legal Document",
		KeyInsights: []string{
			fmt.Sprintf("Document contains %d identifiable clauses", clauseCount),
			fmt.Sprintf("%d clauses marked as high risk", highRiskCount),
			"Consider professional legal review for complex terms",
		},
		RecommendedActions: []string{
			"Review all high-risk clauses carefully",
			"Seek clarification on unclear terms",
			"Consider legal consultation if needed",
		},
		OverallRiskScore: &score,
	}
}

func countByRisk(clauses []ClauseRecord) (high, medium, low int) {
	for _, c := range clauses {
		switch c.RiskLevel {
		case RiskHigh:
			high++
		case RiskMedium:
			medium++
		case RiskLow:
			low++
		}
	}
	return high, medium, low
}

func categories(clauses []ClauseRecord) []string {
	out := make([]string, 0, len(clauses))
	for _, c := range clauses {
		out = append(out, c.Category)
	}
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
