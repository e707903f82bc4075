package legalease

import (
	"context"

	"github.com/tyler-sommer/stick"
)

// clauseReplySchema accepts any object carrying a clauses array whose
// elements at least quote some source text. Risk levels are normalized after
// decoding rather than rejected here, so a single odd label doesn't discard
// an otherwise usable reply.
var clauseReplySchema = mustSchema("clauses.json", `{
	"type": "object",
	"required": ["clauses"],
	"properties": {
		"clauses": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["text"],
				"properties": {
					"text": {"type": "string", "minLength": 1},
					"summary": {"type": "string"},
					"riskLevel": {"type": "string"},
					"riskFactors": {"type": "array", "items": {"type": "string"}},
					"explanation": {"type": "string"},
					"category": {"type": "string"},
					"isStandard": {"type": "boolean"}
				}
			}
		}
	}
}`)

type clausePayload struct {
	Clauses []ClauseRecord `json:"clauses"`
}

// ClauseAnalyzer segments legal text into annotated clause records.
type ClauseAnalyzer struct {
	inf *Inferencer[clausePayload]
}

// NewClauseAnalyzer binds the clause-extraction prompt to c.
func NewClauseAnalyzer(c *Client) *ClauseAnalyzer {
	return &ClauseAnalyzer{inf: NewInferencer[clausePayload](c, "clauses", clauseReplySchema)}
}

// Analyze never fails: when the model is unusable it yields a single
// synthetic clause built from a prefix of the input, so downstream stages
// always have something to reason about.
func (s *ClauseAnalyzer) Analyze(ctx context.Context, text string) []ClauseRecord {
	out := s.inf.Infer(ctx, map[string]stick.Value{"document": text}, func(error) clausePayload {
		return clausePayload{Clauses: []ClauseRecord{fallbackClause(text)}}
	})

	clauses := out.Clauses
	for i := range clauses {
		clauses[i].RiskLevel = clauses[i].RiskLevel.normalize()
		if clauses[i].RiskFactors == nil {
			clauses[i].RiskFactors = []string{}
		}
	}
	return clauses
}

const fallbackClauseLimit = 500

// fallbackClause is the deterministic stand-in for a failed clause analysis.
func fallbackClause(text string) ClauseRecord {
	return ClauseRecord{
		Text:        truncateRunes(text, fallbackClauseLimit) + "...",
		Summary:     "Unable to analyze clauses automatically. Please review document manually.",
		RiskLevel:   RiskMedium,
		RiskFactors: []string{"Automatic analysis failed"},
		Explanation: "The AI analysis service encountered an error. Consider consulting a legal professional for detailed review.",
		Category:    "Unknown",
		IsStandard:  false,
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
