package legalease

import (
	"context"
	"fmt"

	"github.com/tyler-sommer/stick"
)

var qaReplySchema = mustSchema("qa.json", `{
	"type": "object",
	"required": ["answer"],
	"properties": {
		"answer": {"type": "string"},
		"relatedClauses": {"type": "array", "items": {"type": "string"}},
		"confidence": {"type": "number"},
		"followUpQuestions": {"type": "array", "items": {"type": "string"}}
	}
}`)

var questionsReplySchema = mustSchema("questions.json", `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {"type": "array", "items": {"type": "string"}}
	}
}`)

type qaPayload struct {
	Answer            string   `json:"answer"`
	RelatedClauses    []string `json:"relatedClauses"`
	Confidence        *float64 `json:"confidence"`
	FollowUpQuestions []string `json:"followUpQuestions"`
}

type questionsPayload struct {
	Questions []string `json:"questions"`
}

// Answerer answers single questions against a supplied document context.
type Answerer struct {
	qa        *Inferencer[qaPayload]
	questions *Inferencer[questionsPayload]
}

// NewAnswerer binds the QA prompts to c.
func NewAnswerer(c *Client) *Answerer {
	return &Answerer{
		qa:        NewInferencer[qaPayload](c, "qa", qaReplySchema),
		questions: NewInferencer[questionsPayload](c, "questions", questionsReplySchema),
	}
}

// Ask answers one question about documentContext, instructing the model to
// reply in the language named by languageHint. It never fails: on any model
// problem the caller receives an apologetic answer carrying the error
// description, confidence 0, and generic follow-up questions.
func (a *Answerer) Ask(ctx context.Context, question, documentContext, languageHint string) *QAResult {
	vars := map[string]stick.Value{
		"question": question,
		"context":  documentContext,
		"language": languageName(languageHint),
	}

	out := a.qa.Infer(ctx, vars, func(reason error) qaPayload {
		zero := 0.0
		return qaPayload{
			Answer: fmt.Sprintf("I apologize, but I encountered an error while processing your question. "+
				"Please try rephrasing your question or contact support if the issue persists. Error: %v", reason),
			RelatedClauses:    []string{},
			Confidence:        &zero,
			FollowUpQuestions: fallbackFollowUps(),
		}
	})

	confidence := 50
	if out.Confidence != nil {
		confidence = int(*out.Confidence)
	}
	if out.RelatedClauses == nil {
		out.RelatedClauses = []string{}
	}
	if out.FollowUpQuestions == nil {
		out.FollowUpQuestions = []string{}
	}

	return &QAResult{
		Question:          question,
		Answer:            out.Answer,
		RelatedClauses:    out.RelatedClauses,
		Confidence:        confidence,
		FollowUpQuestions: out.FollowUpQuestions,
	}
}

// SuggestQuestions generates questions a user should ask about the document.
// On any model problem it returns the fixed default list.
func (a *Answerer) SuggestQuestions(ctx context.Context, documentContext string) []string {
	out := a.questions.Infer(ctx, map[string]stick.Value{"context": documentContext},
		func(error) questionsPayload {
			return questionsPayload{Questions: defaultQuestions()}
		})
	if len(out.Questions) == 0 {
		return defaultQuestions()
	}
	return out.Questions
}

func fallbackFollowUps() []string {
	return []string{
		"Can you explain this in simpler terms?",
		"What are the main risks I should be aware of?",
		"Are there any standard alternatives to this clause?",
	}
}

func defaultQuestions() []string {
	return []string{
		"What are my main obligations under this agreement?",
		"How can this agreement be terminated?",
		"What penalties or fees might I face?",
		"What happens if I want to cancel early?",
		"Are there any unusual or risky clauses I should know about?",
		"What are my rights if the other party breaches the agreement?",
		"Are there any important deadlines I need to remember?",
	}
}
