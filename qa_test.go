package legalease

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerer_ParsesModelReply(t *testing.T) {
	gen := &scriptedGenerator{replies: []scriptedReply{{text: `
Here's what I found:
{
  "answer": "Yes, the deposit is refundable within 30 days.",
  "relatedClauses": ["Clause 4: Security Deposit"],
  "confidence": 85,
  "followUpQuestions": ["What if the landlord delays?"]
}`}}}
	answerer := NewAnswerer(newTestClient(t, gen))

	res := answerer.Ask(context.Background(), "Is my deposit refundable?", "lease text", "en")

	assert.Equal(t, "Is my deposit refundable?", res.Question)
	assert.Equal(t, "Yes, the deposit is refundable within 30 days.", res.Answer)
	assert.Equal(t, 85, res.Confidence)
	assert.Equal(t, []string{"Clause 4: Security Deposit"}, res.RelatedClauses)

	// The prompt embeds the question, the context, and the language name.
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Is my deposit refundable?")
	assert.Contains(t, gen.prompts[0], "lease text")
	assert.Contains(t, gen.prompts[0], "Respond in English.")
}

func TestAnswerer_LanguageHintUsesDisplayName(t *testing.T) {
	gen := &scriptedGenerator{replies: []scriptedReply{{text: `{"answer": "ठीक है"}`}}}
	answerer := NewAnswerer(newTestClient(t, gen))

	answerer.Ask(context.Background(), "q", "ctx", "hi")

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Respond in Hindi/हिंदी.")
}

func TestAnswerer_DefaultsWhenFieldsAbsent(t *testing.T) {
	gen := &StaticGenerator{Reply: `{"answer": "short answer"}`}
	answerer := NewAnswerer(newTestClient(t, gen))

	res := answerer.Ask(context.Background(), "q", "ctx", "en")

	assert.Equal(t, 50, res.Confidence)
	assert.NotNil(t, res.RelatedClauses)
	assert.Empty(t, res.RelatedClauses)
	assert.NotNil(t, res.FollowUpQuestions)
}

func TestAnswerer_NeverFails(t *testing.T) {
	gen := &StaticGenerator{Err: errors.New("connection reset")}
	answerer := NewAnswerer(newTestClient(t, gen))

	res := answerer.Ask(context.Background(), "q", "ctx", "en")

	assert.Equal(t, 0, res.Confidence)
	assert.Contains(t, res.Answer, "connection reset")
	require.Len(t, res.FollowUpQuestions, 3)
	assert.NotEmpty(t, res.FollowUpQuestions[0])
}

func TestSuggestQuestions_ParsesModelReply(t *testing.T) {
	gen := &StaticGenerator{Reply: `{"questions": ["What is the notice period?", "Who pays repairs?"]}`}
	answerer := NewAnswerer(newTestClient(t, gen))

	qs := answerer.SuggestQuestions(context.Background(), "lease text")

	assert.Equal(t, []string{"What is the notice period?", "Who pays repairs?"}, qs)
}

func TestSuggestQuestions_DefaultsOnFailure(t *testing.T) {
	gen := &StaticGenerator{Err: errors.New("boom")}
	answerer := NewAnswerer(newTestClient(t, gen))

	qs := answerer.SuggestQuestions(context.Background(), "lease text")

	assert.Equal(t, defaultQuestions(), qs)
	assert.Len(t, qs, 7)
}
