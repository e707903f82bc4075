package legalease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject_ProseAroundObject(t *testing.T) {
	reply := `Sure, here is the analysis you asked for:

{"answer": "The deposit is refundable.", "confidence": 80}

Let me know if you need anything else!`

	obj, ok := extractJSONObject(reply)
	require.True(t, ok)
	assert.Equal(t, `{"answer": "The deposit is refundable.", "confidence": 80}`, obj)
}

func TestExtractJSONObject_BracesInsideStrings(t *testing.T) {
	reply := `{"text": "clause } with { stray braces", "nested": {"level": 2}}`

	obj, ok := extractJSONObject(reply)
	require.True(t, ok)
	assert.Equal(t, reply, obj)
}

func TestExtractJSONObject_EscapedQuotes(t *testing.T) {
	reply := `{"text": "the \"whole\" clause } brace"}`

	obj, ok := extractJSONObject(reply)
	require.True(t, ok)
	assert.Equal(t, reply, obj)
}

func TestExtractJSONObject_FirstOfTwoObjectsWins(t *testing.T) {
	reply := `{"first": 1} and also {"second": 2}`

	obj, ok := extractJSONObject(reply)
	require.True(t, ok)
	assert.Equal(t, `{"first": 1}`, obj)
}

func TestExtractJSONObject_TruncatedObject(t *testing.T) {
	_, ok := extractJSONObject(`prose then {"answer": "cut off`)
	assert.False(t, ok)
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	_, ok := extractJSONObject("I'm sorry, I cannot help with that.")
	assert.False(t, ok)
}

func TestExtractJSONObject_CodeFences(t *testing.T) {
	reply := "```json\n{\"answer\": \"fenced\"}\n```"

	obj, ok := extractJSONObject(reply)
	require.True(t, ok)
	assert.Equal(t, `{"answer": "fenced"}`, obj)
}

func TestSanitizeReply(t *testing.T) {
	assert.Equal(t, `{"a":1}`, sanitizeReply("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, sanitizeReply("  {\"a\":1}  "))
}
