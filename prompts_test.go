package legalease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-sommer/stick"
)

func TestDefaultPrompts_LoadsEmbeddedSet(t *testing.T) {
	prompts, err := DefaultPrompts()
	require.NoError(t, err)

	for _, tag := range []string{"clauses", "insights", "qa", "questions", "translate", "translate_summary"} {
		_, err := prompts.GetPrompt(tag, map[string]stick.Value{
			"document": "d", "context": "c", "question": "q", "language": "l",
			"text": "t", "summary": "s", "documentType": "dt",
			"sourceLanguage": "sl", "targetLanguage": "tl",
			"clauseCount": 0, "highRisk": 0, "mediumRisk": 0, "lowRisk": 0, "categories": "",
		})
		assert.NoError(t, err, "tag %s", tag)
	}
}

func TestGetPrompt_InterpolatesVariables(t *testing.T) {
	prompts, err := NewStickPromptProvider(WithPromptTemplates(map[string]string{
		"greet": "Hello {{ name }}, you asked about {{ topic }}.",
	}))
	require.NoError(t, err)

	out, err := prompts.GetPrompt("greet", map[string]stick.Value{"name": "Ada", "topic": "liability"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada, you asked about liability.", out)
}

func TestGetPrompt_MissingTag(t *testing.T) {
	prompts, err := NewStickPromptProvider()
	require.NoError(t, err)

	_, err = prompts.GetPrompt("nope", nil)
	assert.Error(t, err)
}

func TestGetPrompt_ProviderWideVars(t *testing.T) {
	prompts, err := NewStickPromptProvider(
		WithPromptTemplates(map[string]string{"t": "{{ region }} / {{ local }}"}),
		WithPromptVar("region", "IN"),
	)
	require.NoError(t, err)

	out, err := prompts.GetPrompt("t", map[string]stick.Value{"local": "x"})
	require.NoError(t, err)
	assert.Equal(t, "IN / x", out)
}

func TestClausePromptKeepsJSONExample(t *testing.T) {
	prompts, err := DefaultPrompts()
	require.NoError(t, err)

	out, err := prompts.GetPrompt("clauses", map[string]stick.Value{"document": "THE DOC"})
	require.NoError(t, err)
	assert.Contains(t, out, "THE DOC")
	assert.Contains(t, out, `"riskLevel": "low|medium|high"`)
}
