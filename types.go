package legalease

// Model represents a generative model identifier.
type Model string

// DefaultModel is used when no model override is supplied.
const DefaultModel Model = "gemini-1.5-flash"

// RiskLevel classifies a clause's risk to an ordinary user.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// normalize maps unrecognized model output onto the medium level.
func (r RiskLevel) normalize() RiskLevel {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return r
	}
	return RiskMedium
}

// ClauseRecord is one contractual provision extracted from document text,
// annotated with risk metadata. Records are immutable once produced.
type ClauseRecord struct {
	Text        string    `json:"text"`
	Summary     string    `json:"summary"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	RiskFactors []string  `json:"riskFactors"`
	Explanation string    `json:"explanation"`
	Category    string    `json:"category"`
	IsStandard  bool      `json:"isStandard"`
}

// DocumentAnalysis is the result of one full pipeline run. Clause order is
// the model's stable discovery order, not necessarily document order.
// OverallRiskScore is always present and always within [0,100].
type DocumentAnalysis struct {
	Summary            string         `json:"summary"`
	Clauses            []ClauseRecord `json:"clauses"`
	OverallRiskScore   int            `json:"overallRiskScore"`
	KeyInsights        []string       `json:"keyInsights"`
	RecommendedActions []string       `json:"recommendedActions"`
	Language           string         `json:"language"`
	DocumentType       string         `json:"documentType"`
}

// QAResult answers a single question against a document context. The core
// keeps no cross-question memory; conversation history is the caller's
// concern.
type QAResult struct {
	Question          string   `json:"question"`
	Answer            string   `json:"answer"`
	RelatedClauses    []string `json:"relatedClauses"`
	Confidence        int      `json:"confidence"`
	FollowUpQuestions []string `json:"followUpQuestions"`
}

// TranslationResult carries one translation between two language codes.
type TranslationResult struct {
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	Confidence     int    `json:"confidence"`
}

// Language pairs an ISO-ish code with a display name used in prompts.
type Language struct {
	Code        string `json:"code"`
	DisplayName string `json:"name"`
}
