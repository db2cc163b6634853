package auditdomain

import "time"

// Audit é o payload de GET /audits/{id} como o backend entrega
type Audit struct {
	ID                   string        `json:"id"`
	BusinessName         string        `json:"businessName"`
	Status               string        `json:"status"`
	AIVisibilityScore    *float64      `json:"aiVisibilityScore"`
	MapsPresenceScore    *float64      `json:"mapsPresenceScore"`
	ReviewScore          *float64      `json:"reviewScore"`
	PhotoScore           *float64      `json:"photoScore"`
	SEOScore             *float64      `json:"seoScore"`
	CompetitorGapScore   *float64      `json:"competitorGapScore"`
	OverallScore         *float64      `json:"overallScore"`
	ChatGPTScore         *float64      `json:"chatgptScore"`
	GeminiScore          *float64      `json:"geminiScore"`
	PerplexityScore      *float64      `json:"perplexityScore"`
	EstimatedMonthlyLoss *float64      `json:"estimatedMonthlyLoss"`
	MoneyLeaks           []MoneyLeak   `json:"moneyLeaks"`
	LLMAnalysis          []LLMAnalysis `json:"llmAnalysis"`
	CreatedAt            time.Time     `json:"createdAt"`
	CompletedAt          *time.Time    `json:"completedAt"`
}

type MoneyLeak struct {
	Area          string   `json:"area"`
	Description   string   `json:"description"`
	EstimatedLoss *float64 `json:"estimatedLoss"`
	Priority      string   `json:"priority"`
	FixService    *string  `json:"fixService"`
}

type LLMAnalysis struct {
	Platform string     `json:"platform"`
	Score    *float64   `json:"score"`
	Issues   []LLMIssue `json:"issues"`
	Summary  string     `json:"summary"`
}

type LLMIssue struct {
	Issue       string  `json:"issue"`
	Fix         string  `json:"fix"`
	Severity    string  `json:"severity"`
	FixCategory *string `json:"fixCategory"`
}
