package domain

type Platform string

const (
	PlatformChatGPT    Platform = "chatgpt"
	PlatformGemini     Platform = "gemini"
	PlatformPerplexity Platform = "perplexity"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type LLMIssue struct {
	Issue       string   `json:"issue"`
	Fix         string   `json:"fix"`
	Severity    Severity `json:"severity"`
	FixCategory *string  `json:"fix_category,omitempty"`
}

// LLMIssueSet agrupa os problemas de visibilidade de uma plataforma de IA
type LLMIssueSet struct {
	Platform Platform   `json:"platform"`
	Score    *float64   `json:"score"`
	Issues   []LLMIssue `json:"issues"`
	Summary  string     `json:"summary"`
}
