package domain

import "time"

// AuditStatus representa o estado de processamento de uma auditoria no backend
type AuditStatus string

const (
	AuditStatusPending   AuditStatus = "pending"
	AuditStatusScanning  AuditStatus = "scanning"
	AuditStatusAnalyzing AuditStatus = "analyzing"
	AuditStatusComplete  AuditStatus = "complete"
	AuditStatusFailed    AuditStatus = "failed"
)

// auditStatusOrder define a ordem de avanço do pipeline; estados terminais dividem a mesma posição
var auditStatusOrder = map[AuditStatus]int{
	AuditStatusPending:   0,
	AuditStatusScanning:  1,
	AuditStatusAnalyzing: 2,
	AuditStatusComplete:  3,
	AuditStatusFailed:    3,
}

func (s AuditStatus) IsValid() bool {
	_, ok := auditStatusOrder[s]
	return ok
}

// IsTerminal indica que o polling pode parar
func (s AuditStatus) IsTerminal() bool {
	return s == AuditStatusComplete || s == AuditStatusFailed
}

// CanTransitionTo verifica se a mudança de status respeita a ordem do pipeline.
// Permanecer no mesmo estado é válido; qualquer estado não terminal pode ir para failed.
func (s AuditStatus) CanTransitionTo(next AuditStatus) bool {
	if !s.IsValid() || !next.IsValid() {
		return false
	}

	if s == next {
		return true
	}

	if s.IsTerminal() {
		return false
	}

	if next == AuditStatusFailed {
		return true
	}

	return auditStatusOrder[next] > auditStatusOrder[s]
}

// AuditSnapshot é a fotografia somente leitura de uma auditoria recebida do backend.
// Sub-scores nulos significam "não medido" e são tratados como 0 na normalização.
// OverallScore é confiado como veio; nunca é recalculado aqui.
type AuditSnapshot struct {
	ID                   string        `json:"id"`
	BusinessName         string        `json:"business_name"`
	Status               AuditStatus   `json:"status"`
	AIVisibilityScore    *float64      `json:"ai_visibility_score"`
	MapsPresenceScore    *float64      `json:"maps_presence_score"`
	ReviewScore          *float64      `json:"review_score"`
	PhotoScore           *float64      `json:"photo_score"`
	SEOScore             *float64      `json:"seo_score"`
	CompetitorGapScore   *float64      `json:"competitor_gap_score"`
	OverallScore         *float64      `json:"overall_score"`
	ChatGPTScore         *float64      `json:"chatgpt_score"`
	GeminiScore          *float64      `json:"gemini_score"`
	PerplexityScore      *float64      `json:"perplexity_score"`
	EstimatedMonthlyLoss float64       `json:"estimated_monthly_loss"`
	MoneyLeaks           []MoneyLeak   `json:"money_leaks"`
	LLMIssueSets         []LLMIssueSet `json:"llm_issue_sets"`
	CreatedAt            time.Time     `json:"created_at"`
	CompletedAt          *time.Time    `json:"completed_at,omitempty"`
}
