package domain

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// MoneyLeak é uma deficiência identificada pelo backend com perda mensal estimada.
// EstimatedLoss nulo significa que o backend não estimou o valor.
type MoneyLeak struct {
	Area          string          `json:"area"`
	Description   string          `json:"description"`
	EstimatedLoss *float64        `json:"estimated_loss"`
	Priority      Priority        `json:"priority"`
	FixServiceRef *FixServiceType `json:"fix_service_ref,omitempty"`
}

// LossSummary é o resultado da agregação das perdas.
// Empty diferencia "nenhum vazamento identificado" de uma auditoria com perda zero.
type LossSummary struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
	Empty bool    `json:"empty"`
}

// ReportMoneyLeak é o vazamento enriquecido com o serviço de correção do catálogo
type ReportMoneyLeak struct {
	MoneyLeak
	FixService *FixService `json:"fix_service,omitempty"`
}
