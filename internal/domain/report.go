package domain

import "time"

// AuditReport é a visão derivada que as páginas de resultado consomem.
// Enquanto a auditoria não termina, apenas Status é preenchido.
type AuditReport struct {
	AuditID              string            `json:"audit_id"`
	BusinessName         string            `json:"business_name"`
	Status               AuditStatus       `json:"status"`
	ScoreCard            *ScoreCard        `json:"score_card,omitempty"`
	Losses               *LossSummary      `json:"losses,omitempty"`
	EstimatedMonthlyLoss float64           `json:"estimated_monthly_loss"`
	LeaksByPriority      map[Priority]int  `json:"leaks_by_priority,omitempty"`
	MoneyLeaks           []ReportMoneyLeak `json:"money_leaks,omitempty"`
	Opportunity          OpportunityLevel  `json:"opportunity,omitempty"`
	GeneratedAt          time.Time         `json:"generated_at"`
}

// AuditWatch é o estado de um acompanhamento em background de uma auditoria
type AuditWatch struct {
	ID         string      `json:"id"`
	AuditID    string      `json:"audit_id"`
	Status     AuditStatus `json:"status"`
	Done       bool        `json:"done"`
	Error      string      `json:"error,omitempty"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
}
