package domain

// CostComponent é uma parcela do custo unitário (ex.: chamada de API de mapas + inferência)
type CostComponent struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// SumCostComponents soma as parcelas de um custo unitário
func SumCostComponents(components ...CostComponent) float64 {
	total := 0.0
	for _, c := range components {
		total += c.Amount
	}
	return total
}

// CostAssumptions são as premissas de custo por unidade usadas na projeção operacional.
// As razões de adoção são premissas de negócio, não dados de uso reais.
type CostAssumptions struct {
	CostPerAudit           float64 `json:"cost_per_audit"`
	CostPerScan            float64 `json:"cost_per_scan"`
	CostPerLeadBatch       float64 `json:"cost_per_lead_batch"`
	CostPerFix             float64 `json:"cost_per_fix"`
	AvgRevenuePerCompany   float64 `json:"avg_revenue_per_company"`
	ScanAdoptionRatio      float64 `json:"scan_adoption_ratio"`
	LeadBatchAdoptionRatio float64 `json:"lead_batch_adoption_ratio"`
	FixesPerCompany        float64 `json:"fixes_per_company"`
}

func DefaultCostAssumptions() CostAssumptions {
	return CostAssumptions{
		CostPerAudit:           0.32,
		CostPerScan:            0.08,
		CostPerLeadBatch:       0.30,
		CostPerFix:             0.15,
		AvgRevenuePerCompany:   800,
		ScanAdoptionRatio:      0.5,
		LeadBatchAdoptionRatio: 0.3,
		FixesPerCompany:        1.5,
	}
}

// CompanyVolumeProjection é efêmera: recalculada a cada mudança de entrada
type CompanyVolumeProjection struct {
	CompanyCount int     `json:"company_count"`
	Audits       float64 `json:"audits"`
	Scans        float64 `json:"scans"`
	LeadBatches  float64 `json:"lead_batches"`
	AIFixes      float64 `json:"ai_fixes"`
	AuditCost    float64 `json:"audit_cost"`
	ScanCost     float64 `json:"scan_cost"`
	LeadCost     float64 `json:"lead_cost"`
	FixCost      float64 `json:"fix_cost"`
	TotalCost    float64 `json:"total_cost"`
	TotalRevenue float64 `json:"total_revenue"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

type CommissionAssumptions struct {
	AvgRevenuePerUser     float64 `json:"avg_revenue_per_user"`
	CommissionRatePercent float64 `json:"commission_rate_percent"`
	ReferralWindowMonths  int     `json:"referral_window_months"`
}

func DefaultCommissionAssumptions() CommissionAssumptions {
	return CommissionAssumptions{
		AvgRevenuePerUser:     800,
		CommissionRatePercent: 20,
		ReferralWindowMonths:  12,
	}
}

type PartnerCommissionProjection struct {
	ReferredUserCount     int     `json:"referred_user_count"`
	AvgRevenuePerUser     float64 `json:"avg_revenue_per_user"`
	CommissionRatePercent float64 `json:"commission_rate_percent"`
	GrossRevenue          float64 `json:"gross_revenue"`
	YourEarnings          float64 `json:"your_earnings"`
	MonthlyEquivalent     float64 `json:"monthly_equivalent"`
}
