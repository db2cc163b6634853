package projecting

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

const (
	DefaultCompanyCount = 10

	// MaxInputAmount é o maior valor aceito para custos, receitas e razões.
	// Com quantidades limitadas a int64 os resultados continuam finitos.
	MaxInputAmount = 1e12
)

// ProjectCosts projeta o custo operacional e a margem para um volume de empresas.
// Quantidade menor que 1 usa DefaultCompanyCount. Margem é 0 quando não há receita.
func ProjectCosts(companyCount int, a domain.CostAssumptions) domain.CompanyVolumeProjection {
	return ProjectCostsWithDefault(companyCount, DefaultCompanyCount, a)
}

func ProjectCostsWithDefault(companyCount, defaultCount int, a domain.CostAssumptions) domain.CompanyVolumeProjection {
	if companyCount < 1 {
		companyCount = defaultCount
	}
	if companyCount < 1 {
		companyCount = DefaultCompanyCount
	}

	count := decimal.NewFromInt(int64(companyCount))

	audits := count
	scans := count.Mul(toDecimal(a.ScanAdoptionRatio))
	leadBatches := count.Mul(toDecimal(a.LeadBatchAdoptionRatio))
	aiFixes := count.Mul(toDecimal(a.FixesPerCompany))

	auditCost := audits.Mul(toDecimal(a.CostPerAudit))
	scanCost := scans.Mul(toDecimal(a.CostPerScan))
	leadCost := leadBatches.Mul(toDecimal(a.CostPerLeadBatch))
	fixCost := aiFixes.Mul(toDecimal(a.CostPerFix))

	totalCost := auditCost.Add(scanCost).Add(leadCost).Add(fixCost)
	totalRevenue := count.Mul(toDecimal(a.AvgRevenuePerCompany))
	profit := totalRevenue.Sub(totalCost)

	profitMargin := decimal.Zero
	if !totalRevenue.IsZero() {
		profitMargin = profit.Div(totalRevenue).Mul(decimal.NewFromInt(100))
	}

	return domain.CompanyVolumeProjection{
		CompanyCount: companyCount,
		Audits:       audits.InexactFloat64(),
		Scans:        scans.InexactFloat64(),
		LeadBatches:  leadBatches.InexactFloat64(),
		AIFixes:      aiFixes.InexactFloat64(),
		AuditCost:    auditCost.InexactFloat64(),
		ScanCost:     scanCost.InexactFloat64(),
		LeadCost:     leadCost.InexactFloat64(),
		FixCost:      fixCost.InexactFloat64(),
		TotalCost:    totalCost.InexactFloat64(),
		TotalRevenue: totalRevenue.InexactFloat64(),
		Profit:       profit.InexactFloat64(),
		ProfitMargin: profitMargin.InexactFloat64(),
	}
}

// ParseCompanyCount interpreta a quantidade vinda de formulário ou query string.
// Entrada não numérica ou não positiva retorna o padrão.
func ParseCompanyCount(raw string, defaultCount int) int {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || count < 1 {
		return defaultCount
	}

	return count
}

// toDecimal descarta NaN e infinito, que fariam o decimal entrar em pânico, e limita
// o módulo a MaxInputAmount para que nenhum produto estoure para infinito
func toDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(capAmount(f))
}

// capAmount limita valores monetários e premissas a ±MaxInputAmount
func capAmount(f float64) float64 {
	switch {
	case f > MaxInputAmount:
		return MaxInputAmount
	case f < -MaxInputAmount:
		return -MaxInputAmount
	default:
		return f
	}
}
