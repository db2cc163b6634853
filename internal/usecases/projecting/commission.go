package projecting

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

const (
	DefaultCommissionRatePercent = 20.0
	DefaultReferralWindowMonths  = 12
)

// ProjectCommission projeta o ganho do parceiro sobre a janela de indicação padrão de 12 meses
func ProjectCommission(referredUserCount int, avgRevenuePerUser, commissionRatePercent float64) domain.PartnerCommissionProjection {
	return ProjectCommissionOverWindow(referredUserCount, avgRevenuePerUser, commissionRatePercent, DefaultReferralWindowMonths)
}

// ProjectCommissionOverWindow aplica a mesma conta com uma janela configurada.
// Sem indicações todas as saídas são 0. A taxa é limitada a [0,100] e a receita média a MaxInputAmount.
func ProjectCommissionOverWindow(referredUserCount int, avgRevenuePerUser, commissionRatePercent float64, windowMonths int) domain.PartnerCommissionProjection {
	rate := clampRate(commissionRatePercent)
	if avgRevenuePerUser < 0 || math.IsNaN(avgRevenuePerUser) || math.IsInf(avgRevenuePerUser, 0) {
		avgRevenuePerUser = 0
	}
	avgRevenuePerUser = capAmount(avgRevenuePerUser)
	if windowMonths < 1 {
		windowMonths = DefaultReferralWindowMonths
	}

	if referredUserCount <= 0 {
		return domain.PartnerCommissionProjection{
			AvgRevenuePerUser:     avgRevenuePerUser,
			CommissionRatePercent: rate,
		}
	}

	gross := decimal.NewFromInt(int64(referredUserCount)).Mul(decimal.NewFromFloat(avgRevenuePerUser))
	earnings := gross.Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100))
	monthly := earnings.Div(decimal.NewFromInt(int64(windowMonths)))

	return domain.PartnerCommissionProjection{
		ReferredUserCount:     referredUserCount,
		AvgRevenuePerUser:     avgRevenuePerUser,
		CommissionRatePercent: rate,
		GrossRevenue:          gross.InexactFloat64(),
		YourEarnings:          earnings.InexactFloat64(),
		MonthlyEquivalent:     monthly.InexactFloat64(),
	}
}

// ResolveCommissionRate usa a taxa do parceiro quando existir, senão a padrão
func ResolveCommissionRate(partner *domain.Partner, defaultRate float64) float64 {
	if partner != nil && partner.CommissionRate != nil {
		return clampRate(*partner.CommissionRate)
	}

	return clampRate(defaultRate)
}

func clampRate(rate float64) float64 {
	return domain.ClampCommissionRate(rate)
}
