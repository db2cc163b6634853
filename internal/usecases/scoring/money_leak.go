package scoring

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

// AggregateLoss soma as perdas estimadas. Perda nula, negativa ou não finita conta como 0.
// Lista vazia retorna Empty=true para diferenciar de uma auditoria com perda zero.
// A ordem dos vazamentos não é alterada.
func AggregateLoss(leaks []domain.MoneyLeak) domain.LossSummary {
	if len(leaks) == 0 {
		return domain.LossSummary{Empty: true}
	}

	total := decimal.Zero
	for _, leak := range leaks {
		if leak.EstimatedLoss == nil || *leak.EstimatedLoss < 0 || math.IsNaN(*leak.EstimatedLoss) || math.IsInf(*leak.EstimatedLoss, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(*leak.EstimatedLoss))
	}

	return domain.LossSummary{
		Total: total.InexactFloat64(),
		Count: len(leaks),
	}
}

func CountByPriority(leaks []domain.MoneyLeak) map[domain.Priority]int {
	counts := map[domain.Priority]int{
		domain.PriorityHigh:   0,
		domain.PriorityMedium: 0,
		domain.PriorityLow:    0,
	}

	for _, leak := range leaks {
		counts[leak.Priority]++
	}

	return counts
}
