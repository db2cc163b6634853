package scoring

import (
	"math"

	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

const (
	MinScore = 0
	MaxScore = 100
)

// Normalize converte um score bruto do backend em um inteiro de 0 a 100 com nota e faixa de cor.
// Score ausente ou NaN vira 0. Arredonda meio para cima antes de limitar ao intervalo.
func Normalize(raw *float64) domain.NormalizedScore {
	value := NormalizeValue(raw)

	return domain.NormalizedScore{
		Value: value,
		Grade: GradeFor(value),
		Tier:  TierFor(value),
	}
}

func NormalizeValue(raw *float64) int {
	if raw == nil || math.IsNaN(*raw) {
		return MinScore
	}

	v := *raw
	if v <= MinScore {
		return MinScore
	}
	if v >= MaxScore {
		return MaxScore
	}

	return int(math.Floor(v + 0.5))
}

// GradeFor usa limites inferiores inclusivos
func GradeFor(value int) domain.Grade {
	switch {
	case value >= 90:
		return domain.GradeAPlus
	case value >= 80:
		return domain.GradeA
	case value >= 70:
		return domain.GradeB
	case value >= 60:
		return domain.GradeC
	case value >= 50:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}

// TierFor classifica nos 4 tons dos cards. Não deve ser derivada da Grade.
func TierFor(value int) domain.ColorTier {
	switch {
	case value >= 80:
		return domain.TierEmerald
	case value >= 60:
		return domain.TierBlue
	case value >= 40:
		return domain.TierAmber
	default:
		return domain.TierRed
	}
}

// OpportunityLevelFor indica quanto espaço de melhoria existe a partir do score geral
func OpportunityLevelFor(overall domain.NormalizedScore) domain.OpportunityLevel {
	switch {
	case overall.Value < 40:
		return domain.OpportunityHigh
	case overall.Value < 70:
		return domain.OpportunityMedium
	default:
		return domain.OpportunityLow
	}
}

// NormalizeMap normaliza um conjunto nomeado de scores, preservando as chaves recebidas
func NormalizeMap(raw map[string]*float64) map[string]domain.NormalizedScore {
	result := make(map[string]domain.NormalizedScore, len(raw))
	for name, score := range raw {
		result[name] = Normalize(score)
	}
	return result
}
