package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		raw           *float64
		expectedValue int
		expectedGrade domain.Grade
		expectedTier  domain.ColorTier
	}{
		{name: "Score ausente vira zero", raw: nil, expectedValue: 0, expectedGrade: domain.GradeF, expectedTier: domain.TierRed},
		{name: "NaN vira zero", raw: floatPtr(math.NaN()), expectedValue: 0, expectedGrade: domain.GradeF, expectedTier: domain.TierRed},
		{name: "Negativo limitado a zero", raw: floatPtr(-12.7), expectedValue: 0, expectedGrade: domain.GradeF, expectedTier: domain.TierRed},
		{name: "Acima de 100 limitado", raw: floatPtr(140), expectedValue: 100, expectedGrade: domain.GradeAPlus, expectedTier: domain.TierEmerald},
		{name: "Infinito positivo limitado", raw: floatPtr(math.Inf(1)), expectedValue: 100, expectedGrade: domain.GradeAPlus, expectedTier: domain.TierEmerald},
		{name: "Infinito negativo limitado", raw: floatPtr(math.Inf(-1)), expectedValue: 0, expectedGrade: domain.GradeF, expectedTier: domain.TierRed},
		{name: "Meio arredonda para cima", raw: floatPtr(89.5), expectedValue: 90, expectedGrade: domain.GradeAPlus, expectedTier: domain.TierEmerald},
		{name: "Abaixo do meio arredonda para baixo", raw: floatPtr(89.49), expectedValue: 89, expectedGrade: domain.GradeA, expectedTier: domain.TierEmerald},
		{name: "Faixa azul", raw: floatPtr(72), expectedValue: 72, expectedGrade: domain.GradeB, expectedTier: domain.TierBlue},
		{name: "Faixa âmbar", raw: floatPtr(45), expectedValue: 45, expectedGrade: domain.GradeF, expectedTier: domain.TierAmber},
		{name: "Nota D e âmbar", raw: floatPtr(55), expectedValue: 55, expectedGrade: domain.GradeD, expectedTier: domain.TierAmber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.raw)

			assert.Equal(t, tt.expectedValue, result.Value)
			assert.Equal(t, tt.expectedGrade, result.Grade)
			assert.Equal(t, tt.expectedTier, result.Tier)
		})
	}
}

func TestGradeFor_Boundaries(t *testing.T) {
	assert.Equal(t, domain.GradeAPlus, GradeFor(90))
	assert.Equal(t, domain.GradeA, GradeFor(89))
	assert.Equal(t, domain.GradeA, GradeFor(80))
	assert.Equal(t, domain.GradeB, GradeFor(79))
	assert.Equal(t, domain.GradeB, GradeFor(70))
	assert.Equal(t, domain.GradeC, GradeFor(60))
	assert.Equal(t, domain.GradeD, GradeFor(50))
	assert.Equal(t, domain.GradeF, GradeFor(49))
	assert.Equal(t, domain.GradeF, GradeFor(0))
}

func TestTierFor_Boundaries(t *testing.T) {
	assert.Equal(t, domain.TierEmerald, TierFor(80))
	assert.Equal(t, domain.TierBlue, TierFor(79))
	assert.Equal(t, domain.TierBlue, TierFor(60))
	assert.Equal(t, domain.TierAmber, TierFor(59))
	assert.Equal(t, domain.TierAmber, TierFor(40))
	assert.Equal(t, domain.TierRed, TierFor(39))
}

func TestNormalize_MonotonicAndBounded(t *testing.T) {
	previous := -1
	for raw := -20.0; raw <= 120.0; raw += 0.25 {
		r := raw
		value := Normalize(&r).Value

		assert.GreaterOrEqual(t, value, MinScore)
		assert.LessOrEqual(t, value, MaxScore)
		assert.GreaterOrEqual(t, value, previous, "normalização deve ser não decrescente em %v", raw)
		previous = value
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := floatPtr(67.5)
	assert.Equal(t, Normalize(raw), Normalize(raw))
}

func TestOpportunityLevelFor(t *testing.T) {
	assert.Equal(t, domain.OpportunityHigh, OpportunityLevelFor(Normalize(floatPtr(12))))
	assert.Equal(t, domain.OpportunityHigh, OpportunityLevelFor(Normalize(floatPtr(39))))
	assert.Equal(t, domain.OpportunityMedium, OpportunityLevelFor(Normalize(floatPtr(40))))
	assert.Equal(t, domain.OpportunityMedium, OpportunityLevelFor(Normalize(floatPtr(69))))
	assert.Equal(t, domain.OpportunityLow, OpportunityLevelFor(Normalize(floatPtr(70))))
}

func TestNormalizeMap(t *testing.T) {
	result := NormalizeMap(map[string]*float64{
		"seo":     floatPtr(81.2),
		"reviews": nil,
	})

	assert.Len(t, result, 2)
	assert.Equal(t, 81, result["seo"].Value)
	assert.Equal(t, 0, result["reviews"].Value)
}
