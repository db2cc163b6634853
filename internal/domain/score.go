package domain

// Grade é a nota em letra usada no relatório de auditoria
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// ColorTier é a classificação de 4 faixas usada pelos cards do dashboard.
// É independente da Grade: as faixas de corte são diferentes.
type ColorTier string

const (
	TierEmerald ColorTier = "emerald"
	TierBlue    ColorTier = "blue"
	TierAmber   ColorTier = "amber"
	TierRed     ColorTier = "red"
)

type OpportunityLevel string

const (
	OpportunityHigh   OpportunityLevel = "High"
	OpportunityMedium OpportunityLevel = "Medium"
	OpportunityLow    OpportunityLevel = "Low"
)

type NormalizedScore struct {
	Value int       `json:"value"`
	Grade Grade     `json:"grade"`
	Tier  ColorTier `json:"tier"`
}

type PlatformScore struct {
	Platform         Platform         `json:"platform"`
	Score            NormalizedScore  `json:"score"`
	IssueCount       int              `json:"issue_count"`
	IssuesBySeverity map[Severity]int `json:"issues_by_severity"`
	Summary          string           `json:"summary"`
}

// ScoreCard reúne todos os sub-scores normalizados de uma auditoria
type ScoreCard struct {
	AIVisibility  NormalizedScore `json:"ai_visibility"`
	MapsPresence  NormalizedScore `json:"maps_presence"`
	Reviews       NormalizedScore `json:"reviews"`
	Photos        NormalizedScore `json:"photos"`
	SEO           NormalizedScore `json:"seo"`
	CompetitorGap NormalizedScore `json:"competitor_gap"`
	Overall       NormalizedScore `json:"overall"`
	ChatGPT       NormalizedScore `json:"chatgpt"`
	Gemini        NormalizedScore `json:"gemini"`
	Perplexity    NormalizedScore `json:"perplexity"`
	Platforms     []PlatformScore `json:"platforms"`
}
