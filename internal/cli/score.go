package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/scoring"
)

type ScoreResult struct {
	Raw         string                  `json:"raw"`
	Score       domain.NormalizedScore  `json:"score"`
	Opportunity domain.OpportunityLevel `json:"opportunity"`
}

// NewScoreCmd normaliza cada argumento; "null" e "-" representam score não medido
func NewScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <raw>...",
		Short: "Normaliza scores brutos para 0-100 com nota e faixa de cor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]ScoreResult, 0, len(args))
			for _, arg := range args {
				raw, err := parseRawScore(arg)
				if err != nil {
					return err
				}

				score := scoring.Normalize(raw)
				results = append(results, ScoreResult{
					Raw:         arg,
					Score:       score,
					Opportunity: scoring.OpportunityLevelFor(score),
				})
			}

			return printJSON(cmd.OutOrStdout(), results)
		},
	}
}

func parseRawScore(arg string) (*float64, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "null", "-", "":
		return nil, nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return nil, fmt.Errorf("score inválido %q: %w", arg, err)
	}

	return &value, nil
}
