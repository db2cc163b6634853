package handler

import (
	"net/http"

	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/scoring"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
)

type NormalizeScoresRequest struct {
	Scores map[string]*float64 `json:"scores"`
}

type NormalizeScoresResponse struct {
	Scores      map[string]domain.NormalizedScore `json:"scores"`
	Opportunity *domain.OpportunityLevel          `json:"opportunity,omitempty"`
}

type AggregateMoneyLeaksRequest struct {
	Leaks []domain.MoneyLeak `json:"leaks"`
}

type AggregateMoneyLeaksResponse struct {
	domain.LossSummary
	ByPriority map[domain.Priority]int `json:"by_priority"`
}

// NormalizeScores normaliza scores brutos; null vira 0. Quando "overall" é enviado,
// o nível de oportunidade também é calculado.
func NormalizeScores() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NormalizeScoresRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Scores == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo scores é obrigatório", nil)
			return
		}

		resp := NormalizeScoresResponse{
			Scores: scoring.NormalizeMap(req.Scores),
		}

		if overall, ok := resp.Scores["overall"]; ok {
			level := scoring.OpportunityLevelFor(overall)
			resp.Opportunity = &level
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

func AggregateMoneyLeaks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AggregateMoneyLeaksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, AggregateMoneyLeaksResponse{
			LossSummary: scoring.AggregateLoss(req.Leaks),
			ByPriority:  scoring.CountByPriority(req.Leaks),
		})
	}
}
