package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/projecting"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"github.com/vfg2006/visibility-audit-api/pkg/middleware"
)

// GetCostProjection nunca falha: quantidade inválida ou ausente usa o padrão configurado
func GetCostProjection(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projection := service.ProjectCosts(r.URL.Query().Get("companies"))
		writeJSON(w, r, http.StatusOK, projection)
	}
}

func GetCommissionProjection(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		referred := parseReferred(query.Get("referred"))

		avgRevenue, err := parseOptionalFloat(query.Get("avg_revenue"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "avg_revenue deve ser numérico", nil)
			return
		}

		rate, err := parseOptionalFloat(query.Get("rate"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "rate deve ser numérico", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.ProjectCommission(referred, avgRevenue, rate))
	}
}

func ListPartners(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partners, err := service.ListPartners(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar parceiros")
			return
		}

		if partners == nil {
			partners = []*domain.Partner{}
		}

		writeJSON(w, r, http.StatusOK, partners)
	}
}

// GetPartnerCommission projeta a comissão com a taxa do parceiro.
// Usuários parceiros só enxergam o próprio parceiro.
func GetPartnerCommission(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partnerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if userClaims.UserRoleID == domain.RolePartner &&
			(userClaims.UserPartnerID == nil || *userClaims.UserPartnerID != partnerID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Parceiro só pode consultar a própria comissão", nil)
			return
		}

		projection, err := service.ProjectPartnerCommission(r.Context(), partnerID, parseReferred(r.URL.Query().Get("referred")))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao projetar comissão do parceiro")
			return
		}

		writeJSON(w, r, http.StatusOK, projection)
	}
}

// parseReferred trata valores ausentes ou inválidos como 0
func parseReferred(raw string) int {
	referred, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || referred < 0 {
		return 0
	}
	return referred
}

func parseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
