package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
)

// GetAuditReport responde 200 com o relatório completo, 202 com o status enquanto a
// auditoria processa e 422 quando o backend marcou a auditoria como falha
func GetAuditReport(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auditID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if auditID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da auditoria não fornecido", nil)
			return
		}

		ctx := log.WithAuditID(r.Context(), auditID)
		r = r.WithContext(ctx)

		report, err := service.GetReport(ctx, auditID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar relatório da auditoria")
			return
		}

		switch report.Status {
		case domain.AuditStatusComplete:
			writeJSON(w, r, http.StatusOK, report)
		case domain.AuditStatusFailed:
			apiErrors.WriteError(w, apiErrors.ErrAuditFailed, "Auditoria falhou no backend", map[string]any{
				"audit_id": report.AuditID,
			})
		default:
			writeJSON(w, r, http.StatusAccepted, report)
		}
	}
}

func WatchAudit(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auditID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ctx := log.WithAuditID(r.Context(), auditID)
		r = r.WithContext(ctx)

		watch, err := service.WatchAudit(ctx, auditID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao iniciar acompanhamento da auditoria")
			return
		}

		writeJSON(w, r, http.StatusAccepted, watch)
	}
}

func GetAuditWatch(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auditID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		watch, err := service.GetWatch(r.Context(), auditID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar acompanhamento da auditoria")
			return
		}

		writeJSON(w, r, http.StatusOK, watch)
	}
}

func ListFixServices(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := service.ListFixServices(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar serviços de correção")
			return
		}

		if services == nil {
			services = []*domain.FixService{}
		}

		writeJSON(w, r, http.StatusOK, services)
	}
}
