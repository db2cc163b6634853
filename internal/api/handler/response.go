package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/projecting"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa antes de escrever o status; falha de serialização vira 500
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao serializar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada.
// Erros sem código viram 500 com a mensagem de fallback.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var auditErr *auditing.AuditError
	var projectionErr *projecting.ProjectionError
	var authErr *authenticating.AuthError

	switch {
	case errors.As(err, &auditErr):
		logger.Warn(fallback)
		apiErrors.WriteError(w, auditErr.Code, auditErr.Err.Error(), detailsOrNil(auditErr.Details))
	case errors.As(err, &projectionErr):
		logger.Warn(fallback)
		apiErrors.WriteError(w, projectionErr.Code, projectionErr.Err.Error(), detailsOrNil(projectionErr.Details))
	case errors.As(err, &authErr):
		logger.Warn(fallback)
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), detailsOrNil(authErr.Details))
	default:
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func detailsOrNil(details string) any {
	if details == "" {
		return nil
	}
	return details
}
