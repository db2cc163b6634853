package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/visibility-audit-api/internal/scheduler"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
)

// RunCronJob executa manualmente a sincronização do catálogo e/ou dos parceiros
func RunCronJob(syncer scheduler.CatalogSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobType, err := scheduler.ParseJobType(cronType)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJobType, "Tipo de cron job inválido. Valores aceitos: catalog, partners, all", nil)
			return
		}

		err = syncer.TriggerManualSync(r.Context(), jobType)
		switch {
		case errors.Is(err, scheduler.ErrSyncAlreadyRunning):
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRuns, "Sincronização já em andamento", nil)
			return
		case err != nil:
			writeServiceError(w, r, err, "Erro ao iniciar sincronização")
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    jobType,
		})
	}
}

func GetCronStatus(syncer scheduler.CatalogSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"catalog": syncer.GetStatus(),
		})
	}
}
