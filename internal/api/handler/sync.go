package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/mail-insights-api/internal/usecases/syncing"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/mail-insights-api/pkg/log"
)

type syncAllRequest struct {
	AccountIDs []string `json:"accountIds"`
}

// SyncAccount sincroniza uma conta de forma síncrona; falhas voltam com o resultado no corpo
func SyncAccount(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		result := service.SyncAccount(r.Context(), id, false)
		if !result.Success {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"account_id": id,
				"error":      result.Error,
			}).Warn("Sincronização manual terminou com erro")
			writeJSON(w, apiErrors.StatusFor(apiErrors.ErrSyncFailed), result)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// SyncAll aceita uma lista opcional de contas; sem lista sincroniza todas as ativas
func SyncAll(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request syncAllRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
				return
			}
		}

		if len(request.AccountIDs) > 0 {
			results := service.SyncAccounts(r.Context(), request.AccountIDs, false)
			writeJSON(w, http.StatusOK, domain.Summarize(results))
			return
		}

		result, err := service.SyncAllActive(r.Context(), false)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao sincronizar contas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func SyncHistory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n, err := limit(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		jobs, err := service.SyncHistory(r.Context(), r.URL.Query().Get("accountId"), n)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar histórico de sincronização")
			return
		}

		writeJSON(w, http.StatusOK, jobs)
	})
}

func LastAutoSync(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := service.LastAutoSync(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar última sincronização automática")
			return
		}

		writeJSON(w, http.StatusOK, info)
	})
}
