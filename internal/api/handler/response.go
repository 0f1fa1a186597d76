package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/mail-insights-api/internal/usecases/account"
	"github.com/vfg2006/mail-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/mail-insights-api/internal/usecases/syncing"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/mail-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros tipados dos usecases para o formato da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		logger.WithField("account_id", accountErr.AccountID).Warn(fallback)
		details := map[string]any{"error_type": accountErr.Err.Error()}
		if accountErr.AccountID != "" {
			details["account_id"] = accountErr.AccountID
		}
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), details)
		return
	}

	var syncErr *syncing.SyncError
	if errors.As(err, &syncErr) {
		logger.WithField("account_id", syncErr.AccountID).Error(fallback)
		apiErrors.WriteError(w, syncErr.Code, syncErr.Error(), nil)
		return
	}

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		logger.Warn(fallback)
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	logger.Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
