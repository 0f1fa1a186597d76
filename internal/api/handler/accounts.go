package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/internal/usecases/account"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
)

func ListAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		onlyActive := false
		if raw := r.URL.Query().Get("active"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro active deve ser booleano", nil)
				return
			}
			onlyActive = parsed
		}

		accounts, err := service.ListAccounts(r.Context(), onlyActive)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar contas")
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	})
}

func CreateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateAccount(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar conta")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}
		// o ID da URL prevalece sobre o corpo
		request.ID = id

		updated, err := service.UpdateAccount(r.Context(), &request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar conta")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeactivateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeactivateAccount(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao desativar conta")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"id": id, "isActive": false})
	})
}

func TestAccountConnection(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.TestConnection(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao testar conexão")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
