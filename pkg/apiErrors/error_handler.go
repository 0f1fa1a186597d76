package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de conta (1000-1999)
	ErrAccountNotFound      = "ACC_001" // Conta não encontrada
	ErrAccountInactive      = "ACC_002" // Conta desativada
	ErrAccountAlreadyExists = "ACC_003" // Já existe conta com a mesma URL
	ErrAccountInvalidData   = "ACC_004" // Nome, URL ou chave inválidos
	ErrAccountConnection    = "ACC_005" // Falha no teste de conexão

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado pela rota

	// Erros de sincronização (3000-3999)
	ErrSyncFailed        = "SYN_001" // Sincronização terminou com erro
	ErrSyncAlreadyActive = "SYN_002" // Sincronização automática já em andamento
	ErrSyncUnknownType   = "SYN_003" // Tipo de sincronização desconhecido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrAccountNotFound:      http.StatusNotFound,
	ErrAccountInactive:      http.StatusConflict,
	ErrAccountAlreadyExists: http.StatusConflict,
	ErrAccountInvalidData:   http.StatusBadRequest,
	ErrAccountConnection:    http.StatusBadGateway,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrRouteNotFound:        http.StatusNotFound,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
	ErrSyncFailed:           http.StatusBadGateway,
	ErrSyncAlreadyActive:    http.StatusConflict,
	ErrSyncUnknownType:      http.StatusBadRequest,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrDatabaseOperation:    http.StatusInternalServerError,
	ErrExternalService:      http.StatusBadGateway,
	ErrCommunication:        http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
