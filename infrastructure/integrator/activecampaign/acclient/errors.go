package acclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRetriesExhausted = errors.New("tentativas esgotadas")
	ErrCircuitOpen      = errors.New("circuit breaker aberto para a conta")
	ErrInvalidResponse  = errors.New("resposta inválida da API")
)

// Error descreve uma falha terminal de chamada à API v3
type Error struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
	Cause      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("activecampaign %s", e.Endpoint)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s: HTTP %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, truncate(e.Body, 200))
	}
	return msg
}

func (e *Error) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Transient indica falhas que contam para abrir o circuit breaker
func (e *Error) Transient() bool {
	if errors.Is(e.Err, ErrRetriesExhausted) {
		return true
	}
	return e.StatusCode >= http.StatusInternalServerError
}

// IsUnauthorized indica chave de API inválida ou revogada
func IsUnauthorized(err error) bool {
	var acErr *Error
	if errors.As(err, &acErr) {
		return acErr.StatusCode == http.StatusUnauthorized || acErr.StatusCode == http.StatusForbidden
	}
	return false
}

// LegacyError é devolvido quando a API v1 responde result_code diferente de 1
type LegacyError struct {
	Action  string
	Message string
}

func (e *LegacyError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("activecampaign v1 %s: erro desconhecido", e.Action)
	}
	return fmt.Sprintf("activecampaign v1 %s: %s", e.Action, e.Message)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
