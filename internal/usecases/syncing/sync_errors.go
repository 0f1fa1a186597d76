package syncing

import (
	"errors"
	"fmt"
)

// Erros específicos da sincronização
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountInactive = errors.New("account is inactive")
	ErrSyncPanicked    = errors.New("sync aborted by panic")

	// Erros por etapa
	ErrSyncLists       = errors.New("error syncing lists")
	ErrSyncCampaigns   = errors.New("error syncing campaigns")
	ErrSyncAutomations = errors.New("error syncing automations")
	ErrSyncMessages    = errors.New("error syncing messages")

	ErrListAccounts = errors.New("error fetching accounts from database")
)

// SyncError carrega o código da API e a conta em que a sincronização falhou
type SyncError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, accountID string, details string) *SyncError {
	return &SyncError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
