package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMetric = errors.New("invalid metric")
	ErrFetchData     = errors.New("error fetching report data from database")
)

// ReportError carrega o código da API para o handler
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
