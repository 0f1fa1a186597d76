package acclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"

	"github.com/vfg2006/mail-insights-api/internal/config"
	"github.com/vfg2006/mail-insights-api/internal/metrics"
)

// Credentials identificam a conta para a qual o cliente é criado
type Credentials struct {
	AccountID string
	BaseURL   string
	APIKey    string
}

type Factory interface {
	New(creds Credentials) Client
}

// ClientFactory cria clientes com a configuração global e um circuit breaker por conta.
// O breaker sobrevive entre sincronizações; o saldo de rate limit é por cliente.
type ClientFactory struct {
	cfg config.ActiveCampaign

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
}

func NewFactory(cfg config.ActiveCampaign) *ClientFactory {
	return &ClientFactory{
		cfg:      cfg,
		breakers: make(map[string]*gobreaker.CircuitBreaker[[]byte]),
	}
}

func (f *ClientFactory) New(creds Credentials) Client {
	return New(Config{
		BaseURL:           creds.BaseURL,
		APIKey:            creds.APIKey,
		PageSize:          f.cfg.PageSize,
		MaxAttempts:       f.cfg.MaxAttempts,
		RequestsPerSecond: f.cfg.RequestsPerSecond,
		Timeout:           f.cfg.Timeout,
		Breaker:           f.breakerFor(creds.AccountID),
	})
}

func (f *ClientFactory) breakerFor(accountID string) *gobreaker.CircuitBreaker[[]byte] {
	if accountID == "" || f.cfg.BreakerFailures <= 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if cb, ok := f.breakers[accountID]; ok {
		return cb
	}

	cb := NewBreaker(accountID, uint32(f.cfg.BreakerFailures), f.cfg.BreakerTimeout)
	f.breakers[accountID] = cb
	return cb
}

// NewBreaker abre após failures falhas transitórias consecutivas.
// Erros lógicos (4xx, result_code da v1) não contam.
func NewBreaker(name string, failures uint32, timeout time.Duration) *gobreaker.CircuitBreaker[[]byte] {
	if timeout <= 0 {
		timeout = time.Minute
	}
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return true
			}
			var acErr *Error
			if errors.As(err, &acErr) {
				return !acErr.Transient()
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"account_id": name,
				"from":       from.String(),
				"to":         to.String(),
			}).Warn("Circuit breaker do ActiveCampaign mudou de estado")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
