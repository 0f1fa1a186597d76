// Package metrics expõe os coletores Prometheus da sincronização e do cliente ActiveCampaign.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activecampaign_requests_total",
			Help: "Requisições feitas à API do ActiveCampaign por endpoint e resultado",
		},
		[]string{"endpoint", "outcome"},
	)

	UpstreamRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activecampaign_retries_total",
			Help: "Novas tentativas após 429 ou erro de rede",
		},
		[]string{"endpoint"},
	)

	UpstreamRateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activecampaign_rate_limit_waits_total",
			Help: "Esperas causadas pelo orçamento de requisições esgotado",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activecampaign_circuit_breaker_state",
			Help: "Estado do circuit breaker por conta (0=fechado, 1=meio-aberto, 2=aberto)",
		},
		[]string{"account"},
	)

	SyncJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_jobs_total",
			Help: "Jobs de sincronização finalizados por status e origem",
		},
		[]string{"status", "trigger"},
	)

	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sync_job_duration_seconds",
			Help:    "Duração de cada sincronização de conta",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
		},
	)

	SyncRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_records_total",
			Help: "Registros gravados por entidade",
		},
		[]string{"entity"},
	)

	SyncRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sync_jobs_running",
			Help: "Sincronizações de conta em andamento",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Requisições HTTP por método e status",
		},
		[]string{"method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Trigger devolve o rótulo de origem de um job
func Trigger(isAutomatic bool) string {
	if isAutomatic {
		return "automatic"
	}
	return "manual"
}
