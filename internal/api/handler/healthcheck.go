package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/mail-insights-api/pkg/log"
)

// Pinger é satisfeito pela conexão com o Postgres
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Healthcheck sem acesso ao banco")
				status["status"] = "degraded"
				status["database"] = "unavailable"
				writeJSON(w, http.StatusServiceUnavailable, status)
				return
			}
		}

		writeJSON(w, http.StatusOK, status)
	})
}
