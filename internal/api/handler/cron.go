package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/mail-insights-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAutoSync = "auto-sync"
	CronJobTypeAll      = "all"
)

// CronJob é implementado pelos agendadores que aceitam execução manual
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores disponíveis para execução manual
type CronJobServices struct {
	AutoSyncService CronJob
}

func (s CronJobServices) byType(cronType string) []CronJob {
	switch cronType {
	case CronJobTypeAutoSync, CronJobTypeAll:
		if s.AutoSyncService == nil {
			return []CronJob{}
		}
		return []CronJob{s.AutoSyncService}
	default:
		return nil
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		jobs := services.byType(cronType)
		if jobs == nil {
			apiErrors.WriteError(w, apiErrors.ErrSyncUnknownType, "Tipo de cron job inválido. Valores aceitos: auto-sync, all", map[string]any{"type": cronType})
			return
		}
		if len(jobs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização automática não disponível", nil)
			return
		}

		for _, job := range jobs {
			if !job.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyActive, "Sincronização automática já em andamento", nil)
				return
			}
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.AutoSyncService != nil {
			status[CronJobTypeAutoSync] = services.AutoSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
