package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/mail-insights-api/internal/config"
	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/internal/usecases/syncing"
)

// AutoSyncConfig representa a configuração do agendador de sincronização automática
type AutoSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// AutoSyncService agenda a sincronização de todas as contas ativas
type AutoSyncService struct {
	scheduler           *gocron.Scheduler
	config              AutoSyncConfig
	syncer              syncing.Syncer
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncAllResult
}

func NewAutoSyncService(syncer syncing.Syncer, appConfig *config.Config) *AutoSyncService {
	syncConfig := AutoSyncConfig{
		CronSchedule:      appConfig.AutoSync.CronSchedule,
		MaxConcurrentJobs: appConfig.AutoSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.AutoSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização automática carregada")

	return &AutoSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		syncer:    syncer,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *AutoSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização automática desabilitada por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.ctx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização automática")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAutoSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização automática: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização automática")
		s.scheduler.Stop()
	}()

	return nil
}

// tryAcquire marca a execução como em andamento e devolve o contexto do agendador; falso se já houver uma
func (s *AutoSyncService) tryAcquire() (context.Context, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return nil, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return s.ctx, true
}

func (s *AutoSyncService) runAutoSync(ctx context.Context) {
	if _, ok := s.tryAcquire(); !ok {
		logrus.Info("Sincronização automática já em andamento, ignorando")
		return
	}
	s.execute(ctx)
}

func (s *AutoSyncService) execute(ctx context.Context) {
	var result *domain.SyncAllResult

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		if result != nil {
			s.lastResult = result
		}
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização automática de todas as contas ativas")
	startTime := time.Now()

	result, err := s.syncer.SyncAllActive(ctx, true)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar sincronização automática")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":       time.Since(startTime).String(),
		"total_accounts": result.TotalAccounts,
		"success_count":  result.SuccessCount,
		"error_count":    result.ErrorCount,
		"total_records":  result.Totals.Total(),
	}).Info("Sincronização automática concluída")
}

// TriggerManualSync dispara a rodada automática fora do horário; falso se já houver uma em andamento
func (s *AutoSyncService) TriggerManualSync() bool {
	ctx, ok := s.tryAcquire()
	if !ok {
		logrus.Info("Sincronização automática já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização automática por solicitação manual")
	go s.execute(ctx)
	return true
}

func (s *AutoSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *AutoSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_result"] = map[string]any{
			"total_accounts": s.lastResult.TotalAccounts,
			"success_count":  s.lastResult.SuccessCount,
			"error_count":    s.lastResult.ErrorCount,
			"totals":         s.lastResult.Totals,
		}
	}
	return status
}
