package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign"
	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/acclient"
	"github.com/vfg2006/mail-insights-api/infrastructure/messaging/rabbitmq"
	"github.com/vfg2006/mail-insights-api/infrastructure/repository"
	"github.com/vfg2006/mail-insights-api/internal/config"
	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/internal/metrics"
	"github.com/vfg2006/mail-insights-api/internal/usecases/resolving"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
)

const (
	defaultLookbackDays  = 90
	defaultMaxConcurrent = 3
)

type Syncer interface {
	SyncAccount(ctx context.Context, accountID string, isAutomatic bool) *domain.SyncResult
	SyncAccounts(ctx context.Context, accountIDs []string, isAutomatic bool) []*domain.AccountSyncResult
	SyncAllActive(ctx context.Context, isAutomatic bool) (*domain.SyncAllResult, error)
}

type Repositories struct {
	Accounts    repository.AccountRepository
	Lists       repository.ListRepository
	Campaigns   repository.CampaignRepository
	Automations repository.AutomationRepository
	Messages    repository.MessageRepository
	Jobs        repository.SyncJobRepository
}

type Service struct {
	repos         Repositories
	factory       acclient.Factory
	integrator    activecampaign.Integrator
	publisher     rabbitmq.SyncEventPublisher
	lookbackDays  int
	maxConcurrent int
	now           func() time.Time
	newID         func() string
}

func NewService(
	repos Repositories,
	factory acclient.Factory,
	integrator activecampaign.Integrator,
	publisher rabbitmq.SyncEventPublisher,
	cfg *config.Config,
) *Service {
	lookbackDays := cfg.ActiveCampaign.MessagesLookbackDays
	if lookbackDays <= 0 {
		lookbackDays = defaultLookbackDays
	}
	maxConcurrent := cfg.AutoSync.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	if publisher == nil {
		publisher = rabbitmq.NoopPublisher{}
	}

	return &Service{
		repos:         repos,
		factory:       factory,
		integrator:    integrator,
		publisher:     publisher,
		lookbackDays:  lookbackDays,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// SyncAccount executa todas as etapas de uma conta e nunca propaga erro nem panic.
// Falhas viram um resultado com Success=false e contadores zerados.
func (s *Service) SyncAccount(ctx context.Context, accountID string, isAutomatic bool) *domain.SyncResult {
	startedAt := s.now()
	job := &domain.SyncJob{
		ID:          s.newID(),
		AccountID:   accountID,
		Status:      domain.SyncJobStatusRunning,
		IsAutomatic: isAutomatic,
		StartedAt:   startedAt,
	}

	logger := logrus.WithFields(logrus.Fields{
		"account_id":   accountID,
		"job_id":       job.ID,
		"is_automatic": isAutomatic,
	})

	metrics.SyncRunning.Inc()
	defer metrics.SyncRunning.Dec()

	if err := s.repos.Jobs.CreateJob(ctx, job); err != nil {
		logger.WithError(err).Error("Erro ao registrar job de sincronização")
		metrics.SyncJobsTotal.WithLabelValues(string(domain.SyncJobStatusFailed), metrics.Trigger(isAutomatic)).Inc()
		return failedResult(err)
	}

	counters, contactCount, err := s.safeRun(ctx, job, logger)

	// o fechamento do job não pode depender do chamador ainda estar esperando
	closeCtx := context.WithoutCancel(ctx)
	finishedAt := s.now()
	job.FinishedAt = &finishedAt

	var result *domain.SyncResult
	if err != nil {
		errMsg := err.Error()
		job.Status = domain.SyncJobStatusFailed
		job.Error = &errMsg
		result = failedResult(err)
		logger.WithError(err).Error("Sincronização da conta falhou")
	} else {
		job.Status = domain.SyncJobStatusCompleted
		job.ListsSynced = counters.Lists
		job.CampaignsSynced = counters.Campaigns
		job.AutomationsSynced = counters.Automations
		job.MessagesSynced = counters.Messages
		result = &domain.SyncResult{
			Success:           true,
			ListsSynced:       counters.Lists,
			CampaignsSynced:   counters.Campaigns,
			AutomationsSynced: counters.Automations,
			MessagesSynced:    counters.Messages,
			ContactCount:      contactCount,
		}
		logger.WithFields(logrus.Fields{
			"lists":       counters.Lists,
			"campaigns":   counters.Campaigns,
			"automations": counters.Automations,
			"messages":    counters.Messages,
			"duration":    finishedAt.Sub(startedAt).String(),
		}).Info("Sincronização da conta concluída")
	}

	if ferr := s.repos.Jobs.FinishJob(closeCtx, job); ferr != nil {
		logger.WithError(ferr).Error("Erro ao finalizar job de sincronização")
	}

	s.record(job, finishedAt.Sub(startedAt))
	s.publish(closeCtx, job, result, logger)

	return result
}

func (s *Service) safeRun(ctx context.Context, job *domain.SyncJob, logger *logrus.Entry) (counters domain.SyncCounters, contactCount int, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Panic durante a sincronização")
			counters = domain.SyncCounters{}
			contactCount = 0
			err = fmt.Errorf("%w: %v", ErrSyncPanicked, r)
		}
	}()

	return s.run(ctx, job.AccountID, logger)
}

func (s *Service) run(ctx context.Context, accountID string, logger *logrus.Entry) (domain.SyncCounters, int, error) {
	var counters domain.SyncCounters

	account, err := s.repos.Accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return counters, 0, errors.Wrap(err, "erro ao buscar conta")
	}
	if account == nil {
		return counters, 0, ErrAccountNotFound
	}
	if !account.IsActive {
		return counters, 0, ErrAccountInactive
	}

	client := s.factory.New(acclient.Credentials{
		AccountID: account.ID,
		BaseURL:   account.BaseURL,
		APIKey:    account.APIKey,
	})

	if counters.Lists, err = s.syncLists(ctx, client, account.ID); err != nil {
		return domain.SyncCounters{}, 0, err
	}
	logger.WithField("lists", counters.Lists).Debug("Listas sincronizadas")

	contactCount := s.syncContacts(ctx, client, account.ID, logger)

	if counters.Campaigns, err = s.syncCampaigns(ctx, client, account.ID, logger); err != nil {
		return domain.SyncCounters{}, 0, err
	}
	logger.WithField("campaigns", counters.Campaigns).Debug("Campanhas sincronizadas")

	if counters.Automations, err = s.syncAutomations(ctx, client, account.ID); err != nil {
		return domain.SyncCounters{}, 0, err
	}
	logger.WithField("automations", counters.Automations).Debug("Automações sincronizadas")

	if counters.Messages, err = s.syncMessages(ctx, client, account.ID, logger); err != nil {
		return domain.SyncCounters{}, 0, err
	}
	logger.WithField("messages", counters.Messages).Debug("Mensagens sincronizadas")

	return counters, contactCount, nil
}

func (s *Service) syncLists(ctx context.Context, client acclient.Client, accountID string) (int, error) {
	total := 0
	pager := client.ListLists(ctx)
	for pager.Next(ctx) {
		page := pager.Page()
		lists := make([]*domain.List, 0, len(page))
		for _, raw := range page {
			lists = append(lists, activecampaign.NormalizeList(raw, accountID))
		}
		if err := s.repos.Lists.UpsertLists(ctx, lists); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrSyncLists, err)
		}
		total += len(lists)
	}
	if err := pager.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyncLists, err)
	}
	return total, nil
}

// syncContacts é best-effort: falhas ficam só no log
func (s *Service) syncContacts(ctx context.Context, client acclient.Client, accountID string, logger *logrus.Entry) int {
	stats, err := s.integrator.FetchAccountInfo(ctx, client)
	if err != nil {
		logger.WithError(err).Warn("Não foi possível obter o total de contatos")
		return 0
	}
	if err := s.repos.Accounts.UpdateContactStats(ctx, accountID, stats); err != nil {
		logger.WithError(err).Warn("Não foi possível gravar o total de contatos")
	}
	return stats.ContactCount
}

func (s *Service) syncCampaigns(ctx context.Context, client acclient.Client, accountID string, logger *logrus.Entry) (int, error) {
	total := 0
	pager := client.ListCampaigns(ctx)
	for pager.Next(ctx) {
		page := pager.Page()
		campaigns := make([]*domain.Campaign, 0, len(page))
		for _, raw := range page {
			campaigns = append(campaigns, activecampaign.NormalizeCampaign(raw, accountID))
		}
		if err := s.repos.Campaigns.UpsertCampaigns(ctx, campaigns); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrSyncCampaigns, err)
		}

		for _, c := range campaigns {
			// GetCampaignLists devolve conjunto vazio quando a relação não pode ser lida
			listIDs, err := client.GetCampaignLists(ctx, c.ID)
			if err != nil {
				logger.WithField("campaign_id", c.ID).WithError(err).Warn("Listas da campanha indisponíveis")
				listIDs = []string{}
			}
			if err := s.repos.Campaigns.ReplaceCampaignLists(ctx, accountID, c.ID, listIDs); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrSyncCampaigns, err)
			}
		}
		total += len(campaigns)
	}
	if err := pager.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyncCampaigns, err)
	}
	return total, nil
}

func (s *Service) syncAutomations(ctx context.Context, client acclient.Client, accountID string) (int, error) {
	raws, err := acclient.Collect(ctx, client.ListAutomations(ctx))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyncAutomations, err)
	}

	automations := make([]*domain.Automation, 0, len(raws))
	for _, raw := range raws {
		automations = append(automations, activecampaign.NormalizeAutomation(raw, accountID))
	}
	if len(automations) == 0 {
		return 0, nil
	}
	if err := s.repos.Automations.UpsertAutomations(ctx, automations); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyncAutomations, err)
	}

	// a heurística usa as campanhas de automação já gravadas da conta
	stored, err := s.repos.Campaigns.ListCampaigns(ctx, domain.CampaignFilter{
		AccountIDs:     []string{accountID},
		OnlyAutomation: true,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyncAutomations, err)
	}

	resolver := resolving.New(client, resolving.NewBuckets(stored))
	for _, automation := range automations {
		res := resolver.Resolve(ctx, automation)
		if err := s.repos.Automations.ReplaceAutomationCampaigns(ctx, accountID, automation.ID, resolving.Links(automation, res)); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrSyncAutomations, err)
		}
	}

	return len(automations), nil
}

func (s *Service) syncMessages(ctx context.Context, client acclient.Client, accountID string, logger *logrus.Entry) (int, error) {
	known, err := s.repos.Campaigns.ListCampaignIDs(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyncMessages, err)
	}

	now := s.now()
	since := now.AddDate(0, 0, -s.lookbackDays)

	total, skipped := 0, 0
	pager := client.ListMessages(ctx, since)
	for pager.Next(ctx) {
		page := pager.Page()
		messages := make([]*domain.CampaignMessage, 0, len(page))
		for _, raw := range page {
			msg := activecampaign.NormalizeMessage(raw, accountID, now)
			if msg.CampaignID == "" {
				skipped++
				continue
			}
			if _, ok := known[msg.CampaignID]; !ok {
				skipped++
				continue
			}
			messages = append(messages, msg)
		}
		if len(messages) == 0 {
			continue
		}
		if err := s.repos.Messages.UpsertMessages(ctx, messages); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrSyncMessages, err)
		}
		total += len(messages)
	}
	if err := pager.Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyncMessages, err)
	}

	if skipped > 0 {
		logger.WithField("skipped", skipped).Debug("Mensagens sem campanha conhecida ignoradas")
	}
	return total, nil
}

func (s *Service) record(job *domain.SyncJob, duration time.Duration) {
	metrics.SyncJobsTotal.WithLabelValues(string(job.Status), metrics.Trigger(job.IsAutomatic)).Inc()
	metrics.SyncDuration.Observe(duration.Seconds())
	if job.Status != domain.SyncJobStatusCompleted {
		return
	}
	metrics.SyncRecords.WithLabelValues("lists").Add(float64(job.ListsSynced))
	metrics.SyncRecords.WithLabelValues("campaigns").Add(float64(job.CampaignsSynced))
	metrics.SyncRecords.WithLabelValues("automations").Add(float64(job.AutomationsSynced))
	metrics.SyncRecords.WithLabelValues("messages").Add(float64(job.MessagesSynced))
}

func (s *Service) publish(ctx context.Context, job *domain.SyncJob, result *domain.SyncResult, logger *logrus.Entry) {
	event := domain.SyncEvent{
		JobID:       job.ID,
		AccountID:   job.AccountID,
		IsAutomatic: job.IsAutomatic,
		Success:     result.Success,
		Counters:    result.Counters(),
		Error:       result.Error,
		FinishedAt:  *job.FinishedAt,
	}
	if err := s.publisher.PublishSyncFinished(ctx, event); err != nil {
		logger.WithError(err).Warn("Erro ao publicar evento de sincronização")
	}
}

// SyncAccounts sincroniza as contas em paralelo, limitado por maxConcurrent.
// O resultado segue a ordem de accountIDs.
func (s *Service) SyncAccounts(ctx context.Context, accountIDs []string, isAutomatic bool) []*domain.AccountSyncResult {
	results := make([]*domain.AccountSyncResult, len(accountIDs))
	s.fanOut(len(accountIDs), func(i int) {
		results[i] = &domain.AccountSyncResult{
			AccountID:  accountIDs[i],
			SyncResult: *s.SyncAccount(ctx, accountIDs[i], isAutomatic),
		}
	})
	return results
}

// SyncAllActive sincroniza todas as contas ativas e consolida os totais
func (s *Service) SyncAllActive(ctx context.Context, isAutomatic bool) (*domain.SyncAllResult, error) {
	accounts, err := s.repos.Accounts.ListAccounts(ctx, true)
	if err != nil {
		return nil, NewSyncError(ErrListAccounts, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"accounts":     len(accounts),
		"is_automatic": isAutomatic,
	}).Info("Iniciando sincronização de todas as contas ativas")

	results := make([]*domain.AccountSyncResult, len(accounts))
	s.fanOut(len(accounts), func(i int) {
		results[i] = &domain.AccountSyncResult{
			AccountID:   accounts[i].ID,
			AccountName: accounts[i].Name,
			SyncResult:  *s.SyncAccount(ctx, accounts[i].ID, isAutomatic),
		}
	})

	summary := domain.Summarize(results)

	logrus.WithFields(logrus.Fields{
		"accounts": summary.TotalAccounts,
		"success":  summary.SuccessCount,
		"errors":   summary.ErrorCount,
		"records":  summary.Totals.Total(),
	}).Info("Sincronização de todas as contas concluída")

	return summary, nil
}

func failedResult(err error) *domain.SyncResult {
	return &domain.SyncResult{
		Success: false,
		Error:   err.Error(),
	}
}
