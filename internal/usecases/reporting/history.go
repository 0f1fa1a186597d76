package reporting

import (
	"context"

	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
)

const defaultHistoryLimit = 50

func (s *Service) SyncHistory(ctx context.Context, accountID string, limit int) ([]*domain.SyncJob, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	jobs, err := s.repos.Jobs.ListJobs(ctx, accountID, limit)
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return jobs, nil
}

// LastAutoSync resume a última rodada automática: contas concluídas nos 30
// minutos anteriores ao último job e os registros desse job
func (s *Service) LastAutoSync(ctx context.Context) (*domain.LastAutoSyncInfo, error) {
	last, err := s.repos.Jobs.LastCompletedAutomatic(ctx)
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if last == nil || last.FinishedAt == nil {
		return &domain.LastAutoSyncInfo{}, nil
	}

	finishedAt := *last.FinishedAt
	batch, err := s.repos.Jobs.ListCompletedAutomatic(ctx, finishedAt.Add(-lastAutoSyncWindow), finishedAt)
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}

	accounts := make(map[string]struct{}, len(batch))
	for _, job := range batch {
		accounts[job.AccountID] = struct{}{}
	}

	return &domain.LastAutoSyncInfo{
		LastSyncAt:         &finishedAt,
		AccountsSynced:     len(accounts),
		TotalRecordsSynced: last.ListsSynced + last.CampaignsSynced + last.AutomationsSynced + last.MessagesSynced,
	}, nil
}
