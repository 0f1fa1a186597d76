package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/mail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

const syncJobColumns = "j.id, j.account_id, a.name, j.status, j.is_automatic, j.lists_synced, j.campaigns_synced, j.automations_synced, j.messages_synced, j.started_at, j.finished_at, j.error"

type SyncJobRepository interface {
	CreateJob(ctx context.Context, job *domain.SyncJob) error
	FinishJob(ctx context.Context, job *domain.SyncJob) error
	ListJobs(ctx context.Context, accountID string, limit int) ([]*domain.SyncJob, error)
	LastCompletedAutomatic(ctx context.Context) (*domain.SyncJob, error)
	ListCompletedAutomatic(ctx context.Context, from, to time.Time) ([]*domain.SyncJob, error)
}

type syncJobRepository struct {
	conn *postgres.Connection
}

func NewSyncJobRepository(conn *postgres.Connection) SyncJobRepository {
	return &syncJobRepository{
		conn: conn,
	}
}

func (r *syncJobRepository) CreateJob(ctx context.Context, job *domain.SyncJob) error {
	sqlQuery, args, err := squirrel.
		Insert("sync_jobs").
		Columns("id", "account_id", "status", "is_automatic", "lists_synced", "campaigns_synced", "automations_synced", "messages_synced", "started_at").
		Values(job.ID, job.AccountID, job.Status, job.IsAutomatic, 0, 0, 0, 0, job.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("falha ao montar query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return postgres.WrapError(err)
	}

	return nil
}

// FinishJob é a única atualização de um job: status final, contadores e erro
func (r *syncJobRepository) FinishJob(ctx context.Context, job *domain.SyncJob) error {
	var jobErr interface{}
	if job.Error != nil {
		jobErr = *job.Error
	}

	sqlQuery, args, err := squirrel.
		Update("sync_jobs").
		Set("status", job.Status).
		Set("lists_synced", job.ListsSynced).
		Set("campaigns_synced", job.CampaignsSynced).
		Set("automations_synced", job.AutomationsSynced).
		Set("messages_synced", job.MessagesSynced).
		Set("finished_at", nullableTime(job.FinishedAt)).
		Set("error", jobErr).
		Where(squirrel.Eq{"id": job.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("falha ao montar query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return postgres.WrapError(err)
	}

	return nil
}

func (r *syncJobRepository) selectJobs() squirrel.SelectBuilder {
	return squirrel.
		Select(syncJobColumns).
		From("sync_jobs j").
		LeftJoin("accounts a ON a.id = j.account_id").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *syncJobRepository) ListJobs(ctx context.Context, accountID string, limit int) ([]*domain.SyncJob, error) {
	queryBuilder := r.selectJobs().OrderBy("j.started_at DESC")

	if accountID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"j.account_id": accountID})
	}
	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	return r.queryJobs(ctx, queryBuilder)
}

func (r *syncJobRepository) LastCompletedAutomatic(ctx context.Context) (*domain.SyncJob, error) {
	queryBuilder := r.selectJobs().
		Where(squirrel.Eq{"j.is_automatic": true, "j.status": domain.SyncJobStatusCompleted}).
		OrderBy("j.finished_at DESC NULLS LAST").
		Limit(1)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	job, err := scanJob(r.conn.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.WrapError(err)
	}

	return job, nil
}

func (r *syncJobRepository) ListCompletedAutomatic(ctx context.Context, from, to time.Time) ([]*domain.SyncJob, error) {
	queryBuilder := r.selectJobs().
		Where(squirrel.Eq{"j.is_automatic": true, "j.status": domain.SyncJobStatusCompleted}).
		Where(squirrel.GtOrEq{"j.finished_at": from}).
		Where(squirrel.LtOrEq{"j.finished_at": to}).
		OrderBy("j.finished_at DESC")

	return r.queryJobs(ctx, queryBuilder)
}

func (r *syncJobRepository) queryJobs(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.SyncJob, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, postgres.WrapError(err)
	}
	defer rows.Close()

	jobs := make([]*domain.SyncJob, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func scanJob(row scanner) (*domain.SyncJob, error) {
	job := &domain.SyncJob{}
	var (
		accountName sql.NullString
		finishedAt  sql.NullTime
		jobErr      sql.NullString
	)

	if err := row.Scan(
		&job.ID, &job.AccountID, &accountName, &job.Status, &job.IsAutomatic,
		&job.ListsSynced, &job.CampaignsSynced, &job.AutomationsSynced, &job.MessagesSynced,
		&job.StartedAt, &finishedAt, &jobErr,
	); err != nil {
		return nil, err
	}

	job.AccountName = accountName.String
	job.FinishedAt = timePtr(finishedAt)
	job.Error = stringPtr(jobErr)

	return job, nil
}
