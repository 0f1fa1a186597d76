package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/mail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

type AutomationRepository interface {
	UpsertAutomations(ctx context.Context, automations []*domain.Automation) error
	ReplaceAutomationCampaigns(ctx context.Context, accountID, automationID string, links []*domain.AutomationCampaign) error
	ListAutomations(ctx context.Context, filter domain.AutomationFilter) ([]*domain.Automation, error)
	ListAutomationCampaigns(ctx context.Context, accountIDs []string) ([]*domain.AutomationCampaign, error)
}

type automationRepository struct {
	conn *postgres.Connection
}

func NewAutomationRepository(conn *postgres.Connection) AutomationRepository {
	return &automationRepository{
		conn: conn,
	}
}

func (r *automationRepository) UpsertAutomations(ctx context.Context, automations []*domain.Automation) error {
	if len(automations) == 0 {
		return nil
	}

	automations = dedupeByKey(automations, func(a *domain.Automation) string { return a.AccountID + ":" + a.ID })

	query := squirrel.StatementBuilder.
		Insert("automations").
		Columns("account_id", "id", "name", "status", "entered", "completed", "active", "raw_payload", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, a := range automations {
		query = query.Values(
			a.AccountID, a.ID, a.Name, a.Status, a.Entered, a.Completed, a.Active, rawJSON(a.RawPayload),
			squirrel.Expr("NOW()"), squirrel.Expr("NOW()"),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			entered = EXCLUDED.entered,
			completed = EXCLUDED.completed,
			active = EXCLUDED.active,
			raw_payload = EXCLUDED.raw_payload,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("falha ao montar query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return postgres.WrapError(err)
	}

	return nil
}

// ReplaceAutomationCampaigns substitui os vínculos da automação pelo resultado da última resolução
func (r *automationRepository) ReplaceAutomationCampaigns(ctx context.Context, accountID, automationID string, links []*domain.AutomationCampaign) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete("automation_campaigns").
			Where(squirrel.Eq{"account_id": accountID, "automation_id": automationID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("falha ao montar query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return postgres.WrapError(err)
		}

		links = dedupeByKey(links, func(l *domain.AutomationCampaign) string { return l.CampaignID })
		if len(links) == 0 {
			return nil
		}

		insert := squirrel.
			Insert("automation_campaigns").
			Columns("account_id", "automation_id", "campaign_id", "source").
			PlaceholderFormat(squirrel.Dollar)

		for _, link := range links {
			insert = insert.Values(accountID, automationID, link.CampaignID, link.Source)
		}

		insertSQL, insertArgs, err := insert.
			Suffix("ON CONFLICT (account_id, automation_id, campaign_id) DO UPDATE SET source = EXCLUDED.source").
			ToSql()
		if err != nil {
			return fmt.Errorf("falha ao montar query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return postgres.WrapError(err)
		}

		return nil
	})
}

func (r *automationRepository) ListAutomations(ctx context.Context, filter domain.AutomationFilter) ([]*domain.Automation, error) {
	queryBuilder := squirrel.
		Select("au.account_id, au.id, au.name, au.status, au.entered, au.completed, au.active, au.created_at, au.updated_at, a.name").
		From("automations au").
		Join("accounts a ON a.id = au.account_id").
		OrderBy("au.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.AccountIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"au.account_id": filter.AccountIDs})
	}
	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"au.status": filter.Status})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, postgres.WrapError(err)
	}
	defer rows.Close()

	automations := make([]*domain.Automation, 0)
	for rows.Next() {
		a := &domain.Automation{}
		if err := rows.Scan(
			&a.AccountID, &a.ID, &a.Name, &a.Status, &a.Entered, &a.Completed, &a.Active,
			&a.CreatedAt, &a.UpdatedAt, &a.AccountName,
		); err != nil {
			return nil, err
		}
		automations = append(automations, a)
	}

	return automations, rows.Err()
}

func (r *automationRepository) ListAutomationCampaigns(ctx context.Context, accountIDs []string) ([]*domain.AutomationCampaign, error) {
	queryBuilder := squirrel.
		Select("ac.account_id, ac.automation_id, ac.campaign_id, ac.source").
		From("automation_campaigns ac").
		PlaceholderFormat(squirrel.Dollar)

	if len(accountIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ac.account_id": accountIDs})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, postgres.WrapError(err)
	}
	defer rows.Close()

	links := make([]*domain.AutomationCampaign, 0)
	for rows.Next() {
		link := &domain.AutomationCampaign{}
		if err := rows.Scan(&link.AccountID, &link.AutomationID, &link.CampaignID, &link.Source); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
