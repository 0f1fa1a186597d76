package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/mail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

const campaignsTable = "campaigns c"

// colunas aceitas para ordenação de campanhas
var campaignOrderColumns = map[string]string{
	"sent":            "c.sent DESC",
	"openRate":        "c.open_rate DESC",
	"clickRate":       "c.click_rate DESC",
	"clickToOpenRate": "c.click_to_open_rate DESC",
	"uniqueOpens":     "c.unique_opens DESC",
	"uniqueClicks":    "c.unique_clicks DESC",
	"sendDate":        "c.send_date DESC NULLS LAST",
}

type CampaignRepository interface {
	UpsertCampaigns(ctx context.Context, campaigns []*domain.Campaign) error
	ReplaceCampaignLists(ctx context.Context, accountID, campaignID string, listIDs []string) error
	ListCampaignIDs(ctx context.Context, accountID string) (map[string]struct{}, error)
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error)
	ListCampaignLinks(ctx context.Context, accountIDs []string) ([]*domain.CampaignList, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// IsOrderable indica se a métrica pode ser usada para ordenar campanhas
func IsOrderable(metric string) bool {
	_, ok := campaignOrderColumns[metric]
	return ok
}

func (r *campaignRepository) UpsertCampaigns(ctx context.Context, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	campaigns = dedupeByKey(campaigns, func(c *domain.Campaign) string { return c.AccountID + ":" + c.ID })

	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns(
			"account_id", "id", "name", "status", "type", "is_automation", "send_date",
			"sent", "opens", "unique_opens", "clicks", "unique_clicks", "bounces", "unsubscribes",
			"open_rate", "click_rate", "click_to_open_rate", "raw_payload", "created_at", "updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range campaigns {
		query = query.Values(
			c.AccountID, c.ID, c.Name, c.Status, c.Type, c.IsAutomation, nullableTime(c.SendDate),
			c.Sent, c.Opens, c.UniqueOpens, c.Clicks, c.UniqueClicks, c.Bounces, c.Unsubscribes,
			c.OpenRate, c.ClickRate, c.ClickToOpenRate, rawJSON(c.RawPayload),
			squirrel.Expr("NOW()"), squirrel.Expr("NOW()"),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			type = EXCLUDED.type,
			is_automation = EXCLUDED.is_automation,
			send_date = EXCLUDED.send_date,
			sent = EXCLUDED.sent,
			opens = EXCLUDED.opens,
			unique_opens = EXCLUDED.unique_opens,
			clicks = EXCLUDED.clicks,
			unique_clicks = EXCLUDED.unique_clicks,
			bounces = EXCLUDED.bounces,
			unsubscribes = EXCLUDED.unsubscribes,
			open_rate = EXCLUDED.open_rate,
			click_rate = EXCLUDED.click_rate,
			click_to_open_rate = EXCLUDED.click_to_open_rate,
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

// ReplaceCampaignLists apaga e recria os vínculos da campanha.
// Só são gravados vínculos para listas que existem na conta.
func (r *campaignRepository) ReplaceCampaignLists(ctx context.Context, accountID, campaignID string, listIDs []string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete("campaign_lists").
			Where(squirrel.Eq{"account_id": accountID, "campaign_id": campaignID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("falha ao montar query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return postgres.WrapError(err)
		}

		if len(listIDs) == 0 {
			return nil
		}

		listIDs = dedupeByKey(listIDs, func(id string) string { return id })

		// INSERT ... SELECT garante que a lista existe sem depender de FK
		insertSQL := `
			INSERT INTO campaign_lists (account_id, campaign_id, list_id)
			SELECT $1, $2, l.id FROM lists l
			WHERE l.account_id = $1 AND l.id = ANY($3)
			ON CONFLICT (account_id, campaign_id, list_id) DO NOTHING`

		if _, err := tx.ExecContext(ctx, insertSQL, accountID, campaignID, stringArray(listIDs)); err != nil {
			return postgres.WrapError(err)
		}

		return nil
	})
}

func (r *campaignRepository) ListCampaignIDs(ctx context.Context, accountID string) (map[string]struct{}, error) {
	sqlQuery, args, err := squirrel.
		Select("c.id").
		From(campaignsTable).
		Where(squirrel.Eq{"c.account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, postgres.WrapError(err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}

	return ids, rows.Err()
}

func (r *campaignRepository) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(
			"c.account_id, c.id, c.name, c.status, c.type, c.is_automation, c.send_date",
			"c.sent, c.opens, c.unique_opens, c.clicks, c.unique_clicks, c.bounces, c.unsubscribes",
			"c.open_rate, c.click_rate, c.click_to_open_rate, c.created_at, c.updated_at, a.name",
		).
		From(campaignsTable).
		Join("accounts a ON a.id = c.account_id").
		PlaceholderFormat(squirrel.Dollar)

	if len(filter.AccountIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.account_id": filter.AccountIDs})
	}
	if len(filter.Statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": filter.Statuses})
	}
	if len(filter.CampaignIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.id": filter.CampaignIDs})
	}
	if filter.OnlyAutomation {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.is_automation": true})
	}
	if filter.SentFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"c.send_date": *filter.SentFrom})
	}
	if filter.SentTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"c.send_date": *filter.SentTo})
	}
	if len(filter.ListKeys) > 0 {
		keys := squirrel.Or{}
		for _, k := range filter.ListKeys {
			keys = append(keys, squirrel.Eq{"cl.account_id": k.AccountID, "cl.list_id": k.ListID})
		}
		subSQL, subArgs, err := squirrel.
			Select("1").
			From("campaign_lists cl").
			Where("cl.account_id = c.account_id AND cl.campaign_id = c.id").
			Where(keys).
			ToSql()
		if err != nil {
			return nil, err
		}
		queryBuilder = queryBuilder.Where("EXISTS ("+subSQL+")", subArgs...)
	}

	order, ok := campaignOrderColumns[filter.OrderBy]
	if !ok {
		order = campaignOrderColumns["sendDate"]
	}
	queryBuilder = queryBuilder.OrderBy(order, "c.id")

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(filter.Limit))
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		c := &domain.Campaign{}
		var sendDate sql.NullTime
		if err := rows.Scan(
			&c.AccountID, &c.ID, &c.Name, &c.Status, &c.Type, &c.IsAutomation, &sendDate,
			&c.Sent, &c.Opens, &c.UniqueOpens, &c.Clicks, &c.UniqueClicks, &c.Bounces, &c.Unsubscribes,
			&c.OpenRate, &c.ClickRate, &c.ClickToOpenRate, &c.CreatedAt, &c.UpdatedAt, &c.AccountName,
		); err != nil {
			return nil, err
		}
		c.SendDate = timePtr(sendDate)
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

func (r *campaignRepository) ListCampaignLinks(ctx context.Context, accountIDs []string) ([]*domain.CampaignList, error) {
	queryBuilder := squirrel.
		Select("cl.account_id, cl.campaign_id, cl.list_id").
		From("campaign_lists cl").
		PlaceholderFormat(squirrel.Dollar)

	if len(accountIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cl.account_id": accountIDs})
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

	links := make([]*domain.CampaignList, 0)
	for rows.Next() {
		link := &domain.CampaignList{}
		if err := rows.Scan(&link.AccountID, &link.CampaignID, &link.ListID); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}
