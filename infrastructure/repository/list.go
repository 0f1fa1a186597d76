package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/mail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

type ListRepository interface {
	UpsertLists(ctx context.Context, lists []*domain.List) error
	ListIDs(ctx context.Context, accountID string) (map[string]struct{}, error)
	ListLists(ctx context.Context, accountIDs []string) ([]*domain.List, error)
}

type listRepository struct {
	conn *postgres.Connection
}

func NewListRepository(conn *postgres.Connection) ListRepository {
	return &listRepository{
		conn: conn,
	}
}

func (r *listRepository) UpsertLists(ctx context.Context, lists []*domain.List) error {
	if len(lists) == 0 {
		return nil
	}

	lists = dedupeByKey(lists, func(l *domain.List) string { return l.AccountID + ":" + l.ID })

	query := squirrel.StatementBuilder.
		Insert("lists").
		Columns("account_id", "id", "name", "active_contacts", "total_contacts", "raw_payload", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, l := range lists {
		query = query.Values(
			l.AccountID, l.ID, l.Name,
			nullableInt(l.ActiveContacts), nullableInt(l.TotalContacts), rawJSON(l.RawPayload),
			squirrel.Expr("NOW()"), squirrel.Expr("NOW()"),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			active_contacts = EXCLUDED.active_contacts,
			total_contacts = EXCLUDED.total_contacts,
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

func (r *listRepository) ListIDs(ctx context.Context, accountID string) (map[string]struct{}, error) {
	sqlQuery, args, err := squirrel.
		Select("l.id").
		From("lists l").
		Where(squirrel.Eq{"l.account_id": accountID}).
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

func (r *listRepository) ListLists(ctx context.Context, accountIDs []string) ([]*domain.List, error) {
	queryBuilder := squirrel.
		Select("l.account_id, l.id, l.name, l.active_contacts, l.total_contacts, l.created_at, l.updated_at, a.name").
		From("lists l").
		Join("accounts a ON a.id = l.account_id").
		Where(squirrel.Eq{"a.is_active": true}).
		OrderBy("l.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(accountIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"l.account_id": accountIDs})
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

	lists := make([]*domain.List, 0)
	for rows.Next() {
		l := &domain.List{}
		var active, total sql.NullInt64
		if err := rows.Scan(&l.AccountID, &l.ID, &l.Name, &active, &total, &l.CreatedAt, &l.UpdatedAt, &l.AccountName); err != nil {
			return nil, err
		}
		l.ActiveContacts = intPtr(active)
		l.TotalContacts = intPtr(total)
		lists = append(lists, l)
	}

	return lists, rows.Err()
}
