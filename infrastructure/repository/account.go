package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/mail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/pkg/secret"
)

const accountsTable = "accounts a"

const accountColumns = "a.id, a.name, a.base_url, a.api_key, a.is_active, a.contact_count, a.contact_limit, a.last_contact_sync, a.created_at, a.updated_at"

type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByBaseURL(ctx context.Context, baseURL string) (*domain.Account, error)
	ListAccounts(ctx context.Context, onlyActive bool) ([]*domain.Account, error)
	CreateAccount(ctx context.Context, account *domain.Account) error
	UpdateAccount(ctx context.Context, account *domain.Account) error
	SetActive(ctx context.Context, accountID string, active bool) error
	UpdateContactStats(ctx context.Context, accountID string, stats *domain.AccountContactStats) error
}

type accountRepository struct {
	conn   *postgres.Connection
	sealer secret.Sealer
}

func NewAccountRepository(conn *postgres.Connection, sealer secret.Sealer) AccountRepository {
	return &accountRepository{
		conn:   conn,
		sealer: sealer,
	}
}

func (a *accountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return a.getAccount(ctx, squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) GetAccountByBaseURL(ctx context.Context, baseURL string) (*domain.Account, error) {
	return a.getAccount(ctx, squirrel.Eq{"a.base_url": baseURL})
}

func (a *accountRepository) getAccount(ctx context.Context, whereClause squirrel.Eq) (*domain.Account, error) {
	accountSQL, accountArgs, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(whereClause).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(ctx, accountSQL, accountArgs...)

	acc, err := a.deserializeAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) deserializeAccount(row scanner) (*domain.Account, error) {
	acc := &domain.Account{}
	var (
		contactLimit    sql.NullInt64
		lastContactSync sql.NullTime
		storedKey       string
	)

	if err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.BaseURL,
		&storedKey,
		&acc.IsActive,
		&acc.ContactCount,
		&contactLimit,
		&lastContactSync,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	apiKey, err := a.sealer.Open(storedKey)
	if err != nil {
		return nil, fmt.Errorf("api key da conta %s: %w", acc.ID, err)
	}

	acc.APIKey = apiKey
	acc.ContactLimit = intPtr(contactLimit)
	acc.LastContactSync = timePtr(lastContactSync)

	return acc, nil
}

func (a *accountRepository) ListAccounts(ctx context.Context, onlyActive bool) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select(accountColumns).
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.is_active": true})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, postgres.WrapError(err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		acc, err := a.deserializeAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (a *accountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	sealedKey, err := a.sealer.Seal(account.APIKey)
	if err != nil {
		return err
	}

	sqlQuery, args, err := squirrel.
		Insert("accounts").
		Columns("id", "name", "base_url", "api_key", "is_active", "contact_count", "created_at", "updated_at").
		Values(account.ID, account.Name, account.BaseURL, sealedKey, account.IsActive, 0, squirrel.Expr("NOW()"), squirrel.Expr("NOW()")).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("falha ao montar query: %w", err)
	}

	if err := a.conn.QueryRow(ctx, sqlQuery, args...).Scan(&account.CreatedAt, &account.UpdatedAt); err != nil {
		return postgres.WrapError(err)
	}

	return nil
}

func (a *accountRepository) UpdateAccount(ctx context.Context, account *domain.Account) error {
	sealedKey, err := a.sealer.Seal(account.APIKey)
	if err != nil {
		return err
	}

	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("name", account.Name).
		Set("base_url", account.BaseURL).
		Set("api_key", sealedKey).
		Set("is_active", account.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("falha ao montar query: %w", err)
	}

	if _, err := a.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return postgres.WrapError(err)
	}

	return nil
}

func (a *accountRepository) SetActive(ctx context.Context, accountID string, active bool) error {
	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("falha ao montar query: %w", err)
	}

	if _, err := a.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return postgres.WrapError(err)
	}

	return nil
}

func (a *accountRepository) UpdateContactStats(ctx context.Context, accountID string, stats *domain.AccountContactStats) error {
	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("contact_count", stats.ContactCount).
		Set("contact_limit", nullableInt(stats.ContactLimit)).
		Set("last_contact_sync", stats.SyncedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("falha ao montar query: %w", err)
	}

	if _, err := a.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return postgres.WrapError(err)
	}

	return nil
}
