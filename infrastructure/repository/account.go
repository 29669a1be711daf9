package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/campaign-builder-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	UpdateAccountToken(accountID string, token *string) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.external_id": accountExternalID})
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return a.getAccount(squirrel.Eq{"a.id": accountID})
}

func (a *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.meta_token, a.status, a.origin").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := a.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) deserializeAccount(row *sql.Row) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.Name,
		&acc.Nickname,
		&acc.MetaToken,
		&acc.Status,
		&acc.Origin,
	); err != nil {
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.external_id, a.name, a.nickname, a.meta_token, a.status, a.origin").
		From(accountsTable).
		OrderBy("a.nickname ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		statuses := make([]string, 0, len(availableStatus))
		for _, s := range availableStatus {
			statuses = append(statuses, string(s))
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": statuses})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc := &domain.AdAccount{}
		if err := rows.Scan(
			&acc.ID,
			&acc.ExternalID,
			&acc.Name,
			&acc.Nickname,
			&acc.MetaToken,
			&acc.Status,
			&acc.Origin,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (a *accountRepository) UpdateAccountToken(accountID string, token *string) error {
	updateSQL, updateArgs, err := squirrel.
		Update("accounts").
		Set("meta_token", token).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = a.conn.Exec(updateSQL, updateArgs...)
	return err
}
