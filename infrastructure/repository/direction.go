package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-builder-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

const (
	directionsTable = "directions d"
)

type DirectionRepository interface {
	GetDirectionByID(directionID string) (*domain.Direction, error)
	ListByAccountID(accountID string, onlyActive bool) ([]*domain.Direction, error)
}

type directionRepository struct {
	conn *postgres.Connection
}

func NewDirectionRepository(conn *postgres.Connection) DirectionRepository {
	return &directionRepository{
		conn: conn,
	}
}

func (r *directionRepository) GetDirectionByID(directionID string) (*domain.Direction, error) {
	query, args, err := squirrel.
		Select("d.id, d.account_id, d.name, d.external_campaign_id, d.objective, d.daily_budget_cents, d.target_cpl_cents, d.active, d.created_at, d.updated_at").
		From(directionsTable).
		Where(squirrel.Eq{"d.id": directionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	direction := &domain.Direction{}
	err = row.Scan(
		&direction.ID,
		&direction.AccountID,
		&direction.Name,
		&direction.ExternalCampaignID,
		&direction.Objective,
		&direction.DailyBudgetCents,
		&direction.TargetCPLCents,
		&direction.Active,
		&direction.CreatedAt,
		&direction.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear direction: %w", err)
	}

	return direction, nil
}

func (r *directionRepository) ListByAccountID(accountID string, onlyActive bool) ([]*domain.Direction, error) {
	queryBuilder := squirrel.
		Select("d.id, d.account_id, d.name, d.external_campaign_id, d.objective, d.daily_budget_cents, d.target_cpl_cents, d.active, d.created_at, d.updated_at").
		From(directionsTable).
		Where(squirrel.Eq{"d.account_id": accountID}).
		OrderBy("d.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"d.active": true})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	directions := make([]*domain.Direction, 0)
	for rows.Next() {
		direction := &domain.Direction{}
		if err := rows.Scan(
			&direction.ID,
			&direction.AccountID,
			&direction.Name,
			&direction.ExternalCampaignID,
			&direction.Objective,
			&direction.DailyBudgetCents,
			&direction.TargetCPLCents,
			&direction.Active,
			&direction.CreatedAt,
			&direction.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear directions: %w", err)
		}
		directions = append(directions, direction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return directions, nil
}
