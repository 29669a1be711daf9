package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-builder-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

const (
	creativesTable = "creatives c"
)

type CreativeRepository interface {
	GetCreativeByID(creativeID string) (*domain.Creative, error)
	ListByAccountID(accountID string) ([]*domain.Creative, error)
	ListByIDs(accountID string, creativeIDs []string) ([]*domain.Creative, error)
	SaveScoring(creativeID string, scoring *domain.CreativeScoring) error
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

func (r *creativeRepository) GetCreativeByID(creativeID string) (*domain.Creative, error) {
	query, args, err := squirrel.
		Select("c.id, c.account_id, c.title, c.platform_ids, c.scoring, c.created_at").
		From(creativesTable).
		Where(squirrel.Eq{"c.id": creativeID, "c.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	creative, err := r.scanCreative(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear criativo: %w", err)
	}

	return creative, nil
}

func (r *creativeRepository) ListByAccountID(accountID string) ([]*domain.Creative, error) {
	query, args, err := squirrel.
		Select("c.id, c.account_id, c.title, c.platform_ids, c.scoring, c.created_at").
		From(creativesTable).
		Where(squirrel.Eq{"c.account_id": accountID, "c.deleted": false}).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCreatives(query, args...)
}

func (r *creativeRepository) ListByIDs(accountID string, creativeIDs []string) ([]*domain.Creative, error) {
	if len(creativeIDs) == 0 {
		return []*domain.Creative{}, nil
	}

	query, args, err := squirrel.
		Select("c.id, c.account_id, c.title, c.platform_ids, c.scoring, c.created_at").
		From(creativesTable).
		Where(squirrel.Eq{"c.account_id": accountID, "c.id": creativeIDs, "c.deleted": false}).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCreatives(query, args...)
}

func (r *creativeRepository) queryCreatives(query string, args ...interface{}) ([]*domain.Creative, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	creatives := make([]*domain.Creative, 0)
	for rows.Next() {
		creative, err := r.scanCreativeRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear criativos: %w", err)
		}
		creatives = append(creatives, creative)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return creatives, nil
}

func (r *creativeRepository) SaveScoring(creativeID string, scoring *domain.CreativeScoring) error {
	scoringJSON, err := json.Marshal(scoring)
	if err != nil {
		return fmt.Errorf("erro ao serializar scoring para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("creatives").
		Set("scoring", scoringJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": creativeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *creativeRepository) scanCreative(row *sql.Row) (*domain.Creative, error) {
	creative := &domain.Creative{}
	var platformIDsJSON []byte
	var scoringJSON []byte

	err := row.Scan(
		&creative.ID,
		&creative.AccountID,
		&creative.Title,
		&platformIDsJSON,
		&scoringJSON,
		&creative.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.deserializeJSONColumns(creative, platformIDsJSON, scoringJSON); err != nil {
		return nil, err
	}

	return creative, nil
}

func (r *creativeRepository) scanCreativeRows(rows *sql.Rows) (*domain.Creative, error) {
	creative := &domain.Creative{}
	var platformIDsJSON []byte
	var scoringJSON []byte

	err := rows.Scan(
		&creative.ID,
		&creative.AccountID,
		&creative.Title,
		&platformIDsJSON,
		&scoringJSON,
		&creative.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.deserializeJSONColumns(creative, platformIDsJSON, scoringJSON); err != nil {
		return nil, err
	}

	return creative, nil
}

func (r *creativeRepository) deserializeJSONColumns(creative *domain.Creative, platformIDsJSON, scoringJSON []byte) error {
	if platformIDsJSON != nil {
		platformIDs := map[domain.Objective]string{}
		if err := json.Unmarshal(platformIDsJSON, &platformIDs); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de platform_ids: %w", err)
		}
		creative.PlatformIDs = platformIDs
	}

	if scoringJSON != nil {
		scoring := &domain.CreativeScoring{}
		if err := json.Unmarshal(scoringJSON, scoring); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de scoring: %w", err)
		}
		creative.Scoring = scoring
	}

	return nil
}
