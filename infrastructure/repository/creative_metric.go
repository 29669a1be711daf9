package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-builder-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

const (
	creativeMetricsTable = "creative_metrics cm"
)

type CreativeMetricRepository interface {
	GetByAccountDateAndCreativeIDs(accountID string, date time.Time, creativeIDs []string) ([]*domain.CreativeMetricRow, error)
	GetByDateRange(accountID, creativeID string, startDate, endDate time.Time) ([]*domain.CreativeMetricRow, error)
	SaveOrUpdate(row *domain.CreativeMetricRow) error
	DeleteOlderThan(days int) (int64, error)
}

type creativeMetricRepository struct {
	conn *postgres.Connection
}

func NewCreativeMetricRepository(conn *postgres.Connection) CreativeMetricRepository {
	return &creativeMetricRepository{
		conn: conn,
	}
}

func (r *creativeMetricRepository) GetByAccountDateAndCreativeIDs(accountID string, date time.Time, creativeIDs []string) ([]*domain.CreativeMetricRow, error) {
	if len(creativeIDs) == 0 {
		return []*domain.CreativeMetricRow{}, nil
	}

	query, args, err := squirrel.
		Select("cm.id, cm.account_id, cm.creative_id, cm.external_ad_id, cm.date, cm.impressions, cm.reach, cm.spend, cm.clicks, cm.link_clicks, cm.leads, cm.frequency, cm.created_at, cm.updated_at").
		From(creativeMetricsTable).
		Where(squirrel.Eq{
			"cm.account_id":  accountID,
			"cm.date":        date.Format("2006-01-02"),
			"cm.creative_id": creativeIDs,
		}).
		OrderBy("cm.creative_id ASC, cm.external_ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRows(query, args...)
}

func (r *creativeMetricRepository) GetByDateRange(accountID, creativeID string, startDate, endDate time.Time) ([]*domain.CreativeMetricRow, error) {
	query, args, err := squirrel.
		Select("cm.id, cm.account_id, cm.creative_id, cm.external_ad_id, cm.date, cm.impressions, cm.reach, cm.spend, cm.clicks, cm.link_clicks, cm.leads, cm.frequency, cm.created_at, cm.updated_at").
		From(creativeMetricsTable).
		Where(squirrel.Eq{"cm.account_id": accountID, "cm.creative_id": creativeID}).
		Where(squirrel.GtOrEq{"cm.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"cm.date": endDate.Format("2006-01-02")}).
		OrderBy("cm.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRows(query, args...)
}

func (r *creativeMetricRepository) queryRows(query string, args ...interface{}) ([]*domain.CreativeMetricRow, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.CreativeMetricRow, 0)
	for rows.Next() {
		metric, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas de criativo: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *creativeMetricRepository) SaveOrUpdate(row *domain.CreativeMetricRow) error {
	query := squirrel.StatementBuilder.
		Insert("creative_metrics").
		Columns("account_id", "creative_id", "external_ad_id", "date", "impressions", "reach", "spend", "clicks", "link_clicks", "leads", "frequency").
		Values(
			row.AccountID,
			row.CreativeID,
			row.ExternalAdID,
			row.Date.Format("2006-01-02"),
			row.Impressions,
			row.Reach,
			row.Spend,
			row.Clicks,
			row.LinkClicks,
			row.Leads,
			row.Frequency,
		).
		Suffix(`
			ON CONFLICT (account_id, creative_id, external_ad_id, date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				reach = EXCLUDED.reach,
				spend = EXCLUDED.spend,
				clicks = EXCLUDED.clicks,
				link_clicks = EXCLUDED.link_clicks,
				leads = EXCLUDED.leads,
				frequency = EXCLUDED.frequency,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *creativeMetricRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("creative_metrics").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *creativeMetricRepository) scanRow(rows *sql.Rows) (*domain.CreativeMetricRow, error) {
	metric := &domain.CreativeMetricRow{}

	err := rows.Scan(
		&metric.ID,
		&metric.AccountID,
		&metric.CreativeID,
		&metric.ExternalAdID,
		&metric.Date,
		&metric.Impressions,
		&metric.Reach,
		&metric.Spend,
		&metric.Clicks,
		&metric.LinkClicks,
		&metric.Leads,
		&metric.Frequency,
		&metric.CreatedAt,
		&metric.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return metric, nil
}
