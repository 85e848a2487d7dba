package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/gravora/metrics-api/infrastructure/database/postgres"
	"github.com/gravora/metrics-api/internal/domain"
)

const dailyMetricsTable = "daily_metrics"

// DailyMetricsRepository guarda a projeção por data usada nos gráficos.
// Reconstruída a cada submissão aceita; o job de retenção remove datas
// antigas.
type DailyMetricsRepository interface {
	Replace(companyID string, metrics []domain.DailyMetric) error
	GetByCompanyID(companyID string) ([]domain.DailyMetric, error)
	DeleteOlderThan(days int) (int64, error)
}

type dailyMetricsRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricsRepository(conn *postgres.Connection) DailyMetricsRepository {
	return &dailyMetricsRepository{
		conn: conn,
	}
}

func (r *dailyMetricsRepository) Replace(companyID string, metrics []domain.DailyMetric) error {
	deleteQuery, deleteArgs, err := squirrel.
		Delete(dailyMetricsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(deleteQuery, deleteArgs...); err != nil {
		return errors.Wrap(err, "erro ao remover daily metrics")
	}

	if len(metrics) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(dailyMetricsTable).
		Columns("company_id", "date", "sessions", "leads", "sales", "revenue", "ad_spend").
		PlaceholderFormat(squirrel.Dollar)

	for _, metric := range metrics {
		queryBuilder = queryBuilder.Values(
			companyID, metric.Date.Format(time.DateOnly),
			metric.Sessions, metric.Leads, metric.Sales,
			metric.Revenue, metric.AdSpend,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao inserir daily metrics")
	}

	return nil
}

func (r *dailyMetricsRepository) GetByCompanyID(companyID string) ([]domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select("date", "sessions", "leads", "sales", "revenue", "ad_spend").
		From(dailyMetricsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	sqlRows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer sqlRows.Close()

	metrics := make([]domain.DailyMetric, 0)
	for sqlRows.Next() {
		var metric domain.DailyMetric
		err := sqlRows.Scan(
			&metric.Date, &metric.Sessions, &metric.Leads,
			&metric.Sales, &metric.Revenue, &metric.AdSpend,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear daily metric")
		}
		metrics = append(metrics, metric)
	}

	if err := sqlRows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return metrics, nil
}

func (r *dailyMetricsRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(dailyMetricsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao executar a query")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	return rowsAffected, nil
}
