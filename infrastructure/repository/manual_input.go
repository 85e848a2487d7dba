package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/gravora/metrics-api/infrastructure/database/postgres"
	"github.com/gravora/metrics-api/internal/domain"
)

const manualInputsTable = "manual_inputs"

// ManualInputRepository persiste as linhas cruas de uma submissão manual.
// Cada nova submissão substitui integralmente as linhas anteriores da
// empresa (last write wins).
type ManualInputRepository interface {
	Replace(companyID string, periodType domain.PeriodType, granularity domain.Granularity, rows []domain.MetricRow) error
	GetByCompanyID(companyID string) ([]domain.MetricRow, error)
	DeleteByCompanyID(companyID string) error
}

type manualInputRepository struct {
	conn *postgres.Connection
}

func NewManualInputRepository(conn *postgres.Connection) ManualInputRepository {
	return &manualInputRepository{
		conn: conn,
	}
}

func (r *manualInputRepository) Replace(
	companyID string,
	periodType domain.PeriodType,
	granularity domain.Granularity,
	rows []domain.MetricRow,
) error {
	if err := r.DeleteByCompanyID(companyID); err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(manualInputsTable).
		Columns(
			"company_id", "period_type", "granularity",
			"period_index", "period_date", "period_label",
			"sessions", "users", "clicks", "impressions",
			"organic_sessions", "paid_sessions",
			"leads", "deals", "sales", "repeat_sales",
			"revenue", "ad_spend", "total_budget", "cogs",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		queryBuilder = queryBuilder.Values(
			companyID, string(periodType), string(granularity),
			row.PeriodIndex, row.PeriodDate.Format(time.DateOnly), row.PeriodLabel,
			row.Sessions, row.Users, row.Clicks, row.Impressions,
			row.OrganicSessions, row.PaidSessions,
			row.Leads, row.Deals, row.Sales, row.RepeatSales,
			row.Revenue, row.AdSpend, row.TotalBudget, row.Cogs,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao inserir manual inputs")
	}

	return nil
}

func (r *manualInputRepository) GetByCompanyID(companyID string) ([]domain.MetricRow, error) {
	query, args, err := squirrel.
		Select(
			"period_index", "period_date", "period_label",
			"sessions", "users", "clicks", "impressions",
			"organic_sessions", "paid_sessions",
			"leads", "deals", "sales", "repeat_sales",
			"revenue", "ad_spend", "total_budget", "cogs",
		).
		From(manualInputsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("period_index ASC").
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

	rows := make([]domain.MetricRow, 0)
	for sqlRows.Next() {
		var row domain.MetricRow
		err := sqlRows.Scan(
			&row.PeriodIndex, &row.PeriodDate, &row.PeriodLabel,
			&row.Sessions, &row.Users, &row.Clicks, &row.Impressions,
			&row.OrganicSessions, &row.PaidSessions,
			&row.Leads, &row.Deals, &row.Sales, &row.RepeatSales,
			&row.Revenue, &row.AdSpend, &row.TotalBudget, &row.Cogs,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear manual input")
		}
		rows = append(rows, row)
	}

	if err := sqlRows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return rows, nil
}

func (r *manualInputRepository) DeleteByCompanyID(companyID string) error {
	query, args, err := squirrel.
		Delete(manualInputsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao remover manual inputs")
	}

	return nil
}
