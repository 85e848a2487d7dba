package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/gravora/metrics-api/infrastructure/database/postgres"
	"github.com/gravora/metrics-api/internal/domain"
)

const (
	channelInputsTable    = "manual_channel_inputs"
	channelSnapshotsTable = "manual_channel_snapshots"
)

// ChannelInputRepository persiste as linhas por canal e os agregados
// derivados delas. Ambos são substituídos por inteiro a cada submissão.
type ChannelInputRepository interface {
	Replace(companyID string, periodType domain.PeriodType, rows []domain.ChannelRow) error
	GetByCompanyID(companyID string) ([]domain.ChannelRow, error)
	ReplaceAggregates(companyID string, aggregates []domain.ChannelAggregate) error
	GetAggregatesByCompanyID(companyID string) ([]domain.ChannelAggregate, error)
}

type channelInputRepository struct {
	conn *postgres.Connection
}

func NewChannelInputRepository(conn *postgres.Connection) ChannelInputRepository {
	return &channelInputRepository{
		conn: conn,
	}
}

func (r *channelInputRepository) Replace(
	companyID string,
	periodType domain.PeriodType,
	rows []domain.ChannelRow,
) error {
	if err := r.deleteByCompanyID(channelInputsTable, companyID); err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(channelInputsTable).
		Columns(
			"company_id", "period_type", "period_index", "period_label",
			"channel_name", "channel_type",
			"sessions", "clicks", "impressions", "leads", "ad_spend",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		queryBuilder = queryBuilder.Values(
			companyID, string(periodType), row.PeriodIndex, row.PeriodLabel,
			row.ChannelName, string(row.ChannelType),
			row.Sessions, row.Clicks, row.Impressions, row.Leads, row.AdSpend,
		)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao inserir channel inputs")
	}

	return nil
}

func (r *channelInputRepository) GetByCompanyID(companyID string) ([]domain.ChannelRow, error) {
	query, args, err := squirrel.
		Select(
			"period_index", "period_label", "channel_name", "channel_type",
			"sessions", "clicks", "impressions", "leads", "ad_spend",
		).
		From(channelInputsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("channel_name ASC", "period_index ASC").
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

	rows := make([]domain.ChannelRow, 0)
	for sqlRows.Next() {
		var row domain.ChannelRow
		var channelType string
		err := sqlRows.Scan(
			&row.PeriodIndex, &row.PeriodLabel, &row.ChannelName, &channelType,
			&row.Sessions, &row.Clicks, &row.Impressions, &row.Leads, &row.AdSpend,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear channel input")
		}
		row.ChannelType = domain.ChannelType(channelType)
		rows = append(rows, row)
	}

	if err := sqlRows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return rows, nil
}

func (r *channelInputRepository) ReplaceAggregates(
	companyID string,
	aggregates []domain.ChannelAggregate,
) error {
	if err := r.deleteByCompanyID(channelSnapshotsTable, companyID); err != nil {
		return err
	}

	if len(aggregates) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(channelSnapshotsTable).
		Columns("company_id", "position", "channel_name", "aggregate").
		PlaceholderFormat(squirrel.Dollar)

	for position, aggregate := range aggregates {
		payload, err := json.Marshal(aggregate)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar channel aggregate para JSON")
		}
		queryBuilder = queryBuilder.Values(companyID, position, aggregate.ChannelName, payload)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao inserir channel snapshots")
	}

	return nil
}

func (r *channelInputRepository) GetAggregatesByCompanyID(companyID string) ([]domain.ChannelAggregate, error) {
	query, args, err := squirrel.
		Select("aggregate").
		From(channelSnapshotsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("position ASC").
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

	aggregates := make([]domain.ChannelAggregate, 0)
	for sqlRows.Next() {
		var payload []byte
		if err := sqlRows.Scan(&payload); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear channel snapshot")
		}

		var aggregate domain.ChannelAggregate
		if err := json.Unmarshal(payload, &aggregate); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar channel aggregate")
		}
		aggregates = append(aggregates, aggregate)
	}

	if err := sqlRows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return aggregates, nil
}

func (r *channelInputRepository) deleteByCompanyID(table, companyID string) error {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"company_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao remover registros de canal")
	}

	return nil
}
