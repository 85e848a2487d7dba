package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/gravora/metrics-api/infrastructure/database/postgres"
	"github.com/gravora/metrics-api/internal/domain"
)

const snapshotsTable = "manual_snapshots"

// SnapshotRepository guarda o snapshot agregado corrente de cada empresa.
// Upsert por company_id: uma submissão nova substitui a anterior, sem
// histórico — retenção, se necessária, vive em outra camada.
type SnapshotRepository interface {
	SaveOrUpdate(companyID string, snapshot *domain.Snapshot) error
	GetByCompanyID(companyID string) (*domain.Snapshot, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) SaveOrUpdate(companyID string, snapshot *domain.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar snapshot para JSON")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(snapshotsTable).
		Columns("company_id", "gate_status", "data_quality_score", "snapshot").
		Values(companyID, snapshot.GateStatus, snapshot.DataQualityScore, payload).
		Suffix(`
			ON CONFLICT (company_id) DO UPDATE SET
				gate_status = EXCLUDED.gate_status,
				data_quality_score = EXCLUDED.data_quality_score,
				snapshot = EXCLUDED.snapshot,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(err, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao salvar snapshot")
	}

	return nil
}

func (r *snapshotRepository) GetByCompanyID(companyID string) (*domain.Snapshot, error) {
	query, args, err := squirrel.
		Select("snapshot").
		From(snapshotsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var payload []byte
	if err := r.conn.QueryRow(query, args...).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar snapshot")
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar snapshot")
	}

	return &snapshot, nil
}
