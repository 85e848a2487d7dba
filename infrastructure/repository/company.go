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

const (
	companiesTable        = "companies"
	businessContextsTable = "business_contexts"
)

type CompanyRepository interface {
	Create(company *domain.Company) (*domain.Company, error)
	GetByIDAndUser(companyID string, userID int) (*domain.Company, error)
	ListByUser(userID int) ([]*domain.Company, error)
	SetActive(companyID string, active bool) error
	SaveContext(context *domain.BusinessContext) error
	GetContext(companyID string) (*domain.BusinessContext, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) Create(company *domain.Company) (*domain.Company, error) {
	query, args, err := squirrel.
		Insert(companiesTable).
		Columns("id", "user_id", "name", "active").
		Values(company.ID, company.UserID, company.Name, company.Active).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	err = r.conn.QueryRow(query, args...).Scan(&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, errors.Wrapf(err, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return nil, errors.Wrap(err, "erro ao criar empresa")
	}

	return company, nil
}

func (r *companyRepository) GetByIDAndUser(companyID string, userID int) (*domain.Company, error) {
	return r.getCompany(squirrel.Eq{"id": companyID, "user_id": userID})
}

func (r *companyRepository) getCompany(whereClause squirrel.Eq) (*domain.Company, error) {
	whereClause["deleted_at"] = nil

	query, args, err := squirrel.
		Select("id", "user_id", "name", "active", "created_at", "updated_at", "deleted_at").
		From(companiesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var company domain.Company
	err = r.conn.QueryRow(query, args...).Scan(
		&company.ID, &company.UserID, &company.Name, &company.Active,
		&company.CreatedAt, &company.UpdatedAt, &company.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar empresa")
	}

	return &company, nil
}

func (r *companyRepository) ListByUser(userID int) ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "name", "active", "created_at", "updated_at", "deleted_at").
		From(companiesTable).
		Where(squirrel.Eq{"user_id": userID, "deleted_at": nil}).
		OrderBy("created_at ASC").
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

	companies := make([]*domain.Company, 0)
	for sqlRows.Next() {
		var company domain.Company
		err := sqlRows.Scan(
			&company.ID, &company.UserID, &company.Name, &company.Active,
			&company.CreatedAt, &company.UpdatedAt, &company.DeletedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear empresa")
		}
		companies = append(companies, &company)
	}

	if err := sqlRows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return companies, nil
}

func (r *companyRepository) SetActive(companyID string, active bool) error {
	query, args, err := squirrel.
		Update(companiesTable).
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao atualizar empresa")
	}

	return nil
}

func (r *companyRepository) SaveContext(context *domain.BusinessContext) error {
	goals, err := json.Marshal(context.Goals)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar goals para JSON")
	}

	mapping, err := json.Marshal(context.Mapping)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar mapping para JSON")
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(businessContextsTable).
		Columns("company_id", "industry", "business_model", "goals", "mapping").
		Values(context.CompanyID, context.Industry, context.BusinessModel, goals, mapping).
		Suffix(`
			ON CONFLICT (company_id) DO UPDATE SET
				industry = EXCLUDED.industry,
				business_model = EXCLUDED.business_model,
				goals = EXCLUDED.goals,
				mapping = EXCLUDED.mapping,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar contexto de negócio")
	}

	return nil
}

func (r *companyRepository) GetContext(companyID string) (*domain.BusinessContext, error) {
	query, args, err := squirrel.
		Select("company_id", "industry", "business_model", "goals", "mapping", "created_at", "updated_at").
		From(businessContextsTable).
		Where(squirrel.Eq{"company_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var context domain.BusinessContext
	var goals, mapping []byte
	err = r.conn.QueryRow(query, args...).Scan(
		&context.CompanyID, &context.Industry, &context.BusinessModel,
		&goals, &mapping, &context.CreatedAt, &context.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar contexto de negócio")
	}

	if goals != nil {
		if err := json.Unmarshal(goals, &context.Goals); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar goals")
		}
	}

	if mapping != nil {
		if err := json.Unmarshal(mapping, &context.Mapping); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar mapping")
		}
	}

	return &context, nil
}
