package domain

import "time"

// Company representa a empresa dona das submissões manuais. Cada usuário só
// enxerga as empresas que criou.
type Company struct {
	ID        string     `json:"id"`
	UserID    int        `json:"user_id"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// BusinessContext guarda o contexto de negócio informado no onboarding,
// incluindo o mapeamento de eventos usado pelo motor de snapshot
type BusinessContext struct {
	CompanyID     string       `json:"company_id"`
	Industry      *string      `json:"industry"`
	BusinessModel *string      `json:"business_model"`
	Goals         []string     `json:"goals"`
	Mapping       EventMapping `json:"mapping"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
