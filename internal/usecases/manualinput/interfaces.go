package manualinput

import (
	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/internal/usecases/snapshotting"
)

// SubmissionResult é a resposta de uma submissão: quando há erro de
// validação, Accepted é false e nada foi persistido
type SubmissionResult struct {
	Accepted bool                      `json:"accepted"`
	Issues   []domain.ValidationIssue  `json:"issues"`
	Snapshot *domain.Snapshot          `json:"snapshot"`
	Channels []domain.ChannelAggregate `json:"channels"`
}

// StoredSubmission reúne tudo que foi persistido na última submissão aceita
// de uma empresa
type StoredSubmission struct {
	Rows         []domain.MetricRow        `json:"rows"`
	ChannelRows  []domain.ChannelRow       `json:"channel_rows"`
	Channels     []domain.ChannelAggregate `json:"channels"`
	Snapshot     *domain.Snapshot          `json:"snapshot"`
	DailyMetrics []domain.DailyMetric      `json:"daily_metrics"`
}

// Submitter define o fluxo de submissão manual de métricas
type Submitter interface {
	// Submit valida, calcula e persiste uma submissão completa para a empresa
	Submit(userID int, companyID string, input snapshotting.SubmissionInput) (*SubmissionResult, error)

	// Validate executa apenas a validação e o cálculo, sem persistir nada
	Validate(input snapshotting.SubmissionInput) *SubmissionResult

	// Load devolve a última submissão aceita da empresa
	Load(userID int, companyID string) (*StoredSubmission, error)
}
