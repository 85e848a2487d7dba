package snapshotting

import "github.com/gravora/metrics-api/internal/domain"

// SubmissionInput é a entrada completa de uma submissão manual. Currency,
// Timezone e Mapping são repassados ao snapshot sem validação.
type SubmissionInput struct {
	Rows        []domain.MetricRow  `json:"rows"`
	ChannelRows []domain.ChannelRow `json:"channel_rows"`
	PeriodType  domain.PeriodType   `json:"period_type"`
	Granularity domain.Granularity  `json:"granularity"`
	Currency    string              `json:"currency"`
	Timezone    string              `json:"timezone"`
	Mapping     domain.EventMapping `json:"mapping"`
}

// Compute é o motor completo: valida as linhas, agrega, deriva as métricas,
// pontua a qualidade e monta o snapshot. Função pura — sem relógio, sem
// aleatoriedade, sem I/O: a mesma entrada produz sempre a mesma saída.
//
// Se a validação devolver qualquer erro, Snapshot é nil e nada deve ser
// persistido; avisos acompanham um snapshot populado normalmente. Uma entrada
// vazia é tolerada e produz um snapshot com totais zerados e métricas nulas.
func Compute(input SubmissionInput) domain.SnapshotResult {
	issues := Validate(input.Rows)
	if domain.HasBlockingIssues(issues) {
		return domain.SnapshotResult{Issues: issues}
	}

	totals := AggregateRows(input.Rows, input.PeriodType)
	metrics := DeriveMetrics(totals)
	score := ScoreQuality(input.Rows, totals)

	snapshot := assemble(input, totals, metrics, score)

	return domain.SnapshotResult{
		Issues:   issues,
		Snapshot: snapshot,
	}
}

// assemble compõe o snapshot final. Composição pura: nenhum cálculo próprio
// além dos espelhos e fallbacks documentados no tipo Snapshot.
func assemble(
	input SubmissionInput,
	totals domain.AggregateTotals,
	metrics domain.DerivedMetrics,
	score int,
) *domain.Snapshot {
	totalBudget := totals.TotalBudget
	if totalBudget == 0 {
		totalBudget = totals.AdSpend
	}

	return &domain.Snapshot{
		DataMode:   domain.DataModeManualSandbox,
		GateStatus: domain.GateStatusSandbox,

		PeriodType:  input.PeriodType,
		Granularity: input.Granularity,
		Currency:    input.Currency,
		Timezone:    input.Timezone,
		PeriodDays:  totals.PeriodDays,

		Totals:  totals,
		Metrics: metrics,

		TotalOrders:    totals.Sales,
		TotalPageviews: 0,
		TotalRefunds:   0,
		TotalBudget:    totalBudget,
		AvgAov:         metrics.ATP,

		DataQualityScore: score,

		Mapping: input.Mapping,
	}
}
