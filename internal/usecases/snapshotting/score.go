package snapshotting

import "github.com/gravora/metrics-api/internal/domain"

// Pontuação por bucket do score de qualidade. Heurística grosseira de
// completude, não uma medida estatística de confiança.
const (
	scoreAnyUsableData = 30
	scoreHasSessions   = 15
	scoreHasLeads      = 15
	scoreHasSales      = 15
	scoreHasRevenue    = 15
	scoreHasAdSpend    = 10
)

// ScoreQuality calcula o score de completude [0,100] dos dados informados.
// O primeiro bucket olha a presença (non-nil) de campos nas linhas cruas —
// um zero informado conta como presença; os demais olham os totais.
func ScoreQuality(rows []domain.MetricRow, totals domain.AggregateTotals) int {
	score := 0

	for _, row := range rows {
		if row.HasAnyUsableData() {
			score += scoreAnyUsableData
			break
		}
	}

	if totals.Sessions > 0 {
		score += scoreHasSessions
	}
	if totals.Leads > 0 {
		score += scoreHasLeads
	}
	if totals.Sales > 0 {
		score += scoreHasSales
	}
	if totals.Revenue > 0 {
		score += scoreHasRevenue
	}
	if totals.AdSpend > 0 {
		score += scoreHasAdSpend
	}

	return score
}
