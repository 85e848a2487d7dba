package snapshotting

import (
	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/pkg/utils"
)

// AggregateRows soma campo a campo todas as linhas da janela de relatório,
// tratando nil como 0. Não há deduplicação: índices de período repetidos são
// somados como estão — a unicidade é responsabilidade de quem submete.
func AggregateRows(rows []domain.MetricRow, periodType domain.PeriodType) domain.AggregateTotals {
	totals := domain.AggregateTotals{
		PeriodDays: periodType.Days(),
	}

	for _, row := range rows {
		totals.Sessions += utils.IntOrZero(row.Sessions)
		totals.Users += utils.IntOrZero(row.Users)
		totals.Clicks += utils.IntOrZero(row.Clicks)
		totals.Impressions += utils.IntOrZero(row.Impressions)
		totals.OrganicSessions += utils.IntOrZero(row.OrganicSessions)
		totals.PaidSessions += utils.IntOrZero(row.PaidSessions)
		totals.Leads += utils.IntOrZero(row.Leads)
		totals.Deals += utils.IntOrZero(row.Deals)
		totals.Sales += utils.IntOrZero(row.Sales)
		totals.RepeatSales += utils.IntOrZero(row.RepeatSales)
		totals.Revenue += utils.FloatOrZero(row.Revenue)
		totals.AdSpend += utils.FloatOrZero(row.AdSpend)
		totals.TotalBudget += utils.FloatOrZero(row.TotalBudget)
		totals.Cogs += utils.FloatOrZero(row.Cogs)
	}

	return totals
}
