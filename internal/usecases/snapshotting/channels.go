package snapshotting

import (
	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/pkg/utils"
)

// AggregateChannels agrupa as linhas de canal por nome, soma os campos
// numéricos entre períodos e deriva custos unitários e participação no
// tráfego de cada canal. A ordem de saída segue a primeira aparição de cada
// canal na entrada, para manter o resultado determinístico.
func AggregateChannels(rows []domain.ChannelRow) []domain.ChannelAggregate {
	byName := make(map[string]*domain.ChannelAggregate)
	order := make([]string, 0)

	for _, row := range rows {
		aggregate, ok := byName[row.ChannelName]
		if !ok {
			aggregate = &domain.ChannelAggregate{
				ChannelName: row.ChannelName,
				ChannelType: row.ChannelType,
			}
			byName[row.ChannelName] = aggregate
			order = append(order, row.ChannelName)
		}

		aggregate.Sessions += utils.IntOrZero(row.Sessions)
		aggregate.Clicks += utils.IntOrZero(row.Clicks)
		aggregate.Impressions += utils.IntOrZero(row.Impressions)
		aggregate.Leads += utils.IntOrZero(row.Leads)
		aggregate.AdSpend += utils.FloatOrZero(row.AdSpend)
	}

	totalSessions := 0
	for _, name := range order {
		totalSessions += byName[name].Sessions
	}

	aggregates := make([]domain.ChannelAggregate, 0, len(order))
	for _, name := range order {
		aggregate := byName[name]

		aggregate.CPC = roundPtr(ratio(aggregate.AdSpend, float64(aggregate.Clicks)))
		aggregate.CPL = roundPtr(ratio(aggregate.AdSpend, float64(aggregate.Leads)))
		aggregate.CPM = roundPtr(scaledRatio(aggregate.AdSpend, float64(aggregate.Impressions), 1000))
		aggregate.CR = roundPtr(percentage(float64(aggregate.Leads), float64(aggregate.Sessions)))

		// Participação zero é um dado ("canal sem tráfego"), diferente da
		// ausência de dados de canal — por isso float, não ponteiro
		if totalSessions > 0 {
			aggregate.ShareOfTraffic = utils.RoundWithTwoDecimalPlace(
				float64(aggregate.Sessions) / float64(totalSessions) * 100,
			)
		}

		aggregates = append(aggregates, *aggregate)
	}

	return aggregates
}

func roundPtr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := utils.RoundWithTwoDecimalPlace(*value)
	return &rounded
}
