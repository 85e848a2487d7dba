package snapshotting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/pkg/utils"
)

func TestAggregateRows_SumsFieldByFieldTreatingNilAsZero(t *testing.T) {
	rows := []domain.MetricRow{
		{
			PeriodIndex: 0,
			Sessions:    utils.IntPtr(100),
			Users:       utils.IntPtr(80),
			Leads:       utils.IntPtr(10),
			Revenue:     utils.FloatPtr(500.50),
			AdSpend:     utils.FloatPtr(120),
		},
		{
			PeriodIndex: 1,
			Sessions:    utils.IntPtr(200),
			Leads:       nil, // não informado, conta como zero
			Revenue:     utils.FloatPtr(99.50),
			Cogs:        utils.FloatPtr(30),
		},
		{
			PeriodIndex: 2,
		},
	}

	totals := AggregateRows(rows, domain.Period30Days)

	assert.Equal(t, 300, totals.Sessions)
	assert.Equal(t, 80, totals.Users)
	assert.Equal(t, 10, totals.Leads)
	assert.Equal(t, 600.0, totals.Revenue)
	assert.Equal(t, 120.0, totals.AdSpend)
	assert.Equal(t, 30.0, totals.Cogs)
	assert.Equal(t, 0, totals.Deals)
	assert.Equal(t, 30, totals.PeriodDays)
}

func TestAggregateRows_PeriodDaysMapping(t *testing.T) {
	tests := []struct {
		periodType   domain.PeriodType
		expectedDays int
	}{
		{domain.Period7Days, 7},
		{domain.Period30Days, 30},
		{domain.Period90Days, 90},
		{domain.PeriodType("unknown"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.periodType), func(t *testing.T) {
			totals := AggregateRows(nil, tt.periodType)
			assert.Equal(t, tt.expectedDays, totals.PeriodDays)
		})
	}
}

func TestAggregateRows_DuplicatePeriodIndexesAreSummedAsIs(t *testing.T) {
	// Sem deduplicação por índice: a unicidade é do chamador
	rows := []domain.MetricRow{
		{PeriodIndex: 0, Sessions: utils.IntPtr(50)},
		{PeriodIndex: 0, Sessions: utils.IntPtr(70)},
	}

	totals := AggregateRows(rows, domain.Period7Days)

	assert.Equal(t, 120, totals.Sessions)
}

func TestAggregateRows_EmptyInputYieldsZeroTotals(t *testing.T) {
	totals := AggregateRows([]domain.MetricRow{}, domain.Period7Days)

	assert.Equal(t, domain.AggregateTotals{PeriodDays: 7}, totals)
}
