package snapshotting

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/pkg/utils"
)

func baselineInput() SubmissionInput {
	return SubmissionInput{
		Rows: []domain.MetricRow{
			{
				PeriodIndex: 0,
				PeriodDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				PeriodLabel: "Month 1",
				Sessions:    utils.IntPtr(1000),
				Leads:       utils.IntPtr(100),
				Deals:       utils.IntPtr(20),
				Sales:       utils.IntPtr(10),
				RepeatSales: utils.IntPtr(2),
				Clicks:      utils.IntPtr(500),
				Impressions: utils.IntPtr(50000),
				Revenue:     utils.FloatPtr(5000),
				AdSpend:     utils.FloatPtr(1000),
			},
		},
		PeriodType:  domain.Period30Days,
		Granularity: domain.GranularityMonth,
		Currency:    "KZT",
		Timezone:    "Asia/Almaty",
	}
}

func TestCompute_Baseline(t *testing.T) {
	result := Compute(baselineInput())

	assert.Empty(t, result.Issues)
	require.NotNil(t, result.Snapshot)

	snapshot := result.Snapshot
	assert.Equal(t, domain.DataModeManualSandbox, snapshot.DataMode)
	assert.Equal(t, domain.GateStatusSandbox, snapshot.GateStatus)
	assert.Equal(t, 30, snapshot.PeriodDays)
	assert.Equal(t, "KZT", snapshot.Currency)
	assert.Equal(t, "Asia/Almaty", snapshot.Timezone)

	metrics := snapshot.Metrics
	require.NotNil(t, metrics.CRSessionLead)
	assert.Equal(t, 10.0, *metrics.CRSessionLead)
	require.NotNil(t, metrics.CRLeadDeal)
	assert.Equal(t, 20.0, *metrics.CRLeadDeal)
	require.NotNil(t, metrics.CRDealSale)
	assert.Equal(t, 50.0, *metrics.CRDealSale)
	require.NotNil(t, metrics.CPL)
	assert.Equal(t, 10.0, *metrics.CPL)
	require.NotNil(t, metrics.CAC)
	assert.Equal(t, 100.0, *metrics.CAC)
	require.NotNil(t, metrics.ROAS)
	assert.Equal(t, 5.0, *metrics.ROAS)
	require.NotNil(t, metrics.ROI)
	assert.Equal(t, 400.0, *metrics.ROI)
	require.NotNil(t, metrics.ATP)
	assert.Equal(t, 500.0, *metrics.ATP)
	require.NotNil(t, metrics.RepeatRate)
	assert.Equal(t, 20.0, *metrics.RepeatRate)
	require.NotNil(t, metrics.LTV)
	assert.Equal(t, 600.0, *metrics.LTV)

	// Espelhos e fallbacks da montagem
	assert.Equal(t, 10, snapshot.TotalOrders)
	assert.Equal(t, 0, snapshot.TotalPageviews)
	assert.Equal(t, 0.0, snapshot.TotalRefunds)
	assert.Equal(t, 1000.0, snapshot.TotalBudget) // cai para o ad spend
	assert.Equal(t, metrics.ATP, snapshot.AvgAov)
	assert.Equal(t, 100, snapshot.DataQualityScore)
}

func TestCompute_BlockingIssueNullsSnapshot(t *testing.T) {
	input := SubmissionInput{
		Rows: []domain.MetricRow{
			{Sessions: utils.IntPtr(100), Leads: utils.IntPtr(150)},
		},
		PeriodType: domain.Period7Days,
	}

	result := Compute(input)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "row-0-leads", result.Issues[0].Field)
	assert.Nil(t, result.Snapshot)
}

func TestCompute_SalesWithoutRevenueIsRejected(t *testing.T) {
	input := SubmissionInput{
		Rows: []domain.MetricRow{
			{Sales: utils.IntPtr(5), Revenue: utils.FloatPtr(0)},
		},
		PeriodType: domain.Period7Days,
	}

	result := Compute(input)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "row-0-revenue", result.Issues[0].Field)
	assert.Nil(t, result.Snapshot)
}

func TestCompute_AllNullRowsYieldEmptySnapshot(t *testing.T) {
	input := SubmissionInput{
		Rows:       []domain.MetricRow{{}, {}, {}},
		PeriodType: domain.Period30Days,
	}

	result := Compute(input)

	assert.Empty(t, result.Issues)
	require.NotNil(t, result.Snapshot)

	assert.Equal(t, 0, result.Snapshot.Totals.Sessions)
	assert.Equal(t, 0.0, result.Snapshot.Totals.Revenue)
	assert.Equal(t, 0, result.Snapshot.DataQualityScore)
	assert.Nil(t, result.Snapshot.Metrics.CRSessionLead)
	assert.Nil(t, result.Snapshot.Metrics.ROAS)
	assert.Nil(t, result.Snapshot.Metrics.LTV)
}

func TestCompute_WarningStillProducesSnapshot(t *testing.T) {
	input := SubmissionInput{
		Rows: []domain.MetricRow{
			{AdSpend: utils.FloatPtr(500), Clicks: utils.IntPtr(0)},
		},
		PeriodType: domain.Period30Days,
	}

	result := Compute(input)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, domain.SeverityWarning, result.Issues[0].Severity)

	require.NotNil(t, result.Snapshot)
	assert.Nil(t, result.Snapshot.Metrics.CPC)
}

func TestCompute_EmptySubmissionIsTolerated(t *testing.T) {
	result := Compute(SubmissionInput{PeriodType: domain.Period7Days})

	assert.Empty(t, result.Issues)
	require.NotNil(t, result.Snapshot)
	assert.Equal(t, 0, result.Snapshot.DataQualityScore)
}

func TestCompute_Idempotence(t *testing.T) {
	input := baselineInput()

	first := Compute(input)
	second := Compute(input)

	assert.True(t, reflect.DeepEqual(first, second))

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestCompute_NullMetricsSerializeAsExplicitNull(t *testing.T) {
	result := Compute(SubmissionInput{
		Rows:       []domain.MetricRow{{}},
		PeriodType: domain.Period7Days,
	})

	require.NotNil(t, result.Snapshot)
	payload, err := json.Marshal(result.Snapshot.Metrics)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	// Campo calculado como nulo aparece como null, nunca é omitido
	value, present := decoded["roas"]
	assert.True(t, present)
	assert.Nil(t, value)
}
