package snapshotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravora/metrics-api/internal/domain"
	"github.com/gravora/metrics-api/pkg/utils"
)

func TestValidate_FunnelMonotonicity(t *testing.T) {
	tests := []struct {
		name          string
		row           domain.MetricRow
		expectedField string
		expectedMsg   string
	}{
		{
			name: "leads acima de sessions",
			row: domain.MetricRow{
				PeriodLabel: "Week 1",
				Sessions:    utils.IntPtr(100),
				Leads:       utils.IntPtr(150),
			},
			expectedField: "row-0-leads",
			expectedMsg:   "Week 1: Leads cannot exceed sessions",
		},
		{
			name: "deals acima de leads",
			row: domain.MetricRow{
				PeriodLabel: "Week 1",
				Leads:       utils.IntPtr(10),
				Deals:       utils.IntPtr(20),
			},
			expectedField: "row-0-deals",
			expectedMsg:   "Week 1: Deals cannot exceed leads",
		},
		{
			name: "sales acima de deals",
			row: domain.MetricRow{
				PeriodLabel: "Week 1",
				Deals:       utils.IntPtr(5),
				Sales:       utils.IntPtr(8),
				Revenue:     utils.FloatPtr(100),
			},
			expectedField: "row-0-sales",
			expectedMsg:   "Week 1: Sales cannot exceed deals",
		},
		{
			name: "repeat sales acima de sales",
			row: domain.MetricRow{
				PeriodLabel: "Week 1",
				Sales:       utils.IntPtr(4),
				RepeatSales: utils.IntPtr(6),
				Revenue:     utils.FloatPtr(100),
			},
			expectedField: "row-0-repeatSales",
			expectedMsg:   "Week 1: Repeat sales cannot exceed total sales",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Validate([]domain.MetricRow{tt.row})

			require.Len(t, issues, 1)
			assert.Equal(t, tt.expectedField, issues[0].Field)
			assert.Equal(t, tt.expectedMsg, issues[0].Message)
			assert.Equal(t, domain.SeverityError, issues[0].Severity)
		})
	}
}

func TestValidate_RevenueRequiredWhenSalesPositive(t *testing.T) {
	tests := []struct {
		name    string
		revenue *float64
	}{
		{name: "revenue ausente", revenue: nil},
		{name: "revenue zerada", revenue: utils.FloatPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Validate([]domain.MetricRow{
				{Sales: utils.IntPtr(5), Revenue: tt.revenue},
			})

			require.Len(t, issues, 1)
			assert.Equal(t, "row-0-revenue", issues[0].Field)
			assert.Equal(t, domain.SeverityError, issues[0].Severity)
			assert.Contains(t, issues[0].Message, "Revenue is 0 but sales > 0")
		})
	}
}

func TestValidate_AdSpendWithoutClicksIsWarningOnly(t *testing.T) {
	issues := Validate([]domain.MetricRow{
		{AdSpend: utils.FloatPtr(500)},
		{AdSpend: utils.FloatPtr(300), Clicks: utils.IntPtr(0)},
	})

	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, domain.SeverityWarning, issue.Severity)
		assert.Contains(t, issue.Message, "Ad spend present but no click data")
	}
	assert.Equal(t, "row-0-clicks", issues[0].Field)
	assert.Equal(t, "row-1-clicks", issues[1].Field)

	// Avisos nunca bloqueiam a aceitação
	assert.False(t, domain.HasBlockingIssues(issues))
}

func TestValidate_NilOperandsNeverTriggerRules(t *testing.T) {
	issues := Validate([]domain.MetricRow{
		{Leads: utils.IntPtr(150)},   // sessions nil
		{Deals: utils.IntPtr(30)},    // leads nil
		{Sales: utils.IntPtr(0)},     // sales zero, sem receita exigida
		{},                           // tudo nil
		{AdSpend: utils.FloatPtr(0)}, // spend zero não exige cliques
		{Revenue: utils.FloatPtr(0)}, // receita zero sem vendas
	})

	assert.Empty(t, issues)
}

func TestValidate_NegativeValuesRejected(t *testing.T) {
	issues := Validate([]domain.MetricRow{
		{
			PeriodLabel: "Week 1",
			Sessions:    utils.IntPtr(-10),
			Revenue:     utils.FloatPtr(-50),
		},
	})

	require.Len(t, issues, 2)
	assert.Equal(t, "row-0-sessions", issues[0].Field)
	assert.Equal(t, "row-0-revenue", issues[1].Field)
	for _, issue := range issues {
		assert.Equal(t, domain.SeverityError, issue.Severity)
		assert.Contains(t, issue.Message, "cannot be negative")
	}
}

func TestValidate_AllIssuesReturnedInOneBatch(t *testing.T) {
	issues := Validate([]domain.MetricRow{
		{
			Sessions: utils.IntPtr(100),
			Leads:    utils.IntPtr(150),
		},
		{
			Sales:   utils.IntPtr(5),
			Revenue: utils.FloatPtr(0),
			AdSpend: utils.FloatPtr(40),
		},
	})

	require.Len(t, issues, 3)
	assert.Equal(t, "row-0-leads", issues[0].Field)
	assert.Equal(t, "row-1-revenue", issues[1].Field)
	assert.Equal(t, "row-1-clicks", issues[2].Field)
	assert.True(t, domain.HasBlockingIssues(issues))
}

func TestValidate_LabelFallbackUsesRowPosition(t *testing.T) {
	issues := Validate([]domain.MetricRow{
		{},
		{Sessions: utils.IntPtr(1), Leads: utils.IntPtr(2)},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, "Period 2: Leads cannot exceed sessions", issues[0].Message)
}
