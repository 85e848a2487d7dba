package snapshotting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravora/metrics-api/internal/domain"
)

func baselineTotals() domain.AggregateTotals {
	return domain.AggregateTotals{
		Sessions:    1000,
		Users:       800,
		Clicks:      500,
		Impressions: 50000,
		Leads:       100,
		Deals:       20,
		Sales:       10,
		RepeatSales: 2,
		Revenue:     5000,
		AdSpend:     1000,
		Cogs:        2000,
		PeriodDays:  30,
	}
}

func TestDeriveMetrics_Baseline(t *testing.T) {
	metrics := DeriveMetrics(baselineTotals())

	expected := map[string]struct {
		actual *float64
		value  float64
	}{
		"cr_session_lead": {metrics.CRSessionLead, 10.0},
		"cr_lead_deal":    {metrics.CRLeadDeal, 20.0},
		"cr_deal_sale":    {metrics.CRDealSale, 50.0},
		"cr_session_sale": {metrics.CRSessionSale, 1.0},
		"cr_click_lead":   {metrics.CRClickLead, 20.0},
		"cpc":             {metrics.CPC, 2.0},
		"cpu":             {metrics.CPU, 1.25},
		"cpl":             {metrics.CPL, 10.0},
		"cpd":             {metrics.CPD, 50.0},
		"cps":             {metrics.CPS, 100.0},
		"cpm":             {metrics.CPM, 20.0},
		"roi":             {metrics.ROI, 400.0},
		"romi":            {metrics.ROMI, 400.0},
		"roas":            {metrics.ROAS, 5.0},
		"repeat_rate":     {metrics.RepeatRate, 20.0},
		"atp":             {metrics.ATP, 500.0},
		"sph":             {metrics.SPH, 6.25},
		"cac":             {metrics.CAC, 100.0},
		"ltv":             {metrics.LTV, 600.0},
		"ltv_cac_ratio":   {metrics.LTVCACRatio, 6.0},
		"ctr":             {metrics.CTR, 1.0},
		"ebitda_margin":   {metrics.EBITDAMargin, 40.0},
		"gross_margin":    {metrics.GrossMargin, 60.0},
		"daily_sales":     {metrics.DailySales, 10.0 / 30.0},
		"daily_revenue":   {metrics.DailyRevenue, 5000.0 / 30.0},
	}

	for name, tt := range expected {
		require.NotNil(t, tt.actual, name)
		assert.InDelta(t, tt.value, *tt.actual, 1e-9, name)
	}

	assert.Equal(t, 3000.0, metrics.GrossProfit)
	assert.Equal(t, 2000.0, metrics.NetProfit)
	assert.Equal(t, 2000.0, metrics.EBITDA)
}

func TestDeriveMetrics_NullPropagationOnZeroDenominators(t *testing.T) {
	metrics := DeriveMetrics(domain.AggregateTotals{})

	nullables := map[string]*float64{
		"cr_session_lead":       metrics.CRSessionLead,
		"cr_lead_deal":          metrics.CRLeadDeal,
		"cr_deal_sale":          metrics.CRDealSale,
		"cr_session_sale":       metrics.CRSessionSale,
		"cr_click_lead":         metrics.CRClickLead,
		"cpc":                   metrics.CPC,
		"cpu":                   metrics.CPU,
		"cpl":                   metrics.CPL,
		"cpd":                   metrics.CPD,
		"cps":                   metrics.CPS,
		"cpm":                   metrics.CPM,
		"roi":                   metrics.ROI,
		"romi":                  metrics.ROMI,
		"roas":                  metrics.ROAS,
		"repeat_rate":           metrics.RepeatRate,
		"atp":                   metrics.ATP,
		"sph":                   metrics.SPH,
		"cac":                   metrics.CAC,
		"ltv":                   metrics.LTV,
		"ltv_cac_ratio":         metrics.LTVCACRatio,
		"ebitda_margin":         metrics.EBITDAMargin,
		"gross_margin":          metrics.GrossMargin,
		"ctr":                   metrics.CTR,
		"organic_traffic_share": metrics.OrganicTrafficShare,
		"paid_traffic_share":    metrics.PaidTrafficShare,
		"daily_sales":           metrics.DailySales,
		"daily_revenue":         metrics.DailyRevenue,
	}

	for name, value := range nullables {
		assert.Nil(t, value, name)
	}

	// Lucros nunca são nulos
	assert.Equal(t, 0.0, metrics.GrossProfit)
	assert.Equal(t, 0.0, metrics.NetProfit)
	assert.Equal(t, 0.0, metrics.EBITDA)
}

func TestDeriveMetrics_NeverNaNOrInf(t *testing.T) {
	// Combinações de zeros que derrubariam uma divisão ingênua
	totals := domain.AggregateTotals{
		Revenue: 100,
		Cogs:    100,
	}

	metrics := DeriveMetrics(totals)

	for name, value := range map[string]*float64{
		"roi": metrics.ROI, "roas": metrics.ROAS, "atp": metrics.ATP,
		"gross_margin": metrics.GrossMargin, "ebitda_margin": metrics.EBITDAMargin,
	} {
		if value != nil {
			assert.False(t, math.IsNaN(*value), name)
			assert.False(t, math.IsInf(*value, 0), name)
		}
	}
}

func TestDeriveMetrics_ROIAndROMIAreIntentionallyIdentical(t *testing.T) {
	// Simplificação documentada: não há receita exclusivamente de marketing
	// no modelo, então ROMI colapsa na fórmula do ROI
	metrics := DeriveMetrics(baselineTotals())

	require.NotNil(t, metrics.ROI)
	require.NotNil(t, metrics.ROMI)
	assert.Equal(t, *metrics.ROI, *metrics.ROMI)
}

func TestDeriveMetrics_LTVNullPropagation(t *testing.T) {
	t.Run("atp nulo propaga para ltv e ltv_cac", func(t *testing.T) {
		metrics := DeriveMetrics(domain.AggregateTotals{AdSpend: 100})

		assert.Nil(t, metrics.ATP)
		assert.Nil(t, metrics.LTV)
		assert.Nil(t, metrics.LTVCACRatio)
	})

	t.Run("repeat rate nula degrada o multiplicador para 1", func(t *testing.T) {
		metrics := DeriveMetrics(domain.AggregateTotals{
			Sales:   10,
			Revenue: 5000,
		})

		require.NotNil(t, metrics.ATP)
		require.NotNil(t, metrics.LTV)
		assert.Equal(t, *metrics.ATP, *metrics.LTV)
	})

	t.Run("cac zero deixa ltv_cac nulo", func(t *testing.T) {
		// Sem investimento em anúncio o CAC é zero (não nulo: há vendas),
		// e a razão LTV/CAC não é calculável
		metrics := DeriveMetrics(domain.AggregateTotals{
			Sales:   10,
			Revenue: 5000,
		})

		require.NotNil(t, metrics.LTV)
		require.NotNil(t, metrics.CAC)
		assert.Equal(t, 0.0, *metrics.CAC)
		assert.Nil(t, metrics.LTVCACRatio)
	})
}

func TestDeriveMetrics_TrafficShares(t *testing.T) {
	metrics := DeriveMetrics(domain.AggregateTotals{
		OrganicSessions: 300,
		PaidSessions:    100,
	})

	require.NotNil(t, metrics.OrganicTrafficShare)
	require.NotNil(t, metrics.PaidTrafficShare)
	assert.Equal(t, 75.0, *metrics.OrganicTrafficShare)
	assert.Equal(t, 25.0, *metrics.PaidTrafficShare)
}
