package snapshotting

import (
	"github.com/gravora/metrics-api/internal/domain"
)

// DeriveMetrics calcula todas as razões dependentes a partir dos totais
// agregados. Política de divisão: denominador zero ou ausente produz nil —
// nunca 0, nunca NaN/Inf, nunca erro. Percentuais são razão × 100.
func DeriveMetrics(totals domain.AggregateTotals) domain.DerivedMetrics {
	sessions := float64(totals.Sessions)
	users := float64(totals.Users)
	clicks := float64(totals.Clicks)
	impressions := float64(totals.Impressions)
	leads := float64(totals.Leads)
	deals := float64(totals.Deals)
	sales := float64(totals.Sales)
	repeatSales := float64(totals.RepeatSales)

	metrics := domain.DerivedMetrics{
		// Conversões do funil
		CRSessionLead: percentage(leads, sessions),
		CRLeadDeal:    percentage(deals, leads),
		CRDealSale:    percentage(sales, deals),
		CRSessionSale: percentage(sales, sessions),
		CRClickLead:   percentage(leads, clicks),

		// Custo por ação
		CPC: ratio(totals.AdSpend, clicks),
		CPU: ratio(totals.AdSpend, users),
		CPL: ratio(totals.AdSpend, leads),
		CPD: ratio(totals.AdSpend, deals),
		CPS: ratio(totals.AdSpend, sales),
		CPM: scaledRatio(totals.AdSpend, impressions, 1000),

		// Financeiro. ROMI repete a fórmula do ROI de propósito: não existe
		// uma receita exclusivamente de marketing no modelo de entrada.
		ROI:         percentage(totals.Revenue-totals.AdSpend, totals.AdSpend),
		ROMI:        percentage(totals.Revenue-totals.AdSpend, totals.AdSpend),
		ROAS:        ratio(totals.Revenue, totals.AdSpend),
		GrossProfit: totals.Revenue - totals.Cogs,
		NetProfit:   totals.Revenue - totals.Cogs - totals.AdSpend,
		RepeatRate:  percentage(repeatSales, sales),

		// Cliente
		ATP: ratio(totals.Revenue, sales),
		SPH: ratio(totals.Revenue, users),
		CAC: ratio(totals.AdSpend, sales),

		// Anúncios e tráfego
		CTR:                 percentage(clicks, impressions),
		OrganicTrafficShare: percentage(float64(totals.OrganicSessions), float64(totals.OrganicSessions+totals.PaidSessions)),
		PaidTrafficShare:    percentage(float64(totals.PaidSessions), float64(totals.OrganicSessions+totals.PaidSessions)),

		// Ritmo diário
		DailySales:   ratio(sales, float64(totals.PeriodDays)),
		DailyRevenue: ratio(totals.Revenue, float64(totals.PeriodDays)),
	}

	metrics.EBITDA = metrics.NetProfit
	metrics.EBITDAMargin = percentage(metrics.EBITDA, totals.Revenue)
	metrics.GrossMargin = percentage(metrics.GrossProfit, totals.Revenue)

	// LTV = ATP × (1 + repeatRate/100). ATP nulo propaga; repeatRate nula
	// degrada o multiplicador para 1.
	if metrics.ATP != nil {
		multiplier := 1.0
		if metrics.RepeatRate != nil {
			multiplier = 1 + *metrics.RepeatRate/100
		}
		ltv := *metrics.ATP * multiplier
		metrics.LTV = &ltv
	}

	if metrics.LTV != nil && metrics.CAC != nil && *metrics.CAC != 0 {
		ltvCac := *metrics.LTV / *metrics.CAC
		metrics.LTVCACRatio = &ltvCac
	}

	return metrics
}

// ratio devolve numerator/denominator, ou nil quando o denominador é zero
func ratio(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	value := numerator / denominator
	return &value
}

// percentage devolve numerator/denominator × 100, ou nil quando o denominador
// é zero
func percentage(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	value := numerator / denominator * 100
	return &value
}

// scaledRatio devolve numerator/denominator × scale, ou nil quando o
// denominador é zero
func scaledRatio(numerator, denominator, scale float64) *float64 {
	if denominator == 0 {
		return nil
	}
	value := numerator / denominator * scale
	return &value
}
