package domain

import "time"

// MetricRow representa uma linha de métricas informada manualmente para um
// período do relatório. Campos ponteiro distinguem "não informado" (nil) de
// "informado como zero" (0) — a distinção alimenta o score de qualidade.
type MetricRow struct {
	PeriodIndex int       `json:"period_index"`
	PeriodDate  time.Time `json:"period_date"`
	PeriodLabel string    `json:"period_label"`

	// Tráfego
	Sessions        *int `json:"sessions"`
	Users           *int `json:"users"`
	Clicks          *int `json:"clicks"`
	Impressions     *int `json:"impressions"`
	OrganicSessions *int `json:"organic_sessions"`
	PaidSessions    *int `json:"paid_sessions"`

	// Funil
	Leads       *int `json:"leads"`
	Deals       *int `json:"deals"`
	Sales       *int `json:"sales"`
	RepeatSales *int `json:"repeat_sales"`

	// Financeiro
	Revenue     *float64 `json:"revenue"`
	AdSpend     *float64 `json:"ad_spend"`
	TotalBudget *float64 `json:"total_budget"`
	Cogs        *float64 `json:"cogs"`
}

// Label retorna o rótulo do período, com fallback posicional quando o usuário
// não informou um
func (m MetricRow) Label(index int) string {
	if m.PeriodLabel != "" {
		return m.PeriodLabel
	}
	return defaultPeriodLabel(index)
}

// HasAnyUsableData indica se a linha tem ao menos um dos campos-chave
// preenchidos (mesmo que com zero)
func (m MetricRow) HasAnyUsableData() bool {
	return m.Sessions != nil || m.Leads != nil || m.Sales != nil || m.Revenue != nil
}

// EventMapping carrega as escolhas do usuário sobre o que conta como cada
// evento do funil. Repassado intacto ao snapshot.
type EventMapping struct {
	SaleEventType *string `json:"sale_event_type"`
	LeadEventType *string `json:"lead_event_type"`
	DealEventType *string `json:"deal_event_type"`
	RepeatWindow  *int    `json:"repeat_window"`
}
