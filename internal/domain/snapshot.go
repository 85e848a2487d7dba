package domain

import "time"

const (
	// DataModeManualSandbox marca snapshots construídos a partir de dados
	// informados manualmente
	DataModeManualSandbox = "MANUAL_SANDBOX"

	// GateStatusSandbox é o gate fixo do caminho manual. Dados de fontes
	// automatizadas usam um esquema de tiers próprio (A/B/C), fora deste
	// serviço.
	GateStatusSandbox = "SANDBOX"
)

// AggregateTotals é a soma campo a campo de todas as MetricRows de uma
// submissão, com nil tratado como 0
type AggregateTotals struct {
	Sessions        int     `json:"sessions"`
	Users           int     `json:"users"`
	Clicks          int     `json:"clicks"`
	Impressions     int     `json:"impressions"`
	OrganicSessions int     `json:"organic_sessions"`
	PaidSessions    int     `json:"paid_sessions"`
	Leads           int     `json:"leads"`
	Deals           int     `json:"deals"`
	Sales           int     `json:"sales"`
	RepeatSales     int     `json:"repeat_sales"`
	Revenue         float64 `json:"revenue"`
	AdSpend         float64 `json:"ad_spend"`
	TotalBudget     float64 `json:"total_budget"`
	Cogs            float64 `json:"cogs"`

	// PeriodDays é o divisor das métricas diárias, derivado do PeriodType
	PeriodDays int `json:"period_days"`
}

// DerivedMetrics reúne as razões calculadas a partir dos totais agregados.
// Toda razão com denominador zero ou ausente é nil — nunca 0, NaN ou Inf.
// Percentuais são expressos como razão × 100.
type DerivedMetrics struct {
	// Conversões do funil
	CRSessionLead *float64 `json:"cr_session_lead"`
	CRLeadDeal    *float64 `json:"cr_lead_deal"`
	CRDealSale    *float64 `json:"cr_deal_sale"`
	CRSessionSale *float64 `json:"cr_session_sale"`
	CRClickLead   *float64 `json:"cr_click_lead"`

	// Custo por ação
	CPC *float64 `json:"cpc"`
	CPU *float64 `json:"cpu"`
	CPL *float64 `json:"cpl"`
	CPD *float64 `json:"cpd"`
	CPS *float64 `json:"cps"`
	CPM *float64 `json:"cpm"`

	// Financeiro
	ROI         *float64 `json:"roi"`
	ROMI        *float64 `json:"romi"`
	ROAS        *float64 `json:"roas"`
	GrossProfit float64  `json:"gross_profit"`
	NetProfit   float64  `json:"net_profit"`
	RepeatRate  *float64 `json:"repeat_rate"`

	// Cliente
	ATP         *float64 `json:"atp"`
	SPH         *float64 `json:"sph"`
	CAC         *float64 `json:"cac"`
	LTV         *float64 `json:"ltv"`
	LTVCACRatio *float64 `json:"ltv_cac_ratio"`

	// Margens
	EBITDA       float64  `json:"ebitda"`
	EBITDAMargin *float64 `json:"ebitda_margin"`
	GrossMargin  *float64 `json:"gross_margin"`

	// Anúncios e tráfego
	CTR                 *float64 `json:"ctr"`
	OrganicTrafficShare *float64 `json:"organic_traffic_share"`
	PaidTrafficShare    *float64 `json:"paid_traffic_share"`

	// Ritmo diário
	DailySales   *float64 `json:"daily_sales"`
	DailyRevenue *float64 `json:"daily_revenue"`
}

// Snapshot é o registro imutável montado ao final de uma submissão aceita.
// Uma nova submissão substitui integralmente o snapshot anterior da mesma
// empresa. Todos os campos derivados nulos aparecem como null no JSON,
// nunca omitidos.
type Snapshot struct {
	DataMode   string `json:"data_mode"`
	GateStatus string `json:"gate_status"`

	PeriodType  PeriodType  `json:"period_type"`
	Granularity Granularity `json:"granularity"`
	Currency    string      `json:"currency"`
	Timezone    string      `json:"timezone"`
	PeriodDays  int         `json:"period_days"`

	Totals  AggregateTotals `json:"totals"`
	Metrics DerivedMetrics  `json:"metrics"`

	// TotalOrders espelha o total de vendas; TotalPageviews e TotalRefunds
	// não existem no caminho manual e ficam fixos em zero
	TotalOrders    int     `json:"total_orders"`
	TotalPageviews int     `json:"total_pageviews"`
	TotalRefunds   float64 `json:"total_refunds"`

	// TotalBudget cai para o gasto em anúncios quando o orçamento não foi
	// informado
	TotalBudget float64  `json:"total_budget"`
	AvgAov      *float64 `json:"avg_aov"`

	DataQualityScore int `json:"data_quality_score"`

	// Mapping repassa as escolhas de mapeamento de eventos do usuário.
	// O motor não carimba relógio algum: created_at/updated_at são
	// responsabilidade da camada de persistência.
	Mapping EventMapping `json:"mapping"`
}

// SnapshotResult é a saída do motor de cálculo: a lista de problemas da
// validação e, quando nenhum deles é bloqueante, o snapshot montado
type SnapshotResult struct {
	Issues   []ValidationIssue `json:"issues"`
	Snapshot *Snapshot         `json:"snapshot"`
}

// DailyMetric é a projeção por data usada pelos gráficos do dashboard,
// reconstruída a cada submissão aceita
type DailyMetric struct {
	Date     time.Time `json:"date"`
	Sessions int       `json:"sessions"`
	Leads    int       `json:"leads"`
	Sales    int       `json:"sales"`
	Revenue  float64   `json:"revenue"`
	AdSpend  float64   `json:"ad_spend"`
}
