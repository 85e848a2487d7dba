package domain

// ChannelType é a categoria de um canal de aquisição
type ChannelType string

const (
	ChannelTypeSocial  ChannelType = "social"
	ChannelTypeSearch  ChannelType = "search"
	ChannelTypeOrganic ChannelType = "organic"
	ChannelTypeDirect  ChannelType = "direct"
	ChannelTypeCustom  ChannelType = "custom"
)

// ChannelRow representa uma linha de métricas de um canal em um período.
// Vendas e receita não existem nessa granularidade no contrato mínimo.
type ChannelRow struct {
	PeriodIndex int         `json:"period_index"`
	PeriodLabel string      `json:"period_label"`
	ChannelName string      `json:"channel_name"`
	ChannelType ChannelType `json:"channel_type"`

	Sessions    *int     `json:"sessions"`
	Clicks      *int     `json:"clicks"`
	Impressions *int     `json:"impressions"`
	Leads       *int     `json:"leads"`
	AdSpend     *float64 `json:"ad_spend"`
}

// ChannelAggregate é o total consolidado de um canal em toda a janela,
// com os custos unitários derivados e a participação no tráfego
type ChannelAggregate struct {
	ChannelName string      `json:"channel_name"`
	ChannelType ChannelType `json:"channel_type"`

	Sessions    int     `json:"sessions"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	Leads       int     `json:"leads"`
	AdSpend     float64 `json:"ad_spend"`

	CPC *float64 `json:"cpc"`
	CPL *float64 `json:"cpl"`
	CPM *float64 `json:"cpm"`
	CR  *float64 `json:"cr"`

	// ShareOfTraffic nunca é nulo: 0 significa "dados presentes, participação
	// zero", diferente da ausência de dados de canal
	ShareOfTraffic float64 `json:"share_of_traffic"`
}
