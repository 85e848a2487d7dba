package domain

import "fmt"

// defaultPeriodLabel é o rótulo usado quando o usuário não informou um
func defaultPeriodLabel(index int) string {
	return fmt.Sprintf("Period %d", index+1)
}

// PeriodType representa a janela de relatório escolhida pelo usuário
type PeriodType string

const (
	Period7Days  PeriodType = "7days"
	Period30Days PeriodType = "30days"
	Period90Days PeriodType = "90days"
)

// periodDaysByType mapeia o tipo de período para a quantidade de dias usada
// como divisor nas métricas diárias
var periodDaysByType = map[PeriodType]int{
	Period7Days:  7,
	Period30Days: 30,
	Period90Days: 90,
}

// Days retorna a quantidade de dias do período (0 para tipos desconhecidos)
func (p PeriodType) Days() int {
	return periodDaysByType[p]
}

// Valid indica se o tipo de período é um dos valores suportados
func (p PeriodType) Valid() bool {
	_, ok := periodDaysByType[p]
	return ok
}

// Granularity representa a granularidade das linhas informadas manualmente
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Valid indica se a granularidade é um dos valores suportados
func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}
