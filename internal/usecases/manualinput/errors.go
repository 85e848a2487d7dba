package manualinput

import "errors"

// Erros esperados do fluxo de submissão manual
var (
	ErrCompanyNotFound    = errors.New("empresa não encontrada ou não pertence ao usuário")
	ErrNoSubmission       = errors.New("nenhuma submissão encontrada para a empresa")
	ErrInvalidPeriod      = errors.New("tipo de período inválido")
	ErrInvalidGranularity = errors.New("granularidade inválida")
)
