package domain

// Severity classifica um problema de validação
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue aponta um problema em uma célula específica da planilha de
// entrada. Field segue o formato "row-<índice>-<coluna>" para que o cliente
// consiga destacar a célula exata.
type ValidationIssue struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// HasBlockingIssues indica se a lista contém ao menos um erro. Avisos nunca
// bloqueiam a aceitação da submissão.
func HasBlockingIssues(issues []ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
