package snapshotting

import (
	"fmt"

	"github.com/gravora/metrics-api/internal/domain"
)

// Validate verifica a consistência das linhas informadas e devolve todos os
// problemas encontrados de uma vez, para que o usuário corrija cada célula em
// uma única passada. Regras só são avaliadas quando os dois operandos foram
// informados: valores nil nunca disparam regra alguma.
//
// Qualquer problema com severidade "error" torna a submissão inaceitável como
// um todo; avisos nunca bloqueiam.
func Validate(rows []domain.MetricRow) []domain.ValidationIssue {
	issues := make([]domain.ValidationIssue, 0)

	for index, row := range rows {
		label := row.Label(index)

		issues = append(issues, validateNonNegative(row, index, label)...)

		if row.Sessions != nil && row.Leads != nil && *row.Leads > *row.Sessions {
			issues = append(issues, issue(index, "leads", label, "Leads cannot exceed sessions", domain.SeverityError))
		}

		if row.Leads != nil && row.Deals != nil && *row.Deals > *row.Leads {
			issues = append(issues, issue(index, "deals", label, "Deals cannot exceed leads", domain.SeverityError))
		}

		if row.Deals != nil && row.Sales != nil && *row.Sales > *row.Deals {
			issues = append(issues, issue(index, "sales", label, "Sales cannot exceed deals", domain.SeverityError))
		}

		if row.Sales != nil && row.RepeatSales != nil && *row.RepeatSales > *row.Sales {
			issues = append(issues, issue(index, "repeatSales", label, "Repeat sales cannot exceed total sales", domain.SeverityError))
		}

		if row.Sales != nil && *row.Sales > 0 && (row.Revenue == nil || *row.Revenue == 0) {
			issues = append(issues, issue(index, "revenue", label, "Revenue is 0 but sales > 0", domain.SeverityError))
		}

		if row.AdSpend != nil && *row.AdSpend > 0 && (row.Clicks == nil || *row.Clicks == 0) {
			issues = append(issues, issue(index, "clicks", label, "Ad spend present but no click data", domain.SeverityWarning))
		}
	}

	return issues
}

// validateNonNegative rejeita valores negativos em qualquer campo numérico.
// A fonte original aceitava negativos e produzia razões sem sentido; aqui a
// rejeição é um endurecimento intencional.
func validateNonNegative(row domain.MetricRow, index int, label string) []domain.ValidationIssue {
	issues := make([]domain.ValidationIssue, 0)

	intFields := []struct {
		column string
		value  *int
	}{
		{"sessions", row.Sessions},
		{"users", row.Users},
		{"clicks", row.Clicks},
		{"impressions", row.Impressions},
		{"organicSessions", row.OrganicSessions},
		{"paidSessions", row.PaidSessions},
		{"leads", row.Leads},
		{"deals", row.Deals},
		{"sales", row.Sales},
		{"repeatSales", row.RepeatSales},
	}

	for _, field := range intFields {
		if field.value != nil && *field.value < 0 {
			issues = append(issues, issue(index, field.column, label, "Value cannot be negative", domain.SeverityError))
		}
	}

	floatFields := []struct {
		column string
		value  *float64
	}{
		{"revenue", row.Revenue},
		{"adSpend", row.AdSpend},
		{"totalBudget", row.TotalBudget},
		{"cogs", row.Cogs},
	}

	for _, field := range floatFields {
		if field.value != nil && *field.value < 0 {
			issues = append(issues, issue(index, field.column, label, "Value cannot be negative", domain.SeverityError))
		}
	}

	return issues
}

func issue(index int, column, label, message string, severity domain.Severity) domain.ValidationIssue {
	return domain.ValidationIssue{
		Field:    fmt.Sprintf("row-%d-%s", index, column),
		Message:  fmt.Sprintf("%s: %s", label, message),
		Severity: severity,
	}
}
