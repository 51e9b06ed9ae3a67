// Package renderer renders ledger reports and alerts into markdown and
// human-readable lines for the CLI to display.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/finman"
)

const summaryTemplate = `# Wallet of {{.Login}}

Balance: **{{money .Balance}}** (income {{money .TotalIncome}}, expenses {{money .TotalExpense}})
{{if .Expenses}}
## Expenses by category

| Category | Spent |
|:---|---:|
{{range .Expenses}}| {{.Category}} | {{money .Amount}} |
{{end}}{{end}}{{if .Incomes}}
## Income by category

| Category | Received |
|:---|---:|
{{range .Incomes}}| {{.Category}} | {{money .Amount}} |
{{end}}{{end}}{{if .Budgets}}
## Budgets

| Category | Limit | Spent | Remaining |
|:---|---:|---:|---:|
{{range .Budgets}}| {{.Category}} | {{money .Limit}} | {{money .Spent}} | {{money .Remaining}} |
{{end}}{{end}}`

// RenderSummary renders a wallet summary to a markdown string. Amounts are
// formatted in the given display currency.
func RenderSummary(s *finman.Summary, currency string) string {
	tmpl := template.Must(template.New("summary").
		Funcs(moneyFuncs(currency)).
		Parse(summaryTemplate))

	var b strings.Builder
	if err := tmpl.Execute(&b, s); err != nil {
		// Templates are compiled in; an execution error is a programming error.
		return fmt.Sprintf("error rendering summary: %v", err)
	}
	return b.String()
}

// AlertLine formats one alert as a human-readable line carrying its kind,
// category where applicable, and magnitude.
func AlertLine(a finman.Alert, currency string) string {
	switch a.Kind {
	case finman.AlertOverrun:
		return fmt.Sprintf("Budget for %q exceeded by %s", a.Category, Amount(a.Amount, currency))
	case finman.AlertNearLimit:
		return fmt.Sprintf("Budget for %q is close to its limit: %s remaining", a.Category, Amount(a.Amount, currency))
	case finman.AlertNetNegative:
		return fmt.Sprintf("Expenses exceed income: you are %s in the red", Amount(a.Amount, currency))
	default:
		return fmt.Sprintf("%s alert: %s", a.Kind, Amount(a.Amount, currency))
	}
}
