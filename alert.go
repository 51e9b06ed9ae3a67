package finman

import "github.com/shopspring/decimal"

// AlertKind identifies the condition an alert reports.
type AlertKind string

const (
	// AlertOverrun reports spending past a category's budget limit.
	AlertOverrun AlertKind = "overrun"
	// AlertNearLimit reports spending within the threshold band of a limit.
	AlertNearLimit AlertKind = "near-limit"
	// AlertNetNegative reports total expenses exceeding total income.
	AlertNetNegative AlertKind = "net-negative"
)

// Alert is a non-blocking notification emitted after a mutation. Amount
// carries the overrun magnitude, the remaining headroom, or the deficit,
// depending on the kind. Category is empty for net-negative alerts.
type Alert struct {
	Kind     AlertKind
	Category string
	Amount   decimal.Decimal
}

// DefaultLimitThreshold is the near-limit band, as a fraction of the budget
// limit, used by the zero AlertPolicy.
var DefaultLimitThreshold = decimal.NewFromFloat(0.2)

// AlertPolicy evaluates budget and net-worth alerts after a mutation. It is
// stateless; the zero value uses DefaultLimitThreshold. An explicitly set
// threshold of zero narrows the near-limit band to exactly-at-limit.
type AlertPolicy struct {
	Threshold decimal.NullDecimal
}

func (p AlertPolicy) threshold() decimal.Decimal {
	if !p.Threshold.Valid {
		return DefaultLimitThreshold
	}
	return p.Threshold.Decimal
}

// Evaluate computes the alerts triggered by justApplied, already committed to
// w. spentInCategory is the expense total for the operation's category
// including justApplied; it is the caller's job to provide it, so that the
// just-applied operation is counted exactly once.
func (p AlertPolicy) Evaluate(w *Wallet, justApplied *Operation, spentInCategory, totalIncome, totalExpense decimal.Decimal) []Alert {
	var alerts []Alert

	if justApplied.Type == Expense {
		if budget, ok := w.Budgets[justApplied.Category]; ok {
			remaining := budget.Limit.Sub(spentInCategory)
			switch {
			case remaining.IsNegative():
				alerts = append(alerts, Alert{Kind: AlertOverrun, Category: justApplied.Category, Amount: remaining.Abs()})
			case remaining.LessThanOrEqual(budget.Limit.Mul(p.threshold())):
				alerts = append(alerts, Alert{Kind: AlertNearLimit, Category: justApplied.Category, Amount: remaining})
			}
		}
	}

	if totalExpense.GreaterThan(totalIncome) {
		alerts = append(alerts, Alert{Kind: AlertNetNegative, Amount: totalExpense.Sub(totalIncome)})
	}
	return alerts
}
