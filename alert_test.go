package finman

import (
	"testing"

	"github.com/shopspring/decimal"
)

// evaluate runs the policy against a wallet holding a single budget.
func evaluate(p AlertPolicy, limit, spent, income, expense float64) []Alert {
	w := NewWallet()
	w.Budgets["food"] = &Budget{Category: "food", Limit: d(limit)}
	op := newOperation(Expense, d(1), "food", "", "", "")
	return p.Evaluate(w, op, d(spent), d(income), d(expense))
}

func TestAlertPolicy_Evaluate(t *testing.T) {
	tests := []struct {
		name         string
		limit, spent float64
		wantKind     AlertKind
		wantAmount   float64
	}{
		{"overrun", 200, 250, AlertOverrun, 50},
		{"inside band", 200, 180, AlertNearLimit, 20},
		{"exactly at band edge", 200, 160, AlertNearLimit, 40},
		{"exactly at limit", 200, 200, AlertNearLimit, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			alerts := evaluate(AlertPolicy{}, tc.limit, tc.spent, 1000, tc.spent)
			if len(alerts) != 1 {
				t.Fatalf("got %d alerts, want 1: %v", len(alerts), alerts)
			}
			a := alerts[0]
			if a.Kind != tc.wantKind || a.Category != "food" || !a.Amount.Equal(d(tc.wantAmount)) {
				t.Errorf("got %+v, want %s on food with amount %v", a, tc.wantKind, tc.wantAmount)
			}
		})
	}
}

func TestAlertPolicy_NoAlertAboveBand(t *testing.T) {
	if alerts := evaluate(AlertPolicy{}, 200, 100, 1000, 100); len(alerts) != 0 {
		t.Errorf("got %v, want no alerts", alerts)
	}
}

func TestAlertPolicy_NoBudgetForCategory(t *testing.T) {
	w := NewWallet()
	op := newOperation(Expense, d(500), "travel", "", "", "")
	if alerts := (AlertPolicy{}).Evaluate(w, op, d(500), d(1000), d(500)); len(alerts) != 0 {
		t.Errorf("got %v, want no alerts without a matching budget", alerts)
	}
}

func TestAlertPolicy_IncomeNeverTriggersBudgetAlerts(t *testing.T) {
	w := NewWallet()
	w.Budgets["food"] = &Budget{Category: "food", Limit: d(10)}
	op := newOperation(Income, d(100), "food", "", "", "")
	if alerts := (AlertPolicy{}).Evaluate(w, op, d(999), d(1000), d(0)); len(alerts) != 0 {
		t.Errorf("got %v, want no alerts for an income", alerts)
	}
}

func TestAlertPolicy_NetNegative(t *testing.T) {
	alerts := evaluate(AlertPolicy{}, 1000, 300, 100, 300)
	// The spend stays well under the budget, only the deficit fires.
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1: %v", len(alerts), alerts)
	}
	a := alerts[0]
	if a.Kind != AlertNetNegative || a.Category != "" || !a.Amount.Equal(d(200)) {
		t.Errorf("got %+v, want net-negative by 200", a)
	}
}

func TestAlertPolicy_CustomThreshold(t *testing.T) {
	// With a 0.5 band, 100 remaining of a 200 limit is already near.
	p := AlertPolicy{Threshold: decimal.NewNullDecimal(d(0.5))}
	alerts := evaluate(p, 200, 100, 1000, 100)
	if len(alerts) != 1 || alerts[0].Kind != AlertNearLimit {
		t.Fatalf("got %v, want a near-limit alert", alerts)
	}

	// The default band would not have flagged it.
	if alerts := evaluate(AlertPolicy{}, 200, 100, 1000, 100); len(alerts) != 0 {
		t.Errorf("got %v, want no alerts with the default band", alerts)
	}
}

func TestAlertPolicy_ZeroThreshold(t *testing.T) {
	// An explicit zero threshold is not the same as unset: it narrows the
	// near-limit band to exactly-at-limit.
	p := AlertPolicy{Threshold: decimal.NewNullDecimal(d(0))}

	if alerts := evaluate(p, 200, 180, 1000, 180); len(alerts) != 0 {
		t.Errorf("got %v, want no alerts inside the default band", alerts)
	}
	alerts := evaluate(p, 200, 200, 1000, 200)
	if len(alerts) != 1 || alerts[0].Kind != AlertNearLimit || !alerts[0].Amount.IsZero() {
		t.Errorf("got %v, want a near-limit alert with 0 remaining", alerts)
	}
}
