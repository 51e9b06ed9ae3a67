package finman

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// CategorySum is one row of a per-category aggregation.
type CategorySum struct {
	Category string
	Amount   decimal.Decimal
}

// BudgetLine is one row of the budget status table: the configured limit,
// what has been spent against it, and the remaining headroom (negative when
// the budget is overrun).
type BudgetLine struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// Summary is a read-only snapshot of one user's ledger, aggregated for
// reporting. Rows are sorted by category for stable output.
type Summary struct {
	Login        string
	Balance      decimal.Decimal
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Incomes      []CategorySum
	Expenses     []CategorySum
	Budgets      []BudgetLine
}

// Summary aggregates u's wallet into a report snapshot.
func (s *Service) Summary(u *User) *Summary {
	w := u.Wallet
	expenses := SumByCategory(w.Operations, Expense, "")

	r := &Summary{
		Login:        u.Login,
		Balance:      w.Balance,
		TotalIncome:  s.TotalIncome(u),
		TotalExpense: s.TotalExpense(u),
		Incomes:      sortedSums(SumByCategory(w.Operations, Income, "")),
		Expenses:     sortedSums(expenses),
	}

	for _, b := range w.Budgets {
		spent := expenses[b.Category]
		r.Budgets = append(r.Budgets, BudgetLine{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     spent,
			Remaining: b.Limit.Sub(spent),
		})
	}
	slices.SortFunc(r.Budgets, func(a, b BudgetLine) int {
		return strings.Compare(a.Category, b.Category)
	})
	return r
}

func sortedSums(sums map[string]decimal.Decimal) []CategorySum {
	rows := make([]CategorySum, 0, len(sums))
	for category, amount := range sums {
		rows = append(rows, CategorySum{Category: category, Amount: amount})
	}
	slices.SortFunc(rows, func(a, b CategorySum) int {
		return strings.Compare(a.Category, b.Category)
	})
	return rows
}
