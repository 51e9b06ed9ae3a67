package finman

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// WalletExt is the file extension accepted by ImportWalletForUser.
const WalletExt = ".json"

// WalletStore is the persistence contract the engine depends on.
//
// Load never fails: a missing or undecodable stored state yields an empty
// wallet. Save reports I/O failures both on the operator channel (the log)
// and as an error, so callers can choose between fire-and-forget durability
// and strict handling. ImportFrom only decodes; it never writes the store.
type WalletStore interface {
	Load(login string) *Wallet
	Save(login string, w *Wallet) error
	ImportFrom(path string) (*Wallet, error)
}

// Service is the ledger mutation engine: the sole mutator of wallet state,
// and the single place where business invariants are enforced. It resolves
// transfer counterparties through a Directory, delegates durability to a
// WalletStore, and evaluates alerts after every state-changing operation.
type Service struct {
	dir    *Directory
	store  WalletStore
	policy AlertPolicy
}

// NewService creates an engine over the given directory and store.
func NewService(dir *Directory, store WalletStore, policy AlertPolicy) *Service {
	return &Service{dir: dir, store: store, policy: policy}
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	return nil
}

// alerts evaluates the alert policy for the operation just applied to u's
// wallet. The category spend is recomputed here, after the append, so the
// evaluator sees it exactly once.
func (s *Service) alerts(u *User, op *Operation) []Alert {
	spent := SumByCategory(u.Wallet.Operations, Expense, op.Category)[op.Category]
	return s.policy.Evaluate(u.Wallet, op, spent, s.TotalIncome(u), s.TotalExpense(u))
}

// AddIncome records an income operation on u's wallet and returns the alerts
// it triggered. It fails with ErrInvalidAmount, leaving the wallet untouched,
// when amount is not strictly positive.
func (s *Service) AddIncome(u *User, amount decimal.Decimal, category, description string) ([]Alert, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	op := newOperation(Income, amount, category, description, "", u.Login)
	u.Wallet.AddOperation(op)
	return s.alerts(u, op), nil
}

// AddExpense records an expense operation on u's wallet and returns the
// alerts it triggered. It fails with ErrInvalidAmount, leaving the wallet
// untouched, when amount is not strictly positive.
func (s *Service) AddExpense(u *User, amount decimal.Decimal, category, description string) ([]Alert, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	op := newOperation(Expense, amount, category, description, u.Login, "")
	u.Wallet.AddOperation(op)
	return s.alerts(u, op), nil
}

// Transfer moves amount from one user's wallet to another's, as a paired
// expense and income carrying the same category, description and provenance.
//
// The pair is a single transaction across both wallets: both operations are
// applied in memory, then both wallets are persisted. If either persist
// fails, the in-memory changes are rolled back on both sides and the call
// fails with an ErrPersistenceFailure-wrapped error, so no half-applied
// transfer survives.
//
// Alerts are evaluated independently for sender and receiver; the returned
// slice carries both.
func (s *Service) Transfer(fromLogin, toLogin string, amount decimal.Decimal, category, description string) ([]Alert, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	from, ok := s.dir.Find(fromLogin)
	if !ok {
		return nil, fmt.Errorf("%w: sender %q", ErrUserNotFound, fromLogin)
	}
	to, ok := s.dir.Find(toLogin)
	if !ok {
		return nil, fmt.Errorf("%w: receiver %q", ErrUserNotFound, toLogin)
	}

	expense := newOperation(Expense, amount, category, description, fromLogin, toLogin)
	income := newOperation(Income, amount, category, description, fromLogin, toLogin)
	from.Wallet.AddOperation(expense)
	to.Wallet.AddOperation(income)

	if err := s.store.Save(from.Login, from.Wallet); err != nil {
		from.Wallet.removeOperation(expense)
		to.Wallet.removeOperation(income)
		return nil, fmt.Errorf("transfer from %q to %q not applied: %w", fromLogin, toLogin, err)
	}
	if err := s.store.Save(to.Login, to.Wallet); err != nil {
		from.Wallet.removeOperation(expense)
		to.Wallet.removeOperation(income)
		// The sender's file already holds the expense; best effort to restore it.
		_ = s.store.Save(from.Login, from.Wallet)
		return nil, fmt.Errorf("transfer from %q to %q not applied: %w", fromLogin, toLogin, err)
	}

	alerts := s.alerts(from, expense)
	return append(alerts, s.alerts(to, income)...), nil
}

// SetBudget creates or replaces the budget for category on u's wallet.
// The limit is deliberately unconstrained; only the category must be present.
func (s *Service) SetBudget(u *User, category string, limit decimal.Decimal) error {
	if isBlank(category) {
		return fmt.Errorf("%w: a budget needs a category", ErrInvalidCategory)
	}
	u.Wallet.Budgets[category] = &Budget{Category: category, Limit: limit}
	return nil
}

// ChangeBudgetLimit updates the limit of an existing budget. It fails with
// ErrBudgetNotFound when no budget exists for category.
func (s *Service) ChangeBudgetLimit(u *User, category string, limit decimal.Decimal) error {
	if isBlank(category) {
		return fmt.Errorf("%w: a budget needs a category", ErrInvalidCategory)
	}
	budget, ok := u.Wallet.Budgets[category]
	if !ok {
		return fmt.Errorf("%w: no budget for category %q", ErrBudgetNotFound, category)
	}
	budget.Limit = limit
	return nil
}

// DeleteBudget removes the budget for category. It fails with
// ErrBudgetNotFound when no budget exists for category.
func (s *Service) DeleteBudget(u *User, category string) error {
	if isBlank(category) {
		return fmt.Errorf("%w: a budget needs a category", ErrInvalidCategory)
	}
	if _, ok := u.Wallet.Budgets[category]; !ok {
		return fmt.Errorf("%w: no budget for category %q", ErrBudgetNotFound, category)
	}
	delete(u.Wallet.Budgets, category)
	return nil
}

// RenameCategory retags every operation filed under oldName and relocates a
// budget keyed by oldName to newName, in one call. It fails with
// ErrCategoryNotFound, changing nothing, when neither any operation nor any
// budget uses oldName.
func (s *Service) RenameCategory(u *User, oldName, newName string) error {
	var retag []*Operation
	for _, op := range u.Wallet.Operations {
		if op.Category == oldName {
			retag = append(retag, op)
		}
	}
	budget, hasBudget := u.Wallet.Budgets[oldName]

	if len(retag) == 0 && !hasBudget {
		return fmt.Errorf("%w: %q", ErrCategoryNotFound, oldName)
	}

	for _, op := range retag {
		op.Category = newName
	}
	if hasBudget {
		delete(u.Wallet.Budgets, oldName)
		budget.Category = newName
		u.Wallet.Budgets[newName] = budget
	}
	return nil
}

// TotalIncome sums the amounts of all income operations in u's wallet.
func (s *Service) TotalIncome(u *User) decimal.Decimal {
	return totalByType(u.Wallet.Operations, Income)
}

// TotalExpense sums the amounts of all expense operations in u's wallet.
func (s *Service) TotalExpense(u *User) decimal.Decimal {
	return totalByType(u.Wallet.Operations, Expense)
}

func totalByType(ops []*Operation, typ OperationType) decimal.Decimal {
	var total decimal.Decimal
	for _, op := range ops {
		if op.Type == typ {
			total = total.Add(op.Amount)
		}
	}
	return total
}

// SumByCategory groups amounts by category over operations of the given
// type. A non-empty category restricts the result to that single category.
// Operations without a category count under WithoutCategory. The result is
// empty, never nil, when nothing matches.
func SumByCategory(ops []*Operation, typ OperationType, category string) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, op := range ops {
		if op.Type != typ {
			continue
		}
		key := op.Category
		if key == "" {
			key = WithoutCategory
		}
		if category != "" && key != category {
			continue
		}
		sums[key] = sums[key].Add(op.Amount)
	}
	return sums
}

// SaveUserWallet persists u's wallet. A persistence failure has already been
// logged by the store and is deliberately not surfaced here: durability of a
// routine save is fire-and-forget.
func (s *Service) SaveUserWallet(u *User) {
	_ = s.store.Save(u.Login, u.Wallet)
}

// ImportWalletForUser replaces u's wallet, in memory and on disk, with the
// wallet decoded from the file at source. The source must be an existing
// regular file named with the WalletExt extension (ErrInvalidImportSource
// otherwise); its content must decode as a wallet document
// (ErrUnsupportedWalletFormat otherwise). On any failure u's current wallet
// is left untouched.
func (s *Service) ImportWalletForUser(source string, u *User) error {
	if isBlank(source) {
		return fmt.Errorf("%w: empty path", ErrInvalidImportSource)
	}
	if !strings.HasSuffix(source, WalletExt) {
		return fmt.Errorf("%w: %q does not have the %s extension", ErrInvalidImportSource, source, WalletExt)
	}
	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidImportSource, source, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %q is not a regular file", ErrInvalidImportSource, source)
	}

	imported, err := s.store.ImportFrom(source)
	if err != nil {
		return err
	}
	if err := s.store.Save(u.Login, imported); err != nil {
		return err
	}
	u.Wallet = imported
	return nil
}
