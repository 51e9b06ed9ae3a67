package finman

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Budget is a per-category spending ceiling. Its Category always equals the
// key under which it is stored in the wallet's budget map.
type Budget struct {
	Category string
	Limit    decimal.Decimal
}

// MarshalJSON implements the json.Marshaler interface for Budget.
func (b *Budget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", b.Category)
	w.Append("limit", b.Limit)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Budget.
func (b *Budget) UnmarshalJSON(data []byte) error {
	var temp struct {
		Category string          `json:"category"`
		Limit    decimal.Decimal `json:"limit"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	b.Category = temp.Category
	b.Limit = temp.Limit
	return nil
}

// Wallet is one user's full ledger: the running balance, the operation
// history in order of application, and the budgets keyed by category.
//
// The balance is never recomputed lazily: AddOperation updates it
// incrementally, so balance == Σ income − Σ expense holds after every
// mutation.
type Wallet struct {
	Balance    decimal.Decimal
	Operations []*Operation
	Budgets    map[string]*Budget
}

// NewWallet creates an empty wallet.
func NewWallet() *Wallet {
	return &Wallet{
		Operations: make([]*Operation, 0),
		Budgets:    make(map[string]*Budget),
	}
}

// AddOperation appends op to the history and updates the running balance.
func (w *Wallet) AddOperation(op *Operation) {
	w.Operations = append(w.Operations, op)
	switch op.Type {
	case Income:
		w.Balance = w.Balance.Add(op.Amount)
	case Expense:
		w.Balance = w.Balance.Sub(op.Amount)
	}
}

// removeOperation undoes an earlier AddOperation of op, restoring both the
// history and the balance. Used by Transfer to roll back a failed pair.
func (w *Wallet) removeOperation(op *Operation) {
	for i := len(w.Operations) - 1; i >= 0; i-- {
		if w.Operations[i].ID != op.ID {
			continue
		}
		w.Operations = append(w.Operations[:i], w.Operations[i+1:]...)
		switch op.Type {
		case Income:
			w.Balance = w.Balance.Sub(op.Amount)
		case Expense:
			w.Balance = w.Balance.Add(op.Amount)
		}
		return
	}
}

// User joins a login with its wallet. A directory holds exactly one User per
// login, and that User exclusively owns its wallet.
type User struct {
	Login        string
	PasswordHash string // sha256, hex encoded
	Wallet       *Wallet
}
