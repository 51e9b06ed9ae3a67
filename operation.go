package finman

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType identifies the direction of a ledger operation.
type OperationType string

const (
	// Income increases the wallet balance.
	Income OperationType = "INCOME"
	// Expense decreases the wallet balance.
	Expense OperationType = "EXPENSE"
)

// WithoutCategory is the sentinel label under which operations recorded
// without a category are filed. Defaulting to it happens once, at operation
// construction, so every aggregation sees the same label.
const WithoutCategory = "uncategorized"

// Operation is a single immutable ledger entry.
//
// Category is the only field that may change after construction
// (see [Service.RenameCategory]).
type Operation struct {
	ID          uuid.UUID
	Type        OperationType
	Amount      decimal.Decimal // always > 0, enforced before construction
	Category    string
	Description string
	Timestamp   time.Time
	From        string // sender login; empty for a plain income
	To          string // receiver login; empty for a plain expense
}

// newOperation builds an operation with a fresh identifier and timestamp.
// The amount must have been validated by the caller.
func newOperation(typ OperationType, amount decimal.Decimal, category, description, from, to string) *Operation {
	if isBlank(category) {
		category = WithoutCategory
	}
	return &Operation{
		ID:          uuid.New(),
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Description: description,
		Timestamp:   time.Now().UTC(),
		From:        from,
		To:          to,
	}
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// MarshalJSON implements the json.Marshaler interface for Operation.
// It keeps the field order of the wallet document stable.
func (o *Operation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", o.ID)
	w.Append("type", o.Type)
	w.Append("amount", o.Amount)
	w.Append("category", o.Category)
	w.Optional("description", o.Description)
	w.Append("timestamp", o.Timestamp)
	w.Optional("fromUser", o.From)
	w.Optional("toUser", o.To)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Operation.
func (o *Operation) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          uuid.UUID       `json:"id"`
		Type        OperationType   `json:"type"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Timestamp   time.Time       `json:"timestamp"`
		From        string          `json:"fromUser"`
		To          string          `json:"toUser"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	switch temp.Type {
	case Income, Expense:
	default:
		return fmt.Errorf("unknown operation type %q", temp.Type)
	}
	*o = Operation{
		ID:          temp.ID,
		Type:        temp.Type,
		Amount:      temp.Amount,
		Category:    temp.Category,
		Description: temp.Description,
		Timestamp:   temp.Timestamp,
		From:        temp.From,
		To:          temp.To,
	}
	return nil
}
