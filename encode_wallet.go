package finman

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeWallet writes w as a single indented JSON document: `balance`,
// `operations` in order of application, and `budgets` keyed by category.
// The encoding is canonical enough that load→save round-trips preserve the
// document's semantics.
func EncodeWallet(out io.Writer, w *Wallet) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("could not encode wallet: %w", err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Wallet.
// Budgets marshal sorted by category key, courtesy of encoding/json.
func (w *Wallet) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.Append("balance", w.Balance)
	jw.Append("operations", w.Operations)
	jw.Append("budgets", w.Budgets)
	return jw.MarshalJSON()
}

// DecodeWallet reads a wallet document from r. Unknown top-level fields are
// rejected, so a foreign JSON document does not silently decode into an
// empty wallet.
func DecodeWallet(r io.Reader) (*Wallet, error) {
	var temp struct {
		Balance    decimal.Decimal    `json:"balance"`
		Operations []*Operation       `json:"operations"`
		Budgets    map[string]*Budget `json:"budgets"`
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&temp); err != nil {
		return nil, fmt.Errorf("could not decode wallet: %w", err)
	}

	w := &Wallet{Balance: temp.Balance, Operations: temp.Operations, Budgets: temp.Budgets}
	if w.Operations == nil {
		w.Operations = make([]*Operation, 0)
	}
	if w.Budgets == nil {
		w.Budgets = make(map[string]*Budget)
	}
	// A JSON null inside the collections decodes to a nil pointer without
	// going through UnmarshalJSON; reject it here rather than blow up later.
	for i, op := range w.Operations {
		if op == nil {
			return nil, fmt.Errorf("could not decode wallet: operation %d is null", i)
		}
	}
	for key, b := range w.Budgets {
		if b == nil {
			return nil, fmt.Errorf("could not decode wallet: budget %q is null", key)
		}
		// A budget's category must equal its map key, even in hand-edited files.
		b.Category = key
	}
	return w, nil
}
