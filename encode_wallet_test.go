package finman

import (
	"bytes"
	"strings"
	"testing"
)

func TestWalletRoundTrip(t *testing.T) {
	w := NewWallet()
	w.AddOperation(newOperation(Income, d(1000), "salary", "monthly pay", "", "alice"))
	w.AddOperation(newOperation(Expense, d(42.25), "food", "", "alice", ""))
	w.AddOperation(newOperation(Expense, d(10), "food", "coffee", "alice", "bob"))
	w.Budgets["food"] = &Budget{Category: "food", Limit: d(200)}
	w.Budgets["travel"] = &Budget{Category: "travel", Limit: d(500.50)}

	var buf bytes.Buffer
	if err := EncodeWallet(&buf, w); err != nil {
		t.Fatalf("EncodeWallet() failed: %v", err)
	}

	got, err := DecodeWallet(&buf)
	if err != nil {
		t.Fatalf("DecodeWallet() failed: %v", err)
	}

	if !got.Balance.Equal(w.Balance) {
		t.Errorf("balance = %s, want %s", got.Balance, w.Balance)
	}
	if len(got.Operations) != len(w.Operations) {
		t.Fatalf("got %d operations, want %d", len(got.Operations), len(w.Operations))
	}
	for i, op := range got.Operations {
		want := w.Operations[i]
		if op.ID != want.ID {
			t.Errorf("operation %d: id = %s, want %s", i, op.ID, want.ID)
		}
		if op.Type != want.Type || !op.Amount.Equal(want.Amount) {
			t.Errorf("operation %d: %s %s, want %s %s", i, op.Type, op.Amount, want.Type, want.Amount)
		}
		if op.Category != want.Category || op.Description != want.Description {
			t.Errorf("operation %d: category/description = %q/%q, want %q/%q", i, op.Category, op.Description, want.Category, want.Description)
		}
		if !op.Timestamp.Equal(want.Timestamp) {
			t.Errorf("operation %d: timestamp = %s, want %s", i, op.Timestamp, want.Timestamp)
		}
		if op.From != want.From || op.To != want.To {
			t.Errorf("operation %d: provenance = %q->%q, want %q->%q", i, op.From, op.To, want.From, want.To)
		}
	}
	if len(got.Budgets) != 2 {
		t.Fatalf("got %d budgets, want 2", len(got.Budgets))
	}
	for key, want := range w.Budgets {
		b, ok := got.Budgets[key]
		if !ok {
			t.Errorf("budget %q missing after round trip", key)
			continue
		}
		if b.Category != key || !b.Limit.Equal(want.Limit) {
			t.Errorf("budget %q = {%q %s}, want {%q %s}", key, b.Category, b.Limit, key, want.Limit)
		}
	}
}

func TestDecodeWallet_Rejections(t *testing.T) {
	tests := []struct {
		name, doc string
	}{
		{"not json", "hello world"},
		{"unknown top-level field", `{"balance": 0, "holdings": []}`},
		{"bad operation type", `{"balance": 0, "operations": [{"id": "3b24b47c-6636-4b29-929b-9b1d3c2b84fa", "type": "LOAN", "amount": 1, "category": "x", "timestamp": "2026-01-02T03:04:05Z"}], "budgets": {}}`},
		{"null operation", `{"balance": 0, "operations": [null], "budgets": {}}`},
		{"null budget", `{"balance": 0, "operations": [], "budgets": {"food": null}}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeWallet(strings.NewReader(tc.doc)); err == nil {
				t.Errorf("DecodeWallet() accepted %q", tc.doc)
			}
		})
	}
}

func TestDecodeWallet_EmptyDocument(t *testing.T) {
	got, err := DecodeWallet(strings.NewReader(`{"balance": 0}`))
	if err != nil {
		t.Fatalf("DecodeWallet() failed: %v", err)
	}
	if got.Operations == nil || got.Budgets == nil {
		t.Errorf("decoded wallet has nil collections")
	}
}

func TestDecodeWallet_BudgetCategoryFollowsKey(t *testing.T) {
	// Hand-edited files may desynchronize the key and the embedded category.
	doc := `{"balance": 0, "operations": [], "budgets": {"food": {"category": "groceries", "limit": 100}}}`
	got, err := DecodeWallet(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeWallet() failed: %v", err)
	}
	if got.Budgets["food"].Category != "food" {
		t.Errorf("budget category = %q, want the map key %q", got.Budgets["food"].Category, "food")
	}
}

func TestEncodeWallet_FieldOrder(t *testing.T) {
	w := NewWallet()
	w.AddOperation(newOperation(Expense, d(1), "food", "snack", "alice", ""))

	var buf bytes.Buffer
	if err := EncodeWallet(&buf, w); err != nil {
		t.Fatalf("EncodeWallet() failed: %v", err)
	}
	doc := buf.String()

	// Amounts are plain JSON numbers, never strings.
	if strings.Contains(doc, `"amount": "`) || strings.Contains(doc, `"balance": "`) {
		t.Errorf("amounts encoded as strings:\n%s", doc)
	}
	// Stable top-level layout keeps diffs on the data files readable.
	for _, pair := range [][2]string{{`"balance"`, `"operations"`}, {`"operations"`, `"budgets"`}, {`"id"`, `"type"`}, {`"type"`, `"amount"`}} {
		if strings.Index(doc, pair[0]) > strings.Index(doc, pair[1]) {
			t.Errorf("%s encoded after %s:\n%s", pair[0], pair[1], doc)
		}
	}
}
