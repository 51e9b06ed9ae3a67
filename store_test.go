package finman

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	return store
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	w := store.Load("nobody")

	if w == nil {
		t.Fatal("Load() returned nil")
	}
	if !w.Balance.IsZero() || len(w.Operations) != 0 || len(w.Budgets) != 0 {
		t.Errorf("missing wallet did not load empty: %+v", w)
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)
	w := NewWallet()
	w.AddOperation(newOperation(Income, d(150), "salary", "", "", "alice"))
	w.Budgets["food"] = &Budget{Category: "food", Limit: d(200)}

	if err := store.Save("alice", w); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got := store.Load("alice")
	if !got.Balance.Equal(d(150)) {
		t.Errorf("balance = %s, want 150", got.Balance)
	}
	if len(got.Operations) != 1 || len(got.Budgets) != 1 {
		t.Errorf("got %d operations and %d budgets, want 1 and 1", len(got.Operations), len(got.Budgets))
	}
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	// A corrupt file falls back to an empty wallet rather than failing.
	docs := []struct {
		name, content string
	}{
		{"not json", "not json at all"},
		{"null budget", `{"balance": 0, "operations": [], "budgets": {"food": null}}`},
		{"null operation", `{"balance": 0, "operations": [null], "budgets": {}}`},
	}
	for _, tc := range docs {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			path := filepath.Join(store.Dir(), "alice"+WalletExt)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}

			w := store.Load("alice")
			if w == nil || !w.Balance.IsZero() || len(w.Operations) != 0 {
				t.Errorf("corrupt wallet did not load empty: %+v", w)
			}
		})
	}
}

func TestFileStore_ImportFrom(t *testing.T) {
	store := newTestStore(t)

	t.Run("missing source", func(t *testing.T) {
		_, err := store.ImportFrom(filepath.Join(t.TempDir(), "absent.json"))
		if !errors.Is(err, ErrInvalidImportSource) {
			t.Errorf("got error %v, want ErrInvalidImportSource", err)
		}
	})

	t.Run("undecodable source", func(t *testing.T) {
		for name, doc := range map[string]string{
			"unknown field": `{"weird": true}`,
			"null budget":   `{"balance": 0, "operations": [], "budgets": {"food": null}}`,
		} {
			path := filepath.Join(t.TempDir(), "bad.json")
			if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := store.ImportFrom(path)
			if !errors.Is(err, ErrUnsupportedWalletFormat) {
				t.Errorf("%s: got error %v, want ErrUnsupportedWalletFormat", name, err)
			}
		}
	})

	t.Run("valid source", func(t *testing.T) {
		w := NewWallet()
		w.AddOperation(newOperation(Income, d(25), "", "", "", "alice"))
		if err := store.Save("source", w); err != nil {
			t.Fatal(err)
		}

		got, err := store.ImportFrom(filepath.Join(store.Dir(), "source"+WalletExt))
		if err != nil {
			t.Fatalf("ImportFrom() failed: %v", err)
		}
		if !got.Balance.Equal(d(25)) {
			t.Errorf("balance = %s, want 25", got.Balance)
		}
	})
}

func TestFileStore_Credentials(t *testing.T) {
	store := newTestStore(t)

	if creds := store.LoadCredentials(); len(creds) != 0 {
		t.Errorf("got %v, want no credentials in a fresh store", creds)
	}

	want := map[string]string{
		"alice": HashPassword("secret"),
		"bob":   HashPassword("hunter2"),
	}
	if err := store.SaveCredentials(want); err != nil {
		t.Fatalf("SaveCredentials() failed: %v", err)
	}

	got := store.LoadCredentials()
	if len(got) != len(want) {
		t.Fatalf("got %d credentials, want %d", len(got), len(want))
	}
	for login, hash := range want {
		if got[login] != hash {
			t.Errorf("credentials[%q] = %q, want %q", login, got[login], hash)
		}
	}
}
