package finman

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// credentialsFile is the name of the credential map document in the data
// directory.
const credentialsFile = "credentials.json"

// FileStore persists one `<login>.json` wallet document per user under a
// data directory, plus the shared credentials document. It is the only
// component that touches the filesystem.
type FileStore struct {
	dir string
}

// NewFileStore opens (and creates if needed) the data directory at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) walletPath(login string) string {
	return filepath.Join(s.dir, login+WalletExt)
}

// Load returns the stored wallet for login. When no stored state exists, or
// the stored state cannot be decoded, it returns an empty wallet instead of
// failing: a corrupt file must not lock a user out of their account.
// Decode failures are logged.
func (s *FileStore) Load(login string) *Wallet {
	f, err := os.Open(s.walletPath(login))
	if errors.Is(err, fs.ErrNotExist) {
		return NewWallet()
	}
	if err != nil {
		log.Printf("warning: could not open wallet for %q: %v", login, err)
		return NewWallet()
	}
	defer f.Close()

	w, err := DecodeWallet(f)
	if err != nil {
		log.Printf("warning: could not load wallet for %q: %v", login, err)
		return NewWallet()
	}
	return w
}

// Save overwrites login's wallet document with w. A failure is logged and
// returned wrapped in ErrPersistenceFailure: most callers treat saves as
// fire-and-forget and ignore the error, Transfer does not.
func (s *FileStore) Save(login string, w *Wallet) error {
	f, err := os.Create(s.walletPath(login))
	if err != nil {
		log.Printf("could not save wallet for %q: %v", login, err)
		return fmt.Errorf("%w: saving wallet for %q: %v", ErrPersistenceFailure, login, err)
	}
	defer f.Close()

	if err := EncodeWallet(f, w); err != nil {
		log.Printf("could not save wallet for %q: %v", login, err)
		return fmt.Errorf("%w: saving wallet for %q: %v", ErrPersistenceFailure, login, err)
	}
	return nil
}

// ImportFrom decodes the file at path into a wallet. It never touches the
// store itself; writing the imported state under a login is the caller's
// responsibility.
func (s *FileStore) ImportFrom(path string) (*Wallet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidImportSource, path, err)
	}
	defer f.Close()

	w, err := DecodeWallet(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedWalletFormat, err)
	}
	return w, nil
}

// LoadCredentials returns the stored login→hash map, or an empty map when
// none exists or it cannot be decoded. Like wallet loads, credential loads
// never fail the caller.
func (s *FileStore) LoadCredentials() map[string]string {
	path := filepath.Join(s.dir, credentialsFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string)
	}
	if err != nil {
		log.Printf("warning: could not read credentials: %v", err)
		return make(map[string]string)
	}

	creds := make(map[string]string)
	if err := json.Unmarshal(data, &creds); err != nil {
		log.Printf("warning: could not decode credentials: %v", err)
		return make(map[string]string)
	}
	return creds
}

// SaveCredentials overwrites the credential map document. As with wallet
// saves, the failure is logged and returned.
func (s *FileStore) SaveCredentials(creds map[string]string) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		log.Printf("could not save credentials: %v", err)
		return fmt.Errorf("%w: saving credentials: %v", ErrPersistenceFailure, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, credentialsFile), data, 0644); err != nil {
		log.Printf("could not save credentials: %v", err)
		return fmt.Errorf("%w: saving credentials: %v", ErrPersistenceFailure, err)
	}
	return nil
}
