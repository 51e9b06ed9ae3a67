package finman

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"maps"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Directory is the process-wide registry of users and their credential
// hashes. It is constructed once at startup, loading the credential map and
// every registered user's wallet from the store; the only teardown is an
// explicit FlushAll.
//
// The login→user map tolerates a main command loop reading it while a
// shutdown flush enumerates it from another goroutine, without locking by
// the caller.
type Directory struct {
	store *FileStore
	users sync.Map // login -> *User

	mu          sync.Mutex // guards credentials
	credentials map[string]string
}

// NewDirectory loads the directory state from store.
func NewDirectory(store *FileStore) *Directory {
	d := &Directory{
		store:       store,
		credentials: store.LoadCredentials(),
	}
	for login, hash := range d.credentials {
		d.users.Store(login, &User{
			Login:        login,
			PasswordHash: hash,
			Wallet:       store.Load(login),
		})
	}
	return d
}

// HashPassword returns the hex-encoded sha256 digest of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user with an empty wallet and persists both the
// credential map and the wallet. It fails with ErrInvalidCredentials when
// login or password is blank, or when login is already taken.
func (d *Directory) Register(login, password string) (*User, error) {
	if isBlank(login) || isBlank(password) {
		return nil, fmt.Errorf("%w: login and password are required", ErrInvalidCredentials)
	}

	d.mu.Lock()
	if _, taken := d.credentials[login]; taken {
		d.mu.Unlock()
		return nil, fmt.Errorf("%w: login %q is already registered", ErrInvalidCredentials, login)
	}
	hash := HashPassword(password)
	d.credentials[login] = hash
	snapshot := maps.Clone(d.credentials)
	d.mu.Unlock()

	// Credential and wallet saves are fire-and-forget; the store logs failures.
	_ = d.store.SaveCredentials(snapshot)

	u := &User{Login: login, PasswordHash: hash, Wallet: NewWallet()}
	d.users.Store(login, u)
	_ = d.store.Save(login, u.Wallet)
	return u, nil
}

// Login authenticates a user and reloads their wallet from the store, giving
// the session a fresh snapshot of the persisted state. It fails with
// ErrUserNotFound for an unknown login and ErrInvalidCredentials for a blank
// pair or a wrong password.
func (d *Directory) Login(login, password string) (*User, error) {
	if isBlank(login) || isBlank(password) {
		return nil, fmt.Errorf("%w: login and password are required", ErrInvalidCredentials)
	}

	d.mu.Lock()
	stored, ok := d.credentials[login]
	d.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, login)
	}
	if HashPassword(password) != stored {
		return nil, fmt.Errorf("%w: wrong password for %q", ErrInvalidCredentials, login)
	}

	v, _ := d.users.LoadOrStore(login, &User{Login: login, PasswordHash: stored})
	u := v.(*User)
	u.Wallet = d.store.Load(login)
	return u, nil
}

// Find resolves a login to its user. The engine calls it to validate
// transfer counterparties.
func (d *Directory) Find(login string) (*User, bool) {
	v, ok := d.users.Load(login)
	if !ok {
		return nil, false
	}
	return v.(*User), true
}

// Exists reports whether login is registered.
func (d *Directory) Exists(login string) bool {
	_, ok := d.users.Load(login)
	return ok
}

// FlushAll persists every user's wallet. Wallets are independent files, so
// the saves run concurrently; the first failure is reported after all saves
// have been attempted.
func (d *Directory) FlushAll() error {
	var g errgroup.Group
	d.users.Range(func(_, v any) bool {
		u := v.(*User)
		g.Go(func() error {
			return d.store.Save(u.Login, u.Wallet)
		})
		return true
	})
	return g.Wait()
}
