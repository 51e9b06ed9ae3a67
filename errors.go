package finman

import "errors"

// Error kinds surfaced by the engine, the directory and the store.
// They are always wrapped with context; match them with errors.Is.
var (
	// ErrInvalidAmount reports an operation amount that is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInvalidCategory reports a blank category where one is required.
	ErrInvalidCategory = errors.New("category is missing")
	// ErrBudgetNotFound reports a budget operation on a category without a budget.
	ErrBudgetNotFound = errors.New("budget not found")
	// ErrCategoryNotFound reports a rename of a category no operation or budget uses.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrUserNotFound reports an unknown login.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials reports a blank or rejected login/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidImportSource reports an import path that is blank, has the wrong
	// extension, does not exist, or is not a regular file.
	ErrInvalidImportSource = errors.New("invalid import source")
	// ErrUnsupportedWalletFormat reports an import payload that cannot be decoded
	// as a wallet.
	ErrUnsupportedWalletFormat = errors.New("unsupported wallet format")
	// ErrPersistenceFailure reports an I/O failure while saving a wallet.
	ErrPersistenceFailure = errors.New("persistence failure")
)
