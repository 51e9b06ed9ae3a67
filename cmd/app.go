// Package cmd implements the CLI application to manage personal wallets.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finman"
	"github.com/etnz/finman/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "users")

	c.Register(&incomeCmd{}, "wallet")
	c.Register(&expenseCmd{}, "wallet")
	c.Register(&transferCmd{}, "wallet")
	c.Register(&importCmd{}, "wallet")
	c.Register(&exportCmd{}, "wallet")

	c.Register(&setBudgetCmd{}, "budgets")
	c.Register(&changeBudgetCmd{}, "budgets")
	c.Register(&deleteBudgetCmd{}, "budgets")
	c.Register(&renameCategoryCmd{}, "budgets")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&topicCmd{}, "documentation")
}

// Environment variables recognized by the CLI; a .env file in the working
// directory may set them.
const (
	EnvDataDir        = "FIN_DATA_DIR"
	EnvCurrency       = "FIN_CURRENCY"
	EnvLimitThreshold = "FIN_LIMIT_THRESHOLD"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir   = flag.String("data", "", "Path to the data directory (default $FIN_DATA_DIR or \"data\")")
	currency  = flag.String("currency", "", "Display currency for amounts (default $FIN_CURRENCY or \"EUR\")")
	threshold = flag.String("threshold", "", "Near-limit alert threshold as a fraction of the budget limit (default $FIN_LIMIT_THRESHOLD or 0.2)")
)

// DataDir resolves the data directory from the flag, the environment, or the
// built-in default.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		return v
	}
	return "data"
}

// Currency resolves the display currency. It only affects formatting; the
// ledger itself is currency-agnostic.
func Currency() string {
	if *currency != "" {
		return *currency
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		return v
	}
	return "EUR"
}

// Threshold resolves the near-limit alert threshold. An unset threshold
// leaves the policy on its default; an explicit "0" narrows the near-limit
// band to exactly-at-limit. A malformed value falls back to the default with
// a warning rather than failing the command.
func Threshold() decimal.NullDecimal {
	raw := *threshold
	if raw == "" {
		raw = os.Getenv(EnvLimitThreshold)
	}
	if raw == "" {
		return decimal.NullDecimal{}
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("warning: invalid threshold %q, using default %s", raw, finman.DefaultLimitThreshold)
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: v, Valid: true}
}

// openEngine loads the user directory from the data directory and builds the
// ledger engine over it.
func openEngine() (*finman.Directory, *finman.Service, error) {
	store, err := finman.NewFileStore(DataDir())
	if err != nil {
		return nil, nil, err
	}
	dir := finman.NewDirectory(store)
	return dir, finman.NewService(dir, store, finman.AlertPolicy{Threshold: Threshold()}), nil
}

// parseDecimal parses the raw value of the named amount flag, keeping the
// exact decimal digits the user typed.
func parseDecimal(name, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("missing -%s <amount>", name)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid -%s value %q", name, raw)
	}
	return v, nil
}

// requireUser resolves the -u flag against the directory.
func requireUser(dir *finman.Directory, login string) (*finman.User, error) {
	if login == "" {
		return nil, fmt.Errorf("missing -u <login>")
	}
	u, ok := dir.Find(login)
	if !ok {
		return nil, fmt.Errorf("unknown user %q (run 'fin register' first)", login)
	}
	return u, nil
}

// printAlerts writes the alert lines triggered by a mutation.
func printAlerts(alerts []finman.Alert) {
	for _, a := range alerts {
		fmt.Println(renderer.AlertLine(a, Currency()))
	}
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
