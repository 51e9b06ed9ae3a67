package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finman/renderer"
	"github.com/google/subcommands"
)

// --- Add Income Command ---

type incomeCmd struct {
	login    string
	amount   string
	category string
	memo     string
}

func (*incomeCmd) Name() string     { return "add-income" }
func (*incomeCmd) Synopsis() string { return "record an income operation on a user's wallet" }
func (*incomeCmd) Usage() string {
	return `add-income -u <login> -a <amount> [-c <category>] [-m <description>]

  Records an income operation and updates the wallet balance.
`
}
func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
	f.StringVar(&c.amount, "a", "", "Amount of the income")
	f.StringVar(&c.category, "c", "", "Category of the income")
	f.StringVar(&c.memo, "m", "", "An optional description")
}
func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseDecimal("a", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	dir, svc, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	u, err := requireUser(dir, c.login)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	alerts, err := svc.AddIncome(u, amount, c.category, c.memo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	svc.SaveUserWallet(u)

	fmt.Printf("Recorded income of %s for %s\n", renderer.Amount(amount, Currency()), u.Login)
	printAlerts(alerts)
	return subcommands.ExitSuccess
}

// --- Add Expense Command ---

type expenseCmd struct {
	login    string
	amount   string
	category string
	memo     string
}

func (*expenseCmd) Name() string     { return "add-expense" }
func (*expenseCmd) Synopsis() string { return "record an expense operation on a user's wallet" }
func (*expenseCmd) Usage() string {
	return `add-expense -u <login> -a <amount> [-c <category>] [-m <description>]

  Records an expense operation and updates the wallet balance. Expenses
  without a category are filed under "uncategorized".
`
}
func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
	f.StringVar(&c.amount, "a", "", "Amount of the expense")
	f.StringVar(&c.category, "c", "", "Category of the expense")
	f.StringVar(&c.memo, "m", "", "An optional description")
}
func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseDecimal("a", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	dir, svc, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	u, err := requireUser(dir, c.login)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	alerts, err := svc.AddExpense(u, amount, c.category, c.memo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	svc.SaveUserWallet(u)

	fmt.Printf("Recorded expense of %s for %s\n", renderer.Amount(amount, Currency()), u.Login)
	printAlerts(alerts)
	return subcommands.ExitSuccess
}

// --- Transfer Command ---

type transferCmd struct {
	from     string
	to       string
	amount   string
	category string
	memo     string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two users' wallets" }
func (*transferCmd) Usage() string {
	return `transfer -from <login> -to <login> -a <amount> [-c <category>] [-m <description>]

  Records a paired expense on the sender's wallet and income on the
  receiver's. Both wallets are persisted together; a failure rolls the
  transfer back on both sides.
`
}
func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Login of the sender")
	f.StringVar(&c.to, "to", "", "Login of the receiver")
	f.StringVar(&c.amount, "a", "", "Amount to transfer")
	f.StringVar(&c.category, "c", "", "Category of the transfer")
	f.StringVar(&c.memo, "m", "", "An optional description")
}
func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := parseDecimal("a", c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	_, svc, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	alerts, err := svc.Transfer(c.from, c.to, amount, c.category, c.memo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Transferred %s from %s to %s\n", renderer.Amount(amount, Currency()), c.from, c.to)
	printAlerts(alerts)
	return subcommands.ExitSuccess
}
