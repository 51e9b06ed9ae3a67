package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finman/renderer"
	"github.com/google/subcommands"
)

// --- Set Budget Command ---

type setBudgetCmd struct {
	login    string
	category string
	limit    string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "create or replace the budget for a category" }
func (*setBudgetCmd) Usage() string {
	return `set-budget -u <login> -c <category> -l <limit>

  Creates the budget for the category, or replaces it if one exists.
`
}
func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
	f.StringVar(&c.category, "c", "", "Category the budget applies to")
	f.StringVar(&c.limit, "l", "", "Spending limit for the category")
}
func (c *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	limit, err := parseDecimal("l", c.limit)
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

	if err := svc.SetBudget(u, c.category, limit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	svc.SaveUserWallet(u)

	fmt.Printf("Budget for %q set to %s\n", c.category, renderer.Amount(limit, Currency()))
	return subcommands.ExitSuccess
}

// --- Change Budget Command ---

type changeBudgetCmd struct {
	login    string
	category string
	limit    string
}

func (*changeBudgetCmd) Name() string     { return "change-budget" }
func (*changeBudgetCmd) Synopsis() string { return "change the limit of an existing budget" }
func (*changeBudgetCmd) Usage() string {
	return `change-budget -u <login> -c <category> -l <limit>

  Changes the limit of an existing budget. Fails if the category has no budget.
`
}
func (c *changeBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
	f.StringVar(&c.category, "c", "", "Category the budget applies to")
	f.StringVar(&c.limit, "l", "", "New spending limit for the category")
}
func (c *changeBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	limit, err := parseDecimal("l", c.limit)
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

	if err := svc.ChangeBudgetLimit(u, c.category, limit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	svc.SaveUserWallet(u)

	fmt.Printf("Budget for %q changed to %s\n", c.category, renderer.Amount(limit, Currency()))
	return subcommands.ExitSuccess
}

// --- Delete Budget Command ---

type deleteBudgetCmd struct {
	login    string
	category string
}

func (*deleteBudgetCmd) Name() string     { return "delete-budget" }
func (*deleteBudgetCmd) Synopsis() string { return "remove the budget for a category" }
func (*deleteBudgetCmd) Usage() string {
	return `delete-budget -u <login> -c <category>

  Removes the budget for the category. Fails if the category has no budget.
`
}
func (c *deleteBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
	f.StringVar(&c.category, "c", "", "Category of the budget to delete")
}
func (c *deleteBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := svc.DeleteBudget(u, c.category); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	svc.SaveUserWallet(u)

	fmt.Printf("Budget for %q deleted\n", c.category)
	return subcommands.ExitSuccess
}

// --- Rename Category Command ---

type renameCategoryCmd struct {
	login string
	old   string
	new   string
}

func (*renameCategoryCmd) Name() string { return "rename-category" }
func (*renameCategoryCmd) Synopsis() string {
	return "rename a category across operations and budgets"
}
func (*renameCategoryCmd) Usage() string {
	return `rename-category -u <login> -old <name> -new <name>

  Retags every operation filed under the old name and relocates its budget,
  in one call. Fails if nothing uses the old name.
`
}
func (c *renameCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
	f.StringVar(&c.old, "old", "", "Current category name")
	f.StringVar(&c.new, "new", "", "New category name")
}
func (c *renameCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.old == "" || c.new == "" {
		f.Usage()
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

	if err := svc.RenameCategory(u, c.old, c.new); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	svc.SaveUserWallet(u)

	fmt.Printf("Category %q renamed to %q\n", c.old, c.new)
	return subcommands.ExitSuccess
}
