package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finman/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	login string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a user's balance, statistics and budget status" }
func (*summaryCmd) Usage() string {
	return `summary -u <login>

  Displays the wallet balance, total income and expenses, per-category
  statistics, and the status of every budget.
`
}
func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
}
func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.RenderSummary(svc.Summary(u), Currency()))
	return subcommands.ExitSuccess
}
