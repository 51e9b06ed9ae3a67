package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finman"
	"github.com/google/subcommands"
)

type exportCmd struct {
	login  string
	target string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a user's wallet as a wallet document" }
func (*exportCmd) Usage() string {
	return `export -u <login> [-f <file.json>]

  Writes the user's wallet as a JSON wallet document, suitable for a later
  'fin import'. Without -f the document goes to stdout.
`
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
	f.StringVar(&c.target, "f", "", "Path of the file to write (default stdout)")
}
func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, _, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	u, err := requireUser(dir, c.login)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	out := os.Stdout
	if c.target != "" {
		out, err = os.Create(c.target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := finman.EncodeWallet(out, u.Wallet); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.target != "" {
		fmt.Printf("Wallet of %s exported to %s\n", u.Login, c.target)
	}
	return subcommands.ExitSuccess
}
