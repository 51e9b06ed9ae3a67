package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	login  string
	source string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace a user's wallet with an external wallet file" }
func (*importCmd) Usage() string {
	return `import -u <login> -f <file.json>

  Replaces the user's wallet, in memory and on disk, with the wallet decoded
  from the file. The source must be an existing regular .json file holding a
  wallet document; on any failure the current wallet is left untouched.
`
}
func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the wallet owner")
	f.StringVar(&c.source, "f", "", "Path to the wallet file to import")
}
func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := svc.ImportWalletForUser(c.source, u); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wallet of %s replaced with %s\n", u.Login, c.source)
	return subcommands.ExitSuccess
}
