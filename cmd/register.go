package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	login    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new user with an empty wallet" }
func (*registerCmd) Usage() string {
	return `register -u <login> -p <password>

  Registers a new user. The password is stored as a sha256 hash; the wallet
  starts empty.
`
}
func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.login, "u", "", "Login of the new user")
	f.StringVar(&c.password, "p", "", "Password of the new user")
}
func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, _, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	u, err := dir.Register(c.login, c.password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("User %s registered\n", u.Login)
	return subcommands.ExitSuccess
}
