package feedback

import (
	"github.com/mitchellh/cli"

	"github.com/markusproject/markusapi/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage feedback files of a group"
}

func (c *Command) Help() string {
	return `Usage: markus feedback <subcommand> [options] [args]

  This command groups subcommands for listing, downloading and uploading
  the feedback files attached to a group's submission.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
