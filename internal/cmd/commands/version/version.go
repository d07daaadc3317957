package version

import (
	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: markus version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
