package assignments

import (
	"context"
	"fmt"

	"github.com/markusproject/markusapi/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "List assignments"
}

func (c *Command) Help() string {
	return `Usage: markus assignments [options]

  Lists every assignment of the MarkUs instance.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	return c.NewFlagSet("assignments")
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	assignments, err := client.GetAssignments(context.Background())
	if err != nil {
		ui.Error(fmt.Sprintf("error listing assignments: %v", err))
		return 1
	}
	if err := c.Output(assignments); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
