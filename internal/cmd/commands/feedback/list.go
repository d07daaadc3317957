package feedback

import (
	"context"
	"fmt"

	"github.com/markusproject/markusapi/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	flagAssignment int
	flagGroup      int
}

func (c *ListCommand) Synopsis() string {
	return "List the feedback files of a group"
}

func (c *ListCommand) Help() string {
	return `Usage: markus feedback list -assignment=<id> -group=<id> [options]` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("feedback list")

	f.IntVar(&c.flagAssignment, "assignment", 0, "(Required) Assignment id.")
	f.IntVar(&c.flagGroup, "group", 0, "(Required) Group id.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagAssignment == 0 || c.flagGroup == 0 {
		ui.Error("assignment and group flags are required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	files, err := client.GetFeedbackFiles(
		context.Background(), c.flagAssignment, c.flagGroup)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing feedback files: %v", err))
		return 1
	}
	if err := c.Output(files); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
