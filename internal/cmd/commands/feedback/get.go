package feedback

import (
	"context"
	"fmt"

	"github.com/markusproject/markusapi/internal/cmd/base"
)

type GetCommand struct {
	*base.Command

	flagAssignment int
	flagGroup      int
	flagID         int
}

func (c *GetCommand) Synopsis() string {
	return "Print the contents of a feedback file"
}

func (c *GetCommand) Help() string {
	return `Usage: markus feedback get -assignment=<id> -group=<id> -id=<id> [options]

  Prints a text feedback file. Binary feedback files cannot be downloaded
  through this command.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("feedback get")

	f.IntVar(&c.flagAssignment, "assignment", 0, "(Required) Assignment id.")
	f.IntVar(&c.flagGroup, "group", 0, "(Required) Group id.")
	f.IntVar(&c.flagID, "id", 0, "(Required) Feedback file id.")

	return f
}

func (c *GetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagAssignment == 0 || c.flagGroup == 0 || c.flagID == 0 {
		ui.Error("assignment, group and id flags are required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	contents, err := client.GetFeedbackFile(
		context.Background(), c.flagAssignment, c.flagGroup, c.flagID)
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching feedback file: %v", err))
		return 1
	}
	ui.Output(contents)
	return 0
}
