package grading

import (
	"context"
	"fmt"

	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/pkg/markus"
)

type MarkingStateCommand struct {
	*base.Command

	flagAssignment int
	flagGroup      int
	flagState      string
}

func (c *MarkingStateCommand) Synopsis() string {
	return "Mark a group's result complete or incomplete"
}

func (c *MarkingStateCommand) Help() string {
	return `Usage: markus marking-state -assignment=<id> -group=<id> -state=<state> [options]` +
		c.Flags().Help()
}

func (c *MarkingStateCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("marking-state")

	f.IntVar(&c.flagAssignment, "assignment", 0, "(Required) Assignment id.")
	f.IntVar(&c.flagGroup, "group", 0, "(Required) Group id.")
	f.StringVar(&c.flagState, "state", "",
		"(Required) New marking state: complete or incomplete.")

	return f
}

func (c *MarkingStateCommand) Run(args []string) int {
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

	state := markus.MarkingState(c.flagState)
	switch state {
	case markus.MarkingStateComplete, markus.MarkingStateIncomplete:
	default:
		ui.Error(fmt.Sprintf("invalid state %q: must be complete or incomplete", c.flagState))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	resp, err := client.UpdateMarkingState(context.Background(),
		c.flagAssignment, c.flagGroup, state)
	if err != nil {
		ui.Error(fmt.Sprintf("error updating marking state: %v", err))
		return 1
	}
	return c.OutputResponse(resp)
}
