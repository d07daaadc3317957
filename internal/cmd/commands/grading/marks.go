package grading

import (
	"context"
	"fmt"

	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/pkg/markus"
)

type MarksCommand struct {
	*base.Command

	flagAssignment int
	flagGroup      int
}

func (c *MarksCommand) Synopsis() string {
	return "Set criterion marks for a group"
}

func (c *MarksCommand) Help() string {
	return `Usage: markus marks -assignment=<id> -group=<id> [options] CRITERION=VALUE...

  Sets the mark of each named criterion. A value of "nil" removes the mark.
  Values are sent as given; the server enforces the allowed range.` +
		c.Flags().Help()
}

func (c *MarksCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("marks")

	f.IntVar(&c.flagAssignment, "assignment", 0, "(Required) Assignment id.")
	f.IntVar(&c.flagGroup, "group", 0, "(Required) Group id.")

	return f
}

func (c *MarksCommand) Run(args []string) int {
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

	pairs, err := base.KeyValues(flags.Args())
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing marks: %v", err))
		return 1
	}
	if len(pairs) == 0 {
		ui.Error("at least one CRITERION=VALUE argument is required")
		return 1
	}

	marks := make(map[string]markus.Mark, len(pairs))
	for _, kv := range pairs {
		mark, err := markus.ParseMark(kv[1])
		if err != nil {
			ui.Error(fmt.Sprintf("error parsing mark for %q: %v", kv[0], err))
			return 1
		}
		marks[kv[0]] = mark
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	resp, err := client.UpdateMarksSingleGroup(context.Background(),
		c.flagAssignment, c.flagGroup, marks)
	if err != nil {
		ui.Error(fmt.Sprintf("error updating marks: %v", err))
		return 1
	}
	return c.OutputResponse(resp)
}
