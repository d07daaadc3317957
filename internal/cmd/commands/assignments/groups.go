package assignments

import (
	"context"
	"fmt"

	"github.com/markusproject/markusapi/internal/cmd/base"
)

type GroupsCommand struct {
	*base.Command

	flagAssignment int
	flagGroup      int
	flagName       string
	flagByName     bool
}

func (c *GroupsCommand) Synopsis() string {
	return "List or look up the groups of an assignment"
}

func (c *GroupsCommand) Help() string {
	return `Usage: markus groups -assignment=<id> [options]

  Lists the groups of an assignment. Use -group or -name to fetch a single
  group, or -by-name to print the mapping of group names to group ids.` +
		c.Flags().Help()
}

func (c *GroupsCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("groups")

	f.IntVar(&c.flagAssignment, "assignment", 0,
		"(Required) Assignment id.")
	f.IntVar(&c.flagGroup, "group", 0,
		"Fetch the group with this id.")
	f.StringVar(&c.flagName, "name", "",
		"Fetch the group with this name.")
	f.BoolVar(&c.flagByName, "by-name", false,
		"Print group ids keyed by group name.")

	return f
}

func (c *GroupsCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagAssignment == 0 {
		ui.Error("assignment flag is required")
		return 1
	}
	if c.flagGroup != 0 && c.flagName != "" {
		ui.Error("group and name flags are mutually exclusive")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}
	ctx := context.Background()

	var result any
	switch {
	case c.flagGroup != 0:
		result, err = client.GetGroup(ctx, c.flagAssignment, c.flagGroup)
	case c.flagName != "":
		result, err = client.GetGroupByName(ctx, c.flagAssignment, c.flagName)
	case c.flagByName:
		result, err = client.GetGroupsByName(ctx, c.flagAssignment)
	default:
		result, err = client.GetGroups(ctx, c.flagAssignment)
	}
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching groups: %v", err))
		return 1
	}

	if err := c.Output(result); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
