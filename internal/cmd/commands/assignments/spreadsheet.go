package assignments

import (
	"context"
	"fmt"

	"github.com/markusproject/markusapi/internal/cmd/base"
)

type SpreadsheetCommand struct {
	*base.Command

	flagID int
}

func (c *SpreadsheetCommand) Synopsis() string {
	return "Download a marks spreadsheet"
}

func (c *SpreadsheetCommand) Help() string {
	return `Usage: markus spreadsheet -id=<id> [options]

  Prints the contents of a marks spreadsheet (grade entry form) as returned
  by the server.` +
		c.Flags().Help()
}

func (c *SpreadsheetCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("spreadsheet")

	f.IntVar(&c.flagID, "id", 0, "(Required) Spreadsheet id.")

	return f
}

func (c *SpreadsheetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagID == 0 {
		ui.Error("id flag is required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	sheet, err := client.GetMarksSpreadsheet(context.Background(), c.flagID)
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching spreadsheet: %v", err))
		return 1
	}
	ui.Output(sheet)
	return 0
}
