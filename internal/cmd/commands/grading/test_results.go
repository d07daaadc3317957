package grading

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/markusproject/markusapi/internal/cmd/base"
)

type TestResultsCommand struct {
	*base.Command

	flagAssignment int
	flagGroup      int
	flagRun        int
	flagFile       string
}

func (c *TestResultsCommand) Synopsis() string {
	return "Upload automated test output for a group"
}

func (c *TestResultsCommand) Help() string {
	return `Usage: markus test-results -assignment=<id> -group=<id> -run=<id> -file=<path> [options]

  Uploads the contents of a test output file as the results of a test run.` +
		c.Flags().Help()
}

func (c *TestResultsCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("test-results")

	f.IntVar(&c.flagAssignment, "assignment", 0, "(Required) Assignment id.")
	f.IntVar(&c.flagGroup, "group", 0, "(Required) Group id.")
	f.IntVar(&c.flagRun, "run", 0, "(Required) Test run id.")
	f.StringVar(&c.flagFile, "file", "", "(Required) Path to the test output.")

	return f
}

func (c *TestResultsCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagAssignment == 0 || c.flagGroup == 0 || c.flagRun == 0 {
		ui.Error("assignment, group and run flags are required")
		return 1
	}
	if c.flagFile == "" {
		ui.Error("file flag is required")
		return 1
	}

	output, err := afero.ReadFile(c.Fs, c.flagFile)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading test output: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	resp, err := client.UploadTestGroupResults(context.Background(),
		c.flagAssignment, c.flagGroup, c.flagRun, string(output))
	if err != nil {
		ui.Error(fmt.Sprintf("error uploading test results: %v", err))
		return 1
	}
	return c.OutputResponse(resp)
}
