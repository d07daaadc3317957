package cmd

import (
	"bufio"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/markusproject/markusapi/internal/version"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := "markus"
	if len(args) > 0 {
		cliName = args[0]
	}

	log := hclog.New(&hclog.LoggerOptions{
		Name:   cliName,
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{cliName, "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	return run(cliName, args, log, ui)
}

func run(cliName string, args []string, log hclog.Logger, ui cli.Ui) int {
	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	c := &cli.CLI{
		Name:       cliName,
		Args:       cmdArgs,
		Version:    version.Version,
		Commands:   initCommands(log, ui),
		HelpWriter: os.Stderr,
	}

	// Run the CLI
	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}
