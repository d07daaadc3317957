package cmd

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/internal/cmd/commands/assignments"
	"github.com/markusproject/markusapi/internal/cmd/commands/feedback"
	"github.com/markusproject/markusapi/internal/cmd/commands/grading"
	"github.com/markusproject/markusapi/internal/cmd/commands/request"
	"github.com/markusproject/markusapi/internal/cmd/commands/users"
	"github.com/markusproject/markusapi/internal/cmd/commands/version"
)

func initCommands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	return commandFactories(&base.Command{
		UI:     ui,
		Log:    log,
		Fs:     afero.NewOsFs(),
		Getenv: os.Getenv,
	})
}

// commandFactories builds the command tree around b so tests can swap the
// filesystem and environment.
func commandFactories(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"annotations": func() (cli.Command, error) {
			return &grading.AnnotationsCommand{Command: b}, nil
		},
		"assignments": func() (cli.Command, error) {
			return &assignments.Command{Command: b}, nil
		},
		"feedback": func() (cli.Command, error) {
			return &feedback.Command{Command: b}, nil
		},
		"feedback get": func() (cli.Command, error) {
			return &feedback.GetCommand{Command: b}, nil
		},
		"feedback list": func() (cli.Command, error) {
			return &feedback.ListCommand{Command: b}, nil
		},
		"feedback upload": func() (cli.Command, error) {
			return &feedback.UploadCommand{Command: b}, nil
		},
		"groups": func() (cli.Command, error) {
			return &assignments.GroupsCommand{Command: b}, nil
		},
		"marking-state": func() (cli.Command, error) {
			return &grading.MarkingStateCommand{Command: b}, nil
		},
		"marks": func() (cli.Command, error) {
			return &grading.MarksCommand{Command: b}, nil
		},
		"request": func() (cli.Command, error) {
			return &request.Command{Command: b}, nil
		},
		"spreadsheet": func() (cli.Command, error) {
			return &assignments.SpreadsheetCommand{Command: b}, nil
		},
		"test-results": func() (cli.Command, error) {
			return &grading.TestResultsCommand{Command: b}, nil
		},
		"users": func() (cli.Command, error) {
			return &users.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
