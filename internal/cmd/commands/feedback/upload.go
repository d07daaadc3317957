package feedback

import (
	"context"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/pkg/markus"
)

type UploadCommand struct {
	*base.Command

	flagAssignment int
	flagGroup      int
	flagMimeType   string
	flagBinary     bool
	flagOverwrite  bool
}

func (c *UploadCommand) Synopsis() string {
	return "Upload feedback files to a group"
}

func (c *UploadCommand) Help() string {
	return `Usage: markus feedback upload -assignment=<id> -group=<id> [options] FILE...

  Uploads each FILE as a feedback file named after its base name. Files
  that are valid UTF-8 are sent as text unless -binary is set. With
  -overwrite (the default), an existing feedback file with the same name is
  replaced instead of adding a second one.

  Every file is attempted; failures are reported together at the end.` +
		c.Flags().Help()
}

func (c *UploadCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("feedback upload")

	f.IntVar(&c.flagAssignment, "assignment", 0, "(Required) Assignment id.")
	f.IntVar(&c.flagGroup, "group", 0, "(Required) Group id.")
	f.StringVar(&c.flagMimeType, "mime-type", "",
		"MIME type for every file. Inferred from the file extension if unset.")
	f.BoolVar(&c.flagBinary, "binary", false,
		"Send files as binary even if they are valid UTF-8.")
	f.BoolVar(&c.flagOverwrite, "overwrite", true,
		"Replace an existing feedback file with the same name.")

	return f
}

func (c *UploadCommand) Run(args []string) int {
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
	files := flags.Args()
	if len(files) == 0 {
		ui.Error("at least one file is required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}
	ctx := context.Background()

	var result *multierror.Error
	for _, name := range files {
		resp, err := c.upload(ctx, client, name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if !resp.OK() {
			result = multierror.Append(result,
				fmt.Errorf("%s: server responded %d %s", name, resp.StatusCode, resp.Reason))
			continue
		}
		ui.Info(fmt.Sprintf("uploaded %s (%d %s)", name, resp.StatusCode, resp.Reason))
	}

	if err := result.ErrorOrNil(); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

func (c *UploadCommand) upload(
	ctx context.Context, client *markus.Client, name string) (*markus.Response, error) {
	data, err := afero.ReadFile(c.Fs, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var contents markus.Contents
	if !c.flagBinary && utf8.Valid(data) {
		contents = markus.TextContents(data)
	} else {
		contents = markus.BinaryContents(data)
	}

	c.Log.Debug("uploading feedback file",
		"file", name,
		"bytes", len(data),
		"binary", !isText(contents))

	return client.UploadFeedbackFile(ctx, c.flagAssignment, c.flagGroup,
		markus.FeedbackFileUpload{
			Title:     filepath.Base(name),
			Contents:  contents,
			MimeType:  c.flagMimeType,
			Overwrite: c.flagOverwrite,
		})
}

func isText(contents markus.Contents) bool {
	_, ok := contents.(markus.TextContents)
	return ok
}
