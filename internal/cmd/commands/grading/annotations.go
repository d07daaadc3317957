package grading

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/pkg/markus"
)

type AnnotationsCommand struct {
	*base.Command

	flagAssignment    int
	flagGroup         int
	flagFile          string
	flagForceComplete bool
}

func (c *AnnotationsCommand) Synopsis() string {
	return "Add annotations to a group's submission"
}

func (c *AnnotationsCommand) Help() string {
	return `Usage: markus annotations -assignment=<id> -group=<id> -file=<path> [options]

  Reads a list of annotations from a JSON or YAML file and adds them to the
  group's current submission. Each annotation has the keys filename,
  annotation_category_name, content, line_start, line_end, column_start and
  column_end.` +
		c.Flags().Help()
}

func (c *AnnotationsCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("annotations")

	f.IntVar(&c.flagAssignment, "assignment", 0, "(Required) Assignment id.")
	f.IntVar(&c.flagGroup, "group", 0, "(Required) Group id.")
	f.StringVar(&c.flagFile, "file", "",
		"(Required) Path to a JSON or YAML list of annotations.")
	f.BoolVar(&c.flagForceComplete, "force-complete", false,
		"Add annotations even if the result is already complete.")

	return f
}

func (c *AnnotationsCommand) Run(args []string) int {
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
	if c.flagFile == "" {
		ui.Error("file flag is required")
		return 1
	}

	annotations, err := readAnnotations(c.Fs, c.flagFile)
	if err != nil {
		ui.Error(fmt.Sprintf("error reading annotations: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	resp, err := client.UploadAnnotations(context.Background(),
		c.flagAssignment, c.flagGroup, annotations, c.flagForceComplete)
	if err != nil {
		ui.Error(fmt.Sprintf("error uploading annotations: %v", err))
		return 1
	}
	return c.OutputResponse(resp)
}

// readAnnotations decodes a YAML document, which also accepts JSON.
func readAnnotations(fs afero.Fs, filename string) ([]markus.Annotation, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}

	var annotations []markus.Annotation
	if err := yaml.Unmarshal(data, &annotations); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return annotations, nil
}
