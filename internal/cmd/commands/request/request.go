package request

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/markusproject/markusapi/internal/cmd/base"
	"github.com/markusproject/markusapi/pkg/markus"
)

var contentTypes = map[string]markus.ContentType{
	"form":      markus.ContentTypeForm,
	"json":      markus.ContentTypeJSON,
	"multipart": markus.ContentTypeMultipart,
}

type Command struct {
	*base.Command

	flagMethod      string
	flagPath        string
	flagContentType string
}

func (c *Command) Synopsis() string {
	return "Send a raw request to the MarkUs API"
}

func (c *Command) Help() string {
	return `Usage: markus request -path=<path> [options] [KEY=VALUE...]

  Sends a single authenticated request and prints the status line and body.
  Paths without a leading slash are resolved under /api, so
  "assignments/3/groups.json" requests /api/assignments/3/groups.json.

  Parameters are given as KEY=VALUE. A value of the form @FILE is replaced
  by the file's contents; with -content-type=multipart the file is sent as
  a file part instead.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := c.NewFlagSet("request")

	f.StringVar(&c.flagMethod, "method", http.MethodGet, "HTTP method.")
	f.StringVar(&c.flagPath, "path", "", "(Required) Request path.")
	f.StringVar(&c.flagContentType, "content-type", "form",
		"Body encoding: form, json or multipart.")

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagPath == "" {
		ui.Error("path flag is required")
		return 1
	}
	kind, ok := contentTypes[strings.ToLower(c.flagContentType)]
	if !ok {
		ui.Error(fmt.Sprintf("unknown content type %q", c.flagContentType))
		return 1
	}

	pairs, err := base.KeyValues(flags.Args())
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing parameters: %v", err))
		return 1
	}

	body, err := c.body(kind, pairs)
	if err != nil {
		ui.Error(fmt.Sprintf("error building request body: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring client: %v", err))
		return 1
	}

	resp, err := client.Do(context.Background(),
		strings.ToUpper(c.flagMethod), resolvePath(c.flagPath), body)
	if err != nil {
		ui.Error(fmt.Sprintf("error sending request: %v", err))
		return 1
	}
	return c.OutputResponse(resp)
}

// body collects the parameters into the shape NewBody expects for kind. A
// request without parameters has no body.
func (c *Command) body(kind markus.ContentType, pairs [][2]string) (markus.Body, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	var params any
	switch kind {
	case markus.ContentTypeMultipart:
		mp := markus.MultipartBody{Fields: map[string]string{}}
		for _, kv := range pairs {
			name, isFile := strings.CutPrefix(kv[1], "@")
			if !isFile {
				mp.Fields[kv[0]] = kv[1]
				continue
			}
			data, err := afero.ReadFile(c.Fs, name)
			if err != nil {
				return nil, err
			}
			mimeType, _ := markus.ResolveMimeType(name, "")
			mp.Files = append(mp.Files, markus.FilePart{
				FieldName: kv[0],
				FileName:  filepath.Base(name),
				MimeType:  mimeType,
				Content:   data,
			})
		}
		params = mp
	case markus.ContentTypeJSON:
		values := make(map[string]string, len(pairs))
		for _, kv := range pairs {
			v, err := c.value(kv[1])
			if err != nil {
				return nil, err
			}
			values[kv[0]] = v
		}
		params = values
	default:
		values := url.Values{}
		for _, kv := range pairs {
			v, err := c.value(kv[1])
			if err != nil {
				return nil, err
			}
			values.Add(kv[0], v)
		}
		params = values
	}

	return markus.NewBody(kind, params)
}

func (c *Command) value(raw string) (string, error) {
	name, isFile := strings.CutPrefix(raw, "@")
	if !isFile {
		return raw, nil
	}
	data, err := afero.ReadFile(c.Fs, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return markus.APIRoot + "/" + p
}
