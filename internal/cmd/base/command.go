package base

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/markusproject/markusapi/internal/config"
	"github.com/markusproject/markusapi/pkg/markus"
)

// Output formats accepted by -format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Command carries what every subcommand needs: UI, logger, filesystem and
// the connection flags shared by all commands.
type Command struct {
	UI     cli.Ui
	Log    hclog.Logger
	Fs     afero.Fs
	Getenv func(string) string

	flagConfig   string
	flagURL      string
	flagAPIKey   string
	flagFormat   string
	flagLogLevel string
}

// NewFlagSet creates a flag set for a subcommand with the shared connection
// and output flags already registered.
func (c *Command) NewFlagSet(name string) *FlagSet {
	f := NewFlagSet(flag.NewFlagSet(name, flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "",
		"Path to an HCL configuration file.")
	f.StringVar(&c.flagURL, "url", "",
		fmt.Sprintf("Base URL of the MarkUs instance. Overrides the config file and %s.", config.EnvURL))
	f.StringVar(&c.flagAPIKey, "api-key", "",
		fmt.Sprintf("MarkUs API key. Overrides the config file and %s.", config.EnvAPIKey))
	f.StringVar(&c.flagFormat, "format", FormatJSON,
		"Output format: json, yaml or text.")
	f.StringVar(&c.flagLogLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error).")

	return f
}

// Client builds a MarkUs client from the config file, environment and flags.
func (c *Command) Client() (*markus.Client, error) {
	if c.flagLogLevel != "" {
		c.Log.SetLevel(hclog.LevelFromString(c.flagLogLevel))
	}

	cfg, err := config.Load(c.Fs, c.flagConfig, c.Getenv)
	if err != nil {
		return nil, err
	}

	clientCfg, err := cfg.ClientConfig(config.Overrides{
		URL:    c.flagURL,
		APIKey: c.flagAPIKey,
	}, c.Getenv)
	if err != nil {
		return nil, err
	}
	clientCfg.Logger = c.Log

	client, err := markus.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating MarkUs client: %w", err)
	}

	c.Log.Debug("created client", "url", clientCfg.BaseURL)
	return client, nil
}

// Output prints v in the selected format. Strings are printed as-is in text
// format.
func (c *Command) Output(v any) error {
	switch strings.ToLower(c.flagFormat) {
	case FormatText:
		if s, ok := v.(string); ok {
			c.UI.Output(s)
			return nil
		}
		fallthrough
	case FormatJSON, "":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		c.UI.Output(string(out))
		return nil
	case FormatYAML:
		// Round trip through JSON so YAML keys match the API field names.
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		c.UI.Output(strings.TrimRight(string(out), "\n"))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.flagFormat)
	}
}

// OutputResponse prints the status line and body of a write operation and
// returns the exit code: 0 for 2xx, 1 otherwise.
func (c *Command) OutputResponse(resp *markus.Response) int {
	status := fmt.Sprintf("%d %s", resp.StatusCode, resp.Reason)
	body, err := resp.Text()
	if err != nil {
		body = fmt.Sprintf("<%d bytes of binary data>", len(resp.Body))
	}

	if !resp.OK() {
		c.UI.Error(status)
		if body != "" {
			c.UI.Error(body)
		}
		return 1
	}

	c.UI.Info(status)
	if body != "" {
		c.UI.Output(body)
	}
	return 0
}
