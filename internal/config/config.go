// Package config loads MarkUs client settings from an HCL file, environment
// variables and command-line overrides.
package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/markusproject/markusapi/pkg/markus"
)

const (
	// EnvURL overrides the configured base URL.
	EnvURL = "MARKUS_URL"

	// EnvAPIKey overrides the configured API key.
	EnvAPIKey = "MARKUS_API_KEY"
)

// Config is the root of a configuration file.
//
// Example:
//
//	markus {
//	  url        = "https://markus.example.edu/csc108"
//	  api_key    = env("MARKUS_API_KEY")
//	  timeout    = "30s"
//	  tls_verify = true
//	}
type Config struct {
	Markus *Markus `hcl:"markus,block"`
}

// Markus holds the connection settings for one MarkUs instance.
type Markus struct {
	URL       string `hcl:"url,optional"`
	APIKey    string `hcl:"api_key,optional"`
	Timeout   string `hcl:"timeout,optional"`
	TLSVerify *bool  `hcl:"tls_verify,optional"`
}

// Overrides are values given on the command line. Empty fields are ignored.
type Overrides struct {
	URL    string
	APIKey string
}

// envFunc exposes environment variables to configuration files as env("NAME").
func envFunc(getenv func(string) string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return cty.StringVal(getenv(args[0].AsString())), nil
		},
	})
}

// Load parses the configuration file at filename. An empty filename yields
// an empty configuration.
func Load(fs afero.Fs, filename string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	if filename == "" {
		return cfg, nil
	}

	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	evalCtx := &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc(getenv),
		},
	}
	if err := hclsimple.Decode(filename, src, evalCtx, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	return cfg, nil
}

// ClientConfig merges the file, the environment and overrides (in increasing
// precedence) into a client configuration.
func (c *Config) ClientConfig(overrides Overrides, getenv func(string) string) (*markus.Config, error) {
	settings := Markus{}
	if c.Markus != nil {
		settings = *c.Markus
	}

	if v := getenv(EnvURL); v != "" {
		settings.URL = v
	}
	if v := getenv(EnvAPIKey); v != "" {
		settings.APIKey = v
	}
	if overrides.URL != "" {
		settings.URL = overrides.URL
	}
	if overrides.APIKey != "" {
		settings.APIKey = overrides.APIKey
	}

	var result *multierror.Error

	if settings.URL == "" {
		result = multierror.Append(result,
			fmt.Errorf("MarkUs URL is required (set markus.url, %s or -url)", EnvURL))
	}

	var timeout time.Duration
	if settings.Timeout != "" {
		d, err := time.ParseDuration(settings.Timeout)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid timeout: %w", err))
		} else {
			timeout = d
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &markus.Config{
		BaseURL:   settings.URL,
		AuthToken: settings.APIKey,
		Timeout:   timeout,
		TLSVerify: settings.TLSVerify,
	}, nil
}
