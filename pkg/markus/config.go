package markus

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Config contains configuration for a MarkUs API client.
//
// Example configuration (HCL):
//
//	markus {
//	  url     = "https://markus.example.edu/csc108"
//	  api_key = env("MARKUS_API_KEY")
//	}
type Config struct {
	// BaseURL is the root of the MarkUs instance, including any path prefix.
	// Example: "https://markus.example.edu/csc108"
	BaseURL string `json:"baseUrl"`

	// AuthToken is an admin API key from the MarkUs dashboard.
	AuthToken string `json:"-"` // Don't marshal auth token to JSON

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout bounds a whole request. Zero means no client-side timeout;
	// callers can still cancel through the context.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Logger receives debug logs for every request (optional).
	Logger hclog.Logger `json:"-"`

	// Metrics records request counts and latencies (optional).
	Metrics *Metrics `json:"-"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(checkBaseURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return &Error{Op: "configure", Err: ErrConstruction, Msg: err.Error()}
	}
	return nil
}

func checkBaseURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

// Endpoint is the parsed form of Config.BaseURL.
type Endpoint struct {
	Scheme   string
	Host     string
	Port     string
	BasePath string
}

// ParseEndpoint splits a base URL into its scheme, host, port and path.
// Query and fragment are discarded.
func ParseEndpoint(rawURL string) (Endpoint, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Endpoint{}, &Error{Op: "configure", Err: ErrConstruction, Msg: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Endpoint{}, &Error{
			Op:  "configure",
			Err: ErrConstruction,
			Msg: fmt.Sprintf("unsupported scheme %q", u.Scheme),
		}
	}
	return Endpoint{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Port:     u.Port(),
		BasePath: strings.TrimRight(u.Path, "/"),
	}, nil
}

// URL joins the endpoint with an API path.
func (e Endpoint) URL(path string) string {
	host := e.Host
	if e.Port != "" {
		host = net.JoinHostPort(e.Host, e.Port)
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return e.Scheme + "://" + host + e.BasePath + path
}

// newHTTPClient creates an HTTP client that never reuses connections.
func (c *Config) newHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DisableKeepAlives: true,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
