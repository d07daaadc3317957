package markus

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Client performs MarkUs API operations against one MarkUs instance.
type Client struct {
	endpoint   Endpoint
	authToken  string
	httpClient *http.Client
	logger     hclog.Logger
	metrics    *Metrics
}

// NewClient validates cfg and creates a client. The configuration is copied;
// later changes to cfg do not affect the client.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, &Error{Op: "configure", Err: ErrConstruction, Msg: "config is required"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint, err := ParseEndpoint(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Client{
		endpoint:   endpoint,
		authToken:  cfg.AuthToken,
		httpClient: cfg.newHTTPClient(),
		logger:     logger.Named("markus-client"),
		metrics:    cfg.Metrics,
	}, nil
}

// Endpoint returns the parsed base URL the client talks to.
func (c *Client) Endpoint() Endpoint {
	return c.endpoint
}

// Do sends one request to path (relative to the base URL, e.g. "/api/users")
// and returns the complete response. The connection is closed before Do
// returns. Only transport failures are errors; any HTTP status is returned
// as a Response.
func (c *Client) Do(ctx context.Context, method, path string, body Body) (*Response, error) {
	if c.endpoint.Scheme != "http" && c.endpoint.Scheme != "https" {
		return nil, &Error{Op: "request", Err: ErrScheme, Msg: c.endpoint.Scheme}
	}

	encoded, err := Encode(body)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if len(encoded.Payload) > 0 {
		bodyReader = bytes.NewReader(encoded.Payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint.URL(path), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Close = true

	req.Header.Set("Content-Type", encoded.ContentType)
	req.Header.Set("Authorization", "MarkUsAuth "+c.authToken)
	if method == http.MethodGet {
		req.Header.Set("Accept", "text/plain")
	}

	requestID := uuid.NewString()
	c.logger.Debug("sending request",
		"request_id", requestID,
		"method", method,
		"path", path,
		"content_type", encoded.ContentType,
		"content_length", len(encoded.Payload),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observeFailure(method)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observeFailure(method)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	elapsed := time.Since(start)
	c.metrics.observe(method, resp.StatusCode, elapsed)
	c.logger.Debug("received response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(respBody),
		"elapsed", elapsed,
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Body:       respBody,
	}, nil
}

// getJSON fetches a read endpoint and decodes its JSON body into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return resp.DecodeJSON(v)
}

// getText fetches a read endpoint and returns its body as text.
func (c *Client) getText(ctx context.Context, path string) (string, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	return resp.Text()
}

// reasonPhrase extracts "OK" from a status line such as "200 OK".
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
