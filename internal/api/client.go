// Package api provides the quote source chain and its HTTP client.
package api

import (
	"context"
	"fmt"
	"io"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/charmbracelet/log"

	apierrors "github.com/diogo/quoteweb/internal/errors"
	"github.com/diogo/quoteweb/internal/models"
)

const (
	// DefaultTimeout bounds a single request to one quote endpoint
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps how much of a response is read; quote payloads are tiny
	maxBodySize = 64 * 1024

	// maxErrorBody is how much of a failed response is kept for diagnostics
	maxErrorBody = 512
)

// Client performs GET requests against the quote endpoints
type Client struct {
	httpClient tls_client.HttpClient
	timeout    time.Duration
	logger     *log.Logger
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new Client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		timeout: DefaultTimeout,
		logger:  log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		// Create TLS client with Chrome profile for browser emulation
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get fetches endpoint and returns the response body.
// Transport failures return *errors.NetworkError and non-2xx statuses return *errors.APIError.
func (c *Client) Get(ctx context.Context, endpoint string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Prefer the context's reason when the request was cancelled or timed out
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, apierrors.NewNetworkError(endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	c.logger.Debug("quote request complete", "endpoint", endpoint, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		message := string(errorBody)
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, apierrors.NewAPIError(resp.StatusCode, endpoint, message)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, err)
	}

	return body, nil
}
