package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-lawfirm-backend/config"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/logger"
)

// HTTPClient abstracts the http.Client Do method for easier testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNotConfigured is returned when the gateway credentials are absent.
// Callers treat it as an immediate channel failure; no network call is made.
var ErrNotConfigured = errors.New("email gateway: api key not configured")

// Option customises the email client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used to talk to the provider.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL sets the provider API base URL. Useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// Client sends transactional email through the provider's HTTP API using
// bearer-token auth. It implements domain.EmailGateway.
type Client struct {
	apiKey       string
	baseURL      string
	httpClient   HTTPClient
	maxBodyBytes int64
}

// NewClient creates an email gateway client from configuration. A missing API
// key is tolerated: Send fails closed until one is provided.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		apiKey:       cfg.EmailAPIKey,
		baseURL:      cfg.EmailAPIURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		maxBodyBytes: 16 * 1024,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// IsConfigured reports whether the client holds credentials.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type sendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// Send delivers one email. Non-2xx responses and transport errors are
// returned as errors with the provider's body text attached for the logs.
func (c *Client) Send(ctx context.Context, msg domain.EmailMessage) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	payload := sendPayload{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("email gateway: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("email gateway: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email gateway: http do: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.L().Error("email gateway rejected message",
			"status", resp.StatusCode,
			"to", msg.To,
			"body", string(respBody),
		)
		return fmt.Errorf("email gateway: http %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}
