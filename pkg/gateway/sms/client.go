package sms

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

	"github.com/golang-jwt/jwt/v5"

	"go-lawfirm-backend/config"
	"go-lawfirm-backend/pkg/logger"
)

// HTTPClient abstracts the http.Client Do method for easier testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNotConfigured is returned when any of the three gateway credentials is
// absent. Callers treat it as an immediate channel failure; no network call
// is made.
var ErrNotConfigured = errors.New("sms gateway: credentials not configured")

// Option customises the SMS client.
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

// Client sends SMS through a provider requiring an OAuth JWT-bearer token
// exchange before each send. It implements domain.SMSGateway. Tokens are not
// cached: every Send performs a fresh exchange.
type Client struct {
	clientID     string
	clientSecret string
	jwtAssertion string
	fromNumber   string
	baseURL      string
	httpClient   HTTPClient
	maxBodyBytes int64
}

// NewClient creates an SMS gateway client from configuration. Incomplete
// credentials are tolerated: Send fails closed until all three are present.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		clientID:     cfg.SMSClientID,
		clientSecret: cfg.SMSClientSecret,
		jwtAssertion: cfg.SMSJWTAssertion,
		fromNumber:   cfg.SMSFromNumber,
		baseURL:      cfg.SMSAPIURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		maxBodyBytes: 16 * 1024,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.warnIfAssertionExpired()
	return c
}

// IsConfigured reports whether all three credentials are present.
func (c *Client) IsConfigured() bool {
	return c.clientID != "" && c.clientSecret != "" && c.jwtAssertion != ""
}

// warnIfAssertionExpired inspects the provisioned assertion's exp claim
// without verifying the signature. The exchange is still attempted either
// way; this only gets an operator-visible warning into the logs early.
func (c *Client) warnIfAssertionExpired() {
	if c.jwtAssertion == "" {
		return
	}
	token, _, err := jwt.NewParser().ParseUnverified(c.jwtAssertion, jwt.MapClaims{})
	if err != nil {
		logger.L().Warn("sms gateway: provisioned JWT assertion is not parseable", "error", err)
		return
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if exp.Before(time.Now()) {
		logger.L().Warn("sms gateway: provisioned JWT assertion is expired", "expired_at", exp.Time)
	}
}

type smsNumber struct {
	PhoneNumber string `json:"phoneNumber"`
}

type sendPayload struct {
	From smsNumber   `json:"from"`
	To   []smsNumber `json:"to"`
	Text string      `json:"text"`
}

// Send exchanges the JWT assertion for an access token, then posts the
// message. Numbers are expected in +<countrycode><number> form; see
// NormalizePhone.
func (c *Client) Send(ctx context.Context, to, text string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return err
	}

	payload := sendPayload{
		From: smsNumber{PhoneNumber: c.fromNumber},
		To:   []smsNumber{{PhoneNumber: to}},
		Text: text,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sms gateway: marshal payload: %w", err)
	}

	endpoint := c.baseURL + "/restapi/v1.0/account/~/extension/~/sms"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms gateway: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway: http do: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.L().Error("sms gateway rejected message",
			"status", resp.StatusCode,
			"to", to,
			"body", string(respBody),
		)
		return fmt.Errorf("sms gateway: http %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}
