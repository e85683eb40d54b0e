package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go-lawfirm-backend/pkg/logger"
)

const jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// fetchAccessToken performs the OAuth JWT-bearer grant against the provider's
// token endpoint: HTTP Basic auth with client id/secret, form-encoded body
// carrying the provisioned assertion. The token is used once and discarded.
func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", jwtBearerGrantType)
	form.Set("assertion", c.jwtAssertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/restapi/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("sms gateway: new token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sms gateway: token exchange http do: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.L().Error("sms gateway token exchange failed",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return "", fmt.Errorf("sms gateway: token exchange http %d", resp.StatusCode)
	}

	var parsed tokenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("sms gateway: decode token response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("sms gateway: token response missing access_token")
	}

	return parsed.AccessToken, nil
}
