package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lawfirm-backend/config"
)

func smsConfig() *config.Config {
	return &config.Config{
		SMSClientID:     "client-id",
		SMSClientSecret: "client-secret",
		SMSJWTAssertion: "provisioned.jwt.assertion",
		SMSFromNumber:   "+15551230000",
	}
}

func TestSendPerformsTokenExchangeThenSend(t *testing.T) {
	var tokenCalls, sendCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/restapi/oauth/token":
			tokenCalls++
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "client-id", user)
			assert.Equal(t, "client-secret", pass)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.PostForm.Get("grant_type"))
			assert.Equal(t, "provisioned.jwt.assertion", r.PostForm.Get("assertion"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"token-123","expires_in":3600}`))
		case "/restapi/v1.0/account/~/extension/~/sms":
			sendCalls++
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, map[string]any{"phoneNumber": "+15551230000"}, payload["from"])
			assert.Equal(t, "Your consultation is confirmed.", payload["text"])
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":1}`))
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(smsConfig(), WithBaseURL(server.URL))
	err := client.Send(context.Background(), "+15551234567", "Your consultation is confirmed.")
	assert.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
	assert.Equal(t, 1, sendCalls)
}

func TestSendFreshTokenPerSend(t *testing.T) {
	var tokenCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/restapi/oauth/token" {
			tokenCalls++
			_, _ = w.Write([]byte(`{"access_token":"t"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(smsConfig(), WithBaseURL(server.URL))
	assert.NoError(t, client.Send(context.Background(), "+15551234567", "one"))
	assert.NoError(t, client.Send(context.Background(), "+15551234567", "two"))
	// No token caching across sends
	assert.Equal(t, 2, tokenCalls)
}

func TestSendShortCircuitsWhenTokenExchangeFails(t *testing.T) {
	var sendCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/restapi/oauth/token" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		sendCalls++
	}))
	defer server.Close()

	client := NewClient(smsConfig(), WithBaseURL(server.URL))
	err := client.Send(context.Background(), "+15551234567", "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "token exchange")
	assert.Equal(t, 0, sendCalls)
}

func TestSendFailsClosedWithoutCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected")
	}))
	defer server.Close()

	cfg := smsConfig()
	cfg.SMSClientSecret = ""
	client := NewClient(cfg, WithBaseURL(server.URL))

	err := client.Send(context.Background(), "+15551234567", "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendReportsGatewayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/restapi/oauth/token" {
			_, _ = w.Write([]byte(`{"access_token":"t"}`))
			return
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errorCode":"InsufficientPermissions"}`))
	}))
	defer server.Close()

	client := NewClient(smsConfig(), WithBaseURL(server.URL))
	err := client.Send(context.Background(), "+15551234567", "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
