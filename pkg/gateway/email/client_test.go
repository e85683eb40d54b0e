package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lawfirm-backend/config"
	"go-lawfirm-backend/internal/domain"
)

func emailConfig() *config.Config {
	return &config.Config{
		EmailAPIKey: "re_test_key",
		EmailFrom:   "Meridian Legal <no-reply@meridianlegal.com>",
	}
}

func TestSendPostsBearerAuthedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []any{"dana@whitfieldlogistics.com"}, payload["to"])
		assert.Equal(t, "Subject line", payload["subject"])
		assert.Equal(t, "client@example.com", payload["reply_to"])

		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	client := NewClient(emailConfig(), WithBaseURL(server.URL))
	err := client.Send(context.Background(), domain.EmailMessage{
		From:    "Meridian Legal <no-reply@meridianlegal.com>",
		To:      "dana@whitfieldlogistics.com",
		ReplyTo: "client@example.com",
		Subject: "Subject line",
		HTML:    "<p>hello</p>",
	})
	assert.NoError(t, err)
}

func TestSendFailsClosedWithoutAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected")
	}))
	defer server.Close()

	cfg := emailConfig()
	cfg.EmailAPIKey = ""
	client := NewClient(cfg, WithBaseURL(server.URL))

	err := client.Send(context.Background(), domain.EmailMessage{To: "a@b.co"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendReportsGatewayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	client := NewClient(emailConfig(), WithBaseURL(server.URL))
	err := client.Send(context.Background(), domain.EmailMessage{To: "a@b.co"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}
