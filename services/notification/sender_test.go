package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSender_PostsPayload(t *testing.T) {
	var got map[string]string
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewWebhookSender(srv.URL, "secret")
	err := s.Send(context.Background(), "+15550100", "your appointment moved")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "+15550100", got["to"])
	assert.Equal(t, "your appointment moved", got["body"])
}

func TestWebhookSender_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewWebhookSender(srv.URL, "")
	err := s.Send(context.Background(), "+15550100", "hello")

	assert.Error(t, err)
}

func TestWebhookSender_NoURLConfigured(t *testing.T) {
	s := NewWebhookSender("", "")
	assert.Error(t, s.Send(context.Background(), "+15550100", "hello"))
}

func TestNoopSender(t *testing.T) {
	assert.NoError(t, NewNoopSender().Send(context.Background(), "+15550100", "hello"))
}
