package slack

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_PostsText(t *testing.T) {
	var received payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, 5*time.Second, slog.Default())
	err := hook.Notify(context.Background(), "🚨 신규 급속충전소 감지")

	require.NoError(t, err)
	assert.Equal(t, "🚨 신규 급속충전소 감지", received.Text)
}

func TestNotify_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, 5*time.Second, slog.Default())
	err := hook.Notify(context.Background(), "msg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestNotify_EmptyURLLogsOnly(t *testing.T) {
	hook := NewWebhook("", 5*time.Second, slog.Default())
	assert.NoError(t, hook.Notify(context.Background(), "msg"))
}
