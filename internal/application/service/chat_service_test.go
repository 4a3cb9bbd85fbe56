package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flowbit/analytics-api/internal/config"
	"github.com/flowbit/analytics-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(baseURL, apiKey string) *ChatService {
	return NewChatService(&config.VannaConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Timeout: 5 * time.Second,
	})
}

func TestChatAskPassesThroughUpstreamResponse(t *testing.T) {
	upstream := `{"sql":"SELECT 1","rows":[[1]]}`
	var gotBody generateSQLRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate-sql", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstream))
	}))
	defer srv.Close()

	svc := newChatService(srv.URL, "secret-key")

	payload, err := svc.Ask(context.Background(), "total spend by vendor", 50)
	require.NoError(t, err)

	assert.JSONEq(t, upstream, string(payload))
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "total spend by vendor", gotBody.Prompt)
	assert.Equal(t, 50, gotBody.MaxRows)
}

func TestChatAskDefaultsMaxRows(t *testing.T) {
	var gotBody generateSQLRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := newChatService(srv.URL, "")

	_, err := svc.Ask(context.Background(), "hello", 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxRows, gotBody.MaxRows)
}

func TestChatAskNoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := newChatService(srv.URL, "")

	_, err := svc.Ask(context.Background(), "hello", 10)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestChatAskUpstreamErrorPreservesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"cannot answer"}`))
	}))
	defer srv.Close()

	svc := newChatService(srv.URL, "")

	_, err := svc.Ask(context.Background(), "hello", 10)
	require.Error(t, err)

	var ue *apperror.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusUnprocessableEntity, ue.Status)
	assert.JSONEq(t, `{"error":"cannot answer"}`, string(ue.Payload))
}

func TestChatAskTransportFailure(t *testing.T) {
	svc := newChatService("http://127.0.0.1:1", "")

	_, err := svc.Ask(context.Background(), "hello", 10)
	assert.True(t, apperror.IsUpstream(err))
}

func TestChatAskRejectsEmptyPrompt(t *testing.T) {
	svc := newChatService("http://localhost:8000", "")

	_, err := svc.Ask(context.Background(), "   ", 10)
	assert.True(t, apperror.IsValidation(err))
}
