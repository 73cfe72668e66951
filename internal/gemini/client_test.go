package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaon-hs/gaon-portal-api/pkg/config"
)

func TestGenerateReturnsFirstCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		require.Equal(t, "k", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hi there"}]}}]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(config.GeminiConfig{BaseURL: server.URL, APIKey: "k", Model: "gemini-2.0-flash"})
	text, err := client.Generate(context.Background(), "hello")

	require.NoError(t, err)
	require.Equal(t, "hi there", text)
}

func TestGenerateWithoutKey(t *testing.T) {
	client := NewClient(config.GeminiConfig{BaseURL: "http://unused", Model: "m"})

	_, err := client.Generate(context.Background(), "hello")

	require.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGenerateNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client := NewClient(config.GeminiConfig{BaseURL: server.URL, APIKey: "k", Model: "m"})
	_, err := client.Generate(context.Background(), "hello")

	require.Error(t, err)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(config.GeminiConfig{BaseURL: server.URL, APIKey: "k", Model: "m"})
	_, err := client.Generate(context.Background(), "hello")

	require.Error(t, err)
}
