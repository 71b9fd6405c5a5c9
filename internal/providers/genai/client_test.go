package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
)

func testHistory() []core.Message {
	return []core.Message{
		{Role: core.RoleSystem, Content: "you are the hr assistant"},
		{Role: core.RoleUser, Content: "How many PTO days do I get?", Timestamp: "2025-03-14 09:30:00"},
	}
}

func newTestClient(baseURL, key string) *Client {
	c := NewClient(Config{
		BaseURL:     baseURL,
		AccessKey:   key,
		Temperature: 0.1,
		TopP:        0.9,
		MaxTokens:   1024,
		Timeout:     5 * time.Second,
	})
	c.now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 5, 0, time.UTC) }
	return c
}

func TestCompleteSendsContractPayload(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"You get 15 days. See Benefits page."}}]}`)
	}))
	defer srv.Close()

	// Trailing slashes on the base URL are stripped before the route is appended.
	client := newTestClient(srv.URL+"/", "secret-key")

	reply, err := client.Complete(context.Background(), testHistory())
	require.NoError(t, err)

	assert.Equal(t, core.RoleAssistant, reply.Role)
	assert.Equal(t, "You get 15 days. See Benefits page.", reply.Content)
	assert.Equal(t, "2025-03-14 09:30:05", reply.Timestamp)

	// Exact field spelling of the wire contract.
	assert.Equal(t, false, captured["stream"])
	assert.Equal(t, false, captured["include_functions_info"])
	assert.Equal(t, false, captured["include_retrieval_info"])
	assert.Equal(t, false, captured["include_guardrails_info"])
	assert.InDelta(t, 0.1, captured["temperature"], 1e-9)
	assert.InDelta(t, 0.9, captured["top_p"], 1e-9)
	assert.InDelta(t, 1024, captured["max_tokens"], 1e-9)

	msgs, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	first, ok := msgs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "system", first["role"])
}

func TestCompleteMissingConfigSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	tests := []struct {
		name        string
		baseURL     string
		key         string
		wantMissing string
	}{
		{name: "no access key", baseURL: srv.URL, key: "", wantMissing: "AGENT_ACCESS_KEY"},
		{name: "no base url", baseURL: "", key: "secret", wantMissing: "GENAI_API_URL"},
		{name: "nothing configured", baseURL: "", key: "", wantMissing: "GENAI_API_URL or AGENT_ACCESS_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(tt.baseURL, tt.key)

			_, err := client.Complete(context.Background(), testHistory())

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tt.wantMissing)
		})
	}

	assert.Equal(t, int32(0), calls.Load(), "no network call may happen on missing configuration")
}

func TestCompleteEmptyChoicesYieldsFallback(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty choices", body: `{"choices":[]}`},
		{name: "no choices field", body: `{}`},
		{name: "empty content", body: `{"choices":[{"message":{"content":""}}]}`},
		{name: "missing message", body: `{"choices":[{}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			client := newTestClient(srv.URL, "secret")

			reply, err := client.Complete(context.Background(), testHistory())
			require.NoError(t, err)
			assert.Equal(t, "No answer returned.", reply.Content)
			assert.Equal(t, core.RoleAssistant, reply.Role)
		})
	}
}

func TestCompleteRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"agent exploded"}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "secret")

	_, err := client.Complete(context.Background(), testHistory())

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Contains(t, remoteErr.Body, "agent exploded")
}

func TestCompleteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // server gone before the call

	client := newTestClient(srv.URL, "secret")

	_, err := client.Complete(context.Background(), testHistory())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, transportErr.Unwrap())
}

func TestCompleteMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "secret")

	_, err := client.Complete(context.Background(), testHistory())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
