// Copyright 2025 The Go ConvAI Authors
// SPDX-License-Identifier: Apache-2.0

package convai_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-convai/convai"
)

// callCounter counts how many requests reached the test server, so tests
// can assert that local precondition failures make zero network calls.
type callCounter struct {
	calls atomic.Int64
}

func (c *callCounter) wrap(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.calls.Add(1)
		handler(w, r)
	}
}

func (c *callCounter) count() int64 {
	return c.calls.Load()
}

// newTestClient starts an httptest server around handler and returns a
// client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*convai.Client, *callCounter) {
	t.Helper()

	counter := &callCounter{}
	server := httptest.NewServer(counter.wrap(handler))
	t.Cleanup(server.Close)

	client, err := convai.NewClient(
		convai.WithAPIKey("test-api-key"),
		convai.WithBaseURL(server.URL),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, counter
}

func TestNewClient_MissingAPIKey(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "")

	_, err := convai.NewClient()

	var argErr *convai.ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("got %v, want *ArgumentError", err)
	}
	if argErr.Name != "api_key" {
		t.Errorf("Name = %q, want %q", argErr.Name, "api_key")
	}
}

func TestNewClient_APIKeyFromEnvironment(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "env-key")

	client, err := convai.NewClient()
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.BaseURL() != convai.DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", client.BaseURL(), convai.DefaultBaseURL)
	}
}

func TestNewClient_BaseURLFromEnvironment(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "env-key")
	t.Setenv("ELEVENLABS_BASE_URL", "https://staging.example.com/")

	client, err := convai.NewClient()
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.BaseURL() != "https://staging.example.com" {
		t.Errorf("BaseURL() = %q, trailing slash should be trimmed", client.BaseURL())
	}
}

func TestClient_SendsAPIKeyHeader(t *testing.T) {
	var gotKey, gotAgent string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("xi-api-key")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	if _, err := client.User.Get(context.Background()); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotKey != "test-api-key" {
		t.Errorf("xi-api-key = %q", gotKey)
	}
	if gotAgent == "" {
		t.Error("User-Agent header not set")
	}
}

func TestClient_RequestIDInterceptor(t *testing.T) {
	seen := map[string]bool{}
	var client *convai.Client
	client, _ = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			t.Error("X-Request-Id not set")
		}
		seen[id] = true
		w.Write([]byte(`{}`))
	})

	// Rebuild with the interceptor against the same base URL.
	client, err := convai.NewClient(
		convai.WithAPIKey("test-api-key"),
		convai.WithBaseURL(client.BaseURL()),
		convai.WithInterceptors(convai.RequestIDInterceptor()),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := client.User.Get(context.Background()); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
	}
	if len(seen) != 2 {
		t.Errorf("expected 2 distinct request IDs, saw %d", len(seen))
	}
}
