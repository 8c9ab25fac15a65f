package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// TestSerperClientSearch tests request shape and response decoding.
func TestSerperClientSearch(t *testing.T) {
	t.Parallel()

	t.Run("sends query and key and decodes organic results", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				http.Error(w, "method", http.StatusMethodNotAllowed)
				return
			}
			if r.Header.Get("X-API-KEY") != "test-key" {
				http.Error(w, "key", http.StatusUnauthorized)
				return
			}
			var body serperRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Q != `"sky is green" hoax` {
				http.Error(w, "query", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"searchParameters":{"q":"x"},"organic":[
				{"title":"First","link":"https://a.example/1","snippet":"one","position":1},
				{"title":"Second","link":"https://b.example/2","snippet":"two","position":2}
			]}`))
		}))
		defer srv.Close()

		c := NewSerperClient("test-key", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
		results, err := c.Search(context.Background(), `"sky is green" hoax`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Link != "https://a.example/1" || results[1].Snippet != "two" {
			t.Errorf("unexpected results: %+v", results)
		}
	})

	t.Run("missing organic field yields empty results", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"searchParameters":{}}`))
		}))
		defer srv.Close()

		c := NewSerperClient("test-key", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
		results, err := c.Search(context.Background(), "q")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "quota", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := NewSerperClient("test-key", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
		_, err := c.Search(context.Background(), "q")
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Errorf("expected ErrUnexpectedStatus, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		c := NewSerperClient("test-key", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
		_, err := c.Search(context.Background(), "q")
		if !errors.Is(err, ErrDecodeResponse) {
			t.Errorf("expected ErrDecodeResponse, got %v", err)
		}
	})

	t.Run("placeholder key issues no request", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := NewSerperClient("YOUR_SERPER_API_KEY", WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
		if c.Configured() {
			t.Error("placeholder key should not be configured")
		}
		_, err := c.Search(context.Background(), "q")
		if !errors.Is(err, ErrNotConfigured) {
			t.Errorf("expected ErrNotConfigured, got %v", err)
		}
		if calls.Load() != 0 {
			t.Errorf("expected no requests, got %d", calls.Load())
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewSerperClient("test-key", WithEndpoint("http://127.0.0.1:1"), WithRateLimit(0))
		if _, err := c.Search(ctx, "q"); err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

// TestIsUsableAPIKey tests placeholder and empty key detection.
func TestIsUsableAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"YOUR_SERPER_API_KEY", false},
		{"prefix-YOUR_SERPER-suffix", false},
		{"abc123", true},
	}

	for _, tt := range tests {
		if got := IsUsableAPIKey(tt.key); got != tt.want {
			t.Errorf("IsUsableAPIKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
