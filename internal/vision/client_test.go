package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}

func completionJSON(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"content": content}, "finish_reason": "stop"}},
	})
	return string(b)
}

func TestComplete_SendsImageAndAuth(t *testing.T) {
	var got chatRequest
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" { t.Errorf("path=%s", r.URL.Path) }
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionJSON(`{"ok":true}`)))
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL + "/", APIKey: "sk-test", Backoff: time.Millisecond})
	out, err := c.Complete(testCtx(t), Request{Prompt: "hi", Image: []byte{0xff, 0xd8}, ImageMIME: "image/png", Detail: "low", MaxTokens: 500, Temperature: 0.3})
	if err != nil { t.Fatalf("complete: %v", err) }
	if out != `{"ok":true}` { t.Fatalf("out=%q", out) }
	if auth != "Bearer sk-test" { t.Fatalf("auth=%q", auth) }
	if got.Model != "gpt-4o" || got.MaxTokens != 500 { t.Fatalf("payload=%+v", got) }
	parts := got.Messages[0].Content
	if len(parts) != 2 || parts[1].ImageURL == nil { t.Fatalf("expected text+image parts, got %+v", parts) }
	if !strings.HasPrefix(parts[1].ImageURL.URL, "data:image/png;base64,") || parts[1].ImageURL.Detail != "low" {
		t.Fatalf("image part=%+v", parts[1].ImageURL)
	}
}

func TestComplete_TextOnly(t *testing.T) {
	var got chatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(completionJSON("plan")))
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL, Model: "gpt-4o-mini"})
	if _, err := c.Complete(testCtx(t), Request{Prompt: "treino"}); err != nil { t.Fatalf("complete: %v", err) }
	if got.Model != "gpt-4o-mini" || len(got.Messages[0].Content) != 1 { t.Fatalf("payload=%+v", got) }
}

func TestComplete_RetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(completionJSON("done")))
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL, MaxRetries: 3, Backoff: time.Millisecond})
	out, err := c.Complete(testCtx(t), Request{Prompt: "x"})
	if err != nil { t.Fatalf("complete: %v", err) }
	if out != "done" || calls.Load() != 3 { t.Fatalf("out=%q calls=%d", out, calls.Load()) }
}

func TestComplete_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL, MaxRetries: 3, Backoff: time.Millisecond})
	_, err := c.Complete(testCtx(t), Request{Prompt: "x"})
	if err == nil || !IsUpstream(err) { t.Fatalf("expected upstream error, got %v", err) }
	if calls.Load() != 1 { t.Fatalf("calls=%d", calls.Load()) }
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL, MaxRetries: 2, Backoff: time.Millisecond})
	if _, err := c.Complete(testCtx(t), Request{Prompt: "x"}); err != ErrEmptyCompletion {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestComplete_RequestTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer ts.Close()

	c := New(Config{BaseURL: ts.URL, RequestTimeout: 50 * time.Millisecond, Backoff: time.Millisecond})
	if _, err := c.Complete(context.Background(), Request{Prompt: "x"}); err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestComplete_NilClient(t *testing.T) {
	var c *Client
	if _, err := c.Complete(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error from nil client")
	}
}
