package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func completionEnvelope(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return b
}

func newTestVision(t *testing.T, handler http.HandlerFunc, retry RetryPolicy) (*VisionService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewVisionService(testAPIKey, "gpt-4o", srv.URL, 5*time.Second, retry), srv
}

func TestVisionStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   AnalysisCode
	}{
		{http.StatusUnauthorized, CodeUpstreamAuth},
		{http.StatusTooManyRequests, CodeUpstreamRateLimited},
		{http.StatusRequestEntityTooLarge, CodeUpstreamPayloadTooLarge},
		{http.StatusInternalServerError, CodeUpstreamError},
	}

	for _, tc := range cases {
		svc, _ := newTestVision(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"error":{"message":"nope"}}`))
		}, RetryPolicy{MaxAttempts: 1, BaseDelay: time.Millisecond})

		_, err := svc.Complete(context.Background(), "aGVsbG8=")
		var ae *AnalysisError
		if !errors.As(err, &ae) {
			t.Fatalf("status %d: expected *AnalysisError, got %v", tc.status, err)
		}
		if ae.Code != tc.want {
			t.Fatalf("status %d: code = %s, want %s", tc.status, ae.Code, tc.want)
		}
	}
}

func TestVisionRetriesRateLimit(t *testing.T) {
	calls := 0
	svc, _ := newTestVision(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write(completionEnvelope("the reply"))
	}, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond})

	content, err := svc.Complete(context.Background(), "aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
	if content != "the reply" {
		t.Fatalf("content = %q", content)
	}
}

func TestVisionDoesNotRetryAuthFailure(t *testing.T) {
	calls := 0
	svc, _ := newTestVision(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}, RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond})

	_, err := svc.Complete(context.Background(), "aGVsbG8=")
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestVisionRequestShape(t *testing.T) {
	var got chatRequest
	var auth string
	svc, _ := newTestVision(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)
		w.Write(completionEnvelope("ok"))
	}, RetryPolicy{MaxAttempts: 1, BaseDelay: time.Millisecond})

	if _, err := svc.Complete(context.Background(), "aGVsbG8="); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth != "Bearer "+testAPIKey {
		t.Fatalf("auth header = %q", auth)
	}
	if got.Model != "gpt-4o" || got.MaxTokens != 1500 || got.Temperature != 0.1 {
		t.Fatalf("request = %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Fatalf("messages = %+v", got.Messages)
	}
}

func TestVisionEmptyChoices(t *testing.T) {
	svc, _ := newTestVision(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}, RetryPolicy{MaxAttempts: 1, BaseDelay: time.Millisecond})

	_, err := svc.Complete(context.Background(), "aGVsbG8=")
	var ae *AnalysisError
	if !errors.As(err, &ae) || ae.Code != CodeUpstreamError {
		t.Fatalf("err = %v, want %s", err, CodeUpstreamError)
	}
}
