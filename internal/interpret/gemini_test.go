package interpret

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dear-data/vjournal/internal/domain"
)

// fakeGeminiServer responds like the generateContent endpoint, returning the
// given text as the single candidate.
func fakeGeminiServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("Expected API key in query string")
		}

		var body geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		if len(body.Contents) == 0 || len(body.Contents[0].Parts) == 0 {
			t.Error("Expected prompt in request body")
		}

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		data, _ := json.Marshal(resp)
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(data); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
}

func TestGeminiInterpret(t *testing.T) {
	srv := fakeGeminiServer(t, validResponse)
	defer srv.Close()

	g := NewGemini(Config{
		APIKey:   "test-key",
		Endpoint: srv.URL,
	})

	interp, err := g.Interpret(context.Background(), Request{
		Text: "Mon: quiet. Tue: busy.",
		Mode: domain.ModeAuto,
	})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}

	if interp.JournalType != "week" {
		t.Errorf("Expected journal_type week, got %q", interp.JournalType)
	}
}

func TestGeminiInterpretFencedResponse(t *testing.T) {
	srv := fakeGeminiServer(t, "```json\n"+validResponse+"\n```")
	defer srv.Close()

	g := NewGemini(Config{APIKey: "test-key", Endpoint: srv.URL})
	if _, err := g.Interpret(context.Background(), Request{Text: "hello", Mode: domain.ModeAuto}); err != nil {
		t.Fatalf("Interpret failed on fenced response: %v", err)
	}
}

func TestGeminiInterpretMissingKey(t *testing.T) {
	g := NewGemini(Config{})
	if g.Enabled() {
		t.Error("Expected interpreter to be disabled without a key")
	}
	if _, err := g.Interpret(context.Background(), Request{Text: "hi"}); err == nil {
		t.Error("Expected error without API key")
	}
}

func TestGeminiInterpretAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		if _, err := w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer srv.Close()

	g := NewGemini(Config{APIKey: "test-key", Endpoint: srv.URL})
	_, err := g.Interpret(context.Background(), Request{Text: "hi", Mode: domain.ModeAuto})
	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("Expected status code in error, got %v", err)
	}
}

func TestGeminiInterpretEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"candidates":[]}`)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	defer srv.Close()

	g := NewGemini(Config{APIKey: "test-key", Endpoint: srv.URL})
	if _, err := g.Interpret(context.Background(), Request{Text: "hi", Mode: domain.ModeAuto}); err == nil {
		t.Error("Expected error for empty candidates")
	}
}
