package httpgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardwise/card-assistant/internal/generative"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestClient_Generate_Success(t *testing.T) {
	var got generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate" {
			t.Errorf("request path: got %q, want /generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"text":       "Most premium cards waive the annual fee on high yearly spends.",
			"confidence": 82,
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	resp, err := client.Generate(context.Background(), generative.Request{
		Query:   "is the annual fee waivable",
		Context: "category: fees",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.Text == "" {
		t.Error("expected non-empty text")
	}
	if resp.Confidence != 82 {
		t.Errorf("confidence: got %d, want 82", resp.Confidence)
	}
	if got.Query != "is the annual fee waivable" {
		t.Errorf("forwarded query: got %q", got.Query)
	}
	if got.SystemPrompt != generative.SystemPrompt {
		t.Error("system prompt not forwarded")
	}
}

func TestClient_Generate_DefaultsConfidence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "Some answer."})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	resp, err := client.Generate(context.Background(), generative.Request{Query: "q"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Confidence != generative.DefaultConfidence {
		t.Errorf("confidence: got %d, want default %d", resp.Confidence, generative.DefaultConfidence)
	}
}

func TestClient_Generate_EmptyTextIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "", "confidence": 90})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Generate(context.Background(), generative.Request{Query: "q"}); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestClient_Generate_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Generate(context.Background(), generative.Request{Query: "q"}); err == nil {
		t.Error("expected error for 503 response")
	}
}
