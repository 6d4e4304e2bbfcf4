package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

func newTestServer(t *testing.T, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode request body: %v", err)
			}
			*capture = body
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "hello from model"}}]
		}`))
	}))
}

func TestChatReturnsContent(t *testing.T) {
	server := newTestServer(t, nil)
	defer server.Close()

	adapter := NewOpenRouterAdapter(Config{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: server.URL,
	})

	resp, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if resp.Content != "hello from model" {
		t.Errorf("Content = %q, want %q", resp.Content, "hello from model")
	}
}

func TestChatJSONRequestsJSONFormat(t *testing.T) {
	var captured map[string]any
	server := newTestServer(t, &captured)
	defer server.Close()

	adapter := NewOpenRouterAdapter(Config{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: server.URL,
	})

	_, err := adapter.ChatJSON(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "json please"}},
	})
	if err != nil {
		t.Fatalf("ChatJSON() error: %v", err)
	}

	format, ok := captured["response_format"].(map[string]any)
	if !ok {
		t.Fatalf("request has no response_format: %v", captured)
	}
	if format["type"] != "json_object" {
		t.Errorf("response_format.type = %v, want json_object", format["type"])
	}
}

func TestChatEmptyChoicesFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	adapter := NewOpenRouterAdapter(Config{APIKey: "k", Model: "m", BaseURL: server.URL})
	_, err := adapter.Chat(context.Background(), output.ChatRequest{
		Messages: []entity.Message{{Role: entity.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}
