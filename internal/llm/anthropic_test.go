package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicProvider_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-haiku-4-5", body["model"])
		assert.Equal(t, float64(4096), body["max_tokens"])
		assert.Equal(t, 0.7, body["temperature"])
		assert.NotContains(t, body, "top_p")

		system, ok := body["system"].([]any)
		require.True(t, ok)
		require.Len(t, system, 1)
		assert.Equal(t, "system text", system[0].(map[string]any)["text"])

		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 1)
		assert.Equal(t, "user", messages[0].(map[string]any)["role"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-haiku-4-5",
			"content": [{"type": "text", "text": "Part one. "}, {"type": "text", "text": "Part two."}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 12, "output_tokens": 8}
		}`))
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key", srv.URL, "claude-haiku-4-5", srv.Client())

	resp, err := p.Complete(context.Background(), NewRequest("", "system text", "user text", DefaultGeneration()))
	require.NoError(t, err)
	assert.Equal(t, "Part one. Part two.", resp.Content)
	assert.Equal(t, "end_turn", resp.FinishReason)
	assert.Equal(t, 20, resp.Usage.TotalTokens)
}

func TestAnthropicProvider_Sampling(t *testing.T) {
	tests := []struct {
		name      string
		gen       Generation
		wantKey   string
		wantVal   float64
		absentKey string
	}{
		{"zero temperature is sent", Generation{MaxTokens: 10, Temperature: 0, TopP: 0.9}, "temperature", 0, "top_p"},
		{"prefer top_p", Generation{MaxTokens: 10, Temperature: 0.7, TopP: 0.9, PreferTopP: true}, "top_p", 0.9, "temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Contains(t, body, tt.wantKey)
				assert.Equal(t, tt.wantVal, body[tt.wantKey])
				assert.NotContains(t, body, tt.absentKey)

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[{"type":"text","text":"ok"}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`))
			}))
			defer srv.Close()

			p := NewAnthropicProvider("test-key", srv.URL, "m", srv.Client())
			_, err := p.Complete(context.Background(), NewRequest("", "s", "u", tt.gen))
			require.NoError(t, err)
		})
	}
}

func TestAnthropicProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"nope"}}`))
	}))
	defer srv.Close()

	p := NewAnthropicProvider("k", srv.URL, "", srv.Client())
	_, err := p.Complete(context.Background(), NewRequest("", "s", "u", DefaultGeneration()))
	assert.ErrorIs(t, err, ErrCompletionFailed)
}
