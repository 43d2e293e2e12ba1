package generator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstore/assistant/internal/domain"
)

func TestOllamaGenerate(t *testing.T) {
	var gotReq ollamaRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Write([]byte(`{"response":"  We carry the iPhone 13.  "}`))
	}))
	defer server.Close()

	g := NewOllama(server.URL, "llama3.2")
	reply, err := g.Generate(t.Context(), Request{
		SystemPrompt: "You are a shopping assistant.",
		History: []domain.Turn{
			{Role: domain.RoleUser, Content: "hi"},
			{Role: domain.RoleAssistant, Content: "hello"},
		},
		Message: "do you have iphones?",
	})
	require.NoError(t, err)

	assert.Equal(t, "We carry the iPhone 13.", reply)
	assert.Equal(t, "llama3.2", gotReq.Model)
	assert.False(t, gotReq.Stream)

	// History and the new message are flattened into one transcript.
	assert.Contains(t, gotReq.Prompt, "You are a shopping assistant.")
	assert.Contains(t, gotReq.Prompt, "User: hi\n")
	assert.Contains(t, gotReq.Prompt, "Assistant: hello\n")
	assert.Contains(t, gotReq.Prompt, "User: do you have iphones?\nAssistant:")
}

func TestOllamaGenerateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	g := NewOllama(server.URL, "llama3.2")
	_, err := g.Generate(t.Context(), Request{Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestNewOllamaDefaults(t *testing.T) {
	g := NewOllama("", "")
	assert.Equal(t, "http://localhost:11434", g.baseURL)
	assert.Equal(t, "llama3.2", g.model)
}
