package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/techstore/assistant/internal/config"
	"github.com/techstore/assistant/internal/domain"
)

// Ollama generates replies through a local Ollama instance. The generate
// endpoint takes a single prompt string, so the system instruction and
// history are flattened into a transcript.
type Ollama struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOllama(baseURL, model string) *Ollama {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2"
	}
	return &Ollama{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: config.GeneratorTimeout},
	}
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (g *Ollama) Generate(ctx context.Context, genReq Request) (string, error) {
	var prompt strings.Builder
	prompt.WriteString(genReq.SystemPrompt)
	prompt.WriteString("\n\nConversation:\n")
	for _, t := range genReq.History {
		role := "User"
		if t.Role == domain.RoleAssistant {
			role = "Assistant"
		}
		fmt.Fprintf(&prompt, "%s: %s\n", role, t.Content)
	}
	fmt.Fprintf(&prompt, "User: %s\nAssistant:", genReq.Message)

	payload, err := json.Marshal(ollamaRequest{
		Model:  g.model,
		Prompt: prompt.String(),
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var genResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return strings.TrimSpace(genResp.Response), nil
}
