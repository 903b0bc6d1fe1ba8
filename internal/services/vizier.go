package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NotConfiguredMessage is returned in place of an analysis when no API key
// was resolved at startup. Returning a readable string instead of failing
// the request is intentional product behavior; callers and the test page get
// a message rather than a 5xx.
const NotConfiguredMessage = "OpenAI client is not initialized. Please check your API key and environment variables."

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// Fixed sampling parameters for the analysis prompt.
	analysisTemperature = 0.85
	analysisMaxTokens   = 2000
)

// Vizier is the completion client behind game analysis. It is constructed
// once at startup and shared read-only across requests.
type Vizier struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewVizier creates a completion client. An empty apiKey leaves the client
// in a degraded, not-ready state rather than failing construction.
func NewVizier(apiKey, model, baseURL string, timeout time.Duration) *Vizier {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Vizier{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ready reports whether an API key was configured.
func (v *Vizier) Ready() bool {
	return v.apiKey != ""
}

// Request to the chat-completions endpoint
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response from the chat-completions endpoint
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// AnalyzeGame sends the vizier prompt for one game description and returns
// the generated analysis text. The call blocks for the upstream round-trip,
// bounded by the client timeout and the request context.
func (v *Vizier) AnalyzeGame(ctx context.Context, description string) (string, error) {
	if !v.Ready() {
		return NotConfiguredMessage, nil
	}

	reqBody := chatRequest{
		Model: v.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: BuildPrompt(description)},
		},
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		v.baseURL+"/chat/completions",
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", v.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from OpenAI API")
	}

	return chatResp.Choices[0].Message.Content, nil
}
