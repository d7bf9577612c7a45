package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaService implements PlannerService using a local Ollama model
type OllamaService struct {
	BaseURL string
	Model   string
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3"
	}
	return &OllamaService{BaseURL: baseURL, Model: model}
}

func (o *OllamaService) GenerateRoadmap(ctx context.Context, goal string, days int) ([]PlannedDay, error) {
	raw, err := o.generate(ctx, roadmapPrompt(goal, days))
	if err != nil {
		return nil, err
	}
	return parsePlannedDays(raw)
}

func (o *OllamaService) AdjustRoadmap(ctx context.Context, goal string, days, currentDay int, feedback string) ([]PlannedDay, error) {
	raw, err := o.generate(ctx, adjustPrompt(goal, days, currentDay, feedback))
	if err != nil {
		return nil, err
	}
	return parsePlannedDays(raw)
}

func (o *OllamaService) generate(ctx context.Context, prompt string) (string, error) {
	url := o.BaseURL + "/api/generate"

	payload := map[string]interface{}{
		"model":  o.Model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.3,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return result.Response, nil
}
