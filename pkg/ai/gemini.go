package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GeminiService implements PlannerService against the Google generative
// language REST API.
type GeminiService struct {
	ApiKey string
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{ApiKey: apiKey}
}

func (g *GeminiService) GenerateRoadmap(ctx context.Context, goal string, days int) ([]PlannedDay, error) {
	raw, err := g.generateContent(ctx, roadmapPrompt(goal, days))
	if err != nil {
		return nil, err
	}
	return parsePlannedDays(raw)
}

func (g *GeminiService) AdjustRoadmap(ctx context.Context, goal string, days, currentDay int, feedback string) ([]PlannedDay, error) {
	raw, err := g.generateContent(ctx, adjustPrompt(goal, days, currentDay, feedback))
	if err != nil {
		return nil, err
	}
	return parsePlannedDays(raw)
}

func (g *GeminiService) generateContent(ctx context.Context, prompt string) (string, error) {
	// gemini-2.5-flash: fast enough for interactive roadmap generation
	url := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent?key=" + g.ApiKey

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API error: %s", string(respBody))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	// Parse text from the first candidate
	if c, ok := result["candidates"].([]interface{}); ok && len(c) > 0 {
		if cand, ok := c[0].(map[string]interface{}); ok {
			if content, ok := cand["content"].(map[string]interface{}); ok {
				if parts, ok := content["parts"].([]interface{}); ok && len(parts) > 0 {
					if part, ok := parts[0].(map[string]interface{}); ok {
						if text, ok := part["text"].(string); ok {
							return text, nil
						}
					}
				}
			}
		}
	}
	return "", fmt.Errorf("no content returned")
}
