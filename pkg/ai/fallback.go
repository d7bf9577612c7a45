package ai

import (
	"context"
	"fmt"
	"net"
	"strings"

	"dayscount-backend/pkg/logger"
)

// FallbackService routes planning calls to Gemini first (better structured
// output), falling back to a local Ollama model on connection or quota
// errors.
type FallbackService struct {
	gemini PlannerService
	ollama *OllamaService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(gemini PlannerService, ollama *OllamaService) *FallbackService {
	return &FallbackService{
		gemini: gemini,
		ollama: ollama,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

func (f *FallbackService) GenerateRoadmap(ctx context.Context, goal string, days int) ([]PlannedDay, error) {
	return f.route(ctx, func(p PlannerService) ([]PlannedDay, error) {
		return p.GenerateRoadmap(ctx, goal, days)
	})
}

func (f *FallbackService) AdjustRoadmap(ctx context.Context, goal string, days, currentDay int, feedback string) ([]PlannedDay, error) {
	return f.route(ctx, func(p PlannerService) ([]PlannedDay, error) {
		return p.AdjustRoadmap(ctx, goal, days, currentDay, feedback)
	})
}

func (f *FallbackService) route(ctx context.Context, call func(PlannerService) ([]PlannedDay, error)) ([]PlannedDay, error) {
	if f.gemini != nil {
		result, err := call(f.gemini)
		if err == nil {
			return result, nil
		}

		if f.ollama == nil {
			return nil, err
		}
		if isQuotaError(err) {
			logger.Log.Warnf("Gemini quota exhausted: %v, falling back to Ollama", err)
		} else if isConnectionError(err) {
			logger.Log.Warnf("Gemini unreachable: %v, falling back to Ollama", err)
		} else {
			logger.Log.Warnf("Gemini error: %v, falling back to Ollama", err)
		}
	}

	if f.ollama != nil {
		return call(f.ollama)
	}

	return nil, fmt.Errorf("no AI provider available")
}
