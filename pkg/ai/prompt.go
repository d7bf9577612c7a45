package ai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// roadmapPrompt builds the generation prompt shared by all providers so the
// plans stay consistent when the fallback router switches providers.
func roadmapPrompt(goal string, days int) string {
	return fmt.Sprintf(`You are a study and productivity coach. Create a day-by-day roadmap to reach the goal below.

RULES:
- Exactly %d entries, "day" numbered 1 to %d with no gaps.
- "task" is 2-4 concrete subtasks for that day, separated by "; ".
- "difficulty" is one of: easy, medium, hard. Ramp up gradually.
- Respond with ONLY a JSON array, no prose, no markdown fences.

EXAMPLE ENTRY:
{"day": 1, "task": "Read chapter 1; Take notes; Solve 5 warm-up problems", "difficulty": "easy"}

GOAL:
%s

JSON:`, days, days, goal)
}

// adjustPrompt asks for a re-plan of the remaining days only.
func adjustPrompt(goal string, days, currentDay int, feedback string) string {
	return fmt.Sprintf(`You are a study and productivity coach. A user is on day %d of a %d-day roadmap toward the goal below and wants the remaining days re-planned.

USER FEEDBACK:
%s

RULES:
- Output entries for days %d to %d only, "day" numbered accordingly.
- "task" is 2-4 concrete subtasks separated by "; ".
- "difficulty" is one of: easy, medium, hard.
- Respond with ONLY a JSON array, no prose, no markdown fences.

GOAL:
%s

JSON:`, currentDay, days, feedback, currentDay+1, days, goal)
}

// parsePlannedDays extracts the JSON array from a model response. Models
// routinely wrap JSON in markdown fences or add prose, so the parser cuts
// from the first '[' to the last ']' before unmarshalling.
func parsePlannedDays(raw string) ([]PlannedDay, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in model response")
	}

	var plan []PlannedDay
	if err := json.Unmarshal([]byte(raw[start:end+1]), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse roadmap JSON: %w", err)
	}
	if len(plan) == 0 {
		return nil, fmt.Errorf("model returned an empty roadmap")
	}

	sort.Slice(plan, func(i, j int) bool { return plan[i].Day < plan[j].Day })
	for _, d := range plan {
		if d.Day < 1 || strings.TrimSpace(d.Task) == "" {
			return nil, fmt.Errorf("model returned an invalid roadmap entry (day %d)", d.Day)
		}
	}
	return plan, nil
}
