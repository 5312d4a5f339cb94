package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"lg/fitcoach-go-api/internal/locale"
)

/* ─── OpenAI prompt templates ────────────────────────────────────────── */

// workoutSystemPromptTemplate asks for the day-header layout the workout
// parser understands. Placeholders: language, day names, days per week.
const workoutSystemPromptTemplate = `You are a personal trainer writing a weekly workout program.
Write in %s. Use exactly these day headers, each followed by a colon, one per line: %s.
Plan %d training days; write the rest marker "%s" for the other days.
On the first line after each training day header, give a short title followed by the estimated energy cost in the form (~NNN kcal).
List one exercise per line with sets, reps or duration, e.g. "Squat 3 sets 10 reps" or "Running 30 min".
Do not add an introduction or a summary.`

// mealSystemPromptTemplate asks for the bold-title layout the meal parser
// understands. Placeholders: language, slot headers, field labels.
const mealSystemPromptTemplate = `You are a nutritionist writing a one-day meal plan.
Write in %s. Group meals under these headers, one per line: %s.
Start each meal with a bold title line such as **%s: <name>**.
Under each title write these fields, each on its own line starting with "- ": %s.
List ingredients separated by commas and number the recipe steps.
Do not add an introduction or a summary.`

/* ─── OpenAI HTTP client ─────────────────────────────────────────────── */

// openAIMessage is a single message in the OpenAI chat completions request.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest is the request body for the OpenAI chat completions API.
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

// callOpenAI sends a chat completions request and returns the raw content string
// from the first choice. Uses raw net/http to avoid pulling in the OpenAI SDK.
func callOpenAI(ctx context.Context, baseURL, model string, messages []openAIMessage) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	bodyBytes, err := json.Marshal(openAIRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	// Whole-week programs take far longer than a single completion.
	client := &http.Client{Timeout: 90 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return content, nil
}

/* ─── Prompt builders ────────────────────────────────────────────────── */

// buildWorkoutMessages renders the workout prompt in the requested locale.
func buildWorkoutMessages(l locale.Locale, req generateWorkoutRequest, profileLine string) []openAIMessage {
	pack, _ := locale.Get(l)
	days := make([]string, 7)
	for i := range days {
		days[i] = locale.DisplayDay(l, i)
	}
	rest := "-"
	if len(pack.RestMarkers) > 0 {
		rest = titleCase(pack.RestMarkers[0])
	}
	perWeek := req.DaysPerWeek
	if perWeek < 1 || perWeek > 7 {
		perWeek = 3
	}

	system := fmt.Sprintf(workoutSystemPromptTemplate, pack.Name, strings.Join(days, ", "), perWeek, rest)
	return []openAIMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: userBrief(req.Goal, req.Notes, profileLine)},
	}
}

// buildMealMessages renders the meal prompt in the requested locale.
func buildMealMessages(l locale.Locale, req generateMealRequest, profileLine string) []openAIMessage {
	pack, _ := locale.Get(l)
	var slots []string
	for _, key := range []string{"breakfast", "lunch", "dinner", "snack"} {
		if names := pack.MealSlots[key]; len(names) > 0 {
			slots = append(slots, titleCase(names[0]))
		}
	}
	fields := []string{
		titleCase(first(pack.Ingredients)) + ":",
		titleCase(first(pack.Recipe)) + ":",
		titleCase(first(pack.Calories)) + ":",
		titleCase(first(pack.Macros)) + ":",
	}

	system := fmt.Sprintf(mealSystemPromptTemplate, pack.Name, strings.Join(slots, ", "), first(slots), strings.Join(fields, " "))
	brief := userBrief(req.Goal, req.Notes, profileLine)
	if req.CalorieTarget > 0 {
		brief += fmt.Sprintf("\nDaily calorie target: %d kcal", req.CalorieTarget)
	}
	return []openAIMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: brief},
	}
}

// profileSummary describes the user's body for the prompt. Without a profile
// only the resolved bodyweight is known.
func profileSummary(p *userProfile, bodyweightKG float64) string {
	if p == nil {
		return fmt.Sprintf("Weight: %.0f kg", bodyweightKG)
	}
	var parts []string
	if p.Sex != nil {
		parts = append(parts, "Sex: "+*p.Sex)
	}
	if p.DateOfBirth != nil {
		parts = append(parts, fmt.Sprintf("Age: %d", time.Now().Year()-p.DateOfBirth.Year()))
	}
	if p.HeightCM != nil {
		parts = append(parts, fmt.Sprintf("Height: %.0f cm", *p.HeightCM))
	}
	parts = append(parts, fmt.Sprintf("Weight: %.0f kg", bodyweightKG))
	if p.ActivityLevel != nil {
		parts = append(parts, "Activity: "+*p.ActivityLevel)
	}
	return strings.Join(parts, ", ")
}

func userBrief(goal, notes, profileLine string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s", strings.TrimSpace(goal))
	if profileLine != "" {
		fmt.Fprintf(&b, "\n%s", profileLine)
	}
	if n := strings.TrimSpace(notes); n != "" {
		fmt.Fprintf(&b, "\nNotes: %s", n)
	}
	return b.String()
}

// titleCase upper-cases the first letter of a folded word list entry.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func first(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
