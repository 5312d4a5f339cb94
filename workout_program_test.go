package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"lg/fitcoach-go-api/internal/calstore"
	"lg/fitcoach-go-api/internal/workout"
)

const sampleWorkout = "Here is your weekly workout program:\n\n" +
	"Monday: Chest Day (~350 kcal)\n- Bench press 3 sets\n" +
	"Tuesday: Rest\n" +
	"Wednesday: Running 30 min\n" +
	"Sunday: -\n"

func TestParseWorkout_Success(t *testing.T) {
	at := setupAPITest(t)

	w := at.do("POST", "/api/programs/workout/parse", `{"text":`+jsonString(sampleWorkout)+`}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp workoutResponse
	decodeBody(t, w, &resp)
	if resp.BodyweightKG != workout.DefaultBodyweightKg {
		t.Errorf("expected default bodyweight, got %v", resp.BodyweightKG)
	}
	if resp.Program[workout.Monday] != "Chest Day\n- Bench press 3 sets" {
		t.Errorf("unexpected monday %q", resp.Program[workout.Monday])
	}
	if resp.Calories[workout.Monday] != 350 {
		t.Errorf("expected monday 350, got %d", resp.Calories[workout.Monday])
	}
	// 9.8 MET × 70 kg × 0.5 h = 343 → 345
	if resp.Calories[workout.Wednesday] != 345 {
		t.Errorf("expected wednesday 345, got %d", resp.Calories[workout.Wednesday])
	}
	if _, ok := resp.Calories[workout.Tuesday]; ok {
		t.Error("expected no entry for a rest day")
	}

	stored, err := at.store.Load(t.Context(), "1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored[workout.Monday] != 350 || stored[workout.Wednesday] != 345 || len(stored) != 2 {
		t.Errorf("calorie map not persisted: %v", stored)
	}
}

func TestParseWorkout_BodyweightOverride(t *testing.T) {
	at := setupAPITest(t)

	w := at.do("POST", "/api/programs/workout/parse", `{"text":"Wednesday: Running 30 min","bodyweight_kg":80}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp workoutResponse
	decodeBody(t, w, &resp)
	// 9.8 × 80 × 0.5 = 392 → 390
	if resp.Calories[workout.Wednesday] != 390 {
		t.Errorf("expected 390, got %d", resp.Calories[workout.Wednesday])
	}
}

func TestParseWorkout_Validation(t *testing.T) {
	at := setupAPITest(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"malformed json", `{"text":`, "invalid request body"},
		{"missing text", `{}`, "text is required"},
		{"blank text", `{"text":"   "}`, "text is required"},
		{"negative bodyweight", `{"text":"Monday: Squat","bodyweight_kg":-1}`, "bodyweight_kg must be between 0 and 700"},
		{"huge bodyweight", `{"text":"Monday: Squat","bodyweight_kg":9000}`, "bodyweight_kg must be between 0 and 700"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := at.do("POST", "/api/programs/workout/parse", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if got := errorMessage(t, w); got != tc.want {
				t.Errorf("expected error %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseWorkout_StoreDownStillReturnsResult(t *testing.T) {
	at := setupAPITest(t)
	at.redis.Close()

	w := at.do("POST", "/api/programs/workout/parse", `{"text":"Monday: Chest Day (~300 kcal)"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp workoutResponse
	decodeBody(t, w, &resp)
	if resp.Calories[workout.Monday] != 300 {
		t.Errorf("expected 300, got %d", resp.Calories[workout.Monday])
	}
}

/* ─── Generate ───────────────────────────────────────────────────────── */

func TestGenerateWorkout_Success(t *testing.T) {
	at := setupAPITest(t)
	at.setMock(http.StatusOK, openAIChatResponse("Pazartesi: Bacak Günü (~400 kcal)\nSquat 4x10\nSalı: Dinlenme\nÇarşamba: Koşu 30 dk"))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := at.do("POST", "/api/programs/workout/generate", `{"goal":"lose fat","days_per_week":2,"locale":"tr-TR"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp workoutResponse
	decodeBody(t, w, &resp)
	if resp.Program[workout.Monday] != "Bacak Günü\nSquat 4x10" {
		t.Errorf("unexpected monday %q", resp.Program[workout.Monday])
	}
	if resp.Calories[workout.Monday] != 400 || resp.Calories[workout.Wednesday] != 345 {
		t.Errorf("unexpected calories %v", resp.Calories)
	}

	req := at.lastRequest()
	if req.Model != "test-model" {
		t.Errorf("expected configured model, got %q", req.Model)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages %+v", req.Messages)
	}
	for _, want := range []string{"Türkçe", "Pazartesi", "Plan 2 training days"} {
		if !contains(req.Messages[0].Content, want) {
			t.Errorf("system prompt missing %q:\n%s", want, req.Messages[0].Content)
		}
	}
	if !contains(req.Messages[1].Content, "Goal: lose fat") {
		t.Errorf("user prompt missing goal: %q", req.Messages[1].Content)
	}

	stored, _ := at.store.Load(t.Context(), "1")
	if stored[workout.Monday] != 400 {
		t.Errorf("expected generated map to be stored, got %v", stored)
	}
}

func TestGenerateWorkout_LLMFailure(t *testing.T) {
	at := setupAPITest(t)
	at.setMock(http.StatusInternalServerError, map[string]string{"error": "boom"})
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := at.do("POST", "/api/programs/workout/generate", `{"goal":"strength"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	if got := errorMessage(t, w); got != "llm request failed" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestGenerateWorkout_MissingAPIKey(t *testing.T) {
	at := setupAPITest(t)
	t.Setenv("OPENAI_API_KEY", "")

	w := at.do("POST", "/api/programs/workout/generate", `{"goal":"strength"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGenerateWorkout_Validation(t *testing.T) {
	at := setupAPITest(t)

	for _, body := range []string{`{}`, `{"goal":" "}`, `{"goal":"x","days_per_week":8}`, `{"goal":"x","bodyweight_kg":-3}`} {
		w := at.do("POST", "/api/programs/workout/generate", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestGenerateWorkout_DaysPerWeekRange(t *testing.T) {
	at := setupAPITest(t)

	for _, days := range []string{"8", "-1"} {
		w := at.do("POST", "/api/programs/workout/generate", `{"goal":"x","days_per_week":`+days+`}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", days, w.Code)
		}
		if msg := errorMessage(t, w); msg != "days_per_week must be between 1 and 7, or omitted for 3" {
			t.Errorf("%s: unexpected message %q", days, msg)
		}
	}

	at.setMock(http.StatusOK, openAIChatResponse("Monday: Run 30 min"))
	t.Setenv("OPENAI_API_KEY", "test-key")
	w := at.do("POST", "/api/programs/workout/generate", `{"goal":"x","days_per_week":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if sys := at.lastRequest().Messages[0].Content; !contains(sys, "Plan 3 training days") {
		t.Errorf("expected three-day default in prompt:\n%s", sys)
	}
}

func TestGetWorkoutProgram_NoneSaved(t *testing.T) {
	at := setupAPITest(t)

	w := at.do("GET", "/api/programs/workout", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

/* ─── Estimate ───────────────────────────────────────────────────────── */

func TestEstimateWorkoutDay(t *testing.T) {
	at := setupAPITest(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"running with override", `{"content":"Running 30 min","bodyweight_kg":80}`, 390},
		{"default bodyweight", `{"content":"Running 30 min"}`, 345},
		{"rest day", `{"content":"Rest"}`, 0},
		{"empty", `{"content":""}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := at.do("POST", "/api/programs/workout/estimate", tc.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			var resp struct {
				Calories int `json:"calories"`
			}
			decodeBody(t, w, &resp)
			if resp.Calories != tc.want {
				t.Errorf("expected %d, got %d", tc.want, resp.Calories)
			}
		})
	}
}

/* ─── Calorie map ────────────────────────────────────────────────────── */

func TestWorkoutCalories_RoundTrip(t *testing.T) {
	at := setupAPITest(t)

	w := at.do("GET", "/api/programs/workout/calories", "")
	if w.Code != http.StatusOK || w.Body.String() != "{}" {
		t.Fatalf("expected empty map, got %d %s", w.Code, w.Body.String())
	}

	w = at.do("PUT", "/api/programs/workout/calories/Pazartesi", `{"kcal":250}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = at.do("PUT", "/api/programs/workout/calories/friday", `{"kcal":200}`)
	if w.Body.String() != `{"friday":200,"monday":250}` {
		t.Errorf("unexpected map %s", w.Body.String())
	}

	w = at.do("PUT", "/api/programs/workout/calories/monday", `{"kcal":0}`)
	if w.Body.String() != `{"friday":200}` {
		t.Errorf("expected monday cleared, got %s", w.Body.String())
	}

	w = at.do("GET", "/api/programs/workout/calories", "")
	if w.Body.String() != `{"friday":200}` {
		t.Errorf("unexpected stored map %s", w.Body.String())
	}

	w = at.do("DELETE", "/api/programs/workout/calories", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if at.redis.Exists("user:1:workout_calories") {
		t.Error("expected key to be deleted")
	}
}

func TestPutWorkoutCalorieDay_RoundsToFive(t *testing.T) {
	at := setupAPITest(t)

	w := at.do("PUT", "/api/programs/workout/calories/monday", `{"kcal":352}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != `{"monday":350}` {
		t.Errorf("expected 350, got %s", w.Body.String())
	}
	stored, _ := at.store.Load(t.Context(), "1")
	if stored[workout.Monday] != 350 {
		t.Errorf("expected stored 350, got %v", stored)
	}
}

// concurrentWriter rewrites the calorie key after every GET, so each
// WATCH transaction sees a change from another writer.
type concurrentWriter struct{ mr *miniredis.Miniredis }

func (cw concurrentWriter) DialHook(next redis.DialHook) redis.DialHook { return next }

func (cw concurrentWriter) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if cmd.Name() == "get" {
			cw.mr.Set(calstore.Key("1"), `{"sunday":100}`)
		}
		return err
	}
}

func (cw concurrentWriter) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestPutWorkoutCalorieDay_Conflict(t *testing.T) {
	at := setupAPITest(t)
	at.rdb.AddHook(concurrentWriter{mr: at.redis})

	w := at.do("PUT", "/api/programs/workout/calories/monday", `{"kcal":300}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if got := errorMessage(t, w); got != "calorie map changed, retry" {
		t.Errorf("unexpected error %q", got)
	}
}

func TestPutWorkoutCalorieDay_Validation(t *testing.T) {
	at := setupAPITest(t)

	cases := []struct {
		name string
		path string
		body string
	}{
		{"unknown day", "/api/programs/workout/calories/someday", `{"kcal":100}`},
		{"negative kcal", "/api/programs/workout/calories/monday", `{"kcal":-5}`},
		{"missing kcal", "/api/programs/workout/calories/monday", `{}`},
		{"malformed", "/api/programs/workout/calories/monday", `{"kcal":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := at.do("PUT", tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestWorkoutCalories_StoreDown(t *testing.T) {
	at := setupAPITest(t)
	at.redis.Close()

	if w := at.do("GET", "/api/programs/workout/calories", ""); w.Code != http.StatusInternalServerError {
		t.Errorf("GET: expected 500, got %d", w.Code)
	}
	if w := at.do("PUT", "/api/programs/workout/calories/monday", `{"kcal":10}`); w.Code != http.StatusInternalServerError {
		t.Errorf("PUT: expected 500, got %d", w.Code)
	}
	if w := at.do("DELETE", "/api/programs/workout/calories", ""); w.Code != http.StatusInternalServerError {
		t.Errorf("DELETE: expected 500, got %d", w.Code)
	}
}
