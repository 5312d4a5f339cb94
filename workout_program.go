package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lg/fitcoach-go-api/internal/calstore"
	"lg/fitcoach-go-api/internal/locale"
	"lg/fitcoach-go-api/internal/workout"
)

/* ─── Saved program helpers ──────────────────────────────────────────── */

// saveProgram stores raw program text. A nil pool (tests) is a no-op.
func (h *Handler) saveProgram(c *gin.Context, kind, text string) error {
	if h.db == nil {
		return nil
	}
	_, err := h.db.Exec(c,
		`INSERT INTO saved_programs (user_id, kind, raw_text)
		 VALUES (@userID, @kind, @rawText)`,
		pgx.NamedArgs{"userID": c.GetInt("user_id"), "kind": kind, "rawText": text})
	return err
}

// latestProgram returns the newest saved program of kind, or pgx.ErrNoRows.
func (h *Handler) latestProgram(c *gin.Context, kind string) (savedProgram, error) {
	if h.db == nil {
		return savedProgram{}, pgx.ErrNoRows
	}
	return queryOne[savedProgram](h.db, c,
		`SELECT * FROM saved_programs
		 WHERE user_id = @userID AND kind = @kind
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		pgx.NamedArgs{"userID": c.GetInt("user_id"), "kind": kind})
}

// profileLocale returns the explicit locale if given, else the profile's.
func profileLocale(explicit string, p *userProfile) locale.Locale {
	if strings.TrimSpace(explicit) != "" {
		return locale.Parse(explicit)
	}
	if p != nil {
		return locale.Parse(p.Locale)
	}
	return locale.English
}

// storeWorkout parses text, persists the calorie map and the raw text, and
// writes the response. Storage failures after the parse are logged only.
func (h *Handler) storeWorkout(c *gin.Context, text string, kg float64, status int) {
	res := workout.ParseProgramWithBodyweight(text, kg)

	if err := h.calories.Save(c, userKey(c), res.Calories); err != nil {
		zap.L().Error("[workout] failed to save calorie map", zap.Int("user_id", c.GetInt("user_id")), zap.Error(err))
	}
	if err := h.saveProgram(c, programKindWorkout, text); err != nil {
		zap.L().Error("[workout] failed to save program text", zap.Int("user_id", c.GetInt("user_id")), zap.Error(err))
	}

	zap.L().Info("[workout] program parsed",
		zap.Int("user_id", c.GetInt("user_id")),
		zap.Float64("bodyweight_kg", kg),
		zap.Int("weekly_kcal", res.Calories.Total()))

	c.JSON(status, workoutResponse{Text: text, BodyweightKG: kg, Result: res})
}

/* ─── Workout program endpoints ──────────────────────────────────────── */

// parseWorkoutProgram parses pasted program text into canonical days.
// POST /api/programs/workout/parse.
func (h *Handler) parseWorkoutProgram(c *gin.Context) {
	var body parseWorkoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		apiError(c, http.StatusBadRequest, "text is required")
		return
	}
	if !validBodyweight(body.BodyweightKG) {
		apiError(c, http.StatusBadRequest, "bodyweight_kg must be between 0 and 700")
		return
	}

	h.storeWorkout(c, body.Text, h.resolveBodyweight(c, body.BodyweightKG), http.StatusOK)
}

// generateWorkoutProgram asks the LLM for a weekly program in the user's
// locale, then parses and stores it like a pasted one.
// POST /api/programs/workout/generate.
func (h *Handler) generateWorkoutProgram(c *gin.Context) {
	var body generateWorkoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Goal) == "" {
		apiError(c, http.StatusBadRequest, "goal is required")
		return
	}
	// Zero means the field was omitted; the prompt then asks for three days.
	if body.DaysPerWeek < 0 || body.DaysPerWeek > 7 {
		apiError(c, http.StatusBadRequest, "days_per_week must be between 1 and 7, or omitted for 3")
		return
	}
	if !validBodyweight(body.BodyweightKG) {
		apiError(c, http.StatusBadRequest, "bodyweight_kg must be between 0 and 700")
		return
	}

	p, err := h.loadProfile(c)
	if err != nil {
		zap.L().Warn("[workout] profile lookup failed", zap.Error(err))
	}
	kg := h.resolveBodyweight(c, body.BodyweightKG)
	l := profileLocale(body.Locale, p)

	text, err := callOpenAI(c, h.openAIBaseURL, h.openAIModel,
		buildWorkoutMessages(l, body, profileSummary(p, kg)))
	if err != nil {
		zap.L().Error("[workout] llm request failed", zap.String("locale", string(l)), zap.Error(err))
		apiError(c, http.StatusBadGateway, "llm request failed")
		return
	}

	h.storeWorkout(c, text, kg, http.StatusOK)
}

// getWorkoutProgram re-parses the latest saved program. Calories come from
// the store so manual overrides survive.
// GET /api/programs/workout.
func (h *Handler) getWorkoutProgram(c *gin.Context) {
	sp, err := h.latestProgram(c, programKindWorkout)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "no saved workout program")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch workout program")
		}
		return
	}

	kg := h.resolveBodyweight(c, nil)
	res := workout.ParseProgramWithBodyweight(sp.RawText, kg)
	stored, err := h.calories.Load(c, userKey(c))
	if err != nil {
		zap.L().Warn("[workout] calorie map unavailable", zap.Error(err))
	} else if len(stored) > 0 {
		res.Calories = stored
	}

	c.JSON(http.StatusOK, workoutResponse{Text: sp.RawText, BodyweightKG: kg, Result: res})
}

// estimateWorkoutDay estimates the energy cost of one day's content.
// POST /api/programs/workout/estimate.
func (h *Handler) estimateWorkoutDay(c *gin.Context) {
	var body estimateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validBodyweight(body.BodyweightKG) {
		apiError(c, http.StatusBadRequest, "bodyweight_kg must be between 0 and 700")
		return
	}

	kg := h.resolveBodyweight(c, body.BodyweightKG)
	c.JSON(http.StatusOK, gin.H{
		"calories":      workout.EstimateCalories(body.Content, kg),
		"bodyweight_kg": kg,
	})
}

/* ─── Calorie map endpoints ──────────────────────────────────────────── */

// getWorkoutCalories returns the stored calorie map (empty object if none).
// GET /api/programs/workout/calories.
func (h *Handler) getWorkoutCalories(c *gin.Context) {
	m, err := h.calories.Load(c, userKey(c))
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch calorie map")
		return
	}
	c.JSON(http.StatusOK, m)
}

// putWorkoutCalorieDay overrides one day's calories. kcal 0 clears the day.
// PUT /api/programs/workout/calories/:day.
func (h *Handler) putWorkoutCalorieDay(c *gin.Context) {
	day, ok := workout.ParseDay(c.Param("day"))
	if !ok {
		apiError(c, http.StatusBadRequest, "invalid day, expected monday..sunday")
		return
	}

	var body struct {
		Kcal *int `json:"kcal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Kcal == nil {
		apiError(c, http.StatusBadRequest, "kcal is required")
		return
	}
	if *body.Kcal < 0 {
		apiError(c, http.StatusBadRequest, "kcal must not be negative")
		return
	}

	m, err := h.calories.SetDay(c, userKey(c), day, *body.Kcal)
	if err != nil {
		if errors.Is(err, calstore.ErrConflict) {
			apiError(c, http.StatusConflict, "calorie map changed, retry")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update calorie map")
		}
		return
	}
	c.JSON(http.StatusOK, m)
}

// deleteWorkoutCalories clears the stored calorie map.
// DELETE /api/programs/workout/calories.
func (h *Handler) deleteWorkoutCalories(c *gin.Context) {
	if err := h.calories.Delete(c, userKey(c)); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete calorie map")
		return
	}
	c.Status(http.StatusNoContent)
}
