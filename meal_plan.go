package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lg/fitcoach-go-api/internal/meal"
)

// mealItems parses text, never returning a nil slice so JSON gets [].
func mealItems(text string) []meal.Item {
	items := meal.Parse(text)
	if items == nil {
		items = []meal.Item{}
	}
	return items
}

// parseMealPlan splits pasted meal-plan text into items and saves the text.
// POST /api/programs/meal/parse.
func (h *Handler) parseMealPlan(c *gin.Context) {
	var body parseMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		apiError(c, http.StatusBadRequest, "text is required")
		return
	}

	items := mealItems(body.Text)
	if err := h.saveProgram(c, programKindMeal, body.Text); err != nil {
		zap.L().Error("[meal] failed to save plan text", zap.Int("user_id", c.GetInt("user_id")), zap.Error(err))
	}
	zap.L().Info("[meal] plan parsed", zap.Int("user_id", c.GetInt("user_id")), zap.Int("items", len(items)))

	c.JSON(http.StatusOK, newMealResponse(body.Text, items))
}

// generateMealPlan asks the LLM for a one-day meal plan in the user's locale.
// POST /api/programs/meal/generate.
func (h *Handler) generateMealPlan(c *gin.Context) {
	var body generateMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Goal) == "" {
		apiError(c, http.StatusBadRequest, "goal is required")
		return
	}
	if body.CalorieTarget < 0 || body.CalorieTarget > 10000 {
		apiError(c, http.StatusBadRequest, "calorie_target must be between 0 and 10000")
		return
	}

	p, err := h.loadProfile(c)
	if err != nil {
		zap.L().Warn("[meal] profile lookup failed", zap.Error(err))
	}
	if body.CalorieTarget == 0 && p != nil {
		if _, tdee, ok := computeTDEE(p, time.Now()); ok {
			body.CalorieTarget = tdee
		}
	}
	l := profileLocale(body.Locale, p)

	text, err := callOpenAI(c, h.openAIBaseURL, h.openAIModel,
		buildMealMessages(l, body, profileSummary(p, h.resolveBodyweight(c, nil))))
	if err != nil {
		zap.L().Error("[meal] llm request failed", zap.String("locale", string(l)), zap.Error(err))
		apiError(c, http.StatusBadGateway, "llm request failed")
		return
	}

	items := mealItems(text)
	if err := h.saveProgram(c, programKindMeal, text); err != nil {
		zap.L().Error("[meal] failed to save plan text", zap.Int("user_id", c.GetInt("user_id")), zap.Error(err))
	}
	c.JSON(http.StatusOK, newMealResponse(text, items))
}

// getMealPlan re-parses the latest saved meal plan.
// GET /api/programs/meal.
func (h *Handler) getMealPlan(c *gin.Context) {
	sp, err := h.latestProgram(c, programKindMeal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "no saved meal plan")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch meal plan")
		}
		return
	}
	c.JSON(http.StatusOK, newMealResponse(sp.RawText, mealItems(sp.RawText)))
}
