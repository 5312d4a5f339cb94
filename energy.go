package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/fitcoach-go-api/internal/workout"
)

// getEnergyWeekSummary returns the Mon–Sun week containing week_start with
// the user's TDEE and the workout calories for each weekday.
// GET /api/energy/week-summary?week_start=YYYY-MM-DD (defaults to current week).
func (h *Handler) getEnergyWeekSummary(c *gin.Context) {
	// Parse week_start; default to the current Monday.
	var weekStart time.Time
	if s := c.Query("week_start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid week_start, expected YYYY-MM-DD")
			return
		}
		weekStart = mondayOf(t)
	} else {
		weekStart = currentMonday()
	}

	p, err := h.loadProfile(c)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	var tdee *int
	if p != nil {
		if _, v, ok := computeTDEE(p, time.Now()); ok {
			tdee = &v
		}
	}

	// The weekly plan repeats, so a missing calorie map only blanks the
	// workout column.
	calories, err := h.calories.Load(c, userKey(c))
	if err != nil {
		zap.L().Warn("[energy] calorie map unavailable", zap.Int("user_id", c.GetInt("user_id")), zap.Error(err))
		calories = workout.CalorieMap{}
	}

	result := make([]energyDay, 7)
	for i := range result {
		d := weekStart.AddDate(0, 0, i)
		wd := weekdayOf(d)
		day := energyDay{
			Date:            DateOnly{d},
			Day:             wd.String(),
			TDEE:            tdee,
			WorkoutCalories: calories[wd],
		}
		if tdee != nil {
			total := *tdee + day.WorkoutCalories
			day.TotalBurn = &total
		}
		result[i] = day
	}

	c.JSON(http.StatusOK, result)
}
