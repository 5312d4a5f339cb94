package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lg/fitcoach-go-api/internal/workout"
)

// maxWeightKG bounds bodyweight inputs everywhere they are accepted.
const maxWeightKG = 700.0

// defaultWeightLogDays is the lookback when GET /api/weight-log has no range.
const defaultWeightLogDays = 90

const weightRangeMsg = "weight_kg must be between 0 and 700"

func validWeight(kg float64) bool { return kg > 0 && kg <= maxWeightKG }

// validBodyweight reports whether an optional request bodyweight is usable.
// Zero means "not given" and falls through to resolveBodyweight's lookups.
func validBodyweight(kg *float64) bool {
	return kg == nil || *kg == 0 || validWeight(*kg)
}

// weightLogRange reads start/end query params. Both default so the chart can
// load without a picker: end to today, start to defaultWeightLogDays earlier.
func weightLogRange(c *gin.Context, now time.Time) (start, end string, msg string) {
	end = c.DefaultQuery("end", now.Format("2006-01-02"))
	endT, err := time.Parse("2006-01-02", end)
	if err != nil {
		return "", "", "invalid end, expected YYYY-MM-DD"
	}
	start = c.DefaultQuery("start", endT.AddDate(0, 0, -defaultWeightLogDays).Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", start); err != nil {
		return "", "", "invalid start, expected YYYY-MM-DD"
	}
	if start > end {
		return "", "", "start must not be after end"
	}
	return start, end, ""
}

// getWeightLog returns weight entries for the authenticated user within [start, end].
// GET /api/weight-log?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *Handler) getWeightLog(c *gin.Context) {
	start, end, msg := weightLogRange(c, time.Now())
	if msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	entries, err := queryMany[weightEntry](h.db, c,
		`SELECT * FROM weight_log
		 WHERE user_id = @userID AND date BETWEEN @start AND @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": c.GetInt("user_id"), "start": start, "end": end})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch weight log")
		return
	}
	if entries == nil {
		entries = []weightEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// upsertWeightEntry records the weight for a date, replacing any entry already
// logged that day. The newest entry also becomes the profile weight so TDEE
// follows the log.
// POST /api/weight-log. Body: { "date"?: "YYYY-MM-DD", "weight_kg": 82.4 }.
func (h *Handler) upsertWeightEntry(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body struct {
		Date     string  `json:"date"`
		WeightKG float64 `json:"weight_kg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		body.Date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	if !validWeight(body.WeightKG) {
		apiError(c, http.StatusBadRequest, weightRangeMsg)
		return
	}

	entry, err := queryOne[weightEntry](h.db, c,
		`INSERT INTO weight_log (user_id, date, weight_kg)
		 VALUES (@userID, @date, @weightKG)
		 ON CONFLICT (user_id, date) DO UPDATE SET weight_kg = EXCLUDED.weight_kg
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "date": body.Date, "weightKG": body.WeightKG})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save weight entry")
		return
	}

	_, err = h.db.Exec(c,
		`UPDATE user_profiles SET weight_kg = @weightKG
		 WHERE user_id = @userID
		   AND NOT EXISTS (SELECT 1 FROM weight_log WHERE user_id = @userID AND date > @date)`,
		pgx.NamedArgs{"userID": userID, "date": body.Date, "weightKG": body.WeightKG})
	if err != nil {
		zap.L().Warn("[weight] failed to sync profile weight", zap.Int("user_id", userID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, entry)
}

// entryID parses the :id path param; non-numeric ids are a 400, not a DB error.
func entryID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		apiError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// updateWeightEntry partially updates an existing weight entry.
// PUT /api/weight-log/:id. Omitted fields keep their current values.
func (h *Handler) updateWeightEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	var body struct {
		Date     *string  `json:"date"`
		WeightKG *float64 `json:"weight_kg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date != nil {
		if _, err := time.Parse("2006-01-02", *body.Date); err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
	}
	if body.WeightKG != nil && !validWeight(*body.WeightKG) {
		apiError(c, http.StatusBadRequest, weightRangeMsg)
		return
	}

	entry, err := queryOne[weightEntry](h.db, c,
		`UPDATE weight_log SET
			date      = COALESCE(@date, date),
			weight_kg = COALESCE(@weightKG, weight_kg)
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{"id": id, "userID": c.GetInt("user_id"), "date": body.Date, "weightKG": body.WeightKG})
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		apiError(c, http.StatusNotFound, "weight entry not found")
	case err != nil:
		apiError(c, http.StatusInternalServerError, "failed to update weight entry")
	default:
		c.JSON(http.StatusOK, entry)
	}
}

// deleteWeightEntry removes one of the user's weight entries.
// DELETE /api/weight-log/:id.
func (h *Handler) deleteWeightEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	tag, err := h.db.Exec(c,
		"DELETE FROM weight_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": c.GetInt("user_id")})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete weight entry")
		return
	}
	if tag.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "weight entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}

/* ─── Bodyweight for estimates ───────────────────────────────────────── */

// resolveBodyweight picks the bodyweight used for MET estimates: an explicit
// request value, then the latest weight-log entry, then the profile weight,
// then the engine default.
func (h *Handler) resolveBodyweight(c *gin.Context, override *float64) float64 {
	if override != nil && validWeight(*override) {
		return *override
	}
	if h.db == nil {
		return workout.DefaultBodyweightKg
	}

	var kg float64
	err := h.db.QueryRow(c,
		"SELECT weight_kg FROM weight_log WHERE user_id = $1 ORDER BY date DESC LIMIT 1",
		c.GetInt("user_id")).Scan(&kg)
	if err == nil && kg > 0 {
		return kg
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Warn("[bodyweight] weight log lookup failed", zap.Error(err))
	}

	p, err := h.loadProfile(c)
	if err != nil {
		zap.L().Warn("[bodyweight] profile lookup failed", zap.Error(err))
	}
	if p != nil && p.WeightKG != nil && *p.WeightKG > 0 {
		return *p.WeightKG
	}
	return workout.DefaultBodyweightKg
}
