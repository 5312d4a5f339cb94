package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/fitcoach-go-api/internal/locale"
)

// loadProfile returns the authenticated user's profile, or nil when there is
// no database (tests) or no profile row yet.
func (h *Handler) loadProfile(c *gin.Context) (*userProfile, error) {
	if h.db == nil {
		return nil, nil
	}
	p, err := queryOne[userProfile](h.db, c,
		"SELECT * FROM user_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": c.GetInt("user_id")})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// getProfile returns the authenticated user's profile. Computed BMR and TDEE
// are populated when all body fields are present.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.loadProfile(c)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	if p == nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	populateComputedTDEE(p)

	c.JSON(http.StatusOK, p)
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Uses pointer fields in the request body to distinguish
// "not provided" from zero.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateProfilePatch(&body); msg != "" {
		apiError(c, http.StatusBadRequest, msg)
		return
	}

	// Build SET clause dynamically from the fields the client actually sent
	setClauses := []string{}
	args := pgx.NamedArgs{"userID": userID}

	if body.Sex != nil {
		setClauses = append(setClauses, "sex = @sex")
		args["sex"] = *body.Sex
	}
	if body.DateOfBirth != nil {
		setClauses = append(setClauses, "date_of_birth = @dateOfBirth")
		args["dateOfBirth"] = *body.DateOfBirth
	}
	if body.HeightCM != nil {
		setClauses = append(setClauses, "height_cm = @heightCM")
		args["heightCM"] = *body.HeightCM
	}
	if body.WeightKG != nil {
		setClauses = append(setClauses, "weight_kg = @weightKG")
		args["weightKG"] = *body.WeightKG
	}
	if body.ActivityLevel != nil {
		setClauses = append(setClauses, "activity_level = @activityLevel")
		args["activityLevel"] = *body.ActivityLevel
	}
	if body.Locale != nil {
		setClauses = append(setClauses, "locale = @locale")
		args["locale"] = string(locale.Parse(*body.Locale))
	}

	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	query := "UPDATE user_profiles SET " +
		strings.Join(setClauses, ", ") +
		" WHERE user_id = @userID RETURNING *"

	p, err := queryOne[userProfile](h.db, c, query, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	populateComputedTDEE(&p)

	c.JSON(http.StatusOK, p)
}

// validateProfilePatch returns a client-facing message for the first invalid
// field, or "" when the patch is acceptable.
func validateProfilePatch(body *patchProfileRequest) string {
	if body.Sex != nil && *body.Sex != "male" && *body.Sex != "female" {
		return "sex must be one of: male, female"
	}
	if body.DateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *body.DateOfBirth); err != nil {
			return "invalid date_of_birth, expected YYYY-MM-DD"
		}
	}
	if body.HeightCM != nil && (*body.HeightCM <= 0 || *body.HeightCM > 300) {
		return "height_cm must be between 0 and 300"
	}
	if body.WeightKG != nil && (*body.WeightKG <= 0 || *body.WeightKG > maxWeightKG) {
		return "weight_kg must be between 0 and 700"
	}
	// An unknown level silently breaks every TDEE computation, so reject it here.
	if body.ActivityLevel != nil {
		if _, ok := activityMultipliers[*body.ActivityLevel]; !ok {
			return "activity_level must be one of: sedentary, light, moderate, active, very_active"
		}
	}
	if body.Locale != nil {
		tag, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(*body.Locale)), "-")
		tag, _, _ = strings.Cut(tag, "_")
		if _, ok := locale.Get(locale.Locale(tag)); !ok {
			return "locale must be one of: en, tr, de, es"
		}
	}
	return ""
}
