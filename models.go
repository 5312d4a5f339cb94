package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/fitcoach-go-api/internal/meal"
	"lg/fitcoach-go-api/internal/workout"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// userProfile maps to user_profiles. Body fields are nullable so a fresh
// profile row works before onboarding is finished.
type userProfile struct {
	UserID        int       `json:"user_id"        db:"user_id"`
	Sex           *string   `json:"sex"            db:"sex"`
	DateOfBirth   *DateOnly `json:"date_of_birth"  db:"date_of_birth"`
	HeightCM      *float64  `json:"height_cm"      db:"height_cm"`
	WeightKG      *float64  `json:"weight_kg"      db:"weight_kg"`
	ActivityLevel *string   `json:"activity_level" db:"activity_level"`
	Locale        string    `json:"locale"         db:"locale"`

	// Computed from the fields above; db:"-" keeps RowToStructByName from
	// looking for columns.
	ComputedBMR  *int `json:"computed_bmr,omitempty"  db:"-"`
	ComputedTDEE *int `json:"computed_tdee,omitempty" db:"-"`
}

// weightEntry maps to weight_log. One row per user per date.
type weightEntry struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	Date      DateOnly   `json:"date"       db:"date"`
	WeightKG  float64    `json:"weight_kg"  db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// savedProgram maps to saved_programs. Only raw text is stored; the parsed
// structure is recomputed on read so parser fixes apply to old programs.
type savedProgram struct {
	ID        int       `json:"id"         db:"id"`
	UserID    int       `json:"user_id"    db:"user_id"`
	Kind      string    `json:"kind"       db:"kind"`
	RawText   string    `json:"raw_text"   db:"raw_text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const (
	programKindWorkout = "workout"
	programKindMeal    = "meal"
)

/* ─── Request / response shapes ──────────────────────────────────────── */

// patchProfileRequest is the request body for PATCH /api/profile.
// All fields are pointers; only non-nil fields get written to the database.
type patchProfileRequest struct {
	Sex           *string  `json:"sex"`
	DateOfBirth   *string  `json:"date_of_birth"` // YYYY-MM-DD string, stored as date
	HeightCM      *float64 `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	Locale        *string  `json:"locale"`
}

// parseWorkoutRequest is the body for POST /api/programs/workout/parse.
type parseWorkoutRequest struct {
	Text         string   `json:"text"`
	BodyweightKG *float64 `json:"bodyweight_kg"`
}

// generateWorkoutRequest is the body for POST /api/programs/workout/generate.
type generateWorkoutRequest struct {
	Goal         string   `json:"goal"`
	DaysPerWeek  int      `json:"days_per_week"`
	Notes        string   `json:"notes"`
	Locale       string   `json:"locale"`
	BodyweightKG *float64 `json:"bodyweight_kg"`
}

// estimateRequest is the body for POST /api/programs/workout/estimate.
type estimateRequest struct {
	Content      string   `json:"content"`
	BodyweightKG *float64 `json:"bodyweight_kg"`
}

// workoutResponse is a parsed workout program plus the text it came from.
type workoutResponse struct {
	Text         string  `json:"text"`
	BodyweightKG float64 `json:"bodyweight_kg"`
	workout.Result
}

// parseMealRequest is the body for POST /api/programs/meal/parse.
type parseMealRequest struct {
	Text string `json:"text"`
}

// generateMealRequest is the body for POST /api/programs/meal/generate.
type generateMealRequest struct {
	Goal          string `json:"goal"`
	CalorieTarget int    `json:"calorie_target"`
	Notes         string `json:"notes"`
	Locale        string `json:"locale"`
}

// mealResponse is a parsed meal plan plus the text it came from. BySlot holds
// the same items grouped for the day view.
type mealResponse struct {
	Text   string                    `json:"text"`
	Items  []meal.Item               `json:"items"`
	BySlot map[meal.Slot][]meal.Item `json:"by_slot"`
}

func newMealResponse(text string, items []meal.Item) mealResponse {
	return mealResponse{Text: text, Items: items, BySlot: meal.BySlot(items)}
}

// energyDay is one day in GET /api/energy/week-summary. TDEE is nil when the
// profile is incomplete.
type energyDay struct {
	Date            DateOnly `json:"date"`
	Day             string   `json:"day"`
	TDEE            *int     `json:"tdee"`
	WorkoutCalories int      `json:"workout_calories"`
	TotalBurn       *int     `json:"total_burn"`
}
