package main

import (
	"math"
	"time"

	"lg/fitcoach-go-api/internal/workout"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Also the list of valid activity levels for patchProfile.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// computeTDEE computes BMR (Mifflin-St Jeor) and TDEE from a profile.
// Returns ok=false when any required field is nil or the age is implausible.
func computeTDEE(p *userProfile, now time.Time) (bmr, tdee int, ok bool) {
	if p.Sex == nil || p.DateOfBirth == nil || p.HeightCM == nil ||
		p.WeightKG == nil || p.ActivityLevel == nil {
		return 0, 0, false
	}

	age := now.Year() - p.DateOfBirth.Year()
	if now.Before(p.DateOfBirth.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 || age > 130 {
		return 0, 0, false
	}

	bmrF := 10**p.WeightKG + 6.25**p.HeightCM - 5*float64(age)
	if *p.Sex == "male" {
		bmrF += 5
	} else {
		bmrF -= 161
	}

	mult, found := activityMultipliers[*p.ActivityLevel]
	if !found {
		return 0, 0, false
	}
	return int(math.Round(bmrF)), int(math.Round(bmrF * mult)), true
}

// populateComputedTDEE fills the computed-only fields on p.
// No-ops if any required profile field is missing.
func populateComputedTDEE(p *userProfile) {
	if bmr, tdee, ok := computeTDEE(p, time.Now()); ok {
		p.ComputedBMR = &bmr
		p.ComputedTDEE = &tdee
	}
}

// currentMonday returns the Monday of the current week at midnight UTC.
func currentMonday() time.Time {
	return mondayOf(time.Now().UTC())
}

// mondayOf steps back with AddDate so month and year boundaries are handled.
func mondayOf(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(weekdayOf(t))).Truncate(24 * time.Hour)
}

// weekdayOf maps a date onto the canonical Monday-first day.
func weekdayOf(t time.Time) workout.Day {
	return workout.Day((int(t.Weekday()) + 6) % 7)
}
