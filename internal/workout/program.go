package workout

import "strings"

// Result is a parsed weekly program with its per-day energy cost.
type Result struct {
	Program  WeeklyProgram `json:"program"`
	Calories CalorieMap    `json:"calories"`
}

// ParseProgram parses raw workout text using DefaultBodyweightKg for any
// estimated day. It never fails: unusable input yields seven empty days.
func ParseProgram(raw string) Result {
	return ParseProgramWithBodyweight(raw, 0)
}

// ParseProgramWithBodyweight segments raw text into canonical days, strips
// preamble noise, and fills the calorie map. A "(~NNN kcal)" annotation on a
// day's first line wins; other non-rest days are estimated with the MET model
// at the given bodyweight.
func ParseProgramWithBodyweight(raw string, bodyweightKg float64) Result {
	sections := Segment(raw)
	res := Result{Calories: CalorieMap{}}
	for _, d := range Days {
		content := strings.TrimSpace(Sanitize(sections[d]))
		content, kcal, annotated := ExtractAnnotation(content)
		content = strings.TrimSpace(content)
		res.Program[d] = content

		if IsRest(content) {
			continue
		}
		if annotated {
			res.Calories[d] = roundToFive(float64(kcal))
			continue
		}
		res.Calories[d] = EstimateCalories(content, bodyweightKg)
	}
	return res
}
