package workout

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"lg/fitcoach-go-api/internal/locale"
)

// DefaultBodyweightKg is used when the caller has no usable bodyweight.
const DefaultBodyweightKg = 70.0

// defaultCardioMinutes applies to cardio lines with no duration token.
const defaultCardioMinutes = 20.0

var (
	setsPattern    = unitPattern(`(\d+)`, func(p locale.Pack) []string { return p.SetUnits })
	repsPattern    = unitPattern(`(\d+)(?:\s*-\s*\d+)?`, func(p locale.Pack) []string { return p.RepUnits })
	minutesPattern = unitPattern(`(\d+(?:[.,]\d+)?)`, func(p locale.Pack) []string { return p.MinuteUnits })
	hoursPattern   = unitPattern(`(\d+(?:[.,]\d+)?)`, func(p locale.Pack) []string { return p.HourUnits })
	secondsPattern = unitPattern(`(\d+(?:[.,]\d+)?)`, func(p locale.Pack) []string { return p.SecondUnits })

	// setsByRepsPattern reads the "4x10" shorthand as sets × reps.
	setsByRepsPattern = regexp.MustCompile(`(\d+)\s*[x×]\s*(\d+)`)
)

func unitPattern(number string, units func(locale.Pack) []string) *regexp.Regexp {
	return regexp.MustCompile(number + `\s*(?:` + alternation(units) + `)\b`)
}

// lineTokens are the numeric hints found on one line. A zero value means
// the token was absent.
type lineTokens struct {
	sets    int
	reps    int
	minutes float64
	hours   float64
	seconds float64
}

func scanTokens(folded string) lineTokens {
	var t lineTokens
	t.sets = firstInt(setsPattern, folded)
	t.reps = firstInt(repsPattern, folded)
	t.minutes = firstFloat(minutesPattern, folded)
	t.hours = firstFloat(hoursPattern, folded)
	t.seconds = firstFloat(secondsPattern, folded)

	if m := setsByRepsPattern.FindStringSubmatch(folded); m != nil {
		if t.sets == 0 {
			t.sets, _ = strconv.Atoi(m[1])
		}
		if t.reps == 0 {
			t.reps, _ = strconv.Atoi(m[2])
		}
	}
	return t
}

func firstInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func firstFloat(re *regexp.Regexp, s string) float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	f, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil || f < 0 || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// duration returns the explicit duration in minutes: hours first, then
// minutes, then seconds.
func (t lineTokens) duration() (float64, bool) {
	switch {
	case t.hours > 0:
		return t.hours * 60, true
	case t.minutes > 0:
		return t.minutes, true
	case t.seconds > 0:
		return t.seconds / 60, true
	}
	return 0, false
}

// repMultiplier accounts for time under tension on high-rep sets.
func (t lineTokens) repMultiplier() float64 {
	switch {
	case t.reps > 15:
		return 1.3
	case t.reps >= 10:
		return 1.1
	}
	return 1.0
}

// EstimateCalories estimates the kcal cost of one day's content with the MET
// formula: MET × bodyweight(kg) × hours, summed over lines and rounded to the
// nearest multiple of 5. A non-positive bodyweight falls back to
// DefaultBodyweightKg.
func EstimateCalories(content string, bodyweightKg float64) int {
	if !(bodyweightKg > 0) || math.IsInf(bodyweightKg, 0) {
		bodyweightKg = DefaultBodyweightKg
	}
	total := 0.0
	for _, line := range strings.Split(content, "\n") {
		total += estimateLine(line, bodyweightKg)
	}
	return roundToFive(total)
}

func estimateLine(line string, kg float64) float64 {
	key := restKey(line)
	if key == "" || restMarkers[key] {
		return 0
	}
	key = strings.TrimSpace(strings.TrimLeft(key, "-–•·>"))
	if utf8.RuneCountInString(key) < 3 || restMarkers[key] {
		return 0
	}

	entry := lookupMET(key)
	tokens := scanTokens(key)
	return entry.MET * kg * lineMinutes(entry, tokens) / 60
}

func lineMinutes(e METEntry, t lineTokens) float64 {
	if e.Cardio {
		if d, ok := t.duration(); ok {
			return d
		}
		return defaultCardioMinutes
	}

	// Timed holds such as "Plank 1 dk" or "Plank 3 set 45 sn".
	if d, ok := t.duration(); ok && t.reps == 0 {
		sets := t.sets
		if sets == 0 {
			sets = 1
		}
		return d * float64(sets)
	}

	sets := t.sets
	if sets == 0 {
		sets = e.DefaultSets
	}
	return float64(sets) * e.DefaultMinutesPerSet * t.repMultiplier()
}
