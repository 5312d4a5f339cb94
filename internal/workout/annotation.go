package workout

import (
	"regexp"
	"strconv"
	"strings"
)

// annotationPattern matches the model's inline estimate, e.g. "(~350 kcal)",
// "~350 kcal", "(≈420 kalori)" or a range such as "(~350-400 kcal)".
var annotationPattern = regexp.MustCompile(`(?i)\(?\s*[~≈]?\s*(?:(\d+)\s*[-–]\s*)?(\d+)\s*(?:kcal|kalori)\s*\)?`)

// ExtractAnnotation looks for a calorie annotation on the first line of
// content only. When found it returns the content with the annotation removed
// (and the line dropped if nothing else was on it), the kcal value and true.
// A range yields its midpoint.
func ExtractAnnotation(content string) (string, int, bool) {
	first, rest, hasRest := strings.Cut(content, "\n")
	loc := annotationPattern.FindStringSubmatchIndex(first)
	if loc == nil {
		return content, 0, false
	}
	kcal, err := strconv.Atoi(first[loc[4]:loc[5]])
	if err != nil {
		return content, 0, false
	}
	if loc[2] >= 0 {
		low, err := strconv.Atoi(first[loc[2]:loc[3]])
		if err != nil {
			return content, 0, false
		}
		kcal = (low + kcal) / 2
	}

	line := strings.TrimSpace(first[:loc[0]] + first[loc[1]:])
	line = strings.TrimRight(line, " \t-–—:|,")
	switch {
	case line == "":
		return rest, kcal, true
	case hasRest:
		return line + "\n" + rest, kcal, true
	default:
		return line, kcal, true
	}
}
