package workout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"lg/fitcoach-go-api/internal/locale"
)

// dayHeaderPattern matches "<day name>:" for every locale spelling. Bold
// closers between the name and the colon ("**Monday**:") are tolerated.
var dayHeaderPattern = buildDayHeaderPattern()

func buildDayHeaderPattern() *regexp.Regexp {
	names := locale.DayNames()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)[*_]*\s*:\s*`)
}

// sectionEdge is markdown residue left around a header after splitting.
const sectionEdge = " \t\r\n*#"

// Segment splits raw text into canonical-day sections. Text before the first
// recognised header is dropped. Repeated headers for the same day are joined
// with a blank line. When no header is found the whole text lands on Monday.
func Segment(raw string) WeeklyProgram {
	var program WeeklyProgram

	matches := headerMatches(raw)
	if len(matches) == 0 {
		program[Monday] = strings.TrimSpace(raw)
		return program
	}

	for i, m := range matches {
		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1].nameStart
		}
		content := strings.Trim(raw[m.contentStart:end], sectionEdge)
		program[m.day] = joinSection(program[m.day], content)
	}
	return program
}

type headerMatch struct {
	day          Day
	nameStart    int
	contentStart int
}

// headerMatches finds day headers that are not glued to a preceding letter,
// so "Pazar:" inside a longer word is not taken as Sunday.
func headerMatches(raw string) []headerMatch {
	var out []headerMatch
	for _, loc := range dayHeaderPattern.FindAllStringSubmatchIndex(raw, -1) {
		nameStart, nameEnd := loc[2], loc[3]
		if nameStart > 0 {
			prev, _ := utf8.DecodeLastRuneInString(raw[:nameStart])
			if unicode.IsLetter(prev) {
				continue
			}
		}
		idx, ok := locale.DayIndex(raw[nameStart:nameEnd])
		if !ok {
			continue
		}
		out = append(out, headerMatch{day: Day(idx), nameStart: nameStart, contentStart: loc[1]})
	}
	return out
}

func joinSection(existing, next string) string {
	switch {
	case existing == "":
		return next
	case next == "":
		return existing
	default:
		return existing + "\n\n" + next
	}
}
