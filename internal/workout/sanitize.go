package workout

import (
	"regexp"
	"strings"

	"lg/fitcoach-go-api/internal/locale"
)

// Noise patterns run against folded lines (see locale.Fold), so they are
// written once without diacritics.
var (
	introPattern = regexp.MustCompile(`^(?:` + alternation(func(p locale.Pack) []string { return p.IntroPrefixes }) + `)\b`)

	programPhrasePattern = regexp.MustCompile(alternation(func(p locale.Pack) []string { return p.ProgramPhrases }))

	profileLabelPattern = regexp.MustCompile(`(?:^|[^\p{L}])(?:` + alternation(func(p locale.Pack) []string { return p.ProfileLabels }) + `)\s*:`)

	exerciseTokenPattern = regexp.MustCompile(`\d+\s*(?:` + alternation(func(p locale.Pack) []string {
		units := append([]string{}, p.SetUnits...)
		units = append(units, p.RepUnits...)
		return append(units, p.SecondUnits...)
	}) + `)\b`)
)

// alternation joins one word list from every locale into a regex
// alternation, longest first.
func alternation(list func(locale.Pack) []string) string {
	words := locale.LongestFirst(locale.Collect(list))
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, "|")
}

// Sanitize drops leading noise from a day's content: empty lines, "Here is
// your plan" sentences, weekly-program sentences and lines restating the
// user's profile. It stops at the first real line and keeps everything from
// there on verbatim.
func Sanitize(content string) string {
	lines := strings.Split(content, "\n")
	i := 0
	for i < len(lines) && isNoiseLine(lines[i]) {
		i++
	}
	return strings.Join(lines[i:], "\n")
}

func isNoiseLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isRule(trimmed) {
		return true
	}
	l := locale.Fold(strings.ReplaceAll(strings.TrimLeft(trimmed, "#*->_ \t"), "*", ""))
	switch {
	case l == "":
		// a bare "-" is a rest marker, not noise
		return false
	case introPattern.MatchString(l):
		return true
	case programPhrasePattern.MatchString(l):
		return true
	case profileLabelPattern.MatchString(l):
		return !exerciseTokenPattern.MatchString(l)
	}
	return false
}

// isRule reports markdown horizontal rules such as "---" or "***".
func isRule(s string) bool {
	return len(s) >= 3 && strings.Trim(s, "-*_=") == ""
}

var restMarkers = buildRestMarkers()

func buildRestMarkers() map[string]bool {
	set := make(map[string]bool)
	for _, m := range locale.Collect(func(p locale.Pack) []string { return p.RestMarkers }) {
		set[locale.Fold(m)] = true
	}
	return set
}

// IsRest reports whether content means "no workout": empty, or a rest marker
// such as "Rest", "Dinlenme", "-" or "Yok" in any supported locale.
func IsRest(content string) bool {
	t := restKey(content)
	return t == "" || restMarkers[t]
}

func restKey(s string) string {
	return strings.Trim(locale.Fold(s), " \t\r\n*_.!#")
}
