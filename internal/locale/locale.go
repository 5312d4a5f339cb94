// Package locale holds the per-language word lists the program parsers match
// against. Every supported language is one Pack value; adding a language is a
// data change here and nothing else.
package locale

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Locale is a supported content language.
type Locale string

const (
	English Locale = "en"
	Turkish Locale = "tr"
	German  Locale = "de"
	Spanish Locale = "es"
)

// Supported lists the locales in priority order. Word lists merged across
// locales keep this order.
var Supported = []Locale{English, Turkish, German, Spanish}

// Pack is the word list set for one locale. Days are written in display form
// (first spelling is the one shown to users); every other list is written in
// folded form, see Fold.
type Pack struct {
	Name string

	Days    [7][]string
	DayWord []string

	RestMarkers    []string
	IntroPrefixes  []string
	ProgramPhrases []string
	ProfileLabels  []string

	SetUnits    []string
	RepUnits    []string
	MinuteUnits []string
	HourUnits   []string
	SecondUnits []string

	// MealSlots is keyed by breakfast, lunch, dinner and snack.
	MealSlots   map[string][]string
	Ingredients []string
	Recipe      []string
	Calories    []string
	Macros      []string
}

// Get returns the pack for l.
func Get(l Locale) (Pack, bool) {
	p, ok := packs[l]
	return p, ok
}

// Parse maps user input such as "TR", "tr-TR" or "de_DE" to a supported
// locale. Anything unrecognised is English.
func Parse(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	if _, ok := packs[Locale(s)]; ok {
		return Locale(s)
	}
	return English
}

// Collect merges one list from every supported pack, dropping duplicates and
// keeping first-seen order.
func Collect(list func(Pack) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range Supported {
		for _, w := range list(packs[l]) {
			if w == "" || seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

// LongestFirst returns a copy of words sorted by descending byte length.
// Regex alternations built from it prefer "cumartesi" over "cuma".
func LongestFirst(words []string) []string {
	out := append([]string(nil), words...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// Fold lowercases s and strips combining marks so that "İşte", "işte" and
// "iste" compare equal. Dotless ı is mapped to i.
func Fold(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "ı", "i")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

/* ─── Day table ──────────────────────────────────────────────────────── */

var dayIndex = buildDayIndex()

func buildDayIndex() map[string]int {
	idx := make(map[string]int)
	for _, l := range Supported {
		for day, spellings := range packs[l].Days {
			for _, s := range spellings {
				idx[Fold(s)] = day
			}
		}
	}
	return idx
}

// DayIndex returns the canonical day (0=Monday … 6=Sunday) for any recognised
// day-name spelling, in any case and with or without diacritics.
func DayIndex(name string) (int, bool) {
	d, ok := dayIndex[Fold(strings.TrimSpace(name))]
	return d, ok
}

// DayNames returns every day spelling from every locale, longest first.
func DayNames() []string {
	var all []string
	for _, l := range Supported {
		for _, spellings := range packs[l].Days {
			all = append(all, spellings...)
		}
	}
	seen := make(map[string]bool)
	uniq := all[:0]
	for _, s := range all {
		if !seen[s] {
			seen[s] = true
			uniq = append(uniq, s)
		}
	}
	return LongestFirst(uniq)
}

// DisplayDay returns the day name shown to users of l.
func DisplayDay(l Locale, day int) string {
	p, ok := packs[l]
	if !ok {
		p = packs[English]
	}
	if day < 0 || day > 6 {
		return ""
	}
	return p.Days[day][0]
}
