package meal

import (
	"regexp"
	"sort"
	"strings"

	"lg/fitcoach-go-api/internal/locale"
)

type field int

const (
	fieldIngredients field = iota
	fieldRecipe
	fieldCalories
	fieldMacros
)

var (
	// fieldLabels maps every folded field label to its field.
	fieldLabels = buildFieldLabels()

	// slotNames maps every folded meal-slot header to its slot.
	slotNames = buildSlotNames()

	// slotWordPattern finds a slot name inside a title, e.g. "Light Lunch Bowl".
	slotWordPattern = regexp.MustCompile(`\b(?:` + quotedLongestFirst(mapKeys(slotNames)) + `)\b`)

	// dayHeadingPattern matches "1. Gün", "Day 2", "Tag 3:" and similar
	// numbered day headings on a folded line.
	dayHeadingPattern = regexp.MustCompile(`^(?:\d+\s*\.\s*(?:` + dayWords + `)|(?:` + dayWords + `)\s*\d+)(?:\s*$|\s*[:.)–]|\s+[-–])`)

	dayWords = quotedLongestFirst(locale.Collect(func(p locale.Pack) []string { return p.DayWord }))

	// boldTitlePattern matches "**Breakfast: Oatmeal**" and "**Oatmeal**",
	// optionally behind a bullet or markdown heading marks.
	boldTitlePattern = regexp.MustCompile(`^(?:#+\s*)?(?:[-•]\s*)?\*\*(.+?)\*\*(.*)$`)

	numberedLinePattern = regexp.MustCompile(`^\d+\s*[.)]\s*`)
	bulletLinePattern   = regexp.MustCompile(`^[-*•]+\s*`)

	// firstIntPattern also accepts thousands separators, "1,200" or "1.200".
	firstIntPattern = regexp.MustCompile(`\d+(?:[.,]\d{3})*`)

	// titleKcalPattern matches an inline estimate in a title, e.g. "(~400 kcal)".
	titleKcalPattern = regexp.MustCompile(`(?i)\(?\s*[~≈]?\s*(\d+)\s*(?:kcal|kalori|calories|kalorien|calorias)\s*\)?`)
)

func buildFieldLabels() map[string]field {
	out := make(map[string]field)
	add := func(f field, list func(locale.Pack) []string) {
		for _, w := range locale.Collect(list) {
			out[locale.Fold(w)] = f
		}
	}
	add(fieldIngredients, func(p locale.Pack) []string { return p.Ingredients })
	add(fieldRecipe, func(p locale.Pack) []string { return p.Recipe })
	add(fieldCalories, func(p locale.Pack) []string { return p.Calories })
	add(fieldMacros, func(p locale.Pack) []string { return p.Macros })
	return out
}

func buildSlotNames() map[string]Slot {
	out := make(map[string]Slot)
	for _, l := range locale.Supported {
		p, _ := locale.Get(l)
		for _, s := range Slots {
			for _, name := range p.MealSlots[string(s)] {
				key := locale.Fold(name)
				if _, taken := out[key]; !taken {
					out[key] = s
				}
			}
		}
	}
	return out
}

func mapKeys(m map[string]Slot) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func quotedLongestFirst(words []string) string {
	words = locale.LongestFirst(words)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, "|")
}
