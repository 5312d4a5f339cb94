package meal

import (
	"strings"

	"github.com/google/uuid"

	"lg/fitcoach-go-api/internal/locale"
)

// state is what the parser does with a continuation line.
type state int

const (
	scanning state = iota
	collectingIngredients
	collectingRecipe
)

func (s state) String() string {
	switch s {
	case collectingIngredients:
		return "collecting-ingredients"
	case collectingRecipe:
		return "collecting-recipe"
	}
	return "scanning"
}

// Parse splits meal-plan text into items. It recognises meal-slot headers
// ("Breakfast", "Öğle Yemeği"), bold item titles ("**Lunch: Lentil Soup**")
// and the ingredients, recipe, calories and macros fields under them, in any
// supported locale. Day headings leaked from a weekly format are skipped.
// Parse never fails; text it cannot place is dropped.
func Parse(raw string) []Item {
	p := &parser{}
	for _, line := range strings.Split(raw, "\n") {
		p.step(line)
	}
	p.flush()
	return p.items
}

type parser struct {
	state state
	slot  Slot // from the last slot header
	cur   *draft
	items []Item
}

type draft struct {
	slot        Slot
	title       string
	ingredients []string
	recipe      []string
	calories    string
	macros      string
}

// step applies the first matching rule to one line.
func (p *parser) step(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	clean := cleanLine(trimmed)
	folded := locale.Fold(clean)

	if isDayHeading(clean, folded) {
		return
	}
	if f, rest, ok := fieldHeader(clean); ok {
		p.startField(f, rest)
		return
	}
	if s, ok := slotHeader(folded); ok {
		p.flush()
		p.slot = s
		p.state = scanning
		return
	}
	if title, ok := itemTitle(trimmed, clean); ok && !p.continuesField(line, trimmed, title) {
		p.startItem(title)
		return
	}
	if p.state != scanning && isContinuation(line, trimmed) {
		p.appendContinuation(trimmed)
		return
	}
	p.state = scanning
}

func (p *parser) startItem(text string) {
	p.flush()
	p.state = scanning

	slot, title := splitCategory(text)
	d := &draft{title: title}
	if loc := titleKcalPattern.FindStringSubmatchIndex(title); loc != nil {
		d.calories = title[loc[2]:loc[3]] + " kcal"
		d.title = strings.TrimRight(strings.TrimSpace(title[:loc[0]]+title[loc[1]:]), " -–:|,")
	}

	switch {
	case slot != "":
		d.slot = slot
	case p.slot != "":
		d.slot = p.slot
	default:
		d.slot = slotFromText(d.title)
	}
	p.cur = d
}

func (p *parser) startField(f field, rest string) {
	if p.cur == nil {
		p.cur = &draft{slot: p.slot}
		if p.cur.slot == "" {
			p.cur.slot = Snack
		}
	}

	switch f {
	case fieldIngredients:
		p.cur.ingredients = appendPart(p.cur.ingredients, rest)
		p.state = collectingIngredients
	case fieldRecipe:
		p.cur.recipe = appendPart(p.cur.recipe, rest)
		p.state = collectingRecipe
	case fieldCalories:
		if n := firstInt(rest); n != "" {
			p.cur.calories = n + " kcal"
		} else if rest != "" {
			p.cur.calories = rest
		}
		p.state = scanning
	case fieldMacros:
		if rest != "" {
			p.cur.macros = rest
		}
		p.state = scanning
	}
}

func (p *parser) appendContinuation(trimmed string) {
	switch p.state {
	case collectingIngredients:
		p.cur.ingredients = appendPart(p.cur.ingredients, bulletLinePattern.ReplaceAllString(trimmed, ""))
	case collectingRecipe:
		if !numberedLinePattern.MatchString(trimmed) {
			trimmed = bulletLinePattern.ReplaceAllString(trimmed, "")
		}
		p.cur.recipe = appendPart(p.cur.recipe, trimmed)
	}
}

// flush emits the item in progress, if it carries anything.
func (p *parser) flush() {
	d := p.cur
	p.cur = nil
	if d == nil {
		return
	}

	item := Item{
		Slot:        d.slot,
		Title:       cleanText(d.title),
		Ingredients: joinField(d.ingredients, ", "),
		Recipe:      joinField(d.recipe, "\n"),
		CalorieText: optional(d.calories),
		MacroText:   optional(d.macros),
	}
	if item.Title == "" && item.Ingredients == nil && item.Recipe == nil &&
		item.CalorieText == nil && item.MacroText == nil {
		return
	}
	item.ID = uuid.New()
	p.items = append(p.items, item)
}

/* ─── Line rules ─────────────────────────────────────────────────────── */

// cleanLine drops leading markdown and bullet marks and every "**".
func cleanLine(trimmed string) string {
	s := strings.TrimLeft(trimmed, "#-*•> \t")
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}

func isDayHeading(clean, folded string) bool {
	if dayHeadingPattern.MatchString(folded) {
		return true
	}
	head, _, _ := strings.Cut(clean, ":")
	_, ok := locale.DayIndex(head)
	return ok
}

// fieldHeader recognises "Ingredients: ..." style lines and returns the text
// after the first colon.
func fieldHeader(clean string) (field, string, bool) {
	head, rest, found := strings.Cut(clean, ":")
	if !found {
		return 0, "", false
	}
	f, ok := fieldLabels[locale.Fold(strings.TrimSpace(head))]
	if !ok {
		return 0, "", false
	}
	return f, strings.TrimSpace(rest), true
}

// slotHeader recognises a line that is only a slot name, possibly followed by
// a colon or a parenthesised note such as "(~400 kcal)".
func slotHeader(folded string) (Slot, bool) {
	name, _, _ := strings.Cut(folded, "(")
	name = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(name), ":"))
	s, ok := slotNames[name]
	return s, ok
}

// itemTitle recognises a bold title or a plain "<Slot>: <Title>" line.
func itemTitle(trimmed, clean string) (string, bool) {
	if m := boldTitlePattern.FindStringSubmatch(trimmed); m != nil {
		text := strings.TrimSpace(strings.ReplaceAll(m[1]+m[2], "**", ""))
		return text, text != ""
	}
	head, rest, found := strings.Cut(clean, ":")
	if found && strings.TrimSpace(rest) != "" {
		if _, ok := slotNames[locale.Fold(strings.TrimSpace(head))]; ok {
			return clean, true
		}
	}
	return "", false
}

// continuesField reports whether a bold bullet inside an open field is field
// text, such as "  - **Oats** 50 g". There only "<Slot>: <Title>" starts an item.
func (p *parser) continuesField(line, trimmed, title string) bool {
	if p.state == scanning {
		return false
	}
	indented := line[0] == ' ' || line[0] == '\t'
	if !indented && !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "•") {
		return false
	}
	slot, _ := splitCategory(title)
	return slot == ""
}

func isContinuation(line, trimmed string) bool {
	if line[0] == ' ' || line[0] == '\t' {
		return true
	}
	return numberedLinePattern.MatchString(trimmed) || bulletLinePattern.MatchString(trimmed)
}

// splitCategory separates "Breakfast: Oatmeal" into its slot and title. Text
// whose prefix is not a slot name is returned whole as the title.
func splitCategory(text string) (Slot, string) {
	head, rest, found := strings.Cut(text, ":")
	if !found {
		return "", strings.TrimSpace(text)
	}
	rest = strings.TrimSpace(rest)
	if s, ok := slotNames[locale.Fold(strings.TrimSpace(head))]; ok && rest != "" {
		return s, rest
	}
	return "", strings.TrimSpace(text)
}

func slotFromText(title string) Slot {
	if name := slotWordPattern.FindString(locale.Fold(title)); name != "" {
		return slotNames[name]
	}
	return Snack
}

/* ─── Field text ─────────────────────────────────────────────────────── */

func firstInt(s string) string {
	n := firstIntPattern.FindString(s)
	return strings.NewReplacer(".", "", ",", "").Replace(n)
}

func appendPart(parts []string, s string) []string {
	if s = strings.TrimSpace(s); s == "" {
		return parts
	}
	return append(parts, s)
}

// cleanText strips bold markers and stray leading commas.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(strings.TrimLeft(s, ", \t"))
}

func joinField(parts []string, sep string) *string {
	var kept []string
	for _, part := range parts {
		part = cleanText(part)
		if sep == ", " {
			part = strings.TrimRight(part, ", ")
		}
		if part != "" {
			kept = append(kept, part)
		}
	}
	return optional(strings.Join(kept, sep))
}

func optional(s string) *string {
	s = cleanText(s)
	if s == "" {
		return nil
	}
	return &s
}
