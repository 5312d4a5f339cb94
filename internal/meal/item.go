// Package meal turns free-form daily meal-plan text into slotted meal items.
package meal

import "github.com/google/uuid"

// Slot is one of the four meal categories.
type Slot string

const (
	Breakfast Slot = "breakfast"
	Lunch     Slot = "lunch"
	Dinner    Slot = "dinner"
	Snack     Slot = "snack"
)

// Slots lists the meal slots in the order they are served.
var Slots = []Slot{Breakfast, Lunch, Dinner, Snack}

// Item is one parsed meal. IDs are generated per parse and are not stable
// across calls. Optional fields are nil when the text never supplied them.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Slot        Slot      `json:"meal_slot"`
	Title       string    `json:"title"`
	Ingredients *string   `json:"ingredients,omitempty"`
	Recipe      *string   `json:"recipe,omitempty"`
	CalorieText *string   `json:"calorie_text,omitempty"`
	MacroText   *string   `json:"macro_text,omitempty"`
}

// BySlot groups items by slot, keeping their parse order.
func BySlot(items []Item) map[Slot][]Item {
	out := make(map[Slot][]Item, len(Slots))
	for _, it := range items {
		out[it.Slot] = append(out[it.Slot], it)
	}
	return out
}
