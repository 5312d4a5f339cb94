package workout

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"lg/fitcoach-go-api/internal/locale"
)

/* ─── Segmentation across locales ────────────────────────────────────── */

// TestParseProgram_AllLocales builds a seven-day text with every spelling of
// every locale and checks each canonical day gets its own content.
func TestParseProgram_AllLocales(t *testing.T) {
	for _, l := range locale.Supported {
		p, _ := locale.Get(l)
		for variant := 0; variant < 2; variant++ {
			var b strings.Builder
			b.WriteString("Intro sentence that should be dropped.\n")
			for d, spellings := range p.Days {
				name := spellings[0]
				if variant < len(spellings) {
					name = spellings[variant]
				}
				fmt.Fprintf(&b, "%s: Block %d\n", name, d)
			}

			t.Run(fmt.Sprintf("%s/%d", l, variant), func(t *testing.T) {
				res := ParseProgram(b.String())
				for _, d := range Days {
					want := fmt.Sprintf("Block %d", d)
					if res.Program[d] != want {
						t.Errorf("%s: expected %q, got %q", d, want, res.Program[d])
					}
				}
			})
		}
	}
}

func TestSegment_RepeatedDayIsConcatenated(t *testing.T) {
	got := Segment("Monday: Squat\nTuesday: Koşu 30 dk\nMonday: Lunge")
	if got[Monday] != "Squat\n\nLunge" {
		t.Errorf("expected concatenated Monday, got %q", got[Monday])
	}
	if got[Tuesday] != "Koşu 30 dk" {
		t.Errorf("expected Tuesday content, got %q", got[Tuesday])
	}
}

func TestSegment_LongestDayNameWins(t *testing.T) {
	got := Segment("Pazartesi: Squat\nCumartesi: Yüzme 30 dk\nPazar: Dinlenme\nCuma: Plank 1 dk")
	cases := map[Day]string{
		Monday:   "Squat",
		Friday:   "Plank 1 dk",
		Saturday: "Yüzme 30 dk",
		Sunday:   "Dinlenme",
	}
	for d, want := range cases {
		if got[d] != want {
			t.Errorf("%s: expected %q, got %q", d, want, got[d])
		}
	}
}

func TestSegment_MarkdownHeaders(t *testing.T) {
	got := Segment("### **Monday:** Chest Day\n- Bench press 3x10\n\n**Tuesday**: Rest\n")
	if got[Monday] != "Chest Day\n- Bench press 3x10" {
		t.Errorf("unexpected Monday %q", got[Monday])
	}
	if got[Tuesday] != "Rest" {
		t.Errorf("unexpected Tuesday %q", got[Tuesday])
	}
}

func TestSegment_DayNameInsideWordIgnored(t *testing.T) {
	got := Segment("Monday: Squat\nSuperSunday: not a header")
	if got[Sunday] != "" {
		t.Errorf("expected Sunday empty, got %q", got[Sunday])
	}
	if !strings.Contains(got[Monday], "SuperSunday") {
		t.Errorf("expected Monday to keep the text, got %q", got[Monday])
	}
}

func TestParseProgram_NoDayNames(t *testing.T) {
	res := ParseProgram("Here is your plan:\nSquat 3 set 10 tekrar")
	if res.Program[Monday] != "Squat 3 set 10 tekrar" {
		t.Errorf("expected whole sanitized text on Monday, got %q", res.Program[Monday])
	}
	for _, d := range Days[1:] {
		if res.Program[d] != "" {
			t.Errorf("%s: expected empty, got %q", d, res.Program[d])
		}
	}
	if _, ok := res.Calories[Monday]; !ok {
		t.Error("expected Monday calorie entry")
	}
}

func TestParseProgram_Empty(t *testing.T) {
	for _, in := range []string{"", "   \n\t  \n"} {
		res := ParseProgram(in)
		for _, d := range Days {
			if res.Program[d] != "" {
				t.Errorf("%q: %s expected empty, got %q", in, d, res.Program[d])
			}
		}
		if len(res.Calories) != 0 {
			t.Errorf("%q: expected empty calorie map, got %v", in, res.Calories)
		}
	}
}

/* ─── Annotations and estimates ──────────────────────────────────────── */

func TestParseProgram_AnnotationAndEstimate(t *testing.T) {
	raw := "Here is your weekly workout program:\n\n" +
		"Monday: Chest Day (~350 kcal)\n- Bench press 3 sets\n" +
		"Tuesday: Rest\n" +
		"Wednesday: Koşu 30 dk\n" +
		"Sunday: -\n"
	res := ParseProgramWithBodyweight(raw, 70)

	if res.Program[Monday] != "Chest Day\n- Bench press 3 sets" {
		t.Errorf("expected annotation stripped, got %q", res.Program[Monday])
	}
	if res.Calories[Monday] != 350 {
		t.Errorf("expected Monday 350, got %d", res.Calories[Monday])
	}
	if res.Calories[Wednesday] != 345 {
		t.Errorf("expected Wednesday 345, got %d", res.Calories[Wednesday])
	}
	for _, d := range []Day{Tuesday, Thursday, Friday, Saturday, Sunday} {
		if kcal, ok := res.Calories[d]; ok {
			t.Errorf("%s: expected no entry, got %d", d, kcal)
		}
	}
	if res.Program[Sunday] != "-" {
		t.Errorf("expected rest marker kept, got %q", res.Program[Sunday])
	}
}

func TestParseProgram_SanitizesEachDay(t *testing.T) {
	raw := "Pazartesi:\nİşte haftalık antrenman programın:\nHedef: Kilo vermek\nKilo: 80 kg\n\nSquat 3 set 10 tekrar\n\nLunge 3 set 12 tekrar"
	res := ParseProgramWithBodyweight(raw, 80)
	want := "Squat 3 set 10 tekrar\n\nLunge 3 set 12 tekrar"
	if res.Program[Monday] != want {
		t.Errorf("expected %q, got %q", want, res.Program[Monday])
	}
}

func TestParseProgram_CaloriesAreMultiplesOfFive(t *testing.T) {
	raw := "Monday: Chest (~352 kcal)\nTuesday: Squat 3 set 10 tekrar\nThursday: Bisiklet 45 dk"
	res := ParseProgramWithBodyweight(raw, 83)
	for d, kcal := range res.Calories {
		if kcal%5 != 0 || kcal < 0 {
			t.Errorf("%s: %d is not a non-negative multiple of 5", d, kcal)
		}
	}
	if res.Calories[Monday] != 350 {
		t.Errorf("expected annotation rounded to 350, got %d", res.Calories[Monday])
	}
}

/* ─── Robustness ─────────────────────────────────────────────────────── */

// TestParseProgram_Pathological checks that hostile input never panics and
// always yields a seven-day program.
func TestParseProgram_Pathological(t *testing.T) {
	inputs := []string{
		"\x00\xff\xfe\xfd binary",
		strings.Repeat("a", 1<<20),
		strings.Repeat("Monday:", 10000),
		strings.Repeat("Pazartesi: Squat 3 set 10 tekrar\n", 2000),
		"Monday: (~99999999999999999999999 kcal)",
		"Monday: Squat 99999999999999999999 set",
		"Monday: Squat 2147483647 set 10 tekrar",
		"::::\n\n\n::",
		"Sunday:",
	}
	for i, in := range inputs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			res := ParseProgramWithBodyweight(in, 1e9)
			if len(res.Program) != 7 {
				t.Fatalf("expected 7 days, got %d", len(res.Program))
			}
			for d, kcal := range res.Calories {
				if kcal < 0 {
					t.Errorf("%s: negative kcal %d", d, kcal)
				}
			}
		})
	}
}

/* ─── JSON shape ─────────────────────────────────────────────────────── */

func TestWeeklyProgram_JSONDayOrder(t *testing.T) {
	var p WeeklyProgram
	p[Sunday] = "Rest"
	p[Monday] = "Squat"
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	prev := -1
	for _, d := range Days {
		i := strings.Index(s, `"`+d.String()+`"`)
		if i < 0 || i < prev {
			t.Fatalf("day %s missing or out of order in %s", d, s)
		}
		prev = i
	}

	var back WeeklyProgram
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != p {
		t.Errorf("expected %v, got %v", p, back)
	}
}

func TestCalorieMap_JSONKeys(t *testing.T) {
	b, err := json.Marshal(CalorieMap{Monday: 350, Friday: 200})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"friday":200,"monday":350}` {
		t.Errorf("unexpected JSON %s", b)
	}
}

func TestParseDay(t *testing.T) {
	cases := map[string]Day{
		"monday":    Monday,
		"Sunday":    Sunday,
		"Pazartesi": Monday,
		"miércoles": Wednesday,
		"Samstag":   Saturday,
	}
	for in, want := range cases {
		got, ok := ParseDay(in)
		if !ok || got != want {
			t.Errorf("ParseDay(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseDay("someday"); ok {
		t.Error("expected unknown day to fail")
	}
}
