package workout

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"lg/fitcoach-go-api/internal/locale"
)

// METEntry is the physiological model for one family of exercises.
type METEntry struct {
	Keywords             []string
	MET                  float64
	DefaultMinutesPerSet float64
	DefaultSets          int
	Cardio               bool
}

// defaultEntry applies to lines that match no keyword.
var defaultEntry = METEntry{MET: 5.0, DefaultMinutesPerSet: 1.5, DefaultSets: 3}

// metTable lists keywords in every supported locale. Lookup picks the longest
// keyword that matches as a word, so "walking lunge" beats "walking". Table
// order only breaks ties between keywords of equal length.
var metTable = []METEntry{
	// Cardio: duration-based.
	{Keywords: []string{"treadmill", "koşu bandı", "laufband", "cinta de correr"}, MET: 8.0, Cardio: true},
	{Keywords: []string{"sprint"}, MET: 10.0, Cardio: true},
	{Keywords: []string{"running", "run", "koşu", "laufen", "lauf", "correr", "carrera"}, MET: 9.8, Cardio: true},
	{Keywords: []string{"jogging", "jog", "hafif koşu", "joggen", "trotar", "trote"}, MET: 7.0, Cardio: true},
	{Keywords: []string{"walking", "walk", "yürüyüş", "spaziergang", "gehen", "caminar", "caminata"}, MET: 3.5, Cardio: true},
	{Keywords: []string{"cycling", "bike", "spinning", "bisiklet", "radfahren", "fahrrad", "ciclismo", "bicicleta"}, MET: 7.5, Cardio: true},
	{Keywords: []string{"swimming", "swim", "yüzme", "schwimmen", "natación", "nadar"}, MET: 8.0, Cardio: true},
	{Keywords: []string{"jump rope", "skipping", "ip atlama", "seilspringen", "saltar la cuerda", "comba"}, MET: 11.0, Cardio: true},
	{Keywords: []string{"rowing machine", "rowing", "kürek", "rudern", "remo"}, MET: 7.0, Cardio: true},
	{Keywords: []string{"elliptical", "eliptik", "crosstrainer", "elíptica"}, MET: 5.0, Cardio: true},
	{Keywords: []string{"stair", "merdiven", "treppen", "escaleras"}, MET: 8.8, Cardio: true},
	{Keywords: []string{"hiit", "tabata"}, MET: 8.0, Cardio: true},
	{Keywords: []string{"cardio", "kardiyo"}, MET: 7.0, Cardio: true},
	{Keywords: []string{"yoga"}, MET: 2.5, Cardio: true},
	{Keywords: []string{"pilates"}, MET: 3.0, Cardio: true},
	{Keywords: []string{"stretching", "stretch", "esneme", "germe", "dehnen", "estiramiento"}, MET: 2.3, Cardio: true},
	{Keywords: []string{"warm up", "warm-up", "warmup", "ısınma", "aufwärmen", "calentamiento"}, MET: 3.5, Cardio: true},

	// Strength and conditioning: set-based.
	{Keywords: []string{"squat", "çömelme", "kniebeuge", "sentadilla"}, MET: 7.5, DefaultMinutesPerSet: 2.0, DefaultSets: 3},
	{Keywords: []string{"deadlift", "ölü kaldırma", "kreuzheben", "peso muerto"}, MET: 6.0, DefaultMinutesPerSet: 2.0, DefaultSets: 3},
	{Keywords: []string{"bench press", "göğüs press", "bankdrücken", "press de banca", "press banca"}, MET: 5.0, DefaultMinutesPerSet: 2.0, DefaultSets: 3},
	{Keywords: []string{"shoulder press", "overhead press", "omuz press", "schulterdrücken", "press militar", "press de hombros"}, MET: 5.0, DefaultMinutesPerSet: 2.0, DefaultSets: 3},
	{Keywords: []string{"leg press", "bacak press", "beinpresse", "prensa"}, MET: 5.0, DefaultMinutesPerSet: 2.0, DefaultSets: 3},
	{Keywords: []string{"press"}, MET: 5.0, DefaultMinutesPerSet: 2.0, DefaultSets: 3},
	{Keywords: []string{"barbell row", "dumbbell row", "cable row", "bent over row", "kürek çekme", "rudern vorgebeugt", "remo con barra"}, MET: 5.0, DefaultMinutesPerSet: 2.0, DefaultSets: 3},
	{Keywords: []string{"lunge", "walking lunge", "ausfallschritt", "zancada"}, MET: 5.0, DefaultMinutesPerSet: 1.5, DefaultSets: 3},
	{Keywords: []string{"push-up", "push up", "pushup", "şınav", "liegestütz", "flexiones"}, MET: 3.8, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"pull-up", "pull up", "pullup", "chin-up", "barfiks", "klimmzug", "dominadas"}, MET: 8.0, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"dips", "dip", "fondos"}, MET: 5.0, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"lat pulldown", "pulldown", "latzug", "jalón"}, MET: 4.0, DefaultMinutesPerSet: 1.5, DefaultSets: 3},
	{Keywords: []string{"curl", "biceps", "bicep", "pazı", "bizeps", "bíceps"}, MET: 3.5, DefaultMinutesPerSet: 1.5, DefaultSets: 3},
	{Keywords: []string{"triceps", "tricep", "arka kol", "trizeps", "tríceps"}, MET: 3.5, DefaultMinutesPerSet: 1.5, DefaultSets: 3},
	{Keywords: []string{"lateral raise", "yana açış", "seitheben", "elevaciones laterales"}, MET: 3.5, DefaultMinutesPerSet: 1.5, DefaultSets: 3},
	{Keywords: []string{"hip thrust", "glute bridge", "kalça köprüsü", "hüftheben", "puente de glúteos"}, MET: 4.0, DefaultMinutesPerSet: 1.5, DefaultSets: 3},
	{Keywords: []string{"calf raise", "baldır", "wadenheben", "gemelos"}, MET: 3.5, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"crunch", "sit-up", "sit up", "situp", "mekik", "bauchpresse", "abdominales"}, MET: 3.8, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"plank", "unterarmstütz", "plancha"}, MET: 4.0, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"burpee"}, MET: 8.0, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"jumping jack", "hampelmann", "saltos de tijera"}, MET: 8.0, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"mountain climber", "dağ tırmanışı", "bergsteiger", "escalador"}, MET: 8.0, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
	{Keywords: []string{"kettlebell", "swing"}, MET: 8.0, DefaultMinutesPerSet: 1.0, DefaultSets: 3},
}

type metKeyword struct {
	keyword string
	entry   int
}

// metIndex is every keyword folded and sorted longest first.
var metIndex = indexMETTable(metTable)

func indexMETTable(table []METEntry) []metKeyword {
	var idx []metKeyword
	for i, e := range table {
		for _, kw := range e.Keywords {
			idx = append(idx, metKeyword{keyword: locale.Fold(kw), entry: i})
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return len(idx[a].keyword) > len(idx[b].keyword) })
	return idx
}

// lookupMET returns the entry for the longest keyword found as a word in a
// folded line, or the default entry.
func lookupMET(folded string) METEntry {
	for _, k := range metIndex {
		if containsWord(folded, k.keyword) {
			return metTable[k.entry]
		}
	}
	return defaultEntry
}

// keywordSuffixes are the endings a keyword may carry and still match:
// plurals and the common German and Turkish inflections ("squats",
// "kniebeugen", "kosusu").
var keywordSuffixes = map[string]bool{
	"": true, "s": true, "es": true, "e": true, "n": true, "en": true,
	"er": true, "u": true, "su": true, "lar": true, "ler": true,
}

// containsWord reports whether kw occurs in s starting at a word boundary and
// followed by at most one of keywordSuffixes, so "run" does not match
// "trunk" and "dip" does not match "diplomat".
func containsWord(s, kw string) bool {
	for from := 0; from < len(s); {
		i := strings.Index(s[from:], kw)
		if i < 0 {
			return false
		}
		start := from + i
		if !letterBefore(s[:start]) && keywordSuffixes[leadingLetters(s[start+len(kw):])] {
			return true
		}
		from = start + 1
	}
	return false
}

func letterBefore(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsLetter(r)
}

func leadingLetters(s string) string {
	end := 0
	for i, r := range s {
		if !unicode.IsLetter(r) {
			break
		}
		end = i + utf8.RuneLen(r)
	}
	return s[:end]
}
