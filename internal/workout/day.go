// Package workout turns free-form weekly workout text into a fixed seven-day
// program and estimates the energy cost of each training day.
package workout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"lg/fitcoach-go-api/internal/locale"
)

// Day is a canonical, locale-independent weekday. Monday is 0.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Days lists the canonical days in program order.
var Days = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayIDs = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (d Day) Valid() bool { return d >= Monday && d <= Sunday }

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayIDs[d]
}

// MarshalText encodes d as its canonical identifier, which also makes Day
// usable as a JSON object key.
func (d Day) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid day %d", int(d))
	}
	return []byte(dayIDs[d]), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	day, ok := ParseDay(string(b))
	if !ok {
		return fmt.Errorf("unknown day %q", b)
	}
	*d = day
	return nil
}

// ParseDay accepts a canonical identifier ("monday") or any day-name spelling
// of a supported locale ("Pazartesi", "lunes").
func ParseDay(s string) (Day, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, id := range dayIDs {
		if id == s {
			return Day(i), true
		}
	}
	if i, ok := locale.DayIndex(s); ok {
		return Day(i), true
	}
	return 0, false
}

// WeeklyProgram holds the cleaned content of each canonical day. An empty
// string or a rest marker means no workout that day.
type WeeklyProgram [7]string

// MarshalJSON writes all seven days as an object in canonical day order.
func (p WeeklyProgram) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, d := range Days {
		if i > 0 {
			b.WriteByte(',')
		}
		val, err := json.Marshal(p[d])
		if err != nil {
			return nil, err
		}
		b.WriteByte('"')
		b.WriteString(dayIDs[d])
		b.WriteString(`":`)
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (p *WeeklyProgram) UnmarshalJSON(data []byte) error {
	var raw map[Day]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = WeeklyProgram{}
	for d, content := range raw {
		p[d] = content
	}
	return nil
}

// CalorieMap is the estimated or annotated kcal cost per training day.
// Values are non-negative multiples of 5; rest days have no entry.
type CalorieMap map[Day]int

// Total sums the week.
func (m CalorieMap) Total() int {
	total := 0
	for _, kcal := range m {
		total += kcal
	}
	return total
}

// maxKcal caps pathological inputs ("100000000 sets") so results stay
// representable everywhere they are stored.
const maxKcal = math.MaxInt32

// RoundKcal snaps a manually entered kcal value to the CalorieMap grid.
func RoundKcal(kcal int) int { return roundToFive(float64(kcal)) }

// roundToFive rounds v to the nearest multiple of 5, clamping to [0, maxKcal].
func roundToFive(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > maxKcal {
		v = maxKcal
	}
	return int(math.Round(v/5)) * 5
}
