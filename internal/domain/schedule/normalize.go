package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

const dayOfWeekField = "dayOfWeek"

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Days is a set of weekdays kept in ordinal order, sunday first.
type Days []time.Weekday

// Names returns the canonical lowercase day names.
func (d Days) Names() []string {
	names := make([]string, 0, len(d))
	for _, w := range d {
		names = append(names, strings.ToLower(w.String()))
	}
	return names
}

func (d Days) Contains(w time.Weekday) bool {
	return slices.Contains(d, w)
}

func (d Days) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Names())
}

func (d *Days) UnmarshalJSON(b []byte) error {
	days, err := Normalize(b)
	if err != nil {
		return err
	}
	*d = days
	return nil
}

// Normalize decodes a raw dayOfWeek value and normalizes it with NormalizeValue.
func Normalize(raw json.RawMessage) (Days, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, validator.Required(dayOfWeekField)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, invalidDay("must be a day name, a number from 0 to 7, or an array of those")
	}

	return NormalizeValue(v)
}

// NormalizeValue accepts a day name (case-insensitive), an integer from 0 to 7
// where 0 and 7 are both sunday, or a slice mixing the two. A single invalid
// element rejects the whole value.
func NormalizeValue(v any) (Days, error) {
	var values []any
	switch t := v.(type) {
	case nil:
		return nil, validator.Required(dayOfWeekField)
	case []any:
		values = t
	case []string:
		for _, s := range t {
			values = append(values, s)
		}
	case []int:
		for _, n := range t {
			values = append(values, n)
		}
	default:
		values = []any{v}
	}

	if len(values) == 0 {
		return nil, invalidDay("must contain at least one day")
	}

	var seen [7]bool
	for _, item := range values {
		day, ok := parseDay(item)
		if !ok {
			return nil, invalidDay(describe(item) + " is not a valid day of week")
		}
		seen[day] = true
	}

	days := make(Days, 0, len(seen))
	for i, ok := range seen {
		if ok {
			days = append(days, time.Weekday(i))
		}
	}
	return days, nil
}

func parseDay(v any) (time.Weekday, bool) {
	switch t := v.(type) {
	case string:
		w, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(t))]
		return w, ok
	case time.Weekday:
		return t, t >= time.Sunday && t <= time.Saturday
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return ordinalDay(n)
		}
		f, err := t.Float64()
		if err != nil || f != math.Trunc(f) || f < 0 || f > 7 {
			return 0, false
		}
		return ordinalDay(int64(f))
	case int:
		return ordinalDay(int64(t))
	case int64:
		return ordinalDay(t)
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return ordinalDay(int64(t))
	default:
		return 0, false
	}
}

func ordinalDay(n int64) (time.Weekday, bool) {
	if n < 0 || n > 7 {
		return 0, false
	}
	return time.Weekday(n % 7), true
}

func describe(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case nil:
		return "null"
	case []any, map[string]any:
		return "nested value"
	default:
		return fmt.Sprint(t)
	}
}

func invalidDay(message string) error {
	return validator.ValidationErrors{}.Add(dayOfWeekField, message)
}
