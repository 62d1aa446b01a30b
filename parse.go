package period

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// unitTokens maps literal suffixes and names (lower-cased) to built-in
// units. Note "m" means Minutes; Months are "mo".
var unitTokens = map[string]Unit{
	"y": Years, "yr": Years, "year": Years, "years": Years,
	"q": Quarters, "quarter": Quarters, "quarters": Quarters,
	"mo": Months, "month": Months, "months": Months,
	"w": Weeks, "week": Weeks, "weeks": Weeks,
	"d": Days, "day": Days, "days": Days,
	"h": Hours, "hr": Hours, "hour": Hours, "hours": Hours,
	"m": Minutes, "min": Minutes, "minute": Minutes, "minutes": Minutes,
	"s": Seconds, "sec": Seconds, "second": Seconds, "seconds": Seconds,
	"ms": Millis, "milli": Millis, "millis": Millis,
	"us": Micros, "µs": Micros, "micro": Micros, "micros": Micros,
	"ns": Nanos, "nano": Nanos, "nanos": Nanos,
}

// UnitNamed looks up a built-in unit by name or literal suffix, such as
// "Years", "y" or "min". The lookup is case-insensitive.
func UnitNamed(name string) (Unit, bool) {
	u, ok := unitTokens[strings.ToLower(strings.TrimSpace(name))]
	return u, ok
}

// Parse parses a period literal such as "2y 14mo 6h -7min" or the
// [Fields.String] form "[2 Years, 14 Months]". Fields are integer amounts
// followed by a unit suffix or name, separated by spaces and/or commas; the
// surrounding brackets are optional and "[]" is the empty period. A unit
// appearing twice fails with [ErrDuplicateUnit]; an amount outside the int64
// range fails with [ErrOverflow].
func Parse(s string) (Fields, error) {
	body := strings.TrimSpace(s)
	if body == "" {
		return Fields{}, fmt.Errorf("period: empty period literal")
	}
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		body = strings.TrimSpace(body[1 : len(body)-1])
		if body == "" {
			return Zero, nil
		}
	}

	var fields []Field
	i := 0
	for i < len(body) {
		for i < len(body) && (body[i] == ',' || body[i] == ' ' || body[i] == '\t') {
			i++
		}
		if i >= len(body) {
			break
		}
		start := i
		if body[i] == '+' || body[i] == '-' {
			i++
		}
		digits := i
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			i++
		}
		if i == digits {
			return Fields{}, fmt.Errorf("period: invalid period literal %q", s)
		}
		amount, err := strconv.ParseInt(body[start:i], 10, 64)
		if err != nil {
			return Fields{}, fmt.Errorf("period: amount %q out of range: %w", body[start:i], ErrOverflow)
		}
		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
		word := i
		for i < len(body) {
			r, size := utf8.DecodeRuneInString(body[i:])
			if !unicode.IsLetter(r) {
				break
			}
			i += size
		}
		if word == i {
			return Fields{}, fmt.Errorf("period: invalid period literal %q", s)
		}
		unit, ok := UnitNamed(body[word:i])
		if !ok {
			return Fields{}, fmt.Errorf("period: unknown unit %q in %q", body[word:i], s)
		}
		fields = append(fields, Field{amount: amount, unit: unit})
	}
	if len(fields) == 0 {
		return Fields{}, fmt.Errorf("period: invalid period literal %q", s)
	}
	return New(fields...)
}

// parseField parses a literal containing exactly one field.
func parseField(s string) (Field, error) {
	p, err := Parse(s)
	if err != nil {
		return Field{}, err
	}
	if p.Size() != 1 {
		return Field{}, fmt.Errorf("period: expected a single field in %q", s)
	}
	return p.fields[0], nil
}
