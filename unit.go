package period

import (
	"fmt"

	"github.com/rabitt1ove/go-period/internal/mathutil"
)

// Span estimates, in nanoseconds, used only to order units. Calendrical
// units use the average Gregorian length (365.2425 days per year).
const (
	nanosPerSecond = 1_000_000_000
	spanSecond     = int64(nanosPerSecond)
	spanDay        = 86_400 * spanSecond
	spanWeek       = 7 * spanDay
	spanYear       = 31_556_952 * spanSecond
	spanQuarter    = spanYear / 4
	spanMonth      = spanYear / 12
)

// Unit identifies a unit of time measurement, such as Hours or Months.
//
// Units are partitioned into equivalence classes anchored by a base unit:
// Years, Quarters and Months share the Months base; Weeks and Days share the
// Days base; Hours down to Nanos share the Nanos base. Two units are
// convertible only when they share a base — Days are deliberately not
// convertible to Hours, because a civil day is not a fixed number of hours.
//
// Units are totally ordered by their estimated span, largest first when a
// period iterates its fields. The zero Unit is invalid and is rejected with
// [ErrMissingUnit] wherever a unit is required.
type Unit struct {
	name       string
	base       string // name of the equivalence-class base unit
	baseFactor int64  // base units per one of this unit
	span       int64  // estimated duration in nanoseconds, ordering only
}

// The built-in units.
var (
	// Years is 12 Months.
	Years = Unit{name: "Years", base: "Months", baseFactor: 12, span: spanYear}
	// Quarters is 3 Months.
	Quarters = Unit{name: "Quarters", base: "Months", baseFactor: 3, span: spanQuarter}
	// Months is the base of the calendrical class.
	Months = Unit{name: "Months", base: "Months", baseFactor: 1, span: spanMonth}
	// Weeks is 7 Days.
	Weeks = Unit{name: "Weeks", base: "Days", baseFactor: 7, span: spanWeek}
	// Days is the base of the civil-day class.
	Days = Unit{name: "Days", base: "Days", baseFactor: 1, span: spanDay}
	// Hours is 3600 Seconds.
	Hours = Unit{name: "Hours", base: "Nanos", baseFactor: 3_600 * int64(nanosPerSecond), span: 3_600 * spanSecond}
	// Minutes is 60 Seconds.
	Minutes = Unit{name: "Minutes", base: "Nanos", baseFactor: 60 * int64(nanosPerSecond), span: 60 * spanSecond}
	// Seconds is 1e9 Nanos.
	Seconds = Unit{name: "Seconds", base: "Nanos", baseFactor: nanosPerSecond, span: spanSecond}
	// Millis is one thousandth of a second.
	Millis = Unit{name: "Millis", base: "Nanos", baseFactor: 1_000_000, span: 1_000_000}
	// Micros is one millionth of a second.
	Micros = Unit{name: "Micros", base: "Nanos", baseFactor: 1_000, span: 1_000}
	// Nanos is the base of the time-of-day class.
	Nanos = Unit{name: "Nanos", base: "Nanos", baseFactor: 1, span: 1}
)

// NewUnit creates a custom unit equal to count of the given base unit's
// class base. The new unit joins base's equivalence class: a "Fortnights"
// unit built on Days converts to Days and Weeks but not to Hours.
func NewUnit(name string, base Unit, count int64) (Unit, error) {
	if name == "" {
		return Unit{}, fmt.Errorf("period: unit name must not be empty")
	}
	if !base.isValid() {
		return Unit{}, fmt.Errorf("period: base unit: %w", ErrMissingUnit)
	}
	if count < 1 {
		return Unit{}, fmt.Errorf("period: unit size must be at least 1, got %d", count)
	}
	factor, ok := mathutil.Mul(base.baseFactor, count)
	if !ok {
		return Unit{}, fmt.Errorf("period: unit %q size: %w", name, ErrOverflow)
	}
	span, ok := mathutil.Mul(base.span, count)
	if !ok {
		return Unit{}, fmt.Errorf("period: unit %q span: %w", name, ErrOverflow)
	}
	return Unit{name: name, base: base.base, baseFactor: factor, span: span}, nil
}

func (u Unit) isValid() bool {
	return u.name != ""
}

// Name returns the unit's name, such as "Hours".
func (u Unit) Name() string {
	return u.name
}

// ConvertibleTo reports whether u and other share a base unit with an
// integral conversion factor in at least one direction.
func (u Unit) ConvertibleTo(other Unit) bool {
	if !u.isValid() || !other.isValid() || u.base != other.base {
		return false
	}
	return u.baseFactor%other.baseFactor == 0 || other.baseFactor%u.baseFactor == 0
}

// Factor returns how many of the smaller unit make up one of u. It reports
// false when the units share no base or the factor is not a positive
// integer; it never returns zero. Factor of a unit against itself is 1.
func (u Unit) Factor(smaller Unit) (int64, bool) {
	if !u.isValid() || !smaller.isValid() || u.base != smaller.base {
		return 0, false
	}
	if smaller.baseFactor > u.baseFactor || u.baseFactor%smaller.baseFactor != 0 {
		return 0, false
	}
	return u.baseFactor / smaller.baseFactor, true
}

// Compare orders units by estimated span, smallest first, with ties broken
// by name so the order is total and deterministic.
func (u Unit) Compare(other Unit) int {
	switch {
	case u.span < other.span:
		return -1
	case u.span > other.span:
		return 1
	case u.name < other.name:
		return -1
	case u.name > other.name:
		return 1
	}
	return 0
}

// Equal reports whether two units are the same unit.
func (u Unit) Equal(other Unit) bool {
	return u == other
}

// String returns the unit's name.
func (u Unit) String() string {
	return u.name
}
