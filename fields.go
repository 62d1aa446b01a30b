// Package period provides an immutable multi-unit period representation
// with conversion between heterogeneous calendrical units and an
// overflow-checked normalization engine.
//
// A [Fields] value maps units to amounts, one amount per unit, iterated
// largest unit first. Periods like "2 Years, 14 Months, 6 Hours, -7 Minutes"
// can be normalized into canonical form:
//
//	p, _ := period.New(
//		period.MustField(6, period.Hours),
//		period.MustField(-7, period.Minutes),
//	)
//	n, _ := p.Normalized()
//	fmt.Println(n) // [5 Hours, 53 Minutes]
//
// All types are immutable values: every operation returns a new instance and
// values are safe to share across goroutines without synchronization.
// Arithmetic never silently wraps; results outside the int64 range fail with
// [ErrOverflow].
package period

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rabitt1ove/go-period/internal/mathutil"
)

// Fields is an immutable period made of unit-amount pairs with no duplicate
// units, ordered largest unit first. The zero value is the canonical empty
// period [Zero], which represents zero independent of any unit.
//
// A non-empty period whose every amount is zero reports IsZero but is not
// Equal to the empty period: "0 Hours" still records that Hours are present.
type Fields struct {
	fields []Field // sorted largest unit first, units unique, never mutated
}

// Zero is the canonical empty period.
var Zero = Fields{}

// Of creates a period of a single unit and amount.
func Of(amount int64, unit Unit) (Fields, error) {
	if !unit.isValid() {
		return Fields{}, ErrMissingUnit
	}
	return Fields{fields: []Field{{amount: amount, unit: unit}}}, nil
}

// New creates a period from the given fields. It fails with
// [ErrDuplicateUnit] if two fields carry the same unit.
func New(fields ...Field) (Fields, error) {
	if len(fields) == 0 {
		return Zero, nil
	}
	m := make(map[Unit]int64, len(fields))
	for i, f := range fields {
		if !f.unit.isValid() {
			return Fields{}, fmt.Errorf("period: field %d: %w", i, ErrMissingUnit)
		}
		if _, ok := m[f.unit]; ok {
			return Fields{}, fmt.Errorf("period: unit %s listed twice: %w", f.unit, ErrDuplicateUnit)
		}
		m[f.unit] = f.amount
	}
	return makeFields(m), nil
}

// Total sums the given periods into one. Units shared between periods have
// their amounts added, not replaced.
func Total(periods ...Fields) (Fields, error) {
	m := make(map[Unit]int64)
	for _, p := range periods {
		for _, f := range p.fields {
			sum, ok := mathutil.Add(m[f.unit], f.amount)
			if !ok {
				return Fields{}, fmt.Errorf("period: total of %s: %w", f.unit, ErrOverflow)
			}
			m[f.unit] = sum
		}
	}
	return makeFields(m), nil
}

// OfDuration decomposes an exact duration into a two-field period of Seconds
// and Nanos, with the nanosecond amount always in [0, 1e9). Both fields are
// present even when zero.
func OfDuration(d time.Duration) Fields {
	secs, _ := mathutil.FloorDiv(int64(d), nanosPerSecond)
	nanos, _ := mathutil.FloorMod(int64(d), nanosPerSecond)
	return Fields{fields: []Field{
		{amount: secs, unit: Seconds},
		{amount: nanos, unit: Nanos},
	}}
}

// makeFields wraps a scratch map into an immutable Fields, sorting largest
// unit first.
func makeFields(m map[Unit]int64) Fields {
	if len(m) == 0 {
		return Zero
	}
	fields := make([]Field, 0, len(m))
	for u, amount := range m {
		fields = append(fields, Field{amount: amount, unit: u})
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].unit.Compare(fields[j].unit) > 0
	})
	return Fields{fields: fields}
}

// scratch returns a mutable copy of the period's unit-amount map.
func (p Fields) scratch() map[Unit]int64 {
	m := make(map[Unit]int64, len(p.fields)+4)
	for _, f := range p.fields {
		m[f.unit] = f.amount
	}
	return m
}

// Size returns the number of fields in the period.
func (p Fields) Size() int {
	return len(p.fields)
}

// IsZero reports whether every field has a zero amount. The empty period is
// zero.
func (p Fields) IsZero() bool {
	for _, f := range p.fields {
		if f.amount != 0 {
			return false
		}
	}
	return true
}

// IsPositive reports whether every field has an amount greater than zero.
func (p Fields) IsPositive() bool {
	for _, f := range p.fields {
		if f.amount <= 0 {
			return false
		}
	}
	return true
}

// IsPositiveOrZero reports whether no field has a negative amount.
func (p Fields) IsPositiveOrZero() bool {
	for _, f := range p.fields {
		if f.amount < 0 {
			return false
		}
	}
	return true
}

// Contains reports whether the period has a field of the given unit.
func (p Fields) Contains(unit Unit) bool {
	_, ok := p.Get(unit)
	return ok
}

// Get returns the field of the given unit, or false when absent.
func (p Fields) Get(unit Unit) (Field, bool) {
	for _, f := range p.fields {
		if f.unit == unit {
			return f, true
		}
	}
	return Field{}, false
}

// Amount returns the amount of the given unit, or zero when the unit is
// absent. Use [Fields.Get] to distinguish an absent unit from a zero amount.
func (p Fields) Amount(unit Unit) int64 {
	f, _ := p.Get(unit)
	return f.amount
}

// Fields returns the period's fields, largest unit first, as a fresh slice.
func (p Fields) Fields() []Field {
	out := make([]Field, len(p.fields))
	copy(out, p.fields)
	return out
}

// Units returns the period's units, largest first, as a fresh slice.
func (p Fields) Units() []Unit {
	out := make([]Unit, len(p.fields))
	for i, f := range p.fields {
		out[i] = f.unit
	}
	return out
}

// With returns the period with the given unit set to the amount, replacing
// any existing amount for that unit.
func (p Fields) With(amount int64, unit Unit) (Fields, error) {
	if !unit.isValid() {
		return Fields{}, ErrMissingUnit
	}
	if cur, ok := p.Get(unit); ok && cur.amount == amount {
		return p, nil
	}
	m := p.scratch()
	m[unit] = amount
	return makeFields(m), nil
}

// WithAll returns the period with every field of other merged in, replacing
// amounts for units present in both. This is an overlay; use [Fields.Plus]
// to add amounts instead.
func (p Fields) WithAll(other Fields) Fields {
	if other.Size() == 0 {
		return p
	}
	if p.Size() == 0 {
		return other
	}
	m := p.scratch()
	for _, f := range other.fields {
		m[f.unit] = f.amount
	}
	return makeFields(m)
}

// Without returns the period with the given unit removed. Removing an absent
// unit is a no-op, not an error.
func (p Fields) Without(unit Unit) (Fields, error) {
	if !unit.isValid() {
		return Fields{}, ErrMissingUnit
	}
	if !p.Contains(unit) {
		return p, nil
	}
	m := p.scratch()
	delete(m, unit)
	return makeFields(m), nil
}

// Plus returns the period with every field of other added. Units absent from
// p are inserted as-is.
func (p Fields) Plus(other Fields) (Fields, error) {
	if other.Size() == 0 {
		return p, nil
	}
	m := p.scratch()
	for _, f := range other.fields {
		sum, ok := mathutil.Add(m[f.unit], f.amount)
		if !ok {
			return Fields{}, fmt.Errorf("period: adding %s: %w", f, ErrOverflow)
		}
		m[f.unit] = sum
	}
	return makeFields(m), nil
}

// Minus returns the period with every field of other subtracted. Units
// absent from p are inserted negated.
func (p Fields) Minus(other Fields) (Fields, error) {
	if other.Size() == 0 {
		return p, nil
	}
	m := p.scratch()
	for _, f := range other.fields {
		diff, ok := mathutil.Sub(m[f.unit], f.amount)
		if !ok {
			return Fields{}, fmt.Errorf("period: subtracting %s: %w", f, ErrOverflow)
		}
		m[f.unit] = diff
	}
	return makeFields(m), nil
}

// MultipliedBy returns the period with every amount multiplied by the
// scalar.
func (p Fields) MultipliedBy(scalar int64) (Fields, error) {
	if scalar == 1 || p.Size() == 0 {
		return p, nil
	}
	m := make(map[Unit]int64, len(p.fields))
	for _, f := range p.fields {
		product, ok := mathutil.Mul(f.amount, scalar)
		if !ok {
			return Fields{}, fmt.Errorf("period: %s times %d: %w", f, scalar, ErrOverflow)
		}
		m[f.unit] = product
	}
	return makeFields(m), nil
}

// DividedBy returns the period with every amount divided by the divisor,
// truncating toward zero.
func (p Fields) DividedBy(divisor int64) (Fields, error) {
	if divisor == 0 {
		return Fields{}, ErrDivideByZero
	}
	if divisor == 1 || p.Size() == 0 {
		return p, nil
	}
	m := make(map[Unit]int64, len(p.fields))
	for _, f := range p.fields {
		quotient, ok := mathutil.Div(f.amount, divisor)
		if !ok {
			return Fields{}, fmt.Errorf("period: %s divided by %d: %w", f, divisor, ErrOverflow)
		}
		m[f.unit] = quotient
	}
	return makeFields(m), nil
}

// Negated returns the period with every amount negated.
func (p Fields) Negated() (Fields, error) {
	return p.MultipliedBy(-1)
}

// Retain returns the period keeping only the listed units. Listing a unit
// the period does not contain is not an error.
func (p Fields) Retain(units ...Unit) (Fields, error) {
	keep := make(map[Unit]bool, len(units))
	for _, u := range units {
		if !u.isValid() {
			return Fields{}, ErrMissingUnit
		}
		keep[u] = true
	}
	m := make(map[Unit]int64, len(p.fields))
	for _, f := range p.fields {
		if keep[f.unit] {
			m[f.unit] = f.amount
		}
	}
	return makeFields(m), nil
}

// RetainConvertible returns the period keeping only fields whose unit is
// convertible to at least one of the listed units.
func (p Fields) RetainConvertible(units ...Unit) (Fields, error) {
	for _, u := range units {
		if !u.isValid() {
			return Fields{}, ErrMissingUnit
		}
	}
	m := make(map[Unit]int64, len(p.fields))
	for _, f := range p.fields {
		for _, u := range units {
			if f.unit.ConvertibleTo(u) {
				m[f.unit] = f.amount
				break
			}
		}
	}
	return makeFields(m), nil
}

// Remainder returns the period with every amount replaced by its remainder
// against the given field converted into that amount's unit. For example,
// the remainder of "37 Minutes" by "1 Hours" is "37 Minutes", while the
// remainder of "90 Minutes" is "30 Minutes". Every unit of the period must
// be reachable from the field's unit.
func (p Fields) Remainder(field Field) (Fields, error) {
	if !field.unit.isValid() {
		return Fields{}, ErrMissingUnit
	}
	m := make(map[Unit]int64, len(p.fields))
	for _, f := range p.fields {
		converted, err := field.ConvertedTo(f.unit)
		if err != nil {
			return Fields{}, err
		}
		if converted.amount == 0 {
			return Fields{}, ErrDivideByZero
		}
		m[f.unit] = f.amount % converted.amount
	}
	return makeFields(m), nil
}

// TotalIn converts every field to the given unit and sums them. It fails
// with [ErrInconvertible] when any field cannot be expressed in the unit.
// The total of the empty period is a zero field of the unit.
func (p Fields) TotalIn(unit Unit) (Field, error) {
	if !unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	var total int64
	for _, f := range p.fields {
		converted, err := f.ConvertedTo(unit)
		if err != nil {
			return Field{}, err
		}
		sum, ok := mathutil.Add(total, converted.amount)
		if !ok {
			return Field{}, fmt.Errorf("period: total in %s: %w", unit, ErrOverflow)
		}
		total = sum
	}
	return Field{amount: total, unit: unit}, nil
}

// ToDuration returns the exact time.Duration equivalent of the period. Every
// field must be in the time-of-day class (Hours down to Nanos).
func (p Fields) ToDuration() (time.Duration, error) {
	total, err := p.TotalIn(Nanos)
	if err != nil {
		return 0, err
	}
	return time.Duration(total.amount), nil
}

// Equal reports whether two periods contain the same fields. The empty
// period is only equal to itself; "0 Hours" is not empty.
func (p Fields) Equal(other Fields) bool {
	if len(p.fields) != len(other.fields) {
		return false
	}
	for i := range p.fields {
		if p.fields[i] != other.fields[i] {
			return false
		}
	}
	return true
}

// String returns the period as "[f1, f2, ...]" with fields largest unit
// first, or "[]" for the empty period.
func (p Fields) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range p.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (p Fields) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the syntax
// of [Parse].
func (p *Fields) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
