package period

import (
	"fmt"
	"time"

	"github.com/rabitt1ove/go-period/internal/mathutil"
)

// Field is a single period amount tied to one unit, such as "6 Hours" or
// "-7 Minutes". Fields are immutable values; every operation returns a new
// Field. Two fields are equal only when both amount and unit match, so a
// zero Hours field is not equal to a zero Minutes field.
//
// The zero Field has no unit and is invalid; construct fields with
// [NewField] or [MustField].
type Field struct {
	amount int64
	unit   Unit
}

// NewField creates a field of the given amount and unit.
func NewField(amount int64, unit Unit) (Field, error) {
	if !unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	return Field{amount: amount, unit: unit}, nil
}

// MustField is like [NewField] but panics on error. It is intended for
// literals in tests and examples.
func MustField(amount int64, unit Unit) Field {
	f, err := NewField(amount, unit)
	if err != nil {
		panic(err)
	}
	return f
}

// Amount returns the amount of the field's unit.
func (f Field) Amount() int64 {
	return f.amount
}

// Unit returns the field's unit.
func (f Field) Unit() Unit {
	return f.unit
}

// IsZero reports whether the amount is zero.
func (f Field) IsZero() bool {
	return f.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (f Field) IsPositive() bool {
	return f.amount > 0
}

// IsNegative reports whether the amount is less than zero.
func (f Field) IsNegative() bool {
	return f.amount < 0
}

func (f Field) checkUnits(other Field) error {
	if !f.unit.isValid() || !other.unit.isValid() {
		return ErrMissingUnit
	}
	if f.unit != other.unit {
		return fmt.Errorf("period: cannot combine %s with %s: %w", f.unit, other.unit, ErrUnitMismatch)
	}
	return nil
}

// Plus returns f with the other field's amount added. The units must match.
func (f Field) Plus(other Field) (Field, error) {
	if err := f.checkUnits(other); err != nil {
		return Field{}, err
	}
	return f.PlusAmount(other.amount)
}

// PlusAmount returns f with the given amount added.
func (f Field) PlusAmount(amount int64) (Field, error) {
	if !f.unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	sum, ok := mathutil.Add(f.amount, amount)
	if !ok {
		return Field{}, fmt.Errorf("period: %s plus %d: %w", f, amount, ErrOverflow)
	}
	return Field{amount: sum, unit: f.unit}, nil
}

// Minus returns f with the other field's amount subtracted. The units must
// match.
func (f Field) Minus(other Field) (Field, error) {
	if err := f.checkUnits(other); err != nil {
		return Field{}, err
	}
	return f.MinusAmount(other.amount)
}

// MinusAmount returns f with the given amount subtracted.
func (f Field) MinusAmount(amount int64) (Field, error) {
	if !f.unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	diff, ok := mathutil.Sub(f.amount, amount)
	if !ok {
		return Field{}, fmt.Errorf("period: %s minus %d: %w", f, amount, ErrOverflow)
	}
	return Field{amount: diff, unit: f.unit}, nil
}

// MultipliedBy returns f with the amount multiplied by the scalar.
func (f Field) MultipliedBy(scalar int64) (Field, error) {
	if !f.unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	product, ok := mathutil.Mul(f.amount, scalar)
	if !ok {
		return Field{}, fmt.Errorf("period: %s times %d: %w", f, scalar, ErrOverflow)
	}
	return Field{amount: product, unit: f.unit}, nil
}

// DividedBy returns f with the amount divided by the divisor, truncating
// toward zero.
func (f Field) DividedBy(divisor int64) (Field, error) {
	if !f.unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	if divisor == 0 {
		return Field{}, ErrDivideByZero
	}
	quotient, ok := mathutil.Div(f.amount, divisor)
	if !ok {
		return Field{}, fmt.Errorf("period: %s divided by %d: %w", f, divisor, ErrOverflow)
	}
	return Field{amount: quotient, unit: f.unit}, nil
}

// Remainder returns f with the amount replaced by its remainder on division
// by the divisor. The result has the sign of the original amount.
func (f Field) Remainder(divisor int64) (Field, error) {
	if !f.unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	if divisor == 0 {
		return Field{}, ErrDivideByZero
	}
	return Field{amount: f.amount % divisor, unit: f.unit}, nil
}

// Negated returns f with the amount negated.
func (f Field) Negated() (Field, error) {
	if !f.unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	neg, ok := mathutil.Negate(f.amount)
	if !ok {
		return Field{}, fmt.Errorf("period: negating %s: %w", f, ErrOverflow)
	}
	return Field{amount: neg, unit: f.unit}, nil
}

// Abs returns f with a non-negative amount.
func (f Field) Abs() (Field, error) {
	if !f.unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	abs, ok := mathutil.Abs(f.amount)
	if !ok {
		return Field{}, fmt.Errorf("period: absolute value of %s: %w", f, ErrOverflow)
	}
	return Field{amount: abs, unit: f.unit}, nil
}

// ConvertedTo expresses the field in an equivalent smaller or equal unit,
// such as "2 Hours" to "120 Minutes". It fails with [ErrInconvertible] when
// no integral conversion factor exists between the units.
func (f Field) ConvertedTo(unit Unit) (Field, error) {
	if !f.unit.isValid() || !unit.isValid() {
		return Field{}, ErrMissingUnit
	}
	factor, ok := f.unit.Factor(unit)
	if !ok {
		return Field{}, fmt.Errorf("period: cannot convert %s to %s: %w", f.unit, unit, ErrInconvertible)
	}
	amount, ok := mathutil.Mul(f.amount, factor)
	if !ok {
		return Field{}, fmt.Errorf("period: converting %s to %s: %w", f, unit, ErrOverflow)
	}
	return Field{amount: amount, unit: unit}, nil
}

// ConvertedToAny tries each candidate unit in order and returns the first
// successful conversion. Callers should list candidates largest to smallest
// to get the coarsest representation. It fails with [ErrInconvertible] when
// no candidate matches, and surfaces overflow immediately.
func (f Field) ConvertedToAny(units ...Unit) (Field, error) {
	if !f.unit.isValid() || len(units) == 0 {
		return Field{}, ErrMissingUnit
	}
	for _, u := range units {
		if !u.isValid() {
			return Field{}, ErrMissingUnit
		}
		if _, ok := f.unit.Factor(u); !ok {
			continue
		}
		return f.ConvertedTo(u)
	}
	return Field{}, fmt.Errorf("period: cannot convert %s to any candidate unit: %w", f.unit, ErrInconvertible)
}

// ToDuration returns the exact time.Duration equivalent of the field. Only
// fields in the time-of-day class (Hours down to Nanos) are convertible.
func (f Field) ToDuration() (time.Duration, error) {
	nanos, err := f.ConvertedTo(Nanos)
	if err != nil {
		return 0, err
	}
	return time.Duration(nanos.amount), nil
}

// Compare orders fields by unit first (smallest unit first), then by amount.
func (f Field) Compare(other Field) int {
	if c := f.unit.Compare(other.unit); c != 0 {
		return c
	}
	switch {
	case f.amount < other.amount:
		return -1
	case f.amount > other.amount:
		return 1
	}
	return 0
}

// Equal reports whether both amount and unit match.
func (f Field) Equal(other Field) bool {
	return f == other
}

// String returns the field as "<amount> <unit>", such as "6 Hours".
func (f Field) String() string {
	return fmt.Sprintf("%d %s", f.amount, f.unit)
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	if !f.unit.isValid() {
		return nil, ErrMissingUnit
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// single-field syntax as [Parse].
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := parseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
