package period

import "errors"

var (
	// ErrOverflow indicates that an arithmetic result exceeds the int64 range.
	ErrOverflow = errors.New("period: integer overflow")
	// ErrUnitMismatch indicates that two fields of different units were combined
	// by an operation that requires identical units.
	ErrUnitMismatch = errors.New("period: unit mismatch")
	// ErrDuplicateUnit indicates that the same unit was specified twice while
	// building a period.
	ErrDuplicateUnit = errors.New("period: duplicate unit")
	// ErrInconvertible indicates a conversion between units that share no
	// common base unit.
	ErrInconvertible = errors.New("period: units not convertible")
	// ErrDivideByZero indicates a division of a period by zero.
	ErrDivideByZero = errors.New("period: division by zero")
	// ErrMissingUnit indicates that a required unit, field or period was absent.
	ErrMissingUnit = errors.New("period: missing unit")
)
