// Package mathutil provides overflow-checked integer arithmetic for the
// period engine. Every operation either returns the mathematically correct
// result with ok == true, or reports ok == false; results are never silently
// wrapped or saturated.
//
// FloorDiv and FloorMod follow mathematical floor semantics (rounding toward
// negative infinity), not Go's native truncation toward zero:
//
//	FloorDiv(-1, 4) == -1
//	FloorMod(-1, 4) == 3
package mathutil

import "math"

// Add returns a+b, reporting false if the sum overflows int64.
func Add(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// Sub returns a-b, reporting false if the difference overflows int64.
func Sub(a, b int64) (int64, bool) {
	if (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b) {
		return 0, false
	}
	return a - b, true
}

// Mul returns a*b, reporting false if the product overflows int64.
func Mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 * -1 wraps back to MinInt64 and would pass the back-division
	// check below.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// Div returns the truncated quotient a/b, reporting false when b is zero or
// the quotient overflows (MinInt64 / -1).
func Div(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a / b, true
}

// Negate returns -v, reporting false for MinInt64.
func Negate(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	return -v, true
}

// Abs returns the absolute value of v, reporting false for MinInt64.
func Abs(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	if v < 0 {
		return -v, true
	}
	return v, true
}

// Increment returns v+1, reporting false for MaxInt64.
func Increment(v int64) (int64, bool) {
	if v == math.MaxInt64 {
		return 0, false
	}
	return v + 1, true
}

// Decrement returns v-1, reporting false for MinInt64.
func Decrement(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	return v - 1, true
}

// Int32 narrows v to int32, reporting false if v is out of range.
func Int32(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// FloorDiv returns the floor of a/b, reporting false when b is zero or the
// quotient overflows.
func FloorDiv(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, true
}

// FloorMod returns a modulo b with the sign of b, reporting false when b is
// zero. For a positive b the result is always in [0, b).
func FloorMod(a, b int64) (int64, bool) {
	if b == 0 {
		return 0, false
	}
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, true
}

// Add32 returns a+b, reporting false if the sum overflows int32.
func Add32(a, b int32) (int32, bool) {
	return Int32(int64(a) + int64(b))
}

// Sub32 returns a-b, reporting false if the difference overflows int32.
func Sub32(a, b int32) (int32, bool) {
	return Int32(int64(a) - int64(b))
}

// Mul32 returns a*b, reporting false if the product overflows int32.
func Mul32(a, b int32) (int32, bool) {
	return Int32(int64(a) * int64(b))
}

// Div32 returns the truncated quotient a/b, reporting false when b is zero
// or the quotient overflows int32.
func Div32(a, b int32) (int32, bool) {
	if b == 0 {
		return 0, false
	}
	return Int32(int64(a) / int64(b))
}

// Negate32 returns -v, reporting false for MinInt32.
func Negate32(v int32) (int32, bool) {
	return Int32(-int64(v))
}

// Increment32 returns v+1, reporting false for MaxInt32.
func Increment32(v int32) (int32, bool) {
	return Int32(int64(v) + 1)
}

// Decrement32 returns v-1, reporting false for MinInt32.
func Decrement32(v int32) (int32, bool) {
	return Int32(int64(v) - 1)
}

// FloorDiv32 returns the floor of a/b over int32, reporting false when b is
// zero or the quotient overflows.
func FloorDiv32(a, b int32) (int32, bool) {
	if b == 0 {
		return 0, false
	}
	q, _ := FloorDiv(int64(a), int64(b))
	return Int32(q)
}

// FloorMod32 returns a modulo b with the sign of b over int32, reporting
// false when b is zero.
func FloorMod32(a, b int32) (int32, bool) {
	if b == 0 {
		return 0, false
	}
	m, _ := FloorMod(int64(a), int64(b))
	return Int32(m)
}
