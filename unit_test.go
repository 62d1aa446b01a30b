package period

import (
	"errors"
	"math"
	"testing"
)

func TestUnitOrdering(t *testing.T) {
	t.Parallel()

	descending := []Unit{Years, Quarters, Months, Weeks, Days, Hours, Minutes, Seconds, Millis, Micros, Nanos}
	for i := 1; i < len(descending); i++ {
		larger, smaller := descending[i-1], descending[i]
		if larger.Compare(smaller) <= 0 {
			t.Errorf("%s should sort after %s", larger, smaller)
		}
		if smaller.Compare(larger) >= 0 {
			t.Errorf("%s should sort before %s", smaller, larger)
		}
	}
	if Hours.Compare(Hours) != 0 {
		t.Error("a unit should compare equal to itself")
	}
}

func TestUnitFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		larger  Unit
		smaller Unit
		want    int64
		ok      bool
	}{
		{"years to months", Years, Months, 12, true},
		{"years to quarters", Years, Quarters, 4, true},
		{"quarters to months", Quarters, Months, 3, true},
		{"weeks to days", Weeks, Days, 7, true},
		{"hours to minutes", Hours, Minutes, 60, true},
		{"hours to seconds", Hours, Seconds, 3600, true},
		{"hours to nanos", Hours, Nanos, 3_600_000_000_000, true},
		{"minutes to seconds", Minutes, Seconds, 60, true},
		{"seconds to millis", Seconds, Millis, 1000, true},
		{"unit to itself", Hours, Hours, 1, true},
		{"smaller to larger undefined", Minutes, Hours, 0, false},
		{"days to hours undefined", Days, Hours, 0, false},
		{"years to days undefined", Years, Days, 0, false},
		{"zero unit", Unit{}, Hours, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.larger.Factor(tt.smaller)
			if ok != tt.ok || got != tt.want {
				t.Errorf("%s.Factor(%s) = %d, %v, want %d, %v",
					tt.larger, tt.smaller, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestUnitConvertibleTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Unit
		want bool
	}{
		{"hours and seconds", Hours, Seconds, true},
		{"seconds and hours", Seconds, Hours, true},
		{"years and months", Years, Months, true},
		{"days and hours", Days, Hours, false},
		{"days and seconds", Days, Seconds, false},
		{"years and hours", Years, Hours, false},
		{"weeks and days", Weeks, Days, true},
		{"zero unit", Unit{}, Hours, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ConvertibleTo(tt.b); got != tt.want {
				t.Errorf("%s.ConvertibleTo(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNewUnit(t *testing.T) {
	t.Parallel()

	fortnights, err := NewUnit("Fortnights", Days, 14)
	if err != nil {
		t.Fatalf("NewUnit: %v", err)
	}
	if got, ok := fortnights.Factor(Days); !ok || got != 14 {
		t.Errorf("Fortnights.Factor(Days) = %d, %v, want 14, true", got, ok)
	}
	if got, ok := fortnights.Factor(Weeks); !ok || got != 2 {
		t.Errorf("Fortnights.Factor(Weeks) = %d, %v, want 2, true", got, ok)
	}
	if fortnights.ConvertibleTo(Hours) {
		t.Error("Fortnights should not be convertible to Hours")
	}
	if fortnights.Compare(Weeks) <= 0 {
		t.Error("Fortnights should sort larger than Weeks")
	}
	if fortnights.Compare(Months) >= 0 {
		t.Error("Fortnights should sort smaller than Months")
	}
}

func TestNewUnit_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewUnit("", Days, 2); err == nil {
		t.Error("empty name should fail")
	}
	if _, err := NewUnit("Sprints", Unit{}, 2); !errors.Is(err, ErrMissingUnit) {
		t.Errorf("zero base unit: got %v, want ErrMissingUnit", err)
	}
	if _, err := NewUnit("Sprints", Days, 0); err == nil {
		t.Error("zero count should fail")
	}
	if _, err := NewUnit("Sprints", Days, -3); err == nil {
		t.Error("negative count should fail")
	}
	if _, err := NewUnit("Eons", Years, math.MaxInt64); !errors.Is(err, ErrOverflow) {
		t.Errorf("overflowing unit size: got %v, want ErrOverflow", err)
	}
}

func TestUnitString(t *testing.T) {
	t.Parallel()

	if got := Hours.String(); got != "Hours" {
		t.Errorf("Hours.String() = %q", got)
	}
	if got := Nanos.Name(); got != "Nanos" {
		t.Errorf("Nanos.Name() = %q", got)
	}
}
