package period

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Fields
	}{
		{"compact", "2y 14mo 6h -7min", mustNew(t,
			MustField(2, Years), MustField(14, Months), MustField(6, Hours), MustField(-7, Minutes))},
		{"string form", "[2 Years, 14 Months]", mustNew(t,
			MustField(2, Years), MustField(14, Months))},
		{"single", "90s", mustNew(t, MustField(90, Seconds))},
		{"m means minutes", "5m", mustNew(t, MustField(5, Minutes))},
		{"mo means months", "5mo", mustNew(t, MustField(5, Months))},
		{"explicit plus", "+3d", mustNew(t, MustField(3, Days))},
		{"negative bracketed", "[-7 Minutes]", mustNew(t, MustField(-7, Minutes))},
		{"commas without brackets", "1h,30min", mustNew(t,
			MustField(1, Hours), MustField(30, Minutes))},
		{"case insensitive names", "2 YEARS 1 month", mustNew(t,
			MustField(2, Years), MustField(1, Months))},
		{"micro sign", "250µs", mustNew(t, MustField(250, Micros))},
		{"empty brackets", "[]", Zero},
		{"zero amount kept", "0h", mustNew(t, MustField(0, Hours))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"separators only", " , ,"},
		{"missing amount", "h"},
		{"missing unit", "42"},
		{"unknown unit", "7 lightyears"},
		{"bare sign", "-"},
		{"fractional amount", "1.5h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) = %v, want error", tt.input, got)
			}
		})
	}
}

func TestParse_DuplicateUnit(t *testing.T) {
	t.Parallel()

	if _, err := Parse("1h 2h"); !errors.Is(err, ErrDuplicateUnit) {
		t.Errorf("got %v, want ErrDuplicateUnit", err)
	}
	// two spellings of the same unit
	if _, err := Parse("1min 2m"); !errors.Is(err, ErrDuplicateUnit) {
		t.Errorf("got %v, want ErrDuplicateUnit", err)
	}
}

func TestParse_AmountOutOfRange(t *testing.T) {
	t.Parallel()

	if _, err := Parse("9223372036854775808ns"); !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
}

func TestParse_RoundTripsString(t *testing.T) {
	t.Parallel()

	periods := []Fields{
		Zero,
		mustNew(t, MustField(6, Hours)),
		mustNew(t, MustField(2, Years), MustField(14, Months), MustField(6, Hours), MustField(-7, Minutes)),
		mustNew(t, MustField(0, Seconds), MustField(0, Nanos)),
	}
	for _, p := range periods {
		got, err := Parse(p.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", p.String(), err)
		}
		if !got.Equal(p) {
			t.Errorf("Parse(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestUnitNamed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Unit
		ok    bool
	}{
		{"Years", Years, true},
		{"y", Years, true},
		{"mo", Months, true},
		{"m", Minutes, true},
		{" hours ", Hours, true},
		{"NANOS", Nanos, true},
		{"fortnights", Unit{}, false},
		{"", Unit{}, false},
	}
	for _, tt := range tests {
		got, ok := UnitNamed(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("UnitNamed(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
