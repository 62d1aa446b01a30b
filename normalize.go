package period

import (
	"fmt"
	"sort"

	"github.com/rabitt1ove/go-period/internal/mathutil"
)

// Normalized normalizes the period using its own units as the target set:
// amounts are carried between the units already present without discarding
// or introducing any. The empty period normalizes to itself.
//
// For example "[6 Hours, -7 Minutes]" normalizes to "[5 Hours, 53 Minutes]".
func (p Fields) Normalized() (Fields, error) {
	if p.Size() == 0 {
		return p, nil
	}
	return p.NormalizedTo(p.Units()...)
}

// NormalizedTo expresses the period using the given target units, preserving
// its total magnitude. Every target unit is present in the result, zero when
// never populated. Fields in non-target units are folded into the largest
// target unit they can be expressed in; fields unrelated to every target
// unit carry through unchanged.
//
// Amounts are brought into canonical range against the nearest larger target
// unit of the same base: "14 Months" carries into Years, and a negative
// amount borrows from the larger unit instead of surfacing as negative
// output, so "[6 Hours, -7 Minutes]" becomes "[5 Hours, 53 Minutes]". Any
// unresolved negativity ends up at the largest unit of its class.
func (p Fields) NormalizedTo(units ...Unit) (Fields, error) {
	if len(units) == 0 {
		return Fields{}, ErrMissingUnit
	}
	targets := make([]Unit, 0, len(units))
	isTarget := make(map[Unit]bool, len(units))
	for _, u := range units {
		if !u.isValid() {
			return Fields{}, ErrMissingUnit
		}
		if !isTarget[u] {
			isTarget[u] = true
			targets = append(targets, u)
		}
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Compare(targets[j]) > 0
	})

	// Scratch map, seeded so every target unit appears in the result.
	amounts := make(map[Unit]int64, len(targets)+p.Size())
	for _, t := range targets {
		amounts[t] = 0
	}

	// Phase 1: fold each non-target field down into the largest target unit
	// it has an integral factor to.
	for _, f := range p.fields {
		unit, value := f.unit, f.amount
		if !isTarget[unit] {
			for _, t := range targets {
				factor, ok := unit.Factor(t)
				if !ok {
					continue
				}
				folded, ok := mathutil.Mul(value, factor)
				if !ok {
					return Fields{}, fmt.Errorf("period: folding %s into %s: %w", f, t, ErrOverflow)
				}
				unit, value = t, folded
				break
			}
		}
		sum, ok := mathutil.Add(amounts[unit], value)
		if !ok {
			return Fields{}, fmt.Errorf("period: normalizing %s: %w", f, ErrOverflow)
		}
		amounts[unit] = sum
	}

	// Phase 2: carry out-of-range and negative amounts upward. Each unit is
	// reduced with floor division against the nearest larger target unit of
	// its base; the quotient moves up, the floor remainder (always in
	// [0, factor)) stays. Sweeping smallest to largest makes every carry
	// land on a unit visited later in the same sweep, so one sweep
	// converges; the extra sweep only verifies that.
	order := make([]Unit, 0, len(amounts))
	for u := range amounts {
		order = append(order, u)
	}
	sort.Slice(order, func(i, j int) bool {
		return order[i].Compare(order[j]) < 0
	})
	ascTargets := make([]Unit, len(targets))
	for i, t := range targets {
		ascTargets[len(targets)-1-i] = t
	}
	for pass := 0; ; pass++ {
		if pass > len(order)+1 {
			panic("period: normalization did not converge")
		}
		changed := false
		for _, small := range order {
			big, factor, ok := carryTarget(small, ascTargets)
			if !ok {
				continue
			}
			amount := amounts[small]
			if amount >= 0 && amount < factor {
				continue
			}
			quotient, _ := mathutil.FloorDiv(amount, factor)
			remainder, _ := mathutil.FloorMod(amount, factor)
			sum, ok := mathutil.Add(amounts[big], quotient)
			if !ok {
				return Fields{}, fmt.Errorf("period: carrying %s into %s: %w", small, big, ErrOverflow)
			}
			amounts[small] = remainder
			amounts[big] = sum
			changed = true
		}
		if !changed {
			break
		}
	}
	return makeFields(amounts), nil
}

// carryTarget returns the nearest larger target unit that small carries
// into, with its conversion factor. Targets must be sorted smallest first.
// Factor 1 pairs are skipped: two distinct units of equal size have no
// canonical direction to carry in.
func carryTarget(small Unit, ascTargets []Unit) (Unit, int64, bool) {
	for _, t := range ascTargets {
		if t.Compare(small) <= 0 {
			continue
		}
		factor, ok := t.Factor(small)
		if !ok || factor < 2 {
			continue
		}
		return t, factor, true
	}
	return Unit{}, 0, false
}
