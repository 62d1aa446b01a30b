// Command periodnorm normalizes a period literal and prints the result.
//
// The period syntax accepts unit suffixes (y, q, mo, w, d, h, min, s, ms,
// us, ns) and full unit names:
//
//	periodnorm "2y 14mo 6h -7min"
//	periodnorm --to years,months,hours,minutes "2y 14mo 6h -7min"
//	periodnorm --total seconds "6h -7min"
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	period "github.com/rabitt1ove/go-period"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var toFlag string
	var totalFlag string

	cmd := &cobra.Command{
		Use:           "periodnorm [flags] <period>",
		Short:         "Normalize a multi-unit period",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := period.Parse(args[0])
			if err != nil {
				return err
			}

			var normalized period.Fields
			if toFlag == "" {
				normalized, err = p.Normalized()
			} else {
				var targets []period.Unit
				targets, err = parseUnits(toFlag)
				if err != nil {
					return err
				}
				normalized, err = p.NormalizedTo(targets...)
			}
			if err != nil {
				return err
			}
			cmd.Println(normalized)

			if totalFlag != "" {
				unit, ok := period.UnitNamed(totalFlag)
				if !ok {
					return fmt.Errorf("unknown unit %q", totalFlag)
				}
				total, err := normalized.TotalIn(unit)
				if err != nil {
					return err
				}
				cmd.Println(total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&toFlag, "to", "", "comma-separated target units (default: the period's own units)")
	cmd.Flags().StringVar(&totalFlag, "total", "", "also print the total in this unit")
	return cmd
}

// parseUnits resolves a comma-separated list of unit names.
func parseUnits(list string) ([]period.Unit, error) {
	parts := strings.Split(list, ",")
	units := make([]period.Unit, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		unit, ok := period.UnitNamed(name)
		if !ok {
			return nil, fmt.Errorf("unknown unit %q", name)
		}
		units = append(units, unit)
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("no target units in %q", list)
	}
	return units, nil
}
