package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vipcxj/inrange/internal/rangeexpr"
	"github.com/vipcxj/inrange/numrange"
)

// rangePair parses two range expressions. exclusive is set when the flag
// is on or either expression uses parentheses.
func (a *app) rangePair(args []string) (r1, r2 numrange.Range, opts numrange.Options, err error) {
	r1, x1, err := rangeexpr.ParseRange(args[0])
	if err != nil {
		return
	}
	r2, x2, err := rangeexpr.ParseRange(args[1])
	if err != nil {
		return
	}
	opts = a.options()
	opts.Exclusive = opts.Exclusive || x1 || x2
	return
}

func (a *app) overlapCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "overlap RANGE RANGE",
		Short:   "Report whether two ranges share at least one point",
		Example: "  inrange overlap [0,10] [10,20]\n  inrange overlap (0,10) (10,20)",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r1, r2, opts, err := a.rangePair(args)
			if err != nil {
				return err
			}
			ok, err := numrange.RangesOverlap(r1, r2, opts)
			if err != nil {
				return err
			}
			return a.printBool(ok)
		},
	}
}

func (a *app) intersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect RANGE RANGE",
		Short: "Print the common part of two ranges, or null when they are disjoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r1, r2, _, err := a.rangePair(args)
			if err != nil {
				return err
			}
			r, ok := numrange.RangeIntersection(r1, r2)
			if !ok {
				_, err := fmt.Fprintln(a.out, "null")
				return err
			}
			return a.printRange(r)
		},
	}
}

func (a *app) unionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "union RANGE RANGE",
		Short: "Print the smallest range covering both ranges, gap included",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r1, r2, _, err := a.rangePair(args)
			if err != nil {
				return err
			}
			return a.printRange(numrange.RangeUnion(r1, r2))
		},
	}
}

func (a *app) containsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "contains OUTER INNER",
		Short:   "Report whether INNER lies entirely within OUTER",
		Example: "  inrange contains [0,100] [10,20]",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outer, inner, opts, err := a.rangePair(args)
			if err != nil {
				return err
			}
			ok, err := numrange.RangeContains(outer, inner, opts)
			if err != nil {
				return err
			}
			return a.printBool(ok)
		},
	}
}

func (a *app) fromValuesCmd() *cobra.Command {
	var formats []string
	cmd := &cobra.Command{
		Use:   "from-values [VALUE...]",
		Short: "Print the range spanning the smallest and largest value",
		Long: `Print the range spanning the smallest and largest value.

Values come from the arguments, or from standard input when there are none.
The --format flag selects how each input is split: comma, space, newline, or
json (an array or a single value, not combinable with the others).`,
		Example: "  inrange from-values 5,-2,15,8\n  echo '[1, \"10n\", 3]' | inrange from-values --format json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rangeexpr.CheckFormats(formats); err != nil {
				return err
			}
			raws := args
			if len(raws) == 0 {
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read values: %w", err)
				}
				raws = []string{string(content)}
			}
			values, err := rangeexpr.ParseValues(formats, raws)
			if err != nil {
				return err
			}
			r, err := numrange.RangeFromValues(values)
			if err != nil {
				return err
			}
			return a.printRange(r)
		},
	}
	cmd.Flags().StringSliceVarP(&formats, "format", "f", rangeexpr.DefaultFormats,
		fmt.Sprintf("How values are separated. Allowed: %v", rangeexpr.AllowedFormats))
	return cmd
}
