package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/inrange/internal/rangeexpr"
	"github.com/vipcxj/inrange/numrange"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "check VALUE START END",
		Short:   "Report whether VALUE lies between START and END",
		Example: "  inrange check 10 0 19\n  inrange check --exclusive 0 0 10\n  inrange check 10n 0n 19n",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseScalars(args)
			if err != nil {
				return err
			}
			ok, err := xs[0].IsInRange(xs[1], xs[2], a.options())
			if err != nil {
				return err
			}
			return a.printBool(ok)
		},
	}
}

// definitions parses range expressions; --exclusive and --strict apply on
// top of each expression's own brackets.
func (a *app) definitions(exprs []string) ([]numrange.Definition, error) {
	defs := make([]numrange.Definition, 0, len(exprs))
	for _, expr := range exprs {
		d, err := rangeexpr.Parse(expr)
		if err != nil {
			return nil, err
		}
		d.Options.Exclusive = d.Options.Exclusive || a.exclusive
		d.Options.Strict = a.strict
		defs = append(defs, d)
	}
	return defs, nil
}

func (a *app) anyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "any VALUE [RANGE...]",
		Short:   "Report whether VALUE lies in at least one RANGE",
		Example: "  inrange any 15 [0,10] (10,20)",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := numrange.ParseScalar(args[0])
			if err != nil {
				return err
			}
			defs, err := a.definitions(args[1:])
			if err != nil {
				return err
			}
			ok, err := numrange.IsInAnyRange(value, defs)
			if err != nil {
				return err
			}
			return a.printBool(ok)
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "all VALUE [RANGE...]",
		Short:   "Report whether VALUE lies in every RANGE",
		Example: "  inrange all 50 [0,100] [40,60]",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := numrange.ParseScalar(args[0])
			if err != nil {
				return err
			}
			defs, err := a.definitions(args[1:])
			if err != nil {
				return err
			}
			ok, err := numrange.IsInAllRanges(value, defs)
			if err != nil {
				return err
			}
			return a.printBool(ok)
		},
	}
}

func (a *app) boundaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boundary VALUE START END",
		Short: "Report whether VALUE equals one of the boundaries exactly",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseScalars(args)
			if err != nil {
				return err
			}
			return a.printBool(numrange.IsAtBoundary(xs[0], xs[1], xs[2]))
		},
	}
}
