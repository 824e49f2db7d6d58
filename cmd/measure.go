package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/inrange/numrange"
)

// scalarCmd builds a command that takes n numbers and prints one.
func scalarCmd(use, short string, n int, fn func(xs []numrange.Scalar) numrange.Scalar, show func(numrange.Scalar) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseScalars(args)
			if err != nil {
				return err
			}
			return show(fn(xs))
		},
	}
}

func (a *app) distanceCmd() *cobra.Command {
	return scalarCmd("distance VALUE START END", "Print how far VALUE lies outside the range (0 inside)", 3,
		func(xs []numrange.Scalar) numrange.Scalar { return numrange.DistanceToRange(xs[0], xs[1], xs[2]) },
		a.printScalar)
}

func (a *app) clampCmd() *cobra.Command {
	return scalarCmd("clamp VALUE START END", "Print VALUE limited to the range", 3,
		func(xs []numrange.Scalar) numrange.Scalar { return numrange.ClampToRange(xs[0], xs[1], xs[2]) },
		a.printScalar)
}

func (a *app) sizeCmd() *cobra.Command {
	return scalarCmd("size START END", "Print the width of the range", 2,
		func(xs []numrange.Scalar) numrange.Scalar { return numrange.RangeSize(xs[0], xs[1]) },
		a.printScalar)
}

func (a *app) centerCmd() *cobra.Command {
	return scalarCmd("center START END", "Print the midpoint of the range; integers truncate toward zero", 2,
		func(xs []numrange.Scalar) numrange.Scalar { return numrange.RangeCenter(xs[0], xs[1]) },
		a.printScalar)
}
