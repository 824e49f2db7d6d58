package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/vipcxj/inrange/internal/rangeexpr"
	"github.com/vipcxj/inrange/numrange"
)

func (a *app) printBool(ok bool) error {
	c := color.New(color.FgRed)
	if ok {
		c = color.New(color.FgGreen)
	}
	if a.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, err := fmt.Fprintln(a.out, c.Sprint(ok))
	return err
}

func (a *app) printScalar(s numrange.Scalar) error {
	_, err := fmt.Fprintln(a.out, s)
	return err
}

func (a *app) printRange(r numrange.Range) error {
	_, err := fmt.Fprintln(a.out, rangeexpr.Format(r, false))
	return err
}
