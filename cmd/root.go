package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/inrange/internal/config"
	"github.com/vipcxj/inrange/internal/log"
	"github.com/vipcxj/inrange/numrange"
)

const ShortDesc = "Check numbers against ranges: containment, distance, clamping and range algebra"

const LongDesc = `inrange answers questions about a value and a range, or about two ranges.
Ranges are bidirectional: "0 19" and "19 0" are the same range.

Numbers are floats unless they carry an "n" suffix (10n), which makes them
arbitrary-precision integers. When a command mixes both, integers win as long
as every operand is finite. Pass "null" for an absent boundary.

Range arguments use [a,b] for inclusive and (a,b) for exclusive ranges.
Negative numbers must follow "--" so they are not read as flags.`

// app carries the per-invocation state shared by every subcommand.
type app struct {
	exclusive bool
	strict    bool
	color     bool
	envFile   string
	logLevel  string

	cfg    config.Config
	logger zerolog.Logger
	out    io.Writer
}

// Execute runs the command line in os.Args and returns the process exit code.
func Execute() int {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "inrange: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:               "inrange",
		Short:             ShortDesc,
		Long:              LongDesc,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&a.exclusive, "exclusive", "x", false, "Exclude the boundaries (env INRANGE_EXCLUSIVE)")
	flags.BoolVarP(&a.strict, "strict", "s", false, "Reject absent boundaries and lossy integer conversions (env INRANGE_STRICT)")
	flags.BoolVar(&a.color, "color", false, "Colour true/false results (env INRANGE_COLOR)")
	flags.StringVar(&a.envFile, "env-file", "", "Read environment variables from this file (default .env)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (env INRANGE_LOG_LEVEL)")

	cmd.AddCommand(
		a.checkCmd(),
		a.anyCmd(),
		a.allCmd(),
		a.boundaryCmd(),
		a.distanceCmd(),
		a.clampCmd(),
		a.sizeCmd(),
		a.centerCmd(),
		a.overlapCmd(),
		a.intersectCmd(),
		a.unionCmd(),
		a.containsCmd(),
		a.fromValuesCmd(),
		a.batchCmd(),
		versionCmd(),
	)
	return cmd
}

// setup merges configuration into the flags; explicit flags win over the
// environment.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	flags := cmd.Flags()
	if !flags.Changed("exclusive") {
		a.exclusive = cfg.Exclusive
	}
	if !flags.Changed("strict") {
		a.strict = cfg.Strict
	}
	if !flags.Changed("color") {
		a.color = cfg.Color
	}
	if !flags.Changed("log-level") {
		a.logLevel = cfg.LogLevel
	}

	a.out = cmd.OutOrStdout()
	a.logger = log.New(cmd.ErrOrStderr(), cfg.Format(), a.logLevel)

	var set []string
	flags.Visit(func(f *pflag.Flag) {
		set = append(set, f.Name+"="+f.Value.String())
	})
	a.logger.Debug().
		Str("cmd", cmd.Name()).
		Strs("args", args).
		Strs("flags", set).
		Bool("exclusive", a.exclusive).
		Bool("strict", a.strict).
		Msg("run")
	return nil
}

func (a *app) options() numrange.Options {
	return numrange.Options{Exclusive: a.exclusive, Strict: a.strict}
}

// parseScalars parses every argument with numrange.ParseScalar.
func parseScalars(args []string) ([]numrange.Scalar, error) {
	out := make([]numrange.Scalar, len(args))
	for i, arg := range args {
		v, err := numrange.ParseScalar(arg)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
