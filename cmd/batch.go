package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vipcxj/inrange/internal/procstat"
	"github.com/vipcxj/inrange/numrange"
)

func (a *app) batchCmd() *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "batch START END",
		Short: "Check every value read from standard input against one range",
		Long: `Check every value read from standard input against one range.

Each non-empty input line holds one value and produces one "VALUE: RESULT"
line. Results are memoized in an LRU cache sized by INRANGE_CACHE_SIZE, so
repeated values are answered without recomputation. With --stats the cache
counters and the process memory footprint are written to standard error.`,
		Example: "  seq 0 5 20 | inrange batch 0 10",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := parseScalars(args)
			if err != nil {
				return err
			}
			cache, err := numrange.NewCache(a.cfg.CacheSize)
			if err != nil {
				return err
			}
			opts := a.options()
			opts.Cache = cache
			validate := numrange.NewValidator(bounds[0], bounds[1], opts)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				v, err := numrange.ParseScalar(line)
				if err != nil {
					return err
				}
				ok, err := validate(v)
				if err != nil {
					return fmt.Errorf("%s: %w", line, err)
				}
				if _, err := fmt.Fprintf(a.out, "%s: %t\n", line, ok); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read values: %w", err)
			}

			st := cache.Stats()
			a.logger.Debug().
				Int("size", st.Size).
				Uint64("hits", st.Hits).
				Uint64("misses", st.Misses).
				Msg("batch done")
			if !stats {
				return nil
			}
			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "cache: size=%d capacity=%d hits=%d misses=%d\n",
				st.Size, st.Capacity, st.Hits, st.Misses)
			snap, err := procstat.Current(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Msg("process stats unavailable")
				return nil
			}
			fmt.Fprintf(errOut, "process: %s\n", snap)
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "Write cache and memory statistics to standard error")
	return cmd
}
