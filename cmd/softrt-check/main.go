// softrt-check runs the arithmetic runtime against its conformance vectors.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/avdva/softrt"
	"github.com/avdva/softrt/conformance"
)

var errFailed = errors.New("conformance check failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("softrt-check", "error", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Output goes to the command's out writer.
func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "softrt-check",
		Short: "Check the software arithmetic runtime",
		Long: `softrt-check runs the software division, multiplication, shift and
float division routines against YAML vector suites or against native
arithmetic on random operands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("bad log level %q: %w", logLevel, err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List runtime routines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOP\tTYPE")
			for _, r := range softrt.Routines() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Op, r.Type)
			}
			return w.Flush()
		},
	}

	vectorsCmd := &cobra.Command{
		Use:   "vectors [file...]",
		Short: "Run vector suites (the built-in suite if no files are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			suites := []*conformance.Suite{}
			if len(args) == 0 {
				suites = append(suites, conformance.Default())
			}
			for _, path := range args {
				s, err := conformance.Load(path)
				if err != nil {
					return err
				}
				suites = append(suites, s)
			}
			runner := conformance.Runner{Out: cmd.OutOrStdout(), Logger: slog.Default()}
			failed := 0
			for _, s := range suites {
				if report := runner.Run(s); !report.OK() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d suites: %w", failed, len(suites), errFailed)
			}
			return nil
		},
	}

	var (
		n        int
		seed     int64
		routines string
		noBar    bool
	)
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare routines with native arithmetic on random operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := conformance.SweepOptions{N: n, Seed: seed}
			if routines != "" {
				opts.Routines = strings.Split(routines, ",")
			}
			count := len(opts.Routines)
			if count == 0 {
				count = len(softrt.Routines())
			}
			if !noBar {
				pb := progressbar.NewOptions64(int64(count*n),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionShowCount(),
					progressbar.OptionThrottle(65*time.Millisecond),
					progressbar.OptionClearOnFinish(),
				)
				defer pb.Close()
				opts.Progress = func() { pb.Add(1) }
			}

			start := time.Now()
			report, err := conformance.Sweep(opts)
			if err != nil {
				return err
			}
			slog.Info("sweep done", "seed", seed, "elapsed", time.Since(start))

			out := cmd.OutOrStdout()
			for _, m := range report.Mismatches {
				fmt.Fprintf(out, "FAIL %s\n", m)
			}
			fmt.Fprintf(out, "checked %d, skipped %d, mismatches %d\n",
				report.Checked, report.Skipped, report.MismatchCount)
			if report.MismatchCount > 0 {
				return fmt.Errorf("%d mismatches: %w", report.MismatchCount, errFailed)
			}
			return nil
		},
	}
	sweepCmd.Flags().IntVar(&n, "n", 100000, "Operand pairs per routine")
	sweepCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Random seed")
	sweepCmd.Flags().StringVar(&routines, "routine", "", "Comma separated routine names (default all)")
	sweepCmd.Flags().BoolVar(&noBar, "no-progress", false, "Disable the progress bar")

	rootCmd.AddCommand(listCmd, vectorsCmd, sweepCmd)
	return rootCmd
}
