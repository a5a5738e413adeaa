package conformance

import (
	"fmt"
	"io"
	"log/slog"
)

// Report is the outcome of a suite run.
type Report struct {
	Suite  string
	Passed int
	Total  int
	// Failed holds names of the failed cases, in suite order.
	Failed []string
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return r.Passed == r.Total
}

// Runner runs suites, printing a status line per case to Out:
//
//	ok  s32 -7/3==-2
//	FAIL u32 70000*3==210000
//
// followed by a `Summary: passed/total` line.
type Runner struct {
	Out    io.Writer
	Logger *slog.Logger
}

// Run runs all cases of s. A case that can't be parsed counts as failed.
func (r *Runner) Run(s *Suite) Report {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("suite", s.Name)
	out := r.Out
	if out == nil {
		out = io.Discard
	}

	report := Report{Suite: s.Name, Total: len(s.Cases)}
	for _, c := range s.Cases {
		v, err := c.resolve()
		if err != nil {
			logger.Error("bad case", "case", c.Name, "error", err)
			report.Failed = append(report.Failed, c.Name)
			fmt.Fprintf(out, "FAIL %s\n", c.Name)
			continue
		}
		got, ok := v.check()
		if !ok {
			logger.Debug("mismatch", "case", c.Name, "routine", v.routine.Name,
				"a", fmt.Sprintf("%#x", v.a), "b", fmt.Sprintf("%#x", v.b),
				"got", fmt.Sprintf("%#x", got), "want", fmt.Sprintf("%#x", v.want))
			report.Failed = append(report.Failed, c.Name)
			fmt.Fprintf(out, "FAIL %s\n", c.Name)
			continue
		}
		report.Passed++
		fmt.Fprintf(out, "ok  %s\n", c.Name)
	}
	fmt.Fprintf(out, "Summary: %d/%d\n", report.Passed, report.Total)
	logger.Info("suite done", "passed", report.Passed, "total", report.Total)
	return report
}
