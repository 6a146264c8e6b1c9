package runner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/shinji-kodama/clockangle/internal/clock"
	"github.com/shinji-kodama/clockangle/internal/fixture"
	"github.com/shinji-kodama/clockangle/internal/model"
)

// DefaultTolerance is the largest absolute difference, exclusive, between
// the computed and expected angle that still counts as a pass.
const DefaultTolerance = 0.01

// Runner evaluates fixture files. The zero value is not usable; use New.
type Runner struct {
	out        io.Writer
	logger     *slog.Logger
	tolerance  float64
	jsonOutput bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithTolerance overrides DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(r *Runner) {
		r.tolerance = tol
	}
}

// WithJSON switches the report from the text table to a JSON document.
func WithJSON(enabled bool) Option {
	return func(r *Runner) {
		r.jsonOutput = enabled
	}
}

// New creates a Runner that writes the report to out and diagnostics to
// logger. A nil logger discards diagnostics.
func New(out io.Writer, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Runner{
		out:       out,
		logger:    logger,
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loads the fixture at path, evaluates every case and writes the
// report. If the file is missing or cannot be decoded, an ERROR is logged,
// nothing is written to the report output, and the returned Summary has
// Aborted set.
func (r *Runner) Run(path string) model.Summary {
	cases, err := fixture.Load(path)
	if err != nil {
		r.logLoadError(path, err)
		return model.Summary{Aborted: true}
	}
	r.logger.Debug("loaded fixture", "path", path, "cases", len(cases))

	var rep reporter = &textReporter{w: r.out}
	if r.jsonOutput {
		rep = &jsonReporter{w: r.out}
	}

	var summary model.Summary
	rep.begin()
	for _, tc := range cases {
		res := r.Evaluate(tc)
		summary.Add(res)
		rep.result(res)
	}
	if err := rep.end(summary); err != nil {
		r.logger.Warn("failed to write report", "error", err)
	}

	r.logger.Info(fmt.Sprintf("Test Run Complete: %d/%d passed.", summary.Passed, summary.Total))
	return summary
}

// Evaluate computes the angle for one case and classifies the outcome.
func (r *Runner) Evaluate(tc model.TestCase) model.CaseResult {
	if err := tc.Validate(); err != nil {
		return model.CaseResult{Case: tc, Status: model.StatusError, Err: err}
	}

	actual, err := clock.CalculateTime(tc.Time())
	if err != nil {
		return model.CaseResult{Case: tc, Status: model.StatusError, Err: err}
	}

	status := model.StatusFail
	if math.Abs(actual-tc.Expected()) < r.tolerance {
		status = model.StatusPass
	}
	return model.CaseResult{Case: tc, Status: status, Actual: actual}
}

func (r *Runner) logLoadError(path string, err error) {
	switch {
	case errors.Is(err, fixture.ErrNotFound):
		r.logger.Error(fmt.Sprintf("File not found: %s", path))
	case errors.Is(err, fixture.ErrMalformed):
		r.logger.Error(fmt.Sprintf("Failed to parse fixture file: %s", path), "error", err)
	default:
		r.logger.Error(fmt.Sprintf("Failed to read fixture file: %s", path), "error", err)
	}
}
