// Package runner evaluates a fixture file against the clock angle
// calculator and renders a pass/fail report.
//
// A run is a single linear pass: load the whole fixture, evaluate each
// case in file order, print one line per case, then log the tally.
// Load failures abort the run before any output is written; per-case
// failures (absent fields, out-of-range times) are reported on their own
// line and the run continues.
//
// Run never returns an error. All diagnostics go to the injected
// *slog.Logger and all report output goes to the injected io.Writer.
package runner
