// Package model defines the domain types for the clockangle CLI.
//
// These types are shared between the fixture loader, the angle calculator,
// and the runner that renders the pass/fail report.
package model

import (
	"fmt"
	"strings"
)

// ClockTime is a wall-clock reading on a 12-hour analog dial.
//
// Hours are accepted in 24-hour form (0-23) and folded onto the dial by
// the calculator; ClockTime itself stores the raw value.
type ClockTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// String renders the time as zero-padded HH:MM:SS.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// TestCase is a single fixture record: an input time paired with the
// angle the calculator is expected to produce.
//
// Fields are pointers so that an absent key in the fixture file can be
// told apart from an explicit zero. Seconds is optional and defaults to 0;
// the remaining fields are required (see Validate).
type TestCase struct {
	Hours         *int     `json:"hours"`
	Minutes       *int     `json:"minutes"`
	Seconds       *int     `json:"seconds,omitempty"`
	ExpectedAngle *float64 `json:"expected_angle"`
}

// Validate reports the first absent required field as a *MissingFieldError.
// Field order is hours, minutes, expected_angle.
func (c TestCase) Validate() error {
	switch {
	case c.Hours == nil:
		return &MissingFieldError{Field: "hours"}
	case c.Minutes == nil:
		return &MissingFieldError{Field: "minutes"}
	case c.ExpectedAngle == nil:
		return &MissingFieldError{Field: "expected_angle"}
	}
	return nil
}

// Time returns the ClockTime described by the case, applying the seconds
// default. Callers must run Validate first; absent required fields read as 0.
func (c TestCase) Time() ClockTime {
	return ClockTime{
		Hours:   derefInt(c.Hours),
		Minutes: derefInt(c.Minutes),
		Seconds: derefInt(c.Seconds),
	}
}

// Expected returns the expected angle, or 0 when absent.
func (c TestCase) Expected() float64 {
	if c.ExpectedAngle == nil {
		return 0
	}
	return *c.ExpectedAngle
}

// RawTime renders the case's time fields unpadded as H:M:S, the way they
// appeared in the fixture. Absent required fields render as "-" and an
// absent seconds field renders as its default 0.
func (c TestCase) RawTime() string {
	parts := []string{optionalInt(c.Hours), optionalInt(c.Minutes), fmt.Sprint(derefInt(c.Seconds))}
	return strings.Join(parts, ":")
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func optionalInt(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}

// MissingFieldError reports a required fixture field that is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// CaseStatus is the outcome of evaluating one TestCase.
type CaseStatus string

const (
	// StatusPass means the computed angle is within tolerance of the expected one.
	StatusPass CaseStatus = "PASS"

	// StatusFail means the angle was computed but differs from the expected one.
	StatusFail CaseStatus = "FAIL"

	// StatusError means the case could not be evaluated (missing field or
	// out-of-range input). Such cases count toward the total only.
	StatusError CaseStatus = "ERROR"
)

// String satisfies fmt.Stringer.
func (s CaseStatus) String() string {
	return string(s)
}

// CaseResult is the evaluated form of a TestCase.
type CaseResult struct {
	Case   TestCase
	Status CaseStatus
	Actual float64
	Err    error // set only when Status is StatusError
}

// Summary is the tally of a single fixture run.
//
// Total counts every case in the file, including errored ones, so
// Passed/Total is the pass ratio reported to the user.
type Summary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
	Total   int `json:"total"`

	// Aborted is true when the fixture could not be loaded at all
	// (missing or malformed file). No case was evaluated in that case.
	Aborted bool `json:"-"`
}

// Add records one result in the tally.
func (s *Summary) Add(r CaseResult) {
	s.Total++
	switch r.Status {
	case StatusPass:
		s.Passed++
	case StatusFail:
		s.Failed++
	case StatusError:
		s.Errored++
	}
}

// ExitCode defines the CLI exit codes.
//
// Fixture outcomes never influence the exit code: a run with failing
// cases, a missing file, or a malformed file still exits with ExitSuccess.
// Only invalid command-line usage produces a non-zero code.
type ExitCode int

const (
	// ExitSuccess indicates the command completed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates invalid usage or an unexpected failure.
	ExitGeneralError ExitCode = 1
)
