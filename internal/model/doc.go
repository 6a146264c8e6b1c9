// Package model defines the domain types and value objects for the
// clockangle CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (ClockTime, TestCase, CaseResult, Summary) are transient:
// they are built once per program run from a fixture file and never
// mutated or persisted afterwards.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
