package runner

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/clockangle/internal/clock"
	"github.com/shinji-kodama/clockangle/internal/logging"
	"github.com/shinji-kodama/clockangle/internal/model"
)

const rule = "-------------------------------------------------------"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newTestRunner returns a runner wired to in-memory report and log sinks.
func newTestRunner(opts ...Option) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	return New(&out, logging.New(&logs, false), opts...), &out, &logs
}

func TestRun_SinglePassingCase(t *testing.T) {
	path := writeFixture(t, "cases.json",
		`[{"hours": 3, "minutes": 0, "seconds": 0, "expected_angle": 90.0}]`)
	r, out, logs := newTestRunner()

	summary := r.Run(path)

	assert.Equal(t, model.Summary{Passed: 1, Total: 1}, summary)
	assert.Equal(t, strings.Join([]string{
		"Time (H:M:S)    | Expected   | Actual     | Status",
		rule,
		"03:00:00        | 90.0       | 90.0       | PASS",
		rule,
		"",
	}, "\n"), out.String())
	assert.Equal(t, "INFO: Test Run Complete: 1/1 passed.\n", logs.String())
}

// TestRun_MixedOutcomes covers pass, fail, out-of-range and missing-field
// cases in one file. Errored cases count toward the total only.
func TestRun_MixedOutcomes(t *testing.T) {
	path := writeFixture(t, "cases.json", `[
		{"hours": 15, "minutes": 15, "expected_angle": 7.5},
		{"hours": 9, "minutes": 0, "expected_angle": 270.0},
		{"hours": 24, "minutes": 0, "seconds": 0, "expected_angle": 0.0},
		{"minutes": 30, "expected_angle": 0.0},
		{"hours": 12, "minutes": 30, "seconds": 0, "expected_angle": 165.005}
	]`)
	r, out, logs := newTestRunner()

	summary := r.Run(path)

	assert.Equal(t, model.Summary{Passed: 2, Failed: 1, Errored: 2, Total: 5}, summary)
	assert.Equal(t, strings.Join([]string{
		"Time (H:M:S)    | Expected   | Actual     | Status",
		rule,
		"15:15:00        | 7.5        | 7.5        | PASS",
		"09:00:00        | 270.0      | 90.0       | FAIL",
		"24:0:0 | Error: hours must be between 0 and 23, got 24",
		`-:30:0 | Error: missing required field "hours"`,
		"12:30:00        | 165.005    | 165.0      | PASS",
		rule,
		"",
	}, "\n"), out.String())
	assert.Equal(t, "INFO: Test Run Complete: 2/5 passed.\n", logs.String())
}

func TestRun_EmptyFixture(t *testing.T) {
	r, out, logs := newTestRunner()

	summary := r.Run(writeFixture(t, "cases.json", `[]`))

	assert.Equal(t, model.Summary{}, summary)
	assert.Equal(t, "Time (H:M:S)    | Expected   | Actual     | Status\n"+rule+"\n"+rule+"\n", out.String())
	assert.Contains(t, logs.String(), "0/0 passed.")
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	r, out, logs := newTestRunner()

	summary := r.Run(path)

	assert.True(t, summary.Aborted)
	assert.Zero(t, summary.Total)
	assert.Empty(t, out.String(), "no table output for a missing file")
	assert.Equal(t, "ERROR: File not found: "+path+"\n", logs.String())
}

func TestRun_MalformedFile(t *testing.T) {
	path := writeFixture(t, "cases.json", `[{"hours": 3, "minutes": `)
	r, out, logs := newTestRunner()

	summary := r.Run(path)

	assert.True(t, summary.Aborted)
	assert.Empty(t, out.String(), "no table output for a malformed file")
	assert.True(t, strings.HasPrefix(logs.String(), "ERROR: Failed to parse fixture file: "+path))
	assert.NotContains(t, logs.String(), "Test Run Complete")
	assert.Equal(t, 1, strings.Count(logs.String(), path), "path named once")
}

// TestRun_FractionalYAMLHoursAbort checks that 3.5 hours is rejected rather
// than truncated to 3 and scored against the 3 o'clock angle.
func TestRun_FractionalYAMLHoursAbort(t *testing.T) {
	path := writeFixture(t, "cases.yaml", "- hours: 3.5\n  minutes: 0\n  expected_angle: 90.0\n")
	r, out, logs := newTestRunner()

	summary := r.Run(path)

	assert.True(t, summary.Aborted)
	assert.Zero(t, summary.Passed)
	assert.Empty(t, out.String())
	assert.True(t, strings.HasPrefix(logs.String(), "ERROR: Failed to parse fixture file: "+path))
}

// TestRun_IntegralFloatTimes checks that 3.0 is read as 3 and the rest of
// the file is still evaluated.
func TestRun_IntegralFloatTimes(t *testing.T) {
	path := writeFixture(t, "cases.json", `[
		{"hours": 3.0, "minutes": 0, "expected_angle": 90.0},
		{"hours": 6, "minutes": 0.0, "expected_angle": 180.0}
	]`)
	r, out, logs := newTestRunner()

	summary := r.Run(path)

	assert.Equal(t, model.Summary{Passed: 2, Total: 2}, summary)
	assert.Contains(t, out.String(), "03:00:00        | 90.0       | 90.0       | PASS")
	assert.Contains(t, out.String(), "06:00:00        | 180.0      | 180.0      | PASS")
	assert.Equal(t, "INFO: Test Run Complete: 2/2 passed.\n", logs.String())
}

func TestRun_YAMLFixture(t *testing.T) {
	path := writeFixture(t, "cases.yaml", "- hours: 6\n  minutes: 0\n  expected_angle: 180\n")
	r, out, _ := newTestRunner()

	summary := r.Run(path)

	assert.Equal(t, 1, summary.Passed)
	assert.Contains(t, out.String(), "06:00:00        | 180.0      | 180.0      | PASS")
}

func TestRun_VerboseLogsCaseCount(t *testing.T) {
	path := writeFixture(t, "cases.json", `[{"hours": 1, "minutes": 0, "expected_angle": 30}]`)
	var out, logs bytes.Buffer
	r := New(&out, logging.New(&logs, true))

	r.Run(path)

	assert.Contains(t, logs.String(), "DEBUG: loaded fixture path="+path+" cases=1\n")
}

func TestRun_JSONReport(t *testing.T) {
	path := writeFixture(t, "cases.json", `[
		{"hours": 3, "minutes": 0, "expected_angle": 90},
		{"hours": 0, "minutes": 60, "expected_angle": 0}
	]`)
	r, out, logs := newTestRunner(WithJSON(true))

	summary := r.Run(path)
	assert.Equal(t, model.Summary{Passed: 1, Errored: 1, Total: 2}, summary)

	var doc struct {
		Cases []struct {
			Time     string   `json:"time"`
			Expected *float64 `json:"expected"`
			Actual   *float64 `json:"actual"`
			Status   string   `json:"status"`
			Error    string   `json:"error"`
		} `json:"cases"`
		Summary model.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Cases, 2)

	assert.Equal(t, "03:00:00", doc.Cases[0].Time)
	assert.Equal(t, "PASS", doc.Cases[0].Status)
	require.NotNil(t, doc.Cases[0].Actual)
	assert.Equal(t, 90.0, *doc.Cases[0].Actual)

	assert.Equal(t, "0:60:0", doc.Cases[1].Time)
	assert.Equal(t, "ERROR", doc.Cases[1].Status)
	assert.Nil(t, doc.Cases[1].Actual)
	assert.Equal(t, "minutes must be between 0 and 59, got 60", doc.Cases[1].Error)

	assert.Equal(t, 2, doc.Summary.Total)
	assert.Contains(t, logs.String(), "INFO: Test Run Complete: 1/2 passed.")
}

func TestRun_JSONReportEmptyFixture(t *testing.T) {
	r, out, _ := newTestRunner(WithJSON(true))

	r.Run(writeFixture(t, "cases.json", `[]`))

	assert.Contains(t, out.String(), `"cases": []`)
}

func TestEvaluate(t *testing.T) {
	r := New(&bytes.Buffer{}, nil)

	tests := []struct {
		name string
		tc   model.TestCase
		want model.CaseResult
	}{
		{
			name: "pass",
			tc:   model.TestCase{Hours: intPtr(3), Minutes: intPtr(15), ExpectedAngle: floatPtr(7.5)},
			want: model.CaseResult{Status: model.StatusPass, Actual: 7.5},
		},
		{
			name: "fail",
			tc:   model.TestCase{Hours: intPtr(3), Minutes: intPtr(15), ExpectedAngle: floatPtr(7.52)},
			want: model.CaseResult{Status: model.StatusFail, Actual: 7.5},
		},
		{
			name: "out of range seconds",
			tc:   model.TestCase{Hours: intPtr(3), Minutes: intPtr(0), Seconds: intPtr(60), ExpectedAngle: floatPtr(0)},
			want: model.CaseResult{
				Status: model.StatusError,
				Err:    &clock.InvalidArgumentError{Field: "seconds", Value: 60, Min: 0, Max: 59},
			},
		},
		{
			name: "missing expected angle",
			tc:   model.TestCase{Hours: intPtr(3), Minutes: intPtr(0)},
			want: model.CaseResult{
				Status: model.StatusError,
				Err:    &model.MissingFieldError{Field: "expected_angle"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.Case = tt.tc
			got := r.Evaluate(tt.tc)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestEvaluate_ToleranceIsExclusive checks the boundary of the comparison
// and the WithTolerance override.
func TestEvaluate_ToleranceIsExclusive(t *testing.T) {
	tc := model.TestCase{Hours: intPtr(3), Minutes: intPtr(0), ExpectedAngle: floatPtr(90.5)}

	assert.Equal(t, model.StatusFail, New(nil, nil).Evaluate(tc).Status)
	assert.Equal(t, model.StatusFail, New(nil, nil, WithTolerance(0.5)).Evaluate(tc).Status)
	assert.Equal(t, model.StatusPass, New(nil, nil, WithTolerance(0.6)).Evaluate(tc).Status)
}

func TestFormatAngle(t *testing.T) {
	assert.Equal(t, "90.0", FormatAngle(90))
	assert.Equal(t, "0.0", FormatAngle(0))
	assert.Equal(t, "7.5", FormatAngle(7.5))
	assert.Equal(t, "0.0917", FormatAngle(0.0917))
	assert.Equal(t, "165.005", FormatAngle(165.005))
}
