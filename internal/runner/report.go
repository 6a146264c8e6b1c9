package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shinji-kodama/clockangle/internal/model"
)

// separatorWidth is the length of the dashed rule framing the table.
const separatorWidth = 55

// reporter renders case results as they are produced.
type reporter interface {
	begin()
	result(model.CaseResult)
	end(model.Summary) error
}

// textReporter prints the fixed-width table:
//
//	Time (H:M:S)    | Expected   | Actual     | Status
//	-------------------------------------------------------
//	03:00:00        | 90.0       | 90.0       | PASS
//	24:0:0 | Error: hours must be between 0 and 23, got 24
//	-------------------------------------------------------
type textReporter struct {
	w io.Writer
}

func (t *textReporter) begin() {
	fmt.Fprintf(t.w, "%-15s | %-10s | %-10s | %s\n", "Time (H:M:S)", "Expected", "Actual", "Status")
	fmt.Fprintln(t.w, strings.Repeat("-", separatorWidth))
}

func (t *textReporter) result(res model.CaseResult) {
	if res.Status == model.StatusError {
		fmt.Fprintf(t.w, "%s | Error: %v\n", res.Case.RawTime(), res.Err)
		return
	}
	fmt.Fprintf(t.w, "%-15s | %-10s | %-10s | %s\n",
		res.Case.Time().String(),
		FormatAngle(res.Case.Expected()),
		FormatAngle(res.Actual),
		res.Status,
	)
}

func (t *textReporter) end(model.Summary) error {
	_, err := fmt.Fprintln(t.w, strings.Repeat("-", separatorWidth))
	return err
}

// jsonCase is the JSON form of a single result.
type jsonCase struct {
	Time     string   `json:"time"`
	Expected *float64 `json:"expected,omitempty"`
	Actual   *float64 `json:"actual,omitempty"`
	Status   string   `json:"status"`
	Error    string   `json:"error,omitempty"`
}

// jsonReporter buffers results and writes one document at the end.
type jsonReporter struct {
	w     io.Writer
	cases []jsonCase
}

func (j *jsonReporter) begin() {
	// Use an empty slice so an empty fixture encodes as [] instead of null.
	j.cases = make([]jsonCase, 0)
}

func (j *jsonReporter) result(res model.CaseResult) {
	entry := jsonCase{Status: res.Status.String(), Expected: res.Case.ExpectedAngle}
	if res.Status == model.StatusError {
		entry.Time = res.Case.RawTime()
		entry.Error = res.Err.Error()
	} else {
		actual := res.Actual
		entry.Time = res.Case.Time().String()
		entry.Actual = &actual
	}
	j.cases = append(j.cases, entry)
}

func (j *jsonReporter) end(summary model.Summary) error {
	doc := struct {
		Cases   []jsonCase    `json:"cases"`
		Summary model.Summary `json:"summary"`
	}{Cases: j.cases, Summary: summary}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(j.w, string(data))
	return err
}

// FormatAngle renders a in the shortest form that round-trips, always
// with at least one decimal place: 90 -> "90.0", 7.5 -> "7.5".
func FormatAngle(a float64) string {
	s := strconv.FormatFloat(a, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
