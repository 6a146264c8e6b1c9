package fixture

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/clockangle/internal/model"
)

// record is the on-disk shape of a case. Time fields go through
// wholeNumber so both decoders accept 3 and 3.0 but reject 3.5.
type record struct {
	Hours         *wholeNumber `json:"hours" yaml:"hours"`
	Minutes       *wholeNumber `json:"minutes" yaml:"minutes"`
	Seconds       *wholeNumber `json:"seconds" yaml:"seconds"`
	ExpectedAngle *float64     `json:"expected_angle" yaml:"expected_angle"`
}

// wholeNumber is a numeric field that must hold an integral value.
type wholeNumber int

// UnmarshalJSON accepts any JSON number with no fractional part.
func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("expected a whole number, got %s", data)
	}
	return n.set(v, string(data))
}

// UnmarshalYAML accepts an !!int or !!float scalar with no fractional part.
func (n *wholeNumber) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || (node.ShortTag() != "!!int" && node.ShortTag() != "!!float") {
		return fmt.Errorf("line %d: expected a whole number, got %q", node.Line, node.Value)
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("line %d: expected a whole number, got %q", node.Line, node.Value)
	}
	return n.set(v, node.Value)
}

func (n *wholeNumber) set(v float64, raw string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) ||
		v > math.MaxInt32 || v < math.MinInt32 {
		return fmt.Errorf("expected a whole number, got %s", raw)
	}
	*n = wholeNumber(v)
	return nil
}

func (n *wholeNumber) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

func (r record) testCase() model.TestCase {
	return model.TestCase{
		Hours:         r.Hours.intPtr(),
		Minutes:       r.Minutes.intPtr(),
		Seconds:       r.Seconds.intPtr(),
		ExpectedAngle: r.ExpectedAngle,
	}
}

func toTestCases(records []record) []model.TestCase {
	cases := make([]model.TestCase, 0, len(records))
	for _, r := range records {
		cases = append(cases, r.testCase())
	}
	return cases
}
