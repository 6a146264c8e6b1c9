package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/clockangle/internal/model"
)

// DefaultPath is the fixture file read when no path is given.
const DefaultPath = "clock_test_data.json"

var (
	// ErrNotFound is wrapped when the fixture path does not name a regular file.
	ErrNotFound = errors.New("fixture file not found")

	// ErrMalformed is wrapped when the fixture content cannot be decoded
	// as an array of case records.
	ErrMalformed = errors.New("malformed fixture file")
)

// Format identifies the encoding of a fixture file.
type Format string

const (
	// FormatJSON is JSON, optionally with comments and trailing commas.
	FormatJSON Format = "json"

	// FormatYAML is a YAML sequence of mappings.
	FormatYAML Format = "yaml"
)

// DetectFormat picks the decoder from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the fixture at path and returns its cases in file order.
func Load(path string) ([]model.TestCase, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat fixture %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	// os.ReadFile opens, reads and closes in one call, so the handle is
	// released on every exit path including a later decode failure.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	return Decode(data, DetectFormat(path))
}

// Decode parses fixture content in the given format. The returned error
// wraps ErrMalformed.
func Decode(data []byte, format Format) ([]model.TestCase, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]model.TestCase, error) {
	clean := bytes.TrimSpace(jsonc.ToJSON(data))

	// encoding/json accepts null for a slice target; a fixture must be an array.
	if !bytes.HasPrefix(clean, []byte("[")) {
		return nil, fmt.Errorf("%w: top-level value must be an array", ErrMalformed)
	}

	var records []record
	if err := json.Unmarshal(clean, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return toTestCases(records), nil
}

func decodeYAML(data []byte) ([]model.TestCase, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// An empty document has no content node.
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: top-level value must be a sequence", ErrMalformed)
	}

	var records []record
	if err := root.Content[0].Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return toTestCases(records), nil
}
