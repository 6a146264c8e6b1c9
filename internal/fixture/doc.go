// Package fixture loads clock-angle test cases from disk.
//
// A fixture file is an array of case records:
//
//	[
//	  // on the hour
//	  {"hours": 3, "minutes": 0, "seconds": 0, "expected_angle": 90.0},
//	  {"hours": 3, "minutes": 15, "expected_angle": 7.5},
//	]
//
// JSON files may contain comments and trailing commas; they are cleaned
// with github.com/tidwall/jsonc before decoding. Files ending in .yaml or
// .yml are decoded with gopkg.in/yaml.v3 using the same field names.
//
// Loading either succeeds for the whole file or fails for the whole file:
// a missing path wraps ErrNotFound and any decode failure wraps ErrMalformed.
// Per-record problems such as an absent required field are left to the
// caller (see model.TestCase.Validate) so that one bad record does not
// hide the others.
package fixture
