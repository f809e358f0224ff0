// Package testfixture loads table-driven parser test fixtures. A YAML manifest
// (cases.yaml) lists named cases, each pointing at a GraphQL source file and an
// optional substring its operationreport.Report.Error() is expected to contain.
// Individual test files that also carry a JSON "expect" fixture (for larger structural
// assertions) use JSONField for a quick zero-copy field pull, QueryJSON for a path-style
// read, and PatchJSON to derive a variant fixture (e.g. the same case with a different
// max_depth) without hand-maintaining a near-duplicate file.
package testfixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/buger/jsonparser"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v2"
)

// Case is one entry of a cases.yaml manifest.
type Case struct {
	Name            string `yaml:"name"`
	SourceFile      string `yaml:"source"`
	WantErrContains string `yaml:"wantErrContains"`
}

// LoadManifest reads and unmarshals dir/cases.yaml.
func LoadManifest(dir string) ([]Case, error) {
	data, err := os.ReadFile(filepath.Join(dir, "cases.yaml"))
	if err != nil {
		return nil, fmt.Errorf("testfixture: reading manifest: %w", err)
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("testfixture: unmarshaling manifest: %w", err)
	}
	return cases, nil
}

// LoadSource reads the GraphQL source text named by a Case, relative to dir.
func LoadSource(dir string, c Case) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, c.SourceFile))
	if err != nil {
		return "", fmt.Errorf("testfixture: reading source %s: %w", c.SourceFile, err)
	}
	return string(data), nil
}

// JSONField extracts one field from a JSON fixture via jsonparser, for fixtures too
// large to conveniently unmarshal into a Go struct just to read one value.
func JSONField(jsonFixture []byte, keys ...string) (string, error) {
	value, _, _, err := jsonparser.Get(jsonFixture, keys...)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// QueryJSON runs a gjson dotted-path query against a JSON fixture.
func QueryJSON(jsonFixture []byte, path string) gjson.Result {
	return gjson.GetBytes(jsonFixture, path)
}

// PatchJSON returns jsonFixture with the value at path replaced by value.
func PatchJSON(jsonFixture []byte, path string, value interface{}) ([]byte, error) {
	return sjson.SetBytes(jsonFixture, path, value)
}
