package testfixture

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyrmgraph/gqlcore/pkg/astparser"
)

func TestLoadManifest_DrivesParserCases(t *testing.T) {
	cases, err := LoadManifest("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			source, err := LoadSource("testdata", c)
			require.NoError(t, err)

			_, report := astparser.ParseGraphqlDocumentString(source)
			if c.WantErrContains == "" {
				assert.False(t, report.HasErrors(), "unexpected parse errors: %s", report.Error())
				return
			}
			require.True(t, report.HasErrors())
			assert.Contains(t, report.Error(), c.WantErrContains)
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	fixture := []byte(`{"case":"unterminated_string","maxDepth":64}`)

	name, err := JSONField(fixture, "case")
	require.NoError(t, err)
	assert.Equal(t, "unterminated_string", name)

	assert.Equal(t, int64(64), QueryJSON(fixture, "maxDepth").Int())

	patched, err := PatchJSON(fixture, "maxDepth", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), QueryJSON(patched, "maxDepth").Int())

	var roundTrip map[string]interface{}
	require.NoError(t, json.Unmarshal(patched, &roundTrip))
	assert.Equal(t, "unterminated_string", roundTrip["case"])
}
