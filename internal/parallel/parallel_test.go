package parallel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseAll_PreservesInputOrder(t *testing.T) {
	sources := []string{
		"{ a }",
		"{ b }",
		"{ c }",
		"{ d }",
		"{ e }",
	}

	results, err := ParseAll(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, results, len(sources))

	for i, want := range []string{"a", "b", "c", "d", "e"} {
		require.False(t, results[i].Report.HasErrors(), "source %d: %s", i, results[i].Report.Error())
		op := results[i].Document.OperationDefinitions[results[i].Document.RootNodes[0].Ref]
		set := results[i].Document.SelectionSets[op.SelectionSet]
		fieldRef := set.SelectionRefs[0].Ref
		assert.Equal(t, want, results[i].Document.FieldNameString(fieldRef))
	}
}

func TestParseAll_PerSourceSyntaxErrorDoesNotFailTheBatch(t *testing.T) {
	sources := []string{"{ a }", "{ ???", "{ c }"}

	results, err := ParseAll(context.Background(), sources)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.False(t, results[0].Report.HasErrors())
	assert.True(t, results[1].Report.HasErrors())
	assert.False(t, results[2].Report.HasErrors())
}

func TestParseAll_CancelledContextAbortsTheBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseAll(ctx, []string{"{ a }", "{ b }"})
	assert.Error(t, err)
}

func TestParseAll_EmptySourcesReturnsEmptyResults(t *testing.T) {
	results, err := ParseAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
