package ast_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/jensneuse/diffview"
	"github.com/kylelemons/godebug/pretty"
	"github.com/sebdah/goldie/v2"

	"github.com/wyrmgraph/gqlcore/pkg/astparser"
)

const snapshotSource = `query Greeting($name: String!) {
  hello(name: $name)
  world
}`

type fieldSummary struct {
	Alias string
	Name  string
}

type operationSummary struct {
	OperationType string
	Name          string
	Fields        []fieldSummary
}

func summarize(t *testing.T, source string) operationSummary {
	t.Helper()
	document, report := astparser.ParseGraphqlDocumentString(source)
	if report.HasErrors() {
		t.Fatalf("unexpected parse errors: %s", report.Error())
	}

	op := document.OperationDefinitions[document.RootNodes[0].Ref]
	set := document.SelectionSets[op.SelectionSet]

	summary := operationSummary{
		OperationType: op.OperationType.String(),
		Name:          document.Input.ByteSliceString(op.Name),
	}
	for _, sel := range set.SelectionRefs {
		summary.Fields = append(summary.Fields, fieldSummary{
			Alias: document.FieldAliasOrNameString(sel.Ref),
			Name:  document.FieldNameString(sel.Ref),
		})
	}
	return summary
}

func formatSummary(s operationSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "operation=%s name=%s\n", s.OperationType, s.Name)
	for _, f := range s.Fields {
		fmt.Fprintf(&b, "field alias=%s name=%s\n", f.Alias, f.Name)
	}
	return b.String()
}

// TestDocument_ParseIsDeterministicAcrossIndependentParses guards the arena-builder
// invariant that two unrelated Parse calls over the same source never observe each
// other's state: their summaries must be identical. On mismatch it opens a visual diff
// via diffview and dumps both summaries with spew and pretty, since a plain %+v often
// hides which nested field actually differs.
func TestDocument_ParseIsDeterministicAcrossIndependentParses(t *testing.T) {
	first := summarize(t, snapshotSource)
	second := summarize(t, snapshotSource)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Logf("first:\n%s", spew.Sdump(first))
		t.Logf("second:\n%s", spew.Sdump(second))
		t.Logf("pretty diff:\n%s", pretty.Compare(first, second))
		diffview.NewGoland().DiffViewAny("operationSummary", first, second)
		t.Errorf("independent parses of the same source produced different summaries (-first +second):\n%s", diff)
	}
}

func TestDocument_GoldenSummary(t *testing.T) {
	summary := summarize(t, snapshotSource)
	actual := []byte(formatSummary(summary))

	g := goldie.New(t)
	g.Assert(t, "operation_summary", actual)
}
