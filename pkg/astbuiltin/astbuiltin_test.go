package astbuiltin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyrmgraph/gqlcore/pkg/ast"
)

func TestParseWithBuiltinDefinitions_OnlyBuiltins(t *testing.T) {
	doc, report := ParseWithBuiltinDefinitions("")
	require.False(t, report.HasErrors(), "unexpected parse errors: %s", report.Error())

	require.Len(t, doc.RootNodes, 9)

	var scalarNames, directiveNames []string
	for _, node := range doc.RootNodes {
		switch node.Kind {
		case ast.NodeKindScalarTypeDefinition:
			scalarNames = append(scalarNames, doc.Input.ByteSliceString(doc.ScalarTypeDefinitions[node.Ref].Name))
		case ast.NodeKindDirectiveDefinition:
			directiveNames = append(directiveNames, doc.Input.ByteSliceString(doc.DirectiveDefinitions[node.Ref].Name))
		}
	}

	assert.Equal(t, []string{"Int", "Float", "String", "Boolean", "ID"}, scalarNames)
	assert.Equal(t, []string{"include", "skip", "deprecated", "specifiedBy"}, directiveNames)
}

func TestParseWithBuiltinDefinitions_PreservesUserDefinitions(t *testing.T) {
	doc, report := ParseWithBuiltinDefinitions(`type Query { hello: String }`)
	require.False(t, report.HasErrors(), "unexpected parse errors: %s", report.Error())

	require.Len(t, doc.RootNodes, 1+9)
	require.Equal(t, ast.NodeKindObjectTypeDefinition, doc.RootNodes[0].Kind)
	assert.Equal(t, "Query", doc.ObjectTypeDefinitionNameString(doc.RootNodes[0].Ref))
}

func TestParseWithBuiltinDefinitions_DeprecatedDirectiveHasDefaultReason(t *testing.T) {
	doc, report := ParseWithBuiltinDefinitions("")
	require.False(t, report.HasErrors())

	var deprecated ast.DirectiveDefinition
	found := false
	for _, node := range doc.RootNodes {
		if node.Kind != ast.NodeKindDirectiveDefinition {
			continue
		}
		dd := doc.DirectiveDefinitions[node.Ref]
		if doc.Input.ByteSliceString(dd.Name) == "deprecated" {
			deprecated = dd
			found = true
		}
	}
	require.True(t, found)
	require.True(t, deprecated.HasArgumentsDefinitions)
	require.Len(t, deprecated.ArgumentsDefinition.Refs, 1)

	reasonArg := doc.InputValueDefinitions[deprecated.ArgumentsDefinition.Refs[0]]
	assert.Equal(t, "reason", doc.Input.ByteSliceString(reasonArg.Name))
	require.True(t, reasonArg.HasDefaultValue)
	require.Equal(t, ast.ValueKindString, reasonArg.DefaultValue.Kind)
	assert.Equal(t, "No longer supported", doc.Input.ByteSliceString(doc.StringValues[reasonArg.DefaultValue.Ref].Content))
}
