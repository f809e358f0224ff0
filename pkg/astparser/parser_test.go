package astparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
)

func mustParse(t *testing.T, source string, opts ...Option) *ast.Document {
	t.Helper()
	document, report := ParseGraphqlDocumentString(source, opts...)
	require.False(t, report.HasErrors(), "unexpected parse errors: %s", report.Error())
	return document
}

func TestParse_NumberedQueryWithNestedSelection(t *testing.T) {
	doc := mustParse(t, `query test { field1 field2(id: 5) { name address } field3 }`)

	require.Len(t, doc.RootNodes, 1)
	require.Equal(t, ast.NodeKindOperationDefinition, doc.RootNodes[0].Kind)

	op := doc.OperationDefinitions[doc.RootNodes[0].Ref]
	assert.Equal(t, ast.OperationTypeQuery, op.OperationType)
	require.True(t, op.HasName)
	assert.Equal(t, "test", doc.Input.ByteSliceString(op.Name))

	set := doc.SelectionSets[op.SelectionSet]
	require.Len(t, set.SelectionRefs, 3)

	field1 := doc.Fields[set.SelectionRefs[0].Ref]
	assert.Equal(t, "field1", doc.Input.ByteSliceString(field1.Name))
	assert.False(t, field1.HasArguments)

	field2 := doc.Fields[set.SelectionRefs[1].Ref]
	assert.Equal(t, "field2", doc.Input.ByteSliceString(field2.Name))
	require.True(t, field2.HasArguments)
	require.Len(t, field2.Arguments.Refs, 1)

	arg := doc.Arguments[field2.Arguments.Refs[0]]
	assert.Equal(t, "id", doc.Input.ByteSliceString(arg.Name))
	require.Equal(t, ast.ValueKindInt, arg.Value.Kind)
	assert.Equal(t, "5", doc.Input.ByteSliceString(doc.IntValues[arg.Value.Ref].Raw))

	require.True(t, field2.HasSelectionSet)
	nested := doc.SelectionSets[field2.SelectionSet]
	require.Len(t, nested.SelectionRefs, 2)
	assert.Equal(t, "name", doc.FieldNameString(nested.SelectionRefs[0].Ref))
	assert.Equal(t, "address", doc.FieldNameString(nested.SelectionRefs[1].Ref))

	field3 := doc.Fields[set.SelectionRefs[2].Ref]
	assert.Equal(t, "field3", doc.Input.ByteSliceString(field3.Name))
}

func TestParse_AnonymousShorthand(t *testing.T) {
	doc := mustParse(t, `{ hello }`)

	require.Len(t, doc.RootNodes, 1)
	op := doc.OperationDefinitions[doc.RootNodes[0].Ref]
	assert.Equal(t, ast.OperationTypeQuery, op.OperationType)
	assert.False(t, op.HasName)

	set := doc.SelectionSets[op.SelectionSet]
	require.Len(t, set.SelectionRefs, 1)
	field := doc.Fields[set.SelectionRefs[0].Ref]
	assert.Equal(t, "hello", doc.FieldNameString(set.SelectionRefs[0].Ref))
	assert.False(t, field.HasArguments)
}

func TestParse_FragmentDefinition(t *testing.T) {
	doc := mustParse(t, `fragment F on User { id }`)

	require.Len(t, doc.RootNodes, 1)
	require.Equal(t, ast.NodeKindFragmentDefinition, doc.RootNodes[0].Kind)
	frag := doc.FragmentDefinitions[doc.RootNodes[0].Ref]
	assert.Equal(t, "F", doc.Input.ByteSliceString(frag.Name))
	require.True(t, frag.TypeCondition.IsDefined)
	assert.Equal(t, "User", doc.NamedTypeNameString(frag.TypeCondition.Type))

	set := doc.SelectionSets[frag.SelectionSet]
	require.Len(t, set.SelectionRefs, 1)
	assert.Equal(t, "id", doc.FieldNameString(set.SelectionRefs[0].Ref))
}

func TestParse_SchemaDefinitionWithDirectiveAndRootTypes(t *testing.T) {
	doc := mustParse(t, `schema @x { query: Q mutation: M }`)

	require.Len(t, doc.RootNodes, 1)
	require.Equal(t, ast.NodeKindSchemaDefinition, doc.RootNodes[0].Kind)
	sd := doc.SchemaDefinitions[doc.RootNodes[0].Ref]

	require.True(t, sd.HasDirectives)
	require.Len(t, sd.Directives.Refs, 1)
	assert.Equal(t, "x", doc.DirectiveNameString(sd.Directives.Refs[0]))

	require.Len(t, sd.RootOperationTypeDefinitions, 2)
	query := doc.RootOperationTypeDefinitions[sd.RootOperationTypeDefinitions[0]]
	assert.Equal(t, ast.OperationTypeQuery, query.OperationType)
	assert.Equal(t, "Q", doc.NamedTypeNameString(query.NamedType))

	mutation := doc.RootOperationTypeDefinitions[sd.RootOperationTypeDefinitions[1]]
	assert.Equal(t, ast.OperationTypeMutation, mutation.OperationType)
	assert.Equal(t, "M", doc.NamedTypeNameString(mutation.NamedType))
}

func TestParse_DescribedObjectTypeWithInterfacesAndFieldArgument(t *testing.T) {
	doc := mustParse(t, `"desc" type T implements I & J { f(a: Int = 1): [T!]! @d }`)

	require.Len(t, doc.RootNodes, 1)
	require.Equal(t, ast.NodeKindObjectTypeDefinition, doc.RootNodes[0].Kind)
	otd := doc.ObjectTypeDefinitions[doc.RootNodes[0].Ref]

	require.True(t, otd.Description.IsDefined)
	assert.False(t, otd.Description.IsBlockString)
	assert.Equal(t, "desc", doc.Input.ByteSliceString(otd.Description.Content))
	assert.Equal(t, "T", doc.ObjectTypeDefinitionNameString(doc.RootNodes[0].Ref))

	require.True(t, otd.HasImplementsInterfaces)
	require.Len(t, otd.ImplementsInterfaces.Refs, 2)
	assert.Equal(t, "I", doc.NamedTypeNameString(otd.ImplementsInterfaces.Refs[0]))
	assert.Equal(t, "J", doc.NamedTypeNameString(otd.ImplementsInterfaces.Refs[1]))

	require.True(t, otd.HasFieldDefinitions)
	require.Len(t, otd.FieldsDefinition.Refs, 1)
	field := doc.FieldDefinitions[otd.FieldsDefinition.Refs[0]]
	assert.Equal(t, "f", doc.Input.ByteSliceString(field.Name))

	require.True(t, field.HasArgumentsDefinitions)
	require.Len(t, field.ArgumentsDefinition.Refs, 1)
	arg := doc.InputValueDefinitions[field.ArgumentsDefinition.Refs[0]]
	assert.Equal(t, "a", doc.Input.ByteSliceString(arg.Name))
	assert.Equal(t, "Int", doc.NamedTypeNameString(arg.Type))
	require.True(t, arg.HasDefaultValue)
	require.Equal(t, ast.ValueKindInt, arg.DefaultValue.Kind)
	assert.Equal(t, "1", doc.Input.ByteSliceString(doc.IntValues[arg.DefaultValue.Ref].Raw))

	// [T!]!
	outer := doc.Types[field.Type]
	require.Equal(t, ast.TypeKindNonNull, outer.TypeKind)
	list := doc.Types[outer.OfType]
	require.Equal(t, ast.TypeKindList, list.TypeKind)
	inner := doc.Types[list.OfType]
	require.Equal(t, ast.TypeKindNonNull, inner.TypeKind)
	named := doc.Types[inner.OfType]
	require.Equal(t, ast.TypeKindNamed, named.TypeKind)
	assert.Equal(t, "T", doc.Input.ByteSliceString(named.Name))

	require.True(t, field.HasDirectives)
	require.Len(t, field.Directives.Refs, 1)
	assert.Equal(t, "d", doc.DirectiveNameString(field.Directives.Refs[0]))
}

func TestParse_UnionTypeDefinition(t *testing.T) {
	doc := mustParse(t, `union U = A | B | C`)

	require.Len(t, doc.RootNodes, 1)
	require.Equal(t, ast.NodeKindUnionTypeDefinition, doc.RootNodes[0].Kind)
	utd := doc.UnionTypeDefinitions[doc.RootNodes[0].Ref]
	assert.Equal(t, "U", doc.Input.ByteSliceString(utd.Name))

	require.True(t, utd.HasUnionMemberTypes)
	require.Len(t, utd.UnionMemberTypes.Refs, 3)
	assert.Equal(t, "A", doc.NamedTypeNameString(utd.UnionMemberTypes.Refs[0]))
	assert.Equal(t, "B", doc.NamedTypeNameString(utd.UnionMemberTypes.Refs[1]))
	assert.Equal(t, "C", doc.NamedTypeNameString(utd.UnionMemberTypes.Refs[2]))
}

func TestParse_EmptyDocument(t *testing.T) {
	doc := mustParse(t, ``)
	assert.Empty(t, doc.RootNodes)
}

func TestParse_WhitespaceAndCommentOnlyDocument(t *testing.T) {
	// Blank lines are themselves ignored tokens (just more whitespace), so they don't
	// break a comment run: all three lines land in a single unattached Comment.
	doc := mustParse(t, "\n  # first\n  # second\n\n  # third\n")
	assert.Empty(t, doc.RootNodes)
	require.Len(t, doc.UnattachedComments, 1)
	assert.Equal(t, " first\n second\n third", doc.UnattachedComments[0].Value)
}

func TestParse_MaxDepthExceeded(t *testing.T) {
	// A deeply nested list type, well past a small explicit max_depth.
	typeExpr := "T"
	for i := 0; i < 10; i++ {
		typeExpr = "[" + typeExpr + "]"
	}
	source := "query Q($v: " + typeExpr + ") { x }"

	_, report := ParseGraphqlDocumentString(source, WithMaxDepth(4))
	require.True(t, report.HasErrors())
	require.Len(t, report.ExternalErrors, 1)
	assert.Equal(t, operationreport.ErrKindMaxDepthExceeded, report.ExternalErrors[0].Kind)
}

func TestParse_FragmentNamedOnIsRejected(t *testing.T) {
	_, report := ParseGraphqlDocumentString(`fragment on on User { id }`)
	require.True(t, report.HasErrors())
	assert.Equal(t, operationreport.ErrKindSyntax, report.ExternalErrors[0].Kind)
}

func TestParse_EnumValueNamedBooleanOrNullIsRejected(t *testing.T) {
	for _, word := range []string{"true", "false", "null"} {
		t.Run(word, func(t *testing.T) {
			source := "enum E { " + word + " }"
			_, report := ParseGraphqlDocumentString(source)
			require.True(t, report.HasErrors())
			assert.Equal(t, operationreport.ErrKindSyntax, report.ExternalErrors[0].Kind)
		})
	}
}

func TestParse_AliasDetectedByColonAfterFirstName(t *testing.T) {
	doc := mustParse(t, `{ shorthand: field }`)

	op := doc.OperationDefinitions[doc.RootNodes[0].Ref]
	set := doc.SelectionSets[op.SelectionSet]
	field := doc.Fields[set.SelectionRefs[0].Ref]

	require.True(t, field.Alias.IsDefined)
	assert.Equal(t, "shorthand", doc.Input.ByteSliceString(field.Alias.Name))
	assert.Equal(t, "field", doc.Input.ByteSliceString(field.Name))
}

func TestParse_DepthCounterReturnsToOneAfterParse(t *testing.T) {
	parser := NewParser()
	document := ast.NewDocument()
	document.Input.ResetInputString(`{ a { b { c } } }`)
	report := operationreport.Report{}
	parser.Parse(document, &report)
	require.False(t, report.HasErrors())
	assert.Equal(t, 1, parser.depth)
}

func TestParse_NonNullTypeNeverWrapsNonNullType(t *testing.T) {
	// The grammar has no way to write "T!!" as two NonNullType wraps around a single
	// inner type; a second '!' simply has nothing left to consume.
	_, report := ParseGraphqlDocumentString(`type T { f: Int!! }`)
	require.True(t, report.HasErrors())
}

func TestParse_IgnoreLocationsZeroesEveryLocation(t *testing.T) {
	doc := mustParse(t, `{ hello }`, WithIgnoreLocations())
	op := doc.OperationDefinitions[doc.RootNodes[0].Ref]
	assert.Equal(t, ast.Location{}, op.Location)
}

func TestParse_IgnoreCommentsDropsThemEntirely(t *testing.T) {
	doc := mustParse(t, "# leading\n{ hello }", WithIgnoreComments())
	op := doc.OperationDefinitions[doc.RootNodes[0].Ref]
	assert.Nil(t, op.Comment)
	assert.Empty(t, doc.UnattachedComments)
}

func TestParse_CommentAttachesToFollowingField(t *testing.T) {
	doc := mustParse(t, "{\n  # about hello\n  hello\n}")
	op := doc.OperationDefinitions[doc.RootNodes[0].Ref]
	set := doc.SelectionSets[op.SelectionSet]
	field := doc.Fields[set.SelectionRefs[0].Ref]
	require.NotNil(t, field.Comment)
	assert.Equal(t, " about hello", field.Comment.Value)
}

func TestParse_InlineFragmentWithoutTypeCondition(t *testing.T) {
	doc := mustParse(t, `{ ... @include(if: true) { hello } }`)
	op := doc.OperationDefinitions[doc.RootNodes[0].Ref]
	set := doc.SelectionSets[op.SelectionSet]
	require.Equal(t, ast.NodeKindInlineFragment, set.SelectionRefs[0].Kind)
	inline := doc.InlineFragments[set.SelectionRefs[0].Ref]
	assert.False(t, inline.TypeCondition.IsDefined)
	require.True(t, inline.HasDirectives)
}

func TestParse_DirectiveDefinitionWithRepeatableAndLocations(t *testing.T) {
	doc := mustParse(t, `directive @cached(ttl: Int) repeatable on FIELD | OBJECT`)
	dd := doc.DirectiveDefinitions[doc.RootNodes[0].Ref]
	assert.Equal(t, "cached", doc.Input.ByteSliceString(dd.Name))
	assert.True(t, dd.Repeatable)
	require.Len(t, dd.DirectiveLocations, 2)
	assert.Equal(t, ast.DirectiveLocationField, dd.DirectiveLocations[0])
	assert.Equal(t, ast.DirectiveLocationObject, dd.DirectiveLocations[1])
}

func TestParse_TypeExtensionRequiresAtLeastOneClause(t *testing.T) {
	_, report := ParseGraphqlDocumentString(`extend type T`)
	require.True(t, report.HasErrors())
	assert.Contains(t, report.Error(), "must implement an interface, declare a directive, or add a field")
}

func TestParse_SyntaxErrorMessageIncludesPosition(t *testing.T) {
	_, report := ParseGraphqlDocumentString("{\n  field(\n}")
	require.True(t, report.HasErrors())
	assert.Contains(t, report.Error(), "line 3")
}
