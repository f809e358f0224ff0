// Package astbuiltin implements the self-hosted "parse a literal, then merge" pattern
// the teacher uses in v2/pkg/asttransform/baseschema.go's MergeDefinitionWithBaseSchema:
// rather than hand-building the AST nodes for the five built-in scalars and four
// built-in directives in Go, their source text is appended to the document's own input
// buffer and run back through astparser — the same parser a caller's own schema text
// goes through. It lives in its own package (not a Document method) because it imports
// astparser, and ast must not import astparser (astparser already imports ast).
//
// Unlike the teacher's version, this trims the introspection object types (__Schema,
// __Type, __Directive, ...) and the Query-type root-field injection: those depend on a
// type-name visitor that walks and rewrites an existing schema's root Query type, a
// concern belonging to a schema-validation/merge layer this module doesn't implement.
// Only the scalar and directive definitions — definitions meaningful to a bare parser —
// are carried over.
package astbuiltin

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/astparser"
	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
)

// builtinDefinitions is the GraphQL October 2021 spec's built-in scalar and directive
// definitions (§3.2.1, §3.13), trimmed of the introspection schema the teacher's
// baseSchema literal also carries.
const builtinDefinitions = `
"The 'Int' scalar type represents non-fractional signed whole numeric values. Int can represent values between -(2^31) and 2^31 - 1."
scalar Int
"The 'Float' scalar type represents signed double-precision fractional values as specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point)."
scalar Float
"The 'String' scalar type represents textual data, represented as UTF-8 character sequences. The String type is most often used by GraphQL to represent free-form human-readable text."
scalar String
"The 'Boolean' scalar type represents 'true' or 'false'."
scalar Boolean
"The 'ID' scalar type represents a unique identifier, often used to refetch an object or as key for a cache. The ID type appears in a JSON response as a String; however, it is not intended to be human-readable. When expected as an input type, any string (such as '4') or integer (such as 4) input value will be accepted as an ID."
scalar ID
"Directs the executor to include this field or fragment only when the argument is true."
directive @include(
    "Included when true."
    if: Boolean!
) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT
"Directs the executor to skip this field or fragment when the argument is true."
directive @skip(
    "Skipped when true."
    if: Boolean!
) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT
"Marks an element of a GraphQL schema as no longer supported."
directive @deprecated(
    """
    Explains why this element was deprecated, usually also including a suggestion
    for how to access supported similar data. Formatted in
    [Markdown](https://daringfireball.net/projects/markdown/).
    """
    reason: String = "No longer supported"
) on FIELD_DEFINITION | ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION | ENUM_VALUE
"Provides a scalar specification URL for specifying the behavior of custom scalar types."
directive @specifiedBy(
    "The URL that specifies the behavior of this scalar."
    url: String!
) on SCALAR
`

// MergeBuiltinDefinitions appends the built-in scalar and directive definitions to
// document.Input and parses the combined buffer in a single pass. Call this once, right
// after document.Input.ResetInputString/ResetInputBytes and before any other parse of
// the same document — parser.Parse always tokenizes from offset 0, so a document
// already carrying parsed RootNodes must not be merged into a second time.
func MergeBuiltinDefinitions(document *ast.Document, report *operationreport.Report, opts ...astparser.Option) {
	document.Input.RawBytes = append(document.Input.RawBytes, []byte(builtinDefinitions)...)

	parser := astparser.NewParser()
	parser.Parse(document, report, opts...)
}

// ParseWithBuiltinDefinitions is the one-shot convenience form: build a fresh Document
// from sourceText with the built-in scalar and directive definitions appended, and parse
// the result in one call.
func ParseWithBuiltinDefinitions(sourceText string, opts ...astparser.Option) (*ast.Document, operationreport.Report) {
	document := ast.NewDocument()
	document.Input.ResetInputString(sourceText)
	report := operationreport.Report{}
	MergeBuiltinDefinitions(document, &report, opts...)
	return document, report
}
