package token

// Keyword string constants recognized by the parser. Keywords are not reserved at the
// lexer level (they lex as plain NAME tokens); the parser recognizes them contextually,
// per §4.2 of the design ("expect_keyword").
const (
	KeywordQuery        = "query"
	KeywordMutation     = "mutation"
	KeywordSubscription = "subscription"
	KeywordFragment     = "fragment"
	KeywordOn           = "on"
	KeywordTrue         = "true"
	KeywordFalse        = "false"
	KeywordNull         = "null"
	KeywordSchema       = "schema"
	KeywordScalar       = "scalar"
	KeywordType         = "type"
	KeywordInterface    = "interface"
	KeywordUnion        = "union"
	KeywordEnum         = "enum"
	KeywordInput        = "input"
	KeywordExtend       = "extend"
	KeywordDirective    = "directive"
	KeywordImplements   = "implements"
	KeywordRepeatable   = "repeatable"
)

// TypeSystemDefinitionKeywords is the set of keywords that may follow a description
// string at top level (§4.5).
var TypeSystemDefinitionKeywords = map[string]bool{
	KeywordSchema:    true,
	KeywordScalar:    true,
	KeywordType:      true,
	KeywordInterface: true,
	KeywordUnion:     true,
	KeywordEnum:      true,
	KeywordInput:     true,
	KeywordDirective: true,
}
