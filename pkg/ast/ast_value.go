package ast

// ValueKind discriminates the Value variants of §3.
type ValueKind int

const (
	ValueKindUnknown ValueKind = iota
	ValueKindVariable
	ValueKindInt
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindList
	ValueKindObject
)

// Value is a (kind, ref) pair, the same shape as Node but scoped to value literals so a
// ListValue's elements and an ObjectField's value can both hold one without importing
// the full Node vocabulary. Ref indexes into the Document slice the Kind implies, except
// for ValueKindBoolean (Ref is 1 for true, 0 for false — no BooleanValues slice is
// needed) and ValueKindNull (Ref is unused).
type Value struct {
	Kind     ValueKind
	Ref      int
	Location Location
}

// IntValue holds a decimal integer literal's raw source text (§4.1: -?(0|[1-9][0-9]*)).
// Kept as raw bytes rather than parsed into an int64 — downstream consumers that care
// about value overflow behavior for 64-bit vs. arbitrary precision targets make that
// call themselves; the parser's only job is syntax.
type IntValue struct {
	Raw      ByteSliceReference
	Negative bool
	Location Location
}

// FloatValue holds a float literal's raw source text.
type FloatValue struct {
	Raw      ByteSliceReference
	Location Location
}

// StringValue holds a decoded string or block-string literal. Content is a
// ByteSliceReference into Input — for ordinary strings that's still the escaped-decoded
// bytes written into Input via AppendInputBytes during parsing (the lexer already
// decoded escapes; the parser re-homes the decoded bytes into the Document's Input so
// every AST string, literal or decoded, is addressable the same way).
type StringValue struct {
	Content     ByteSliceReference
	BlockString bool
	Location    Location
}

// EnumValue holds an enum literal's name.
type EnumValue struct {
	Name     ByteSliceReference
	Location Location
}

// VariableValue holds a `$name` reference used in a non-constant value position.
type VariableValue struct {
	Name     ByteSliceReference
	Location Location
}

// ListValue holds element Values by Ref into Document.Values.
type ListValue struct {
	Refs     []int
	Location Location
}

// ObjectValue holds ObjectField Refs into Document.ObjectFields.
type ObjectValue struct {
	Refs     []int
	Location Location
}

// ObjectField is a single `name: value` pair inside an ObjectValue.
type ObjectField struct {
	Name     ByteSliceReference
	Value    Value
	Location Location
}
