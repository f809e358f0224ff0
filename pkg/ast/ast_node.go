package ast

// Location is a node's (start, end) character-offset span in the source, per §3.
// Invariant 1: Start <= End, and both are valid offsets into the source or one past the
// end. When ParserOptions.IgnoreLocations is set, nodes still carry a Location value
// (Go has no cheap "absent struct field"), but the parser leaves it zeroed rather than
// populating it from token positions; that zero value is the "absent" representation
// for this implementation.
type Location struct {
	Start uint32
	End   uint32
}

// NodeKind discriminates the polymorphic AST node variants enumerated in §3. A Node is
// a (Kind, Ref) pair: Ref indexes into the Document slice that NodeKind names, so a
// Node is the arena's analogue of an interface value without the allocation.
type NodeKind int

const (
	NodeKindUnknown NodeKind = iota

	NodeKindOperationDefinition
	NodeKindFragmentDefinition
	NodeKindVariableDefinition
	NodeKindField
	NodeKindFragmentSpread
	NodeKindInlineFragment
	NodeKindArgument
	NodeKindDirective

	NodeKindSchemaDefinition
	NodeKindScalarTypeDefinition
	NodeKindObjectTypeDefinition
	NodeKindInterfaceTypeDefinition
	NodeKindUnionTypeDefinition
	NodeKindEnumTypeDefinition
	NodeKindEnumValueDefinition
	NodeKindInputObjectTypeDefinition
	NodeKindInputValueDefinition
	NodeKindFieldDefinition
	NodeKindDirectiveDefinition
	NodeKindRootOperationTypeDefinition

	NodeKindSchemaExtension
	NodeKindScalarTypeExtension
	NodeKindObjectTypeExtension
	NodeKindInterfaceTypeExtension
	NodeKindUnionTypeExtension
	NodeKindEnumTypeExtension
	NodeKindInputObjectTypeExtension
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindOperationDefinition:
		return "OperationDefinition"
	case NodeKindFragmentDefinition:
		return "FragmentDefinition"
	case NodeKindVariableDefinition:
		return "VariableDefinition"
	case NodeKindField:
		return "Field"
	case NodeKindFragmentSpread:
		return "FragmentSpread"
	case NodeKindInlineFragment:
		return "InlineFragment"
	case NodeKindArgument:
		return "Argument"
	case NodeKindDirective:
		return "Directive"
	case NodeKindSchemaDefinition:
		return "SchemaDefinition"
	case NodeKindScalarTypeDefinition:
		return "ScalarTypeDefinition"
	case NodeKindObjectTypeDefinition:
		return "ObjectTypeDefinition"
	case NodeKindInterfaceTypeDefinition:
		return "InterfaceTypeDefinition"
	case NodeKindUnionTypeDefinition:
		return "UnionTypeDefinition"
	case NodeKindEnumTypeDefinition:
		return "EnumTypeDefinition"
	case NodeKindEnumValueDefinition:
		return "EnumValueDefinition"
	case NodeKindInputObjectTypeDefinition:
		return "InputObjectTypeDefinition"
	case NodeKindInputValueDefinition:
		return "InputValueDefinition"
	case NodeKindFieldDefinition:
		return "FieldDefinition"
	case NodeKindDirectiveDefinition:
		return "DirectiveDefinition"
	case NodeKindRootOperationTypeDefinition:
		return "RootOperationTypeDefinition"
	case NodeKindSchemaExtension:
		return "SchemaExtension"
	case NodeKindScalarTypeExtension:
		return "ScalarTypeExtension"
	case NodeKindObjectTypeExtension:
		return "ObjectTypeExtension"
	case NodeKindInterfaceTypeExtension:
		return "InterfaceTypeExtension"
	case NodeKindUnionTypeExtension:
		return "UnionTypeExtension"
	case NodeKindEnumTypeExtension:
		return "EnumTypeExtension"
	case NodeKindInputObjectTypeExtension:
		return "InputObjectTypeExtension"
	default:
		return "Unknown"
	}
}

// Node is a typed reference into one of a Document's per-kind slices.
type Node struct {
	Kind NodeKind
	Ref  int
}

// TypeKind discriminates the Type variants (§3): NamedType, ListType, NonNullType.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindNamed
	TypeKindList
	TypeKindNonNull
)

// Type is a recursive node: ListType/NonNullType wrap an inner Type by Ref, NamedType
// carries a name. Invariant 2 (§3): a NonNullType's OfType is never itself a NonNullType
// — enforced by the parser (§4.2's Type production), not by this struct.
type Type struct {
	TypeKind TypeKind
	Name     ByteSliceReference
	OfType   int // Ref into Document.Types; meaningless when TypeKind == TypeKindNamed
	Location Location
}

// OperationType discriminates query/mutation/subscription (§4.2).
type OperationType int

const (
	OperationTypeQuery OperationType = iota
	OperationTypeMutation
	OperationTypeSubscription
)

func (o OperationType) String() string {
	switch o {
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "query"
	}
}
