package ast

// FieldDefinitionList, InputValueDefinitionList, EnumValueDefinitionList,
// UnionMemberTypeList, and ImplementsInterfacesList are the container node types named
// in §3 (FieldsDefinition, ArgumentsDefinition/InputFieldsDefinition,
// EnumValuesDefinition, UnionMemberTypes, ImplementsInterfaces), each just a Refs slice
// plus its own span so a printer can still ask "where did this container start".
type FieldDefinitionList struct {
	Refs     []int
	Location Location
}

type InputValueDefinitionList struct {
	Refs     []int
	Location Location
}

type EnumValueDefinitionList struct {
	Refs     []int
	Location Location
}

// UnionMemberTypeList holds Type Refs (always TypeKindNamed) for `union U = A | B`.
// §4.2 allows an optional leading '|'.
type UnionMemberTypeList struct {
	Refs     []int
	Location Location
}

// ImplementsInterfacesList holds Type Refs (always TypeKindNamed) for
// `type T implements A & B`. §4.2 allows an optional leading '&'.
type ImplementsInterfacesList struct {
	Refs     []int
	Location Location
}

// DirectiveLocation enumerates the fixed vocabulary accepted by a DirectiveLocations
// production (§4.2: pipe-separated, optional leading '|').
type DirectiveLocation int

const (
	DirectiveLocationUnknown DirectiveLocation = iota
	// Executable locations.
	DirectiveLocationQuery
	DirectiveLocationMutation
	DirectiveLocationSubscription
	DirectiveLocationField
	DirectiveLocationFragmentDefinition
	DirectiveLocationFragmentSpread
	DirectiveLocationInlineFragment
	DirectiveLocationVariableDefinition
	// Type-system locations.
	DirectiveLocationSchema
	DirectiveLocationScalar
	DirectiveLocationObject
	DirectiveLocationFieldDefinition
	DirectiveLocationArgumentDefinition
	DirectiveLocationInterface
	DirectiveLocationUnion
	DirectiveLocationEnum
	DirectiveLocationEnumValue
	DirectiveLocationInputObject
	DirectiveLocationInputFieldDefinition
)

var directiveLocationNames = map[string]DirectiveLocation{
	"QUERY":                  DirectiveLocationQuery,
	"MUTATION":               DirectiveLocationMutation,
	"SUBSCRIPTION":           DirectiveLocationSubscription,
	"FIELD":                  DirectiveLocationField,
	"FRAGMENT_DEFINITION":    DirectiveLocationFragmentDefinition,
	"FRAGMENT_SPREAD":        DirectiveLocationFragmentSpread,
	"INLINE_FRAGMENT":        DirectiveLocationInlineFragment,
	"VARIABLE_DEFINITION":    DirectiveLocationVariableDefinition,
	"SCHEMA":                 DirectiveLocationSchema,
	"SCALAR":                 DirectiveLocationScalar,
	"OBJECT":                 DirectiveLocationObject,
	"FIELD_DEFINITION":       DirectiveLocationFieldDefinition,
	"ARGUMENT_DEFINITION":    DirectiveLocationArgumentDefinition,
	"INTERFACE":              DirectiveLocationInterface,
	"UNION":                  DirectiveLocationUnion,
	"ENUM":                   DirectiveLocationEnum,
	"ENUM_VALUE":             DirectiveLocationEnumValue,
	"INPUT_OBJECT":           DirectiveLocationInputObject,
	"INPUT_FIELD_DEFINITION": DirectiveLocationInputFieldDefinition,
}

// DirectiveLocationFromName looks up a DirectiveLocation by its keyword spelling.
func DirectiveLocationFromName(name string) (DirectiveLocation, bool) {
	loc, ok := directiveLocationNames[name]
	return loc, ok
}

// SchemaDefinition is
// `Description? schema Directives? '{' RootOperationTypeDefinition+ '}'`.
type SchemaDefinition struct {
	Description                 Description
	HasDirectives               bool
	Directives                  DirectiveList
	RootOperationTypeDefinitions []int // Refs into Document.RootOperationTypeDefinitions
	Location                    Location
	Comment                     *Comment
}

// RootOperationTypeDefinition is `OperationType ':' NamedType`.
type RootOperationTypeDefinition struct {
	OperationType OperationType
	NamedType     int // Ref into Document.Types
	Location      Location
}

// ScalarTypeDefinition is `Description? 'scalar' Name Directives?`.
type ScalarTypeDefinition struct {
	Description   Description
	Name          ByteSliceReference
	HasDirectives bool
	Directives    DirectiveList
	Location      Location
}

// ObjectTypeDefinition is
// `Description? 'type' Name ImplementsInterfaces? Directives? FieldsDefinition?`.
type ObjectTypeDefinition struct {
	Description          Description
	Name                 ByteSliceReference
	HasImplementsInterfaces bool
	ImplementsInterfaces ImplementsInterfacesList
	HasDirectives        bool
	Directives           DirectiveList
	HasFieldDefinitions  bool
	FieldsDefinition     FieldDefinitionList
	Location             Location
}

// InterfaceTypeDefinition is
// `Description? 'interface' Name ImplementsInterfaces? Directives? FieldsDefinition?`.
type InterfaceTypeDefinition struct {
	Description          Description
	Name                 ByteSliceReference
	HasImplementsInterfaces bool
	ImplementsInterfaces ImplementsInterfacesList
	HasDirectives        bool
	Directives           DirectiveList
	HasFieldDefinitions  bool
	FieldsDefinition     FieldDefinitionList
	Location             Location
}

// UnionTypeDefinition is `Description? 'union' Name Directives? UnionMemberTypes?`.
type UnionTypeDefinition struct {
	Description     Description
	Name            ByteSliceReference
	HasDirectives   bool
	Directives      DirectiveList
	HasUnionMemberTypes bool
	UnionMemberTypes UnionMemberTypeList
	Location        Location
}

// EnumTypeDefinition is `Description? 'enum' Name Directives? EnumValuesDefinition?`.
type EnumTypeDefinition struct {
	Description         Description
	Name                ByteSliceReference
	HasDirectives       bool
	Directives          DirectiveList
	HasEnumValuesDefinition bool
	EnumValuesDefinition EnumValueDefinitionList
	Location            Location
}

// EnumValueDefinition is `Description? EnumValue Directives?`.
type EnumValueDefinition struct {
	Description   Description
	EnumValue     ByteSliceReference
	HasDirectives bool
	Directives    DirectiveList
	Location      Location
}

// InputObjectTypeDefinition is
// `Description? 'input' Name Directives? InputFieldsDefinition?`.
type InputObjectTypeDefinition struct {
	Description             Description
	Name                    ByteSliceReference
	HasDirectives           bool
	Directives              DirectiveList
	HasInputFieldsDefinition bool
	InputFieldsDefinition   InputValueDefinitionList
	Location                Location
}

// InputValueDefinition is `Description? Name ':' Type DefaultValue? Directives?`. Used
// both for an InputObjectTypeDefinition's fields and a FieldDefinition's arguments
// (ArgumentsDefinition is, per §3, a list of InputValueDefinition).
type InputValueDefinition struct {
	Description     Description
	Name            ByteSliceReference
	Type            int // Ref into Document.Types
	HasDefaultValue bool
	DefaultValue    Value
	HasDirectives   bool
	Directives      DirectiveList
	Location        Location
}

// FieldDefinition is `Description? Name ArgumentsDefinition? ':' Type Directives?`.
type FieldDefinition struct {
	Description             Description
	Name                    ByteSliceReference
	HasArgumentsDefinitions bool
	ArgumentsDefinition     InputValueDefinitionList
	Type                    int // Ref into Document.Types
	HasDirectives           bool
	Directives              DirectiveList
	Location                Location
}

// DirectiveDefinition is
// `Description? 'directive' '@' Name ArgumentsDefinition? 'repeatable'? 'on' DirectiveLocations`.
type DirectiveDefinition struct {
	Description             Description
	Name                    ByteSliceReference
	HasArgumentsDefinitions bool
	ArgumentsDefinition     InputValueDefinitionList
	Repeatable              bool
	DirectiveLocations      []DirectiveLocation
	Location                Location
}
