package ast

// Type-system extensions mirror their base definition's shape minus Description (§4.5:
// "descriptions are not permitted on ... extensions"). Per §4.2's extension rule, the
// parser rejects an extension where none of its optional clauses (directives,
// fields/values/types, interfaces) are present — that's a parse-time check, not
// something the shape itself can enforce.

// SchemaExtension is `extend schema Directives? ('{' RootOperationTypeDefinition+ '}')?`.
type SchemaExtension struct {
	HasDirectives                bool
	Directives                   DirectiveList
	HasRootOperationTypeDefinitions bool
	RootOperationTypeDefinitions []int
	Location                     Location
}

// ScalarTypeExtension is `extend scalar Name Directives`.
type ScalarTypeExtension struct {
	Name          ByteSliceReference
	HasDirectives bool
	Directives    DirectiveList
	Location      Location
}

// ObjectTypeExtension is
// `extend type Name ImplementsInterfaces? Directives? FieldsDefinition?`.
type ObjectTypeExtension struct {
	Name                    ByteSliceReference
	HasImplementsInterfaces bool
	ImplementsInterfaces    ImplementsInterfacesList
	HasDirectives           bool
	Directives              DirectiveList
	HasFieldDefinitions     bool
	FieldsDefinition        FieldDefinitionList
	Location                Location
}

// InterfaceTypeExtension is
// `extend interface Name ImplementsInterfaces? Directives? FieldsDefinition?`.
type InterfaceTypeExtension struct {
	Name                    ByteSliceReference
	HasImplementsInterfaces bool
	ImplementsInterfaces    ImplementsInterfacesList
	HasDirectives           bool
	Directives              DirectiveList
	HasFieldDefinitions     bool
	FieldsDefinition        FieldDefinitionList
	Location                Location
}

// UnionTypeExtension is `extend union Name Directives? UnionMemberTypes?`.
type UnionTypeExtension struct {
	Name                ByteSliceReference
	HasDirectives       bool
	Directives          DirectiveList
	HasUnionMemberTypes bool
	UnionMemberTypes    UnionMemberTypeList
	Location            Location
}

// EnumTypeExtension is `extend enum Name Directives? EnumValuesDefinition?`.
type EnumTypeExtension struct {
	Name                    ByteSliceReference
	HasDirectives           bool
	Directives              DirectiveList
	HasEnumValuesDefinition bool
	EnumValuesDefinition    EnumValueDefinitionList
	Location                Location
}

// InputObjectTypeExtension is `extend input Name Directives? InputFieldsDefinition?`.
type InputObjectTypeExtension struct {
	Name                     ByteSliceReference
	HasDirectives            bool
	Directives               DirectiveList
	HasInputFieldsDefinition bool
	InputFieldsDefinition    InputValueDefinitionList
	Location                 Location
}
