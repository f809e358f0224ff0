package ast

// Document is the arena that owns every node produced by a single parse (§3's
// ownership rule: "The Document exclusively owns all of its AST nodes — a tree, not a
// DAG"). RootNodes holds, in source order, only top-level definition variants
// (executable definitions, type-system definitions, or type-system extensions —
// invariant 3). Every other cross-reference in the tree is an int Ref into one of the
// per-kind slices below.
type Document struct {
	Input Input

	RootNodes []Node

	OperationDefinitions []OperationDefinition
	FragmentDefinitions  []FragmentDefinition
	VariableDefinitions  []VariableDefinition
	Fields               []Field
	FragmentSpreads      []FragmentSpread
	InlineFragments      []InlineFragment
	SelectionSets        []SelectionSet
	Arguments            []Argument
	Directives           []Directive
	Types                []Type

	Values        []Value
	IntValues     []IntValue
	FloatValues   []FloatValue
	StringValues  []StringValue
	EnumValues    []EnumValue
	VariableValues []VariableValue
	ListValues    []ListValue
	ObjectValues  []ObjectValue
	ObjectFields  []ObjectField

	SchemaDefinitions            []SchemaDefinition
	RootOperationTypeDefinitions []RootOperationTypeDefinition
	ScalarTypeDefinitions        []ScalarTypeDefinition
	ObjectTypeDefinitions        []ObjectTypeDefinition
	InterfaceTypeDefinitions     []InterfaceTypeDefinition
	UnionTypeDefinitions         []UnionTypeDefinition
	EnumTypeDefinitions          []EnumTypeDefinition
	EnumValueDefinitions         []EnumValueDefinition
	InputObjectTypeDefinitions   []InputObjectTypeDefinition
	InputValueDefinitions        []InputValueDefinition
	FieldDefinitions             []FieldDefinition
	DirectiveDefinitions         []DirectiveDefinition

	SchemaExtensions            []SchemaExtension
	ScalarTypeExtensions        []ScalarTypeExtension
	ObjectTypeExtensions        []ObjectTypeExtension
	InterfaceTypeExtensions     []InterfaceTypeExtension
	UnionTypeExtensions         []UnionTypeExtension
	EnumTypeExtensions          []EnumTypeExtension
	InputObjectTypeExtensions   []InputObjectTypeExtension

	UnattachedComments []Comment

	index index
}

// NewDocument returns an empty Document ready for astparser.Parser.Parse.
func NewDocument() *Document {
	return &Document{}
}

// Reset clears a Document for reuse across repeated parses, avoiding a fresh allocation
// of every per-kind slice on each call — the same reuse discipline
// operationreport.Report.Reset offers for errors.
func (d *Document) Reset() {
	*d = Document{
		OperationDefinitions:         d.OperationDefinitions[:0],
		FragmentDefinitions:          d.FragmentDefinitions[:0],
		VariableDefinitions:          d.VariableDefinitions[:0],
		Fields:                       d.Fields[:0],
		FragmentSpreads:              d.FragmentSpreads[:0],
		InlineFragments:              d.InlineFragments[:0],
		SelectionSets:                d.SelectionSets[:0],
		Arguments:                    d.Arguments[:0],
		Directives:                   d.Directives[:0],
		Types:                        d.Types[:0],
		Values:                       d.Values[:0],
		IntValues:                    d.IntValues[:0],
		FloatValues:                  d.FloatValues[:0],
		StringValues:                 d.StringValues[:0],
		EnumValues:                   d.EnumValues[:0],
		VariableValues:               d.VariableValues[:0],
		ListValues:                   d.ListValues[:0],
		ObjectValues:                 d.ObjectValues[:0],
		ObjectFields:                 d.ObjectFields[:0],
		SchemaDefinitions:            d.SchemaDefinitions[:0],
		RootOperationTypeDefinitions: d.RootOperationTypeDefinitions[:0],
		ScalarTypeDefinitions:        d.ScalarTypeDefinitions[:0],
		ObjectTypeDefinitions:        d.ObjectTypeDefinitions[:0],
		InterfaceTypeDefinitions:     d.InterfaceTypeDefinitions[:0],
		UnionTypeDefinitions:         d.UnionTypeDefinitions[:0],
		EnumTypeDefinitions:          d.EnumTypeDefinitions[:0],
		EnumValueDefinitions:         d.EnumValueDefinitions[:0],
		InputObjectTypeDefinitions:   d.InputObjectTypeDefinitions[:0],
		InputValueDefinitions:        d.InputValueDefinitions[:0],
		FieldDefinitions:             d.FieldDefinitions[:0],
		DirectiveDefinitions:         d.DirectiveDefinitions[:0],
		SchemaExtensions:             d.SchemaExtensions[:0],
		ScalarTypeExtensions:         d.ScalarTypeExtensions[:0],
		ObjectTypeExtensions:         d.ObjectTypeExtensions[:0],
		InterfaceTypeExtensions:      d.InterfaceTypeExtensions[:0],
		UnionTypeExtensions:          d.UnionTypeExtensions[:0],
		EnumTypeExtensions:           d.EnumTypeExtensions[:0],
		InputObjectTypeExtensions:    d.InputObjectTypeExtensions[:0],
		RootNodes:                    d.RootNodes[:0],
		UnattachedComments:           d.UnattachedComments[:0],
	}
}

// --- builder methods used by astparser (and by astbuiltin for self-hosted merges) ---

func (d *Document) AddRootNode(node Node) {
	d.RootNodes = append(d.RootNodes, node)
	d.index.invalidate()
}

func (d *Document) AddNamedType(ref ByteSliceReference, loc Location) int {
	d.Types = append(d.Types, Type{TypeKind: TypeKindNamed, Name: ref, Location: loc})
	return len(d.Types) - 1
}

func (d *Document) AddListType(ofType int, loc Location) int {
	d.Types = append(d.Types, Type{TypeKind: TypeKindList, OfType: ofType, Location: loc})
	return len(d.Types) - 1
}

func (d *Document) AddNonNullType(ofType int, loc Location) int {
	d.Types = append(d.Types, Type{TypeKind: TypeKindNonNull, OfType: ofType, Location: loc})
	return len(d.Types) - 1
}

func (d *Document) AddSelectionSet(set SelectionSet) int {
	d.SelectionSets = append(d.SelectionSets, set)
	return len(d.SelectionSets) - 1
}

func (d *Document) AddField(f Field) int {
	d.Fields = append(d.Fields, f)
	return len(d.Fields) - 1
}

func (d *Document) AddFragmentSpread(f FragmentSpread) int {
	d.FragmentSpreads = append(d.FragmentSpreads, f)
	return len(d.FragmentSpreads) - 1
}

func (d *Document) AddInlineFragment(f InlineFragment) int {
	d.InlineFragments = append(d.InlineFragments, f)
	return len(d.InlineFragments) - 1
}

func (d *Document) AddArgument(a Argument) int {
	d.Arguments = append(d.Arguments, a)
	return len(d.Arguments) - 1
}

func (d *Document) AddDirective(dir Directive) int {
	d.Directives = append(d.Directives, dir)
	return len(d.Directives) - 1
}

func (d *Document) AddVariableDefinition(v VariableDefinition) int {
	d.VariableDefinitions = append(d.VariableDefinitions, v)
	return len(d.VariableDefinitions) - 1
}

func (d *Document) AddOperationDefinition(o OperationDefinition) int {
	d.OperationDefinitions = append(d.OperationDefinitions, o)
	return len(d.OperationDefinitions) - 1
}

func (d *Document) AddFragmentDefinition(f FragmentDefinition) int {
	d.FragmentDefinitions = append(d.FragmentDefinitions, f)
	return len(d.FragmentDefinitions) - 1
}

func (d *Document) AddIntValue(v IntValue) int {
	d.IntValues = append(d.IntValues, v)
	return len(d.IntValues) - 1
}

func (d *Document) AddFloatValue(v FloatValue) int {
	d.FloatValues = append(d.FloatValues, v)
	return len(d.FloatValues) - 1
}

func (d *Document) AddStringValue(v StringValue) int {
	d.StringValues = append(d.StringValues, v)
	return len(d.StringValues) - 1
}

func (d *Document) AddEnumValue(v EnumValue) int {
	d.EnumValues = append(d.EnumValues, v)
	return len(d.EnumValues) - 1
}

func (d *Document) AddVariableValue(v VariableValue) int {
	d.VariableValues = append(d.VariableValues, v)
	return len(d.VariableValues) - 1
}

func (d *Document) AddListValue(v ListValue) int {
	d.ListValues = append(d.ListValues, v)
	return len(d.ListValues) - 1
}

func (d *Document) AddObjectValue(v ObjectValue) int {
	d.ObjectValues = append(d.ObjectValues, v)
	return len(d.ObjectValues) - 1
}

func (d *Document) AddObjectField(v ObjectField) int {
	d.ObjectFields = append(d.ObjectFields, v)
	return len(d.ObjectFields) - 1
}

func (d *Document) AddSchemaDefinition(s SchemaDefinition) int {
	d.SchemaDefinitions = append(d.SchemaDefinitions, s)
	return len(d.SchemaDefinitions) - 1
}

func (d *Document) AddRootOperationTypeDefinition(r RootOperationTypeDefinition) int {
	d.RootOperationTypeDefinitions = append(d.RootOperationTypeDefinitions, r)
	return len(d.RootOperationTypeDefinitions) - 1
}

func (d *Document) AddScalarTypeDefinition(s ScalarTypeDefinition) int {
	d.ScalarTypeDefinitions = append(d.ScalarTypeDefinitions, s)
	return len(d.ScalarTypeDefinitions) - 1
}

func (d *Document) AddObjectTypeDefinition(o ObjectTypeDefinition) int {
	d.ObjectTypeDefinitions = append(d.ObjectTypeDefinitions, o)
	return len(d.ObjectTypeDefinitions) - 1
}

func (d *Document) AddInterfaceTypeDefinition(i InterfaceTypeDefinition) int {
	d.InterfaceTypeDefinitions = append(d.InterfaceTypeDefinitions, i)
	return len(d.InterfaceTypeDefinitions) - 1
}

func (d *Document) AddUnionTypeDefinition(u UnionTypeDefinition) int {
	d.UnionTypeDefinitions = append(d.UnionTypeDefinitions, u)
	return len(d.UnionTypeDefinitions) - 1
}

func (d *Document) AddEnumTypeDefinition(e EnumTypeDefinition) int {
	d.EnumTypeDefinitions = append(d.EnumTypeDefinitions, e)
	return len(d.EnumTypeDefinitions) - 1
}

func (d *Document) AddEnumValueDefinition(e EnumValueDefinition) int {
	d.EnumValueDefinitions = append(d.EnumValueDefinitions, e)
	return len(d.EnumValueDefinitions) - 1
}

func (d *Document) AddInputObjectTypeDefinition(i InputObjectTypeDefinition) int {
	d.InputObjectTypeDefinitions = append(d.InputObjectTypeDefinitions, i)
	return len(d.InputObjectTypeDefinitions) - 1
}

func (d *Document) AddInputValueDefinition(i InputValueDefinition) int {
	d.InputValueDefinitions = append(d.InputValueDefinitions, i)
	return len(d.InputValueDefinitions) - 1
}

func (d *Document) AddFieldDefinition(f FieldDefinition) int {
	d.FieldDefinitions = append(d.FieldDefinitions, f)
	return len(d.FieldDefinitions) - 1
}

func (d *Document) AddDirectiveDefinition(dd DirectiveDefinition) int {
	d.DirectiveDefinitions = append(d.DirectiveDefinitions, dd)
	return len(d.DirectiveDefinitions) - 1
}

func (d *Document) AddSchemaExtension(s SchemaExtension) int {
	d.SchemaExtensions = append(d.SchemaExtensions, s)
	return len(d.SchemaExtensions) - 1
}

func (d *Document) AddScalarTypeExtension(s ScalarTypeExtension) int {
	d.ScalarTypeExtensions = append(d.ScalarTypeExtensions, s)
	return len(d.ScalarTypeExtensions) - 1
}

func (d *Document) AddObjectTypeExtension(o ObjectTypeExtension) int {
	d.ObjectTypeExtensions = append(d.ObjectTypeExtensions, o)
	return len(d.ObjectTypeExtensions) - 1
}

func (d *Document) AddInterfaceTypeExtension(i InterfaceTypeExtension) int {
	d.InterfaceTypeExtensions = append(d.InterfaceTypeExtensions, i)
	return len(d.InterfaceTypeExtensions) - 1
}

func (d *Document) AddUnionTypeExtension(u UnionTypeExtension) int {
	d.UnionTypeExtensions = append(d.UnionTypeExtensions, u)
	return len(d.UnionTypeExtensions) - 1
}

func (d *Document) AddEnumTypeExtension(e EnumTypeExtension) int {
	d.EnumTypeExtensions = append(d.EnumTypeExtensions, e)
	return len(d.EnumTypeExtensions) - 1
}

func (d *Document) AddInputObjectTypeExtension(i InputObjectTypeExtension) int {
	d.InputObjectTypeExtensions = append(d.InputObjectTypeExtensions, i)
	return len(d.InputObjectTypeExtensions) - 1
}

// --- name accessors (used by Index and by tests asserting AST shape) ---

func (d *Document) NamedTypeNameBytes(typeRef int) []byte {
	t := d.Types[typeRef]
	for t.TypeKind != TypeKindNamed {
		t = d.Types[t.OfType]
	}
	return d.Input.ByteSlice(t.Name)
}

func (d *Document) NamedTypeNameString(typeRef int) string {
	return string(d.NamedTypeNameBytes(typeRef))
}

func (d *Document) FieldNameBytes(ref int) []byte {
	return d.Input.ByteSlice(d.Fields[ref].Name)
}

func (d *Document) FieldNameString(ref int) string {
	return string(d.FieldNameBytes(ref))
}

func (d *Document) FieldAliasOrNameString(ref int) string {
	f := d.Fields[ref]
	if f.Alias.IsDefined {
		return d.Input.ByteSliceString(f.Alias.Name)
	}
	return d.Input.ByteSliceString(f.Name)
}

func (d *Document) ArgumentNameString(ref int) string {
	return d.Input.ByteSliceString(d.Arguments[ref].Name)
}

func (d *Document) DirectiveNameString(ref int) string {
	return d.Input.ByteSliceString(d.Directives[ref].Name)
}

func (d *Document) ObjectTypeDefinitionNameBytes(ref int) []byte {
	return d.Input.ByteSlice(d.ObjectTypeDefinitions[ref].Name)
}

func (d *Document) ObjectTypeDefinitionNameString(ref int) string {
	return string(d.ObjectTypeDefinitionNameBytes(ref))
}

// ObjectTypeDefinitionHasField reports whether the object type definition at ref
// already declares a field with the given name.
func (d *Document) ObjectTypeDefinitionHasField(ref int, name []byte) bool {
	if !d.ObjectTypeDefinitions[ref].HasFieldDefinitions {
		return false
	}
	for _, fieldRef := range d.ObjectTypeDefinitions[ref].FieldsDefinition.Refs {
		if bytesEqual(d.Input.ByteSlice(d.FieldDefinitions[fieldRef].Name), name) {
			return true
		}
	}
	return false
}
