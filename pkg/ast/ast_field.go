package ast

// Alias is the `name:` prefix before a Field's own name (§4.2: "Alias is detected by a
// colon after the first name; both names must themselves be valid names.").
type Alias struct {
	Name      ByteSliceReference
	IsDefined bool
	Location  Location
}

// Field is `Alias? Name Arguments? Directives? SelectionSet?` (§3, §4.2).
type Field struct {
	Alias            Alias
	Name             ByteSliceReference
	HasArguments     bool
	Arguments        ArgumentList
	HasDirectives    bool
	Directives       DirectiveList
	HasSelectionSet  bool
	SelectionSet     int // Ref into Document.SelectionSets
	Location         Location
	Comment          *Comment
}

// Argument is `Name ':' Value` (§3, §4.2).
type Argument struct {
	Name     ByteSliceReference
	Value    Value
	Location Location
}

// Directive is `'@' Name Arguments?` (§3, §4.2).
type Directive struct {
	Name         ByteSliceReference
	HasArguments bool
	Arguments    ArgumentList
	Location     Location
}

// FragmentSpread is `'...' Name Directives?`, where Name is not `on` (§4.2).
type FragmentSpread struct {
	Name          ByteSliceReference
	HasDirectives bool
	Directives    DirectiveList
	Location      Location
	Comment       *Comment
}

// TypeCondition is the `on NamedType` suffix of a FragmentDefinition or InlineFragment.
type TypeCondition struct {
	Type      int // Ref into Document.Types (always TypeKindNamed)
	IsDefined bool
}

// InlineFragment is `'...' ('on' NamedType)? Directives? SelectionSet` (§4.2).
type InlineFragment struct {
	TypeCondition   TypeCondition
	HasDirectives   bool
	Directives      DirectiveList
	SelectionSet    int // Ref into Document.SelectionSets
	Location        Location
	Comment         *Comment
}

// VariableDefinition is `Variable ':' Type DefaultValue? Directives?`.
type VariableDefinition struct {
	VariableName  ByteSliceReference
	Type          int // Ref into Document.Types
	HasDefaultValue bool
	DefaultValue  Value
	HasDirectives bool
	Directives    DirectiveList
	Location      Location
}
