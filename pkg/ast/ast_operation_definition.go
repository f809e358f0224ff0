package ast

// OperationDefinition is either the anonymous shorthand `SelectionSet` or
// `OperationType Name? VariablesDefinition? Directives? SelectionSet` (§4.2). Invariant
// 4 (§3): SelectionSet is always populated and non-empty — the parser never constructs
// an OperationDefinition without one.
type OperationDefinition struct {
	OperationType           OperationType
	Name                    ByteSliceReference
	HasName                 bool
	HasVariableDefinitions  bool
	VariableDefinitions     VariableDefinitionList
	HasDirectives           bool
	Directives              DirectiveList
	SelectionSet            int // Ref into Document.SelectionSets
	Location                Location
	Comment                 *Comment
}

// FragmentDefinition is `fragment Name TypeCondition Directives? SelectionSet`.
// Invariant 5 (§3): Name is never the keyword `on` — enforced by the parser.
type FragmentDefinition struct {
	Name          ByteSliceReference
	TypeCondition TypeCondition
	HasDirectives bool
	Directives    DirectiveList
	SelectionSet  int // Ref into Document.SelectionSets
	Location      Location
	Comment       *Comment
}
