// Package astvisitor implements component I: a pre-order traversal over an ast.Document
// with a context carrying the parent stack, consumed by external printers — never by
// astparser itself (§2). Shaped after the teacher's astvisitor.Walker usage visible in
// v2/pkg/engine/plan/datasource_filter_visitor.go and planner.go
// (walker.RegisterEnterFieldVisitor, walker.RegisterFieldVisitor,
// walker.RegisterEnterDocumentVisitor, walker.Walk(operation, definition, report)).
// This module has no schema-coherence concept, so Walk takes a single Document.
package astvisitor

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
)

// EnterFieldVisitor and its siblings mirror the teacher's per-kind visitor interfaces:
// implement the one(s) you need and register only those.
type (
	EnterDocumentVisitor interface {
		EnterDocument(document *ast.Document)
	}
	LeaveDocumentVisitor interface {
		LeaveDocument(document *ast.Document)
	}
	EnterOperationDefinitionVisitor interface {
		EnterOperationDefinition(ref int)
	}
	LeaveOperationDefinitionVisitor interface {
		LeaveOperationDefinition(ref int)
	}
	EnterFragmentDefinitionVisitor interface {
		EnterFragmentDefinition(ref int)
	}
	LeaveFragmentDefinitionVisitor interface {
		LeaveFragmentDefinition(ref int)
	}
	EnterSelectionSetVisitor interface {
		EnterSelectionSet(ref int)
	}
	LeaveSelectionSetVisitor interface {
		LeaveSelectionSet(ref int)
	}
	EnterFieldVisitor interface {
		EnterField(ref int)
	}
	LeaveFieldVisitor interface {
		LeaveField(ref int)
	}
	EnterFragmentSpreadVisitor interface {
		EnterFragmentSpread(ref int)
	}
	EnterInlineFragmentVisitor interface {
		EnterInlineFragment(ref int)
	}
	LeaveInlineFragmentVisitor interface {
		LeaveInlineFragment(ref int)
	}
	EnterArgumentVisitor interface {
		EnterArgument(ref int)
	}
	EnterDirectiveVisitor interface {
		EnterDirective(ref int)
	}
	EnterVariableDefinitionVisitor interface {
		EnterVariableDefinition(ref int)
	}
	// EnterTypeSystemNodeVisitor is the coarse-grained hook for every type-system
	// definition/extension kind (object, interface, union, enum, scalar, input-object,
	// schema, directive definitions and their extensions): a printer that round-trips
	// SDL generally wants "did we enter a new top-level type-system node", not one
	// interface per variant.
	EnterTypeSystemNodeVisitor interface {
		EnterTypeSystemNode(node ast.Node)
	}
	LeaveTypeSystemNodeVisitor interface {
		LeaveTypeSystemNode(node ast.Node)
	}
)

// FieldVisitor registers both EnterField and LeaveField in one call, as
// RegisterFieldVisitor does on the teacher's Walker.
type FieldVisitor interface {
	EnterFieldVisitor
	LeaveFieldVisitor
}

type SelectionSetVisitor interface {
	EnterSelectionSetVisitor
	LeaveSelectionSetVisitor
}

// MaxDepth guards against pathological ASTs the same way astparser.Parser does —
// a printer driving this walker over attacker-controlled input should set it.
const DefaultMaxDepth = 128

// Walker performs a pre-order, depth-tracked traversal of an ast.Document. Ancestors
// holds the parent-stack context every Register*Visitor callback can inspect during a
// Walk.
type Walker struct {
	MaxDepth  int
	Ancestors []ast.Node

	enterDocument  []EnterDocumentVisitor
	leaveDocument  []LeaveDocumentVisitor
	enterOperation []EnterOperationDefinitionVisitor
	leaveOperation []LeaveOperationDefinitionVisitor
	enterFragment  []EnterFragmentDefinitionVisitor
	leaveFragment  []LeaveFragmentDefinitionVisitor
	enterSelSet    []EnterSelectionSetVisitor
	leaveSelSet    []LeaveSelectionSetVisitor
	enterField     []EnterFieldVisitor
	leaveField     []LeaveFieldVisitor
	enterSpread    []EnterFragmentSpreadVisitor
	enterInline    []EnterInlineFragmentVisitor
	leaveInline    []LeaveInlineFragmentVisitor
	enterArgument  []EnterArgumentVisitor
	enterDirective []EnterDirectiveVisitor
	enterVarDef    []EnterVariableDefinitionVisitor
	enterTypeSys   []EnterTypeSystemNodeVisitor
	leaveTypeSys   []LeaveTypeSystemNodeVisitor

	document *ast.Document
	report   *operationreport.Report
	depth    int
}

// NewWalker returns a Walker bounded to maxDepth levels of nesting, where each
// operation or fragment definition and each selection set counts as one level.
func NewWalker(maxDepth int) Walker {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return Walker{MaxDepth: maxDepth}
}

func (w *Walker) ResetVisitors() {
	*w = NewWalker(w.MaxDepth)
}

func (w *Walker) RegisterEnterDocumentVisitor(v EnterDocumentVisitor) {
	w.enterDocument = append(w.enterDocument, v)
}

func (w *Walker) RegisterLeaveDocumentVisitor(v LeaveDocumentVisitor) {
	w.leaveDocument = append(w.leaveDocument, v)
}

func (w *Walker) RegisterEnterOperationVisitor(v EnterOperationDefinitionVisitor) {
	w.enterOperation = append(w.enterOperation, v)
}

func (w *Walker) RegisterLeaveOperationVisitor(v LeaveOperationDefinitionVisitor) {
	w.leaveOperation = append(w.leaveOperation, v)
}

func (w *Walker) RegisterEnterFragmentDefinitionVisitor(v EnterFragmentDefinitionVisitor) {
	w.enterFragment = append(w.enterFragment, v)
}

func (w *Walker) RegisterSelectionSetVisitor(v SelectionSetVisitor) {
	w.enterSelSet = append(w.enterSelSet, v)
	w.leaveSelSet = append(w.leaveSelSet, v)
}

func (w *Walker) RegisterEnterSelectionSetVisitor(v EnterSelectionSetVisitor) {
	w.enterSelSet = append(w.enterSelSet, v)
}

func (w *Walker) RegisterFieldVisitor(v FieldVisitor) {
	w.enterField = append(w.enterField, v)
	w.leaveField = append(w.leaveField, v)
}

func (w *Walker) RegisterEnterFieldVisitor(v EnterFieldVisitor) {
	w.enterField = append(w.enterField, v)
}

func (w *Walker) RegisterFragmentSpreadVisitor(v EnterFragmentSpreadVisitor) {
	w.enterSpread = append(w.enterSpread, v)
}

func (w *Walker) RegisterInlineFragmentVisitor(v interface {
	EnterInlineFragmentVisitor
	LeaveInlineFragmentVisitor
}) {
	w.enterInline = append(w.enterInline, v)
	w.leaveInline = append(w.leaveInline, v)
}

func (w *Walker) RegisterEnterDirectiveVisitor(v EnterDirectiveVisitor) {
	w.enterDirective = append(w.enterDirective, v)
}

func (w *Walker) RegisterEnterVariableDefinitionVisitor(v EnterVariableDefinitionVisitor) {
	w.enterVarDef = append(w.enterVarDef, v)
}

func (w *Walker) RegisterEnterTypeSystemNodeVisitor(v EnterTypeSystemNodeVisitor) {
	w.enterTypeSys = append(w.enterTypeSys, v)
}

func (w *Walker) RegisterLeaveTypeSystemNodeVisitor(v LeaveTypeSystemNodeVisitor) {
	w.leaveTypeSys = append(w.leaveTypeSys, v)
}

// Walk performs the pre-order traversal described in §2/component I, reporting a
// MaxDepthExceeded external error through report if MaxDepth is exceeded (printers walk
// untrusted ASTs too; the same structural bound applies).
func (w *Walker) Walk(document *ast.Document, report *operationreport.Report) {
	w.document = document
	w.report = report
	w.depth = 0
	w.Ancestors = w.Ancestors[:0]

	for _, v := range w.enterDocument {
		v.EnterDocument(document)
	}

	for _, node := range document.RootNodes {
		w.walkRootNode(node)
		if report.HasErrors() {
			break
		}
	}

	for _, v := range w.leaveDocument {
		v.LeaveDocument(document)
	}
}

func (w *Walker) pushDepth() bool {
	w.depth++
	if w.depth > w.MaxDepth {
		w.report.AddExternalError(operationreport.NewMaxDepthExceededError(w.document.Input.RawBytes, 0))
		return false
	}
	return true
}

func (w *Walker) popDepth() {
	w.depth--
}

func (w *Walker) walkRootNode(node ast.Node) {
	switch node.Kind {
	case ast.NodeKindOperationDefinition:
		w.walkOperationDefinition(node.Ref)
	case ast.NodeKindFragmentDefinition:
		w.walkFragmentDefinition(node.Ref)
	default:
		w.walkTypeSystemNode(node)
	}
}

func (w *Walker) walkTypeSystemNode(node ast.Node) {
	for _, v := range w.enterTypeSys {
		v.EnterTypeSystemNode(node)
	}
	for _, v := range w.leaveTypeSys {
		v.LeaveTypeSystemNode(node)
	}
}

func (w *Walker) walkOperationDefinition(ref int) {
	if !w.pushDepth() {
		return
	}
	defer w.popDepth()

	w.Ancestors = append(w.Ancestors, ast.Node{Kind: ast.NodeKindOperationDefinition, Ref: ref})
	defer w.popAncestor()

	for _, v := range w.enterOperation {
		v.EnterOperationDefinition(ref)
	}

	op := w.document.OperationDefinitions[ref]
	if op.HasVariableDefinitions {
		for _, vdRef := range op.VariableDefinitions.Refs {
			for _, v := range w.enterVarDef {
				v.EnterVariableDefinition(vdRef)
			}
		}
	}
	if op.HasDirectives {
		w.walkDirectives(op.Directives)
	}
	w.walkSelectionSet(op.SelectionSet)

	for _, v := range w.leaveOperation {
		v.LeaveOperationDefinition(ref)
	}
}

func (w *Walker) walkFragmentDefinition(ref int) {
	if !w.pushDepth() {
		return
	}
	defer w.popDepth()

	w.Ancestors = append(w.Ancestors, ast.Node{Kind: ast.NodeKindFragmentDefinition, Ref: ref})
	defer w.popAncestor()

	for _, v := range w.enterFragment {
		v.EnterFragmentDefinition(ref)
	}

	fd := w.document.FragmentDefinitions[ref]
	if fd.HasDirectives {
		w.walkDirectives(fd.Directives)
	}
	w.walkSelectionSet(fd.SelectionSet)

	for _, v := range w.leaveFragment {
		v.LeaveFragmentDefinition(ref)
	}
}

func (w *Walker) walkSelectionSet(ref int) {
	if !w.pushDepth() {
		return
	}
	defer w.popDepth()

	w.Ancestors = append(w.Ancestors, ast.Node{Kind: 0, Ref: ref})
	defer w.popAncestor()

	for _, v := range w.enterSelSet {
		v.EnterSelectionSet(ref)
	}

	set := w.document.SelectionSets[ref]
	for _, sel := range set.SelectionRefs {
		switch sel.Kind {
		case ast.NodeKindField:
			w.walkField(sel.Ref)
		case ast.NodeKindFragmentSpread:
			w.walkFragmentSpread(sel.Ref)
		case ast.NodeKindInlineFragment:
			w.walkInlineFragment(sel.Ref)
		}
	}

	for _, v := range w.leaveSelSet {
		v.LeaveSelectionSet(ref)
	}
}

func (w *Walker) walkField(ref int) {
	w.Ancestors = append(w.Ancestors, ast.Node{Kind: ast.NodeKindField, Ref: ref})
	defer w.popAncestor()

	for _, v := range w.enterField {
		v.EnterField(ref)
	}

	field := w.document.Fields[ref]
	if field.HasArguments {
		w.walkArguments(field.Arguments)
	}
	if field.HasDirectives {
		w.walkDirectives(field.Directives)
	}
	if field.HasSelectionSet {
		w.walkSelectionSet(field.SelectionSet)
	}

	for _, v := range w.leaveField {
		v.LeaveField(ref)
	}
}

func (w *Walker) walkFragmentSpread(ref int) {
	w.Ancestors = append(w.Ancestors, ast.Node{Kind: ast.NodeKindFragmentSpread, Ref: ref})
	defer w.popAncestor()

	for _, v := range w.enterSpread {
		v.EnterFragmentSpread(ref)
	}
}

func (w *Walker) walkInlineFragment(ref int) {
	w.Ancestors = append(w.Ancestors, ast.Node{Kind: ast.NodeKindInlineFragment, Ref: ref})
	defer w.popAncestor()

	for _, v := range w.enterInline {
		v.EnterInlineFragment(ref)
	}

	inline := w.document.InlineFragments[ref]
	if inline.HasDirectives {
		w.walkDirectives(inline.Directives)
	}
	w.walkSelectionSet(inline.SelectionSet)

	for _, v := range w.leaveInline {
		v.LeaveInlineFragment(ref)
	}
}

func (w *Walker) walkArguments(list ast.ArgumentList) {
	for _, ref := range list.Refs {
		for _, v := range w.enterArgument {
			v.EnterArgument(ref)
		}
	}
}

func (w *Walker) walkDirectives(list ast.DirectiveList) {
	for _, ref := range list.Refs {
		for _, v := range w.enterDirective {
			v.EnterDirective(ref)
		}
		dir := w.document.Directives[ref]
		if dir.HasArguments {
			w.walkArguments(dir.Arguments)
		}
	}
}

func (w *Walker) popAncestor() {
	w.Ancestors = w.Ancestors[:len(w.Ancestors)-1]
}
