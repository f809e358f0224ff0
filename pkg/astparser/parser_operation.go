package astparser

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// parseOperationDefinition implements the two shapes of §4.2: the anonymous shorthand
// (bare SelectionSet, always OperationTypeQuery) and the explicit
// `OperationType Name? VariablesDefinition? Directives? SelectionSet` form.
func (p *Parser) parseOperationDefinition(comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start

	if p.peek(token.LBRACE) {
		setRef, ok := p.parseSelectionSet()
		if !ok {
			return ast.Node{}, false
		}
		op := ast.OperationDefinition{
			OperationType: ast.OperationTypeQuery,
			SelectionSet:  setRef,
			Location:      p.loc(start),
			Comment:       comment,
		}
		return ast.Node{Kind: ast.NodeKindOperationDefinition, Ref: p.document.AddOperationDefinition(op)}, true
	}

	opType, ok := p.parseOperationType()
	if !ok {
		return ast.Node{}, false
	}

	op := ast.OperationDefinition{OperationType: opType, Comment: comment}

	p.parseComment()
	if p.peek(token.NAME) {
		op.Name = ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		op.HasName = true
		if !p.advance() {
			return ast.Node{}, false
		}
	}

	p.parseComment()
	if p.peek(token.LPAREN) {
		vars, ok := p.parseVariableDefinitions()
		if !ok {
			return ast.Node{}, false
		}
		op.HasVariableDefinitions = true
		op.VariableDefinitions = vars
	}

	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		op.HasDirectives = true
		op.Directives = dirs
	}

	p.parseComment()
	setRef, ok := p.parseSelectionSet()
	if !ok {
		return ast.Node{}, false
	}
	op.SelectionSet = setRef
	op.Location = p.loc(start)

	return ast.Node{Kind: ast.NodeKindOperationDefinition, Ref: p.document.AddOperationDefinition(op)}, true
}

func (p *Parser) parseOperationType() (ast.OperationType, bool) {
	switch {
	case p.peekKeyword(token.KeywordQuery):
		if !p.advance() {
			return 0, false
		}
		return ast.OperationTypeQuery, true
	case p.peekKeyword(token.KeywordMutation):
		if !p.advance() {
			return 0, false
		}
		return ast.OperationTypeMutation, true
	case p.peekKeyword(token.KeywordSubscription):
		if !p.advance() {
			return 0, false
		}
		return ast.OperationTypeSubscription, true
	}
	p.failf(p.currentToken.Start, "Expected one of %q, %q, %q, found %s.",
		token.KeywordQuery, token.KeywordMutation, token.KeywordSubscription, p.describeCurrent())
	return 0, false
}

// parseFragmentDefinition implements `fragment FragmentName TypeCondition Directives?
// SelectionSet`. Invariant 5 (§3) — the fragment's Name is never `on` — is enforced by
// an explicit check: a FragmentName token spelled "on" is rejected with a syntax error
// before the TypeCondition is parsed.
func (p *Parser) parseFragmentDefinition(comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordFragment) {
		return ast.Node{}, false
	}

	p.parseComment()
	if !p.peek(token.NAME) || p.peekKeyword(token.KeywordOn) {
		p.failf(p.currentToken.Start, "Expected fragment name, found %s.", p.describeCurrent())
		return ast.Node{}, false
	}
	name := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	if !p.advance() {
		return ast.Node{}, false
	}

	if !p.expectKeyword(token.KeywordOn) {
		return ast.Node{}, false
	}
	p.parseComment()
	if !p.peek(token.NAME) {
		p.failf(p.currentToken.Start, "Expected type condition after 'on', found %s.", p.describeCurrent())
		return ast.Node{}, false
	}
	typeNameRef := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	typeStart := p.currentToken.Start
	if !p.advance() {
		return ast.Node{}, false
	}
	typeRef := p.document.AddNamedType(typeNameRef, p.loc(typeStart))

	fd := ast.FragmentDefinition{
		Name:          name,
		TypeCondition: ast.TypeCondition{Type: typeRef, IsDefined: true},
		Comment:       comment,
	}

	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		fd.HasDirectives = true
		fd.Directives = dirs
	}

	p.parseComment()
	setRef, ok := p.parseSelectionSet()
	if !ok {
		return ast.Node{}, false
	}
	fd.SelectionSet = setRef
	fd.Location = p.loc(start)

	return ast.Node{Kind: ast.NodeKindFragmentDefinition, Ref: p.document.AddFragmentDefinition(fd)}, true
}
