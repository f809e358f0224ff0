package astparser

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// parseSelectionSet implements `SelectionSet := '{' Selection+ '}'` (§4.2).
func (p *Parser) parseSelectionSet() (int, bool) {
	if !p.enterNode() {
		return -1, false
	}
	defer p.leaveNode()

	p.parseComment()
	comment := p.getComment()
	start := p.currentToken.Start
	if !p.expect(token.LBRACE) {
		return -1, false
	}

	var refs []ast.Node
	p.parseComment()
	for !p.peek(token.RBRACE) {
		if p.peek(token.EOF) {
			p.failf(p.currentToken.Start, "Unexpected <EOF>, expected a selection or '}'.")
			return -1, false
		}
		node, ok := p.parseSelection()
		if !ok {
			return -1, false
		}
		refs = append(refs, node)
		p.parseComment()
	}
	if len(refs) == 0 {
		p.failf(start, "A selection set must contain at least one selection.")
		return -1, false
	}
	if !p.expect(token.RBRACE) {
		return -1, false
	}

	ref := p.document.AddSelectionSet(ast.SelectionSet{SelectionRefs: refs, Location: p.loc(start), Comment: comment})
	return ref, true
}

// parseSelection implements `Selection := Field | FragmentSpread | InlineFragment`.
func (p *Parser) parseSelection() (ast.Node, bool) {
	p.parseComment()
	if p.peek(token.SPREAD) {
		return p.parseFragmentSpreadOrInlineFragment()
	}
	ref, ok := p.parseField()
	if !ok {
		return ast.Node{}, false
	}
	return ast.Node{Kind: ast.NodeKindField, Ref: ref}, true
}

// parseField implements `Field := Alias? Name Arguments? Directives? SelectionSet?`.
// Alias is detected by a colon after the first name (§4.2).
func (p *Parser) parseField() (int, bool) {
	if !p.enterNode() {
		return -1, false
	}
	defer p.leaveNode()

	comment := p.getComment()
	start := p.currentToken.Start

	if !p.peek(token.NAME) {
		p.failf(start, "Expected Name, found %s.", p.describeCurrent())
		return -1, false
	}
	firstName := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	if !p.advance() {
		return -1, false
	}

	var alias ast.Alias
	name := firstName
	p.parseComment()
	if p.peek(token.COLON) {
		if !p.advance() {
			return -1, false
		}
		p.parseComment()
		if !p.peek(token.NAME) {
			p.failf(p.currentToken.Start, "Expected Name after alias ':', found %s.", p.describeCurrent())
			return -1, false
		}
		alias = ast.Alias{Name: firstName, IsDefined: true, Location: ast.Location{Start: firstName.Start, End: firstName.End}}
		if p.opts.ignoreLocations {
			alias.Location = ast.Location{}
		}
		name = ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		if !p.advance() {
			return -1, false
		}
	}

	field := ast.Field{Alias: alias, Name: name, Comment: comment}

	p.parseComment()
	if p.peek(token.LPAREN) {
		args, ok := p.parseArguments()
		if !ok {
			return -1, false
		}
		field.HasArguments = true
		field.Arguments = args
	}

	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return -1, false
		}
		field.HasDirectives = true
		field.Directives = dirs
	}

	p.parseComment()
	if p.peek(token.LBRACE) {
		setRef, ok := p.parseSelectionSet()
		if !ok {
			return -1, false
		}
		field.HasSelectionSet = true
		field.SelectionSet = setRef
	}

	field.Location = p.loc(start)
	return p.document.AddField(field), true
}

// parseArguments implements `Arguments := '(' Argument+ ')'`.
func (p *Parser) parseArguments() (ast.ArgumentList, bool) {
	start := p.currentToken.Start
	if !p.expect(token.LPAREN) {
		return ast.ArgumentList{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RPAREN) {
		ref, ok := p.parseArgument()
		if !ok {
			return ast.ArgumentList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
	}
	if len(refs) == 0 {
		p.failf(start, "Arguments requires at least one argument.")
		return ast.ArgumentList{}, false
	}
	if !p.expect(token.RPAREN) {
		return ast.ArgumentList{}, false
	}
	return ast.ArgumentList{Refs: refs, Location: p.loc(start)}, true
}

// parseArgument implements `Argument := Name ':' Value`.
func (p *Parser) parseArgument() (int, bool) {
	start := p.currentToken.Start
	if !p.peek(token.NAME) {
		p.failf(start, "Expected Name, found %s.", p.describeCurrent())
		return -1, false
	}
	name := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	if !p.advance() {
		return -1, false
	}
	if !p.expect(token.COLON) {
		return -1, false
	}
	value, ok := p.parseValue(false)
	if !ok {
		return -1, false
	}
	return p.document.AddArgument(ast.Argument{Name: name, Value: value, Location: p.loc(start)}), true
}

// parseDirectives implements `Directives := Directive+`.
func (p *Parser) parseDirectives() (ast.DirectiveList, bool) {
	start := p.currentToken.Start
	var refs []int
	p.parseComment()
	for p.peek(token.AT) {
		ref, ok := p.parseDirective()
		if !ok {
			return ast.DirectiveList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
	}
	return ast.DirectiveList{Refs: refs, Location: p.loc(start)}, true
}

// parseDirective implements `Directive := '@' Name Arguments?`.
func (p *Parser) parseDirective() (int, bool) {
	if !p.enterNode() {
		return -1, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expect(token.AT) {
		return -1, false
	}
	if !p.peek(token.NAME) {
		p.failf(p.currentToken.Start, "Expected Name after '@', found %s.", p.describeCurrent())
		return -1, false
	}
	name := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	if !p.advance() {
		return -1, false
	}

	dir := ast.Directive{Name: name}
	p.parseComment()
	if p.peek(token.LPAREN) {
		args, ok := p.parseArguments()
		if !ok {
			return -1, false
		}
		dir.HasArguments = true
		dir.Arguments = args
	}
	dir.Location = p.loc(start)
	return p.document.AddDirective(dir), true
}

// parseFragmentSpreadOrInlineFragment implements the `...` dispatch of §4.2: a spread
// when followed by a NAME that isn't `on`, otherwise an inline fragment (with an
// optional `on NamedType`).
func (p *Parser) parseFragmentSpreadOrInlineFragment() (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	comment := p.getComment()
	start := p.currentToken.Start
	if !p.expect(token.SPREAD) {
		return ast.Node{}, false
	}

	p.parseComment()
	if p.peek(token.NAME) && !p.peekKeyword(token.KeywordOn) {
		name := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		if !p.advance() {
			return ast.Node{}, false
		}
		spread := ast.FragmentSpread{Name: name, Comment: comment}
		p.parseComment()
		if p.peek(token.AT) {
			dirs, ok := p.parseDirectives()
			if !ok {
				return ast.Node{}, false
			}
			spread.HasDirectives = true
			spread.Directives = dirs
		}
		spread.Location = p.loc(start)
		return ast.Node{Kind: ast.NodeKindFragmentSpread, Ref: p.document.AddFragmentSpread(spread)}, true
	}

	var typeCondition ast.TypeCondition
	if p.peekKeyword(token.KeywordOn) {
		if !p.advance() {
			return ast.Node{}, false
		}
		p.parseComment()
		if !p.peek(token.NAME) {
			p.failf(p.currentToken.Start, "Expected Name after 'on', found %s.", p.describeCurrent())
			return ast.Node{}, false
		}
		nameRef := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		typeStart := p.currentToken.Start
		if !p.advance() {
			return ast.Node{}, false
		}
		typeRef := p.document.AddNamedType(nameRef, p.loc(typeStart))
		typeCondition = ast.TypeCondition{Type: typeRef, IsDefined: true}
	}

	inline := ast.InlineFragment{TypeCondition: typeCondition, Comment: comment}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		inline.HasDirectives = true
		inline.Directives = dirs
	}

	p.parseComment()
	setRef, ok := p.parseSelectionSet()
	if !ok {
		return ast.Node{}, false
	}
	inline.SelectionSet = setRef
	inline.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindInlineFragment, Ref: p.document.AddInlineFragment(inline)}, true
}

// parseVariableDefinitions implements `VariablesDefinition := '(' VariableDefinition+ ')'`.
func (p *Parser) parseVariableDefinitions() (ast.VariableDefinitionList, bool) {
	start := p.currentToken.Start
	if !p.expect(token.LPAREN) {
		return ast.VariableDefinitionList{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RPAREN) {
		ref, ok := p.parseVariableDefinition()
		if !ok {
			return ast.VariableDefinitionList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
	}
	if len(refs) == 0 {
		p.failf(start, "A variables definition must declare at least one variable.")
		return ast.VariableDefinitionList{}, false
	}
	if !p.expect(token.RPAREN) {
		return ast.VariableDefinitionList{}, false
	}
	return ast.VariableDefinitionList{Refs: refs, Location: p.loc(start)}, true
}

// parseVariableDefinition implements `Variable ':' Type DefaultValue? Directives?`.
func (p *Parser) parseVariableDefinition() (int, bool) {
	if !p.enterNode() {
		return -1, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expect(token.DOLLAR) {
		return -1, false
	}
	if !p.peek(token.NAME) {
		p.failf(p.currentToken.Start, "Expected Name after '$', found %s.", p.describeCurrent())
		return -1, false
	}
	name := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	if !p.advance() {
		return -1, false
	}
	if !p.expect(token.COLON) {
		return -1, false
	}
	typeRef, ok := p.parseType()
	if !ok {
		return -1, false
	}

	vd := ast.VariableDefinition{VariableName: name, Type: typeRef}

	p.parseComment()
	if p.peek(token.EQUALS) {
		if !p.advance() {
			return -1, false
		}
		value, ok := p.parseValue(true)
		if !ok {
			return -1, false
		}
		vd.HasDefaultValue = true
		vd.DefaultValue = value
	}

	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return -1, false
		}
		vd.HasDirectives = true
		vd.Directives = dirs
	}

	vd.Location = p.loc(start)
	return p.document.AddVariableDefinition(vd), true
}
