package astparser

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// parseValue implements the Value production of §4.2, dispatching on the current
// token's kind. isConstant selects the "constant value" context (default values, SDL
// positions) where a Variable is not syntactically permitted.
func (p *Parser) parseValue(isConstant bool) (ast.Value, bool) {
	if !p.enterNode() {
		return ast.Value{}, false
	}
	defer p.leaveNode()

	p.parseComment()
	start := p.currentToken.Start

	switch p.currentToken.Kind {
	case token.LBRACK:
		return p.parseListValue(isConstant, start)
	case token.LBRACE:
		return p.parseObjectValue(isConstant, start)
	case token.INT:
		raw := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		negative := len(p.currentToken.Value) > 0 && p.currentToken.Value[0] == '-'
		if !p.advance() {
			return ast.Value{}, false
		}
		ref := p.document.AddIntValue(ast.IntValue{Raw: raw, Negative: negative, Location: p.loc(start)})
		return ast.Value{Kind: ast.ValueKindInt, Ref: ref, Location: p.loc(start)}, true
	case token.FLOAT:
		raw := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		if !p.advance() {
			return ast.Value{}, false
		}
		ref := p.document.AddFloatValue(ast.FloatValue{Raw: raw, Location: p.loc(start)})
		return ast.Value{Kind: ast.ValueKindFloat, Ref: ref, Location: p.loc(start)}, true
	case token.STRING, token.BLOCKSTRING:
		isBlock := p.currentToken.Kind == token.BLOCKSTRING
		content := p.document.Input.AppendInputBytes(p.currentToken.Value)
		if !p.advance() {
			return ast.Value{}, false
		}
		ref := p.document.AddStringValue(ast.StringValue{Content: content, BlockString: isBlock, Location: p.loc(start)})
		return ast.Value{Kind: ast.ValueKindString, Ref: ref, Location: p.loc(start)}, true
	case token.NAME:
		word := string(p.currentToken.Value)
		switch word {
		case token.KeywordTrue, token.KeywordFalse:
			if !p.advance() {
				return ast.Value{}, false
			}
			ref := 0
			if word == token.KeywordTrue {
				ref = 1
			}
			return ast.Value{Kind: ast.ValueKindBoolean, Ref: ref, Location: p.loc(start)}, true
		case token.KeywordNull:
			if !p.advance() {
				return ast.Value{}, false
			}
			return ast.Value{Kind: ast.ValueKindNull, Location: p.loc(start)}, true
		default:
			nameRef := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
			if !p.advance() {
				return ast.Value{}, false
			}
			ref := p.document.AddEnumValue(ast.EnumValue{Name: nameRef, Location: p.loc(start)})
			return ast.Value{Kind: ast.ValueKindEnum, Ref: ref, Location: p.loc(start)}, true
		}
	case token.DOLLAR:
		if isConstant {
			p.failf(start, "Unexpected variable in constant value position.")
			return ast.Value{}, false
		}
		if !p.advance() {
			return ast.Value{}, false
		}
		if !p.peek(token.NAME) {
			p.failf(p.currentToken.Start, "Expected Name after '$', found %s.", p.describeCurrent())
			return ast.Value{}, false
		}
		nameRef := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		if !p.advance() {
			return ast.Value{}, false
		}
		ref := p.document.AddVariableValue(ast.VariableValue{Name: nameRef, Location: p.loc(start)})
		return ast.Value{Kind: ast.ValueKindVariable, Ref: ref, Location: p.loc(start)}, true
	}

	p.failf(start, "Unexpected token %s; expected a value.", p.describeCurrent())
	return ast.Value{}, false
}

func (p *Parser) parseListValue(isConstant bool, start uint32) (ast.Value, bool) {
	if !p.expect(token.LBRACK) {
		return ast.Value{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RBRACK) {
		v, ok := p.parseValue(isConstant)
		if !ok {
			return ast.Value{}, false
		}
		idx := len(p.document.Values)
		p.document.Values = append(p.document.Values, v)
		refs = append(refs, idx)
		p.parseComment()
	}
	if !p.expect(token.RBRACK) {
		return ast.Value{}, false
	}
	listRef := p.document.AddListValue(ast.ListValue{Refs: refs, Location: p.loc(start)})
	return ast.Value{Kind: ast.ValueKindList, Ref: listRef, Location: p.loc(start)}, true
}

func (p *Parser) parseObjectValue(isConstant bool, start uint32) (ast.Value, bool) {
	if !p.expect(token.LBRACE) {
		return ast.Value{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RBRACE) {
		fieldStart := p.currentToken.Start
		if !p.peek(token.NAME) {
			p.failf(fieldStart, "Expected Name, found %s.", p.describeCurrent())
			return ast.Value{}, false
		}
		name := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		if !p.advance() {
			return ast.Value{}, false
		}
		if !p.expect(token.COLON) {
			return ast.Value{}, false
		}
		value, ok := p.parseValue(isConstant)
		if !ok {
			return ast.Value{}, false
		}
		refs = append(refs, p.document.AddObjectField(ast.ObjectField{Name: name, Value: value, Location: p.loc(fieldStart)}))
		p.parseComment()
	}
	if !p.expect(token.RBRACE) {
		return ast.Value{}, false
	}
	objRef := p.document.AddObjectValue(ast.ObjectValue{Refs: refs, Location: p.loc(start)})
	return ast.Value{Kind: ast.ValueKindObject, Ref: objRef, Location: p.loc(start)}, true
}
