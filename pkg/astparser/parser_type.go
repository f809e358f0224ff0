package astparser

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// parseType implements `Type := NamedType | ListType | NonNullType` (§4.2): parse a
// NamedType or `[Type]`, then optionally a trailing '!' wraps the result in a
// NonNullType. Invariant 2 (§3) — a NonNullType's inner type is never itself a
// NonNullType — holds structurally here: a second '!' has nothing left to wrap, since
// the wrap happens once, after the base type/list is fully parsed.
func (p *Parser) parseType() (int, bool) {
	if !p.enterNode() {
		return -1, false
	}
	defer p.leaveNode()

	p.parseComment()
	start := p.currentToken.Start

	var ref int
	switch {
	case p.peek(token.NAME):
		nameRef := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
		if !p.advance() {
			return -1, false
		}
		ref = p.document.AddNamedType(nameRef, p.loc(start))
	case p.peek(token.LBRACK):
		if !p.advance() {
			return -1, false
		}
		inner, ok := p.parseType()
		if !ok {
			return -1, false
		}
		if !p.expect(token.RBRACK) {
			return -1, false
		}
		ref = p.document.AddListType(inner, p.loc(start))
	default:
		p.failf(p.currentToken.Start, "Expected Name or '[', found %s.", p.describeCurrent())
		return -1, false
	}

	p.parseComment()
	if p.peek(token.BANG) {
		if !p.advance() {
			return -1, false
		}
		ref = p.document.AddNonNullType(ref, p.loc(start))
	}

	return ref, true
}
