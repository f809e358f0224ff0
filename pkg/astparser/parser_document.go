package astparser

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/lexer"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// parseDocument implements `Document := Definition+` (§4.2), dispatching each top-level
// definition by its leading token exactly as §4.5 describes: '{' starts the anonymous
// shorthand operation; a NAME dispatches on its keyword spelling; a leading
// STRING/BLOCKSTRING is a Description and requires the one-token lookahead of
// descriptionPrecedesDefinition to confirm a type-system definition keyword follows,
// without consuming the description token until that's confirmed.
func (p *Parser) parseDocument() {
	for {
		p.parseComment()
		comment := p.getComment()

		if p.peek(token.EOF) {
			if comment != nil {
				p.document.UnattachedComments = append(p.document.UnattachedComments, *comment)
			}
			return
		}

		node, ok := p.parseDefinition(comment)
		if !ok {
			return
		}
		p.document.AddRootNode(node)

		if p.hasErrors() {
			return
		}
	}
}

func (p *Parser) parseDefinition(comment *ast.Comment) (ast.Node, bool) {
	switch p.currentToken.Kind {
	case token.LBRACE:
		return p.parseOperationDefinition(comment)
	case token.STRING, token.BLOCKSTRING:
		return p.parseDescribedTypeSystemDefinition(comment)
	case token.NAME:
		return p.parseNameDefinition(comment)
	}
	p.failf(p.currentToken.Start, "Unexpected %s; expected a definition.", p.describeCurrent())
	return ast.Node{}, false
}

func (p *Parser) parseNameDefinition(comment *ast.Comment) (ast.Node, bool) {
	switch string(p.currentToken.Value) {
	case token.KeywordQuery, token.KeywordMutation, token.KeywordSubscription:
		return p.parseOperationDefinition(comment)
	case token.KeywordFragment:
		return p.parseFragmentDefinition(comment)
	case token.KeywordExtend:
		return p.parseTypeSystemExtension(comment)
	case token.KeywordSchema, token.KeywordScalar, token.KeywordType, token.KeywordInterface,
		token.KeywordUnion, token.KeywordEnum, token.KeywordInput, token.KeywordDirective:
		return p.parseTypeSystemDefinition(ast.Description{}, comment)
	}
	p.failf(p.currentToken.Start, "Unexpected Name %q; expected a definition.", string(p.currentToken.Value))
	return ast.Node{}, false
}

// parseDescribedTypeSystemDefinition consumes a leading Description, once
// descriptionPrecedesDefinition confirms one is actually present, then dispatches to
// parseTypeSystemDefinition.
func (p *Parser) parseDescribedTypeSystemDefinition(comment *ast.Comment) (ast.Node, bool) {
	if !p.descriptionPrecedesDefinition() {
		p.failf(p.currentToken.Start, "Unexpected %s; a description may only precede a type system definition.", p.describeCurrent())
		return ast.Node{}, false
	}

	content := p.document.Input.AppendInputBytes(p.currentToken.Value)
	desc := ast.Description{
		Content:       content,
		IsBlockString: p.currentToken.Kind == token.BLOCKSTRING,
		IsDefined:     true,
		Location:      ast.Location{Start: p.currentToken.Start, End: p.currentToken.End},
	}
	if p.opts.ignoreLocations {
		desc.Location = ast.Location{}
	}
	if !p.advance() {
		return ast.Node{}, false
	}
	p.parseComment()

	if !p.peek(token.NAME) || !token.TypeSystemDefinitionKeywords[string(p.currentToken.Value)] {
		p.failf(p.currentToken.Start, "Unexpected %s; expected a type system definition after description.", p.describeCurrent())
		return ast.Node{}, false
	}

	return p.parseTypeSystemDefinition(desc, comment)
}

// descriptionPrecedesDefinition peeks past the current STRING/BLOCKSTRING token (and any
// comments after it) to check whether a TypeSystemDefinitionKeywords NAME follows,
// without advancing the parser's own cursor — a pure re-invocation of the lexer at
// currentToken.End, discarded once the answer is known.
func (p *Parser) descriptionPrecedesDefinition() bool {
	offset := p.currentToken.End
	for {
		tok, err := lexer.Lex(p.source, offset)
		if err != nil {
			return false
		}
		if tok.Kind == token.COMMENT {
			offset = tok.End
			continue
		}
		return tok.Kind == token.NAME && token.TypeSystemDefinitionKeywords[string(tok.Value)]
	}
}
