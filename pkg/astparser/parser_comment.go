package astparser

import (
	"strings"

	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// parseComment implements the comment stash discipline of §4.2: aggregate a run of
// consecutive COMMENT tokens into one Comment node, spanning the first to the last.
// When a new comment cluster arrives while currentComment is already set (i.e. the
// previously stashed comment was never claimed by get_comment()), the older one moves
// to Document.UnattachedComments — it belonged to whatever came immediately before the
// new cluster and nothing ever claimed it. Called immediately before most token-class
// decisions, per the design.
func (p *Parser) parseComment() {
	if p.opts.ignoreComments {
		for p.currentToken.Kind == token.COMMENT {
			if !p.advance() {
				return
			}
		}
		return
	}

	if p.currentToken.Kind != token.COMMENT {
		return
	}

	if p.currentComment != nil {
		p.document.UnattachedComments = append(p.document.UnattachedComments, *p.currentComment)
		p.currentComment = nil
	}

	start := p.currentToken.Start
	var lines []string
	end := p.currentToken.End
	for p.currentToken.Kind == token.COMMENT {
		lines = append(lines, string(p.currentToken.Value))
		end = p.currentToken.End
		if !p.advance() {
			return
		}
	}

	comment := ast.Comment{
		Value:    strings.Join(lines, "\n"),
		Location: ast.Location{Start: start, End: end},
	}
	if p.opts.ignoreLocations {
		comment.Location = ast.Location{}
	}
	p.currentComment = &comment
}

// getComment returns and clears the currently stashed comment, claiming it for the
// caller's node. Returns nil if no comment is pending.
func (p *Parser) getComment() *ast.Comment {
	c := p.currentComment
	p.currentComment = nil
	return c
}

func describeSet(set map[string]bool) string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
