// Package astparser implements component E: a recursive-descent driver over the
// lexer that builds an ast.Document, enforces a max-depth bound, and stashes comments.
// Its entry-point shape — NewParser() followed by parser.Parse(document, report) — is
// grounded directly on the teacher's own usage in
// v2/pkg/asttransform/baseschema.go:
//
//	parser := astparser.NewParser()
//	report := operationreport.Report{}
//	parser.Parse(definition, &report)
package astparser

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jensneuse/abstractlogger"

	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/lexer"
	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// Parser is the mutable driver described in §4.2: a single owned struct whose methods
// borrow it mutably, rather than mutable state threaded by hand through many small
// routines (§9's redesign note).
type Parser struct {
	document *ast.Document
	report   *operationreport.Report
	opts     options
	logger   abstractlogger.Logger

	source []byte

	currentToken token.Token
	prevToken    token.Token

	depth int

	currentComment *ast.Comment
}

// NewParser returns a reusable Parser. Call Parse once per document; the Parser resets
// its own cursor/depth/comment state at the start of every Parse call, so the same
// value can be reused across many parses without reallocating (the teacher reuses its
// own Planner/Walker the same way).
func NewParser() *Parser {
	return &Parser{logger: abstractlogger.Noop{}}
}

// SetLogger installs a structured logger for optional parse diagnostics (ambient
// concern, never required for correct operation — default is a no-op per
// abstractlogger.Noop{}, the same default the teacher's Planner falls back to when
// config.Logger is nil).
func (p *Parser) SetLogger(logger abstractlogger.Logger) {
	if logger == nil {
		logger = abstractlogger.Noop{}
	}
	p.logger = logger
}

// Parse tokenizes document.Input.RawBytes (which the caller must have already
// populated via Input.ResetInputBytes/ResetInputString) and builds the AST into
// document in place. Errors are reported via report; Parse returns once the first
// error is recorded, per §4.2/§7's "no recovery" rule. Safe to call repeatedly on the
// same *Parser with different documents.
func (p *Parser) Parse(document *ast.Document, report *operationreport.Report, opts ...Option) {
	p.document = document
	p.report = report
	p.source = document.Input.RawBytes
	p.opts = defaultOptions()
	for _, opt := range opts {
		opt(&p.opts)
	}
	p.depth = 1
	p.currentComment = nil

	if !p.advanceTo(0) {
		return
	}

	p.logger.Debug("astparser: starting parse",
		abstractlogger.String("parseID", uuid.NewString()),
		abstractlogger.Int("sourceLen", len(p.source)))

	p.parseDocument()

	if p.currentComment != nil {
		document.UnattachedComments = append(document.UnattachedComments, *p.currentComment)
		p.currentComment = nil
	}
}

// advanceTo re-invokes the lexer at the given source offset (component B's pure
// contract: lex(source, offset) -> token) and installs the result as currentToken,
// moving the old currentToken to prevToken. Returns false (and records the error on
// report) on a lexical failure.
func (p *Parser) advanceTo(offset uint32) bool {
	tok, err := lexer.Lex(p.source, offset)
	if err != nil {
		p.addExternalError(err)
		return false
	}
	p.prevToken = p.currentToken
	p.currentToken = tok
	return true
}

func (p *Parser) advance() bool {
	return p.advanceTo(p.currentToken.End)
}

func (p *Parser) addExternalError(err error) {
	if ee, ok := err.(operationreport.ExternalError); ok {
		p.report.AddExternalError(ee)
		return
	}
	p.report.AddExternalError(operationreport.NewSyntaxError(p.source, p.currentToken.Start, err.Error()))
}

func (p *Parser) failf(offset uint32, format string, args ...interface{}) {
	p.report.AddExternalError(operationreport.NewSyntaxError(p.source, offset, fmt.Sprintf(format, args...)))
}

// enterNode implements the depth bookkeeping of §4.2: increment on entry to every parse
// routine that constructs a node, fail with MaxDepthExceeded once the counter exceeds
// max_depth. Returns false when the bound was exceeded; callers must stop building the
// current node and unwind.
func (p *Parser) enterNode() bool {
	p.depth++
	if p.depth > p.opts.maxDepth {
		p.report.AddExternalError(operationreport.NewMaxDepthExceededError(p.source, p.currentToken.Start))
		return false
	}
	return true
}

func (p *Parser) leaveNode() {
	p.depth--
}

func (p *Parser) hasErrors() bool {
	return p.report.HasErrors()
}

// --- primitive operations (§4.2) ---

func (p *Parser) peek(kind token.Kind) bool {
	return p.currentToken.Kind == kind
}

func (p *Parser) peekKeyword(word string) bool {
	return p.currentToken.Kind == token.NAME && string(p.currentToken.Value) == word
}

// skip advances past a token of kind, consuming any pending comment first (§4.2:
// "Calls to skip must first call the comment-consumption routine").
func (p *Parser) skip(kind token.Kind) bool {
	p.parseComment()
	if !p.peek(kind) {
		return false
	}
	return p.advance()
}

func (p *Parser) expect(kind token.Kind) bool {
	p.parseComment()
	if !p.peek(kind) {
		p.failf(p.currentToken.Start, "Expected %s, found %s.", kind, p.describeCurrent())
		return false
	}
	return p.advance()
}

func (p *Parser) expectKeyword(word string) bool {
	p.parseComment()
	if !p.peekKeyword(word) {
		p.failf(p.currentToken.Start, "Expected %q, found %s.", word, p.describeCurrent())
		return false
	}
	return p.advance()
}

// expectOneOf requires the current token be a NAME whose value is a key of set;
// returns the matched value and advances, or raises "Expected one of ...".
func (p *Parser) expectOneOf(set map[string]bool) (string, bool) {
	p.parseComment()
	if p.currentToken.Kind != token.NAME || !set[string(p.currentToken.Value)] {
		p.failf(p.currentToken.Start, "Expected one of %s, found %s.", describeSet(set), p.describeCurrent())
		return "", false
	}
	value := string(p.currentToken.Value)
	if !p.advance() {
		return "", false
	}
	return value, true
}

func (p *Parser) describeCurrent() string {
	if p.currentToken.Kind == token.EOF {
		return "<EOF>"
	}
	if p.currentToken.Kind == token.NAME || p.currentToken.Kind == token.INT || p.currentToken.Kind == token.FLOAT {
		return string(p.currentToken.Value)
	}
	return p.currentToken.Kind.String()
}

func (p *Parser) loc(start uint32) ast.Location {
	if p.opts.ignoreLocations {
		return ast.Location{}
	}
	return ast.Location{Start: start, End: p.prevToken.End}
}
