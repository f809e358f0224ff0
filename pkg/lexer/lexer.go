// Package lexer implements component B: a pure function from (source, offset) to the
// next Token. Scanning rules are grounded on github.com/botobag/artemis/graphql's
// internal/lexer (see _examples/other_examples/01108cb8_botobag-artemis__graphql-lexer-lexer.go.go),
// adapted from its linked-token-stream design to the stateless contract this spec
// requires: Lex never retains state between calls, so two lexers over two different
// byte slices share nothing and may run on different goroutines (§5).
package lexer

import (
	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// Lex scans source starting at startOffset, skips ignored tokens (BOM, whitespace, line
// terminators, commas), and returns the next lexical token. If the next non-ignored
// character is '#', a COMMENT token is always returned (callers that want comments
// filtered do so themselves, per ignore_comments in §4.2 — the lexer itself never
// decides what to do with a comment). At end of input, Lex returns an EOF token with
// Start == End == len(source).
func Lex(source []byte, startOffset uint32) (token.Token, error) {
	pos := skipIgnored(source, startOffset)

	if int(pos) >= len(source) {
		return token.Token{Kind: token.EOF, Start: uint32(len(source)), End: uint32(len(source))}, nil
	}

	c := source[pos]
	switch {
	case c == '#':
		return lexComment(source, pos), nil
	case c == '!':
		return simple(token.BANG, pos), nil
	case c == '$':
		return simple(token.DOLLAR, pos), nil
	case c == '&':
		return simple(token.AMP, pos), nil
	case c == '(':
		return simple(token.LPAREN, pos), nil
	case c == ')':
		return simple(token.RPAREN, pos), nil
	case c == ':':
		return simple(token.COLON, pos), nil
	case c == '=':
		return simple(token.EQUALS, pos), nil
	case c == '@':
		return simple(token.AT, pos), nil
	case c == '[':
		return simple(token.LBRACK, pos), nil
	case c == ']':
		return simple(token.RBRACK, pos), nil
	case c == '{':
		return simple(token.LBRACE, pos), nil
	case c == '|':
		return simple(token.PIPE, pos), nil
	case c == '}':
		return simple(token.RBRACE, pos), nil
	case c == '.':
		return lexSpread(source, pos)
	case isNameStart(c):
		return lexName(source, pos), nil
	case c == '-' || isDigit(c):
		return lexNumber(source, pos)
	case c == '"':
		if pos+2 < uint32(len(source)) && source[pos+1] == '"' && source[pos+2] == '"' {
			return lexBlockString(source, pos)
		}
		if pos+1 < uint32(len(source)) && source[pos+1] == '"' {
			// Empty "" not immediately followed by a third quote.
			return token.Token{Kind: token.STRING, Start: pos, End: pos + 2, Value: []byte{}}, nil
		}
		return lexString(source, pos)
	}

	return token.Token{}, unexpectedCharacterError(source, pos)
}

func simple(kind token.Kind, pos uint32) token.Token {
	return token.Token{Kind: kind, Start: pos, End: pos + 1, Value: nil}
}

func lexSpread(source []byte, pos uint32) (token.Token, error) {
	if pos+2 >= uint32(len(source)) || source[pos+1] != '.' || source[pos+2] != '.' {
		return token.Token{}, unexpectedCharacterError(source, pos)
	}
	return token.Token{Kind: token.SPREAD, Start: pos, End: pos + 3}, nil
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lexName(source []byte, start uint32) token.Token {
	end := start + 1
	for int(end) < len(source) && isNameContinue(source[end]) {
		end++
	}
	return token.Token{Kind: token.NAME, Start: start, End: end, Value: source[start:end]}
}

// skipIgnored advances past BOM (only meaningful at offset 0, but harmless to check
// unconditionally since it can never occur mid-document once consumed), whitespace,
// line terminators, and commas, per §6's compatibility note.
func skipIgnored(source []byte, from uint32) uint32 {
	pos := from
	n := uint32(len(source))
	for pos < n {
		if pos == 0 && n-pos >= 3 && source[0] == 0xEF && source[1] == 0xBB && source[2] == 0xBF {
			pos += 3
			continue
		}
		switch source[pos] {
		case ' ', '\t', ',', '\n':
			pos++
		case '\r':
			pos++
			if pos < n && source[pos] == '\n' {
				pos++
			}
		default:
			return pos
		}
	}
	return pos
}

func lexComment(source []byte, start uint32) token.Token {
	pos := start + 1
	n := uint32(len(source))
	for pos < n {
		c := source[pos]
		if c == '\n' || c == '\r' {
			break
		}
		pos++
	}
	return token.Token{Kind: token.COMMENT, Start: start, End: pos, Value: source[start+1 : pos]}
}

func unexpectedCharacterError(source []byte, pos uint32) error {
	if int(pos) >= len(source) {
		return operationreport.NewSyntaxError(source, pos, "Unexpected <EOF>.")
	}
	c := source[pos]
	if c == '\'' {
		return operationreport.NewSyntaxError(source, pos,
			"Unexpected single quote character ('), did you mean to use a double quote (\")?")
	}
	if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
		return operationreport.NewSyntaxError(source, pos, "Cannot contain the invalid character.")
	}
	return operationreport.NewSyntaxError(source, pos, "Cannot parse the unexpected character.")
}
