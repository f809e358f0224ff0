package lexer

import (
	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// lexNumber implements the Int/Float grammar of §4.1:
//
//	Int   ::= -?(0|[1-9][0-9]*)
//	Float ::= Int ('.' [0-9]+)? ([eE] [+-]? [0-9]+)?   (at least one of the two parts)
//
// An Int immediately followed by '.', 'e'/'E', or a name-start character is either a
// Float (if the fractional/exponent grammar matches) or an invalid number.
func lexNumber(source []byte, start uint32) (token.Token, error) {
	pos := start
	n := uint32(len(source))
	isFloat := false

	if source[pos] == '-' {
		pos++
		if pos >= n || !isDigit(source[pos]) {
			return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid number, expected digit after '-'.")
		}
	}

	if source[pos] == '0' {
		pos++
		if pos < n && isDigit(source[pos]) {
			return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid number, unexpected digit after 0.")
		}
	} else {
		pos = consumeDigits(source, pos)
	}

	if pos < n && source[pos] == '.' {
		isFloat = true
		pos++
		if pos >= n || !isDigit(source[pos]) {
			return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid number, expected digit after '.'.")
		}
		pos = consumeDigits(source, pos)
	}

	if pos < n && (source[pos] == 'e' || source[pos] == 'E') {
		isFloat = true
		pos++
		if pos < n && (source[pos] == '+' || source[pos] == '-') {
			pos++
		}
		if pos >= n || !isDigit(source[pos]) {
			return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid number, expected digit after exponent.")
		}
		pos = consumeDigits(source, pos)
	}

	if pos < n && isNameStart(source[pos]) {
		return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid number, unexpected trailing name character.")
	}
	if pos < n && source[pos] == '.' {
		// e.g. "1.2.3" — a second dot is a lexical error, not a second Float.
		return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid number, unexpected '.'.")
	}

	kind := token.INT
	if isFloat {
		kind = token.FLOAT
	}
	return token.Token{Kind: kind, Start: start, End: pos, Value: source[start:pos]}, nil
}

func consumeDigits(source []byte, pos uint32) uint32 {
	for int(pos) < len(source) && isDigit(source[pos]) {
		pos++
	}
	return pos
}
