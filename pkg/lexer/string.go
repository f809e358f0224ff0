package lexer

import (
	"bytes"

	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// lexString scans a `"..."` string per §4.1: \", \\, \/, \b, \f, \n, \r, \t, and \uXXXX
// escapes, with surrogate-pair decoding for astral characters. The opening quote is at
// source[start].
func lexString(source []byte, start uint32) (token.Token, error) {
	if tok, ok := lexStringFastPath(source, start); ok {
		return tok, nil
	}
	return lexStringWithEscapes(source, start)
}

// lexStringFastPath scans for the closing quote assuming no escape, unescaped-newline, or
// control-character case needs handling. Plain strings (the common case) are returned as a
// direct slice of source, with no buffer allocation. ok is false if the scan hit anything
// that needs lexStringWithEscapes's full handling (including to produce the right error).
func lexStringFastPath(source []byte, start uint32) (token.Token, bool) {
	n := uint32(len(source))
	for pos := start + 1; pos < n; pos++ {
		c := source[pos]
		if c == '"' {
			return token.Token{Kind: token.STRING, Start: start, End: pos + 1, Value: source[start+1 : pos]}, true
		}
		if c == '\\' || c == '\n' || c == '\r' || (c < 0x20 && c != '\t') {
			return token.Token{}, false
		}
	}
	return token.Token{}, false
}

func lexStringWithEscapes(source []byte, start uint32) (token.Token, error) {
	pos := start + 1
	n := uint32(len(source))
	var buf bytes.Buffer

	for pos < n {
		c := source[pos]
		if c == '"' {
			return token.Token{Kind: token.STRING, Start: start, End: pos + 1, Value: append([]byte(nil), buf.Bytes()...)}, nil
		}
		if c == '\n' || c == '\r' {
			break
		}
		if c < 0x20 && c != '\t' {
			return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid unescaped control character within String.")
		}
		if c != '\\' {
			buf.WriteByte(c)
			pos++
			continue
		}

		pos++
		if pos >= n {
			break
		}
		esc := source[pos]
		switch esc {
		case '"':
			buf.WriteByte('"')
			pos++
		case '\\':
			buf.WriteByte('\\')
			pos++
		case '/':
			buf.WriteByte('/')
			pos++
		case 'b':
			buf.WriteByte('\b')
			pos++
		case 'f':
			buf.WriteByte('\f')
			pos++
		case 'n':
			buf.WriteByte('\n')
			pos++
		case 'r':
			buf.WriteByte('\r')
			pos++
		case 't':
			buf.WriteByte('\t')
			pos++
		case 'u':
			newPos, err := decodeUnicodeEscape(source, pos+1, &buf)
			if err != nil {
				return token.Token{}, err
			}
			pos = newPos
		default:
			return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid character escape sequence.")
		}
	}

	return token.Token{}, operationreport.NewSyntaxError(source, pos, "Unterminated string.")
}

// decodeUnicodeEscape decodes a \uXXXX escape starting at hexStart (the position right
// after the 'u'). It handles surrogate pairs: a leading surrogate must be followed
// immediately by \u of a trailing surrogate, else it is a lexical error. Returns the
// position right after the consumed escape(s).
func decodeUnicodeEscape(source []byte, hexStart uint32, buf *bytes.Buffer) (uint32, error) {
	r, ok := readHex4(source, hexStart)
	if !ok {
		return 0, operationreport.NewSyntaxError(source, hexStart-2, "Invalid unicode escape sequence.")
	}
	pos := hexStart + 4

	if r >= 0xD800 && r <= 0xDBFF {
		// Leading surrogate: must be followed by \u of a trailing surrogate.
		if pos+1 < uint32(len(source)) && source[pos] == '\\' && source[pos+1] == 'u' {
			low, ok := readHex4(source, pos+2)
			if ok && low >= 0xDC00 && low <= 0xDFFF {
				combined := 0x10000 + (r-0xD800)*0x400 + (low - 0xDC00)
				buf.WriteRune(rune(combined))
				return pos + 6, nil
			}
		}
		return 0, operationreport.NewSyntaxError(source, hexStart-2, "Invalid leading surrogate without matching trailing surrogate.")
	}
	if r >= 0xDC00 && r <= 0xDFFF {
		return 0, operationreport.NewSyntaxError(source, hexStart-2, "Unexpected trailing surrogate.")
	}

	buf.WriteRune(rune(r))
	return pos, nil
}

func readHex4(source []byte, pos uint32) (uint32, bool) {
	if int(pos)+4 > len(source) {
		return 0, false
	}
	var v uint32
	for i := uint32(0); i < 4; i++ {
		d, ok := hexDigit(source[pos+i])
		if !ok {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	default:
		return 0, false
	}
}
