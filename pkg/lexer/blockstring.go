package lexer

import (
	"bytes"
	"strings"

	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// lexBlockString scans a `"""..."""` block string and applies the dedent algorithm of
// §4.1. The opening `"""` begins at source[start:start+3]. The resulting Value is an
// owned, newly-allocated string, never a source sub-slice (the only other token whose
// Value is owned is a STRING containing escape sequences).
func lexBlockString(source []byte, start uint32) (token.Token, error) {
	pos := start + 3
	n := uint32(len(source))
	var raw bytes.Buffer

	for pos < n {
		c := source[pos]
		switch {
		case c == '"' && pos+2 < n && source[pos+1] == '"' && source[pos+2] == '"':
			return token.Token{
				Kind:  token.BLOCKSTRING,
				Start: start,
				End:   pos + 3,
				Value: []byte(dedentBlockString(raw.String())),
			}, nil
		case c == '\\' && pos+3 < n && source[pos+1] == '"' && source[pos+2] == '"' && source[pos+3] == '"':
			raw.WriteString(`"""`)
			pos += 4
		default:
			if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
				return token.Token{}, operationreport.NewSyntaxError(source, pos, "Invalid character within String.")
			}
			raw.WriteByte(c)
			pos++
		}
	}

	return token.Token{}, operationreport.NewSyntaxError(source, pos, "Unterminated string.")
}

// dedentBlockString implements the GraphQL block-string value algorithm:
//  1. split on line terminators,
//  2. find the minimum common indentation among all non-first lines that contain any
//     non-whitespace,
//  3. strip that many leading whitespace units from each such line,
//  4. drop leading/trailing blank lines,
//  5. rejoin with '\n'.
func dedentBlockString(raw string) string {
	lines := splitLines(raw)

	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		indent := leadingWhitespaceCount(line)
		if indent == len(line) {
			continue // whitespace-only line: doesn't constrain the common indent
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			i++
			start = i
		case '\r':
			lines = append(lines, s[start:i])
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}
			start = i
		default:
			i++
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func leadingWhitespaceCount(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isBlank(s string) bool {
	return leadingWhitespaceCount(s) == len(s)
}
