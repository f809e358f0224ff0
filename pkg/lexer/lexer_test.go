package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyrmgraph/gqlcore/pkg/token"
)

func lexAll(t *testing.T, source string) []token.Token {
	t.Helper()
	var tokens []token.Token
	var offset uint32
	for {
		tok, err := Lex([]byte(source), offset)
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
		offset = tok.End
	}
}

func TestLex_Punctuators(t *testing.T) {
	tokens := lexAll(t, "! $ & | @ : = ... ( ) [ ] { }")
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.BANG, token.DOLLAR, token.AMP, token.PIPE, token.AT, token.COLON, token.EQUALS,
		token.SPREAD, token.LPAREN, token.RPAREN, token.LBRACK, token.RBRACK, token.LBRACE,
		token.RBRACE, token.EOF,
	}, kinds)
}

func TestLex_Name(t *testing.T) {
	tok, err := Lex([]byte("_myField42 rest"), 0)
	require.NoError(t, err)
	assert.Equal(t, token.NAME, tok.Kind)
	assert.Equal(t, "_myField42", string(tok.Value))
}

func TestLex_Int(t *testing.T) {
	for _, source := range []string{"0", "123", "-17"} {
		tok, err := Lex([]byte(source), 0)
		require.NoError(t, err)
		assert.Equal(t, token.INT, tok.Kind)
		assert.Equal(t, source, string(tok.Value))
	}
}

func TestLex_IntLeadingZeroIsInvalid(t *testing.T) {
	_, err := Lex([]byte("013"), 0)
	assert.Error(t, err)
}

func TestLex_Float(t *testing.T) {
	for _, source := range []string{"1.0", "1.2e10", "1e10", "-1.2E-10"} {
		tok, err := Lex([]byte(source), 0)
		require.NoError(t, err)
		assert.Equal(t, token.FLOAT, tok.Kind)
		assert.Equal(t, source, string(tok.Value))
	}
}

func TestLex_FloatMissingFractionalDigitIsInvalid(t *testing.T) {
	_, err := Lex([]byte("1."), 0)
	assert.Error(t, err)
}

func TestLex_String(t *testing.T) {
	tok, err := Lex([]byte(`"hello \"world\" \n A"`), 0)
	require.NoError(t, err)
	require.Equal(t, token.STRING, tok.Kind)
	assert.Equal(t, "hello \"world\" \n A", string(tok.Value))
}

func TestLex_StringSurrogatePair(t *testing.T) {
	// The escapes D83D and DE00 are the UTF-16 surrogate pair for U+1F600 (grinning
	// face); \x5c is a backslash, so the source is a quoted pair of \u escapes.
	tok, err := Lex([]byte("\"\x5cuD83D\x5cuDE00\""), 0)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", string(tok.Value))
}

func TestLex_StringUnterminatedIsInvalid(t *testing.T) {
	_, err := Lex([]byte(`"unterminated`), 0)
	assert.Error(t, err)
}

func TestLex_StringUnescapedNewlineIsInvalid(t *testing.T) {
	_, err := Lex([]byte("\"a\nb\""), 0)
	assert.Error(t, err)
}

func TestLex_Comment(t *testing.T) {
	tok, err := Lex([]byte("# a comment\nnext"), 0)
	require.NoError(t, err)
	require.Equal(t, token.COMMENT, tok.Kind)
	assert.Equal(t, " a comment", string(tok.Value))
}

func TestLex_BlockStringDedent(t *testing.T) {
	// The canonical GraphQL block-string dedent example: a leading blank line, then
	// uniformly-indented content, then a trailing blank line before the closing quotes.
	source := "\"\"\"\n  a\n  b\n  c\n\"\"\""
	tok, err := Lex([]byte(source), 0)
	require.NoError(t, err)
	require.Equal(t, token.BLOCKSTRING, tok.Kind)
	assert.Equal(t, "a\nb\nc", string(tok.Value))
}

func TestLex_BlockStringEscapedTripleQuote(t *testing.T) {
	source := `"""say \"""hi\""""""`
	tok, err := Lex([]byte(source), 0)
	require.NoError(t, err)
	require.Equal(t, token.BLOCKSTRING, tok.Kind)
	assert.Equal(t, `say """hi"""`, string(tok.Value))
}

func TestLex_IgnoredTokensAreSkipped(t *testing.T) {
	tok, err := Lex([]byte("  \t,\n,  name"), 0)
	require.NoError(t, err)
	assert.Equal(t, token.NAME, tok.Kind)
	assert.Equal(t, "name", string(tok.Value))
}

func TestLex_SingleQuoteSuggestsDoubleQuote(t *testing.T) {
	_, err := Lex([]byte("'oops'"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean to use a double quote")
}

func TestLex_IsPureAcrossConcurrentCalls(t *testing.T) {
	// Lex retains no state between calls, so concurrent invocations over distinct byte
	// slices never interfere with one another (§5's concurrency guarantee).
	sources := []string{"{ a }", "{ b }", "query Q { c }"}
	type result struct {
		kinds []token.Kind
		err   error
	}
	done := make(chan result, len(sources))
	for _, source := range sources {
		source := source
		go func() {
			var kinds []token.Kind
			offset := uint32(0)
			for {
				tok, err := Lex([]byte(source), offset)
				if err != nil {
					done <- result{err: err}
					return
				}
				kinds = append(kinds, tok.Kind)
				if tok.Kind == token.EOF {
					done <- result{kinds: kinds}
					return
				}
				offset = tok.End
			}
		}()
	}
	for range sources {
		r := <-done
		require.NoError(t, r.err)
		assert.NotEmpty(t, r.kinds)
	}
}
