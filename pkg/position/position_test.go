package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromOffset_SingleLine(t *testing.T) {
	source := []byte("hello world")
	assert.Equal(t, Position{Line: 1, Column: 1}, FromOffset(source, 0))
	assert.Equal(t, Position{Line: 1, Column: 7}, FromOffset(source, 6))
}

func TestFromOffset_UnixNewlines(t *testing.T) {
	source := []byte("a\nbb\nccc")
	assert.Equal(t, Position{Line: 1, Column: 1}, FromOffset(source, 0))
	assert.Equal(t, Position{Line: 2, Column: 1}, FromOffset(source, 2))
	assert.Equal(t, Position{Line: 3, Column: 2}, FromOffset(source, 6))
}

func TestFromOffset_CarriageReturnOnly(t *testing.T) {
	source := []byte("a\rbb\rccc")
	assert.Equal(t, Position{Line: 2, Column: 1}, FromOffset(source, 2))
	assert.Equal(t, Position{Line: 3, Column: 2}, FromOffset(source, 6))
}

func TestFromOffset_CarriageReturnNewline(t *testing.T) {
	source := []byte("a\r\nbb\r\nccc")
	assert.Equal(t, Position{Line: 2, Column: 1}, FromOffset(source, 3))
	assert.Equal(t, Position{Line: 3, Column: 2}, FromOffset(source, 8))
}

func TestFromOffset_OffsetPastEndKeepsCountingColumn(t *testing.T) {
	source := []byte("abc")
	pos := FromOffset(source, 5)
	assert.Equal(t, Position{Line: 1, Column: 6}, pos)
}
