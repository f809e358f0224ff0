package operationreport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_HasErrorsIsFalseOnZeroValue(t *testing.T) {
	var r Report
	assert.False(t, r.HasErrors())
}

func TestReport_AddExternalError(t *testing.T) {
	var r Report
	r.AddExternalError(NewSyntaxError([]byte("abc"), 1, "unexpected token"))
	require.True(t, r.HasErrors())
	require.Len(t, r.ExternalErrors, 1)
	assert.Equal(t, ErrKindSyntax, r.ExternalErrors[0].Kind)
}

func TestReport_AddInternalErrorWrapsWithStack(t *testing.T) {
	var r Report
	r.AddInternalError(errors.New("boom"))
	require.True(t, r.HasErrors())
	require.Len(t, r.InternalErrors, 1)
	assert.Contains(t, r.InternalErrors[0].Error(), "boom")
}

func TestReport_Reset(t *testing.T) {
	var r Report
	r.AddExternalError(NewSyntaxError(nil, 0, "x"))
	r.AddInternalError(errors.New("y"))
	r.Reset()
	assert.False(t, r.HasErrors())
	assert.Empty(t, r.ExternalErrors)
	assert.Empty(t, r.InternalErrors)
}

func TestExternalError_MessageIncludesLineAndColumn(t *testing.T) {
	source := []byte("abc\ndef")
	err := NewSyntaxError(source, 5, "unexpected 'e'")
	assert.Equal(t, "unexpected 'e' at line 2, column 2", err.Error())
}

func TestExternalError_MaxDepthMessageHasNoLeadingText(t *testing.T) {
	source := []byte("abc")
	err := NewMaxDepthExceededError(source, 1)
	assert.Equal(t, ErrKindMaxDepthExceeded, err.Kind)
	assert.Equal(t, "max depth exceeded at line 1, column 2", err.Error())
}

func TestReport_ErrorJoinsExternalAndInternalMessages(t *testing.T) {
	var r Report
	r.AddExternalError(NewSyntaxError([]byte("a"), 0, "first"))
	r.AddInternalError(errors.New("second"))
	msg := r.Error()
	assert.Contains(t, msg, "first at line 1, column 1")
	assert.Contains(t, msg, "second")
	assert.Contains(t, msg, "; ")
}
