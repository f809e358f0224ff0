// Package operationreport implements the error model (component G): a syntax error
// carries (message, source, offset); a max-depth error carries (source, offset). Both
// are accumulated onto a Report, mirroring the teacher's
// operationreport.Report/report.HasErrors()/report.AddInternalError(err) shape used
// throughout github.com/wundergraph/graphql-go-tools/v2 (see engine/plan/planner.go).
package operationreport

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/wyrmgraph/gqlcore/pkg/position"
)

// ExternalError is a diagnostic safe to surface to a caller: a syntax error or a
// max-depth violation. Source/Offset let a caller compute (line, column) via
// pkg/position without the Report needing to depend on it being precomputed.
type ExternalError struct {
	Message string
	Source  []byte
	Offset  uint32
	// Kind discriminates a syntax error from a max-depth error for callers that want to
	// branch on it (e.g. to retry with a larger MaxDepth).
	Kind ExternalErrorKind
}

// ExternalErrorKind discriminates the two externally-visible error taxonomies named in
// §4.4/§7: syntactic failures and structural (depth) failures.
type ExternalErrorKind int

const (
	ErrKindSyntax ExternalErrorKind = iota
	ErrKindMaxDepthExceeded
)

// Error renders "<message> at line L, column C", matching §7's required diagnostic
// shape.
func (e ExternalError) Error() string {
	pos := position.FromOffset(e.Source, e.Offset)
	if e.Message == "" {
		return fmt.Sprintf("max depth exceeded at line %d, column %d", pos.Line, pos.Column)
	}
	return fmt.Sprintf("%s at line %d, column %d", e.Message, pos.Line, pos.Column)
}

// NewSyntaxError builds a SyntaxError{message, source, offset} per §4.1/§4.4.
func NewSyntaxError(source []byte, offset uint32, message string) ExternalError {
	return ExternalError{Message: message, Source: source, Offset: offset, Kind: ErrKindSyntax}
}

// NewMaxDepthExceededError builds a MaxDepthExceeded{source, offset} per §4.4.
func NewMaxDepthExceededError(source []byte, offset uint32) ExternalError {
	return ExternalError{Message: "", Source: source, Offset: offset, Kind: ErrKindMaxDepthExceeded}
}

// Report aggregates the errors raised during a single parse call. §4.2/§9 specify no
// error recovery: a Report used by astparser.Parser holds at most one ExternalError,
// since parsing stops at the first syntactic failure. InternalErrors is for defects in
// the parser's own bookkeeping (never raised by well-formed input), wrapped with
// github.com/pkg/errors so a stack trace survives to the caller.
type Report struct {
	ExternalErrors []ExternalError
	InternalErrors []error
}

// HasErrors reports whether any error, external or internal, has been recorded.
func (r *Report) HasErrors() bool {
	return len(r.ExternalErrors) > 0 || len(r.InternalErrors) > 0
}

// AddExternalError appends a caller-visible diagnostic.
func (r *Report) AddExternalError(err ExternalError) {
	r.ExternalErrors = append(r.ExternalErrors, err)
}

// AddInternalError wraps and appends a non-syntactic internal fault.
func (r *Report) AddInternalError(err error) {
	r.InternalErrors = append(r.InternalErrors, errors.WithStack(err))
}

// Reset clears the report for reuse across repeated parses (the teacher reuses a single
// Report value per Planner.Plan call in the same way).
func (r *Report) Reset() {
	r.ExternalErrors = r.ExternalErrors[:0]
	r.InternalErrors = r.InternalErrors[:0]
}

// Error implements error so a *Report can be returned/propagated directly, as the
// teacher does when it returns report from MergeDefinitionWithBaseSchema.
func (r *Report) Error() string {
	var sb strings.Builder
	for i, e := range r.ExternalErrors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	for i, e := range r.InternalErrors {
		if i > 0 || len(r.ExternalErrors) > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}
