package astparser

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/operationreport"
)

// ParseGraphqlDocumentString is the one-shot convenience entry point of §6: allocate a
// fresh Document and Parser, parse sourceText, and return the populated Document or the
// collected errors. Callers that parse many documents should instead hold a *Parser and
// *ast.Document across calls (via NewParser/ast.NewDocument and Document.Reset) to avoid
// reallocating the arena every time.
func ParseGraphqlDocumentString(sourceText string, opts ...Option) (*ast.Document, operationreport.Report) {
	document := ast.NewDocument()
	document.Input.ResetInputString(sourceText)
	report := operationreport.Report{}
	parser := NewParser()
	parser.Parse(document, &report, opts...)
	return document, report
}

// ParseGraphqlDocumentBytes is the []byte-argument form of ParseGraphqlDocumentString.
func ParseGraphqlDocumentBytes(sourceBytes []byte, opts ...Option) (*ast.Document, operationreport.Report) {
	document := ast.NewDocument()
	document.Input.ResetInputBytes(sourceBytes)
	report := operationreport.Report{}
	parser := NewParser()
	parser.Parse(document, &report, opts...)
	return document, report
}
