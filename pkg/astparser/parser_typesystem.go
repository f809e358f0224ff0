package astparser

import (
	"github.com/wyrmgraph/gqlcore/pkg/ast"
	"github.com/wyrmgraph/gqlcore/pkg/token"
)

// parseTypeSystemDefinition dispatches to the eight SDL definition productions of §4.2
// once the caller has already identified the current token as one of their introducing
// keywords (and, where present, consumed a leading Description).
func (p *Parser) parseTypeSystemDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	switch string(p.currentToken.Value) {
	case token.KeywordSchema:
		return p.parseSchemaDefinition(desc, comment)
	case token.KeywordScalar:
		return p.parseScalarTypeDefinition(desc, comment)
	case token.KeywordType:
		return p.parseObjectTypeDefinition(desc, comment)
	case token.KeywordInterface:
		return p.parseInterfaceTypeDefinition(desc, comment)
	case token.KeywordUnion:
		return p.parseUnionTypeDefinition(desc, comment)
	case token.KeywordEnum:
		return p.parseEnumTypeDefinition(desc, comment)
	case token.KeywordInput:
		return p.parseInputObjectTypeDefinition(desc, comment)
	case token.KeywordDirective:
		return p.parseDirectiveDefinition(desc, comment)
	}
	p.failf(p.currentToken.Start, "Unexpected Name %q; expected a type system definition.", string(p.currentToken.Value))
	return ast.Node{}, false
}

// parseTypeSystemExtension implements the `extend` dispatch of §4.2/§4.5: every
// extension variant forbids a leading Description and requires at least one of its
// optional clauses to actually be present — a rule enforced per-variant below, since the
// shape alone can't express it.
func (p *Parser) parseTypeSystemExtension(comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordExtend) {
		return ast.Node{}, false
	}
	p.parseComment()

	switch {
	case p.peekKeyword(token.KeywordSchema):
		return p.parseSchemaExtension(start)
	case p.peekKeyword(token.KeywordScalar):
		return p.parseScalarTypeExtension(start)
	case p.peekKeyword(token.KeywordType):
		return p.parseObjectTypeExtension(start)
	case p.peekKeyword(token.KeywordInterface):
		return p.parseInterfaceTypeExtension(start)
	case p.peekKeyword(token.KeywordUnion):
		return p.parseUnionTypeExtension(start)
	case p.peekKeyword(token.KeywordEnum):
		return p.parseEnumTypeExtension(start)
	case p.peekKeyword(token.KeywordInput):
		return p.parseInputObjectTypeExtension(start)
	}
	p.failf(p.currentToken.Start, "Unexpected %s; expected a type to extend.", p.describeCurrent())
	return ast.Node{}, false
}

// --- SchemaDefinition / SchemaExtension ---

func (p *Parser) parseSchemaDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordSchema) {
		return ast.Node{}, false
	}

	sd := ast.SchemaDefinition{Description: desc, Comment: comment}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		sd.HasDirectives = true
		sd.Directives = dirs
	}

	if !p.expect(token.LBRACE) {
		return ast.Node{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RBRACE) {
		ref, ok := p.parseRootOperationTypeDefinition()
		if !ok {
			return ast.Node{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
	}
	if len(refs) == 0 {
		p.failf(start, "A schema definition must define at least one root operation type.")
		return ast.Node{}, false
	}
	if !p.expect(token.RBRACE) {
		return ast.Node{}, false
	}
	sd.RootOperationTypeDefinitions = refs
	sd.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindSchemaDefinition, Ref: p.document.AddSchemaDefinition(sd)}, true
}

func (p *Parser) parseRootOperationTypeDefinition() (int, bool) {
	start := p.currentToken.Start
	opType, ok := p.parseOperationType()
	if !ok {
		return -1, false
	}
	if !p.expect(token.COLON) {
		return -1, false
	}
	typeRef, ok := p.parseNamedType()
	if !ok {
		return -1, false
	}
	return p.document.AddRootOperationTypeDefinition(ast.RootOperationTypeDefinition{
		OperationType: opType, NamedType: typeRef, Location: p.loc(start),
	}), true
}

func (p *Parser) parseSchemaExtension(start uint32) (ast.Node, bool) {
	if !p.expectKeyword(token.KeywordSchema) {
		return ast.Node{}, false
	}

	se := ast.SchemaExtension{}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		se.HasDirectives = true
		se.Directives = dirs
	}

	p.parseComment()
	if p.peek(token.LBRACE) {
		if !p.advance() {
			return ast.Node{}, false
		}
		var refs []int
		p.parseComment()
		for !p.peek(token.RBRACE) {
			ref, ok := p.parseRootOperationTypeDefinition()
			if !ok {
				return ast.Node{}, false
			}
			refs = append(refs, ref)
			p.parseComment()
		}
		if len(refs) == 0 {
			p.failf(start, "A schema extension's operation type list must not be empty.")
			return ast.Node{}, false
		}
		if !p.expect(token.RBRACE) {
			return ast.Node{}, false
		}
		se.HasRootOperationTypeDefinitions = true
		se.RootOperationTypeDefinitions = refs
	}

	if !se.HasDirectives && !se.HasRootOperationTypeDefinitions {
		p.failf(start, "A schema extension must have at least one directive or root operation type definition.")
		return ast.Node{}, false
	}
	se.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindSchemaExtension, Ref: p.document.AddSchemaExtension(se)}, true
}

// --- ScalarTypeDefinition / ScalarTypeExtension ---

func (p *Parser) parseScalarTypeDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordScalar) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	std := ast.ScalarTypeDefinition{Description: desc, Name: name}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		std.HasDirectives = true
		std.Directives = dirs
	}
	std.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindScalarTypeDefinition, Ref: p.document.AddScalarTypeDefinition(std)}, true
}

func (p *Parser) parseScalarTypeExtension(start uint32) (ast.Node, bool) {
	if !p.expectKeyword(token.KeywordScalar) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}
	p.parseComment()
	if !p.peek(token.AT) {
		p.failf(p.currentToken.Start, "A scalar extension must have at least one directive.")
		return ast.Node{}, false
	}
	dirs, ok := p.parseDirectives()
	if !ok {
		return ast.Node{}, false
	}
	ste := ast.ScalarTypeExtension{Name: name, HasDirectives: true, Directives: dirs, Location: p.loc(start)}
	return ast.Node{Kind: ast.NodeKindScalarTypeExtension, Ref: p.document.AddScalarTypeExtension(ste)}, true
}

// --- ObjectTypeDefinition / ObjectTypeExtension ---

func (p *Parser) parseObjectTypeDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordType) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	otd := ast.ObjectTypeDefinition{Description: desc, Name: name}
	p.parseComment()
	if p.peekKeyword(token.KeywordImplements) {
		impl, ok := p.parseImplementsInterfaces()
		if !ok {
			return ast.Node{}, false
		}
		otd.HasImplementsInterfaces = true
		otd.ImplementsInterfaces = impl
	}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		otd.HasDirectives = true
		otd.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.LBRACE) {
		fields, ok := p.parseFieldsDefinition()
		if !ok {
			return ast.Node{}, false
		}
		otd.HasFieldDefinitions = true
		otd.FieldsDefinition = fields
	}
	otd.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindObjectTypeDefinition, Ref: p.document.AddObjectTypeDefinition(otd)}, true
}

func (p *Parser) parseObjectTypeExtension(start uint32) (ast.Node, bool) {
	if !p.expectKeyword(token.KeywordType) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	ote := ast.ObjectTypeExtension{Name: name}
	p.parseComment()
	if p.peekKeyword(token.KeywordImplements) {
		impl, ok := p.parseImplementsInterfaces()
		if !ok {
			return ast.Node{}, false
		}
		ote.HasImplementsInterfaces = true
		ote.ImplementsInterfaces = impl
	}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		ote.HasDirectives = true
		ote.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.LBRACE) {
		fields, ok := p.parseFieldsDefinition()
		if !ok {
			return ast.Node{}, false
		}
		ote.HasFieldDefinitions = true
		ote.FieldsDefinition = fields
	}

	if !ote.HasImplementsInterfaces && !ote.HasDirectives && !ote.HasFieldDefinitions {
		p.failf(start, "An object type extension must implement an interface, declare a directive, or add a field.")
		return ast.Node{}, false
	}
	ote.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindObjectTypeExtension, Ref: p.document.AddObjectTypeExtension(ote)}, true
}

// --- InterfaceTypeDefinition / InterfaceTypeExtension ---

func (p *Parser) parseInterfaceTypeDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordInterface) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	itd := ast.InterfaceTypeDefinition{Description: desc, Name: name}
	p.parseComment()
	if p.peekKeyword(token.KeywordImplements) {
		impl, ok := p.parseImplementsInterfaces()
		if !ok {
			return ast.Node{}, false
		}
		itd.HasImplementsInterfaces = true
		itd.ImplementsInterfaces = impl
	}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		itd.HasDirectives = true
		itd.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.LBRACE) {
		fields, ok := p.parseFieldsDefinition()
		if !ok {
			return ast.Node{}, false
		}
		itd.HasFieldDefinitions = true
		itd.FieldsDefinition = fields
	}
	itd.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindInterfaceTypeDefinition, Ref: p.document.AddInterfaceTypeDefinition(itd)}, true
}

func (p *Parser) parseInterfaceTypeExtension(start uint32) (ast.Node, bool) {
	if !p.expectKeyword(token.KeywordInterface) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	ite := ast.InterfaceTypeExtension{Name: name}
	p.parseComment()
	if p.peekKeyword(token.KeywordImplements) {
		impl, ok := p.parseImplementsInterfaces()
		if !ok {
			return ast.Node{}, false
		}
		ite.HasImplementsInterfaces = true
		ite.ImplementsInterfaces = impl
	}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		ite.HasDirectives = true
		ite.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.LBRACE) {
		fields, ok := p.parseFieldsDefinition()
		if !ok {
			return ast.Node{}, false
		}
		ite.HasFieldDefinitions = true
		ite.FieldsDefinition = fields
	}

	if !ite.HasImplementsInterfaces && !ite.HasDirectives && !ite.HasFieldDefinitions {
		p.failf(start, "An interface type extension must implement an interface, declare a directive, or add a field.")
		return ast.Node{}, false
	}
	ite.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindInterfaceTypeExtension, Ref: p.document.AddInterfaceTypeExtension(ite)}, true
}

// --- UnionTypeDefinition / UnionTypeExtension ---

func (p *Parser) parseUnionTypeDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordUnion) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	utd := ast.UnionTypeDefinition{Description: desc, Name: name}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		utd.HasDirectives = true
		utd.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.EQUALS) {
		members, ok := p.parseUnionMemberTypes()
		if !ok {
			return ast.Node{}, false
		}
		utd.HasUnionMemberTypes = true
		utd.UnionMemberTypes = members
	}
	utd.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindUnionTypeDefinition, Ref: p.document.AddUnionTypeDefinition(utd)}, true
}

func (p *Parser) parseUnionTypeExtension(start uint32) (ast.Node, bool) {
	if !p.expectKeyword(token.KeywordUnion) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	ute := ast.UnionTypeExtension{Name: name}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		ute.HasDirectives = true
		ute.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.EQUALS) {
		members, ok := p.parseUnionMemberTypes()
		if !ok {
			return ast.Node{}, false
		}
		ute.HasUnionMemberTypes = true
		ute.UnionMemberTypes = members
	}

	if !ute.HasDirectives && !ute.HasUnionMemberTypes {
		p.failf(start, "A union type extension must declare a directive or add a member type.")
		return ast.Node{}, false
	}
	ute.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindUnionTypeExtension, Ref: p.document.AddUnionTypeExtension(ute)}, true
}

// --- EnumTypeDefinition / EnumTypeExtension ---

func (p *Parser) parseEnumTypeDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordEnum) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	etd := ast.EnumTypeDefinition{Description: desc, Name: name}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		etd.HasDirectives = true
		etd.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.LBRACE) {
		values, ok := p.parseEnumValuesDefinition()
		if !ok {
			return ast.Node{}, false
		}
		etd.HasEnumValuesDefinition = true
		etd.EnumValuesDefinition = values
	}
	etd.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindEnumTypeDefinition, Ref: p.document.AddEnumTypeDefinition(etd)}, true
}

func (p *Parser) parseEnumTypeExtension(start uint32) (ast.Node, bool) {
	if !p.expectKeyword(token.KeywordEnum) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	ete := ast.EnumTypeExtension{Name: name}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		ete.HasDirectives = true
		ete.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.LBRACE) {
		values, ok := p.parseEnumValuesDefinition()
		if !ok {
			return ast.Node{}, false
		}
		ete.HasEnumValuesDefinition = true
		ete.EnumValuesDefinition = values
	}

	if !ete.HasDirectives && !ete.HasEnumValuesDefinition {
		p.failf(start, "An enum type extension must declare a directive or add a value.")
		return ast.Node{}, false
	}
	ete.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindEnumTypeExtension, Ref: p.document.AddEnumTypeExtension(ete)}, true
}

// --- InputObjectTypeDefinition / InputObjectTypeExtension ---

func (p *Parser) parseInputObjectTypeDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordInput) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	iod := ast.InputObjectTypeDefinition{Description: desc, Name: name}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		iod.HasDirectives = true
		iod.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.LBRACE) {
		fields, ok := p.parseInputFieldsDefinition()
		if !ok {
			return ast.Node{}, false
		}
		iod.HasInputFieldsDefinition = true
		iod.InputFieldsDefinition = fields
	}
	iod.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindInputObjectTypeDefinition, Ref: p.document.AddInputObjectTypeDefinition(iod)}, true
}

func (p *Parser) parseInputObjectTypeExtension(start uint32) (ast.Node, bool) {
	if !p.expectKeyword(token.KeywordInput) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	ioe := ast.InputObjectTypeExtension{Name: name}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return ast.Node{}, false
		}
		ioe.HasDirectives = true
		ioe.Directives = dirs
	}
	p.parseComment()
	if p.peek(token.LBRACE) {
		fields, ok := p.parseInputFieldsDefinition()
		if !ok {
			return ast.Node{}, false
		}
		ioe.HasInputFieldsDefinition = true
		ioe.InputFieldsDefinition = fields
	}

	if !ioe.HasDirectives && !ioe.HasInputFieldsDefinition {
		p.failf(start, "An input object type extension must declare a directive or add a field.")
		return ast.Node{}, false
	}
	ioe.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindInputObjectTypeExtension, Ref: p.document.AddInputObjectTypeExtension(ioe)}, true
}

// --- DirectiveDefinition ---

func (p *Parser) parseDirectiveDefinition(desc ast.Description, comment *ast.Comment) (ast.Node, bool) {
	if !p.enterNode() {
		return ast.Node{}, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordDirective) {
		return ast.Node{}, false
	}
	if !p.expect(token.AT) {
		return ast.Node{}, false
	}
	name, ok := p.expectName()
	if !ok {
		return ast.Node{}, false
	}

	dd := ast.DirectiveDefinition{Description: desc, Name: name}
	p.parseComment()
	if p.peek(token.LPAREN) {
		args, ok := p.parseArgumentsDefinition()
		if !ok {
			return ast.Node{}, false
		}
		dd.HasArgumentsDefinitions = true
		dd.ArgumentsDefinition = args
	}
	p.parseComment()
	if p.peekKeyword(token.KeywordRepeatable) {
		if !p.advance() {
			return ast.Node{}, false
		}
		dd.Repeatable = true
	}
	if !p.expectKeyword(token.KeywordOn) {
		return ast.Node{}, false
	}
	locs, ok := p.parseDirectiveLocations()
	if !ok {
		return ast.Node{}, false
	}
	dd.DirectiveLocations = locs
	dd.Location = p.loc(start)
	return ast.Node{Kind: ast.NodeKindDirectiveDefinition, Ref: p.document.AddDirectiveDefinition(dd)}, true
}

// --- shared sub-productions ---

// expectName requires a NAME and returns its ByteSliceReference, advancing past it.
func (p *Parser) expectName() (ast.ByteSliceReference, bool) {
	p.parseComment()
	if !p.peek(token.NAME) {
		p.failf(p.currentToken.Start, "Expected Name, found %s.", p.describeCurrent())
		return ast.ByteSliceReference{}, false
	}
	ref := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	if !p.advance() {
		return ast.ByteSliceReference{}, false
	}
	return ref, true
}

// parseNamedType parses a bare NAME as a TypeKindNamed Type (used where the grammar
// disallows list/non-null wrapping, e.g. RootOperationTypeDefinition, implements
// members, union members).
func (p *Parser) parseNamedType() (int, bool) {
	p.parseComment()
	start := p.currentToken.Start
	if !p.peek(token.NAME) {
		p.failf(start, "Expected Name, found %s.", p.describeCurrent())
		return -1, false
	}
	nameRef := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	if !p.advance() {
		return -1, false
	}
	return p.document.AddNamedType(nameRef, p.loc(start)), true
}

// parseOptionalDescription consumes a leading STRING/BLOCKSTRING as a Description if one
// is present, or returns the zero Description otherwise — used by productions where a
// description is optional but requires no following-keyword lookahead (§4.5 reserves the
// lookahead for top-level definitions only; nested productions need none, since the
// grammar already committed to a definition kind by the time these run).
func (p *Parser) parseOptionalDescription() (ast.Description, bool) {
	p.parseComment()
	if !p.peek(token.STRING) && !p.peek(token.BLOCKSTRING) {
		return ast.Description{}, true
	}
	content := p.document.Input.AppendInputBytes(p.currentToken.Value)
	desc := ast.Description{
		Content:       content,
		IsBlockString: p.currentToken.Kind == token.BLOCKSTRING,
		IsDefined:     true,
		Location:      ast.Location{Start: p.currentToken.Start, End: p.currentToken.End},
	}
	if p.opts.ignoreLocations {
		desc.Location = ast.Location{}
	}
	if !p.advance() {
		return ast.Description{}, false
	}
	return desc, true
}

// parseImplementsInterfaces implements `'implements' '&'? NamedType ('&' NamedType)*`.
func (p *Parser) parseImplementsInterfaces() (ast.ImplementsInterfacesList, bool) {
	start := p.currentToken.Start
	if !p.expectKeyword(token.KeywordImplements) {
		return ast.ImplementsInterfacesList{}, false
	}
	p.parseComment()
	if p.peek(token.AMP) {
		if !p.advance() {
			return ast.ImplementsInterfacesList{}, false
		}
	}
	var refs []int
	for {
		ref, ok := p.parseNamedType()
		if !ok {
			return ast.ImplementsInterfacesList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
		if !p.peek(token.AMP) {
			break
		}
		if !p.advance() {
			return ast.ImplementsInterfacesList{}, false
		}
	}
	return ast.ImplementsInterfacesList{Refs: refs, Location: p.loc(start)}, true
}

// parseFieldsDefinition implements `'{' FieldDefinition+ '}'`.
func (p *Parser) parseFieldsDefinition() (ast.FieldDefinitionList, bool) {
	start := p.currentToken.Start
	if !p.expect(token.LBRACE) {
		return ast.FieldDefinitionList{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RBRACE) {
		ref, ok := p.parseFieldDefinition()
		if !ok {
			return ast.FieldDefinitionList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
	}
	if len(refs) == 0 {
		p.failf(start, "A fields definition must declare at least one field.")
		return ast.FieldDefinitionList{}, false
	}
	if !p.expect(token.RBRACE) {
		return ast.FieldDefinitionList{}, false
	}
	return ast.FieldDefinitionList{Refs: refs, Location: p.loc(start)}, true
}

func (p *Parser) parseFieldDefinition() (int, bool) {
	if !p.enterNode() {
		return -1, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	desc, ok := p.parseOptionalDescription()
	if !ok {
		return -1, false
	}
	name, ok := p.expectName()
	if !ok {
		return -1, false
	}

	fd := ast.FieldDefinition{Description: desc, Name: name}
	p.parseComment()
	if p.peek(token.LPAREN) {
		args, ok := p.parseArgumentsDefinition()
		if !ok {
			return -1, false
		}
		fd.HasArgumentsDefinitions = true
		fd.ArgumentsDefinition = args
	}
	if !p.expect(token.COLON) {
		return -1, false
	}
	typeRef, ok := p.parseType()
	if !ok {
		return -1, false
	}
	fd.Type = typeRef
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return -1, false
		}
		fd.HasDirectives = true
		fd.Directives = dirs
	}
	fd.Location = p.loc(start)
	return p.document.AddFieldDefinition(fd), true
}

// parseArgumentsDefinition implements `'(' InputValueDefinition+ ')'`.
func (p *Parser) parseArgumentsDefinition() (ast.InputValueDefinitionList, bool) {
	start := p.currentToken.Start
	if !p.expect(token.LPAREN) {
		return ast.InputValueDefinitionList{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RPAREN) {
		ref, ok := p.parseInputValueDefinition()
		if !ok {
			return ast.InputValueDefinitionList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
	}
	if len(refs) == 0 {
		p.failf(start, "An arguments definition must declare at least one argument.")
		return ast.InputValueDefinitionList{}, false
	}
	if !p.expect(token.RPAREN) {
		return ast.InputValueDefinitionList{}, false
	}
	return ast.InputValueDefinitionList{Refs: refs, Location: p.loc(start)}, true
}

// parseInputFieldsDefinition implements `'{' InputValueDefinition+ '}'`.
func (p *Parser) parseInputFieldsDefinition() (ast.InputValueDefinitionList, bool) {
	start := p.currentToken.Start
	if !p.expect(token.LBRACE) {
		return ast.InputValueDefinitionList{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RBRACE) {
		ref, ok := p.parseInputValueDefinition()
		if !ok {
			return ast.InputValueDefinitionList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
	}
	if len(refs) == 0 {
		p.failf(start, "An input fields definition must declare at least one field.")
		return ast.InputValueDefinitionList{}, false
	}
	if !p.expect(token.RBRACE) {
		return ast.InputValueDefinitionList{}, false
	}
	return ast.InputValueDefinitionList{Refs: refs, Location: p.loc(start)}, true
}

// parseInputValueDefinition implements `Description? Name ':' Type DefaultValue?
// Directives?` — shared by ArgumentsDefinition and InputFieldsDefinition (§3).
func (p *Parser) parseInputValueDefinition() (int, bool) {
	if !p.enterNode() {
		return -1, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	desc, ok := p.parseOptionalDescription()
	if !ok {
		return -1, false
	}
	name, ok := p.expectName()
	if !ok {
		return -1, false
	}
	if !p.expect(token.COLON) {
		return -1, false
	}
	typeRef, ok := p.parseType()
	if !ok {
		return -1, false
	}

	ivd := ast.InputValueDefinition{Description: desc, Name: name, Type: typeRef}
	p.parseComment()
	if p.peek(token.EQUALS) {
		if !p.advance() {
			return -1, false
		}
		value, ok := p.parseValue(true)
		if !ok {
			return -1, false
		}
		ivd.HasDefaultValue = true
		ivd.DefaultValue = value
	}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return -1, false
		}
		ivd.HasDirectives = true
		ivd.Directives = dirs
	}
	ivd.Location = p.loc(start)
	return p.document.AddInputValueDefinition(ivd), true
}

// parseUnionMemberTypes implements `'=' '|'? NamedType ('|' NamedType)*`.
func (p *Parser) parseUnionMemberTypes() (ast.UnionMemberTypeList, bool) {
	start := p.currentToken.Start
	if !p.expect(token.EQUALS) {
		return ast.UnionMemberTypeList{}, false
	}
	p.parseComment()
	if p.peek(token.PIPE) {
		if !p.advance() {
			return ast.UnionMemberTypeList{}, false
		}
	}
	var refs []int
	for {
		ref, ok := p.parseNamedType()
		if !ok {
			return ast.UnionMemberTypeList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
		if !p.peek(token.PIPE) {
			break
		}
		if !p.advance() {
			return ast.UnionMemberTypeList{}, false
		}
	}
	return ast.UnionMemberTypeList{Refs: refs, Location: p.loc(start)}, true
}

// parseEnumValuesDefinition implements `'{' EnumValueDefinition+ '}'`.
func (p *Parser) parseEnumValuesDefinition() (ast.EnumValueDefinitionList, bool) {
	start := p.currentToken.Start
	if !p.expect(token.LBRACE) {
		return ast.EnumValueDefinitionList{}, false
	}
	var refs []int
	p.parseComment()
	for !p.peek(token.RBRACE) {
		ref, ok := p.parseEnumValueDefinition()
		if !ok {
			return ast.EnumValueDefinitionList{}, false
		}
		refs = append(refs, ref)
		p.parseComment()
	}
	if len(refs) == 0 {
		p.failf(start, "An enum values definition must declare at least one value.")
		return ast.EnumValueDefinitionList{}, false
	}
	if !p.expect(token.RBRACE) {
		return ast.EnumValueDefinitionList{}, false
	}
	return ast.EnumValueDefinitionList{Refs: refs, Location: p.loc(start)}, true
}

// parseEnumValueDefinition implements `Description? EnumValue Directives?`, where
// EnumValue is a Name forbidden from spelling true/false/null (§4.2's boundary case).
func (p *Parser) parseEnumValueDefinition() (int, bool) {
	if !p.enterNode() {
		return -1, false
	}
	defer p.leaveNode()

	start := p.currentToken.Start
	desc, ok := p.parseOptionalDescription()
	if !ok {
		return -1, false
	}
	if !p.peek(token.NAME) {
		p.failf(p.currentToken.Start, "Expected Name, found %s.", p.describeCurrent())
		return -1, false
	}
	word := string(p.currentToken.Value)
	if word == token.KeywordTrue || word == token.KeywordFalse || word == token.KeywordNull {
		p.failf(p.currentToken.Start, "%q is not a legal enum value name.", word)
		return -1, false
	}
	value := ast.ByteSliceReference{Start: p.currentToken.Start, End: p.currentToken.End}
	if !p.advance() {
		return -1, false
	}

	evd := ast.EnumValueDefinition{Description: desc, EnumValue: value}
	p.parseComment()
	if p.peek(token.AT) {
		dirs, ok := p.parseDirectives()
		if !ok {
			return -1, false
		}
		evd.HasDirectives = true
		evd.Directives = dirs
	}
	evd.Location = p.loc(start)
	return p.document.AddEnumValueDefinition(evd), true
}

// parseDirectiveLocations implements `'|'? Name ('|' Name)*`, validating each Name
// against the fixed DirectiveLocation vocabulary (§4.2/GLOSSARY).
func (p *Parser) parseDirectiveLocations() ([]ast.DirectiveLocation, bool) {
	p.parseComment()
	if p.peek(token.PIPE) {
		if !p.advance() {
			return nil, false
		}
	}
	var locs []ast.DirectiveLocation
	for {
		p.parseComment()
		if !p.peek(token.NAME) {
			p.failf(p.currentToken.Start, "Expected a directive location, found %s.", p.describeCurrent())
			return nil, false
		}
		word := string(p.currentToken.Value)
		loc, ok := ast.DirectiveLocationFromName(word)
		if !ok {
			p.failf(p.currentToken.Start, "%q is not a valid directive location.", word)
			return nil, false
		}
		if !p.advance() {
			return nil, false
		}
		locs = append(locs, loc)
		p.parseComment()
		if !p.peek(token.PIPE) {
			break
		}
		if !p.advance() {
			return nil, false
		}
	}
	return locs, true
}
