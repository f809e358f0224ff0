package ast

// index is a lazily-built lookup table from a top-level definition's name to its Node,
// grounded on the teacher's definition.Index.FirstNodeByNameBytes /
// FirstNodeByNameStr usage in v2/pkg/asttransform/baseschema.go. It is rebuilt on first
// use after any AddRootNode call invalidates it; the parser never queries it itself
// (§2's "not used by the parser itself" applies equally to this printer-facing lookup
// table), only external consumers (printers, schema tooling) do.
type index struct {
	byName map[string]Node
	built  bool
}

func (ix *index) invalidate() {
	ix.built = false
	ix.byName = nil
}

func (d *Document) buildIndexIfNeeded() {
	if d.index.built {
		return
	}
	d.index.byName = make(map[string]Node, len(d.RootNodes))
	for _, node := range d.RootNodes {
		name, ok := d.rootNodeName(node)
		if !ok {
			continue
		}
		key := string(name)
		if _, exists := d.index.byName[key]; !exists {
			d.index.byName[key] = node
		}
	}
	d.index.built = true
}

func (d *Document) rootNodeName(node Node) ([]byte, bool) {
	switch node.Kind {
	case NodeKindObjectTypeDefinition:
		return d.Input.ByteSlice(d.ObjectTypeDefinitions[node.Ref].Name), true
	case NodeKindInterfaceTypeDefinition:
		return d.Input.ByteSlice(d.InterfaceTypeDefinitions[node.Ref].Name), true
	case NodeKindUnionTypeDefinition:
		return d.Input.ByteSlice(d.UnionTypeDefinitions[node.Ref].Name), true
	case NodeKindEnumTypeDefinition:
		return d.Input.ByteSlice(d.EnumTypeDefinitions[node.Ref].Name), true
	case NodeKindScalarTypeDefinition:
		return d.Input.ByteSlice(d.ScalarTypeDefinitions[node.Ref].Name), true
	case NodeKindInputObjectTypeDefinition:
		return d.Input.ByteSlice(d.InputObjectTypeDefinitions[node.Ref].Name), true
	case NodeKindDirectiveDefinition:
		return d.Input.ByteSlice(d.DirectiveDefinitions[node.Ref].Name), true
	case NodeKindFragmentDefinition:
		return d.Input.ByteSlice(d.FragmentDefinitions[node.Ref].Name), true
	case NodeKindOperationDefinition:
		if d.OperationDefinitions[node.Ref].HasName {
			return d.Input.ByteSlice(d.OperationDefinitions[node.Ref].Name), true
		}
		return nil, false
	default:
		return nil, false
	}
}

// FirstNodeByNameBytes returns the first top-level definition named name.
func (d *Document) FirstNodeByNameBytes(name []byte) (Node, bool) {
	d.buildIndexIfNeeded()
	node, ok := d.index.byName[string(name)]
	return node, ok
}

// FirstNodeByNameString is the string-argument form of FirstNodeByNameBytes.
func (d *Document) FirstNodeByNameString(name string) (Node, bool) {
	d.buildIndexIfNeeded()
	node, ok := d.index.byName[name]
	return node, ok
}
