package augment

import "github.com/vektah/gqlparser/v2/ast"

// NodeOutputFields builds the endpoint fields every relationship payload
// carries: the from and to node selections, typed by the endpoint node
// types.
func NodeOutputFields(fromType, toType string) ast.FieldList {
	return ast.FieldList{
		{Name: "from", Type: ast.NamedType(fromType, nil)},
		{Name: "to", Type: ast.NamedType(toType, nil)},
	}
}

// AugmentNodeSelectionInput synthesizes the _<Type>Input selector input for
// a node type. Mutation arguments select their endpoint nodes through this
// type, matching on the node's primary key. The pass skips nodes that
// already have a selector (generated or user-declared) and nodes with no
// eligible key field.
func AugmentNodeSelectionInput(node *ast.Definition, reg Registries) Registries {
	name := NodeInputName(node.Name)
	if reg.Generated.Has(name) || reg.TypeDefs.Has(name) {
		return reg
	}
	pk := primaryKeyField(node)
	if pk == nil {
		return reg
	}
	reg.Generated.Put(&ast.Definition{
		Kind: ast.InputObject,
		Name: name,
		Fields: ast.FieldList{{
			Name: pk.Name,
			Type: ast.NonNullNamedType(pk.Type.Name(), nil),
		}},
	})
	return reg
}

// primaryKeyField picks the node field mutations select by: the id field if
// the node declares one, otherwise the first stored non-list field. Computed
// fields cannot key a selection.
func primaryKeyField(node *ast.Definition) *ast.FieldDefinition {
	if f := node.Fields.ForName("id"); f != nil && !isComputed(f.Directives) {
		return f
	}
	for _, f := range node.Fields {
		if f.Type.NamedType == "" || isComputed(f.Directives) {
			continue
		}
		return f
	}
	return nil
}
