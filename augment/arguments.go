package augment

import "github.com/vektah/gqlparser/v2/ast"

// mutationArguments builds the argument list for a generated mutation field.
// The order is fixed: from, to, then data. The from and to selectors are
// required for every action; the data payload is appended only for creations
// on relationships with at least one settable property, since property data
// is irrelevant to deletion and a computed-only relationship has nothing a
// caller could pass.
func mutationArguments(a MutationAction, d RelationshipDescriptor) ast.ArgumentDefinitionList {
	args := ast.ArgumentDefinitionList{
		{
			Name: "from",
			Type: ast.NonNullNamedType(NodeInputName(d.FromType), nil),
		},
		{
			Name: "to",
			Type: ast.NonNullNamedType(NodeInputName(d.ToType), nil),
		},
	}
	if a == ActionCreate && len(d.settableInputs()) > 0 {
		args = append(args, &ast.ArgumentDefinition{
			Name: "data",
			Type: ast.NonNullNamedType(RelationshipInputName(d.OutputType), nil),
		})
	}
	return args
}
