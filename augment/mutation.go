package augment

import "github.com/vektah/gqlparser/v2/ast"

// registerMutationField assembles the mutation field for one action and
// appends it to the Mutation root's field list. The field's output type is
// the payload type named by the same mutation name; the payload itself is
// synthesized by the orchestrator. Actions outside the closed enumeration
// are a silent no-op so future enum growth cannot register half-named
// fields. Returns the registries for chaining.
func registerMutationField(a MutationAction, d RelationshipDescriptor, reg Registries, cfg Config) Registries {
	if !a.Valid() {
		return reg
	}
	mutation := reg.Operations[OperationMutation]
	if mutation == nil {
		return reg
	}
	name := MutationFieldName(a, d.TypeName, d.FieldName)
	mutation.Fields = append(mutation.Fields, &ast.FieldDefinition{
		Name:       name,
		Type:       ast.NamedType(PayloadTypeName(name), nil),
		Arguments:  mutationArguments(a, d),
		Directives: mutationDirectives(a, d, cfg),
	})
	return reg
}

// AugmentRelationshipMutations synthesizes the mutation API for one
// relationship field use site: an Add and a Remove field on the Mutation
// root, their payload types, and for Add the relationship property input
// type when the relationship has settable properties.
// The pass is a no-op when the schema declares no Mutation root or
// when configuration rules the endpoint types out. A field name already
// present on the Mutation root skips that action, which keeps the pass
// idempotent when several use sites or repeated runs converge on the same
// generated name. The type-definition registry is never touched; it is
// threaded through only so passes compose uniformly.
func AugmentRelationshipMutations(d RelationshipDescriptor, reg Registries, cfg Config) Registries {
	mutation := reg.Operations[OperationMutation]
	if mutation == nil {
		return reg
	}
	if !ShouldAugmentRelationshipField(cfg, OperationMutation, d.FromType, d.ToType) {
		return reg
	}
	for _, action := range mutationActions {
		name := MutationFieldName(action, d.TypeName, d.FieldName)
		if mutation.Fields.ForName(name) != nil {
			continue
		}
		reg = registerMutationField(action, d, reg, cfg)
		reg.Generated.Put(payloadType(action, name, d))
		if action == ActionCreate && len(d.settableInputs()) > 0 {
			reg.Generated.Put(relationshipInputType(d))
		}
	}
	return reg
}
