package augment

import "github.com/vektah/gqlparser/v2/ast"

// relationshipInputType synthesizes the _<OutputType>Input property input
// type from the relationship's settable properties. Computed properties are
// excluded: a field derived by a Cypher expression has no settable input.
// Only name and type survive; every other piece of field metadata is
// stripped. Callers must guard by name before registering, the synthesizer
// itself does not check for a prior definition.
func relationshipInputType(d RelationshipDescriptor) *ast.Definition {
	settable := d.settableInputs()
	fields := make(ast.FieldList, 0, len(settable))
	for _, f := range settable {
		fields = append(fields, &ast.FieldDefinition{
			Name: f.Name,
			Type: f.Type,
		})
	}
	return &ast.Definition{
		Kind:   ast.InputObject,
		Name:   RelationshipInputName(d.OutputType),
		Fields: fields,
	}
}

// payloadType synthesizes the _<MutationName>Payload object type returned by
// a generated mutation field. Every payload carries the endpoint node fields;
// creations additionally carry the relationship's own property fields. The
// payload's single relation directive binds it back to the relationship so
// the translator recognizes it as a relationship view.
func payloadType(a MutationAction, mutationName string, d RelationshipDescriptor) *ast.Definition {
	fields := NodeOutputFields(d.FromType, d.ToType)
	if a == ActionCreate {
		for _, f := range d.PropertyOutputFields {
			out := &ast.FieldDefinition{
				Name:       f.Name,
				Type:       f.Type,
				Directives: f.Directives,
				Arguments:  f.Arguments,
			}
			if isComputed(f.Directives) {
				// The translator cannot yet resolve argument-bearing computed
				// fields on relationship payloads; drop the arguments until
				// it can.
				out.Arguments = nil
			}
			fields = append(fields, out)
		}
	}
	return &ast.Definition{
		Kind:   ast.Object,
		Name:   PayloadTypeName(mutationName),
		Fields: fields,
		Directives: ast.DirectiveList{
			RelationMeta{
				Name: d.RelationshipName,
				From: d.FromType,
				To:   d.ToType,
			}.build(),
		},
	}
}
