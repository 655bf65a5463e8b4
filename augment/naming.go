package augment

import "github.com/go-openapi/inflect"

// MutationFieldName is the single authority for generated mutation field
// names: "<Label><TypeName><FieldName>" with the field name's first letter
// capitalized, for example "AddPersonKnows". The name is a pure function of
// its inputs; no other code may assemble mutation field names. An empty
// fieldName is a programmer error and panics in the capitalization step.
func MutationFieldName(a MutationAction, typeName, fieldName string) string {
	return a.Label() + typeName + inflect.Capitalize(fieldName)
}

// NodeInputName returns the name of the selector input type for a node type.
// The type itself is synthesized by the node selection pass; mutation
// arguments only reference it by name.
func NodeInputName(typeName string) string {
	return "_" + typeName + "Input"
}

// RelationshipInputName returns the name of the property input type for a
// relationship type. One input type serves every use site of the
// relationship, regardless of how many fields reference it.
func RelationshipInputName(outputType string) string {
	return "_" + outputType + "Input"
}

// PayloadTypeName returns the name of the payload object type returned by a
// generated mutation field.
func PayloadTypeName(mutationName string) string {
	return "_" + mutationName + "Payload"
}
