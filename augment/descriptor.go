package augment

import "github.com/vektah/gqlparser/v2/ast"

// RelationshipDescriptor captures the resolved facts about one directed use
// of a relationship type as a field on a node type. The driver builds one
// descriptor per use site; the descriptor is immutable for the duration of
// one augmentation call.
type RelationshipDescriptor struct {
	// TypeName is the node type declaring the relationship field.
	TypeName string

	// FieldName is the name of the relationship field on TypeName.
	FieldName string

	// OutputType is the name of the relationship's own type, carrying its
	// declared properties.
	OutputType string

	// FromType and ToType are the endpoint node type names, taken from the
	// relationship type's relation metadata.
	FromType string
	ToType   string

	// RelationshipName is the name of the relationship in the graph
	// (for example "KNOWS").
	RelationshipName string

	// PropertyInputValues are the relationship's own property definitions as
	// they appear on the relationship type, already resolved by the driver.
	// Only name and type survive into generated input types.
	PropertyInputValues []*ast.FieldDefinition

	// PropertyOutputFields are the relationship's own property definitions
	// carried into generated payload types.
	PropertyOutputFields []*ast.FieldDefinition
}

// settableInputs returns the property definitions a caller can actually
// populate, with computed properties filtered out. The data argument, the
// property input type, and the guard deciding whether either exists all work
// from this list so they cannot disagree: a relationship whose every property
// is computed behaves exactly like a property-free one.
func (d RelationshipDescriptor) settableInputs() []*ast.FieldDefinition {
	settable := make([]*ast.FieldDefinition, 0, len(d.PropertyInputValues))
	for _, f := range d.PropertyInputValues {
		if isComputed(f.Directives) {
			continue
		}
		settable = append(settable, f)
	}
	return settable
}
