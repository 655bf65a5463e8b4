package augment

import "github.com/vektah/gqlparser/v2/ast"

// DirectiveKind enumerates the closed set of directives Grafton reads or
// writes. Directives are matched by kind, never by ad-hoc string lookup at
// call sites; Name is the single place the SDL spelling lives.
type DirectiveKind int

const (
	// KindRelation marks a relationship type and binds it to its graph
	// relationship and endpoint node types.
	KindRelation DirectiveKind = iota
	// KindCypher marks a field computed by a Cypher expression.
	KindCypher
	// KindMutationMeta binds a generated mutation field to the relationship
	// it mutates.
	KindMutationMeta
	// KindIsAuthenticated requires an authenticated request.
	KindIsAuthenticated
	// KindHasRole requires one of a set of roles.
	KindHasRole
	// KindHasScope requires a set of authorization scopes.
	KindHasScope
)

// Name returns the directive's SDL name.
func (k DirectiveKind) Name() string {
	switch k {
	case KindRelation:
		return "relation"
	case KindCypher:
		return "cypher"
	case KindMutationMeta:
		return "MutationMeta"
	case KindIsAuthenticated:
		return "isAuthenticated"
	case KindHasRole:
		return "hasRole"
	case KindHasScope:
		return "hasScope"
	default:
		return ""
	}
}

// MutationMeta is the metadata directive attached to every generated
// mutation field. The downstream translator reads it to know which
// relationship to traverse, much like a foreign-key annotation.
type MutationMeta struct {
	Relationship string
	From         string
	To           string
}

// build converts the metadata to its AST directive form.
func (m MutationMeta) build() *ast.Directive {
	return &ast.Directive{
		Name: KindMutationMeta.Name(),
		Arguments: ast.ArgumentList{
			stringArgument("relationship", m.Relationship),
			stringArgument("from", m.From),
			stringArgument("to", m.To),
		},
	}
}

// MutationMetaOf extracts the mutation metadata from a directive list.
func MutationMetaOf(list ast.DirectiveList) (MutationMeta, bool) {
	d := list.ForName(KindMutationMeta.Name())
	if d == nil {
		return MutationMeta{}, false
	}
	return MutationMeta{
		Relationship: stringArgumentValue(d, "relationship"),
		From:         stringArgumentValue(d, "from"),
		To:           stringArgumentValue(d, "to"),
	}, true
}

// RelationMeta is the relation directive carried by relationship types and
// by generated payload types. On a payload it lets the translator recognize
// the shape as a relationship view rather than a plain node view.
type RelationMeta struct {
	Name string
	From string
	To   string
}

// build converts the metadata to its AST directive form.
func (r RelationMeta) build() *ast.Directive {
	return &ast.Directive{
		Name: KindRelation.Name(),
		Arguments: ast.ArgumentList{
			stringArgument("name", r.Name),
			stringArgument("from", r.From),
			stringArgument("to", r.To),
		},
	}
}

// RelationMetaOf extracts the relation metadata from a directive list.
func RelationMetaOf(list ast.DirectiveList) (RelationMeta, bool) {
	d := list.ForName(KindRelation.Name())
	if d == nil {
		return RelationMeta{}, false
	}
	return RelationMeta{
		Name: stringArgumentValue(d, "name"),
		From: stringArgumentValue(d, "from"),
		To:   stringArgumentValue(d, "to"),
	}, true
}

// AuthScope is the hasScope authorization directive carrying one scope
// requirement per protected type.
type AuthScope struct {
	Scopes []string
}

// build converts the scope list to its AST directive form.
func (a AuthScope) build() *ast.Directive {
	scopes := make(ast.ChildValueList, 0, len(a.Scopes))
	for _, s := range a.Scopes {
		scopes = append(scopes, &ast.ChildValue{
			Value: &ast.Value{Raw: s, Kind: ast.StringValue},
		})
	}
	return &ast.Directive{
		Name: KindHasScope.Name(),
		Arguments: ast.ArgumentList{{
			Name:  "scopes",
			Value: &ast.Value{Kind: ast.ListValue, Children: scopes},
		}},
	}
}

// ScopeRequirement formats one authorization scope for a type and a
// mutation verb, for example "Person: Create".
func ScopeRequirement(typeName, verb string) string {
	return typeName + ": " + verb
}

// isComputed reports whether the directive list marks a computed field.
// Computed fields derive their value from a Cypher expression instead of
// stored data and therefore have no settable input.
func isComputed(list ast.DirectiveList) bool {
	return list.ForName(KindCypher.Name()) != nil
}

// mutationDirectives assembles the directive list for a generated mutation
// field. The metadata directive is unconditional and always first. When
// scope-based authorization is enabled, a hasScope directive follows with one
// requirement per endpoint type; actions with no scope verb append nothing.
func mutationDirectives(a MutationAction, d RelationshipDescriptor, cfg Config) ast.DirectiveList {
	list := ast.DirectiveList{
		MutationMeta{
			Relationship: d.RelationshipName,
			From:         d.FromType,
			To:           d.ToType,
		}.build(),
	}
	if UseAuthDirective(cfg, KindHasScope) {
		if verb := a.Verb(); verb != "" {
			list = append(list, AuthScope{Scopes: []string{
				ScopeRequirement(d.FromType, verb),
				ScopeRequirement(d.ToType, verb),
			}}.build())
		}
	}
	return list
}

// stringArgument builds a string-valued directive argument.
func stringArgument(name, value string) *ast.Argument {
	return &ast.Argument{
		Name:  name,
		Value: &ast.Value{Raw: value, Kind: ast.StringValue},
	}
}

// stringArgumentValue reads a string-valued directive argument, or "".
func stringArgumentValue(d *ast.Directive, name string) string {
	for _, arg := range d.Arguments {
		if arg.Name == name && arg.Value != nil {
			return arg.Value.Raw
		}
	}
	return ""
}
