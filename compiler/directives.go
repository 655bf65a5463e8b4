package compiler

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/syssam/grafton/augment"
)

var blankPos = &ast.Position{Src: &ast.Source{Name: "grafton/directives"}}

// DirectiveDefinitions is the closed set of directive definitions Grafton
// understands. The driver prepends them to every schema it loads so user
// documents can annotate relationship types without declaring the directives
// themselves.
var DirectiveDefinitions = ast.DirectiveDefinitionList{
	{
		Name: augment.KindRelation.Name(),
		Arguments: ast.ArgumentDefinitionList{
			{Name: "name", Type: ast.NonNullNamedType("String", nil)},
			{Name: "from", Type: ast.NamedType("String", nil)},
			{Name: "to", Type: ast.NamedType("String", nil)},
		},
		Locations: []ast.DirectiveLocation{
			ast.LocationObject,
			ast.LocationFieldDefinition,
		},
		Position: blankPos,
	},
	{
		Name: augment.KindCypher.Name(),
		Arguments: ast.ArgumentDefinitionList{
			{Name: "statement", Type: ast.NonNullNamedType("String", nil)},
		},
		Locations: []ast.DirectiveLocation{
			ast.LocationFieldDefinition,
		},
		Position: blankPos,
	},
	{
		Name: augment.KindMutationMeta.Name(),
		Arguments: ast.ArgumentDefinitionList{
			{Name: "relationship", Type: ast.NonNullNamedType("String", nil)},
			{Name: "from", Type: ast.NonNullNamedType("String", nil)},
			{Name: "to", Type: ast.NonNullNamedType("String", nil)},
		},
		Locations: []ast.DirectiveLocation{
			ast.LocationFieldDefinition,
		},
		Position: blankPos,
	},
	{
		Name: augment.KindIsAuthenticated.Name(),
		Locations: []ast.DirectiveLocation{
			ast.LocationObject,
			ast.LocationFieldDefinition,
		},
		Position: blankPos,
	},
	{
		Name: augment.KindHasRole.Name(),
		Arguments: ast.ArgumentDefinitionList{
			{Name: "roles", Type: ast.ListType(ast.NamedType("String", nil), nil)},
		},
		Locations: []ast.DirectiveLocation{
			ast.LocationObject,
			ast.LocationFieldDefinition,
		},
		Position: blankPos,
	},
	{
		Name: augment.KindHasScope.Name(),
		Arguments: ast.ArgumentDefinitionList{
			{Name: "scopes", Type: ast.ListType(ast.NamedType("String", nil), nil)},
		},
		Locations: []ast.DirectiveLocation{
			ast.LocationObject,
			ast.LocationFieldDefinition,
		},
		Position: blankPos,
	},
}

// DirectiveSource returns the directive definitions as an SDL source,
// suitable for prepending to a user schema or injecting into gqlgen.
func DirectiveSource() *ast.Source {
	var b strings.Builder
	f := formatter.NewFormatter(&b, formatter.WithIndent("  "))
	f.FormatSchemaDocument(&ast.SchemaDocument{Directives: DirectiveDefinitions})
	return &ast.Source{
		Name:    "grafton/directives.graphql",
		Input:   b.String(),
		BuiltIn: true,
	}
}
