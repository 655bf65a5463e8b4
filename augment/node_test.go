package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestNodeOutputFields(t *testing.T) {
	t.Parallel()

	fields := NodeOutputFields("Person", "Movie")
	require.Len(t, fields, 2)
	assert.Equal(t, "from", fields[0].Name)
	assert.Equal(t, "Person", fields[0].Type.Name())
	assert.Equal(t, "to", fields[1].Name)
	assert.Equal(t, "Movie", fields[1].Type.Name())
}

func TestAugmentNodeSelectionInput(t *testing.T) {
	t.Parallel()

	person := func() *ast.Definition {
		return &ast.Definition{
			Kind: ast.Object,
			Name: "Person",
			Fields: ast.FieldList{
				{Name: "id", Type: ast.NamedType("ID", nil)},
				{Name: "name", Type: ast.NamedType("String", nil)},
			},
		}
	}

	t.Run("selects the id field", func(t *testing.T) {
		reg := AugmentNodeSelectionInput(person(), NewRegistries())

		def := reg.Generated["_PersonInput"]
		require.NotNil(t, def)
		assert.Equal(t, ast.InputObject, def.Kind)
		require.Len(t, def.Fields, 1)
		assert.Equal(t, "id", def.Fields[0].Name)
		assert.Equal(t, "ID", def.Fields[0].Type.Name())
		assert.True(t, def.Fields[0].Type.NonNull)
	})

	t.Run("falls back to first stored scalar field", func(t *testing.T) {
		node := &ast.Definition{
			Kind: ast.Object,
			Name: "Movie",
			Fields: ast.FieldList{
				{Name: "similar", Type: ast.ListType(ast.NamedType("Movie", nil), nil)},
				{
					Name:       "score",
					Type:       ast.NamedType("Float", nil),
					Directives: ast.DirectiveList{{Name: "cypher"}},
				},
				{Name: "title", Type: ast.NamedType("String", nil)},
			},
		}

		reg := AugmentNodeSelectionInput(node, NewRegistries())

		def := reg.Generated["_MovieInput"]
		require.NotNil(t, def)
		require.Len(t, def.Fields, 1)
		assert.Equal(t, "title", def.Fields[0].Name)
	})

	t.Run("no eligible key field skips the node", func(t *testing.T) {
		node := &ast.Definition{
			Kind: ast.Object,
			Name: "Feed",
			Fields: ast.FieldList{
				{Name: "entries", Type: ast.ListType(ast.NamedType("String", nil), nil)},
			},
		}

		reg := AugmentNodeSelectionInput(node, NewRegistries())
		assert.Empty(t, reg.Generated)
	})

	t.Run("existing selector is not overwritten", func(t *testing.T) {
		reg := NewRegistries()
		existing := &ast.Definition{Kind: ast.InputObject, Name: "_PersonInput"}
		reg.Generated.Put(existing)

		out := AugmentNodeSelectionInput(person(), reg)
		assert.Same(t, existing, out.Generated["_PersonInput"])
	})

	t.Run("user-declared selector wins", func(t *testing.T) {
		reg := NewRegistries()
		reg.TypeDefs.Put(&ast.Definition{Kind: ast.InputObject, Name: "_PersonInput"})

		out := AugmentNodeSelectionInput(person(), reg)
		assert.Empty(t, out.Generated)
	})
}
