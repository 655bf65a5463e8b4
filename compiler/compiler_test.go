package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/grafton"
	"github.com/syssam/grafton/augment"
)

const movieSchema = `
type Person {
  id: ID!
  name: String
  knows: [Knows]
}

type Knows @relation(name: "KNOWS", from: "Person", to: "Person") {
  from: Person
  to: Person
  since: Int
}

type Query {
  people: [Person]
}

type Mutation {
  noop: Boolean
}
`

func TestAugmentSource(t *testing.T) {
	t.Parallel()

	res, err := AugmentSource("movie.graphql", movieSchema, augment.Config{})
	require.NoError(t, err)

	t.Run("mutation fields", func(t *testing.T) {
		require.Len(t, res.MutationFields, 2)
		assert.Equal(t, "AddPersonKnows", res.MutationFields[0].Name)
		assert.Equal(t, "RemovePersonKnows", res.MutationFields[1].Name)
	})

	t.Run("generated types", func(t *testing.T) {
		gen := res.Registries.Generated
		assert.True(t, gen.Has("_PersonInput"))
		assert.True(t, gen.Has("_KnowsInput"))
		assert.True(t, gen.Has("_AddPersonKnowsPayload"))
		assert.True(t, gen.Has("_RemovePersonKnowsPayload"))
		// The relationship type is not a node and gets no selector input of
		// its own; _KnowsInput is the property input.
		assert.Equal(t, ast.InputObject, gen["_KnowsInput"].Kind)
		require.Len(t, gen["_KnowsInput"].Fields, 1)
		assert.Equal(t, "since", gen["_KnowsInput"].Fields[0].Name)
	})

	t.Run("relationship type keeps endpoint fields out of properties", func(t *testing.T) {
		payload := res.Registries.Generated["_AddPersonKnowsPayload"]
		require.NotNil(t, payload)
		require.Len(t, payload.Fields, 3)
		assert.NotNil(t, payload.Fields.ForName("from"))
		assert.NotNil(t, payload.Fields.ForName("to"))
		assert.NotNil(t, payload.Fields.ForName("since"))
	})

	t.Run("augmented SDL reloads cleanly", func(t *testing.T) {
		sdl := res.SDL()
		reloaded, err := gqlparser.LoadSchema(&ast.Source{Name: "augmented.graphql", Input: sdl})
		require.NoError(t, err)

		add := reloaded.Mutation.Fields.ForName("AddPersonKnows")
		require.NotNil(t, add)
		require.Len(t, add.Arguments, 3)
		assert.Equal(t, "_PersonInput", add.Arguments[0].Type.Name())
		assert.Equal(t, "_KnowsInput", add.Arguments[2].Type.Name())
		assert.Equal(t, "_AddPersonKnowsPayload", add.Type.Name())

		remove := reloaded.Mutation.Fields.ForName("RemovePersonKnows")
		require.NotNil(t, remove)
		assert.Len(t, remove.Arguments, 2)
	})

	t.Run("extension SDL carries only additions", func(t *testing.T) {
		sdl := res.ExtensionSDL()
		assert.Contains(t, sdl, "extend type Mutation")
		assert.Contains(t, sdl, "AddPersonKnows")
		assert.Contains(t, sdl, "input _KnowsInput")
		assert.NotContains(t, sdl, "type Person {")
	})
}

func TestComputedOnlyRelationshipProperties(t *testing.T) {
	t.Parallel()

	src := `
type Person {
  id: ID!
  name: String
  knows: [Knows]
}

type Knows @relation(name: "KNOWS", from: "Person", to: "Person") {
  from: Person
  to: Person
  mutualFriends: Int @cypher(statement: "RETURN 0")
}

type Query {
  people: [Person]
}

type Mutation {
  noop: Boolean
}
`
	res, err := AugmentSource("schema.graphql", src, augment.Config{})
	require.NoError(t, err)

	// Every property is computed, so there is nothing to pass as data: no
	// property input type and no data argument.
	assert.False(t, res.Registries.Generated.Has("_KnowsInput"))
	add := res.Registries.Operations[augment.OperationMutation].Fields.ForName("AddPersonKnows")
	require.NotNil(t, add)
	assert.Len(t, add.Arguments, 2)

	reloaded, err := gqlparser.LoadSchema(&ast.Source{Name: "augmented.graphql", Input: res.SDL()})
	require.NoError(t, err)
	payload := reloaded.Types["_AddPersonKnowsPayload"]
	require.NotNil(t, payload)
	assert.NotNil(t, payload.Fields.ForName("mutualFriends"))
}

func TestAugmentSchemaIdempotence(t *testing.T) {
	t.Parallel()

	schema, err := gqlparser.LoadSchema(
		DirectiveSource(),
		&ast.Source{Name: "movie.graphql", Input: movieSchema},
	)
	require.NoError(t, err)

	first, err := AugmentSchema(schema, augment.Config{})
	require.NoError(t, err)
	require.Len(t, first.MutationFields, 2)

	second, err := AugmentSchema(schema, augment.Config{})
	require.NoError(t, err)
	assert.Empty(t, second.MutationFields)

	// The Mutation root still has exactly one field per action.
	names := make(map[string]int)
	for _, f := range schema.Mutation.Fields {
		names[f.Name]++
	}
	assert.Equal(t, 1, names["AddPersonKnows"])
	assert.Equal(t, 1, names["RemovePersonKnows"])
}

func TestAugmentSourceSkips(t *testing.T) {
	t.Parallel()

	t.Run("no mutation root skips the relationship pass", func(t *testing.T) {
		src := `
type Person {
  id: ID!
  knows: [Knows]
}
type Knows @relation(name: "KNOWS", from: "Person", to: "Person") {
  from: Person
  to: Person
}
type Query {
  people: [Person]
}
`
		res, err := AugmentSource("schema.graphql", src, augment.Config{})
		require.NoError(t, err)
		assert.Empty(t, res.MutationFields)
		// The node selection pass still runs; it belongs to the query side.
		assert.True(t, res.Registries.Generated.Has("_PersonInput"))
		assert.False(t, res.Registries.Generated.Has("_AddPersonKnowsPayload"))
	})

	t.Run("excluded endpoint skips the use site", func(t *testing.T) {
		cfg := augment.Config{Mutation: augment.OperationConfig{Exclude: augment.StringList{"Person"}}}
		res, err := AugmentSource("movie.graphql", movieSchema, cfg)
		require.NoError(t, err)
		assert.Empty(t, res.MutationFields)
	})
}

func TestAugmentSourceErrors(t *testing.T) {
	t.Parallel()

	t.Run("unparseable document", func(t *testing.T) {
		_, err := AugmentSource("broken.graphql", "type {", augment.Config{})
		require.Error(t, err)
		assert.True(t, grafton.IsSchemaError(err))
	})

	t.Run("relation directive missing endpoints", func(t *testing.T) {
		src := `
type Person {
  id: ID!
  knows: [Knows]
}
type Knows @relation(name: "KNOWS") {
  since: Int
}
type Query {
  people: [Person]
}
type Mutation {
  noop: Boolean
}
`
		_, err := AugmentSource("schema.graphql", src, augment.Config{})
		require.Error(t, err)
		require.True(t, grafton.IsSchemaError(err))
		assert.Contains(t, err.Error(), "Knows")
	})
}

func TestCustomRootNames(t *testing.T) {
	t.Parallel()

	src := `
schema {
  query: Root
  mutation: Mut
}
type Root {
  people: [Person]
}
type Mut {
  noop: Boolean
}
type Person {
  id: ID!
  knows: [Knows]
}
type Knows @relation(name: "KNOWS", from: "Person", to: "Person") {
  from: Person
  to: Person
}
`
	res, err := AugmentSource("schema.graphql", src, augment.Config{})
	require.NoError(t, err)

	mutation := res.Registries.Operations[augment.OperationMutation]
	require.NotNil(t, mutation)
	assert.Equal(t, "Mut", mutation.Name)
	assert.NotNil(t, mutation.Fields.ForName("AddPersonKnows"))

	sdl := res.SDL()
	assert.Contains(t, sdl, "schema {")
	assert.Contains(t, sdl, "mutation: Mut")
}

func TestDirectiveSource(t *testing.T) {
	t.Parallel()

	src := DirectiveSource()
	assert.True(t, src.BuiltIn)
	assert.Contains(t, src.Input, "directive @relation")
	assert.Contains(t, src.Input, "directive @cypher")
	assert.Contains(t, src.Input, "directive @MutationMeta")
	assert.Contains(t, src.Input, "directive @hasScope")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "grafton.yml"))
		require.NoError(t, err)
		assert.Equal(t, augment.Config{}, cfg)
	})

	t.Run("file contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "grafton.yml")
		src := "mutation:\n  exclude:\n    - Secret\nauth:\n  hasScope: true\n"
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, augment.StringList{"Secret"}, cfg.Mutation.Exclude)
		assert.True(t, cfg.Auth.HasScope)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "grafton.yml")
		require.NoError(t, os.WriteFile(path, []byte("mutation: ["), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.True(t, grafton.IsConfigError(err))
	})
}
