package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutationFieldName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		action    MutationAction
		typeName  string
		fieldName string
		want      string
	}{
		{
			name:      "create",
			action:    ActionCreate,
			typeName:  "Person",
			fieldName: "knows",
			want:      "AddPersonKnows",
		},
		{
			name:      "delete",
			action:    ActionDelete,
			typeName:  "Person",
			fieldName: "knows",
			want:      "RemovePersonKnows",
		},
		{
			name:      "already capitalized field",
			action:    ActionCreate,
			typeName:  "Movie",
			fieldName: "Ratings",
			want:      "AddMovieRatings",
		},
		{
			name:      "single letter field",
			action:    ActionDelete,
			typeName:  "A",
			fieldName: "b",
			want:      "RemoveAB",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MutationFieldName(tt.action, tt.typeName, tt.fieldName)
			assert.Equal(t, tt.want, got)

			// Pure function: repeated calls agree.
			assert.Equal(t, got, MutationFieldName(tt.action, tt.typeName, tt.fieldName))
		})
	}

	t.Run("empty field name panics", func(t *testing.T) {
		require.Panics(t, func() {
			MutationFieldName(ActionCreate, "Person", "")
		})
	})
}

func TestGeneratedTypeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "_PersonInput", NodeInputName("Person"))
	assert.Equal(t, "_KnowsInput", RelationshipInputName("Knows"))
	assert.Equal(t, "_AddPersonKnowsPayload", PayloadTypeName("AddPersonKnows"))
}

func TestMutationAction(t *testing.T) {
	t.Parallel()

	t.Run("labels", func(t *testing.T) {
		assert.Equal(t, "Add", ActionCreate.Label())
		assert.Equal(t, "Remove", ActionDelete.Label())
		assert.Equal(t, "", MutationAction(42).Label())
	})

	t.Run("verbs", func(t *testing.T) {
		assert.Equal(t, "Create", ActionCreate.Verb())
		assert.Equal(t, "Delete", ActionDelete.Verb())
		assert.Equal(t, "", MutationAction(42).Verb())
	})

	t.Run("valid", func(t *testing.T) {
		assert.True(t, ActionCreate.Valid())
		assert.True(t, ActionDelete.Valid())
		assert.False(t, MutationAction(42).Valid())
	})

	t.Run("enumeration order", func(t *testing.T) {
		require.Equal(t, []MutationAction{ActionCreate, ActionDelete}, Actions())
	})
}
