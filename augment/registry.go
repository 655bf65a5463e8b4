package augment

import (
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Operation identifies one of the three GraphQL operation roots.
type Operation string

const (
	// OperationQuery is the Query root operation type.
	OperationQuery Operation = "Query"
	// OperationMutation is the Mutation root operation type.
	OperationMutation Operation = "Mutation"
	// OperationSubscription is the Subscription root operation type.
	OperationSubscription Operation = "Subscription"
)

// Lower returns the operation kind in the lowercase keyword form a schema
// definition block binds roots under. It doubles as the configuration key
// for the kind.
func (o Operation) Lower() string {
	return strings.ToLower(string(o))
}

// TypeRegistry maps a type name to its definition.
type TypeRegistry map[string]*ast.Definition

// Has reports whether a definition with the given name is registered.
func (r TypeRegistry) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Put registers a definition under its name. Registration is last-write-wins:
// two relationships whose generated types collide on a name will silently
// overwrite one another, so passes that need write-once semantics must check
// Has before synthesizing.
func (r TypeRegistry) Put(def *ast.Definition) {
	r[def.Name] = def
}

// OperationRegistry maps an operation kind to its root type definition.
// A missing entry means the schema does not declare that root.
type OperationRegistry map[Operation]*ast.Definition

// Registries bundles the three registries an augmentation pass threads
// through: the user-authored type definitions (read-only for every pass),
// the generated type definitions, and the operation roots. The struct is
// passed and returned by value; the maps inside are the shared mutable state
// of one schema build.
type Registries struct {
	// TypeDefs holds the original, user-authored type definitions.
	TypeDefs TypeRegistry

	// Generated holds the type definitions synthesized by augmentation
	// passes, keyed by their namespaced names (_FooInput, _BarPayload).
	Generated TypeRegistry

	// Operations holds the operation root definitions.
	Operations OperationRegistry
}

// NewRegistries returns an empty Registries value with all maps allocated.
func NewRegistries() Registries {
	return Registries{
		TypeDefs:   make(TypeRegistry),
		Generated:  make(TypeRegistry),
		Operations: make(OperationRegistry),
	}
}
