// Package augment implements the schema augmentation passes of the Grafton
// compiler. Given the resolved facts about one use of a graph relationship as
// a field on a node type, it synthesizes the mutation-side API surface of the
// schema: new Mutation fields, the input and payload type definitions backing
// them, and the directive metadata the downstream Cypher translator consumes.
//
// The passes operate over vektah/gqlparser AST nodes and communicate through
// explicit registry values (see Registries). Each pass takes the registries,
// mutates the generated-type and operation entries, and returns the registries
// so callers can thread several passes over the same schema build.
package augment
