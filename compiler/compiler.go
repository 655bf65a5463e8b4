// Package compiler drives Grafton's schema augmentation: it loads a user SDL
// document, discovers relationship field use sites, runs the augmentation
// passes over them, and prints the augmented schema back out.
package compiler

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/syssam/grafton"
	"github.com/syssam/grafton/augment"
)

// Result holds the outcome of one augmentation run.
type Result struct {
	// Schema is the loaded schema, with the Mutation root mutated in place.
	Schema *ast.Schema

	// Registries are the augmented registries: user type definitions,
	// generated type definitions, and operation roots.
	Registries augment.Registries

	// MutationFields are the mutation fields this run added, in the order
	// they were registered.
	MutationFields ast.FieldList
}

// AugmentSource loads an SDL document (with Grafton's directive definitions
// prepended) and augments it.
func AugmentSource(filename, src string, cfg augment.Config) (Result, error) {
	schema, err := gqlparser.LoadSchema(
		DirectiveSource(),
		&ast.Source{Name: filename, Input: src},
	)
	if err != nil {
		return Result{}, grafton.NewSchemaError("", "", fmt.Sprintf("load %s", filename), err)
	}
	return AugmentSchema(schema, cfg)
}

// AugmentSchema runs the augmentation passes over an already-loaded schema.
// Relationship descriptors are processed strictly sequentially, one use site
// at a time, in deterministic type-then-field order.
func AugmentSchema(schema *ast.Schema, cfg augment.Config) (Result, error) {
	reg := registriesFromSchema(schema)

	var before int
	if mutation := reg.Operations[augment.OperationMutation]; mutation != nil {
		before = len(mutation.Fields)
	}

	for _, node := range nodeTypes(reg) {
		reg = augment.AugmentNodeSelectionInput(node, reg)
	}

	descriptors, err := relationshipDescriptors(reg)
	if err != nil {
		return Result{}, err
	}
	for _, d := range descriptors {
		reg = augment.AugmentRelationshipMutations(d, reg, cfg)
	}

	res := Result{Schema: schema, Registries: reg}
	if mutation := reg.Operations[augment.OperationMutation]; mutation != nil {
		res.MutationFields = mutation.Fields[before:]
	}
	return res, nil
}

// registriesFromSchema splits a loaded schema into the registry triple the
// passes operate on. Operation roots live in the operation registry only;
// built-in and introspection types are left out entirely.
func registriesFromSchema(schema *ast.Schema) augment.Registries {
	reg := augment.NewRegistries()
	for name, def := range schema.Types {
		if def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		if def == schema.Query || def == schema.Mutation || def == schema.Subscription {
			continue
		}
		reg.TypeDefs.Put(def)
	}
	if schema.Query != nil {
		reg.Operations[augment.OperationQuery] = schema.Query
	}
	if schema.Mutation != nil {
		reg.Operations[augment.OperationMutation] = schema.Mutation
	}
	if schema.Subscription != nil {
		reg.Operations[augment.OperationSubscription] = schema.Subscription
	}
	return reg
}

// nodeTypes returns the object types that describe graph nodes, sorted by
// name. Relationship types are not nodes: their _<Type>Input name is claimed
// by the relationship property input, so synthesizing a node selector for
// them would collide with it.
func nodeTypes(reg augment.Registries) []*ast.Definition {
	var nodes []*ast.Definition
	for _, name := range slices.Sorted(maps.Keys(reg.TypeDefs)) {
		def := reg.TypeDefs[name]
		if def.Kind != ast.Object {
			continue
		}
		if _, ok := augment.RelationMetaOf(def.Directives); ok {
			continue
		}
		nodes = append(nodes, def)
	}
	return nodes
}

// relationshipDescriptors discovers every relationship field use site: a
// field on a node type whose named type is an object carrying the relation
// directive. The relationship's from and to fields are endpoint selections,
// not properties, and are excluded from both property lists.
func relationshipDescriptors(reg augment.Registries) ([]augment.RelationshipDescriptor, error) {
	var descriptors []augment.RelationshipDescriptor
	for _, node := range nodeTypes(reg) {
		for _, field := range node.Fields {
			relType := reg.TypeDefs[field.Type.Name()]
			if relType == nil || relType.Kind != ast.Object {
				continue
			}
			rel, ok := augment.RelationMetaOf(relType.Directives)
			if !ok {
				continue
			}
			if rel.Name == "" || rel.From == "" || rel.To == "" {
				return nil, grafton.NewSchemaError(relType.Name, "",
					"relation directive must declare name, from, and to", nil)
			}
			properties := relationshipProperties(relType)
			descriptors = append(descriptors, augment.RelationshipDescriptor{
				TypeName:             node.Name,
				FieldName:            field.Name,
				OutputType:           relType.Name,
				FromType:             rel.From,
				ToType:               rel.To,
				RelationshipName:     rel.Name,
				PropertyInputValues:  properties,
				PropertyOutputFields: properties,
			})
		}
	}
	return descriptors, nil
}

// relationshipProperties returns the relationship type's own property
// fields, with the from/to endpoint fields filtered out.
func relationshipProperties(relType *ast.Definition) []*ast.FieldDefinition {
	properties := make([]*ast.FieldDefinition, 0, len(relType.Fields))
	for _, f := range relType.Fields {
		if f.Name == "from" || f.Name == "to" {
			continue
		}
		properties = append(properties, f)
	}
	return properties
}

// SDL prints the full augmented schema document: directive definitions,
// operation roots, user types, then generated types, each group in
// deterministic order.
func (r Result) SDL() string {
	doc := &ast.SchemaDocument{Directives: DirectiveDefinitions}
	doc.Schema = schemaDefinition(r.Registries)
	for _, op := range []augment.Operation{augment.OperationQuery, augment.OperationMutation, augment.OperationSubscription} {
		if def := r.Registries.Operations[op]; def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(r.Registries.TypeDefs)) {
		doc.Definitions = append(doc.Definitions, r.Registries.TypeDefs[name])
	}
	for _, name := range slices.Sorted(maps.Keys(r.Registries.Generated)) {
		doc.Definitions = append(doc.Definitions, r.Registries.Generated[name])
	}
	return formatDocument(doc)
}

// ExtensionSDL prints only what this run added: the generated type
// definitions plus an extension of the Mutation root carrying the new
// fields. Returns "" when the run added nothing. This is the form the
// gqlgen plugin injects.
func (r Result) ExtensionSDL() string {
	if len(r.MutationFields) == 0 && len(r.Registries.Generated) == 0 {
		return ""
	}
	doc := &ast.SchemaDocument{}
	for _, name := range slices.Sorted(maps.Keys(r.Registries.Generated)) {
		doc.Definitions = append(doc.Definitions, r.Registries.Generated[name])
	}
	if len(r.MutationFields) > 0 {
		mutation := r.Registries.Operations[augment.OperationMutation]
		doc.Extensions = append(doc.Extensions, &ast.Definition{
			Kind:   ast.Object,
			Name:   mutation.Name,
			Fields: r.MutationFields,
		})
	}
	return formatDocument(doc)
}

// schemaDefinition emits an explicit schema block when any operation root
// has a non-default name; otherwise the default root names carry the
// binding and the block is omitted. The default root name for each
// operation kind is the kind itself, and its lowercase form is the keyword
// the schema block binds it under.
func schemaDefinition(reg augment.Registries) ast.SchemaDefinitionList {
	ops := []augment.Operation{augment.OperationQuery, augment.OperationMutation, augment.OperationSubscription}
	custom := false
	for _, op := range ops {
		if root := reg.Operations[op]; root != nil && root.Name != string(op) {
			custom = true
		}
	}
	if !custom {
		return nil
	}
	def := &ast.SchemaDefinition{}
	for _, op := range ops {
		if root := reg.Operations[op]; root != nil {
			def.OperationTypes = append(def.OperationTypes, &ast.OperationTypeDefinition{
				Operation: ast.Operation(op.Lower()),
				Type:      root.Name,
			})
		}
	}
	return ast.SchemaDefinitionList{def}
}

func formatDocument(doc *ast.SchemaDocument) string {
	var b strings.Builder
	f := formatter.NewFormatter(&b, formatter.WithIndent("  "))
	f.FormatSchemaDocument(doc)
	return b.String()
}
