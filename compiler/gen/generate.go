// Package gen generates Go dispatch metadata for an augmented schema.
//
// The downstream translator dispatches on generated mutation field names at
// runtime; this package writes that table out as Go source so resolver code
// can switch on typed constants instead of re-deriving names from the SDL.
package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/grafton"
	"github.com/syssam/grafton/augment"
)

// Binding describes one generated mutation field for the Go side.
type Binding struct {
	// Field is the mutation field name, for example "AddPersonKnows".
	Field string
	// Action is the scope verb of the mutation, "Create" or "Delete".
	Action string
	// Relationship, From and To identify the graph relationship the field
	// mutates.
	Relationship string
	From         string
	To           string
	// Payload is the name of the field's payload type.
	Payload string
}

// Bindings derives the Go bindings from the mutation fields an augmentation
// run added. A binding needs both halves of the generated contract: the
// mutation metadata directive, and a field name starting with an action
// label. Fields missing either were not generated here and are skipped.
func Bindings(fields ast.FieldList) []Binding {
	bindings := make([]Binding, 0, len(fields))
	for _, f := range fields {
		meta, ok := augment.MutationMetaOf(f.Directives)
		if !ok {
			continue
		}
		verb := actionVerb(f.Name)
		if verb == "" {
			continue
		}
		bindings = append(bindings, Binding{
			Field:        f.Name,
			Action:       verb,
			Relationship: meta.Relationship,
			From:         meta.From,
			To:           meta.To,
			Payload:      f.Type.Name(),
		})
	}
	return bindings
}

// actionVerb resolves a generated field name's action prefix to its scope
// verb, or "" when the name carries no recognized prefix.
func actionVerb(fieldName string) string {
	for _, a := range augment.Actions() {
		if strings.HasPrefix(fieldName, a.Label()) {
			return a.Verb()
		}
	}
	return ""
}

// Generator writes the metadata file for a set of bindings.
type Generator struct {
	pkg      string
	bindings []Binding
}

// NewGenerator creates a generator emitting into the given package.
func NewGenerator(pkg string, bindings []Binding) *Generator {
	return &Generator{pkg: pkg, bindings: bindings}
}

// File builds the generated source file.
func (g *Generator) File() *jen.File {
	f := jen.NewFile(g.pkg)
	f.HeaderComment("Code generated by grafton. DO NOT EDIT.")

	f.Comment("RelationshipMutation describes one generated relationship mutation field.")
	f.Type().Id("RelationshipMutation").Struct(
		jen.Id("Field").String(),
		jen.Id("Action").String(),
		jen.Id("Relationship").String(),
		jen.Id("From").String(),
		jen.Id("To").String(),
		jen.Id("Payload").String(),
	)

	f.Comment("Mutation field name constants.")
	f.Const().DefsFunc(func(d *jen.Group) {
		for _, b := range g.bindings {
			d.Id("Mutation" + b.Field).Op("=").Lit(b.Field)
		}
	})

	f.Comment("Relationship name constants.")
	f.Const().DefsFunc(func(d *jen.Group) {
		seen := make(map[string]bool)
		for _, b := range g.bindings {
			if seen[b.Relationship] {
				continue
			}
			seen[b.Relationship] = true
			d.Id("Relationship" + exportedIdent(b.Relationship)).Op("=").Lit(b.Relationship)
		}
	})

	f.Comment("RelationshipMutations maps each generated mutation field to the")
	f.Comment("relationship it mutates.")
	f.Var().Id("RelationshipMutations").Op("=").Map(jen.String()).Id("RelationshipMutation").Values(
		jen.DictFunc(func(d jen.Dict) {
			for _, b := range g.bindings {
				d[jen.Lit(b.Field)] = jen.Values(jen.Dict{
					jen.Id("Field"):        jen.Lit(b.Field),
					jen.Id("Action"):       jen.Lit(b.Action),
					jen.Id("Relationship"): jen.Lit(b.Relationship),
					jen.Id("From"):         jen.Lit(b.From),
					jen.Id("To"):           jen.Lit(b.To),
					jen.Id("Payload"):      jen.Lit(b.Payload),
				})
			}
		}),
	)
	return f
}

// Write renders the file to disk.
func (g *Generator) Write(path string) error {
	if g.pkg == "" {
		return grafton.NewConfigError("package", g.pkg, "cannot be empty")
	}
	if err := g.File().Save(path); err != nil {
		return grafton.NewGenerationError("go", path, "write metadata file", err)
	}
	return nil
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// exportedIdent turns a graph relationship name like "WORKS_AT" into an
// exported Go identifier fragment like "WorksAt".
func exportedIdent(name string) string {
	parts := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(titleCaser.String(p))
	}
	return b.String()
}
