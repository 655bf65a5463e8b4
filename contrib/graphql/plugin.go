// Package graphql integrates Grafton with gqlgen code generation.
package graphql

import (
	"github.com/99designs/gqlgen/plugin"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/grafton/augment"
	"github.com/syssam/grafton/compiler"
)

// Plugin is a gqlgen plugin that augments the project schema with Grafton's
// relationship API. It contributes the directive definitions before the
// schema is loaded and the generated types and mutation fields after, so a
// gqlgen project picks up the augmented API without a separate build step.
//
// Usage:
//
//	cfg, err := config.LoadConfigFromDefaultLocations()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = api.Generate(cfg, api.AddPlugin(graphql.New(graftonCfg)))
type Plugin struct {
	cfg augment.Config
}

var (
	_ plugin.Plugin              = (*Plugin)(nil)
	_ plugin.EarlySourceInjector = (*Plugin)(nil)
	_ plugin.LateSourceInjector  = (*Plugin)(nil)
)

// New creates the plugin with the given augmentation configuration.
func New(cfg augment.Config) *Plugin {
	return &Plugin{cfg: cfg}
}

// Name implements plugin.Plugin.
func (*Plugin) Name() string {
	return "grafton"
}

// InjectSourceEarly contributes Grafton's directive definitions so user
// schemas can annotate relationship types without declaring them.
func (*Plugin) InjectSourceEarly() *ast.Source {
	return compiler.DirectiveSource()
}

// InjectSourceLate augments the loaded schema and contributes the generated
// type definitions plus the Mutation extension. Returns nil when the schema
// yields nothing to add; gqlgen treats a nil source as no contribution.
func (p *Plugin) InjectSourceLate(schema *ast.Schema) *ast.Source {
	res, err := compiler.AugmentSchema(schema, p.cfg)
	if err != nil {
		return nil
	}
	sdl := res.ExtensionSDL()
	if sdl == "" {
		return nil
	}
	return &ast.Source{
		Name:  "grafton/augmented.graphql",
		Input: sdl,
	}
}
