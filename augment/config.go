package augment

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config controls which parts of the schema are augmented and which
// authorization directives the generated fields carry.
type Config struct {
	// Query configures query-side augmentation.
	Query OperationConfig `yaml:"query,omitempty"`

	// Mutation configures mutation-side augmentation.
	Mutation OperationConfig `yaml:"mutation,omitempty"`

	// Subscription configures subscription-side augmentation.
	Subscription OperationConfig `yaml:"subscription,omitempty"`

	// Auth enables authorization directives on generated fields.
	Auth AuthConfig `yaml:"auth,omitempty"`
}

// OperationConfig configures augmentation for one operation kind.
type OperationConfig struct {
	// Disabled turns off augmentation for this operation kind entirely.
	Disabled bool `yaml:"disabled,omitempty"`

	// Exclude lists node type names whose fields are never augmented for
	// this operation kind.
	Exclude StringList `yaml:"exclude,omitempty"`
}

// excludes reports whether the given type name is excluded.
func (c OperationConfig) excludes(typeName string) bool {
	return slices.Contains(c.Exclude, typeName)
}

// AuthConfig toggles the authorization directives attached to generated
// fields. Each toggle corresponds to one directive kind.
type AuthConfig struct {
	IsAuthenticated bool `yaml:"isAuthenticated,omitempty"`
	HasRole         bool `yaml:"hasRole,omitempty"`
	HasScope        bool `yaml:"hasScope,omitempty"`
}

// operation returns the configuration for the given operation kind.
func (c Config) operation(op Operation) OperationConfig {
	switch op {
	case OperationQuery:
		return c.Query
	case OperationMutation:
		return c.Mutation
	case OperationSubscription:
		return c.Subscription
	default:
		return OperationConfig{Disabled: true}
	}
}

// ShouldAugmentRelationshipField reports whether relationship fields between
// the two endpoint types should be augmented for the given operation kind.
func ShouldAugmentRelationshipField(cfg Config, op Operation, fromType, toType string) bool {
	oc := cfg.operation(op)
	if oc.Disabled {
		return false
	}
	return !oc.excludes(fromType) && !oc.excludes(toType)
}

// UseAuthDirective reports whether the configuration enables the given
// authorization directive kind. Non-authorization kinds are always false.
func UseAuthDirective(cfg Config, kind DirectiveKind) bool {
	switch kind {
	case KindIsAuthenticated:
		return cfg.Auth.IsAuthenticated
	case KindHasRole:
		return cfg.Auth.HasRole
	case KindHasScope:
		return cfg.Auth.HasScope
	default:
		return false
	}
}

// StringList accepts either a bare string or a sequence of strings in YAML,
// so `exclude: Secret` and `exclude: [Secret]` configure the same thing.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var one string
		if err := node.Decode(&one); err != nil {
			return err
		}
		*s = StringList{one}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = StringList(list)
		return nil
	default:
		return fmt.Errorf("string or string sequence required, got yaml kind %v", node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler for StringList.
func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}
