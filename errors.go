// Package grafton provides shared error types for the Grafton schema
// augmentation compiler.
package grafton

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates the input SDL document could not be used.
	ErrInvalidSchema = errors.New("grafton: invalid schema")
	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("grafton: invalid configuration")
	// ErrGenerationFailed indicates a code or schema generation failure.
	ErrGenerationFailed = errors.New("grafton: generation failed")
)

// SchemaError represents an error in the input schema document.
type SchemaError struct {
	Type    string // Object type name
	Field   string // Field name (if applicable)
	Message string
	Cause   error
}

// Error returns the message with the schema coordinate in Type.Field form.
func (e *SchemaError) Error() string {
	msg := "grafton: schema error"
	if coord := e.coordinate(); coord != "" {
		msg += " at " + coord
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// coordinate formats the error's location as a GraphQL schema coordinate,
// "Person.knows" for a field or "Person" for a whole type.
func (e *SchemaError) coordinate() string {
	if e.Type == "" {
		return e.Field
	}
	if e.Field == "" {
		return e.Type
	}
	return e.Type + "." + e.Field
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(typeName, fieldName, message string, cause error) *SchemaError {
	return &SchemaError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error returns the message, with the offending value folded in when set.
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("grafton: config option %q: %s", e.Option, e.Message)
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %v)", e.Value)
	}
	return msg
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents an augmentation or code generation error.
type GenerationError struct {
	Phase   string // "parse", "augment", "format", "go"
	File    string
	Message string
	Cause   error
}

// Error leads with the phase so "go generation error" and "format
// generation error" sort apart in logs.
func (e *GenerationError) Error() string {
	msg := "grafton: "
	if e.Phase != "" {
		msg += e.Phase + " "
	}
	msg += "generation error"
	if e.File != "" {
		msg += " for " + e.File
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
