package template

import (
	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
)

// ParamDef declares one parameter of a template's schema
type ParamDef struct {
	// Name is the parameter identifier, unique within a template
	Name string

	// Label is the human-readable parameter name
	Label string

	// Type is the declared parameter type
	Type ParamType

	// Required marks parameters the caller must supply unless a default exists
	Required bool

	// Default is merged in at generation time when the caller omits the
	// parameter. Explicit values always win over defaults.
	Default *ParamValue

	// Options lists the accepted values for choice parameters
	Options []string

	// Description documents the parameter for catalog output
	Description string
}

// GeneratorFunc expands merged, validated parameters into an ordered action
// list. Deterministic given its inputs except for freshly generated chain
// identifiers.
type GeneratorFunc func(params map[string]ParamValue) ([]*shortcut.Action, error)

// Definition is a registered template: a parameter schema plus the pure
// generator function that expands it.
type Definition struct {
	Name        string
	Version     string
	Description string
	Params      []ParamDef
	Generate    GeneratorFunc
}

// Info describes a registered template for catalog introspection
type Info struct {
	Name        string
	Version     string
	Description string
	Params      []ParamDef
}
