package template

import (
	"sort"
	"sync"

	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
)

// Engine is a registry of templates keyed by name. All registry access is
// serialized through one lock so concurrent callers never observe a
// partially registered template.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]Definition
}

// NewEngine creates an empty template registry
func NewEngine() *Engine {
	return &Engine{templates: make(map[string]Definition)}
}

// Register adds a template under its name. Re-registering an existing name
// overwrites the previous entry.
func (e *Engine) Register(def Definition) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[def.Name] = def
}

// Unregister removes a template, reporting whether it existed
func (e *Engine) Unregister(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, existed := e.templates[name]
	delete(e.templates, name)
	return existed
}

// List returns the catalog of registered templates sorted by name
func (e *Engine) List() []Info {
	e.mu.RLock()
	defer e.mu.RUnlock()

	infos := make([]Info, 0, len(e.templates))
	for _, def := range e.templates {
		infos = append(infos, Info{
			Name:        def.Name,
			Version:     def.Version,
			Description: def.Description,
			Params:      def.Params,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// lookup fetches a definition under the read lock
func (e *Engine) lookup(name string) (Definition, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	def, ok := e.templates[name]
	return def, ok
}

// Validate checks supplied parameters against a template's schema. It never
// mutates the input and never fills in defaults; a missing parameter passes
// when the schema declares a default for it.
func (e *Engine) Validate(name string, params map[string]ParamValue) error {
	def, ok := e.lookup(name)
	if !ok {
		return &NotFoundError{Name: name}
	}
	return validateParams(def, params)
}

// Generate merges declared defaults into the supplied parameters, re-runs
// validation against the merged set, and invokes the template's generator
// function. Explicit values always win over defaults.
func (e *Engine) Generate(name string, params map[string]ParamValue) ([]*shortcut.Action, error) {
	def, ok := e.lookup(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	merged := mergeDefaults(def, params)
	if err := validateParams(def, merged); err != nil {
		return nil, err
	}

	actions, err := def.Generate(merged)
	if err != nil {
		if isTemplateError(err) {
			return nil, err
		}
		return nil, &GenerationError{Template: name, Reason: err.Error()}
	}
	return actions, nil
}

// BuildDocument composes Generate with document assembly. No I/O; useful for
// inspection and testing without touching the file system.
func (e *Engine) BuildDocument(name string, params map[string]ParamValue, cfg shortcut.DocumentConfig) (*shortcut.Document, error) {
	actions, err := e.Generate(name, params)
	if err != nil {
		return nil, err
	}
	return shortcut.NewDocument(cfg, actions), nil
}

// mergeDefaults copies the supplied parameters and fills in schema defaults
// for any absent name. The caller's map is never mutated.
func mergeDefaults(def Definition, params map[string]ParamValue) map[string]ParamValue {
	merged := make(map[string]ParamValue, len(params)+len(def.Params))
	for k, v := range params {
		merged[k] = v
	}
	for _, pd := range def.Params {
		if _, supplied := merged[pd.Name]; !supplied && pd.Default != nil {
			merged[pd.Name] = *pd.Default
		}
	}
	return merged
}

func validateParams(def Definition, params map[string]ParamValue) error {
	for _, pd := range def.Params {
		value, supplied := params[pd.Name]
		if !supplied {
			if pd.Required && pd.Default == nil {
				return &MissingParameterError{Name: pd.Name}
			}
			continue
		}

		if !value.AcceptedBy(pd.Type) {
			return &InvalidTypeError{Name: pd.Name, Expected: pd.Type, Got: value.Kind()}
		}

		if pd.Type == TypeChoice && !containsString(pd.Options, value.Text()) {
			return &InvalidChoiceError{Name: pd.Name, Value: value.Text(), Options: pd.Options}
		}
	}
	return nil
}

func containsString(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
