package shortcut

// Action is one atomic step of a workflow document. The Shortcuts app
// executes actions strictly in document order.
type Action struct {
	// Identifier is the namespaced action identifier, e.g.
	// "is.workflow.actions.gettext"
	Identifier string

	// Parameters holds the action's named parameters in insertion order
	Parameters *Params

	// ChainID is an optional opaque token (a UUID in practice) under which
	// later actions can reference this action's output. Unique within a
	// document when present.
	ChainID string

	// OutputLabel is an optional human-readable name for the action's output
	OutputLabel string
}

// NewAction creates an action with an empty parameter map
func NewAction(identifier string) *Action {
	return &Action{
		Identifier: identifier,
		Parameters: NewParams(),
	}
}

// Serialization keys for an action's chain identifier and output label.
// Both live inside the action parameter map on the wire.
const (
	chainIDKey     = "UUID"
	outputLabelKey = "CustomOutputName"
)

// Keys of the attachment dictionary a consuming action stores in place of a
// produced value.
const (
	refValueKey      = "Value"
	refTypeKey       = "Type"
	refOutputUUIDKey = "OutputUUID"
	refOutputNameKey = "OutputName"
	refSerializKey   = "WFSerializationType"

	refTypeActionOutput = "ActionOutput"
	refTokenAttachment  = "WFTextTokenAttachment"
)

// OutputReference builds the parameter value a later action stores to read
// an earlier action's output. Only the chain identifier travels in the
// document; the produced value itself is never embedded.
func OutputReference(chainID, outputName string) Value {
	inner := NewParams()
	inner.Set(refOutputNameKey, Text(outputName))
	inner.Set(refOutputUUIDKey, Text(chainID))
	inner.Set(refTypeKey, Text(refTypeActionOutput))

	outer := NewParams()
	outer.Set(refValueKey, Map(inner))
	outer.Set(refSerializKey, Text(refTokenAttachment))
	return Map(outer)
}

// ReferencedOutput extracts the chain identifier from an output reference
// value. Returns false when the value is not an output reference.
func ReferencedOutput(v Value) (chainID string, ok bool) {
	if v.Kind() != KindMap {
		return "", false
	}
	serial, found := v.MapValue().Get(refSerializKey)
	if !found || serial.TextValue() != refTokenAttachment {
		return "", false
	}
	inner, found := v.MapValue().Get(refValueKey)
	if !found || inner.Kind() != KindMap {
		return "", false
	}
	typ, found := inner.MapValue().Get(refTypeKey)
	if !found || typ.TextValue() != refTypeActionOutput {
		return "", false
	}
	id, found := inner.MapValue().Get(refOutputUUIDKey)
	if !found || id.Kind() != KindText {
		return "", false
	}
	return id.TextValue(), true
}

// References collects the chain identifiers of every output reference in the
// action's parameter tree.
func (a *Action) References() []string {
	var ids []string
	var walk func(v Value)
	walk = func(v Value) {
		if id, ok := ReferencedOutput(v); ok {
			ids = append(ids, id)
			return
		}
		switch v.Kind() {
		case KindList:
			for _, item := range v.ListValue() {
				walk(item)
			}
		case KindMap:
			for _, k := range v.MapValue().Keys() {
				item, _ := v.MapValue().Get(k)
				walk(item)
			}
		}
	}
	for _, k := range a.Parameters.Keys() {
		v, _ := a.Parameters.Get(k)
		walk(v)
	}
	return ids
}
