// Package template holds the registry of parameterized shortcut templates
// and the validation rules for their inputs.
package template

import (
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
)

// ParamType is the declared type of a template parameter
type ParamType string

const (
	TypeText    ParamType = "text"
	TypeURL     ParamType = "url"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeChoice  ParamType = "choice"
)

// ParamKind identifies the variant held by a ParamValue
type ParamKind int

const (
	KindText ParamKind = iota
	KindURL
	KindNumber
	KindBoolean
	KindChoice
)

// String returns the kind name used in error messages
func (k ParamKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindURL:
		return "url"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// ParamValue is a single typed template input
type ParamValue struct {
	kind ParamKind
	text string
	num  float64
	b    bool
}

// Text creates a text parameter value
func Text(s string) ParamValue {
	return ParamValue{kind: KindText, text: s}
}

// URL creates a URL-flavored text parameter value
func URL(s string) ParamValue {
	return ParamValue{kind: KindURL, text: s}
}

// Number creates a numeric parameter value
func Number(f float64) ParamValue {
	return ParamValue{kind: KindNumber, num: f}
}

// Boolean creates a boolean parameter value
func Boolean(b bool) ParamValue {
	return ParamValue{kind: KindBoolean, b: b}
}

// Choice creates an enumerated-choice parameter value
func Choice(s string) ParamValue {
	return ParamValue{kind: KindChoice, text: s}
}

// Kind returns the variant held by the value
func (v ParamValue) Kind() ParamKind { return v.kind }

// Text returns the string carried by text, URL and choice values
func (v ParamValue) Text() string { return v.text }

// Number returns the float carried by numeric values
func (v ParamValue) Number() float64 { return v.num }

// Bool coerces the value to a boolean. Boolean values return themselves;
// text coerces through the fixed vocabulary {"true","yes","1"}; numbers
// coerce zero to false and anything else to true.
func (v ParamValue) Bool() bool {
	switch v.kind {
	case KindBoolean:
		return v.b
	case KindNumber:
		return v.num != 0
	default:
		switch strings.ToLower(v.text) {
		case "true", "yes", "1":
			return true
		default:
			return false
		}
	}
}

// Equal reports whether two parameter values hold the same variant and contents
func (v ParamValue) Equal(other ParamValue) bool {
	return v == other
}

// AcceptedBy reports whether the value can satisfy a parameter declared with
// the given type. Text is accepted wherever url or choice is expected, url is
// accepted wherever text is expected, and text or number coerce to boolean.
// The choice-to-text direction is deliberately not accepted.
func (v ParamValue) AcceptedBy(t ParamType) bool {
	switch t {
	case TypeText:
		return v.kind == KindText || v.kind == KindURL
	case TypeURL:
		return v.kind == KindURL || v.kind == KindText
	case TypeNumber:
		return v.kind == KindNumber
	case TypeBoolean:
		return v.kind == KindBoolean || v.kind == KindText || v.kind == KindNumber
	case TypeChoice:
		return v.kind == KindChoice || v.kind == KindText
	default:
		return false
	}
}

// ParamFromAny converts a decoded JSON value into a ParamValue. Strings
// become text (the coercion rules widen them to url, choice or boolean
// wherever a schema expects those).
func ParamFromAny(raw interface{}) (ParamValue, error) {
	switch val := raw.(type) {
	case string:
		return Text(val), nil
	case bool:
		return Boolean(val), nil
	case float64:
		return Number(val), nil
	case int:
		return Number(float64(val)), nil
	case int64:
		return Number(float64(val)), nil
	default:
		return ParamValue{}, fmt.Errorf("%w: %T", errors.ErrUnsupportedValue, raw)
	}
}
