package shortcut

import (
	"encoding/json"
	"testing"
)

func TestValueFromAnyScalars(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
		want Value
	}{
		{"string", "hello", Text("hello")},
		{"bool", true, Boolean(true)},
		{"int", 42, Integer(42)},
		{"int64", int64(-7), Integer(-7)},
		{"uint64", uint64(900), Integer(900)},
		{"float64", 3.5, Real(3.5)},
		{"json integer", json.Number("12"), Integer(12)},
		{"json real", json.Number("2.25"), Real(2.25)},
	}

	for _, tc := range cases {
		got, err := ValueFromAny(tc.raw)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("%s: got kind %v, want kind %v", tc.name, got.Kind(), tc.want.Kind())
		}
	}
}

func TestValueFromAnyNested(t *testing.T) {
	raw := map[string]interface{}{
		"headers": map[string]interface{}{"Authorization": "Bearer tok"},
		"retries": 3,
		"paths":   []interface{}{"a", "b"},
	}

	got, err := ValueFromAny(raw)
	if err != nil {
		t.Fatalf("ValueFromAny failed: %v", err)
	}
	if got.Kind() != KindMap {
		t.Fatalf("expected map, got %v", got.Kind())
	}

	headers, ok := got.MapValue().Get("headers")
	if !ok || headers.Kind() != KindMap {
		t.Fatalf("expected nested headers map")
	}
	auth, ok := headers.MapValue().Get("Authorization")
	if !ok || auth.TextValue() != "Bearer tok" {
		t.Errorf("expected Authorization header, got %v", auth)
	}

	paths, _ := got.MapValue().Get("paths")
	if paths.Kind() != KindList || len(paths.ListValue()) != 2 {
		t.Errorf("expected 2-item list, got %v", paths)
	}
}

func TestValueFromAnyUnsupported(t *testing.T) {
	for _, raw := range []interface{}{nil, struct{}{}, make(chan int)} {
		if _, err := ValueFromAny(raw); err == nil {
			t.Errorf("expected error for %T", raw)
		}
	}
}

func TestParamsPreserveInsertionOrder(t *testing.T) {
	params := NewParams()
	params.Set("zebra", Text("z"))
	params.Set("alpha", Text("a"))
	params.Set("middle", Text("m"))
	// Overwriting keeps the original position
	params.Set("zebra", Text("z2"))

	want := []string{"zebra", "alpha", "middle"}
	got := params.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: got %q, want %q", i, got[i], want[i])
		}
	}

	v, _ := params.Get("zebra")
	if v.TextValue() != "z2" {
		t.Errorf("overwrite did not replace value: %q", v.TextValue())
	}
}

func TestParamsDelete(t *testing.T) {
	params := NewParams()
	params.Set("a", Text("1"))

	if !params.Delete("a") {
		t.Errorf("expected Delete to report existing key")
	}
	if params.Delete("a") {
		t.Errorf("expected Delete to report missing key")
	}
	if params.Len() != 0 {
		t.Errorf("expected empty params, got %d entries", params.Len())
	}
}

func TestValueEqual(t *testing.T) {
	a := List(Text("x"), Integer(1))
	b := List(Text("x"), Integer(1))
	c := List(Text("x"), Integer(2))

	if !a.Equal(b) {
		t.Errorf("expected equal lists")
	}
	if a.Equal(c) {
		t.Errorf("expected unequal lists")
	}
	if Text("1").Equal(Integer(1)) {
		t.Errorf("cross-kind values must not compare equal")
	}
}
