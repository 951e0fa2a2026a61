package template

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	cerrors "github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
)

// deterministicTemplate builds a test template whose generator assigns no
// fresh chain identifiers, so generated lists can be compared directly
func deterministicTemplate(name string) Definition {
	return Definition{
		Name:        name,
		Description: "test template",
		Params: []ParamDef{
			{Name: "message", Type: TypeText, Required: true},
			{Name: "mode", Type: TypeChoice, Options: []string{"loud", "quiet"}, Default: paramDefault(Choice("quiet"))},
			{Name: "repeat", Type: TypeBoolean, Default: paramDefault(Boolean(false))},
		},
		Generate: func(params map[string]ParamValue) ([]*shortcut.Action, error) {
			action := shortcut.NewAction(shortcut.ActionGetText)
			action.Parameters.Set("WFTextActionText", shortcut.Text(params["message"].Text()))
			action.Parameters.Set("Mode", shortcut.Text(params["mode"].Text()))
			action.Parameters.Set("Repeat", shortcut.Boolean(params["repeat"].Bool()))
			return []*shortcut.Action{action}, nil
		},
	}
}

func TestRegisterOverwriteAndUnregister(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("sample"))

	// Last write wins on re-register, no error
	replacement := deterministicTemplate("sample")
	replacement.Description = "replacement"
	engine.Register(replacement)

	infos := engine.List()
	if len(infos) != 1 {
		t.Fatalf("expected 1 registered template, got %d", len(infos))
	}
	if infos[0].Description != "replacement" {
		t.Errorf("re-register did not overwrite: %q", infos[0].Description)
	}

	if !engine.Unregister("sample") {
		t.Errorf("Unregister should report removal of an existing template")
	}
	if engine.Unregister("sample") {
		t.Errorf("Unregister should report a missing template")
	}
}

func TestListIsSortedByName(t *testing.T) {
	engine := NewEngine()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		engine.Register(deterministicTemplate(name))
	}

	infos := engine.List()
	want := []string{"alpha", "mid", "zeta"}
	for i, name := range want {
		if infos[i].Name != name {
			t.Errorf("List()[%d] = %q, want %q", i, infos[i].Name, name)
		}
	}
}

func TestValidateUnknownTemplate(t *testing.T) {
	engine := NewEngine()
	err := engine.Validate("nope", nil)

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Name != "nope" {
		t.Errorf("error names %q", notFound.Name)
	}
	if !errors.Is(err, cerrors.ErrTemplateNotFound) {
		t.Errorf("error does not unwrap to the sentinel")
	}
}

func TestValidateMissingRequiredParameter(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("sample"))

	err := engine.Validate("sample", map[string]ParamValue{})
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError, got %v", err)
	}
	if missing.Name != "message" {
		t.Errorf("error names %q, want %q", missing.Name, "message")
	}

	// Parameters with defaults may be omitted
	err = engine.Validate("sample", map[string]ParamValue{"message": Text("hi")})
	if err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("sample"))

	err := engine.Validate("sample", map[string]ParamValue{"message": Number(7)})
	var invalid *InvalidTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTypeError, got %v", err)
	}
	if invalid.Name != "message" || invalid.Expected != TypeText || invalid.Got != KindNumber {
		t.Errorf("error context = %+v", invalid)
	}
}

func TestValidateInvalidChoice(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("sample"))

	err := engine.Validate("sample", map[string]ParamValue{
		"message": Text("hi"),
		"mode":    Text("shouting"),
	})
	var invalid *InvalidChoiceError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidChoiceError, got %v", err)
	}
	if invalid.Name != "mode" || invalid.Value != "shouting" {
		t.Errorf("error context = %+v", invalid)
	}
	if len(invalid.Options) != 2 {
		t.Errorf("error must carry the full option set, got %v", invalid.Options)
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("sample"))

	params := map[string]ParamValue{"message": Text("hi")}
	if err := engine.Validate("sample", params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(params) != 1 {
		t.Errorf("Validate merged defaults into caller input: %v", params)
	}
}

func TestGenerateMergesDefaultsIdempotently(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("sample"))

	implicit, err := engine.Generate("sample", map[string]ParamValue{"message": Text("hi")})
	if err != nil {
		t.Fatalf("generate with defaults failed: %v", err)
	}

	explicit, err := engine.Generate("sample", map[string]ParamValue{
		"message": Text("hi"),
		"mode":    Choice("quiet"),
		"repeat":  Boolean(false),
	})
	if err != nil {
		t.Fatalf("generate with explicit defaults failed: %v", err)
	}

	if len(implicit) != len(explicit) {
		t.Fatalf("action counts differ: %d vs %d", len(implicit), len(explicit))
	}
	for i := range implicit {
		if implicit[i].Identifier != explicit[i].Identifier {
			t.Errorf("action %d identifiers differ", i)
		}
		for _, key := range implicit[i].Parameters.Keys() {
			a, _ := implicit[i].Parameters.Get(key)
			b, ok := explicit[i].Parameters.Get(key)
			if !ok || !a.Equal(b) {
				t.Errorf("action %d parameter %q differs", i, key)
			}
		}
	}
}

func TestGenerateExplicitValuesWinOverDefaults(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("sample"))

	actions, err := engine.Generate("sample", map[string]ParamValue{
		"message": Text("hi"),
		"mode":    Choice("loud"),
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	mode, _ := actions[0].Parameters.Get("Mode")
	if mode.TextValue() != "loud" {
		t.Errorf("explicit value lost to default: %q", mode.TextValue())
	}
}

func TestGenerateWrapsForeignErrors(t *testing.T) {
	engine := NewEngine()
	engine.Register(Definition{
		Name: "broken",
		Generate: func(map[string]ParamValue) ([]*shortcut.Action, error) {
			return nil, fmt.Errorf("boom")
		},
	})

	_, err := engine.Generate("broken", nil)
	var generation *GenerationError
	if !errors.As(err, &generation) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if generation.Reason != "boom" {
		t.Errorf("reason = %q", generation.Reason)
	}
}

func TestGeneratePassesThroughTemplateErrors(t *testing.T) {
	engine := NewEngine()
	engine.Register(Definition{
		Name: "picky",
		Generate: func(map[string]ParamValue) ([]*shortcut.Action, error) {
			return nil, &GenerationError{Template: "picky", Reason: "already wrapped"}
		},
	})

	_, err := engine.Generate("picky", nil)
	var generation *GenerationError
	if !errors.As(err, &generation) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if generation.Reason != "already wrapped" {
		t.Errorf("recognized template error was re-wrapped: %q", generation.Reason)
	}
}

func TestBuildDocumentAssemblesWithoutIO(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("sample"))

	doc, err := engine.BuildDocument("sample",
		map[string]ParamValue{"message": Text("hi")},
		shortcut.DocumentConfig{Name: "Test Doc"})
	if err != nil {
		t.Fatalf("BuildDocument failed: %v", err)
	}
	if doc.Name != "Test Doc" {
		t.Errorf("name = %q", doc.Name)
	}
	if len(doc.Actions) != 1 {
		t.Errorf("action count = %d", len(doc.Actions))
	}
}

func TestEngineConcurrentAccess(t *testing.T) {
	engine := NewEngine()
	engine.Register(deterministicTemplate("stable"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(3)
		go func(n int) {
			defer wg.Done()
			engine.Register(deterministicTemplate(fmt.Sprintf("spin-%d", n)))
		}(i)
		go func() {
			defer wg.Done()
			if err := engine.Validate("stable", map[string]ParamValue{"message": Text("hi")}); err != nil {
				t.Errorf("concurrent Validate failed: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := engine.Generate("stable", map[string]ParamValue{"message": Text("hi")}); err != nil {
				t.Errorf("concurrent Generate failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(engine.List()) != 9 {
		t.Errorf("expected 9 templates after concurrent registration, got %d", len(engine.List()))
	}
}
