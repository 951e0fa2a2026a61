package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cerrors "github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Shortcut", "My-Shortcut"},
		{"a/b\\c:d*e?f\"g<h>i|j", "abcdefghij"},
		{"", "shortcut"},
		{`/\:*?"<>|`, "shortcut"},
		{"already-clean", "already-clean"},
		{strings.Repeat("x", 80), strings.Repeat("x", 50)},
	}

	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateRejectsEmptyActions(t *testing.T) {
	gen := New(Config{OutputDir: t.TempDir()})
	if _, err := gen.Generate(nil); !errors.Is(err, cerrors.ErrEmptyActions) {
		t.Fatalf("expected ErrEmptyActions, got %v", err)
	}
}

func sampleActions() []*shortcut.Action {
	action := shortcut.NewAction(shortcut.ActionGetText)
	action.ChainID = "chain-1"
	action.Parameters.Set("WFTextActionText", shortcut.Text("hello"))
	return []*shortcut.Action{action}
}

func TestGenerateWritesDecodableFile(t *testing.T) {
	dir := t.TempDir()
	gen := New(Config{
		OutputDir: dir,
		Document:  shortcut.DocumentConfig{Name: "Round Trip"},
	})

	result, err := gen.Generate(sampleActions())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if filepath.Ext(result.Path) != shortcut.FileExtension {
		t.Errorf("file extension = %q, want %q", filepath.Ext(result.Path), shortcut.FileExtension)
	}
	if !strings.HasPrefix(filepath.Base(result.Path), "Round-Trip-") {
		t.Errorf("filename %q does not start with the sanitized name", filepath.Base(result.Path))
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	if int64(len(data)) != result.Size {
		t.Errorf("reported size %d, file size %d", result.Size, len(data))
	}

	doc, err := shortcut.Unmarshal(data)
	if err != nil {
		t.Fatalf("generated file does not decode: %v", err)
	}
	if doc.Name != "Round Trip" {
		t.Errorf("decoded name = %q", doc.Name)
	}
	if len(doc.Actions) != 1 || doc.Actions[0].Identifier != shortcut.ActionGetText {
		t.Errorf("decoded actions = %+v", doc.Actions)
	}
	if doc.Actions[0].ChainID != "chain-1" {
		t.Errorf("decoded chain id = %q", doc.Actions[0].ChainID)
	}
}

func TestGenerateRejectsOutOfRangeImportQuestionIndex(t *testing.T) {
	dir := t.TempDir()
	actions := sampleActions()

	for _, index := range []int{-1, len(actions)} {
		gen := New(Config{
			OutputDir: dir,
			Document: shortcut.DocumentConfig{
				Name: "Questions",
				ImportQuestions: []shortcut.ImportQuestion{
					{ActionIndex: index, ParameterKey: "WFTextActionText"},
				},
			},
		})
		_, err := gen.Generate(actions)
		if !errors.Is(err, cerrors.ErrInvalidArgument) {
			t.Errorf("index %d: expected ErrInvalidArgument, got %v", index, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("failed generation left %d files behind", len(entries))
	}
}

func TestGenerateAcceptsInRangeImportQuestionIndex(t *testing.T) {
	gen := New(Config{
		OutputDir: t.TempDir(),
		Document: shortcut.DocumentConfig{
			Name: "Questions",
			ImportQuestions: []shortcut.ImportQuestion{
				{ActionIndex: 0, ParameterKey: "WFTextActionText", Text: "What text?"},
			},
		},
	})
	result, err := gen.Generate(sampleActions())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(result.Document.ImportQuestions) != 1 {
		t.Errorf("import questions = %d", len(result.Document.ImportQuestions))
	}
}

func TestGenerateCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	gen := New(Config{OutputDir: dir, Document: shortcut.DocumentConfig{Name: "n"}})

	result, err := gen.Generate(sampleActions())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := os.Stat(result.Path); err != nil {
		t.Errorf("generated file missing: %v", err)
	}
}

func TestGenerateFilenamesDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	gen := New(Config{OutputDir: dir, Document: shortcut.DocumentConfig{Name: "Same Name"}})

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		result, err := gen.Generate(sampleActions())
		if err != nil {
			t.Fatalf("generate %d failed: %v", i, err)
		}
		if seen[result.Path] {
			t.Fatalf("duplicate path %q", result.Path)
		}
		seen[result.Path] = true
	}
}
