package shortcut

import "testing"

func TestPackColor(t *testing.T) {
	// The stock red: R=0xFF, G=0x43, B=0x51
	if got := PackColor(0xFF, 0x43, 0x51); got != 4282601983 {
		t.Errorf("PackColor(0xFF, 0x43, 0x51) = %d, want 4282601983", got)
	}
	if got := PackColor(0, 0, 0); got != 0xFF {
		t.Errorf("PackColor(0, 0, 0) = %d, want alpha-only 255", got)
	}
}

func TestNewDocumentAppliesDefaults(t *testing.T) {
	actions := []*Action{NewAction(ActionGetText)}
	doc := NewDocument(DocumentConfig{}, actions)

	if doc.MinimumClientVersion != DefaultMinimumClientVersion {
		t.Errorf("minimum client version = %d, want %d", doc.MinimumClientVersion, DefaultMinimumClientVersion)
	}
	if doc.MinimumClientVersionString != "900" {
		t.Errorf("minimum client version string = %q, want %q", doc.MinimumClientVersionString, "900")
	}
	if doc.ClientVersion != DefaultClientVersion {
		t.Errorf("client version = %d, want %d", doc.ClientVersion, DefaultClientVersion)
	}
	if doc.Icon.GlyphNumber != DefaultIconGlyphNumber {
		t.Errorf("icon glyph = %d, want %d", doc.Icon.GlyphNumber, DefaultIconGlyphNumber)
	}
	if doc.Icon.StartColor != DefaultIconStartColor {
		t.Errorf("icon color = %d, want %d", doc.Icon.StartColor, DefaultIconStartColor)
	}
	if doc.InputContentItemClasses == nil || doc.WorkflowTypes == nil {
		t.Errorf("expected empty, non-nil class and type lists")
	}
}

func TestNewDocumentKeepsExplicitMetadata(t *testing.T) {
	cfg := DocumentConfig{
		Name:                 "My Shortcut",
		Icon:                 Icon{GlyphNumber: 61440, StartColor: PackColor(0x00, 0x80, 0xFF)},
		MinimumClientVersion: 1000,
		ClientVersion:        2700,
		ClientRelease:        "7.0",
		WorkflowTypes:        []string{"NCWidget"},
	}
	doc := NewDocument(cfg, []*Action{NewAction(ActionGetText)})

	if doc.Name != "My Shortcut" {
		t.Errorf("name = %q", doc.Name)
	}
	if doc.MinimumClientVersion != 1000 || doc.MinimumClientVersionString != "1000" {
		t.Errorf("minimum client version = %d/%q", doc.MinimumClientVersion, doc.MinimumClientVersionString)
	}
	if doc.ClientVersion != 2700 || doc.ClientRelease != "7.0" {
		t.Errorf("client version = %d release %q", doc.ClientVersion, doc.ClientRelease)
	}
	if doc.Icon.GlyphNumber != 61440 {
		t.Errorf("icon glyph = %d", doc.Icon.GlyphNumber)
	}
	if len(doc.WorkflowTypes) != 1 || doc.WorkflowTypes[0] != "NCWidget" {
		t.Errorf("workflow types = %v", doc.WorkflowTypes)
	}
}
