package shortcut

import "strconv"

// Default document metadata applied when a DocumentConfig leaves a field unset
const (
	DefaultMinimumClientVersion = 900
	DefaultClientVersion        = 2614
	DefaultIconGlyphNumber      = 59511
)

// DefaultIconStartColor is the stock red the Shortcuts app assigns new
// workflows (R=0xFF, G=0x43, B=0x51)
var DefaultIconStartColor = PackColor(0xFF, 0x43, 0x51)

// PackColor packs an RGB triple into the 32-bit icon color value the
// Shortcuts format uses: (R<<24)|(G<<16)|(B<<8)|0xFF
func PackColor(r, g, b byte) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF
}

// Icon is the glyph and background color shown for the workflow
type Icon struct {
	GlyphNumber int64
	StartColor  uint32
}

// ImportQuestion asks the end user for a parameter value when the shortcut
// is installed, instead of embedding the value in the document. ActionIndex
// is 0-based and must address an existing action.
type ImportQuestion struct {
	ActionIndex  int
	ParameterKey string
	Category     string
	DefaultValue string
	Text         string
}

// Document is the complete in-memory representation of a workflow file
// before serialization. Action order is significant.
type Document struct {
	Name                       string
	Icon                       Icon
	Actions                    []*Action
	InputContentItemClasses    []string
	WorkflowTypes              []string
	MinimumClientVersion       int
	MinimumClientVersionString string
	ClientVersion              int
	ClientRelease              string
	ImportQuestions            []ImportQuestion
}

// DocumentConfig carries the caller-controlled document metadata. Zero
// values fall back to the package defaults.
type DocumentConfig struct {
	Name                    string
	Icon                    Icon
	InputContentItemClasses []string
	WorkflowTypes           []string
	MinimumClientVersion    int
	ClientVersion           int
	ClientRelease           string
	ImportQuestions         []ImportQuestion
}

// NewDocument assembles a document from the given metadata and actions,
// filling unset metadata with defaults. Pure; performs no validation or I/O.
func NewDocument(cfg DocumentConfig, actions []*Action) *Document {
	doc := &Document{
		Name:                    cfg.Name,
		Icon:                    cfg.Icon,
		Actions:                 actions,
		InputContentItemClasses: cfg.InputContentItemClasses,
		WorkflowTypes:           cfg.WorkflowTypes,
		MinimumClientVersion:    cfg.MinimumClientVersion,
		ClientVersion:           cfg.ClientVersion,
		ClientRelease:           cfg.ClientRelease,
		ImportQuestions:         cfg.ImportQuestions,
	}

	if doc.Icon.GlyphNumber == 0 {
		doc.Icon.GlyphNumber = DefaultIconGlyphNumber
	}
	if doc.Icon.StartColor == 0 {
		doc.Icon.StartColor = DefaultIconStartColor
	}
	if doc.MinimumClientVersion == 0 {
		doc.MinimumClientVersion = DefaultMinimumClientVersion
	}
	doc.MinimumClientVersionString = strconv.Itoa(doc.MinimumClientVersion)
	if doc.ClientVersion == 0 {
		doc.ClientVersion = DefaultClientVersion
	}
	if doc.InputContentItemClasses == nil {
		doc.InputContentItemClasses = []string{}
	}
	if doc.WorkflowTypes == nil {
		doc.WorkflowTypes = []string{}
	}

	return doc
}
