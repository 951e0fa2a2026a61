// Package shortcut models Shortcuts workflow documents and serializes them
// to the binary property list format the Shortcuts app consumes.
package shortcut

// Action identifiers understood by the Shortcuts app. The namespace is
// defined by Apple and treated as opaque here.
const (
	ActionDownloadURL        = "is.workflow.actions.downloadurl"
	ActionGetDictionaryValue = "is.workflow.actions.getvalueforkey"
	ActionShowResult         = "is.workflow.actions.showresult"
	ActionGetText            = "is.workflow.actions.gettext"
	ActionSaveFile           = "is.workflow.actions.documentpicker.save"
	ActionShowNotification   = "is.workflow.actions.notification"
	ActionChangeCase         = "is.workflow.actions.text.changecase"
	ActionReplaceText        = "is.workflow.actions.text.replace"
	ActionSplitText          = "is.workflow.actions.text.split"
	ActionCombineText        = "is.workflow.actions.text.combine"
)

// FileExtension is the extension the Shortcuts app expects on workflow files
const FileExtension = ".shortcut"
