// Package wizard contains the settings pages of the native tool wizards. Pages
// never draw anything themselves: they build their controls through a Toolkit
// and react to the events those controls raise.
package wizard

import "github.com/databacker/db-tools/pkg/template"

// Text is a single line text field. SetText raises a modify event.
type Text interface {
	Text() string
	SetText(text string)
	OnModify(listener func())
}

// Combo is a drop-down list. A read-only combo only ever holds one of its items;
// an editable one accepts any text. Select does not raise a selection event,
// only user gestures do.
type Combo interface {
	Add(item string)
	Items() []string
	Select(index int)
	SelectionIndex() int
	Text() string
	SetText(text string)
	OnSelect(listener func())
}

// Check is a check box. SetSelected does not raise a selection event.
type Check interface {
	Selected() bool
	SetSelected(selected bool)
	OnSelect(listener func())
}

// Toolkit creates controls for a page.
type Toolkit interface {
	// Group starts a titled group; following controls belong to it.
	Group(label string)
	LabelCombo(label string, readOnly bool) Combo
	// EncodingCombo creates an editable combo listing well known character sets.
	EncodingCombo(label, current string) Combo
	Checkbox(label string, selected bool) Check
	LabelText(label, value string) Text
	// OutputFolderChooser creates a text field with a button opening a folder
	// dialog. onChange is called whenever the folder changes.
	OutputFolderChooser(label, value string, onChange func()) Text
	ContentProposalToolTip(text Text, tooltip string)
	InstallContentProposal(text Text, provider *template.ProposalProvider)
}

// Container is the wizard hosting a page.
type Container interface {
	UpdateButtons()
}
