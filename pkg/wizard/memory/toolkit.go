package memory

import (
	"github.com/databacker/db-tools/pkg/template"
	"github.com/databacker/db-tools/pkg/wizard"
)

var _ wizard.Toolkit = &Toolkit{}

// Toolkit creates in-memory controls and finds them again by label.
type Toolkit struct {
	// FolderDialog stands in for the native folder dialog. It gets the current
	// folder and returns the chosen one, or false when cancelled.
	FolderDialog func(current string) (string, bool)

	groups  []string
	texts   map[string]*Text
	combos  map[string]*Combo
	checks  map[string]*Check
	folders map[string]*FolderChooser
}

func New() *Toolkit {
	return &Toolkit{
		texts:   map[string]*Text{},
		combos:  map[string]*Combo{},
		checks:  map[string]*Check{},
		folders: map[string]*FolderChooser{},
	}
}

func (tk *Toolkit) Group(label string) {
	tk.groups = append(tk.groups, label)
}

func (tk *Toolkit) LabelCombo(label string, readOnly bool) wizard.Combo {
	c := newCombo(label, readOnly)
	tk.combos[label] = c
	return c
}

func (tk *Toolkit) EncodingCombo(label, current string) wizard.Combo {
	c := newCombo(label, false)
	for _, enc := range wizard.Encodings() {
		c.Add(enc)
	}
	c.SetText(current)
	tk.combos[label] = c
	return c
}

func (tk *Toolkit) Checkbox(label string, selected bool) wizard.Check {
	c := &Check{Label: label, selected: selected}
	tk.checks[label] = c
	return c
}

func (tk *Toolkit) LabelText(label, value string) wizard.Text {
	t := &Text{Label: label, text: value}
	tk.texts[label] = t
	return t
}

func (tk *Toolkit) OutputFolderChooser(label, value string, onChange func()) wizard.Text {
	t := &Text{Label: label, text: value}
	if onChange != nil {
		t.OnModify(onChange)
	}
	f := &FolderChooser{Text: t, dialog: tk.FolderDialog}
	tk.folders[label] = f
	return t
}

func (tk *Toolkit) ContentProposalToolTip(text wizard.Text, tooltip string) {
	if t, ok := text.(*Text); ok {
		t.Tooltip = tooltip
	}
}

func (tk *Toolkit) InstallContentProposal(text wizard.Text, provider *template.ProposalProvider) {
	if t, ok := text.(*Text); ok {
		t.provider = provider
	}
}

// Groups in creation order.
func (tk *Toolkit) Groups() []string {
	out := make([]string, len(tk.groups))
	copy(out, tk.groups)
	return out
}

// Text with the given label, or nil.
func (tk *Toolkit) Text(label string) *Text {
	return tk.texts[label]
}

// Combo with the given label, or nil.
func (tk *Toolkit) Combo(label string) *Combo {
	return tk.combos[label]
}

// Check with the given label, or nil.
func (tk *Toolkit) Check(label string) *Check {
	return tk.checks[label]
}

// FolderChooser with the given label, or nil.
func (tk *Toolkit) FolderChooser(label string) *FolderChooser {
	return tk.folders[label]
}
