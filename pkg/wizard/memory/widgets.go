// Package memory is a wizard.Toolkit whose controls live only in memory. It
// backs the command line front end and page tests: user gestures are methods
// on the controls.
package memory

import (
	"fmt"

	"github.com/databacker/db-tools/pkg/template"
	"github.com/databacker/db-tools/pkg/wizard"
)

var (
	_ wizard.Text  = &Text{}
	_ wizard.Combo = &Combo{}
	_ wizard.Check = &Check{}
)

type listeners []func()

func (l listeners) fire() {
	for _, f := range l {
		f()
	}
}

// Text is an in-memory text field.
type Text struct {
	Label    string
	Tooltip  string
	text     string
	provider *template.ProposalProvider
	modify   listeners
}

func (t *Text) Text() string {
	return t.text
}

// SetText replaces the text and raises a modify event.
func (t *Text) SetText(text string) {
	t.text = text
	t.modify.fire()
}

func (t *Text) OnModify(listener func()) {
	t.modify = append(t.modify, listener)
}

// Type appends s one character at a time, as if typed by the user.
func (t *Text) Type(s string) {
	for _, r := range s {
		t.SetText(t.text + string(r))
	}
}

// Proposals offered by content assist at the end of the text.
func (t *Text) Proposals() []string {
	if t.provider == nil {
		return nil
	}
	return t.provider.Proposals(t.text, len(t.text))
}

// AcceptProposal applies a content assist proposal at the end of the text.
func (t *Text) AcceptProposal(proposal string) error {
	if t.provider == nil {
		return fmt.Errorf("no content assist on %q", t.Label)
	}
	text, _ := t.provider.Apply(t.text, len(t.text), proposal)
	t.SetText(text)
	return nil
}

// Combo is an in-memory drop-down list.
type Combo struct {
	Label    string
	ReadOnly bool
	items    []string
	index    int
	text     string
	selected listeners
}

func newCombo(label string, readOnly bool) *Combo {
	return &Combo{Label: label, ReadOnly: readOnly, index: -1}
}

func (c *Combo) Add(item string) {
	c.items = append(c.items, item)
}

func (c *Combo) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Select the item at index; out of range indexes are ignored.
func (c *Combo) Select(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.index = index
	c.text = c.items[index]
}

func (c *Combo) SelectionIndex() int {
	return c.index
}

func (c *Combo) Text() string {
	return c.text
}

// SetText selects the matching item. An editable combo also takes text that
// matches no item; a read-only one ignores it.
func (c *Combo) SetText(text string) {
	for i, item := range c.items {
		if item == text {
			c.Select(i)
			return
		}
	}
	if c.ReadOnly {
		return
	}
	c.index = -1
	c.text = text
}

func (c *Combo) OnSelect(listener func()) {
	c.selected = append(c.selected, listener)
}

// Choose selects the item at index as the user would, raising a selection event.
func (c *Combo) Choose(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%q has no item %d", c.Label, index)
	}
	c.Select(index)
	c.selected.fire()
	return nil
}

// ChooseText selects the item with the given text, or for an editable combo
// enters the text, raising a selection event.
func (c *Combo) ChooseText(text string) error {
	for i, item := range c.items {
		if item == text {
			return c.Choose(i)
		}
	}
	if c.ReadOnly {
		return fmt.Errorf("%q has no item %q", c.Label, text)
	}
	c.SetText(text)
	c.selected.fire()
	return nil
}

// Check is an in-memory check box.
type Check struct {
	Label    string
	selected bool
	onSelect listeners
}

func (c *Check) Selected() bool {
	return c.selected
}

func (c *Check) SetSelected(selected bool) {
	c.selected = selected
}

func (c *Check) OnSelect(listener func()) {
	c.onSelect = append(c.onSelect, listener)
}

// Click toggles the box as the user would, raising a selection event.
func (c *Check) Click() {
	c.selected = !c.selected
	c.onSelect.fire()
}

// FolderChooser is a text field with a browse button.
type FolderChooser struct {
	*Text
	dialog func(current string) (string, bool)
}

// Browse opens the folder dialog and takes its result, unless cancelled.
func (f *FolderChooser) Browse() error {
	if f.dialog == nil {
		return fmt.Errorf("no folder dialog for %q", f.Label)
	}
	folder, ok := f.dialog(f.Text.Text())
	if !ok {
		return nil
	}
	f.SetText(folder)
	return nil
}
