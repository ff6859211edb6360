package repair

import (
	"context"
	"fmt"

	"github.com/databacker/db-tools/pkg/database"
	"github.com/databacker/db-tools/pkg/wizard"
)

const (
	DialogTitle = "Repair table(s)"

	groupOptions  = "Options"
	groupObjects  = "Tables"
	labelQuick    = "Quick"
	labelExtended = "Extended"
	labelUseFrm   = "Use FRM"
)

// StatementExecutor runs a batch of statements.
type StatementExecutor interface {
	Execute(ctx context.Context, statements []string) ([]database.Result, error)
}

// Dialog collects the repair options and the tables to repair, and keeps a
// preview of the statements up to date while they change.
type Dialog struct {
	tables        []*database.Table
	objectChecks  []wizard.Check
	quickCheck    wizard.Check
	extendedCheck wizard.Check
	frmCheck      wizard.Check
	lines         []string
	onChange      []func(lines []string)
}

// NewDialog creates a dialog for tables. All tables start selected.
func NewDialog(tables []*database.Table) *Dialog {
	return &Dialog{tables: tables}
}

func (d *Dialog) Title() string {
	return DialogTitle
}

// OnSQLChange registers a listener called with the new statements whenever
// the options or the selection change.
func (d *Dialog) OnSQLChange(listener func(lines []string)) {
	d.onChange = append(d.onChange, listener)
}

// CreateControls builds the option check boxes and the object selector.
// Initial options are taken from opts.
func (d *Dialog) CreateControls(tk wizard.Toolkit, opts Options) {
	tk.Group(groupOptions)
	d.quickCheck = tk.Checkbox(labelQuick, opts.Quick)
	d.quickCheck.OnSelect(d.updateSQL)
	d.extendedCheck = tk.Checkbox(labelExtended, opts.Extended)
	d.extendedCheck.OnSelect(d.updateSQL)
	d.frmCheck = tk.Checkbox(labelUseFrm, opts.UseFrm)
	d.frmCheck.OnSelect(d.updateSQL)

	d.createObjectsSelector(tk)
	d.updateSQL()
}

func (d *Dialog) createObjectsSelector(tk wizard.Toolkit) {
	tk.Group(groupObjects)
	d.objectChecks = make([]wizard.Check, len(d.tables))
	for i, t := range d.tables {
		d.objectChecks[i] = tk.Checkbox(t.FullyQualifiedName(), true)
		d.objectChecks[i].OnSelect(d.updateSQL)
	}
}

// Options as currently checked.
func (d *Dialog) Options() Options {
	if d.quickCheck == nil {
		return Options{}
	}
	return Options{
		Quick:    d.quickCheck.Selected(),
		Extended: d.extendedCheck.Selected(),
		UseFrm:   d.frmCheck.Selected(),
	}
}

// SelectedTables are the tables checked in the object selector.
func (d *Dialog) SelectedTables() []*database.Table {
	if d.objectChecks == nil {
		return d.tables
	}
	var selected []*database.Table
	for i, t := range d.tables {
		if d.objectChecks[i].Selected() {
			selected = append(selected, t)
		}
	}
	return selected
}

// SQL is the current statement preview.
func (d *Dialog) SQL() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d *Dialog) updateSQL() {
	d.lines = d.Options().GenerateSQL(d.SelectedTables())
	for _, f := range d.onChange {
		f(d.SQL())
	}
}

// Run executes the current statements.
func (d *Dialog) Run(ctx context.Context, executor StatementExecutor) ([]database.Result, error) {
	if len(d.lines) == 0 {
		return nil, fmt.Errorf("no tables selected")
	}
	return executor.Execute(ctx, d.SQL())
}
