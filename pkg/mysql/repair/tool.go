package repair

import (
	"errors"

	"github.com/databacker/db-tools/pkg/database"
)

var ErrNoDialog = errors.New("repair tool has no dialog to open")

// Tool opens the repair dialog for the tables among a selection of objects.
type Tool struct {
	// Open shows the dialog; it is required, but not called when no table is
	// selected.
	Open func(d *Dialog) error
}

// Execute filters tables out of objects and opens a dialog for them. Anything
// that is not a table, such as a view, is ignored.
func (t Tool) Execute(objects []database.Object) error {
	tables := FilterTables(objects)
	if len(tables) == 0 {
		return nil
	}
	if t.Open == nil {
		return ErrNoDialog
	}
	return t.Open(NewDialog(tables))
}

// FilterTables returns the tables in objects, in order.
func FilterTables(objects []database.Object) []*database.Table {
	var tables []*database.Table
	for _, o := range objects {
		if table, ok := o.(*database.Table); ok {
			tables = append(tables, table)
		}
	}
	return tables
}
