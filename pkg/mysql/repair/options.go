// Package repair builds and runs MySQL REPAIR TABLE statements for a selection
// of tables.
package repair

import (
	"strings"

	"github.com/databacker/db-tools/pkg/database"
)

// Options of REPAIR TABLE. They are independent of each other.
type Options struct {
	Quick    bool `yaml:"quick"`
	Extended bool `yaml:"extended"`
	UseFrm   bool `yaml:"useFrm"`
}

// Statement returns the REPAIR TABLE statement for table. Options always
// appear in the order QUICK, EXTENDED, USE_FRM.
func (o Options) Statement(table database.Object) string {
	var b strings.Builder
	b.WriteString("REPAIR TABLE ")
	b.WriteString(table.FullyQualifiedName())
	if o.Quick {
		b.WriteString(" QUICK")
	}
	if o.Extended {
		b.WriteString(" EXTENDED")
	}
	if o.UseFrm {
		b.WriteString(" USE_FRM")
	}
	return b.String()
}

// GenerateSQL returns one statement per table, in order.
func (o Options) GenerateSQL(tables []*database.Table) []string {
	lines := make([]string, 0, len(tables))
	for _, t := range tables {
		lines = append(lines, o.Statement(t))
	}
	return lines
}
