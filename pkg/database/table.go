package database

import (
	"fmt"
	"strings"
)

const (
	tableTypeView       = "VIEW"
	tableTypeSystemView = "SYSTEM VIEW"
)

// Object is anything in a schema that can be addressed by name.
type Object interface {
	FullyQualifiedName() string
}

var (
	_ Object = &Table{}
	_ Object = &View{}
)

// Table is a base table.
type Table struct {
	Schema string
	Name   string
}

// ParseTable parses "schema.table" or "table"; either part may be backtick quoted.
func ParseTable(s string) (*Table, error) {
	parts, err := splitQualified(s)
	if err != nil {
		return nil, err
	}
	switch len(parts) {
	case 1:
		return &Table{Name: parts[0]}, nil
	case 2:
		return &Table{Schema: parts[0], Name: parts[1]}, nil
	}
	return nil, fmt.Errorf("invalid table name %q", s)
}

// FullyQualifiedName is schema.table, quoting each part only where needed.
func (t *Table) FullyQualifiedName() string {
	return qualify(t.Schema, t.Name)
}

func (t *Table) String() string {
	return t.FullyQualifiedName()
}

// View is a view; it cannot be repaired.
type View struct {
	Schema string
	Name   string
}

func (v *View) FullyQualifiedName() string {
	return qualify(v.Schema, v.Name)
}

func qualify(schema, name string) string {
	if schema == "" {
		return QuoteIdentifier(name)
	}
	return QuoteIdentifier(schema) + "." + QuoteIdentifier(name)
}

// reserved words that cannot appear unquoted as identifiers
var reserved = map[string]bool{
	"add": true, "all": true, "alter": true, "and": true, "as": true, "by": true,
	"check": true, "column": true, "create": true, "database": true, "default": true,
	"delete": true, "drop": true, "from": true, "group": true, "having": true,
	"index": true, "insert": true, "into": true, "join": true, "key": true,
	"like": true, "limit": true, "not": true, "null": true, "or": true, "order": true,
	"primary": true, "references": true, "schema": true, "select": true, "set": true,
	"table": true, "to": true, "union": true, "update": true, "use": true,
	"values": true, "where": true, "with": true,
}

// QuoteIdentifier wraps an identifier in backticks when it is empty, a reserved
// word, all digits or contains anything but letters, digits, '_' and '$'.
func QuoteIdentifier(name string) string {
	if !needsQuote(name) {
		return name
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func needsQuote(name string) bool {
	if name == "" || reserved[strings.ToLower(name)] {
		return true
	}
	digits := true
	for _, r := range name {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
			digits = false
		default:
			return true
		}
	}
	return digits
}

// splitQualified splits a dotted name, honouring backtick quoting.
func splitQualified(s string) ([]string, error) {
	var (
		parts   []string
		current strings.Builder
		quoted  bool
		wasQuot bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quoted && c == '`' && i+1 < len(s) && s[i+1] == '`':
			current.WriteByte('`')
			i++
		case c == '`':
			quoted = !quoted
			wasQuot = true
		case c == '.' && !quoted:
			if current.Len() == 0 && !wasQuot {
				return nil, fmt.Errorf("invalid table name %q", s)
			}
			parts = append(parts, current.String())
			current.Reset()
			wasQuot = false
		default:
			current.WriteByte(c)
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", s)
	}
	if current.Len() == 0 && !wasQuot {
		return nil, fmt.Errorf("invalid table name %q", s)
	}
	return append(parts, current.String()), nil
}
