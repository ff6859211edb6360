package template

import (
	"strings"
	"time"
)

// Variables available in an output file name pattern. The executor substitutes
// each one when the backup runs.
const (
	VariableHost      = "HOST"
	VariableDatabase  = "DATABASE"
	VariableTable     = "TABLE"
	VariableDate      = "DATE"
	VariableTimestamp = "TIMESTAMP"
	VariableConnType  = "CONN_TYPE"
)

const (
	dateFormat      = "20060102"
	timestampFormat = "200601021504"
)

var variables = [...]string{
	VariableHost,
	VariableDatabase,
	VariableTable,
	VariableDate,
	VariableTimestamp,
	VariableConnType,
}

// Variables returns the names of all pattern variables, in the order they are
// offered to the user.
func Variables() []string {
	out := make([]string, len(variables))
	copy(out, variables[:])
	return out
}

// VariablePattern returns the form of a variable as it appears inside a pattern,
// e.g. ${HOST}.
func VariablePattern(name string) string {
	return "${" + name + "}"
}

// Patterns returns VariablePattern for every variable, in order.
func Patterns() []string {
	out := make([]string, 0, len(variables))
	for _, v := range variables {
		out = append(out, VariablePattern(v))
	}
	return out
}

// Tooltip lists the bare variable names after the given label.
func Tooltip(label string) string {
	return label + ": " + strings.Join(variables[:], ", ")
}

// Values maps variable names to their substitution.
type Values map[string]string

// NewValues builds the substitution values for a single run.
func NewValues(host, database, table, connType string, now time.Time) Values {
	return Values{
		VariableHost:      host,
		VariableDatabase:  database,
		VariableTable:     table,
		VariableDate:      now.Format(dateFormat),
		VariableTimestamp: now.Format(timestampFormat),
		VariableConnType:  connType,
	}
}

// Expand replaces every ${NAME} token in pattern with its value. Tokens with
// no value, and unterminated tokens, are left as they are.
func Expand(pattern string, values Values) string {
	var (
		b    strings.Builder
		rest = pattern
	)
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start + 2
		name := rest[start+2 : end]
		b.WriteString(rest[:start])
		if v, ok := values[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(rest[start : end+1])
		}
		rest = rest[end+1:]
	}
	return b.String()
}
