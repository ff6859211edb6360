package backup

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExportFormat is an archive format understood by pg_dump. The set is closed;
// its declaration order is the order formats are offered to the user.
type ExportFormat int

const (
	FormatPlain ExportFormat = iota
	FormatCustom
	FormatDirectory
	FormatTar
)

type formatInfo struct {
	name  string
	id    string
	title string
	ext   string
}

var formats = [...]formatInfo{
	FormatPlain:     {name: "plain", id: "p", title: "Plain", ext: "sql"},
	FormatCustom:    {name: "custom", id: "c", title: "Custom", ext: ""},
	FormatDirectory: {name: "directory", id: "d", title: "Directory", ext: ""},
	FormatTar:       {name: "tar", id: "t", title: "Tar", ext: "tar"},
}

// Formats returns every export format in declaration order.
func Formats() []ExportFormat {
	out := make([]ExportFormat, len(formats))
	for i := range formats {
		out[i] = ExportFormat(i)
	}
	return out
}

// FormatByOrdinal returns the format at position i of the declaration order.
// It panics if i is out of range.
func FormatByOrdinal(i int) ExportFormat {
	if i < 0 || i >= len(formats) {
		panic(fmt.Sprintf("export format ordinal %d out of range", i))
	}
	return ExportFormat(i)
}

// ParseFormat finds a format by name, pg_dump id or title, ignoring case.
func ParseFormat(s string) (ExportFormat, error) {
	for i, f := range formats {
		if strings.EqualFold(s, f.name) || strings.EqualFold(s, f.id) || strings.EqualFold(s, f.title) {
			return ExportFormat(i), nil
		}
	}
	return FormatPlain, fmt.Errorf("unknown export format: %s", s)
}

func (f ExportFormat) info() formatInfo {
	return formats[FormatByOrdinal(int(f))]
}

// Ordinal position of the format in declaration order.
func (f ExportFormat) Ordinal() int {
	return int(f)
}

// ID is the value passed to pg_dump --format.
func (f ExportFormat) ID() string {
	return f.info().id
}

// Title is the human readable name.
func (f ExportFormat) Title() string {
	return f.info().title
}

// Ext is the canonical file extension, without the dot. It may be empty.
func (f ExportFormat) Ext() string {
	return f.info().ext
}

func (f ExportFormat) String() string {
	return f.info().name
}

func (f ExportFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

func (f *ExportFormat) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
