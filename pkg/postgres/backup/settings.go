package backup

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/databacker/db-tools/pkg/nativetool"
	"github.com/databacker/db-tools/pkg/template"
)

const (
	DefaultEncoding = "UTF-8"
	maxCompression  = 9
)

// DefaultFilePattern is the output file name pattern of new settings, before
// its extension is matched to the format.
var DefaultFilePattern = "dump-" + template.VariablePattern(template.VariableDatabase) + "-" + template.VariablePattern(template.VariableTimestamp)

var ErrOutputFolderNotSpecified = errors.New("Output folder not specified")

// Settings holds everything the user can adjust for a PostgreSQL logical
// backup. Fields are not validated when set; the settings page keeps them
// consistent.
type Settings struct {
	// OutputFolder where the backup is written; empty means not specified.
	OutputFolder string `yaml:"outputFolder,omitempty"`
	// OutputFilePattern may contain template variables, e.g. ${DATABASE}.
	OutputFilePattern string       `yaml:"outputFilePattern"`
	Format            ExportFormat `yaml:"format"`
	// Compression is empty for the pg_dump default, otherwise a level 0-9.
	Compression  string `yaml:"compression,omitempty"`
	Encoding     string `yaml:"encoding,omitempty"`
	UseInserts   bool   `yaml:"useInserts"`
	NoPrivileges bool   `yaml:"noPrivileges"`
	NoOwner      bool   `yaml:"noOwner"`

	nativetool.ToolSettings `yaml:",inline"`
}

// NewSettings returns settings with their defaults.
func NewSettings() *Settings {
	return &Settings{
		OutputFilePattern: DefaultFilePattern,
		Format:            FormatPlain,
		Encoding:          DefaultEncoding,
	}
}

// CompressionLevels lists the selectable compression values, the first one
// meaning the pg_dump default.
func CompressionLevels() []string {
	levels := []string{""}
	for i := 0; i <= maxCompression; i++ {
		levels = append(levels, strconv.Itoa(i))
	}
	return levels
}

// ValidCompression reports whether s is empty or a single digit.
func ValidCompression(s string) bool {
	return s == "" || (len(s) == 1 && s[0] >= '0' && s[0] <= '9')
}

// HasOutputFolder reports whether an output folder is specified.
func (s *Settings) HasOutputFolder() bool {
	return s.OutputFolder != ""
}

// OutputFile expands the file name pattern and places it in the output folder.
func (s *Settings) OutputFile(values template.Values) (string, error) {
	if !s.HasOutputFolder() {
		return "", ErrOutputFolderNotSpecified
	}
	return filepath.Join(s.OutputFolder, template.Expand(s.OutputFilePattern, values)), nil
}

// DumpArgs builds the pg_dump arguments that write these settings to outputFile.
// Connection arguments are not included.
func (s *Settings) DumpArgs(outputFile string) ([]string, error) {
	if !ValidCompression(s.Compression) {
		return nil, fmt.Errorf("invalid compression level %q", s.Compression)
	}
	extra, err := s.SplitExtraArgs()
	if err != nil {
		return nil, err
	}
	args := []string{"--format=" + s.Format.ID()}
	if outputFile != "" {
		args = append(args, "--file="+outputFile)
	}
	if s.Compression != "" {
		args = append(args, "--compress="+s.Compression)
	}
	if s.Encoding != "" {
		args = append(args, "--encoding="+s.Encoding)
	}
	if s.UseInserts {
		args = append(args, "--inserts")
	}
	if s.NoPrivileges {
		args = append(args, "--no-privileges")
	}
	if s.NoOwner {
		args = append(args, "--no-owner")
	}
	return append(args, extra...), nil
}

// LoadSettings reads settings saved by Save. Fields missing from the input keep
// their defaults; empty input gives the defaults.
func LoadSettings(r io.Reader) (*Settings, error) {
	s := NewSettings()
	if err := yaml.NewDecoder(r).Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read backup settings: %w", err)
	}
	return s, nil
}

// Save writes the settings as YAML.
func (s *Settings) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to write backup settings: %w", err)
	}
	return enc.Close()
}
