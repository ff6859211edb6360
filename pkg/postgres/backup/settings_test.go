package backup

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databacker/db-tools/pkg/nativetool"
	"github.com/databacker/db-tools/pkg/template"
)

func TestNewSettings(t *testing.T) {
	s := NewSettings()
	expected := &Settings{
		OutputFilePattern: "dump-${DATABASE}-${TIMESTAMP}",
		Format:            FormatPlain,
		Encoding:          "UTF-8",
	}
	if diff := deep.Equal(s, expected); diff != nil {
		t.Errorf("NewSettings() mismatch: %v", diff)
	}
	assert.False(t, s.HasOutputFolder())
}

func TestCompressionLevels(t *testing.T) {
	assert.Equal(t, []string{"", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, CompressionLevels())
	for _, level := range CompressionLevels() {
		assert.True(t, ValidCompression(level), level)
	}
	for _, level := range []string{"10", "-1", "a", " ", "00"} {
		assert.False(t, ValidCompression(level), level)
	}
}

func TestSaveLoad(t *testing.T) {
	s := &Settings{
		OutputFolder:      "/var/backups",
		OutputFilePattern: "dump-${DATABASE}.tar",
		Format:            FormatTar,
		Compression:       "5",
		Encoding:          "LATIN1",
		UseInserts:        true,
		NoOwner:           true,
		ToolSettings:      nativetool.ToolSettings{ExtraArgs: "--verbose"},
	}
	var buf bytes.Buffer
	require.NoError(t, s.Save(&buf))
	assert.Contains(t, buf.String(), "format: tar")

	loaded, err := LoadSettings(&buf)
	require.NoError(t, err)
	if diff := deep.Equal(loaded, s); diff != nil {
		t.Errorf("loaded settings mismatch: %v", diff)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected *Settings
		wantErr  bool
	}{
		{"empty", "", NewSettings(), false},
		{"partial", "format: custom\nnoOwner: true\n", &Settings{
			OutputFilePattern: DefaultFilePattern,
			Format:            FormatCustom,
			Encoding:          DefaultEncoding,
			NoOwner:           true,
		}, false},
		{"bad format", "format: zip\n", nil, true},
		{"not yaml", "format: [\n", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadSettings(strings.NewReader(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := deep.Equal(got, tt.expected); diff != nil {
				t.Errorf("LoadSettings mismatch: %v", diff)
			}
		})
	}
}

func TestOutputFile(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)
	values := template.NewValues("localhost", "sales", "", "prod", now)

	s := NewSettings()
	s.OutputFilePattern = "dump-${DATABASE}-${TIMESTAMP}.sql"
	_, err := s.OutputFile(values)
	assert.ErrorIs(t, err, ErrOutputFolderNotSpecified)

	s.OutputFolder = "/tmp/out"
	got, err := s.OutputFile(values)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/out", "dump-sales-202401020304.sql"), got)
}

func TestDumpArgs(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		file     string
		expected []string
		wantErr  bool
	}{
		{"defaults", *NewSettings(), "/tmp/a.sql", []string{"--format=p", "--file=/tmp/a.sql", "--encoding=UTF-8"}, false},
		{"no file", Settings{Format: FormatDirectory}, "", []string{"--format=d"}, false},
		{"everything", Settings{
			Format:       FormatCustom,
			Compression:  "9",
			Encoding:     "LATIN1",
			UseInserts:   true,
			NoPrivileges: true,
			NoOwner:      true,
			ToolSettings: nativetool.ToolSettings{ExtraArgs: `--schema=public --exclude-table "my table"`},
		}, "out", []string{
			"--format=c", "--file=out", "--compress=9", "--encoding=LATIN1",
			"--inserts", "--no-privileges", "--no-owner",
			"--schema=public", "--exclude-table", "my table",
		}, false},
		{"bad compression", Settings{Compression: "12"}, "", nil, true},
		{"unbalanced quotes", Settings{ToolSettings: nativetool.ToolSettings{ExtraArgs: `--table "foo`}}, "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.settings.DumpArgs(tt.file)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
