package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/databacker/db-tools/pkg/postgres/backup"
)

// ProcessConfig reads the configuration from a stream and returns the parsed
// and validated spec. Backup settings missing from the file keep their defaults.
func ProcessConfig(r io.Reader) (*ConfigSpec, error) {
	conf := Config{Spec: ConfigSpec{Backup: backup.NewSettings()}}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&conf); err != nil {
		return nil, fmt.Errorf("fatal error reading config file: %w", err)
	}

	// check that the version is something we recognize
	if conf.Version != ConfigVersionV1 {
		return nil, fmt.Errorf("unknown config version: %s", conf.Version)
	}
	if conf.Kind != KindLocal {
		return nil, fmt.Errorf("unknown config type: %s", conf.Kind)
	}
	spec := conf.Spec
	if _, err := spec.Logging.Level(); err != nil {
		return nil, err
	}
	if spec.Backup == nil {
		spec.Backup = backup.NewSettings()
	}
	if !backup.ValidCompression(spec.Backup.Compression) {
		return nil, fmt.Errorf("invalid backup compression %q, must be empty or 0-9", spec.Backup.Compression)
	}
	if _, err := spec.Backup.SplitExtraArgs(); err != nil {
		return nil, fmt.Errorf("invalid backup settings: %w", err)
	}
	return &spec, nil
}
