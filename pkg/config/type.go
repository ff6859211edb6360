package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/databacker/db-tools/pkg/mysql/repair"
	"github.com/databacker/db-tools/pkg/postgres/backup"
)

const (
	ConfigVersionV1 = "config.databack.io/v1"
	KindLocal       = "local"
)

// Config is the envelope of a configuration file.
type Config struct {
	Version string     `yaml:"version"`
	Kind    string     `yaml:"kind"`
	Spec    ConfigSpec `yaml:"spec"`
}

type ConfigSpec struct {
	Logging  LogLevel         `yaml:"logging"`
	Database Database         `yaml:"database"`
	Backup   *backup.Settings `yaml:"backup"`
	Repair   repair.Options   `yaml:"repair"`
}

type Database struct {
	Server      string        `yaml:"server"`
	Port        int           `yaml:"port"`
	Schema      string        `yaml:"schema"`
	Credentials DBCredentials `yaml:"credentials"`
}

type DBCredentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LogLevel is one of the logrus level names; empty keeps the default.
type LogLevel string

// Level converts to the logrus level.
func (l LogLevel) Level() (log.Level, error) {
	if l == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(string(l))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid logging level %q: %w", string(l), err)
	}
	return level, nil
}
