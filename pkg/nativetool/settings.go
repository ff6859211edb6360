// Package nativetool holds what every native database tool task shares,
// independent of the tool being run.
package nativetool

import (
	"fmt"

	shlex "github.com/anmitsu/go-shlex"
)

// ToolSettings are the options common to all native tool tasks.
type ToolSettings struct {
	// ExtraArgs are appended to the tool command line, split shell-style.
	ExtraArgs string `yaml:"extraArgs,omitempty"`
	// SavePassword keeps the connection password with the saved task.
	SavePassword bool `yaml:"savePassword"`
}

// SplitExtraArgs splits ExtraArgs the way a POSIX shell would.
func (t ToolSettings) SplitExtraArgs() ([]string, error) {
	args, err := shlex.Split(t.ExtraArgs, true)
	if err != nil {
		return nil, fmt.Errorf("invalid extra arguments %q: %w", t.ExtraArgs, err)
	}
	return args, nil
}
