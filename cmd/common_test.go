package cmd

import (
	"bytes"
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/databacker/db-tools/pkg/database"
)

type mockExecs struct {
	mock.Mock
}

func newMockExecs() *mockExecs {
	m := &mockExecs{}
	return m
}

func (m *mockExecs) Repair(ctx context.Context, dbconn database.Connection, statements []string) ([]database.Result, error) {
	args := m.Called(ctx, dbconn, statements)
	results, _ := args.Get(0).([]database.Result)
	return results, args.Error(1)
}

func (m *mockExecs) ListObjects(ctx context.Context, dbconn database.Connection, schema string) ([]database.Object, error) {
	args := m.Called(ctx, dbconn, schema)
	objects, _ := args.Get(0).([]database.Object)
	return objects, args.Error(1)
}

// runRoot runs the root command with args and returns what it wrote to
// stdout and stderr.
func runRoot(m execs, args ...string) (string, string, error) {
	cmd, err := rootCmd(m)
	if err != nil {
		return "", "", err
	}
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout.String(), stderr.String(), err
}
