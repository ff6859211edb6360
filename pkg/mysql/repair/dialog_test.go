package repair

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/databacker/db-tools/pkg/database"
	"github.com/databacker/db-tools/pkg/wizard/memory"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Execute(ctx context.Context, statements []string) ([]database.Result, error) {
	args := m.Called(statements)
	results, _ := args.Get(0).([]database.Result)
	return results, args.Error(1)
}

func newDialog(t *testing.T, opts Options) (*Dialog, *memory.Toolkit) {
	t.Helper()
	d := NewDialog([]*database.Table{
		{Schema: "db", Name: "t1"},
		{Schema: "db", Name: "t2"},
	})
	tk := memory.New()
	d.CreateControls(tk, opts)
	return d, tk
}

func TestDialogPreview(t *testing.T) {
	d, tk := newDialog(t, Options{})
	assert.Equal(t, "Repair table(s)", d.Title())
	assert.Equal(t, []string{"Options", "Tables"}, tk.Groups())
	assert.Equal(t, []string{"REPAIR TABLE db.t1", "REPAIR TABLE db.t2"}, d.SQL())

	var seen [][]string
	d.OnSQLChange(func(lines []string) { seen = append(seen, lines) })

	tk.Check("Quick").Click()
	tk.Check("Use FRM").Click()
	assert.Equal(t, Options{Quick: true, UseFrm: true}, d.Options())
	assert.Equal(t, []string{"REPAIR TABLE db.t1 QUICK USE_FRM", "REPAIR TABLE db.t2 QUICK USE_FRM"}, d.SQL())

	tk.Check("db.t2").Click()
	assert.Equal(t, []string{"REPAIR TABLE db.t1 QUICK USE_FRM"}, d.SQL())
	assert.Len(t, seen, 3)
	assert.Equal(t, []string{"REPAIR TABLE db.t1 QUICK USE_FRM"}, seen[2])
}

func TestDialogInitialOptions(t *testing.T) {
	d, tk := newDialog(t, Options{Extended: true})
	assert.True(t, tk.Check("Extended").Selected())
	assert.Equal(t, []string{"REPAIR TABLE db.t1 EXTENDED", "REPAIR TABLE db.t2 EXTENDED"}, d.SQL())
}

func TestDialogBeforeControls(t *testing.T) {
	tables := []*database.Table{{Name: "t1"}}
	d := NewDialog(tables)
	assert.Equal(t, Options{}, d.Options())
	assert.Equal(t, tables, d.SelectedTables())
	assert.Empty(t, d.SQL())
}

func TestDialogRun(t *testing.T) {
	d, tk := newDialog(t, Options{Quick: true})
	exec := &mockExecutor{}
	results := []database.Result{{Statement: "REPAIR TABLE db.t1 QUICK"}, {Statement: "REPAIR TABLE db.t2 QUICK"}}
	exec.On("Execute", []string{"REPAIR TABLE db.t1 QUICK", "REPAIR TABLE db.t2 QUICK"}).Return(results, nil)

	got, err := d.Run(context.Background(), exec)
	require.NoError(t, err)
	assert.Equal(t, results, got)
	exec.AssertExpectations(t)

	tk.Check("db.t1").Click()
	tk.Check("db.t2").Click()
	_, err = d.Run(context.Background(), exec)
	assert.Error(t, err)
	exec.AssertNumberOfCalls(t, "Execute", 1)
}
