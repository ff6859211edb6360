package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/databacker/db-tools/pkg/database"
)

func TestRepairCmdDryRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string // "repair --dry-run" will be prepended automatically
		wantErr  bool
		expected string
	}{
		{"no tables", nil, true, ""},
		{"invalid table", []string{"a.b.c"}, true, ""},
		{"no options", []string{"shop.orders"}, false, "REPAIR TABLE shop.orders;\n"},
		{"all options", []string{"shop.orders", "--use-frm", "--extended", "--quick"}, false, "REPAIR TABLE shop.orders QUICK EXTENDED USE_FRM;\n"},
		{"several tables", []string{"shop.orders", "shop.items", "--quick"}, false, "REPAIR TABLE shop.orders QUICK;\nREPAIR TABLE shop.items QUICK;\n"},
		{"unqualified uses schema flag", []string{"orders", "--schema", "shop"}, false, "REPAIR TABLE shop.orders;\n"},
		{"unqualified uses database", []string{"orders", "--database", "shop"}, false, "REPAIR TABLE shop.orders;\n"},
		{"quoted names", []string{"shop.order"}, false, "REPAIR TABLE shop.`order`;\n"},
		{"config file options", []string{"--config-file", "testdata/config.yml", "orders"}, false, "REPAIR TABLE sales.orders QUICK USE_FRM;\n"},
		{"config file options overridden", []string{"--config-file", "testdata/config.yml", "--quick=false", "orders"}, false, "REPAIR TABLE sales.orders USE_FRM;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockExecs()
			stdout, _, err := runRoot(m, append([]string{"repair", "--dry-run"}, tt.args...)...)
			switch {
			case err == nil && tt.wantErr:
				t.Fatal("missing error")
			case err != nil && !tt.wantErr:
				t.Fatal(err)
			case err == nil:
				assert.Equal(t, tt.expected, stdout)
				m.AssertNotCalled(t, "Repair", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRepairCmdExecute(t *testing.T) {
	t.Parallel()
	dbconn := database.Connection{Host: "db1", Port: 3306, User: "root", Pass: "secret"}
	columns := []string{"Table", "Op", "Msg_type", "Msg_text"}

	t.Run("named tables", func(t *testing.T) {
		m := newMockExecs()
		statements := []string{"REPAIR TABLE shop.orders EXTENDED", "REPAIR TABLE shop.items EXTENDED"}
		m.On("Repair", mock.Anything, dbconn, statements).Return([]database.Result{
			{Statement: statements[0], Columns: columns, Rows: [][]string{{"shop.orders", "repair", "status", "OK"}}},
			{Statement: statements[1], Columns: columns, Rows: [][]string{{"shop.items", "repair", "error", "Table is marked as crashed"}}},
		}, nil)
		stdout, _, err := runRoot(m, "repair", "--server", "db1", "--user", "root", "--pass", "secret", "--extended", "shop.orders", "shop.items")
		require.NoError(t, err)
		m.AssertExpectations(t)
		assert.Equal(t, "shop.orders\trepair\tstatus\tOK\nshop.items\trepair\terror\tTable is marked as crashed\n", stdout)
	})

	t.Run("schema listing skips views", func(t *testing.T) {
		m := newMockExecs()
		conn := dbconn
		conn.Schema = "shop"
		m.On("ListObjects", mock.Anything, conn, "shop").Return([]database.Object{
			&database.Table{Schema: "shop", Name: "orders"},
			&database.View{Schema: "shop", Name: "open_orders"},
		}, nil)
		m.On("Repair", mock.Anything, conn, []string{"REPAIR TABLE shop.orders"}).Return([]database.Result{
			{Statement: "REPAIR TABLE shop.orders", Columns: columns, Rows: [][]string{{"shop.orders", "repair", "status", "OK"}}},
		}, nil)
		_, _, err := runRoot(m, "repair", "--server", "db1", "--user", "root", "--pass", "secret", "--database", "shop", "--schema", "shop")
		require.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("only views", func(t *testing.T) {
		m := newMockExecs()
		m.On("ListObjects", mock.Anything, mock.Anything, "shop").Return([]database.Object{
			&database.View{Schema: "shop", Name: "open_orders"},
		}, nil)
		stdout, _, err := runRoot(m, "repair", "--schema", "shop")
		require.NoError(t, err)
		assert.Empty(t, stdout)
		m.AssertNotCalled(t, "Repair", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("listing fails", func(t *testing.T) {
		m := newMockExecs()
		m.On("ListObjects", mock.Anything, mock.Anything, "shop").Return(nil, errors.New("connection refused"))
		_, _, err := runRoot(m, "repair", "--schema", "shop")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("statement fails", func(t *testing.T) {
		m := newMockExecs()
		failure := errors.New("table does not exist")
		m.On("Repair", mock.Anything, mock.Anything, []string{"REPAIR TABLE shop.gone"}).Return([]database.Result{
			{Statement: "REPAIR TABLE shop.gone", Err: failure},
		}, failure)
		stdout, _, err := runRoot(m, "repair", "shop.gone")
		require.ErrorIs(t, err, failure)
		assert.Equal(t, "REPAIR TABLE shop.gone: table does not exist\n", stdout)
	})
}
