package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"t1", "t1"},
		{"my_table$", "my_table$"},
		{"Orders", "Orders"},
		{"123", "`123`"},
		{"1abc", "1abc"},
		{"my table", "`my table`"},
		{"my-table", "`my-table`"},
		{"order", "`order`"},
		{"ORDER", "`ORDER`"},
		{"we`ird", "`we``ird`"},
		{"", "``"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuoteIdentifier(tt.in))
		})
	}
}

func TestFullyQualifiedName(t *testing.T) {
	assert.Equal(t, "db.t1", (&Table{Schema: "db", Name: "t1"}).FullyQualifiedName())
	assert.Equal(t, "t1", (&Table{Name: "t1"}).FullyQualifiedName())
	assert.Equal(t, "`my-db`.`select`", (&Table{Schema: "my-db", Name: "select"}).FullyQualifiedName())
	assert.Equal(t, "db.v1", (&View{Schema: "db", Name: "v1"}).FullyQualifiedName())
}

func TestParseTable(t *testing.T) {
	tests := []struct {
		in       string
		expected *Table
		wantErr  bool
	}{
		{"t1", &Table{Name: "t1"}, false},
		{"db.t1", &Table{Schema: "db", Name: "t1"}, false},
		{"`my.db`.`t``1`", &Table{Schema: "my.db", Name: "t`1"}, false},
		{"``", &Table{Name: ""}, false},
		{"a.b.c", nil, true},
		{"db.", nil, true},
		{".t1", nil, true},
		{"", nil, true},
		{"`db.t1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTable(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseTableRoundTrip(t *testing.T) {
	for _, table := range []*Table{
		{Schema: "db", Name: "t1"},
		{Schema: "my db", Name: "order"},
		{Schema: "x`y", Name: "1.2"},
	} {
		got, err := ParseTable(table.FullyQualifiedName())
		require.NoError(t, err)
		assert.Equal(t, table, got)
	}
}

func TestConnectionDSN(t *testing.T) {
	tests := []struct {
		name     string
		conn     Connection
		expected string
	}{
		{"tcp", Connection{User: "root", Pass: "secret", Host: "db", Port: 3306}, "root:secret@tcp(db:3306)/?parseTime=true"},
		{"schema", Connection{User: "root", Host: "db", Port: 3307, Schema: "sales"}, "root@tcp(db:3307)/sales?parseTime=true"},
		{"ipv6", Connection{User: "root", Host: "::1", Port: 3306}, "root@tcp([::1]:3306)/?parseTime=true"},
		{"socket", Connection{User: "root", Host: "/var/run/mysqld/mysqld.sock"}, "root@unix(/var/run/mysqld/mysqld.sock)/?parseTime=true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.conn.MySQL())
		})
	}
}
