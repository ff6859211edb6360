package database

import (
	"context"
	"database/sql"
	"fmt"
)

var (
	excludeSchemaList = []string{"information_schema", "performance_schema", "sys", "mysql"}
	excludeSchemas    = map[string]bool{}
)

func init() {
	for _, schema := range excludeSchemaList {
		excludeSchemas[schema] = true
	}
}

// GetSchemas lists the user schemas on the server, leaving out system ones.
func GetSchemas(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "show databases")
	if err != nil {
		return nil, fmt.Errorf("could not get schemas: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error getting database name: %w", err)
		}
		if _, ok := excludeSchemas[name]; ok {
			continue
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ListObjects lists the tables and views of a schema, in name order.
func ListObjects(ctx context.Context, db *sql.DB, schema string) ([]Object, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT TABLE_NAME, TABLE_TYPE FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME",
		schema)
	if err != nil {
		return nil, fmt.Errorf("could not list tables of %s: %w", schema, err)
	}
	defer rows.Close()

	var objects []Object
	for rows.Next() {
		var name, tableType string
		if err := rows.Scan(&name, &tableType); err != nil {
			return nil, fmt.Errorf("error getting table name: %w", err)
		}
		if tableType == tableTypeView || tableType == tableTypeSystemView {
			objects = append(objects, &View{Schema: schema, Name: name})
			continue
		}
		objects = append(objects, &Table{Schema: schema, Name: name})
	}
	return objects, rows.Err()
}
