package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/databacker/db-tools/pkg/util"
)

// Result is the outcome of one statement. Maintenance statements such as
// REPAIR TABLE answer with rows of Table, Op, Msg_type and Msg_text.
type Result struct {
	Statement string
	Columns   []string
	Rows      [][]string
	Err       error
}

// Executor runs statements one after another on a single connection pool.
type Executor struct {
	DB     *sql.DB
	Logger *log.Entry
}

func NewExecutor(db *sql.DB, logger *log.Entry) *Executor {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Executor{DB: db, Logger: logger}
}

// Execute runs every statement, even after one fails, and returns a result per
// statement. The error joins the failures of all statements.
func (e *Executor) Execute(ctx context.Context, statements []string) ([]Result, error) {
	tracer := util.GetTracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "execute")
	defer span.End()
	span.SetAttributes(attribute.Int("statements", len(statements)))

	var (
		results []Result
		errs    []error
	)
	for _, stmt := range statements {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result := e.executeOne(ctx, stmt)
		if result.Err != nil {
			e.Logger.Errorf("%s: %v", stmt, result.Err)
			errs = append(errs, result.Err)
		} else {
			e.Logger.Debugf("%s: %d rows", stmt, len(result.Rows))
		}
		results = append(results, result)
	}
	if err := errors.Join(errs...); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return results, err
	}
	return results, nil
}

func (e *Executor) executeOne(ctx context.Context, stmt string) Result {
	tracer := util.GetTracerFromContext(ctx)
	ctx, span := tracer.Start(ctx, "statement")
	defer span.End()
	span.SetAttributes(attribute.String("sql", stmt))

	result := Result{Statement: stmt}
	rows, err := e.DB.QueryContext(ctx, stmt)
	if err != nil {
		result.Err = fmt.Errorf("failed to execute %q: %w", stmt, err)
		span.SetStatus(codes.Error, err.Error())
		return result
	}
	defer rows.Close()

	if result.Columns, err = rows.Columns(); err != nil {
		result.Err = fmt.Errorf("failed to read columns of %q: %w", stmt, err)
		return result
	}
	for rows.Next() {
		values := make([]sql.NullString, len(result.Columns))
		dest := make([]interface{}, len(values))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			result.Err = fmt.Errorf("failed to read result of %q: %w", stmt, err)
			return result
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = v.String
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		result.Err = fmt.Errorf("failed to read result of %q: %w", stmt, err)
	}
	return result
}
