package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/databacker/db-tools/pkg/database"
)

// executor is the execs used outside of tests; it talks to a real server.
type executor struct{}

func (e *executor) Repair(ctx context.Context, dbconn database.Connection, statements []string) ([]database.Result, error) {
	db, err := dbconn.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return database.NewExecutor(db, loggerFromContext(ctx)).Execute(ctx, statements)
}

func (e *executor) ListObjects(ctx context.Context, dbconn database.Connection, schema string) ([]database.Object, error) {
	db, err := dbconn.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return database.ListObjects(ctx, db, schema)
}

type loggerKey struct{}

func contextWithLogger(ctx context.Context, logger *log.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// loggerFromContext returns nil when no logger was stored, which the
// database executor replaces with the standard logger.
func loggerFromContext(ctx context.Context) *log.Entry {
	logger, _ := ctx.Value(loggerKey{}).(*log.Entry)
	return logger
}
