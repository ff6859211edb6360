package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/databacker/db-tools/pkg/database"
	"github.com/databacker/db-tools/pkg/mysql/repair"
	"github.com/databacker/db-tools/pkg/util"
	"github.com/databacker/db-tools/pkg/wizard/memory"
)

func repairCmd(execs execs, cmdConfig *cmdConfiguration) (*cobra.Command, error) {
	var v = viper.New()
	cmd := &cobra.Command{
		Use:   "repair [table...]",
		Short: "repair MySQL tables",
		Long: `Repair MySQL tables with REPAIR TABLE.
		Tables are given as schema.table, or as table in the default database. With --schema and no tables,
		every table in the schema is repaired; views are skipped.`,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindFlags(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextWithLogger(cmd.Context(), cmdConfig.logger)
			ctx = util.ContextWithTracer(ctx, getTracer("repair"))
			tracer := util.GetTracerFromContext(ctx)
			ctx, span := tracer.Start(ctx, "repair")
			defer span.End()
			logger := cmdConfig.logger

			var opts repair.Options
			if cmdConfig.configuration != nil {
				opts = cmdConfig.configuration.Repair
			}
			if v.IsSet("quick") {
				opts.Quick = v.GetBool("quick")
			}
			if v.IsSet("extended") {
				opts.Extended = v.GetBool("extended")
			}
			if v.IsSet("use-frm") {
				opts.UseFrm = v.GetBool("use-frm")
			}

			schema := v.GetString("schema")
			if schema == "" {
				schema = cmdConfig.dbconn.Schema
			}
			objects, err := repairObjects(ctx, execs, cmdConfig.dbconn, schema, args, v.IsSet("schema"))
			if err != nil {
				return err
			}

			dryRun := v.GetBool("dry-run")
			out := cmd.OutOrStdout()
			tool := repair.Tool{Open: func(d *repair.Dialog) error {
				d.CreateControls(memory.New(), opts)
				if dryRun {
					for _, line := range d.SQL() {
						fmt.Fprintf(out, "%s;\n", line)
					}
					return nil
				}
				results, err := d.Run(ctx, statementExecutor{execs: execs, dbconn: cmdConfig.dbconn})
				printRepairResults(out, results)
				return err
			}}
			if len(repair.FilterTables(objects)) == 0 {
				logger.Info("no tables to repair")
			}
			return tool.Execute(objects)
		},
	}

	flags := cmd.Flags()
	flags.String("schema", "", "schema of unqualified tables; with no tables given, repair every table in it")
	flags.Bool("quick", false, "repair only the index file, not the data file")
	flags.Bool("extended", false, "create the index row by row instead of by sorting")
	flags.Bool("use-frm", false, "recreate the index file from the table definition")
	flags.Bool("dry-run", false, "print the statements instead of running them")

	return cmd, nil
}

// repairObjects resolves the tables named on the command line, or lists the
// schema when none are named.
func repairObjects(ctx context.Context, execs execs, dbconn database.Connection, schema string, args []string, listSchema bool) ([]database.Object, error) {
	if len(args) == 0 {
		if !listSchema {
			return nil, fmt.Errorf("no tables given, provide tables or --schema")
		}
		objects, err := execs.ListObjects(ctx, dbconn, schema)
		if err != nil {
			return nil, fmt.Errorf("unable to list tables in %s: %w", schema, err)
		}
		return objects, nil
	}
	var objects []database.Object
	for _, arg := range args {
		table, err := database.ParseTable(arg)
		if err != nil {
			return nil, err
		}
		if table.Schema == "" {
			table.Schema = schema
		}
		objects = append(objects, table)
	}
	return objects, nil
}

type statementExecutor struct {
	execs  execs
	dbconn database.Connection
}

func (s statementExecutor) Execute(ctx context.Context, statements []string) ([]database.Result, error) {
	return s.execs.Repair(ctx, s.dbconn, statements)
}

// printRepairResults writes the rows returned for each statement, coloured by
// their message type.
func printRepairResults(w io.Writer, results []database.Result) {
	for _, result := range results {
		if result.Err != nil {
			_, _ = color.New(color.FgRed).Fprintf(w, "%s: %v\n", result.Statement, result.Err)
			continue
		}
		msgType := -1
		for i, col := range result.Columns {
			if strings.EqualFold(col, "Msg_type") {
				msgType = i
			}
		}
		for _, row := range result.Rows {
			line := strings.Join(row, "\t")
			switch {
			case msgType < 0:
				fmt.Fprintln(w, line)
			case strings.EqualFold(row[msgType], "error"):
				_, _ = color.New(color.FgRed).Fprintln(w, line)
			case strings.EqualFold(row[msgType], "warning"):
				_, _ = color.New(color.FgYellow).Fprintln(w, line)
			default:
				_, _ = color.New(color.FgGreen).Fprintln(w, line)
			}
		}
	}
}
