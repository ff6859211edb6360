package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/databacker/db-tools/pkg/config"
	"github.com/databacker/db-tools/pkg/database"
)

type execs interface {
	Repair(ctx context.Context, dbconn database.Connection, statements []string) ([]database.Result, error)
	ListObjects(ctx context.Context, dbconn database.Connection, schema string) ([]database.Object, error)
}

type subCommand func(execs, *cmdConfiguration) (*cobra.Command, error)

var subCommands = []subCommand{backupCmd, repairCmd}

type cmdConfiguration struct {
	dbconn        database.Connection
	configuration *config.ConfigSpec
	logger        *log.Entry
}

const (
	defaultPort = 3306
)

func rootCmd(execs execs) (*cobra.Command, error) {
	var (
		v         *viper.Viper
		cmd       *cobra.Command
		cmdConfig = &cmdConfiguration{}
	)
	if execs == nil {
		execs = &executor{}
	}
	cmd = &cobra.Command{
		Use:   appName,
		Short: "database administration tools",
		Long: `Database administration tools.
		Configure PostgreSQL logical backups for pg_dump, and repair MySQL tables.
		Flags may also be given as environment variables, prefixed with DB_, e.g. DB_SERVER.
		`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			bindFlags(c, v)
			var logger = log.New()
			logger.SetOutput(c.ErrOrStderr())
			logLevel := v.GetInt("verbose")
			debugSet := v.IsSet("debug")
			if !v.IsSet("verbose") && (v.GetBool("debug") || (debugSet && v.GetString("debug") == "true")) {
				logLevel = 1
			}

			// read the config file, if needed; the structure of the config differs quite some
			// from the necessarily flat env vars/CLI flags, so we can't just use viper's
			// automatic config file support.
			var actualConfig *config.ConfigSpec
			if configFilePath := v.GetString("config-file"); configFilePath != "" {
				var (
					f   *os.File
					err error
				)
				if f, err = os.Open(configFilePath); err != nil {
					return fmt.Errorf("fatal error config file: %w", err)
				}
				defer f.Close()
				actualConfig, err = config.ProcessConfig(f)
				if err != nil {
					return fmt.Errorf("unable to read provided config: %w", err)
				}
			}

			switch logLevel {
			case 0:
				logger.SetLevel(log.InfoLevel)
				if actualConfig != nil && !v.IsSet("verbose") && !debugSet {
					// validated when the config was processed
					level, _ := actualConfig.Logging.Level()
					logger.SetLevel(level)
				}
			case 1:
				logger.SetLevel(log.DebugLevel)
			default:
				logger.SetLevel(log.TraceLevel)
			}

			// set up database connection
			if actualConfig != nil {
				db := actualConfig.Database
				if db.Server != "" {
					cmdConfig.dbconn.Host = db.Server
				}
				if db.Port != 0 {
					cmdConfig.dbconn.Port = db.Port
				}
				if db.Schema != "" {
					cmdConfig.dbconn.Schema = db.Schema
				}
				if db.Credentials.Username != "" {
					cmdConfig.dbconn.User = db.Credentials.Username
				}
				if db.Credentials.Password != "" {
					cmdConfig.dbconn.Pass = db.Credentials.Password
				}
				cmdConfig.configuration = actualConfig
			}

			// override config with env var or CLI flag, if set
			dbHost := v.GetString("server")
			if dbHost != "" && v.IsSet("server") {
				cmdConfig.dbconn.Host = dbHost
			}
			dbPort := v.GetInt("port")
			if dbPort != 0 && (v.IsSet("port") || cmdConfig.dbconn.Port == 0) {
				cmdConfig.dbconn.Port = dbPort
			}
			dbUser := v.GetString("user")
			if dbUser != "" && v.IsSet("user") {
				cmdConfig.dbconn.User = dbUser
			}
			dbPass := v.GetString("pass")
			if dbPass != "" && v.IsSet("pass") {
				cmdConfig.dbconn.Pass = dbPass
			}
			dbSchema := v.GetString("database")
			if dbSchema != "" && v.IsSet("database") {
				cmdConfig.dbconn.Schema = dbSchema
			}
			cmdConfig.logger = logger.WithField("run", uuid.New().String())

			var tracerProviderOpts []sdktrace.TracerProviderOption
			if v.GetBool("trace-stderr") {
				exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(c.ErrOrStderr()))
				if err != nil {
					return fmt.Errorf("failed to initialize stdouttrace exporter: %w", err)
				}
				tracerProviderOpts = append(tracerProviderOpts, sdktrace.WithSyncer(exp))
			}
			otel.SetTracerProvider(sdktrace.NewTracerProvider(tracerProviderOpts...))

			return nil
		},
	}

	v = viper.New()
	v.SetEnvPrefix("db")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// server hostname via CLI or env var
	pflags := cmd.PersistentFlags()
	pflags.String("server", "", "hostname for database server")

	pflags.String("config-file", "", "config file to use, if any; individual CLI flags override config file")

	// server port via CLI or env var or default
	pflags.Int("port", defaultPort, "port for database server")

	// user via CLI or env var
	pflags.String("user", "", "username for database server")

	// pass via CLI or env var
	pflags.String("pass", "", "password for database server")

	// default database
	pflags.String("database", "", "default database (schema) for unqualified table names")

	// debug via CLI or env var or default
	pflags.IntP("verbose", "v", 0, "set log level, 1 is debug, 2 is trace")
	pflags.Bool("debug", false, "set log level to debug, equivalent of --verbose=1; if both set, --version always overrides")
	pflags.Bool("trace-stderr", false, "trace to stderr")

	for _, subCmd := range subCommands {
		if sc, err := subCmd(execs, cmdConfig); err != nil {
			return nil, err
		} else {
			cmd.AddCommand(sc)
		}
	}

	return cmd, nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Determine the naming convention of the flags when represented in the config file
		configName := f.Name
		_ = v.BindPFlag(configName, f)
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		}
	})
}

// Execute primary function for cobra
func Execute() {
	rootCmd, err := rootCmd(nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
