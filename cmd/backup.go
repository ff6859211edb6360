package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/databacker/db-tools/pkg/postgres/backup"
	"github.com/databacker/db-tools/pkg/template"
	"github.com/databacker/db-tools/pkg/util"
	"github.com/databacker/db-tools/pkg/wizard"
	"github.com/databacker/db-tools/pkg/wizard/memory"
)

const defaultConnectionType = "Development"

// now is replaced in tests
var now = time.Now

func backupCmd(execs execs, cmdConfig *cmdConfiguration) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "PostgreSQL backup settings",
		Long:  `Manage the settings of PostgreSQL logical backups made with pg_dump.`,
	}
	configure, err := backupConfigureCmd(execs, cmdConfig)
	if err != nil {
		return nil, err
	}
	cmd.AddCommand(configure)
	return cmd, nil
}

func backupConfigureCmd(_ execs, cmdConfig *cmdConfiguration) (*cobra.Command, error) {
	var v = viper.New()
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "configure a PostgreSQL backup",
		Long: `Configure the settings of a PostgreSQL backup.
		Settings start from the settings file, if it exists, else from the config file, else from defaults.
		Each flag given changes one setting, exactly as choosing it on the backup settings page would,
		so the file name extension follows the format. The settings are written back when complete.`,
		PreRun: func(cmd *cobra.Command, args []string) {
			bindFlags(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := util.ContextWithTracer(cmd.Context(), getTracer("backup"))
			_, span := util.GetTracerFromContext(ctx).Start(ctx, "configure")
			defer span.End()
			logger := cmdConfig.logger

			settings := backup.NewSettings()
			if cmdConfig.configuration != nil && cmdConfig.configuration.Backup != nil {
				copied := *cmdConfig.configuration.Backup
				settings = &copied
			}
			settingsFile := v.GetString("settings-file")
			if settingsFile != "" {
				loaded, err := readSettingsFile(settingsFile)
				switch {
				case errors.Is(err, fs.ErrNotExist):
					logger.Debugf("settings file %s does not exist, starting from defaults", settingsFile)
				case err != nil:
					return err
				default:
					settings = loaded
				}
			}

			page := wizard.NewBackupSettingsPage(settings, cliContainer{logger: logger}, nil, logger)
			tk := memory.New()
			page.CreateControl(tk)
			if err := applyBackupFlags(v, tk); err != nil {
				return err
			}
			page.SaveState()
			page.UpdatePageCompletion()

			status := cmd.ErrOrStderr()
			if !page.IsPageComplete() {
				_, _ = color.New(color.FgRed).Fprintf(status, "%s: %s\n", page.Title(), page.ErrorMessage())
				return fmt.Errorf("backup settings incomplete: %s", page.ErrorMessage())
			}
			_, _ = color.New(color.FgGreen).Fprintf(status, "%s: complete\n", page.Title())

			if settingsFile != "" {
				f, err := os.Create(settingsFile)
				if err != nil {
					return fmt.Errorf("unable to create settings file %s: %w", settingsFile, err)
				}
				if err := settings.Save(f); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("unable to close settings file %s: %w", settingsFile, err)
				}
				logger.Infof("settings written to %s", settingsFile)
			} else if err := settings.Save(cmd.OutOrStdout()); err != nil {
				return err
			}

			if v.GetBool("print-args") {
				return printDumpArgs(cmd.OutOrStdout(), settings, template.NewValues(cmdConfig.dbconn.Host, cmdConfig.dbconn.Schema, "", v.GetString("connection-type"), now()))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("settings-file", "", "file the settings are read from, if it exists, and written to; stdout when not set")
	flags.String("output-folder", "", "folder the backup is written to")
	flags.String("file-pattern", "", fmt.Sprintf("output file name pattern, may use %s", strings.Join(template.Patterns(), ", ")))
	flags.String("format", "", "export format: plain, custom, directory or tar")
	flags.String("compression", "", "compression level 0-9; empty for the pg_dump default")
	flags.String("encoding", "", "client encoding of the backup")
	flags.Bool("use-inserts", false, "use SQL INSERT instead of COPY for rows")
	flags.Bool("no-privileges", false, "do not backup privileges (GRANT/REVOKE)")
	flags.Bool("no-owner", false, "discard objects owner")
	flags.String("extra-args", "", "extra pg_dump arguments")
	flags.Bool("save-password", false, "save the password with the settings")
	flags.Bool("print-args", false, "print the pg_dump arguments for the configured backup")
	flags.String("connection-type", defaultConnectionType, fmt.Sprintf("connection type used for %s when printing arguments", template.VariablePattern(template.VariableConnType)))

	return cmd, nil
}

func readSettingsFile(name string) (*backup.Settings, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	settings, err := backup.LoadSettings(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read settings file %s: %w", name, err)
	}
	return settings, nil
}

// applyBackupFlags makes the changes requested on the command line through
// the page controls. The file pattern goes first so that a format given
// alongside it fixes its extension.
func applyBackupFlags(v *viper.Viper, tk *memory.Toolkit) error {
	label := wizard.English.Get
	if v.IsSet("output-folder") {
		tk.FolderChooser(label(wizard.MsgBackupSettingLabelOutputFolder)).SetText(v.GetString("output-folder"))
	}
	if v.IsSet("file-pattern") {
		tk.Text(label(wizard.MsgBackupSettingLabelFilePattern)).SetText(v.GetString("file-pattern"))
	}
	if v.IsSet("format") {
		format, err := backup.ParseFormat(v.GetString("format"))
		if err != nil {
			return err
		}
		if err := tk.Combo(label(wizard.MsgBackupSettingLabelFormat)).ChooseText(format.Title()); err != nil {
			return err
		}
	} else if v.IsSet("file-pattern") {
		// choosing the current format again fixes the extension of the new pattern
		formatCombo := tk.Combo(label(wizard.MsgBackupSettingLabelFormat))
		if err := formatCombo.Choose(formatCombo.SelectionIndex()); err != nil {
			return err
		}
	}
	if v.IsSet("compression") {
		compression := v.GetString("compression")
		if !backup.ValidCompression(compression) {
			return fmt.Errorf("invalid compression level %q, must be 0-9 or empty", compression)
		}
		if err := tk.Combo(label(wizard.MsgBackupSettingLabelCompression)).ChooseText(compression); err != nil {
			return err
		}
	}
	if v.IsSet("encoding") {
		if err := tk.Combo(label(wizard.MsgBackupSettingLabelEncoding)).ChooseText(v.GetString("encoding")); err != nil {
			return err
		}
	}
	checks := map[string]string{
		"use-inserts":   wizard.MsgBackupSettingCheckboxUseInsert,
		"no-privileges": wizard.MsgBackupSettingCheckboxNoPrivilege,
		"no-owner":      wizard.MsgBackupSettingCheckboxNoOwner,
		"save-password": wizard.MsgToolCheckboxSavePassword,
	}
	for flag, key := range checks {
		if !v.IsSet(flag) {
			continue
		}
		if check := tk.Check(label(key)); check.Selected() != v.GetBool(flag) {
			check.Click()
		}
	}
	if v.IsSet("extra-args") {
		tk.Text(label(wizard.MsgToolLabelExtraArgs)).SetText(v.GetString("extra-args"))
	}
	return nil
}

func printDumpArgs(w io.Writer, settings *backup.Settings, values template.Values) error {
	file, err := settings.OutputFile(values)
	if err != nil {
		return err
	}
	args, err := settings.DumpArgs(file)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(append([]string{"pg_dump"}, args...), " "))
	return err
}
