package wizard

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/databacker/db-tools/pkg/postgres/backup"
	"github.com/databacker/db-tools/pkg/template"
)

// BackupSettingsPage lets the user configure a PostgreSQL backup. Every change
// is written to the settings immediately, and the page completion is
// recalculated after each one.
type BackupSettingsPage struct {
	ToolSettingsPage

	settings *backup.Settings

	outputFolderText  Text
	outputFileText    Text
	formatCombo       Combo
	compressCombo     Combo
	encodingCombo     Combo
	useInsertsCheck   Check
	noPrivilegesCheck Check
	noOwnerCheck      Check
}

// NewBackupSettingsPage creates the page for settings. A nil catalog uses
// English, a nil logger the standard logger.
func NewBackupSettingsPage(settings *backup.Settings, container Container, catalog Catalog, logger *log.Entry) *BackupSettingsPage {
	p := &BackupSettingsPage{settings: settings}
	p.Page = newPage(container, catalog, logger)
	p.SetTitle(p.catalog.Get(MsgBackupSettingTitle))
	p.SetDescription(p.catalog.Get(MsgBackupSettingDescription))
	return p
}

// Settings edited by the page.
func (p *BackupSettingsPage) Settings() *backup.Settings {
	return p.settings
}

// CreateControl builds the page controls, seeded from the current settings.
func (p *BackupSettingsPage) CreateControl(tk Toolkit) {
	s := p.settings
	tk.Group(p.catalog.Get(MsgBackupSettingGroupSetting))

	p.formatCombo = tk.LabelCombo(p.catalog.Get(MsgBackupSettingLabelFormat), true)
	for _, f := range backup.Formats() {
		p.formatCombo.Add(f.Title())
	}
	p.formatCombo.Select(s.Format.Ordinal())
	p.formatCombo.OnSelect(func() {
		p.logger.Debugf("export format changed to %s", p.chosenExportFormat())
		p.fixOutputFileExtension()
		p.updateState()
	})

	p.compressCombo = tk.LabelCombo(p.catalog.Get(MsgBackupSettingLabelCompression), true)
	for i, level := range backup.CompressionLevels() {
		p.compressCombo.Add(level)
		if level == s.Compression {
			p.compressCombo.Select(i)
		}
	}
	if p.compressCombo.SelectionIndex() < 0 {
		p.compressCombo.Select(0)
	}
	p.compressCombo.OnSelect(p.updateState)

	p.encodingCombo = tk.EncodingCombo(p.catalog.Get(MsgBackupSettingLabelEncoding), s.Encoding)
	p.encodingCombo.OnSelect(p.updateState)

	p.useInsertsCheck = tk.Checkbox(p.catalog.Get(MsgBackupSettingCheckboxUseInsert), s.UseInserts)
	p.useInsertsCheck.OnSelect(p.updateState)
	p.noPrivilegesCheck = tk.Checkbox(p.catalog.Get(MsgBackupSettingCheckboxNoPrivilege), s.NoPrivileges)
	p.noPrivilegesCheck.OnSelect(p.updateState)
	p.noOwnerCheck = tk.Checkbox(p.catalog.Get(MsgBackupSettingCheckboxNoOwner), s.NoOwner)
	p.noOwnerCheck.OnSelect(p.updateState)

	tk.Group(p.catalog.Get(MsgBackupSettingGroupOutput))
	p.outputFolderText = tk.OutputFolderChooser(p.catalog.Get(MsgBackupSettingLabelOutputFolder), absFolder(s.OutputFolder), p.updateState)
	p.outputFileText = tk.LabelText(p.catalog.Get(MsgBackupSettingLabelFilePattern), s.OutputFilePattern)
	tk.ContentProposalToolTip(p.outputFileText, template.Tooltip(p.catalog.Get(MsgBackupSettingLabelPatternOutput)))
	tk.InstallContentProposal(p.outputFileText, template.NewProposalProvider(template.Patterns()...))
	// observers of the settings see the pattern between full saves
	p.outputFileText.OnModify(func() {
		p.settings.OutputFilePattern = p.outputFileText.Text()
	})
	p.fixOutputFileExtension()

	p.createExtraArgsInput(tk, &s.ToolSettings, p.updateState)
	p.createSecurityGroup(tk, &s.ToolSettings, p.updateState)

	p.UpdatePageCompletion()
}

// absFolder is the absolute path of folder, or empty when no folder is set.
func absFolder(folder string) string {
	if folder == "" {
		return ""
	}
	abs, err := filepath.Abs(folder)
	if err != nil {
		return folder
	}
	return abs
}

// fixOutputFileExtension matches the file name extension to the chosen format.
func (p *BackupSettingsPage) fixOutputFileExtension() {
	text := p.outputFileText.Text()
	fixed := backup.SyncExtension(text, p.chosenExportFormat().Ext())
	if fixed == text {
		return
	}
	p.outputFileText.SetText(fixed)
}

func (p *BackupSettingsPage) updateState() {
	p.SaveState()
	p.UpdatePageCompletion()
	p.updateButtons()
}

// SaveState copies every control value into the settings. It does nothing
// before the controls are created.
func (p *BackupSettingsPage) SaveState() {
	if p.outputFileText == nil {
		return
	}
	s := p.settings
	p.saveState(&s.ToolSettings)

	s.OutputFolder = p.outputFolderText.Text()
	s.OutputFilePattern = p.outputFileText.Text()
	s.Format = p.chosenExportFormat()
	s.Compression = p.compressCombo.Text()
	s.Encoding = p.encodingCombo.Text()
	s.UseInserts = p.useInsertsCheck.Selected()
	s.NoPrivileges = p.noPrivilegesCheck.Selected()
	s.NoOwner = p.noOwnerCheck.Selected()
}

// DeterminePageCompletion reports why the page cannot be completed, or nil. It
// only reads the settings.
func (p *BackupSettingsPage) DeterminePageCompletion() error {
	if !p.settings.HasOutputFolder() {
		return backup.ErrOutputFolderNotSpecified
	}
	return p.determinePageCompletion(&p.settings.ToolSettings)
}

// UpdatePageCompletion recalculates the completion state and error message.
func (p *BackupSettingsPage) UpdatePageCompletion() {
	p.updatePageCompletion(p.DeterminePageCompletion)
}

func (p *BackupSettingsPage) chosenExportFormat() backup.ExportFormat {
	return backup.FormatByOrdinal(p.formatCombo.SelectionIndex())
}
