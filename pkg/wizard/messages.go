package wizard

// Message keys used by the settings pages.
const (
	MsgBackupSettingTitleSetting        = "wizard_backup_page_setting_title_setting"
	MsgBackupSettingTitle               = "wizard_backup_page_setting_title"
	MsgBackupSettingDescription         = "wizard_backup_page_setting_description"
	MsgBackupSettingGroupSetting        = "wizard_backup_page_setting_group_setting"
	MsgBackupSettingLabelFormat         = "wizard_backup_page_setting_label_format"
	MsgBackupSettingLabelCompression    = "wizard_backup_page_setting_label_compression"
	MsgBackupSettingLabelEncoding       = "wizard_backup_page_setting_label_encoding"
	MsgBackupSettingCheckboxUseInsert   = "wizard_backup_page_setting_checkbox_use_insert"
	MsgBackupSettingCheckboxNoPrivilege = "wizard_backup_page_setting_checkbox_no_privileges"
	MsgBackupSettingCheckboxNoOwner     = "wizard_backup_page_setting_checkbox_no_owner"
	MsgBackupSettingGroupOutput         = "wizard_backup_page_setting_group_output"
	MsgBackupSettingLabelOutputFolder   = "wizard_backup_page_setting_label_output_folder"
	MsgBackupSettingLabelFilePattern    = "wizard_backup_page_setting_label_file_name_pattern"
	MsgBackupSettingLabelPatternOutput  = "wizard_backup_page_setting_label_file_name_pattern_output"
	MsgToolLabelExtraArgs               = "tools_wizard_label_extra_args"
	MsgToolGroupSecurity                = "tools_wizard_group_security"
	MsgToolCheckboxSavePassword         = "tools_wizard_checkbox_save_password"
)

// Catalog resolves message keys to user visible strings.
type Catalog interface {
	Get(key string) string
}

// MapCatalog is a Catalog backed by a map. Unknown keys resolve to themselves.
type MapCatalog map[string]string

func (c MapCatalog) Get(key string) string {
	if s, ok := c[key]; ok {
		return s
	}
	return key
}

// English is the default catalog.
var English = MapCatalog{
	MsgBackupSettingTitleSetting:        "Backup settings",
	MsgBackupSettingTitle:               "Backup settings",
	MsgBackupSettingDescription:         "Database backup settings",
	MsgBackupSettingGroupSetting:        "Settings",
	MsgBackupSettingLabelFormat:         "Format",
	MsgBackupSettingLabelCompression:    "Compression",
	MsgBackupSettingLabelEncoding:       "Encoding",
	MsgBackupSettingCheckboxUseInsert:   "Use SQL INSERT instead of COPY for rows",
	MsgBackupSettingCheckboxNoPrivilege: "Do not backup privileges (GRANT/REVOKE)",
	MsgBackupSettingCheckboxNoOwner:     "Discard objects owner",
	MsgBackupSettingGroupOutput:         "Output",
	MsgBackupSettingLabelOutputFolder:   "Output folder",
	MsgBackupSettingLabelFilePattern:    "File name pattern",
	MsgBackupSettingLabelPatternOutput:  "Output file name pattern",
	MsgToolLabelExtraArgs:               "Extra command args",
	MsgToolGroupSecurity:                "Security",
	MsgToolCheckboxSavePassword:         "Save password",
}
