package wizard

import (
	"github.com/databacker/db-tools/pkg/nativetool"
)

// ToolSettingsPage is the base of the settings pages of native tools. It owns
// the controls every tool has: extra command line arguments and password
// saving.
type ToolSettingsPage struct {
	Page

	extraArgsText     Text
	savePasswordCheck Check
}

func (p *ToolSettingsPage) createExtraArgsInput(tk Toolkit, settings *nativetool.ToolSettings, onChange func()) {
	p.extraArgsText = tk.LabelText(p.catalog.Get(MsgToolLabelExtraArgs), settings.ExtraArgs)
	p.extraArgsText.OnModify(onChange)
}

func (p *ToolSettingsPage) createSecurityGroup(tk Toolkit, settings *nativetool.ToolSettings, onChange func()) {
	tk.Group(p.catalog.Get(MsgToolGroupSecurity))
	p.savePasswordCheck = tk.Checkbox(p.catalog.Get(MsgToolCheckboxSavePassword), settings.SavePassword)
	p.savePasswordCheck.OnSelect(onChange)
}

func (p *ToolSettingsPage) saveState(settings *nativetool.ToolSettings) {
	if p.extraArgsText != nil {
		settings.ExtraArgs = p.extraArgsText.Text()
	}
	if p.savePasswordCheck != nil {
		settings.SavePassword = p.savePasswordCheck.Selected()
	}
}

// determinePageCompletion fails when the extra arguments cannot be split into
// a command line.
func (p *ToolSettingsPage) determinePageCompletion(settings *nativetool.ToolSettings) error {
	_, err := settings.SplitExtraArgs()
	return err
}
