package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	settingsChangePassword = iota
	settingsLogout
	settingsDeleteAccount
)

type settingsModel struct {
	items  []string
	idx    int
	status string
}

func newSettingsModel() settingsModel {
	return settingsModel{items: []string{"Change password", "Log out", "Delete account"}}
}

func (m settingsModel) View() string {
	out := ""
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}
	return renderPage("SETTINGS", out, "enter: select  esc: back")
}

const (
	changeCurrent = iota
	changeNew
	changeConfirm
)

type changePasswordModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newChangePasswordModel() changePasswordModel {
	inputs := []textinput.Model{
		newPINInput("current PIN"),
		newPINInput("new PIN"),
		newPINInput("repeat new PIN"),
	}
	inputs[changeCurrent].Focus()
	return changePasswordModel{inputs: inputs}
}

func (m changePasswordModel) View() string {
	body := renderInputs([]string{"Current PIN", "New PIN", "Confirm new PIN"}, m.inputs)
	if m.submitting {
		body += "Saving..."
	}
	return renderPage("CHANGE PASSWORD", body, "tab: next field  enter: save  esc: back")
}
