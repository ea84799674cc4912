package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	username   string
	pin        textinput.Model
	submitting bool
	status     string
}

func newLoginModel() loginModel {
	pin := newPINInput("PIN")
	pin.Focus()
	return loginModel{pin: pin}
}

func (m loginModel) View() string {
	greeting := "Welcome back!"
	if m.username != "" {
		greeting = "Welcome back, " + m.username + "!"
	}

	body := greeting + "\n\nPIN\n" + m.pin.View()
	if m.submitting {
		body += "\n\nChecking..."
	}
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}
	return renderPage("LOG IN", body, "enter: log in  ctrl+r: forgot PIN")
}
