package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-secure-notes/models"
)

const (
	registerUsername = iota
	registerPIN
	registerAnswer
)

// registerModel holds the registration form. The security question is
// picked from models.SecurityQuestions with up/down.
type registerModel struct {
	inputs      []textinput.Model
	focus       int
	questionIdx int
	submitting  bool
}

func newRegisterModel() registerModel {
	inputs := []textinput.Model{
		newTextInput("username", 64),
		newPINInput("PIN"),
		newTextInput("answer", 128),
	}
	inputs[registerUsername].Focus()

	return registerModel{inputs: inputs}
}

func (m registerModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		Username:         strings.TrimSpace(m.inputs[registerUsername].Value()),
		PIN:              m.inputs[registerPIN].Value(),
		SecurityQuestion: models.SecurityQuestions[m.questionIdx],
		SecurityAnswer:   m.inputs[registerAnswer].Value(),
	}
}

func (m registerModel) View() string {
	var b strings.Builder

	b.WriteString(renderInputs([]string{"Username", "PIN"}, m.inputs[:registerAnswer]))
	b.WriteString("Security question (up/down to change)\n")
	for i, q := range models.SecurityQuestions {
		cursor := "  "
		if i == m.questionIdx {
			cursor = "> "
		}
		b.WriteString(cursor + q + "\n")
	}
	b.WriteString("\nAnswer\n")
	b.WriteString(m.inputs[registerAnswer].View())
	if m.submitting {
		b.WriteString("\n\nCreating account...")
	}

	return renderPage("CREATE ACCOUNT", b.String(), "tab: next field  enter: register")
}
