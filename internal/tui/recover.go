package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// recoverModel drives both recovery steps: the answer screen and the new
// PIN screen.
type recoverModel struct {
	question   string
	answer     textinput.Model
	pin        textinput.Model
	submitting bool
}

func newRecoverModel() recoverModel {
	answer := newTextInput("answer", 128)
	answer.Focus()
	pin := newPINInput("new PIN")
	pin.Focus()

	return recoverModel{answer: answer, pin: pin}
}

func (m recoverModel) answerView() string {
	question := m.question
	if question == "" {
		question = "Loading..."
	}
	body := "Security question\n" + question + "\n\nAnswer\n" + m.answer.View()
	return renderPage("RECOVER PIN", body, "enter: continue  esc: back")
}

func (m recoverModel) resetView() string {
	body := "Choose a new PIN\n\n" + m.pin.View()
	if m.submitting {
		body += "\n\nSaving..."
	}
	return renderPage("RESET PIN", body, "enter: save  esc: back")
}
