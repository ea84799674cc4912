package tui

import "github.com/charmbracelet/bubbles/textinput"

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func newPINInput(placeholder string) textinput.Model {
	in := newTextInput(placeholder, 128)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// cycleFocus moves focus by delta and returns the new index.
func cycleFocus(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func renderInputs(labels []string, inputs []textinput.Model) string {
	out := ""
	for i, in := range inputs {
		out += labels[i] + "\n" + in.View() + "\n\n"
	}
	return out
}
