package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-secure-notes/models"
)

// noteFormModel is used both to create a note and to edit one. editingID
// is empty for a new note.
type noteFormModel struct {
	editingID  string
	title      textinput.Model
	content    textarea.Model
	focus      int
	submitting bool
}

func newNoteFormModel(note *models.Note) noteFormModel {
	title := newTextInput("title", 200)
	title.Width = 54
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Write your note"
	content.SetWidth(54)
	content.SetHeight(8)
	content.ShowLineNumbers = false

	m := noteFormModel{title: title, content: content}
	if note != nil {
		m.editingID = note.ID
		m.title.SetValue(note.Title)
		m.content.SetValue(note.Content)
	}
	return m
}

func (m noteFormModel) editing() bool {
	return m.editingID != ""
}

func (m *noteFormModel) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.title.Blur()
		m.content.Focus()
		return
	}
	m.focus = 0
	m.content.Blur()
	m.title.Focus()
}

func (m noteFormModel) View() string {
	header := "NEW NOTE"
	if m.editing() {
		header = "EDIT NOTE"
	}

	body := "Title\n" + m.title.View() + "\n\nContent\n" + m.content.View()
	if m.submitting {
		body += "\n\nSaving..."
	}
	return renderPage(header, body, "tab: switch field  ctrl+s: save  esc: cancel")
}
