package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secure-notes/models"
)

type listModel struct {
	notes   []models.Note
	idx     int
	loading bool
	status  string
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

// setNotes replaces the list keeping the cursor in range.
func (m *listModel) setNotes(notes []models.Note) {
	m.notes = notes
	m.loading = false
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View(username string) string {
	var b strings.Builder

	if username != "" {
		b.WriteString("Signed in as " + username + "\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.notes) == 0:
		b.WriteString("No notes yet\n")
	default:
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, fitText(firstLine(note.Title), 40), helpStyle.Render(note.CreatedAt.Local().Format("2006-01-02 15:04"))))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("MY NOTES", b.String(), "enter: open  n: new  s: settings  v: version  l: log out  q: quit")
}
