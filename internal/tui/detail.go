package tui

import (
	"strings"

	"github.com/MKhiriev/go-secure-notes/models"
)

type detailModel struct {
	note   models.Note
	status string
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.note.Title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Created " + m.note.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	b.WriteString("\n\n")
	b.WriteString(m.note.Content)

	if m.status != "" {
		b.WriteString("\n\n" + statusStyle.Render(m.status))
	}

	return renderPage("NOTE", b.String(), "e: edit  d: delete  c: copy  esc: back")
}
