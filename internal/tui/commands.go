package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-notes/models"
)

const statusTTL = 2 * time.Second

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		return registeredMsg{err: m.services.CredentialService.Register(m.ctx, req)}
	}
}

func (m appModel) cmdLoadGreeting() tea.Cmd {
	return func() tea.Msg {
		username, err := m.services.CredentialService.Username(m.ctx)
		return greetingMsg{username: username, err: err}
	}
}

func (m appModel) cmdLogin(pin string) tea.Cmd {
	return func() tea.Msg {
		return loggedInMsg{err: m.services.CredentialService.Authenticate(m.ctx, pin)}
	}
}

func (m appModel) cmdLoadQuestion() tea.Cmd {
	return func() tea.Msg {
		question, err := m.services.CredentialService.SecurityQuestion(m.ctx)
		return questionLoadedMsg{question: question, err: err}
	}
}

func (m appModel) cmdVerifyAnswer(answer string) tea.Cmd {
	return func() tea.Msg {
		return answerVerifiedMsg{err: m.services.CredentialService.VerifySecurityAnswer(m.ctx, answer)}
	}
}

func (m appModel) cmdResetPassword(pin string) tea.Cmd {
	return func() tea.Msg {
		return passwordResetMsg{err: m.services.CredentialService.ResetPassword(m.ctx, pin)}
	}
}

func (m appModel) cmdChangePassword(current, next, confirm string) tea.Cmd {
	return func() tea.Msg {
		return passwordChangedMsg{err: m.services.CredentialService.ChangePassword(m.ctx, current, next, confirm)}
	}
}

func (m appModel) cmdLoadNotes() tea.Cmd {
	return func() tea.Msg {
		return notesLoadedMsg{err: m.services.NotesService.Load(m.ctx)}
	}
}

func (m appModel) cmdAddNote(title, content string) tea.Cmd {
	return func() tea.Msg {
		note, err := m.services.NotesService.Add(m.ctx, title, content)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m appModel) cmdUpdateNote(id, title, content string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.NotesService.Update(m.ctx, id, models.NotePatch{Title: &title, Content: &content})
		if err != nil {
			return noteSavedMsg{err: err}
		}
		note, _ := m.services.NotesService.Get(id)
		return noteSavedMsg{note: note}
	}
}

func (m appModel) cmdDeleteNote(id string) tea.Cmd {
	return func() tea.Msg {
		return noteDeletedMsg{err: m.services.NotesService.Delete(m.ctx, id)}
	}
}

func (m appModel) cmdDeleteAccount() tea.Cmd {
	return func() tea.Msg {
		return accountDeletedMsg{err: m.services.CredentialService.DeleteAccount(m.ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
