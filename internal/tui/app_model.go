package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-notes/internal/app"
	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/models"
)

type screen int

const (
	screenRegister screen = iota
	screenLogin
	screenRecoverAnswer
	screenRecoverReset
	screenList
	screenDetail
	screenNoteForm
	screenSettings
	screenChangePassword
	screenVersion
)

type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingDeleteNote
	pendingDeleteAccount
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	logger        *logger.Logger
	buildInfo     models.AppBuildInfo
	currentScreen screen

	register       registerModel
	login          loginModel
	recover        recoverModel
	list           listModel
	detail         detailModel
	noteForm       noteFormModel
	settings       settingsModel
	changePassword changePasswordModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pending       pendingAction
	pendingNoteID string

	logout     bool
	quitByUser bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, info models.AppBuildInfo, log *logger.Logger, start screen) appModel {
	return appModel{
		ctx:            ctx,
		services:       services,
		logger:         log,
		buildInfo:      info,
		currentScreen:  start,
		register:       newRegisterModel(),
		login:          newLoginModel(),
		recover:        newRecoverModel(),
		list:           newListModel(),
		settings:       newSettingsModel(),
		changePassword: newChangePasswordModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenLogin {
		return m.cmdLoadGreeting()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case registeredMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.showServiceError("register", msg.err)
			return m, nil
		}
		m.register = newRegisterModel()
		m.login = newLoginModel()
		m.login.status = app.MsgRegistered
		m.currentScreen = screenLogin
		return m, m.cmdLoadGreeting()
	case greetingMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("failed to load username")
			return m, nil
		}
		m.login.username = msg.username
		return m, nil
	case loggedInMsg:
		m.login.submitting = false
		m.login.status = ""
		m.login.pin.Reset()
		if msg.err != nil {
			m.showServiceError("login", msg.err)
			return m, nil
		}
		m.list = newListModel()
		m.currentScreen = screenList
		return m, m.cmdLoadNotes()
	case questionLoadedMsg:
		if msg.err != nil {
			m.showServiceError("load security question", msg.err)
			return m, nil
		}
		m.recover.question = msg.question
		return m, nil
	case answerVerifiedMsg:
		m.recover.submitting = false
		m.recover.answer.Reset()
		if msg.err != nil {
			m.showServiceError("verify security answer", msg.err)
			return m, nil
		}
		m.currentScreen = screenRecoverReset
		return m, nil
	case passwordResetMsg:
		m.recover.submitting = false
		if msg.err != nil {
			m.showServiceError("reset password", msg.err)
			return m, nil
		}
		m.recover = newRecoverModel()
		m.login.pin.Reset()
		m.login.status = app.MsgPasswordReset
		m.currentScreen = screenLogin
		return m, nil
	case passwordChangedMsg:
		m.changePassword.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrWrongPassword) {
				m.showErrorf(app.MsgWrongCurrentPassword)
				return m, nil
			}
			m.showServiceError("change password", msg.err)
			return m, nil
		}
		m.changePassword = newChangePasswordModel()
		m.currentScreen = screenSettings
		m.settings.status = app.MsgPasswordChanged
		return m, cmdClearStatus()
	case notesLoadedMsg:
		m.list.setNotes(m.services.NotesService.Notes())
		if msg.err != nil {
			m.showServiceError("load notes", msg.err)
		}
		return m, nil
	case noteSavedMsg:
		m.noteForm.submitting = false
		if msg.err != nil {
			m.showServiceError("save note", msg.err)
			return m, nil
		}
		m.list.setNotes(m.services.NotesService.Notes())
		if m.noteForm.editing() {
			m.detail = detailModel{note: msg.note, status: app.MsgNoteSaved}
			m.currentScreen = screenDetail
		} else {
			m.list.idx = len(m.list.notes) - 1
			m.list.status = app.MsgNoteSaved
			m.currentScreen = screenList
		}
		return m, cmdClearStatus()
	case noteDeletedMsg:
		m.pendingNoteID = ""
		if msg.err != nil {
			m.showServiceError("delete note", msg.err)
			return m, nil
		}
		m.list.setNotes(m.services.NotesService.Notes())
		m.list.status = app.MsgNoteDeleted
		m.currentScreen = screenList
		return m, cmdClearStatus()
	case accountDeletedMsg:
		if msg.err != nil {
			m.showServiceError("delete account", msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		status := app.MsgCopiedToClipboard
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("clipboard write failed")
			status = app.MsgClipboardFailed
		}
		m.detail.status = status
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		m.settings.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenRegister:
		return m.updateRegister(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRecoverAnswer:
		return m.updateRecoverAnswer(msg)
	case screenRecoverReset:
		return m.updateRecoverReset(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenNoteForm:
		return m.updateNoteForm(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenChangePassword:
		return m.updateChangePassword(msg)
	case screenVersion:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			m.currentScreen = screenList
		}
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenRegister:
		body = m.register.View()
	case screenLogin:
		body = m.login.View()
	case screenRecoverAnswer:
		body = m.recover.answerView()
	case screenRecoverReset:
		body = m.recover.resetView()
	case screenList:
		body = m.list.View(m.services.CredentialService.Session().Username)
	case screenDetail:
		body = m.detail.View()
	case screenNoteForm:
		body = m.noteForm.View()
	case screenSettings:
		body = m.settings.View()
	case screenChangePassword:
		body = m.changePassword.View()
	case screenVersion:
		body = renderBuildInfoWindow(m.buildInfo)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// showServiceError logs err and shows its user-facing message.
func (m *appModel) showServiceError(action string, err error) {
	m.logger.Err(err).Str("action", action).Msg("operation failed")
	m.showErrorf(app.UserMessage(err))
}

func (m *appModel) askConfirm(action pendingAction, message string) {
	m.showConfirm = true
	m.pending = action
	m.confirm.message = message
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		action := m.pending
		m.showConfirm = false
		m.pending = pendingNone
		switch action {
		case pendingDeleteNote:
			return m, m.cmdDeleteNote(m.pendingNoteID)
		case pendingDeleteAccount:
			return m, m.cmdDeleteAccount()
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pending = pendingNone
		m.pendingNoteID = ""
	}
	return m, nil
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = cycleFocus(m.register.inputs, m.register.focus, -1)
			return m, nil
		case keyMsg.Type == tea.KeyUp:
			if m.register.questionIdx > 0 {
				m.register.questionIdx--
			}
			return m, nil
		case keyMsg.Type == tea.KeyDown:
			if m.register.questionIdx < len(models.SecurityQuestions)-1 {
				m.register.questionIdx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(m.register.request())
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.recover):
			m.recover = newRecoverModel()
			m.currentScreen = screenRecoverAnswer
			return m, m.cmdLoadQuestion()
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(m.login.pin.Value())
		}
	}

	var cmd tea.Cmd
	m.login.pin, cmd = m.login.pin.Update(msg)
	return m, cmd
}

func (m appModel) updateRecoverAnswer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.services.CredentialService.Logout()
			m.currentScreen = screenLogin
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.recover.submitting {
				return m, nil
			}
			m.recover.submitting = true
			return m, m.cmdVerifyAnswer(m.recover.answer.Value())
		}
	}

	var cmd tea.Cmd
	m.recover.answer, cmd = m.recover.answer.Update(msg)
	return m, cmd
}

func (m appModel) updateRecoverReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.services.CredentialService.Logout()
			m.recover = newRecoverModel()
			m.currentScreen = screenLogin
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.recover.submitting {
				return m, nil
			}
			m.recover.submitting = true
			return m, m.cmdResetPassword(m.recover.pin.Value())
		}
	}

	var cmd tea.Cmd
	m.recover.pin, cmd = m.recover.pin.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{note: note}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.noteForm = newNoteFormModel(nil)
		m.currentScreen = screenNoteForm
	case key.Matches(keyMsg, keys.settings):
		m.settings = newSettingsModel()
		m.currentScreen = screenSettings
	case key.Matches(keyMsg, keys.version):
		m.currentScreen = screenVersion
	case key.Matches(keyMsg, keys.logout):
		m.services.CredentialService.Logout()
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quitList):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		note := m.detail.note
		m.noteForm = newNoteFormModel(&note)
		m.currentScreen = screenNoteForm
	case key.Matches(keyMsg, keys.delete):
		m.pendingNoteID = m.detail.note.ID
		m.askConfirm(pendingDeleteNote, "Delete note \""+fitText(firstLine(m.detail.note.Title), 30)+"\"?")
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.note.Content)
	}

	return m, nil
}

func (m appModel) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.noteForm.editing() {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.noteForm.toggleFocus()
			return m, nil
		case key.Matches(keyMsg, keys.enter) && m.noteForm.focus == 0:
			m.noteForm.toggleFocus()
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.noteForm.submitting {
				return m, nil
			}
			m.noteForm.submitting = true
			title := strings.TrimSpace(m.noteForm.title.Value())
			content := m.noteForm.content.Value()
			if m.noteForm.editing() {
				return m, m.cmdUpdateNote(m.noteForm.editingID, title, content)
			}
			return m, m.cmdAddNote(title, content)
		}
	}

	var cmd tea.Cmd
	if m.noteForm.focus == 0 {
		m.noteForm.title, cmd = m.noteForm.title.Update(msg)
	} else {
		m.noteForm.content, cmd = m.noteForm.content.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.settings.idx > 0 {
			m.settings.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settings.idx < len(m.settings.items)-1 {
			m.settings.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.settings.idx {
		case settingsChangePassword:
			m.changePassword = newChangePasswordModel()
			m.currentScreen = screenChangePassword
		case settingsLogout:
			m.services.CredentialService.Logout()
			m.logout = true
			return m, tea.Quit
		case settingsDeleteAccount:
			m.askConfirm(pendingDeleteAccount, "Delete the account and all notes? This can not be undone.")
		}
	}

	return m, nil
}

func (m appModel) updateChangePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenSettings
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.changePassword.focus = cycleFocus(m.changePassword.inputs, m.changePassword.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.changePassword.focus = cycleFocus(m.changePassword.inputs, m.changePassword.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.changePassword.focus < changeConfirm {
				m.changePassword.focus = cycleFocus(m.changePassword.inputs, m.changePassword.focus, 1)
				return m, nil
			}
			if m.changePassword.submitting {
				return m, nil
			}
			m.changePassword.submitting = true
			in := m.changePassword.inputs
			return m, m.cmdChangePassword(in[changeCurrent].Value(), in[changeNew].Value(), in[changeConfirm].Value())
		}
	}

	var cmd tea.Cmd
	m.changePassword.inputs[m.changePassword.focus], cmd = m.changePassword.inputs[m.changePassword.focus].Update(msg)
	return m, cmd
}
